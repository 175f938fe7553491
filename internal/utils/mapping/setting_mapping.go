package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/SscSPs/erp_backend/internal/models"
)

const initConfigKey = "init"

// ToDomainSetting converts a model Setting to a domain Setting.
// An empty or null config column maps to the zero SystemConfig.
func ToDomainSetting(m models.Setting) (domain.Setting, error) {
	cfg, err := decodeSystemConfig(m.Config)
	if err != nil {
		return domain.Setting{}, fmt.Errorf("invalid config json for setting %s: %w", m.SettingID, err)
	}
	return domain.Setting{
		SettingID:           m.SettingID,
		Config:              cfg,
		CurrencyInitialized: m.CurrencyInitialized,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}, nil
}

// ToModelSetting converts a domain Setting to a model Setting.
func ToModelSetting(d domain.Setting) (models.Setting, error) {
	raw, err := encodeSystemConfig(d.Config)
	if err != nil {
		return models.Setting{}, fmt.Errorf("failed to encode config for setting %s: %w", d.SettingID, err)
	}
	return models.Setting{
		SettingID:           d.SettingID,
		Config:              raw,
		CurrencyInitialized: d.CurrencyInitialized,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}, nil
}

func decodeSystemConfig(raw []byte) (domain.SystemConfig, error) {
	var cfg domain.SystemConfig
	if len(raw) == 0 || string(raw) == "null" {
		return cfg, nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return cfg, err
	}
	initRaw, ok := top[initConfigKey]
	delete(top, initConfigKey)
	if len(top) > 0 {
		cfg.Other = top
	}
	if !ok || string(initRaw) == "null" {
		return cfg, nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(initRaw, &entries); err != nil {
		return cfg, fmt.Errorf("init: %w", err)
	}
	for key, dst := range map[string]*bool{"currency": &cfg.Init.Currency, "user": &cfg.Init.User, "order": &cfg.Init.Order} {
		v, ok := entries[key]
		if !ok {
			continue
		}
		// non-boolean values are left untouched for their owner
		if err := json.Unmarshal(v, dst); err != nil {
			continue
		}
		delete(entries, key)
	}
	if len(entries) > 0 {
		cfg.Init.Other = entries
	}
	return cfg, nil
}

func encodeSystemConfig(cfg domain.SystemConfig) ([]byte, error) {
	entries := make(map[string]any, len(cfg.Init.Other)+3)
	for k, v := range cfg.Init.Other {
		entries[k] = v
	}
	for key, set := range map[string]bool{"currency": cfg.Init.Currency, "user": cfg.Init.User, "order": cfg.Init.Order} {
		if set {
			entries[key] = true
		}
	}

	top := make(map[string]any, len(cfg.Other)+1)
	for k, v := range cfg.Other {
		top[k] = v
	}
	top[initConfigKey] = entries
	return json.Marshal(top)
}
