package domain

import (
	"encoding/json"
	"time"
)

// InitFlags records which one-time module initializations already ran.
type InitFlags struct {
	Currency bool
	User     bool
	Order    bool
	// Other holds init entries owned by modules this service does not know about
	Other map[string]json.RawMessage
}

// SystemConfig is the free-form JSON configuration stored with the settings row.
// Only the init flags are interpreted; every other top-level key is carried in Other and written back unchanged.
type SystemConfig struct {
	Init  InitFlags
	Other map[string]json.RawMessage
}

// Setting is the single system settings record.
type Setting struct {
	SettingID           string
	Config              SystemConfig
	CurrencyInitialized bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CurrencyInitDone reports whether either the column flag or the JSON flag marks currency seeding as finished.
func (s Setting) CurrencyInitDone() bool {
	return s.CurrencyInitialized || s.Config.Init.Currency
}
