package models

import "time"

// Setting is the single row of sys_setting.
type Setting struct {
	SettingID           string    `db:"id"`
	Config              []byte    `db:"config"` // jsonb
	CurrencyInitialized bool      `db:"currency_initialized"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}
