package models

// ExchangeRate is a row of currency_exchange_rate.
// Rate is read as text (rate::text) so the stored scale survives untouched.
type ExchangeRate struct {
	ExchangeRateID   string `db:"id"`
	FromCurrencyCode string `db:"from_currency_code"`
	ToCurrencyCode   string `db:"to_currency_code"`
	Rate             string `db:"rate"`
	AuditFields
}
