package preferences

// Preferences is what a shopper chose for display. Persisted as a whole.
type Preferences struct {
	Currency Currency `json:"currency"`
	Language Language `json:"language"`
}

// Default preferences: INR and English.
func Default() Preferences {
	return Preferences{Currency: DefaultCurrency, Language: DefaultLanguage}
}

// Normalize replaces unsupported fields with their defaults.
func (p Preferences) Normalize() Preferences {
	if !p.Currency.Valid() {
		p.Currency = DefaultCurrency
	}
	if !p.Language.Valid() {
		p.Language = DefaultLanguage
	}
	return p
}

// FormatPrice renders an INR amount in the preferred currency.
func (p Preferences) FormatPrice(amountINR int64) string {
	return p.Currency.Format(amountINR)
}

// T translates key into the preferred language.
func (p Preferences) T(key Key) string {
	return Translate(p.Language, key)
}
