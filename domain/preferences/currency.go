/*
Package preferences - display currency and language of a shopper

Prices are stored in INR. Conversion to another display currency happens only
when formatting and never feeds back into cart arithmetic.
*/
package preferences

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency is an ISO 4217 display currency code
type Currency string

const (
	INR Currency = "INR"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// DefaultCurrency is the catalog's base currency.
const DefaultCurrency = INR

type currencyFormat struct {
	unit   currency.Unit
	locale language.Tag
	rate   float64 // units per INR
	// fraction digits shown; INR prices are whole rupees
	fraction int
	// pattern places the symbol (first operand) around the digits (second)
	pattern string
}

var currencies = map[Currency]currencyFormat{
	INR: {unit: currency.INR, locale: language.MustParse("en-IN"), rate: 1, fraction: 0, pattern: "%[1]s%[2]s"},
	USD: {unit: currency.USD, locale: language.AmericanEnglish, rate: 0.012, fraction: 2, pattern: "%[1]s%[2]s"},
	EUR: {unit: currency.EUR, locale: language.MustParse("de-DE"), rate: 0.011, fraction: 2, pattern: "%[2]s %[1]s"},
}

// Currencies lists the supported display currencies.
func Currencies() []Currency {
	return []Currency{INR, USD, EUR}
}

// ParseCurrency accepts a currency code in any case.
func ParseCurrency(s string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := currencies[c]
	return c, ok
}

// Valid reports whether c is a supported currency.
func (c Currency) Valid() bool {
	_, ok := currencies[c]
	return ok
}

// Convert converts an INR amount into c. Unknown currencies use rate 1.
func (c Currency) Convert(amountINR int64) float64 {
	f, ok := currencies[c]
	if !ok {
		return float64(amountINR)
	}
	return float64(amountINR) * f.rate
}

// Format renders an INR amount in currency c with the locale's symbol and
// grouping: INR with no fraction digits, the others with two. A negative
// amount carries its sign ahead of the symbol.
func (c Currency) Format(amountINR int64) string {
	f, ok := currencies[c]
	if !ok {
		f = currencies[DefaultCurrency]
		c = DefaultCurrency
	}

	value, sign := c.Convert(amountINR), ""
	if value < 0 {
		value, sign = -value, "-"
	}

	p := message.NewPrinter(f.locale)
	digits := p.Sprint(number.Decimal(value,
		number.MinFractionDigits(f.fraction),
		number.MaxFractionDigits(f.fraction)))
	return sign + p.Sprintf(f.pattern, c.Symbol(), digits)
}

// Symbol is the locale's narrow symbol for c, "₹" for unknown currencies.
func (c Currency) Symbol() string {
	f, ok := currencies[c]
	if !ok {
		f = currencies[DefaultCurrency]
	}
	return message.NewPrinter(f.locale).Sprint(currency.NarrowSymbol(f.unit))
}
