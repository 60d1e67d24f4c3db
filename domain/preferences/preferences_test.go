package preferences

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate_Fallback(t *testing.T) {
	assert.Equal(t, "Shopping Cart", Translate(English, KeyCartTitle))
	assert.Equal(t, "आपका कार्ट खाली है", Translate(Hindi, KeyCartEmpty))
	assert.Equal(t, "मोफत", Translate(Marathi, KeyCartFreeShipping))

	// unknown language falls back to English
	assert.Equal(t, "Total", Translate(Language("fr"), KeyCartTotal))

	// unknown key falls back to the key itself
	assert.Equal(t, "cart.nonexistent", Translate(Hindi, Key("cart.nonexistent")))
}

func TestTranslations_HaveEnglish(t *testing.T) {
	for key, entry := range translations {
		assert.NotEmpty(t, entry[English], "key %s", key)
	}
}

func TestCurrency_Format(t *testing.T) {
	assert.Equal(t, "₹1,299", INR.Format(1299))
	assert.Equal(t, "₹0", INR.Format(0))
	assert.Equal(t, "$15.59", USD.Format(1299))
	assert.Equal(t, "$12.00", USD.Format(1000))
	assert.Equal(t, "14,29 €", EUR.Format(1299))
	assert.Equal(t, "-₹1,299", INR.Format(-1299))
	assert.Equal(t, "-$15.59", USD.Format(-1299))

	// unsupported currencies render as INR
	assert.Equal(t, "₹499", Currency("XYZ").Format(499))
}

func TestCurrency_Symbol(t *testing.T) {
	assert.Equal(t, "₹", INR.Symbol())
	assert.Equal(t, "$", USD.Symbol())
	assert.Equal(t, "€", EUR.Symbol())
	assert.Equal(t, "₹", Currency("XYZ").Symbol())
}

func TestParseCurrency(t *testing.T) {
	c, ok := ParseCurrency(" usd ")
	assert.True(t, ok)
	assert.Equal(t, USD, c)

	_, ok = ParseCurrency("GBP")
	assert.False(t, ok)
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
		ok   bool
	}{
		{"en", English, true},
		{"hi-IN", Hindi, true},
		{"mr", Marathi, true},
		{"fr", Language("fr"), false},
		{"", "", false},
		{"not a tag!", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLanguage(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}

func TestMatchAcceptLanguage(t *testing.T) {
	assert.Equal(t, English, MatchAcceptLanguage(""))
	assert.Equal(t, Hindi, MatchAcceptLanguage("hi-IN,hi;q=0.9,en;q=0.8"))
	assert.Equal(t, Marathi, MatchAcceptLanguage("mr"))
	assert.Equal(t, English, MatchAcceptLanguage("ja-JP"))
}

func TestPreferences_Normalize(t *testing.T) {
	p := Preferences{Currency: "GBP", Language: "fr"}.Normalize()
	assert.Equal(t, Default(), p)

	p = Preferences{Currency: USD, Language: Hindi}.Normalize()
	assert.Equal(t, USD, p.Currency)
	assert.Equal(t, "कुल", p.T(KeyCartTotal))
	assert.Equal(t, "$12.00", p.FormatPrice(1000))
}
