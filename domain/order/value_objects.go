package order

import (
	"strings"
	"unicode"
)

// PaymentMethod is how the shopper intends to pay. No payment is taken here.
type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "cod"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCard PaymentMethod = "card"
)

// ParsePaymentMethod accepts a method code in any case.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case PaymentCOD, PaymentUPI, PaymentCard:
		return m, nil
	}
	return "", NewInvalidPaymentMethodError(s)
}

// Label is the human readable method name.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCOD:
		return "Cash on Delivery"
	case PaymentUPI:
		return "UPI Payment"
	case PaymentCard:
		return "Credit/Debit Card"
	}
	return string(m)
}

// ShippingAddress value object
type ShippingAddress struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// Validate requires every field and a six digit pincode.
func (a ShippingAddress) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"full_name", a.FullName},
		{"phone", a.Phone},
		{"address", a.Address},
		{"city", a.City},
		{"state", a.State},
		{"pincode", a.Pincode},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return NewInvalidAddressError(f.name)
		}
	}
	pin := strings.TrimSpace(a.Pincode)
	if len(pin) != 6 || strings.IndexFunc(pin, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
		return NewInvalidAddressError("pincode")
	}
	return nil
}
