package cart

// Pricing is the checkout pricing policy. It is a pure function of the
// subtotal; amounts are in the catalog's base currency unit.
type Pricing struct {
	// FreeShippingThreshold: shipping is free when subtotal is strictly greater
	FreeShippingThreshold int64
	FlatShippingFee       int64
	// TaxRateBasisPoints is the tax rate in 1/100 of a percent (1800 = 18%)
	TaxRateBasisPoints int64
}

// DefaultPricing: free shipping above 1000, otherwise 50; 18% tax.
var DefaultPricing = Pricing{
	FreeShippingThreshold: 1000,
	FlatShippingFee:       50,
	TaxRateBasisPoints:    1800,
}

// Breakdown is the derived order pricing for a subtotal
type Breakdown struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// FreeShipping reports whether the breakdown qualified for free shipping.
func (b Breakdown) FreeShipping() bool { return b.Shipping == 0 }

// Quote derives shipping, tax and total from subtotal.
func (p Pricing) Quote(subtotal int64) Breakdown {
	shipping := p.FlatShippingFee
	if subtotal > p.FreeShippingThreshold {
		shipping = 0
	}
	tax := p.Tax(subtotal)
	return Breakdown{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// Tax is subtotal × rate rounded to the nearest unit, halves rounding up.
// Integer arithmetic keeps 3097 × 18% at exactly 557.46 → 557. The subtotal
// is split at 10000 so only the remainder is ever scaled before dividing.
func (p Pricing) Tax(subtotal int64) int64 {
	if subtotal >= 0 {
		q, r := subtotal/10000, subtotal%10000
		return q*p.TaxRateBasisPoints + (r*p.TaxRateBasisPoints+5000)/10000
	}
	// halves round toward +∞ for negatives: -0.5 → 0
	n := -subtotal
	q, r := n/10000, n%10000
	return -(q*p.TaxRateBasisPoints + (r*p.TaxRateBasisPoints+4999)/10000)
}
