package checkout

import (
	"math"

	"sheshape-storefront/internal/domain"
)

// Storefront checkout pricing: flat shipping and a fixed tax rate on the
// subtotal. The backend recomputes authoritative amounts at order creation;
// these figures drive the checkout summary only.
const (
	FlatShippingRate = 9.99
	TaxRate          = 0.08
)

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeTotals derives the checkout summary from the cart snapshot.
func ComputeTotals(cart domain.Cart) Totals {
	subtotal := round2(cart.Subtotal)
	tax := round2(subtotal * TaxRate)
	return Totals{
		Subtotal: subtotal,
		Shipping: FlatShippingRate,
		Tax:      tax,
		Total:    round2(subtotal + FlatShippingRate + tax),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
