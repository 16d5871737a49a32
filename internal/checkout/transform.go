package checkout

import (
	"strconv"

	"sheshape-storefront/internal/domain"
)

// BuildRequest maps the collected forms into the order-creation payload.
// Billing resolves to the shipping address unless a separate billing address
// was collected; payment details are attached for card methods only, with
// the card number stripped of display spaces and the expiry coerced to
// integers.
func (s *Session) BuildRequest(notes string) (domain.CheckoutRequest, error) {
	if !s.StageCompleted(StageShipping) || !s.StageCompleted(StagePayment) {
		return domain.CheckoutRequest{}, ErrNotReady
	}

	shipping := s.Shipping.Address()
	billing := shipping
	if !s.Shipping.SameAsBilling && s.Shipping.Billing != nil {
		billing = *s.Shipping.Billing
	}

	req := domain.CheckoutRequest{
		PaymentMethod:   s.Payment.Method,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		Notes:           notes,
	}

	if s.Payment.Method.Card() {
		month, err := strconv.Atoi(s.Payment.ExpiryMonth)
		if err != nil {
			return domain.CheckoutRequest{}, ValidationError("Please enter a valid expiry date")
		}
		year, err := strconv.Atoi(s.Payment.ExpiryYear)
		if err != nil {
			return domain.CheckoutRequest{}, ValidationError("Please enter a valid expiry date")
		}
		req.PaymentDetails = &domain.PaymentDetails{
			CardNumber:     stripSpaces(s.Payment.CardNumber),
			CardHolderName: s.Payment.CardHolderName,
			ExpiryMonth:    month,
			ExpiryYear:     year,
			CVV:            s.Payment.CVV,
		}
	}

	return req, nil
}
