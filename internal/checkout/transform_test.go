package checkout

import (
	"errors"
	"testing"

	"sheshape-storefront/internal/domain"
)

func reviewSession(t *testing.T, shipping ShippingData, payment PaymentData) *Session {
	t.Helper()
	s := newTestSession()
	if err := s.SubmitShipping(shipping); err != nil {
		t.Fatalf("shipping: %v", err)
	}
	if err := s.SubmitPayment(payment); err != nil {
		t.Fatalf("payment: %v", err)
	}
	return s
}

func TestBuildRequestNotReady(t *testing.T) {
	s := newTestSession()
	if _, err := s.BuildRequest(""); !errors.Is(err, ErrNotReady) {
		t.Errorf("got %v, want ErrNotReady", err)
	}

	if err := s.SubmitShipping(validShipping()); err != nil {
		t.Fatal(err)
	}
	if _, err := s.BuildRequest(""); !errors.Is(err, ErrNotReady) {
		t.Errorf("after shipping only: got %v, want ErrNotReady", err)
	}
}

func TestBuildRequestSameAsBilling(t *testing.T) {
	s := reviewSession(t, validShipping(), validCardPayment())

	req, err := s.BuildRequest("leave at the door")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.BillingAddress != req.ShippingAddress {
		t.Errorf("billing %+v != shipping %+v", req.BillingAddress, req.ShippingAddress)
	}
	if req.Notes != "leave at the door" {
		t.Errorf("notes = %q", req.Notes)
	}
	if req.PaymentMethod != domain.PaymentMethodCreditCard {
		t.Errorf("method = %s", req.PaymentMethod)
	}
}

func TestBuildRequestSeparateBilling(t *testing.T) {
	shipping := validShipping()
	shipping.SameAsBilling = false
	shipping.Billing = &domain.Address{
		Street: "99 Invoice Rd", City: "Houston", State: "TX", ZipCode: "77001", Country: "US",
	}
	s := reviewSession(t, shipping, validCardPayment())

	req, err := s.BuildRequest("")
	if err != nil {
		t.Fatal(err)
	}
	if req.BillingAddress.Street != "99 Invoice Rd" || req.BillingAddress.City != "Houston" {
		t.Errorf("billing = %+v, want collected billing address", req.BillingAddress)
	}
	if req.ShippingAddress.City != "Austin" {
		t.Errorf("shipping = %+v, want original shipping address", req.ShippingAddress)
	}
}

func TestBuildRequestApartmentAppended(t *testing.T) {
	shipping := validShipping()
	shipping.ApartmentNumber = "4B"
	s := reviewSession(t, shipping, validCardPayment())

	req, err := s.BuildRequest("")
	if err != nil {
		t.Fatal(err)
	}
	if req.ShippingAddress.Street != "12 Rose Ave, 4B" {
		t.Errorf("street = %q, want apartment appended", req.ShippingAddress.Street)
	}
}

func TestBuildRequestCardDetails(t *testing.T) {
	s := reviewSession(t, validShipping(), validCardPayment())

	req, err := s.BuildRequest("")
	if err != nil {
		t.Fatal(err)
	}
	if req.PaymentDetails == nil {
		t.Fatal("payment details missing for card method")
	}
	if req.PaymentDetails.CardNumber != "4111111111111111" {
		t.Errorf("card number = %q, want digits only", req.PaymentDetails.CardNumber)
	}
	if req.PaymentDetails.ExpiryMonth != 9 || req.PaymentDetails.ExpiryYear != 2027 {
		t.Errorf("expiry = %d/%d, want 9/2027",
			req.PaymentDetails.ExpiryMonth, req.PaymentDetails.ExpiryYear)
	}
	if req.PaymentDetails.CVV != "123" {
		t.Errorf("cvv = %q", req.PaymentDetails.CVV)
	}
}

func TestBuildRequestNoDetailsForCashOnDelivery(t *testing.T) {
	s := reviewSession(t, validShipping(), PaymentData{Method: domain.PaymentMethodCashOnDelivery})

	req, err := s.BuildRequest("")
	if err != nil {
		t.Fatal(err)
	}
	if req.PaymentDetails != nil {
		t.Errorf("payment details = %+v, want nil for cash on delivery", req.PaymentDetails)
	}
}

func TestBuildRequestBadExpiry(t *testing.T) {
	payment := validCardPayment()
	payment.ExpiryMonth = "Sep"
	s := reviewSession(t, validShipping(), payment)

	_, err := s.BuildRequest("")
	var verr ValidationError
	if !errors.As(err, &verr) || err.Error() != "Please enter a valid expiry date" {
		t.Errorf("got %v, want expiry validation error", err)
	}
}

func TestComputeTotals(t *testing.T) {
	got := ComputeTotals(domain.Cart{Subtotal: 100})

	want := Totals{Subtotal: 100, Shipping: 9.99, Tax: 8, Total: 117.99}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestComputeTotalsRounds(t *testing.T) {
	got := ComputeTotals(domain.Cart{Subtotal: 33.335})

	if got.Subtotal != 33.34 {
		t.Errorf("subtotal = %v, want rounded to cents", got.Subtotal)
	}
	if got.Tax != round2(got.Subtotal*TaxRate) {
		t.Errorf("tax = %v not derived from rounded subtotal", got.Tax)
	}
	if got.Total != round2(got.Subtotal+FlatShippingRate+got.Tax) {
		t.Errorf("total = %v does not add up", got.Total)
	}
}
