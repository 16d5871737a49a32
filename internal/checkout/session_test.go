package checkout

import (
	"errors"
	"testing"

	"sheshape-storefront/internal/domain"
)

func testCart() domain.Cart {
	return domain.Cart{
		ID:         7,
		UserID:     42,
		TotalItems: 2,
		Subtotal:   100,
		TotalPrice: 100,
		Items: []domain.CartItem{
			{ID: 1, ProductID: 10, Quantity: 2, UnitPrice: 50, TotalPrice: 100},
		},
	}
}

func newTestSession() *Session {
	return NewSession("sess-1", 42, testCart(), ShippingData{Email: "amina@example.com"})
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession()

	if s.Stage != StageShipping {
		t.Errorf("stage = %s, want shipping", s.Stage)
	}
	if len(s.Completed) != 0 {
		t.Errorf("completed = %v, want empty", s.Completed)
	}
	if !s.Expanded[StageShipping] || s.Expanded[StagePayment] || s.Expanded[StageReview] {
		t.Errorf("expanded = %v, want only shipping open", s.Expanded)
	}
	if s.Shipping.Country != "US" {
		t.Errorf("country = %q, want US default", s.Shipping.Country)
	}
	if s.Shipping.Email != "amina@example.com" {
		t.Errorf("email prefill lost: %q", s.Shipping.Email)
	}
}

func TestSubmitShippingAdvances(t *testing.T) {
	s := newTestSession()

	if err := s.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Stage != StagePayment {
		t.Errorf("stage = %s, want payment", s.Stage)
	}
	if !s.StageCompleted(StageShipping) {
		t.Error("shipping not marked completed")
	}
	if s.Expanded[StageShipping] || !s.Expanded[StagePayment] {
		t.Errorf("expanded = %v, want payment open", s.Expanded)
	}
}

func TestSubmitShippingInvalidKeepsStage(t *testing.T) {
	s := newTestSession()
	in := validShipping()
	in.City = ""

	err := s.SubmitShipping(in)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if s.Stage != StageShipping {
		t.Errorf("stage = %s, want shipping unchanged", s.Stage)
	}
	if s.StageCompleted(StageShipping) {
		t.Error("shipping must not be marked completed on invalid input")
	}
	if s.Shipping.City != "" && s.Shipping.FirstName == in.FirstName {
		t.Error("invalid form must not be stored")
	}
}

func TestSubmitPaymentRequiresShipping(t *testing.T) {
	s := newTestSession()

	err := s.SubmitPayment(PaymentData{Method: domain.PaymentMethodCashOnDelivery})
	if !errors.Is(err, ErrStageOrder) {
		t.Errorf("got %v, want ErrStageOrder", err)
	}
}

func TestSubmitPaymentAdvancesToReview(t *testing.T) {
	s := newTestSession()
	if err := s.SubmitShipping(validShipping()); err != nil {
		t.Fatal(err)
	}

	if err := s.SubmitPayment(validCardPayment()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Stage != StageReview {
		t.Errorf("stage = %s, want review", s.Stage)
	}
	if !s.StageCompleted(StagePayment) {
		t.Error("payment not marked completed")
	}
	if !s.Expanded[StageReview] {
		t.Errorf("expanded = %v, want review open", s.Expanded)
	}
}

func TestResubmitShippingKeepsLaterCompletion(t *testing.T) {
	s := newTestSession()
	if err := s.SubmitShipping(validShipping()); err != nil {
		t.Fatal(err)
	}
	if err := s.SubmitPayment(validCardPayment()); err != nil {
		t.Fatal(err)
	}

	in := validShipping()
	in.City = "Dallas"
	if err := s.SubmitShipping(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Stage != StagePayment {
		t.Errorf("stage = %s, want payment after shipping re-submit", s.Stage)
	}
	if !s.StageCompleted(StagePayment) {
		t.Error("payment completion lost on shipping re-submit")
	}
	if s.Shipping.City != "Dallas" {
		t.Errorf("city = %q, want updated value", s.Shipping.City)
	}
	// No duplicate entries from re-completion.
	n := 0
	for _, c := range s.Completed {
		if c == StageShipping {
			n++
		}
	}
	if n != 1 {
		t.Errorf("shipping appears %d times in completed, want 1", n)
	}
}

func TestCompleteOrderTerminal(t *testing.T) {
	s := newTestSession()
	if err := s.SubmitShipping(validShipping()); err != nil {
		t.Fatal(err)
	}
	if err := s.SubmitPayment(validCardPayment()); err != nil {
		t.Fatal(err)
	}

	s.CompleteOrder(domain.Order{ID: 9, OrderNumber: "ORD-20240901-001"})

	if s.Stage != StageSuccess {
		t.Errorf("stage = %s, want success", s.Stage)
	}
	if s.Order == nil || s.Order.OrderNumber != "ORD-20240901-001" {
		t.Errorf("order = %+v, want recorded order", s.Order)
	}
	if !s.StageCompleted(StageReview) {
		t.Error("review not marked completed")
	}
	for st, open := range s.Expanded {
		if open {
			t.Errorf("section %s still expanded after success", st)
		}
	}

	if err := s.SubmitShipping(validShipping()); !errors.Is(err, ErrTerminal) {
		t.Errorf("shipping after success: got %v, want ErrTerminal", err)
	}
	if err := s.SubmitPayment(validCardPayment()); !errors.Is(err, ErrTerminal) {
		t.Errorf("payment after success: got %v, want ErrTerminal", err)
	}
	if err := s.ToggleSection(StageShipping); !errors.Is(err, ErrTerminal) {
		t.Errorf("toggle after success: got %v, want ErrTerminal", err)
	}
}

func TestToggleSection(t *testing.T) {
	s := newTestSession()

	if err := s.ToggleSection(StagePayment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Expanded[StagePayment] {
		t.Error("payment section not expanded after toggle")
	}
	if err := s.ToggleSection(StagePayment); err != nil {
		t.Fatal(err)
	}
	if s.Expanded[StagePayment] {
		t.Error("payment section not collapsed after second toggle")
	}

	// Toggling never changes stage or completion.
	if s.Stage != StageShipping || len(s.Completed) != 0 {
		t.Errorf("toggle changed stage/completion: %s %v", s.Stage, s.Completed)
	}

	if err := s.ToggleSection(StageSuccess); err == nil {
		t.Error("expected error toggling the success stage")
	}
	if err := s.ToggleSection(Stage("bogus")); err == nil {
		t.Error("expected error toggling an unknown section")
	}
}

func TestParseStage(t *testing.T) {
	for _, v := range []string{"shipping", "payment", "review", "success"} {
		if st, ok := ParseStage(v); !ok || st.String() != v {
			t.Errorf("ParseStage(%q) = %v, %v", v, st, ok)
		}
	}
	if _, ok := ParseStage("billing"); ok {
		t.Error("ParseStage accepted an unknown stage")
	}
}
