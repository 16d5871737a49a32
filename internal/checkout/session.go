package checkout

import (
	"errors"
	"time"

	"sheshape-storefront/internal/domain"
)

var (
	// ErrTerminal is returned for any mutation of a session that already
	// reached the success stage.
	ErrTerminal = errors.New("checkout already completed")
	// ErrStageOrder is returned when a stage is submitted before the stages
	// preceding it are completed.
	ErrStageOrder = errors.New("previous checkout stage not completed")
	// ErrNotReady is returned when an order is placed before the review
	// stage is reached.
	ErrNotReady = errors.New("checkout is not ready for order placement")
)

// Session is the whole checkout state for one customer visit: the current
// stage, which stages completed, which panels are expanded, the collected
// form data and the cart snapshot taken at entry. It is a plain serializable
// value; all transitions are methods with no side effects beyond the struct.
type Session struct {
	ID        string         `json:"id"`
	UserID    int64          `json:"userId"`
	Stage     Stage          `json:"stage"`
	Completed []Stage        `json:"completed"`
	Expanded  map[Stage]bool `json:"expanded"`
	Shipping  ShippingData   `json:"shipping"`
	Payment   PaymentData    `json:"payment"`
	Cart      domain.Cart    `json:"cart"`
	Order     *domain.Order  `json:"order,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// NewSession opens a session at the shipping stage with the shipping panel
// expanded. The cart is a read-only snapshot; prefill seeds the shipping
// form from the customer's account.
func NewSession(id string, userID int64, cart domain.Cart, prefill ShippingData) *Session {
	if prefill.Country == "" {
		prefill.Country = "US"
	}
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		UserID:    userID,
		Stage:     StageShipping,
		Completed: []Stage{},
		Expanded:  map[Stage]bool{StageShipping: true, StagePayment: false, StageReview: false},
		Shipping:  prefill,
		Cart:      cart,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// StageCompleted reports whether the given stage has been completed.
func (s *Session) StageCompleted(st Stage) bool {
	for _, c := range s.Completed {
		if c == st {
			return true
		}
	}
	return false
}

// SubmitShipping validates and stores the shipping form, marks shipping
// completed and advances to payment. Re-submitting after later stages have
// completed is allowed and does not clear their completion.
func (s *Session) SubmitShipping(in ShippingData) error {
	if s.Stage.Terminal() {
		return ErrTerminal
	}
	if err := ValidateShipping(in); err != nil {
		return err
	}
	if in.Country == "" {
		in.Country = "US"
	}
	s.Shipping = in
	s.markCompleted(StageShipping)
	s.Stage = StagePayment
	s.Expanded = map[Stage]bool{StageShipping: false, StagePayment: true, StageReview: false}
	s.touch()
	return nil
}

// SubmitPayment validates and stores the payment form, marks payment
// completed and advances to review. Shipping must already be completed.
func (s *Session) SubmitPayment(in PaymentData) error {
	if s.Stage.Terminal() {
		return ErrTerminal
	}
	if !s.StageCompleted(StageShipping) {
		return ErrStageOrder
	}
	if err := ValidatePayment(in); err != nil {
		return err
	}
	s.Payment = in
	s.markCompleted(StagePayment)
	s.Stage = StageReview
	s.Expanded = map[Stage]bool{StageShipping: false, StagePayment: false, StageReview: true}
	s.touch()
	return nil
}

// CompleteOrder records the created order, marks review completed and moves
// to the terminal success stage.
func (s *Session) CompleteOrder(o domain.Order) {
	s.Order = &o
	s.markCompleted(StageReview)
	s.Stage = StageSuccess
	s.Expanded = map[Stage]bool{StageShipping: false, StagePayment: false, StageReview: false}
	s.touch()
}

// ToggleSection flips the visibility of a collapsed/expanded panel. This is
// purely presentational and never changes stage or completion.
func (s *Session) ToggleSection(st Stage) error {
	if s.Stage.Terminal() {
		return ErrTerminal
	}
	if st != StageShipping && st != StagePayment && st != StageReview {
		return errors.New("unknown section")
	}
	s.Expanded[st] = !s.Expanded[st]
	s.touch()
	return nil
}

// markCompleted appends the stage, moving it to the end when already present.
func (s *Session) markCompleted(st Stage) {
	out := s.Completed[:0]
	for _, c := range s.Completed {
		if c != st {
			out = append(out, c)
		}
	}
	s.Completed = append(out, st)
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}
