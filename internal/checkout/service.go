package checkout

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"sheshape-storefront/internal/domain"
)

// ErrEmptyCart rejects checkout entry when the cart has no lines. The
// storefront redirects back to the cart page on this condition.
var ErrEmptyCart = errors.New("cart is empty")

// Store persists checkout sessions. Get scopes lookups to the owning user
// and returns domain.ErrNotFound for other users' sessions.
type Store interface {
	Create(ctx context.Context, sess *Session) error
	Get(ctx context.Context, userID int64, id string) (*Session, error)
	Save(ctx context.Context, sess *Session) error
}

type cartAPI interface {
	Cart(ctx context.Context) (*domain.Cart, error)
}

type accountAPI interface {
	Me(ctx context.Context) (*domain.User, error)
}

type orderAPI interface {
	Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.Order, error)
}

// Service drives checkout sessions: entry preconditions, stage submissions
// and the final order placement against the upstream order service.
type Service struct {
	store    Store
	carts    cartAPI
	accounts accountAPI
	orders   orderAPI
	logger   *slog.Logger
}

func NewService(store Store, carts cartAPI, accounts accountAPI, orders orderAPI, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		carts:    carts,
		accounts: accounts,
		orders:   orders,
		logger:   logger,
	}
}

// Begin fetches the cart snapshot and opens a new session at the shipping
// stage. An unauthorized or empty-cart condition is fatal for this screen
// and surfaces to the caller unchanged.
func (s *Service) Begin(ctx context.Context, userID int64, email string) (*Session, error) {
	cart, err := s.carts.Cart(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}
	if cart.Empty() {
		return nil, ErrEmptyCart
	}

	prefill := ShippingData{Email: email, Country: "US", SameAsBilling: true}
	if me, err := s.accounts.Me(ctx); err == nil && me != nil {
		if me.Email != "" {
			prefill.Email = me.Email
		}
		if me.Profile != nil {
			prefill.FirstName = me.Profile.FirstName
			prefill.LastName = me.Profile.LastName
		}
	}

	sess := NewSession(uuid.NewString(), userID, *cart, prefill)
	if err := s.store.Create(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "create session")
	}
	return sess, nil
}

// Get loads a session scoped to its owner.
func (s *Service) Get(ctx context.Context, userID int64, id string) (*Session, error) {
	return s.store.Get(ctx, userID, id)
}

// SubmitShipping applies the shipping stage submission and persists the
// session when the transition succeeds.
func (s *Service) SubmitShipping(ctx context.Context, userID int64, id string, in ShippingData) (*Session, error) {
	sess, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := sess.SubmitShipping(in); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "save session")
	}
	return sess, nil
}

// SubmitPayment applies the payment stage submission.
func (s *Service) SubmitPayment(ctx context.Context, userID int64, id string, in PaymentData) (*Session, error) {
	sess, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := sess.SubmitPayment(in); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "save session")
	}
	return sess, nil
}

// ToggleSection flips a panel's visibility.
func (s *Service) ToggleSection(ctx context.Context, userID int64, id string, st Stage) (*Session, error) {
	sess, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := sess.ToggleSection(st); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "save session")
	}
	return sess, nil
}

// PlaceOrder submits the checkout request from the review stage. On upstream
// success the session becomes terminal; on failure the session is left at
// review untouched so the customer can retry. A session that already
// succeeded conflicts rather than placing a second order.
func (s *Service) PlaceOrder(ctx context.Context, userID int64, id, notes string) (*Session, error) {
	sess, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if sess.Stage.Terminal() {
		return nil, errors.Wrap(domain.ErrConflict, "order already placed")
	}
	if sess.Stage != StageReview {
		return nil, ErrNotReady
	}

	req, err := sess.BuildRequest(notes)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.Checkout(ctx, req)
	if err != nil {
		return nil, err
	}

	sess.CompleteOrder(*order)
	if err := s.store.Save(ctx, sess); err != nil {
		// The order exists upstream; losing the session must not fail the
		// confirmation.
		s.logger.Error("save session after order placement",
			"session", sess.ID, "order", order.OrderNumber, "err", err)
	}
	return sess, nil
}
