package session

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"sheshape-storefront/internal/checkout"
	"sheshape-storefront/internal/domain"
	"sheshape-storefront/internal/migrate"
)

func TestPostgres_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	store := NewPostgres(pool)
	sess := checkout.NewSession("a2f1d0c4-0000-4000-8000-000000000001", 42,
		domain.Cart{ID: 7, Items: []domain.CartItem{{ID: 1, ProductID: 10, Quantity: 1}}},
		checkout.ShippingData{Email: "amina@example.com"})

	if err := store.Create(ctx, sess); err != nil {
		t.Fatalf("Create: %v", err)
	}

	fetched, err := store.Get(ctx, 42, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if fetched.Stage != checkout.StageShipping || fetched.Cart.ID != 7 {
		t.Fatalf("fetched mismatch %+v", fetched)
	}
	if fetched.Shipping.Email != "amina@example.com" {
		t.Fatalf("shipping data lost: %+v", fetched.Shipping)
	}

	if _, err := store.Get(ctx, 99, sess.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign user Get: got %v, want ErrNotFound", err)
	}

	fetched.Stage = checkout.StagePayment
	fetched.UpdatedAt = time.Now().UTC()
	if err := store.Save(ctx, fetched); err != nil {
		t.Fatalf("Save: %v", err)
	}
	again, err := store.Get(ctx, 42, sess.ID)
	if err != nil {
		t.Fatalf("Get after Save: %v", err)
	}
	if again.Stage != checkout.StagePayment {
		t.Fatalf("stage = %s, want payment", again.Stage)
	}

	if err := store.Delete(ctx, 42, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, 42, sess.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get after Delete: got %v, want ErrNotFound", err)
	}
}

func TestPostgres_PurgeIdle(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	store := NewPostgres(pool)

	stale := checkout.NewSession("a2f1d0c4-0000-4000-8000-000000000002", 1, domain.Cart{}, checkout.ShippingData{})
	stale.CreatedAt = time.Now().UTC().Add(-48 * time.Hour)
	stale.UpdatedAt = stale.CreatedAt
	fresh := checkout.NewSession("a2f1d0c4-0000-4000-8000-000000000003", 1, domain.Cart{}, checkout.ShippingData{})

	for _, s := range []*checkout.Session{stale, fresh} {
		if err := store.Create(ctx, s); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	n, err := store.PurgeIdle(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("PurgeIdle: %v", err)
	}
	if n != 1 {
		t.Fatalf("purged %d sessions, want 1", n)
	}
	if _, err := store.Get(ctx, 1, fresh.ID); err != nil {
		t.Fatalf("fresh session gone: %v", err)
	}
	if _, err := store.Get(ctx, 1, stale.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("stale session survived: %v", err)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE checkout_sessions`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}
