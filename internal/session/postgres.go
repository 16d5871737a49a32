package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sheshape-storefront/internal/checkout"
	"sheshape-storefront/internal/domain"
)

// PostgresStore persists checkout sessions as JSONB documents. The stage and
// owner are denormalized into columns for scoping and purge queries; the
// document itself stays the source of truth.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Create(ctx context.Context, sess *checkout.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO checkout_sessions (id, user_id, stage, data, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err = s.pool.Exec(ctx, q, sess.ID, sess.UserID, sess.Stage.String(), data, sess.CreatedAt, sess.UpdatedAt)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, userID int64, id string) (*checkout.Session, error) {
	const q = `
SELECT data
FROM checkout_sessions
WHERE id = $1 AND user_id = $2
`
	var data []byte
	if err := s.pool.QueryRow(ctx, q, id, userID).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var sess checkout.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *PostgresStore) Save(ctx context.Context, sess *checkout.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	const q = `
UPDATE checkout_sessions
SET stage = $1, data = $2, updated_at = $3
WHERE id = $4
`
	cmd, err := s.pool.Exec(ctx, q, sess.Stage.String(), data, sess.UpdatedAt, sess.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, userID int64, id string) error {
	const q = `
DELETE FROM checkout_sessions
WHERE id = $1 AND user_id = $2
`
	cmd, err := s.pool.Exec(ctx, q, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// PurgeIdle removes sessions not touched within ttl. Completed sessions age
// out the same way; the order itself lives upstream.
func (s *PostgresStore) PurgeIdle(ctx context.Context, ttl time.Duration) (int64, error) {
	const q = `
DELETE FROM checkout_sessions
WHERE updated_at < now() - make_interval(secs => $1)
`
	cmd, err := s.pool.Exec(ctx, q, ttl.Seconds())
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
