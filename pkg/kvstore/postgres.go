package kvstore

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/mailblocks/pkg/pg"
)

// pgxPool is the part of *pgxpool.Pool the store needs.
type pgxPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore keeps values in the mailblocks_kv table. The table is created
// by pg.Migrate.
type PostgresStore struct {
	pool   pgxPool
	owned  bool
	closed atomic.Bool
}

// NewPostgresStore wraps an existing pool.
func NewPostgresStore(pool pgxPool) *PostgresStore {
	if pool == nil {
		panic("kvstore: postgres pool is nil")
	}
	return &PostgresStore{pool: pool}
}

// Ping checks the connection to the database.
func (s *PostgresStore) Ping(ctx context.Context) error {
	if s.closed.Load() {
		return ErrClosed
	}
	return pg.Healthcheck(s.pool)(ctx)
}

func (s *PostgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if s.closed.Load() {
		return nil, ErrClosed
	}

	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM mailblocks_kv WHERE key = $1`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrFailedToLoad, err)
	}
	return data, nil
}

func (s *PostgresStore) Save(ctx context.Context, key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if s.closed.Load() {
		return ErrClosed
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO mailblocks_kv (key, value, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, clone(data),
	)
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if s.owned {
		s.pool.Close()
	}
	return nil
}
