// Package pg connects to PostgreSQL for the "postgres" store backend.
//
// Connect builds a pgx connection pool with linear backoff between
// attempts. Migrate applies the embedded goose migrations that create the
// mailblocks_kv table; the schema lives in migrations/ and is compiled into
// the binary.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//	    return err
//	}
//	store := kvstore.NewPostgresStore(pool)
//
// IsNotFoundError wraps the pgx.ErrNoRows check used by query code.
package pg
