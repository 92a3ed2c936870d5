// Package kvstore persists opaque byte values under string keys.
//
// mailblocks keeps each catalog as one value and overwrites it whole on
// every change, so the contract is deliberately small: Load, Save, Close.
// A missing key is reported as ErrNotFound, which callers use to decide
// whether to seed defaults.
//
// Backends:
//
//   - memory:   a mutex-guarded map, for tests and throwaway sessions
//   - file:     one file per key in a directory, written atomically
//   - sqlite:   a kv table in a local database (modernc.org/sqlite, no cgo)
//   - redis:    plain SET/GET under a key prefix
//   - postgres: a kv table created by embedded goose migrations
//   - mongo:    one document per key
//   - s3:       one object per key under a prefix
//
// Open picks a backend by name and owns the connections it creates:
//
//	store, err := kvstore.Open(ctx, kvstore.Config{
//	    Backend: kvstore.BackendSQLite,
//	    DataDir: "~/.mailblocks",
//	}, log)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
// Stores built directly with the New* constructors borrow their client and
// leave it open on Close.
package kvstore
