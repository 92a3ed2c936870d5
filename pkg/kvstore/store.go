package kvstore

import (
	"context"
	"strings"
)

// Store is a flat key-value persistence backend.
type Store interface {
	// Load returns the value stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save overwrites the value stored under key.
	Save(ctx context.Context, key string, data []byte) error
	// Close releases resources owned by the store. Calls after Close fail
	// with ErrClosed.
	Close() error
}

// Pinger is implemented by stores that talk to a server.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks that s can still reach its backend. Stores without a
// connection always succeed.
func Ping(ctx context.Context, s Store) error {
	if p, ok := s.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// validateKey rejects keys that would escape a directory or object prefix.
func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	if key == "." || key == ".." || strings.ContainsAny(key, "/\\\x00") {
		return ErrInvalidKey
	}
	return nil
}

func clone(data []byte) []byte {
	if data == nil {
		return []byte{}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out
}
