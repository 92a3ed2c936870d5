package kvstore

import "errors"

var (
	ErrNotFound       = errors.New("key not found")
	ErrEmptyKey       = errors.New("key must not be empty")
	ErrInvalidKey     = errors.New("key contains characters the backend cannot store")
	ErrClosed         = errors.New("store is closed")
	ErrInvalidConfig  = errors.New("invalid store configuration")
	ErrUnknownBackend = errors.New("unknown store backend")
	ErrFailedToLoad   = errors.New("failed to load value")
	ErrFailedToSave   = errors.New("failed to save value")
	ErrFailedToOpen   = errors.New("failed to open store")
)
