package composer

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("invalid input")
	ErrStorage          = errors.New("storage failure")
	ErrEmptyComposition = errors.New("the email is empty")
	ErrNotFound         = errors.New("not found")
	ErrCancelled        = errors.New("cancelled by user")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrUnknownCodec     = errors.New("unknown codec")
	ErrNotEditing       = errors.New("no item is being edited")
	ErrNoTemplateDialog = errors.New("save template dialog is not open")
	ErrNoSinkConfigured = errors.New("no export sink configured")
	ErrExportFailed     = errors.New("failed to export email")

	// Narrower forms; errors.Is still matches the general sentinel.
	ErrBlockNotFound    = fmt.Errorf("block %w", ErrNotFound)
	ErrTemplateNotFound = fmt.Errorf("template %w", ErrNotFound)
	ErrItemNotFound     = fmt.Errorf("item %w", ErrNotFound)
	ErrNothingToSave    = fmt.Errorf("%w: nothing to save as template", ErrEmptyComposition)
	ErrStoreUnreachable = fmt.Errorf("%w: store unreachable", ErrStorage)
)
