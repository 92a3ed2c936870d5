package clipboard

import "errors"

var (
	ErrNoSystemClipboard = errors.New("no system clipboard available")
	ErrEmptyCommand      = errors.New("clipboard command is empty")
	ErrAllSinksFailed    = errors.New("all clipboard sinks failed")
	ErrWriteFailed       = errors.New("failed to write to sink")
	ErrNilSink           = errors.New("sink is nil")
)
