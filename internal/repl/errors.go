package repl

import "errors"

var (
	ErrUsage          = errors.New("gebruik")
	ErrUnknownCommand = errors.New("onbekend commando")
)
