package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Command is a user-configured program that reads the text from stdin, such
// as "tmux load-buffer -" or "xclip -selection primary".
type Command struct {
	Name string
	Args []string
}

// ParseCommand splits a command line on whitespace. Quoting is not
// supported.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}
	return Command{Name: fields[0], Args: fields[1:]}, nil
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// CommandSink runs a command with the text on stdin.
type CommandSink struct {
	cmd Command
}

// NewCommandSink returns a sink for cmd.
func NewCommandSink(cmd Command) *CommandSink {
	return &CommandSink{cmd: cmd}
}

func (s *CommandSink) Name() string {
	return "command"
}

// Command returns the command the sink runs.
func (s *CommandSink) Command() Command {
	return s.cmd
}

func (s *CommandSink) Write(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, s.cmd.Name, s.cmd.Args...)
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%s: %w: %s", s.cmd, err, msg)
		} else {
			err = fmt.Errorf("%s: %w", s.cmd, err)
		}
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}
