package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/dmitrymomot/mailblocks/pkg/logger"
	"github.com/dmitrymomot/mailblocks/svc/composer"
)

// DefaultPrompt is printed before every command.
const DefaultPrompt = "mailblocks> "

// Terminal renders composer state and reads commands from a line-based input.
type Terminal struct {
	in     *bufio.Scanner
	out    io.Writer
	outMu  sync.Mutex
	log    *slog.Logger
	prompt string
	ctrl   *composer.Controller
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithLogger sets the logger; the default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(t *Terminal) {
		if log != nil {
			t.log = log
		}
	}
}

// WithPrompt replaces DefaultPrompt.
func WithPrompt(p string) Option {
	return func(t *Terminal) {
		t.prompt = p
	}
}

// MaxLineSize is the longest input line Run accepts.
const MaxLineSize = 4 << 20

// New reads commands from in and writes everything to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Terminal {
	if in == nil || out == nil {
		panic("repl: input and output are required")
	}
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	t := &Terminal{
		in:     sc,
		out:    out,
		log:    logger.Discard(),
		prompt: DefaultPrompt,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.log = t.log.With(logger.Component("repl"))
	return t
}

// Run renders the initial state and executes commands until quit, end of
// input or ctx is done. End of input and quit return nil.
func (t *Terminal) Run(ctx context.Context, ctrl *composer.Controller) error {
	if ctrl == nil {
		panic("repl: controller is required")
	}
	t.ctrl = ctrl

	t.renderState(ctrl.Service().Snapshot())
	t.printf("Typ %q voor een overzicht van de commando's.\n", "help")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, ok := t.readLine(t.prompt)
		if !ok {
			t.printf("\n")
			return t.in.Err()
		}

		quit, err := t.exec(ctx, line)
		if err != nil {
			t.log.DebugContext(ctx, "command failed", slog.String("line", line), logger.Error(err))
			if msg := composer.Message(err); msg != "" {
				t.printf("%s\n", msg)
			}
		}
		if quit {
			return nil
		}
	}
}

// Confirm asks prompt and reports whether the answer was yes. End of input
// counts as no.
func (t *Terminal) Confirm(_ context.Context, prompt string) bool {
	answer, ok := t.readLine(prompt + " [j/N] ")
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "j", "ja", "y", "yes":
		return true
	default:
		return false
	}
}

// Notify re-renders the section a change is about.
func (t *Terminal) Notify(_ context.Context, change composer.Change) {
	switch change.Kind {
	case composer.KindBlocks:
		t.write(renderBlocks(change.State.Blocks))
	case composer.KindTemplates:
		t.write(renderTemplates(change.State.Templates))
	case composer.KindEmail:
		t.write(renderEmail(change.State.Email))
	}
}

func (t *Terminal) renderState(s composer.State) {
	t.write(renderBlocks(s.Blocks) + renderTemplates(s.Templates) + renderEmail(s.Email))
}

// readLine prints prompt and returns the next input line without its line
// ending. ok is false at end of input.
func (t *Terminal) readLine(prompt string) (string, bool) {
	if prompt != "" {
		t.write(prompt)
	}
	if !t.in.Scan() {
		return "", false
	}
	return strings.TrimRight(t.in.Text(), "\r"), true
}

func (t *Terminal) printf(format string, args ...any) {
	t.write(fmt.Sprintf(format, args...))
}

func (t *Terminal) write(s string) {
	t.outMu.Lock()
	defer t.outMu.Unlock()
	if _, err := io.WriteString(t.out, s); err != nil && !errors.Is(err, io.ErrClosedPipe) {
		t.log.Warn("failed to write to terminal", logger.Error(err))
	}
}
