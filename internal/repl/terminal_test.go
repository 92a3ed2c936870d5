package repl_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailblocks/internal/repl"
	"github.com/dmitrymomot/mailblocks/pkg/clipboard"
	"github.com/dmitrymomot/mailblocks/pkg/kvstore"
	"github.com/dmitrymomot/mailblocks/svc/composer"
)

type session struct {
	term   *repl.Terminal
	ctrl   *composer.Controller
	out    *bytes.Buffer
	copied []string
}

func newSession(t *testing.T, input string) *session {
	t.Helper()
	s := &session{out: &bytes.Buffer{}}
	s.term = repl.New(strings.NewReader(input), s.out, repl.WithPrompt("> "))

	svc, err := composer.NewService(context.Background(), kvstore.NewMemoryStore(nil),
		composer.WithConfirm(s.term.Confirm),
		composer.WithObserver(s.term),
		composer.WithIDGenerator(&composer.SequenceIDGenerator{}),
	)
	require.NoError(t, err)

	sink := clipboard.SinkFunc(func(_ context.Context, text string) error {
		s.copied = append(s.copied, text)
		return nil
	})
	s.ctrl = composer.NewController(svc, sink)
	return s
}

func (s *session) run(t *testing.T) {
	t.Helper()
	require.NoError(t, s.term.Run(context.Background(), s.ctrl))
}

func TestRun_InitialRender(t *testing.T) {
	t.Parallel()
	s := newSession(t, "")
	s.run(t)

	out := s.out.String()
	assert.Contains(t, out, "Blokken:")
	assert.Contains(t, out, "[1] aanhef     Beste [Naam],")
	assert.Contains(t, out, "[0] "+composer.MsgChooseTemplate)
	assert.Contains(t, out, "[2] Offerte aanvraag (4 regels)")
	assert.Contains(t, out, composer.MsgEmptyCanvas)
}

func TestRun_ComposeAndCopy(t *testing.T) {
	t.Parallel()
	s := newSession(t, strings.Join([]string{
		"drop 2",
		"drop 1",
		"move 2 1",
		"edit 1",
		"Geachte heer Jansen,",
		"copy",
		"quit",
		"drop 3",
	}, "\n"))
	s.run(t)

	assert.Equal(t, []string{"Geachte heer Jansen,\n\nMet vriendelijke groet,"}, s.copied)
	assert.Len(t, s.ctrl.Service().Email(), 2, "nothing runs after quit")

	out := s.out.String()
	assert.Contains(t, out, "Huidige tekst: Beste [Naam],")
	assert.Contains(t, out, "   1. Geachte heer Jansen,")
	assert.Contains(t, out, composer.MsgCopied)
}

func TestRun_BlankEditKeepsText(t *testing.T) {
	t.Parallel()
	s := newSession(t, "drop 3\nedit 1\n\n")
	s.run(t)

	email := s.ctrl.Service().Email()
	require.Len(t, email, 1)
	assert.Equal(t, "Hartelijk dank voor uw bericht.", email[0].Text)
	_, editing := s.ctrl.Editing()
	assert.False(t, editing)
}

func TestRun_Confirmations(t *testing.T) {
	t.Parallel()
	s := newSession(t, strings.Join([]string{
		"delete 1",
		"n",
		"delete 2",
		"ja",
		"load 1",
		"clear",
		"",
		"untemplate 2",
		"j",
	}, "\n"))
	s.run(t)

	svc := s.ctrl.Service()
	assert.Len(t, svc.Blocks(), 4)
	_, err := svc.Block(1)
	assert.NoError(t, err)
	_, err = svc.Block(2)
	assert.ErrorIs(t, err, composer.ErrNotFound)

	assert.Len(t, svc.Email(), 4, "an empty answer means no")
	assert.Len(t, svc.Templates(), 1)

	out := s.out.String()
	assert.Contains(t, out, composer.PromptDeleteBlock+" [j/N] ")
	assert.Contains(t, out, composer.PromptClearEmail+" [j/N] ")
}

func TestRun_SaveTemplate(t *testing.T) {
	t.Parallel()

	t.Run("empty email", func(t *testing.T) {
		t.Parallel()
		s := newSession(t, "save\n")
		s.run(t)

		assert.Contains(t, s.out.String(), composer.MsgNothingToSave)
		assert.Len(t, s.ctrl.Service().Templates(), 2)
	})

	t.Run("retry after too long name", func(t *testing.T) {
		t.Parallel()
		s := newSession(t, strings.Join([]string{
			"drop 5",
			"save",
			strings.Repeat("x", composer.MaxTemplateNameLength+1),
			"Info vragen",
		}, "\n"))
		s.run(t)

		out := s.out.String()
		assert.Contains(t, out, composer.MsgTemplateNameTooLong)
		assert.Contains(t, out, composer.MsgTemplateSaved)
		assert.Contains(t, out, "Info vragen (1 regels)")
		assert.False(t, s.ctrl.SaveDialogOpen())
	})

	t.Run("blank name cancels", func(t *testing.T) {
		t.Parallel()
		s := newSession(t, "drop 5\nsave\n   \n")
		s.run(t)

		assert.Len(t, s.ctrl.Service().Templates(), 2)
		assert.False(t, s.ctrl.SaveDialogOpen())
	})
}

func TestRun_AddBlock(t *testing.T) {
	t.Parallel()
	s := newSession(t, "add Tot snel!\nadd\nVan de prompt\nadd\n   \n")
	s.run(t)

	blocks := s.ctrl.Service().Blocks()
	require.Len(t, blocks, 7)
	assert.Equal(t, "Tot snel!", blocks[5].Text)
	assert.Equal(t, "Van de prompt", blocks[6].Text)
	assert.Contains(t, s.out.String(), composer.MsgEnterBlockText)
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown command", "frobnicate", "onbekend commando: frobnicate"},
		{"missing id", "drop", "gebruik: drop <id>"},
		{"bad position", "remove nul", "gebruik: remove <n>"},
		{"zero position", "edit 0", "gebruik: edit <n>"},
		{"move needs two", "move 1", "gebruik: move <van> <naar>"},
		{"no such position", "remove 3", composer.MsgNoSuchPosition},
		{"no such block", "drop 99", composer.MsgBlockNotFound},
		{"no such template", "load 99", composer.MsgTemplateNotFound},
		{"nothing to copy", "copy", composer.MsgNothingToCopy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newSession(t, tt.input+"\n")
			s.run(t)
			assert.Contains(t, s.out.String(), tt.want)
		})
	}
}

func TestRun_HelpAndViews(t *testing.T) {
	t.Parallel()
	s := newSession(t, "help\nblocks\ntemplates\nls\n")
	s.run(t)

	out := s.out.String()
	for _, usage := range []string{"add <tekst>", "move <van> <naar>", "untemplate <id>", "reload", "status", "quit"} {
		assert.Contains(t, out, usage)
	}
	assert.Equal(t, 2, strings.Count(out, "Blokken:"))
	assert.Equal(t, 2, strings.Count(out, "E-mail:"))
}

func TestRun_Status(t *testing.T) {
	t.Parallel()
	s := newSession(t, "status\n")
	s.run(t)

	assert.Contains(t, s.out.String(), composer.MsgStoreReachable)
}

func TestRun_LongPastedLine(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("lorem ipsum ", 20_000)
	s := newSession(t, "add "+long+"\nblocks\n")
	s.run(t)

	blocks := s.ctrl.Service().Blocks()
	require.Len(t, blocks, 6)
	assert.Equal(t, strings.TrimSpace(long), blocks[5].Text)
}

func TestRun_MultilineItems(t *testing.T) {
	t.Parallel()
	s := newSession(t, "")
	_, err := s.ctrl.AddedBlockText(context.Background(), "regel een\nregel twee")
	require.NoError(t, err)

	assert.Contains(t, s.out.String(), "regel een\n      regel twee")
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()
	s := newSession(t, "drop 1\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.term.Run(ctx, s.ctrl)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.ctrl.Service().Email())
}

func TestNew_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { repl.New(nil, &bytes.Buffer{}) })
	assert.Panics(t, func() { repl.New(strings.NewReader(""), nil) })
	assert.Panics(t, func() {
		_ = repl.New(strings.NewReader(""), &bytes.Buffer{}).Run(context.Background(), nil)
	})
}
