package repl

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/mailblocks/svc/composer"
)

type command struct {
	name    string
	usage   string
	summary string
	run     func(t *Terminal, ctx context.Context, args string) error
}

// commands returns the command table in the order help lists them.
func commands() []command {
	return []command{
		{"blocks", "blocks", "toon de blokken", cmdBlocks},
		{"templates", "templates", "toon de templates", cmdTemplates},
		{"email", "email", "toon de e-mail", cmdEmail},
		{"add", "add <tekst>", "voeg een eigen blok toe", cmdAdd},
		{"delete", "delete <id>", "verwijder een blok", cmdDelete},
		{"drop", "drop <id>", "zet een blok onderaan de e-mail", cmdDrop},
		{"remove", "remove <n>", "haal blok n uit de e-mail", cmdRemove},
		{"move", "move <van> <naar>", "verplaats blok in de e-mail", cmdMove},
		{"edit", "edit <n>", "bewerk de tekst van blok n", cmdEdit},
		{"load", "load <id>", "laad een template in de e-mail", cmdLoad},
		{"save", "save", "sla de e-mail op als template", cmdSave},
		{"untemplate", "untemplate <id>", "verwijder een template", cmdDeleteTemplate},
		{"copy", "copy", "kopieer de e-mail", cmdCopy},
		{"clear", "clear", "maak de e-mail leeg", cmdClear},
		{"reload", "reload", "lees blokken en templates opnieuw in", cmdReload},
		{"status", "status", "controleer of de opslag bereikbaar is", cmdStatus},
		{"help", "help", "toon dit overzicht", cmdHelp},
		{"quit", "quit", "afsluiten", nil},
	}
}

var aliases = map[string]string{
	"exit": "quit",
	"q":    "quit",
	"?":    "help",
	"ls":   "email",
}

// exec runs one input line. quit is true when the session should end.
func (t *Terminal) exec(ctx context.Context, line string) (quit bool, err error) {
	name, args, _ := strings.Cut(strings.TrimSpace(line), " ")
	if name == "" {
		return false, nil
	}
	name = strings.ToLower(name)
	if alias, ok := aliases[name]; ok {
		name = alias
	}

	for _, c := range commands() {
		if c.name != name {
			continue
		}
		if c.run == nil {
			return true, nil
		}
		return false, c.run(t, ctx, strings.TrimSpace(args))
	}
	return false, fmt.Errorf("%w: %s (typ help)", ErrUnknownCommand, name)
}

func cmdBlocks(t *Terminal, _ context.Context, _ string) error {
	t.write(renderBlocks(t.ctrl.Service().Blocks()))
	return nil
}

func cmdTemplates(t *Terminal, _ context.Context, _ string) error {
	t.write(renderTemplates(t.ctrl.Service().Templates()))
	return nil
}

func cmdEmail(t *Terminal, _ context.Context, _ string) error {
	t.write(renderEmail(t.ctrl.Service().Email()))
	return nil
}

func cmdAdd(t *Terminal, ctx context.Context, args string) error {
	text := args
	if text == "" {
		var ok bool
		if text, ok = t.readLine("Tekst voor het nieuwe blok: "); !ok {
			return nil
		}
	}
	_, err := t.ctrl.AddedBlockText(ctx, text)
	return err
}

func cmdDelete(t *Terminal, ctx context.Context, args string) error {
	id, err := parseID(args, "delete <id>")
	if err != nil {
		return err
	}
	return t.ctrl.DeletedBlock(ctx, id)
}

func cmdDrop(t *Terminal, ctx context.Context, args string) error {
	id, err := parseID(args, "drop <id>")
	if err != nil {
		return err
	}
	_, err = t.ctrl.DroppedBlock(ctx, id)
	return err
}

func cmdRemove(t *Terminal, ctx context.Context, args string) error {
	index, err := parsePosition(args, "remove <n>")
	if err != nil {
		return err
	}
	return t.ctrl.RemovedItem(ctx, index)
}

func cmdMove(t *Terminal, ctx context.Context, args string) error {
	const usage = "move <van> <naar>"
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return usageError(usage)
	}
	from, err := parsePosition(fields[0], usage)
	if err != nil {
		return err
	}
	to, err := parsePosition(fields[1], usage)
	if err != nil {
		return err
	}
	return t.ctrl.MovedItem(ctx, from, to)
}

func cmdEdit(t *Terminal, ctx context.Context, args string) error {
	index, err := parsePosition(args, "edit <n>")
	if err != nil {
		return err
	}
	current, err := t.ctrl.EditedItem(index)
	if err != nil {
		return err
	}

	t.printf("Huidige tekst: %s\n", multiline(current))
	text, ok := t.readLine("Nieuwe tekst (leeg laat de tekst staan): ")
	if !ok {
		t.ctrl.CancelEdit()
		return nil
	}
	return t.ctrl.CommitEdit(ctx, text)
}

func cmdLoad(t *Terminal, ctx context.Context, args string) error {
	id, err := parseID(args, "load <id>")
	if err != nil {
		return err
	}
	return t.ctrl.SelectedTemplate(ctx, id)
}

func cmdSave(t *Terminal, ctx context.Context, _ string) error {
	if err := t.ctrl.RequestedSaveTemplate(); err != nil {
		return err
	}

	for {
		name, ok := t.readLine("Naam van het template: ")
		if !ok || strings.TrimSpace(name) == "" {
			t.ctrl.CancelSaveTemplate()
			return nil
		}

		_, err := t.ctrl.ConfirmedSaveTemplate(ctx, name)
		switch {
		case err == nil:
			t.printf("%s\n", composer.MsgTemplateSaved)
			return nil
		case t.ctrl.SaveDialogOpen():
			t.printf("%s\n", composer.Message(err))
		default:
			return err
		}
	}
}

func cmdDeleteTemplate(t *Terminal, ctx context.Context, args string) error {
	id, err := parseID(args, "untemplate <id>")
	if err != nil {
		return err
	}
	return t.ctrl.DeletedTemplate(ctx, id)
}

func cmdCopy(t *Terminal, ctx context.Context, _ string) error {
	if _, err := t.ctrl.RequestedCopy(ctx); err != nil {
		return err
	}
	t.printf("%s\n", composer.MsgCopied)
	return nil
}

func cmdClear(t *Terminal, ctx context.Context, _ string) error {
	return t.ctrl.RequestedClear(ctx)
}

func cmdReload(t *Terminal, ctx context.Context, _ string) error {
	return t.ctrl.RequestedReload(ctx)
}

func cmdStatus(t *Terminal, ctx context.Context, _ string) error {
	if err := t.ctrl.RequestedStatus(ctx); err != nil {
		return err
	}
	t.printf("%s\n", composer.MsgStoreReachable)
	return nil
}

func cmdHelp(t *Terminal, _ context.Context, _ string) error {
	var b strings.Builder
	b.WriteString("\nCommando's:\n")
	for _, c := range commands() {
		fmt.Fprintf(&b, "  %-20s %s\n", c.usage, c.summary)
	}
	t.write(b.String())
	return nil
}

func usageError(usage string) error {
	return fmt.Errorf("%w: %s", ErrUsage, usage)
}

func parseID(s, usage string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, usageError(usage)
	}
	return id, nil
}

// parsePosition turns a 1-based position into an index.
func parsePosition(s, usage string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, usageError(usage)
	}
	return n - 1, nil
}
