package repl

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/mailblocks/svc/composer"
)

const indent = "      "

func renderBlocks(blocks []composer.Block) string {
	var b strings.Builder
	b.WriteString("\nBlokken:\n")
	if len(blocks) == 0 {
		b.WriteString("  (geen blokken)\n")
	}
	for _, blk := range blocks {
		fmt.Fprintf(&b, "  [%d] %-10s %s\n", blk.ID, blk.Category, multiline(blk.Text))
	}
	return b.String()
}

func renderTemplates(templates []composer.Template) string {
	var b strings.Builder
	b.WriteString("\nTemplates:\n")
	fmt.Fprintf(&b, "  [0] %s\n", composer.MsgChooseTemplate)
	for _, tpl := range templates {
		fmt.Fprintf(&b, "  [%d] %s (%d regels)\n", tpl.ID, tpl.Name, len(tpl.Content))
	}
	return b.String()
}

func renderEmail(items []composer.Item) string {
	var b strings.Builder
	b.WriteString("\nE-mail:\n")
	if len(items) == 0 {
		fmt.Fprintf(&b, "  %s\n", composer.MsgEmptyCanvas)
	}
	for i, it := range items {
		fmt.Fprintf(&b, "  %2d. %s\n", i+1, multiline(it.Text))
	}
	return b.String()
}

// multiline indents continuation lines under the first one.
func multiline(s string) string {
	return strings.ReplaceAll(s, "\n", "\n"+indent)
}
