package composer

import "slices"

// Categories attached to blocks and email items.
const (
	CategoryCustom   = "custom"
	CategoryTemplate = "template"
	CategoryGreeting = "aanhef"
	CategoryClosing  = "afsluiting"
	CategoryStandard = "standaard"
	CategoryQuestion = "vraag"
)

// Block is a reusable text snippet in the catalog.
type Block struct {
	ID       int64  `json:"id" yaml:"id"`
	Text     string `json:"text" yaml:"text"`
	Category string `json:"category" yaml:"category"`
}

// Template is a named, ordered snapshot of texts. Content holds copies,
// never references to blocks.
type Template struct {
	ID      int64    `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Content []string `json:"content" yaml:"content"`
}

// Item is a placed copy of a block's text in the current email. Editing an
// item never touches the block it came from.
type Item struct {
	ID       string `json:"id" yaml:"id"`
	Text     string `json:"text" yaml:"text"`
	Category string `json:"category" yaml:"category"`
}

// State is a deep copy of everything the service holds.
type State struct {
	Blocks    []Block
	Templates []Template
	Email     []Item
}

func cloneTemplate(t Template) Template {
	t.Content = slices.Clone(t.Content)
	if t.Content == nil {
		t.Content = []string{}
	}
	return t
}

func cloneTemplates(ts []Template) []Template {
	out := make([]Template, len(ts))
	for i, t := range ts {
		out[i] = cloneTemplate(t)
	}
	return out
}

func cloneBlocks(bs []Block) []Block {
	out := make([]Block, len(bs))
	copy(out, bs)
	return out
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// texts returns the item texts in order.
func texts(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Text
	}
	return out
}
