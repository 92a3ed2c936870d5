package composer

import "context"

// Prompts shown before destructive operations.
const (
	PromptDeleteBlock    = "Weet je zeker dat je dit blok wilt verwijderen?"
	PromptClearEmail     = "Weet je zeker dat je het canvas wilt leegmaken?"
	PromptDeleteTemplate = "Weet je zeker dat je dit template wilt verwijderen?"
)

// ConfirmFunc asks the user a yes/no question and reports the answer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

// AlwaysConfirm answers yes without asking.
func AlwaysConfirm(context.Context, string) bool { return true }

// NeverConfirm answers no without asking.
func NeverConfirm(context.Context, string) bool { return false }
