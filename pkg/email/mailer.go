package email

import (
	"context"
	"strings"

	"github.com/dmitrymomot/mailblocks/pkg/validator"
)

// EmailSender delivers a single message.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams describes one outgoing message. At least one of BodyText
// and BodyHTML must be set.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`
	Subject  string `json:"subject"`
	BodyText string `json:"body_text,omitempty"`
	BodyHTML string `json:"body_html,omitempty"`
	Tag      string `json:"tag,omitempty"`
}

// Validate checks the recipient, subject and body.
func (p SendEmailParams) Validate() error {
	return validator.Apply(
		validator.Required("send_to", p.SendTo),
		validator.ValidEmail("send_to", p.SendTo),
		validator.Required("subject", p.Subject),
		validator.MaxRunes("subject", p.Subject, 255),
		validator.Required("body", strings.TrimSpace(p.BodyText)+strings.TrimSpace(p.BodyHTML)),
	)
}
