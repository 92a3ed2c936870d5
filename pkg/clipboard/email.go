package clipboard

import (
	"context"
	"errors"

	"github.com/dmitrymomot/mailblocks/pkg/email"
)

// DefaultEmailSubject is used when NewEmailSink gets an empty subject.
const DefaultEmailSubject = "Concept e-mail"

// EmailSink mails the text to a fixed address.
type EmailSink struct {
	sender  email.EmailSender
	to      string
	subject string
}

// NewEmailSink sends through sender to the given address.
func NewEmailSink(sender email.EmailSender, to, subject string) *EmailSink {
	if sender == nil {
		panic("clipboard: email sender is nil")
	}
	if subject == "" {
		subject = DefaultEmailSubject
	}
	return &EmailSink{sender: sender, to: to, subject: subject}
}

func (s *EmailSink) Name() string {
	return "email"
}

func (s *EmailSink) Write(ctx context.Context, text string) error {
	err := s.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   s.to,
		Subject:  s.subject,
		BodyText: text,
		Tag:      "mailblocks-export",
	})
	if err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}
