package email

import (
	"context"
	"time"

	"github.com/mrz1836/postmark"
)

// NewPostmarkClientWithAPI builds a client around a fake API for tests.
func NewPostmarkClientWithAPI(cfg Config, api func(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)) (EmailSender, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &postmarkClient{client: postmarkFunc(api), config: cfg}, nil
}

type postmarkFunc func(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)

func (f postmarkFunc) SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error) {
	return f(ctx, email)
}

// SetClock fixes the DevSender timestamp.
func (d *DevSender) SetClock(now func() time.Time) {
	d.now = now
}

var SanitizeFilename = sanitizeFilename
