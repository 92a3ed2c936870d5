package email

// Config holds the Postmark credentials and sender identity. ReplyTo is
// optional and falls back to no Reply-To header.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	ReplyTo              string `env:"REPLY_TO_EMAIL"`
	DevDir               string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"` // DevSender output directory
}
