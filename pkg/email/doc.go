// Package email sends plain-text messages through a provider-agnostic
// EmailSender.
//
// mailblocks uses it for the "email" export sink: the composed text is
// mailed to the user's own address so it can be pasted from any device.
//
// Two implementations ship with the package:
//   - NewPostmarkClient delivers through Postmark's transactional API
//   - NewDevSender writes each message to a directory as .txt plus .json metadata
//
// Both validate SendEmailParams before doing any work:
//
//	sender, err := email.NewPostmarkClient(cfg)
//	if err != nil {
//	    return err
//	}
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "me@example.com",
//	    Subject:  "Concept e-mail",
//	    BodyText: text,
//	    Tag:      "mailblocks-export",
//	})
//
// Errors wrap ErrFailedToSendEmail or ErrInvalidConfig; invalid parameters
// come back as validator.ValidationErrors.
package email
