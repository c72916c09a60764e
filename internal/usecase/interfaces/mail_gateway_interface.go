package interfaces

import "context"

// IMailGateway abstracts the transactional mail transport (e.g. SendGrid).
//
// Sends are fire-and-forget from the caller's point of view. An unconfigured
// transport is a valid deployment: Send logs at informational level and
// returns nil without doing anything.

type IMailGateway interface {
	Send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error
}
