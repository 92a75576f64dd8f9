package mailer

import "context"

type IMailer interface {
	// Send delivers a single transactional email and returns the provider
	// receipt on success.
	Send(ctx context.Context, input SendInput) (*Receipt, error)
}
