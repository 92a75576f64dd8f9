package push

import "context"

// IPush delivers push notifications to registered device tokens.
type IPush interface {
	// SendToTokens sends the same notification to every token and reports
	// which tokens are no longer registered.
	SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) (Result, error)
}
