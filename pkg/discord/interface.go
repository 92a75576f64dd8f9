package discord

import "context"

// IDiscord is the ops-channel webhook used for internal error reports.
type IDiscord interface {
	ReportBug(ctx context.Context, message string) error
	SendMessage(ctx context.Context, content string) error
}
