package notifier

import "errors"

var (
	ErrUnknownStage = errors.New("unknown escalation stage")
	ErrNoRecipients = errors.New("no recipients to notify")
)
