package notifier

import "vault-srv/internal/model"

// Recipient is one email destination of a dispatch.
type Recipient struct {
	NomineeID *string
	Email     string
	Name      string
}

// DispatchInput describes one escalation-stage notification batch.
type DispatchInput struct {
	Stage         string
	Owner         model.Profile
	Recipients    []Recipient
	InactiveDays  int
	ThresholdDays int
	CustomMessage string

	// OwnerPush also raises a push notification on the owner's devices.
	OwnerPush bool
}

// RecipientResult is the outcome of one delivery attempt.
type RecipientResult struct {
	Recipient Recipient
	Message   string
	Sent      bool
	Reason    string
}

// DispatchOutput collects the per-recipient outcomes of one dispatch.
type DispatchOutput struct {
	Results []RecipientResult
}
