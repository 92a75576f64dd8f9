package usecase

import (
	"fmt"

	"vault-srv/internal/model"
	"vault-srv/internal/notifier"
)

const defaultReminderMessage = "We haven't seen you in a while. Please log in to keep your account active."

// ownerDisplayName prefers the full name and falls back to the email.
func ownerDisplayName(owner model.Profile) string {
	if owner.FullName != "" {
		return owner.FullName
	}
	return owner.Email
}

func buildUserWarningEmail(ip notifier.DispatchInput, recipient notifier.Recipient, customMessage string) (string, string) {
	name := recipient.Name
	if name == "" {
		name = "there"
	}
	if customMessage == "" {
		customMessage = defaultReminderMessage
	}

	subject := fmt.Sprintf("Inactivity Alert: %d days", ip.InactiveDays)
	html := fmt.Sprintf(`
		<h1>Hello %s,</h1>
		<p>You have been inactive for <strong>%d days</strong>.</p>
		<p>%s</p>
		<p>If you remain inactive for %d days, your emergency contacts will be notified.</p>
		<p>Best regards,<br>Family Vault Team</p>
	`, name, ip.InactiveDays, customMessage, ip.ThresholdDays)

	return subject, html
}

func buildNomineeWarningEmail(ip notifier.DispatchInput, recipient notifier.Recipient) (string, string) {
	owner := ownerDisplayName(ip.Owner)

	subject := fmt.Sprintf("Inactivity Alert: %s", owner)
	html := fmt.Sprintf(`
		<h1>Hello %s,</h1>
		<p><strong>%s</strong> has been inactive on Family Vault for <strong>%d days</strong>.</p>
		<p>If they remain inactive for %d days total, you will be granted emergency access to their shared documents.</p>
		<p>This is an automated alert from Family Vault's emergency access system.</p>
		<p>Best regards,<br>Family Vault Team</p>
	`, recipient.Name, owner, ip.InactiveDays, ip.ThresholdDays)

	return subject, html
}

func buildEmergencyGrantedEmail(ip notifier.DispatchInput, recipient notifier.Recipient) (string, string) {
	owner := ownerDisplayName(ip.Owner)

	subject := fmt.Sprintf("Emergency Access Granted: %s", owner)
	html := fmt.Sprintf(`
		<h1>Emergency Access Granted</h1>
		<p>Dear %s,</p>
		<p><strong>%s</strong> has been inactive for <strong>%d days</strong>.</p>
		<p>You have now been granted emergency access to their shared documents.</p>
		<p>To access the documents, visit the Family Vault emergency access portal and verify your identity with your email.</p>
		<p><strong>This access is granted due to prolonged inactivity and is part of the user's emergency preparedness plan.</strong></p>
		<p>Best regards,<br>Family Vault Team</p>
	`, recipient.Name, owner, ip.InactiveDays)

	return subject, html
}

// buildOwnerPush returns the title and body of the best-effort owner push
// for each stage.
func buildOwnerPush(ip notifier.DispatchInput) (string, string) {
	switch ip.Stage {
	case model.AlertStageUserWarning:
		return "Inactivity Alert",
			fmt.Sprintf("You've been inactive for %d days. Log in to keep your account active.", ip.InactiveDays)
	case model.AlertStageNomineeWarning:
		return "Nominees Notified",
			fmt.Sprintf("Your nominees have been notified about your %d days of inactivity.", ip.InactiveDays)
	case model.AlertStageEmergencyGranted:
		return "Emergency Access Granted",
			"Emergency access has been granted to your nominees due to prolonged inactivity."
	}
	return "", ""
}
