package usecase

import (
	"context"

	"vault-srv/internal/model"
	"vault-srv/internal/notifier"
	"vault-srv/pkg/mailer"
)

func (uc *usecase) Dispatch(ctx context.Context, sc model.Scope, ip notifier.DispatchInput) (notifier.DispatchOutput, error) {
	if len(ip.Recipients) == 0 {
		return notifier.DispatchOutput{}, notifier.ErrNoRecipients
	}

	var out notifier.DispatchOutput
	for _, recipient := range ip.Recipients {
		subject, html, err := uc.buildEmail(ip, recipient)
		if err != nil {
			uc.l.Errorf(ctx, "internal.notifier.usecase.Dispatch: %v", err)
			return notifier.DispatchOutput{}, err
		}

		result := notifier.RecipientResult{
			Recipient: recipient,
			Message:   subject,
			Sent:      true,
		}
		if _, sendErr := uc.mailer.Send(ctx, mailer.SendInput{
			To:      []string{recipient.Email},
			Subject: subject,
			HTML:    html,
		}); sendErr != nil {
			uc.l.Warnf(ctx, "internal.notifier.usecase.Dispatch.Send: %v", sendErr)
			result.Sent = false
			result.Reason = sendErr.Error()
		}

		out.Results = append(out.Results, result)
	}

	// Owner push is best effort and never affects the outcome.
	if ip.OwnerPush && uc.push != nil {
		title, body := buildOwnerPush(ip)
		if title != "" {
			if err := uc.push.SendToUser(ctx, sc, ip.Owner.ID, title, body, nil); err != nil {
				uc.l.Warnf(ctx, "internal.notifier.usecase.Dispatch.SendToUser: %v", err)
			}
		}
	}

	return out, nil
}

func (uc *usecase) buildEmail(ip notifier.DispatchInput, recipient notifier.Recipient) (string, string, error) {
	switch ip.Stage {
	case model.AlertStageUserWarning:
		subject, html := buildUserWarningEmail(ip, recipient, ip.CustomMessage)
		return subject, html, nil
	case model.AlertStageNomineeWarning:
		subject, html := buildNomineeWarningEmail(ip, recipient)
		return subject, html, nil
	case model.AlertStageEmergencyGranted:
		subject, html := buildEmergencyGrantedEmail(ip, recipient)
		return subject, html, nil
	default:
		return "", "", notifier.ErrUnknownStage
	}
}
