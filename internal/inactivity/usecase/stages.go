package usecase

import (
	"context"

	"vault-srv/internal/inactivity/repository"
	"vault-srv/internal/model"
	"vault-srv/internal/notifier"
)

func (uc *usecase) sendUserWarning(ctx context.Context, sc model.Scope, item repository.TriggerWithProfile, days int) {
	trigger := item.Trigger

	customMessage := ""
	if trigger.CustomMessage != nil {
		customMessage = *trigger.CustomMessage
	}

	out, err := uc.notifier.Dispatch(ctx, sc, notifier.DispatchInput{
		Stage: model.AlertStageUserWarning,
		Owner: item.Profile,
		Recipients: []notifier.Recipient{
			{Email: item.Profile.Email, Name: item.Profile.FullName},
		},
		InactiveDays:  days,
		ThresholdDays: trigger.ThresholdDays,
		CustomMessage: customMessage,
		OwnerPush:     item.Profile.PushEnabled,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.inactivity.usecase.sendUserWarning: %v", err)
		return
	}

	uc.recordResults(ctx, sc, trigger.UserID, model.AlertStageUserWarning, days, out.Results)
}

func (uc *usecase) sendNomineeWarnings(ctx context.Context, sc model.Scope, item repository.TriggerWithProfile, days int) {
	trigger := item.Trigger

	nominees, err := uc.repo.ListVerifiedNominees(ctx, sc, trigger.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.inactivity.usecase.sendNomineeWarnings: %v", err)
		return
	}
	if len(nominees) == 0 {
		uc.l.Infof(ctx, "internal.inactivity.usecase.sendNomineeWarnings: no verified nominees for user %s", trigger.UserID)
		return
	}

	out, err := uc.notifier.Dispatch(ctx, sc, notifier.DispatchInput{
		Stage:         model.AlertStageNomineeWarning,
		Owner:         item.Profile,
		Recipients:    nomineesToRecipients(nominees),
		InactiveDays:  days,
		ThresholdDays: trigger.ThresholdDays,
		OwnerPush:     item.Profile.PushEnabled,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.inactivity.usecase.sendNomineeWarnings.Dispatch: %v", err)
		return
	}

	uc.recordResults(ctx, sc, trigger.UserID, model.AlertStageNomineeWarning, days, out.Results)
}

// grantEmergencyAccess notifies the nominees and then latches the grant
// flag. The latch is conditional, so a sweep racing another one simply
// finds the flag already set.
func (uc *usecase) grantEmergencyAccess(ctx context.Context, sc model.Scope, item repository.TriggerWithProfile, days int) bool {
	trigger := item.Trigger

	nominees, err := uc.repo.ListVerifiedNominees(ctx, sc, trigger.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.inactivity.usecase.grantEmergencyAccess: %v", err)
		return false
	}

	if len(nominees) > 0 {
		out, dispatchErr := uc.notifier.Dispatch(ctx, sc, notifier.DispatchInput{
			Stage:         model.AlertStageEmergencyGranted,
			Owner:         item.Profile,
			Recipients:    nomineesToRecipients(nominees),
			InactiveDays:  days,
			ThresholdDays: trigger.ThresholdDays,
			OwnerPush:     item.Profile.PushEnabled,
		})
		if dispatchErr != nil {
			uc.l.Errorf(ctx, "internal.inactivity.usecase.grantEmergencyAccess.Dispatch: %v", dispatchErr)
		} else {
			uc.recordResults(ctx, sc, trigger.UserID, model.AlertStageEmergencyGranted, days, out.Results)
		}
	} else {
		uc.l.Infof(ctx, "internal.inactivity.usecase.grantEmergencyAccess: no verified nominees for user %s", trigger.UserID)
	}

	latched, err := uc.repo.GrantEmergency(ctx, sc, trigger.ID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.inactivity.usecase.grantEmergencyAccess.GrantEmergency: %v", err)
		return false
	}

	return latched
}

// recordResults writes one audit row per delivery attempt. Attempts are
// recorded whether or not the gateway accepted the message.
func (uc *usecase) recordResults(ctx context.Context, sc model.Scope, userID, stage string, days int, results []notifier.RecipientResult) {
	for _, result := range results {
		status := model.AlertStatusSent
		var failReason *string
		if !result.Sent {
			status = model.AlertStatusFailed
			reason := result.Reason
			failReason = &reason
		}

		recipientType := model.RecipientTypeUser
		if result.Recipient.NomineeID != nil {
			recipientType = model.RecipientTypeNominee
		}

		if _, err := uc.repo.CreateAlert(ctx, sc, repository.CreateAlertOptions{
			UserID:        userID,
			NomineeID:     result.Recipient.NomineeID,
			Stage:         stage,
			RecipientType: recipientType,
			Recipient:     result.Recipient.Email,
			InactiveDays:  days,
			Message:       result.Message,
			Status:        status,
			FailReason:    failReason,
		}); err != nil {
			uc.l.Errorf(ctx, "internal.inactivity.usecase.recordResults: %v", err)
		}
	}
}

func nomineesToRecipients(nominees []model.Nominee) []notifier.Recipient {
	recipients := make([]notifier.Recipient, 0, len(nominees))
	for _, n := range nominees {
		id := n.ID
		recipients = append(recipients, notifier.Recipient{
			NomineeID: &id,
			Email:     n.Email,
			Name:      n.FullName,
		})
	}
	return recipients
}
