package usecase

import (
	"context"

	"vault-srv/internal/inactivity"
	"vault-srv/internal/inactivity/repository"
	"vault-srv/internal/model"
)

func (uc *usecase) RecordActivity(ctx context.Context, sc model.Scope) error {
	if err := uc.repo.TouchActivity(ctx, sc, sc.UserID); err != nil {
		if err == repository.ErrNotFound {
			return inactivity.ErrTriggerNotFound
		}
		uc.l.Errorf(ctx, "internal.inactivity.usecase.RecordActivity: %v", err)
		return err
	}

	return nil
}

func (uc *usecase) GetAlerts(ctx context.Context, sc model.Scope, ip inactivity.GetAlertsInput) (inactivity.GetAlertsOutput, error) {
	if ip.Stage != "" {
		switch ip.Stage {
		case model.AlertStageUserWarning, model.AlertStageNomineeWarning, model.AlertStageEmergencyGranted:
		default:
			return inactivity.GetAlertsOutput{}, inactivity.ErrInvalidStage
		}
	}

	userID := ip.UserID
	if userID == "" {
		userID = sc.UserID
	}

	alerts, pag, err := uc.repo.GetAlerts(ctx, sc, repository.GetAlertsOptions{
		Filter: repository.Filter{
			UserID: userID,
			Stage:  ip.Stage,
		},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.inactivity.usecase.GetAlerts: %v", err)
		return inactivity.GetAlertsOutput{}, err
	}

	return inactivity.GetAlertsOutput{
		Alerts:    alerts,
		Paginator: pag,
	}, nil
}
