package usecase

import (
	"context"
	"sync"

	"vault-srv/internal/inactivity"
	"vault-srv/internal/inactivity/repository"
	"vault-srv/internal/model"
)

// Stage windows, counted in whole days of inactivity. The grant stage is
// bounded by each trigger's own threshold instead of a fixed day.
const (
	userWarningFromDay = 1
	userWarningToDay   = 3

	nomineeWarningFromDay = 4
	nomineeWarningToDay   = 6
)

func (uc *usecase) RunCheck(ctx context.Context, sc model.Scope) (inactivity.CheckOutput, error) {
	triggers, err := uc.repo.ListActiveTriggers(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.inactivity.usecase.RunCheck: %v", err)
		return inactivity.CheckOutput{}, err
	}

	if len(triggers) == 0 {
		return inactivity.CheckOutput{}, nil
	}

	var (
		mu        sync.Mutex
		processed []string
		wg        sync.WaitGroup
		sem       = make(chan struct{}, uc.cfg.MaxWorkers)
	)

	for _, item := range triggers {
		wg.Add(1)
		sem <- struct{}{}
		go func(item repository.TriggerWithProfile) {
			defer wg.Done()
			defer func() { <-sem }()

			// A panic while processing one owner must not take down the sweep.
			defer func() {
				if rec := recover(); rec != nil {
					uc.l.Errorf(ctx, "internal.inactivity.usecase.RunCheck: panic processing user %s: %v", item.Trigger.UserID, rec)
				}
			}()

			stagesFired := uc.processTrigger(ctx, sc, item)

			mu.Lock()
			for i := 0; i < stagesFired; i++ {
				processed = append(processed, item.Trigger.UserID)
			}
			mu.Unlock()
		}(item)
	}
	wg.Wait()

	return inactivity.CheckOutput{
		ProcessedUsers: len(processed),
		UserIDs:        processed,
	}, nil
}

// processTrigger evaluates every stage for one owner and returns how many
// stages fired. Stage failures are isolated; a failed send still counts the
// stage as fired because an audit row was attempted.
func (uc *usecase) processTrigger(ctx context.Context, sc model.Scope, item repository.TriggerWithProfile) int {
	trigger := item.Trigger
	days := trigger.InactiveDays(uc.clock())

	fired := 0

	if days >= userWarningFromDay && days <= userWarningToDay && trigger.EmailEnabled {
		if uc.shouldNotify(ctx, sc, trigger, model.AlertStageUserWarning) {
			uc.sendUserWarning(ctx, sc, item, days)
			fired++
		}
	}

	if days >= nomineeWarningFromDay && days <= nomineeWarningToDay {
		if uc.shouldNotify(ctx, sc, trigger, model.AlertStageNomineeWarning) {
			uc.sendNomineeWarnings(ctx, sc, item, days)
			fired++
		}
	}

	if days >= trigger.ThresholdDays && !trigger.EmergencyAccessGranted {
		if uc.grantEmergencyAccess(ctx, sc, item, days) {
			fired++
		}
	}

	return fired
}

// shouldNotify suppresses repeat notifications for a stage within one
// inactivity episode. Any alert newer than the last recorded activity means
// the stage already fired for the current episode.
func (uc *usecase) shouldNotify(ctx context.Context, sc model.Scope, trigger model.InactivityTrigger, stage string) bool {
	if uc.cfg.ResendStageReminders {
		return true
	}

	latest, err := uc.repo.LatestAlertByStage(ctx, sc, trigger.UserID, stage)
	if err != nil {
		if err == repository.ErrNotFound {
			return true
		}
		uc.l.Errorf(ctx, "internal.inactivity.usecase.shouldNotify: %v", err)
		return false
	}

	return !latest.CreatedAt.After(trigger.LastActivityAt)
}
