package cron

import (
	"context"
	"log/slog"

	"github.com/fichadas/timeclock-backend-go/internal/domain/punch"
)

type PunchJobs struct {
	punchSvc punch.PunchService
	isSummer bool
	atHour   int
}

// NewPunchJobs wires the nightly recalculation job. The season is taken
// from configuration, never inferred from the clock.
func NewPunchJobs(punchSvc punch.PunchService, isSummer bool, atHour int) *PunchJobs {
	return &PunchJobs{
		punchSvc: punchSvc,
		isSummer: isSummer,
		atHour:   atHour,
	}
}

func (j *PunchJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddDailyJob("recalculate_open_punches", j.atHour, j.RecalculateOpenPunches)
}

// RecalculateOpenPunches re-runs hours calculation for every punch that
// has not been exported yet, picking up configuration changes made
// during the day.
func (j *PunchJobs) RecalculateOpenPunches(ctx context.Context) error {
	slog.Info("Cron: Starting punch recalculation job", "is_summer", j.isSummer)

	result, err := j.punchSvc.RecalculateAll(ctx, j.isSummer)
	if err != nil {
		return err
	}

	slog.Info("Cron: Punch recalculation finished",
		"recalculated", result.Recalculated,
		"skipped", result.Skipped,
		"warnings", len(result.Warnings))
	return nil
}
