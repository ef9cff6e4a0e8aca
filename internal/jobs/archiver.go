package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"estimateai/internal/domain"
)

// staleStatuses are the decided states that age out into the archive.
var staleStatuses = []domain.EstimateStatus{
	domain.EstimateAccepted,
	domain.EstimateRejected,
}

type EstimateArchiveRepository interface {
	ListStale(ctx context.Context, statuses []domain.EstimateStatus, before time.Time) ([]domain.Estimate, error)
	UpdateStatus(ctx context.Context, id int64, status domain.EstimateStatus) error
}

// Archiver moves decided estimates that have not been touched for the
// configured retention window into the archived state.
type Archiver struct {
	estimates EstimateArchiveRepository
	retention time.Duration
	cron      *cron.Cron
}

func NewArchiver(estimates EstimateArchiveRepository, archiveAfterDays int) *Archiver {
	return &Archiver{
		estimates: estimates,
		retention: time.Duration(archiveAfterDays) * 24 * time.Hour,
	}
}

// Start schedules the archive sweep. spec is a standard cron expression,
// e.g. "0 3 * * *" for a nightly run.
func (a *Archiver) Start(spec string) error {
	a.cron = cron.New()
	_, err := a.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := a.Run(ctx); err != nil {
			log.Printf("archiver_run_failed error=%v", err)
		}
	})
	if err != nil {
		return err
	}
	a.cron.Start()
	log.Printf("archiver_started spec=%q retention=%s", spec, a.retention)
	return nil
}

func (a *Archiver) Stop() {
	if a.cron != nil {
		a.cron.Stop()
	}
}

// Run performs a single sweep. Exported so cmd/seed and tests can trigger
// it without the scheduler.
func (a *Archiver) Run(ctx context.Context) error {
	cutoff := time.Now().Add(-a.retention)

	stale, err := a.estimates.ListStale(ctx, staleStatuses, cutoff)
	if err != nil {
		return err
	}

	archived := 0
	for _, e := range stale {
		next, err := e.Status.Transition(domain.EstimateArchived)
		if err != nil {
			// statuses outside the table never archive automatically
			log.Printf("archiver_skip estimate_id=%d status=%s error=%v", e.ID, e.Status, err)
			continue
		}
		if err := a.estimates.UpdateStatus(ctx, e.ID, next); err != nil {
			log.Printf("archiver_update_failed estimate_id=%d error=%v", e.ID, err)
			continue
		}
		archived++
	}

	if archived > 0 {
		log.Printf("archiver_swept archived=%d cutoff=%s", archived, cutoff.Format(time.RFC3339))
	}
	return nil
}
