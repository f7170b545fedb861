// Package scheduler runs periodic background maintenance.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/flamesResource6/studyboard/internal/study"
)

// SeedWarmupScheduler periodically re-runs seed reconciliation for the
// default board/standard, so a database attached after startup converges
// without waiting for subject traffic. Reconciliation is idempotent, which
// makes re-running it on a schedule safe.
type SeedWarmupScheduler struct {
	service  *study.Service
	board    string
	standard string
	schedule string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewSeedWarmupScheduler(service *study.Service, board, standard, schedule string) *SeedWarmupScheduler {
	return &SeedWarmupScheduler{
		service:  service,
		board:    board,
		standard: standard,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *SeedWarmupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runWarmup()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule seed warmup job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Seed warmup scheduler: started with schedule '%s'", s.schedule)

	// Monitor for context cancellation
	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler
func (s *SeedWarmupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Seed warmup scheduler: stopped")
}

// IsRunning returns whether the scheduler is active
func (s *SeedWarmupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *SeedWarmupScheduler) runWarmup() {
	log.Printf("Seed warmup: reconciling %s standard %s", s.board, s.standard)
	s.service.EnsureSeed(s.board, s.standard)
}
