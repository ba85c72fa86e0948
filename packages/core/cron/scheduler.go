package cron

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	authUtils "github.com/Zattox/RavensPedia-sub000/packages/auth/utils"
	"github.com/Zattox/RavensPedia-sub000/packages/core/services"
)

// Scheduler runs the two periodic jobs: the lifecycle sweep that keeps
// match/tournament statuses aligned with the clock, and the cleanup of
// revoked and expired auth tokens.
type Scheduler struct {
	cron            *cron.Cron
	db              *gorm.DB
	scheduleService *services.ScheduleService
	cleanupMinutes  int
	log             *slog.Logger
}

func NewScheduler(db *gorm.DB, scheduleService *services.ScheduleService, cleanupMinutes int) *Scheduler {
	return &Scheduler{
		cron:            cron.New(),
		db:              db,
		scheduleService: scheduleService,
		cleanupMinutes:  cleanupMinutes,
		log:             slog.Default(),
	}
}

// Start registers and starts the jobs.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("* * * * *", s.runLifecycleSweep); err != nil {
		return err
	}
	spec := fmt.Sprintf("@every %dm", s.cleanupMinutes)
	if _, err := s.cron.AddFunc(spec, s.runTokenCleanup); err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("cron scheduler started", "token_cleanup_minutes", s.cleanupMinutes)
	return nil
}

// Stop shuts the scheduler down, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("cron scheduler stopped")
}

func (s *Scheduler) runLifecycleSweep() {
	if err := s.scheduleService.Sweep(time.Now()); err != nil {
		s.log.Error("lifecycle sweep failed", "err", err)
	}
}

func (s *Scheduler) runTokenCleanup() {
	deleted, err := authUtils.CleanupTokens(s.db)
	if err != nil {
		s.log.Error("token cleanup failed", "err", err)
		return
	}
	if deleted > 0 {
		s.log.Info("token cleanup", "deleted", deleted)
	}
}

// RunLifecycleSweepNow triggers the sweep outside the schedule.
func (s *Scheduler) RunLifecycleSweepNow() {
	s.runLifecycleSweep()
}
