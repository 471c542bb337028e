package scheduler

import (
	"context"
	"log"
	"time"

	"skill-gap/internal/usecase"

	"github.com/robfig/cron/v3"
)

// Scheduler keeps the organization-wide aggregation cache warm so
// dashboard reads rarely pay for a full population pass.
type Scheduler struct {
	cron   *cron.Cron
	orgGap usecase.OrgGapUsecase
	logger *log.Logger
}

func New(orgGap usecase.OrgGapUsecase, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{cron: cron.New(), orgGap: orgGap, logger: logger}
}

func (s *Scheduler) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.refreshOrgGap); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Printf("[Scheduler] started | schedule=%q", schedule)
	return nil
}

func (s *Scheduler) Stop() {
	if s == nil || s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

func (s *Scheduler) refreshOrgGap() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := s.orgGap.Refresh(ctx); err != nil {
		s.logger.Printf("[Scheduler] org gap refresh failed | err=%v", err)
	}
}
