package scheduler

import (
	"context"
	"time"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reminderSender interface {
	RemindUpcoming(ctx context.Context, within time.Duration) ([]*domain.Event, error)
}

// Scheduler periodically reminds approved registrants of events about to start.
type Scheduler struct {
	eventService reminderSender
	interval     time.Duration
	window       time.Duration
	logger       logger.Logger
}

func New(
	eventService reminderSender,
	interval time.Duration,
	window time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		eventService: eventService,
		interval:     interval,
		window:       window,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("window", s.window),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reminded, err := s.eventService.RemindUpcoming(ctx, s.window)
	if err != nil {
		s.logger.Error("failed to send event reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range reminded {
		s.logger.Info("reminder sent",
			logger.String("event_id", e.ID),
			logger.String("title", e.Title),
		)
	}
}
