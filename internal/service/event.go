package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	"github.com/Navadeep1603/Campus-connect/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	eventRepo ports.EventRepo
	clubRepo  ports.ClubRepo
	regRepo   ports.RegistrationRepo
	notifier  ports.Notifier
	logger    logger.Logger
}

func NewEventService(
	eventRepo ports.EventRepo,
	clubRepo ports.ClubRepo,
	regRepo ports.RegistrationRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		clubRepo:  clubRepo,
		regRepo:   regRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// FindConflict returns the first event at the candidate's venue whose
// [start, end) interval overlaps the candidate's, or nil if there is none.
// ignoreID excludes an event from the scan so an edit never conflicts with
// itself. Pure read, no ranking.
func (s *EventService) FindConflict(ctx context.Context, candidate domain.EventCandidate, ignoreID string) (*domain.Event, error) {
	events, err := s.eventRepo.ListByVenue(ctx, candidate.Venue)
	if err != nil {
		return nil, fmt.Errorf("list venue events: %w", err)
	}

	for _, ev := range events {
		if ev.ID == ignoreID {
			continue
		}
		if domain.Overlaps(candidate.StartTime, candidate.EndTime, ev.StartTime, ev.EndTime) {
			return ev, nil
		}
	}

	return nil, nil
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Venue == "" {
		return nil, fmt.Errorf("%w: venue is required", domain.ErrValidation)
	}
	if !input.StartTime.Before(input.EndTime) {
		return nil, fmt.Errorf("%w: start_time must be before end_time", domain.ErrValidation)
	}
	if input.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", domain.ErrValidation)
	}
	if _, err := s.clubRepo.GetByID(ctx, input.ClubID); err != nil {
		return nil, fmt.Errorf("check club: %w", err)
	}

	candidate := domain.EventCandidate{
		Venue:     input.Venue,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	}
	conflict, err := s.FindConflict(ctx, candidate, "")
	if err != nil {
		return nil, fmt.Errorf("check conflict: %w", err)
	}
	if conflict != nil {
		return nil, fmt.Errorf("%w: %s at %s", domain.ErrVenueConflict, conflict.Title, conflict.Venue)
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       input.Title,
		ClubID:      input.ClubID,
		Venue:       input.Venue,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Category:    input.Category,
		Capacity:    input.Capacity,
		Description: input.Description,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("venue", event.Venue),
	)

	go s.notifier.EventPublished(context.WithoutCancel(ctx), event)

	return event, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Venue != nil {
		event.Venue = *input.Venue
	}
	if input.StartTime != nil {
		event.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		event.EndTime = *input.EndTime
	}
	if input.Category != nil {
		event.Category = *input.Category
	}
	if input.Capacity != nil {
		if *input.Capacity < 0 {
			return nil, fmt.Errorf("%w: capacity must not be negative", domain.ErrValidation)
		}
		event.Capacity = *input.Capacity
	}
	if input.Description != nil {
		event.Description = *input.Description
	}

	if !event.StartTime.Before(event.EndTime) {
		return nil, fmt.Errorf("%w: start_time must be before end_time", domain.ErrValidation)
	}

	if input.TouchesSchedule() {
		candidate := domain.EventCandidate{
			Venue:     event.Venue,
			StartTime: event.StartTime,
			EndTime:   event.EndTime,
		}
		conflict, err := s.FindConflict(ctx, candidate, event.ID)
		if err != nil {
			return nil, fmt.Errorf("check conflict: %w", err)
		}
		if conflict != nil {
			return nil, fmt.Errorf("%w: %s at %s", domain.ErrVenueConflict, conflict.Title, conflict.Venue)
		}
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

// DeleteEvent removes the event and its registrations; active registrants are
// told the event was cancelled.
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	students, err := s.regRepo.ListActiveStudents(ctx, id)
	if err != nil {
		return fmt.Errorf("list active students: %w", err)
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted",
		logger.String("event_id", id),
		logger.Int("registrants", len(students)),
	)

	if len(students) > 0 {
		go s.notifier.EventCancelled(context.WithoutCancel(ctx), event, students)
	}

	return nil
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	return s.eventRepo.GetDetails(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.eventRepo.List(ctx)
}

func (s *EventService) ListClubs(ctx context.Context) ([]*domain.Club, error) {
	return s.clubRepo.List(ctx)
}

// RemindUpcoming notifies approved registrants of events starting within the
// window and marks those events reminded. Called by the scheduler.
func (s *EventService) RemindUpcoming(ctx context.Context, within time.Duration) ([]*domain.Event, error) {
	events, err := s.eventRepo.ListDueReminders(ctx, within)
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}

	var reminded []*domain.Event
	for _, event := range events {
		students, err := s.regRepo.ListApprovedStudents(ctx, event.ID)
		if err != nil {
			s.logger.Error("failed to list registrants for reminder",
				logger.String("event_id", event.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		if len(students) > 0 {
			s.notifier.EventReminder(ctx, event, students)
		}

		if err := s.eventRepo.MarkReminderSent(ctx, event.ID); err != nil {
			s.logger.Error("failed to mark reminder sent",
				logger.String("event_id", event.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		reminded = append(reminded, event)
	}

	return reminded, nil
}
