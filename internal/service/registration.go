package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	"github.com/Navadeep1603/Campus-connect/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type RegistrationService struct {
	regRepo   ports.RegistrationRepo
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	notifier  ports.Notifier
	logger    logger.Logger
}

func NewRegistrationService(
	regRepo ports.RegistrationRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		regRepo:   regRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// Request creates a pending registration for the student. Preconditions are
// checked in order: the event exists, the student holds no approved and no
// pending registration for it, and the event has a free seat. The repository
// repeats the duplicate and capacity checks atomically, so the first failing
// check here only decides which error the caller sees.
func (s *RegistrationService) Request(ctx context.Context, eventID, studentID string) (*domain.Registration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("check student: %w", err)
	}

	active, err := s.regRepo.FindActive(ctx, eventID, studentID)
	if err != nil && !errors.Is(err, domain.ErrRegistrationNotFound) {
		return nil, fmt.Errorf("check active registration: %w", err)
	}
	if active != nil {
		if active.Status == domain.RegistrationStatusApproved {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, domain.ErrRegistrationPending
	}

	reg := &domain.Registration{
		ID:        uuid.New().String(),
		EventID:   eventID,
		StudentID: studentID,
		Status:    domain.RegistrationStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.regRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.Info("registration requested",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", eventID),
		logger.String("student_id", studentID),
	)

	go s.notifier.RegistrationRequested(context.WithoutCancel(ctx), student, event)

	return reg, nil
}

// Approve transitions a pending registration to approved. Capacity is
// re-validated inside the repository transaction, so an approval can still
// fail with ErrEventFull after a racing approval takes the last seat.
func (s *RegistrationService) Approve(ctx context.Context, regID string) (*domain.Registration, error) {
	reg, err := s.regRepo.Approve(ctx, regID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("approve registration: %w", err)
	}

	s.logger.Info("registration approved",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", reg.EventID),
		logger.String("student_id", reg.StudentID),
	)

	s.notifyResolved(ctx, reg, true)

	return reg, nil
}

// Reject transitions a pending registration to rejected. The attendee count
// is untouched and a later request from the same student is allowed.
func (s *RegistrationService) Reject(ctx context.Context, regID string) (*domain.Registration, error) {
	reg, err := s.regRepo.Reject(ctx, regID)
	if err != nil {
		return nil, fmt.Errorf("reject registration: %w", err)
	}

	s.logger.Info("registration rejected",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", reg.EventID),
		logger.String("student_id", reg.StudentID),
	)

	s.notifyResolved(ctx, reg, false)

	return reg, nil
}

func (s *RegistrationService) notifyResolved(ctx context.Context, reg *domain.Registration, approved bool) {
	student, err := s.userRepo.GetByID(ctx, reg.StudentID)
	if err != nil {
		s.logger.Error("failed to get student for notification",
			logger.String("student_id", reg.StudentID),
			logger.String("error", err.Error()),
		)
		return
	}

	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		s.logger.Error("failed to get event for notification",
			logger.String("event_id", reg.EventID),
			logger.String("error", err.Error()),
		)
		return
	}

	if approved {
		go s.notifier.RegistrationApproved(context.WithoutCancel(ctx), student, event)
	} else {
		go s.notifier.RegistrationRejected(context.WithoutCancel(ctx), student, event)
	}
}

func (s *RegistrationService) ListByStatus(ctx context.Context, status domain.RegistrationStatus) ([]*domain.RegistrationDetails, error) {
	switch status {
	case domain.RegistrationStatusPending, domain.RegistrationStatusApproved:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	return s.regRepo.ListByStatus(ctx, status)
}

func (s *RegistrationService) ListByStudent(ctx context.Context, studentID string) ([]*domain.StudentRegistration, error) {
	return s.regRepo.ListByStudent(ctx, studentID)
}
