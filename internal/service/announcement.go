package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	"github.com/Navadeep1603/Campus-connect/internal/service/ports"
	"github.com/google/uuid"
)

const defaultAnnouncementLimit = 50

type AnnouncementService struct {
	repo     ports.AnnouncementRepo
	notifier ports.Notifier
}

func NewAnnouncementService(repo ports.AnnouncementRepo, notifier ports.Notifier) *AnnouncementService {
	return &AnnouncementService{repo: repo, notifier: notifier}
}

func (s *AnnouncementService) Create(ctx context.Context, input domain.CreateAnnouncementInput) (*domain.Announcement, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Message == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrValidation)
	}
	if !input.Audience.Valid() {
		return nil, fmt.Errorf("%w: target_audience must be all, students or admins", domain.ErrValidation)
	}

	a := &domain.Announcement{
		ID:        uuid.New().String(),
		Title:     input.Title,
		Message:   input.Message,
		Type:      input.Type,
		Audience:  input.Audience,
		EventID:   input.EventID,
		CreatedBy: input.CreatedBy,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}

	go s.notifier.AnnouncementPublished(context.WithoutCancel(ctx), a)

	return a, nil
}

func (s *AnnouncementService) List(ctx context.Context, limit int) ([]*domain.Announcement, error) {
	if limit <= 0 {
		limit = defaultAnnouncementLimit
	}
	return s.repo.List(ctx, limit)
}

func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
