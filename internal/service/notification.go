package service

import (
	"context"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	"github.com/Navadeep1603/Campus-connect/internal/service/ports"
)

type NotificationService struct {
	store ports.NotificationStore
}

func NewNotificationService(store ports.NotificationStore) *NotificationService {
	return &NotificationService{store: store}
}

func (s *NotificationService) ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.store.UnreadCount(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.store.MarkRead(ctx, id)
}
