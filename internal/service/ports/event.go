package ports

import (
	"context"
	"time"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListByVenue(ctx context.Context, venue string) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	ListDueReminders(ctx context.Context, within time.Duration) ([]*domain.Event, error)
	MarkReminderSent(ctx context.Context, id string) error
}
