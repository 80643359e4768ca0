package ports

import (
	"context"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
)

type AnnouncementRepo interface {
	Create(ctx context.Context, a *domain.Announcement) error
	List(ctx context.Context, limit int) ([]*domain.Announcement, error)
	Delete(ctx context.Context, id string) error
}
