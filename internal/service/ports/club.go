package ports

import (
	"context"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
)

type ClubRepo interface {
	List(ctx context.Context) ([]*domain.Club, error)
	GetByID(ctx context.Context, id string) (*domain.Club, error)
}
