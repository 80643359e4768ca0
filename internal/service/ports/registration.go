package ports

import (
	"context"
	"time"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
)

type RegistrationRepo interface {
	// Create inserts a pending registration. The duplicate and capacity
	// checks are repeated inside a single transaction holding a lock on the
	// event row, so two concurrent requests cannot both take the last seat.
	Create(ctx context.Context, r *domain.Registration) error

	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	FindActive(ctx context.Context, eventID, studentID string) (*domain.Registration, error)

	// Approve transitions a pending registration to approved, re-validating
	// capacity under the same event lock. Reject transitions it to rejected.
	// Both return the updated registration.
	Approve(ctx context.Context, id string, approvedAt time.Time) (*domain.Registration, error)
	Reject(ctx context.Context, id string) (*domain.Registration, error)

	ListByStatus(ctx context.Context, status domain.RegistrationStatus) ([]*domain.RegistrationDetails, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.StudentRegistration, error)
	ListActiveStudents(ctx context.Context, eventID string) ([]string, error)
	ListApprovedStudents(ctx context.Context, eventID string) ([]string, error)
}
