package ports

import (
	"context"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
)

// Notifier is the post-transition hook surface. Implementations deliver
// messages; failures must never roll back the transition that fired them.
type Notifier interface {
	EventPublished(ctx context.Context, event *domain.Event)
	EventCancelled(ctx context.Context, event *domain.Event, studentIDs []string)
	EventReminder(ctx context.Context, event *domain.Event, studentIDs []string)
	RegistrationRequested(ctx context.Context, student *domain.User, event *domain.Event)
	RegistrationApproved(ctx context.Context, student *domain.User, event *domain.Event)
	RegistrationRejected(ctx context.Context, student *domain.User, event *domain.Event)
	AnnouncementPublished(ctx context.Context, a *domain.Announcement)
}
