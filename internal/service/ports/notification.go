package ports

import (
	"context"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
)

// NotificationStore is the inbox. Send accepts a concrete user id or one of
// the broadcast recipients (domain.RecipientAll, domain.RecipientAllAdmins),
// which fan out to one row per matching user.
type NotificationStore interface {
	Send(ctx context.Context, recipient, message string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id string) error
}
