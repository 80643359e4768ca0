package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type NotificationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewNotificationRepo(db *dbpg.DB) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Send stores the message for a single user, or fans a broadcast out to one
// row per matching user inside the database.
func (r *NotificationRepository) Send(ctx context.Context, recipient, message string) error {
	var query string
	args := []any{message}

	switch recipient {
	case domain.RecipientAll:
		query = `INSERT INTO notifications (id, user_id, message, read, created_at)
				 SELECT gen_random_uuid(), id, $1, FALSE, now() FROM users`
	case domain.RecipientAllAdmins:
		query = `INSERT INTO notifications (id, user_id, message, read, created_at)
				 SELECT gen_random_uuid(), id, $1, FALSE, now() FROM users WHERE role = $2`
		args = append(args, domain.RoleAdmin)
	default:
		query = `INSERT INTO notifications (id, user_id, message, read, created_at)
				 VALUES (gen_random_uuid(), $2, $1, FALSE, now())`
		args = append(args, recipient)
	}

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, args...); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	query := `SELECT id, user_id, message, read, created_at
			  FROM notifications
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var res []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err = rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		res = append(res, &n)
	}

	return res, rows.Err()
}

func (r *NotificationRepository) UnreadCount(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan unread count: %w", err)
	}

	return count, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	query := `UPDATE notifications SET read = TRUE WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	return nil
}
