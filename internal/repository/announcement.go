package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AnnouncementRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAnnouncementRepo(db *dbpg.DB) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	query := `INSERT INTO announcements (id, title, message, type, target_audience, event_id, created_by, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.Title, a.Message, a.Type, a.Audience, a.EventID, a.CreatedBy, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert announcement: %w", err)
	}

	return nil
}

func (r *AnnouncementRepository) List(ctx context.Context, limit int) ([]*domain.Announcement, error) {
	query := `SELECT id, title, message, type, target_audience, event_id, created_by, created_at
			  FROM announcements
			  ORDER BY created_at DESC
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()

	var res []*domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		if err = rows.Scan(
			&a.ID, &a.Title, &a.Message, &a.Type,
			&a.Audience, &a.EventID, &a.CreatedBy, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM announcements WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete announcement rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAnnouncementNotFound
	}

	return nil
}
