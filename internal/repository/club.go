package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ClubRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewClubRepo(db *dbpg.DB) *ClubRepository {
	return &ClubRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ClubRepository) List(ctx context.Context) ([]*domain.Club, error) {
	query := `SELECT id, name, category, faculty, description
			  FROM clubs
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	defer rows.Close()

	var res []*domain.Club
	for rows.Next() {
		var c domain.Club
		if err = rows.Scan(&c.ID, &c.Name, &c.Category, &c.Faculty, &c.Description); err != nil {
			return nil, fmt.Errorf("scan club: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *ClubRepository) GetByID(ctx context.Context, id string) (*domain.Club, error) {
	query := `SELECT id, name, category, faculty, description
			  FROM clubs
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get club: %w", err)
	}

	var c domain.Club
	if err = row.Scan(&c.ID, &c.Name, &c.Category, &c.Faculty, &c.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClubNotFound
		}
		return nil, fmt.Errorf("scan club: %w", err)
	}

	return &c, nil
}
