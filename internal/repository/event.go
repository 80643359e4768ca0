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

const eventColumns = `id, title, club_id, venue, start_time, end_time, category, capacity, description, reminder_sent, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.ClubID, &e.Venue, &e.StartTime, &e.EndTime,
		&e.Category, &e.Capacity, &e.Description, &e.ReminderSent,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, club_id, venue, start_time, end_time, category, capacity, description, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.ClubID, e.Venue, e.StartTime, e.EndTime,
		e.Category, e.Capacity, e.Description, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	query := `
		SELECT e.id, e.title, e.club_id, e.venue, e.start_time, e.end_time,
		       e.category, e.capacity, e.description, e.reminder_sent,
		       e.created_at, e.updated_at,
		       COUNT(r.id) AS approved_count
		FROM events e
		LEFT JOIN registrations r
		    ON r.event_id = e.id
		    AND r.status = $2
		WHERE e.id = $1
		GROUP BY e.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, domain.RegistrationStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("get event details: %w", err)
	}

	var d domain.EventDetails
	err = row.Scan(
		&d.Event.ID, &d.Event.Title, &d.Event.ClubID, &d.Event.Venue,
		&d.Event.StartTime, &d.Event.EndTime, &d.Event.Category,
		&d.Event.Capacity, &d.Event.Description, &d.Event.ReminderSent,
		&d.Event.CreatedAt, &d.Event.UpdatedAt,
		&d.ApprovedCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event details: %w", err)
	}

	return &d, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY start_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// ListByVenue feeds the conflict checker; iteration order is creation order,
// so the first stored conflict wins.
func (r *EventRepository) ListByVenue(ctx context.Context, venue string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE venue = $1
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, venue)
	if err != nil {
		return nil, fmt.Errorf("list events by venue: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title=$2, club_id=$3, venue=$4, start_time=$5, end_time=$6,
			      category=$7, capacity=$8, description=$9, updated_at=$10
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.ClubID, e.Venue, e.StartTime, e.EndTime,
		e.Category, e.Capacity, e.Description, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// Delete removes the event; registrations cascade via the foreign key.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) ListDueReminders(ctx context.Context, within time.Duration) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE reminder_sent = FALSE
			    AND start_time > now()
			    AND start_time <= now() + make_interval(secs => $1)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, within.Seconds())
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) MarkReminderSent(ctx context.Context, id string) error {
	query := `UPDATE events SET reminder_sent = TRUE, updated_at = now() WHERE id=$1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id); err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}

	return nil
}
