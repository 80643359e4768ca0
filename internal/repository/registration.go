package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts a pending registration. The event row is locked for the
// duration of the transaction so the duplicate and capacity checks cannot
// race a concurrent request for the same seat.
func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var capacity int
	lockQuery := `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, reg.EventID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	var existing string
	activeQuery := `SELECT status FROM registrations
					WHERE event_id = $1 AND student_id = $2 AND status = ANY($3)
					LIMIT 1`
	err = tx.QueryRowContext(ctx, activeQuery, reg.EventID, reg.StudentID, pq.Array(domain.ActiveStatuses)).
		Scan(&existing)
	switch {
	case err == nil:
		if existing == string(domain.RegistrationStatusApproved) {
			return domain.ErrAlreadyRegistered
		}
		return domain.ErrRegistrationPending
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("check active registration: %w", err)
	}

	if capacity != domain.CapacityUnlimited {
		var approved int
		countQuery := `SELECT COUNT(*) FROM registrations
					   WHERE event_id = $1 AND status = $2`
		if err = tx.QueryRowContext(
			ctx, countQuery, reg.EventID, domain.RegistrationStatusApproved,
		).Scan(&approved); err != nil {
			return fmt.Errorf("count approved: %w", err)
		}

		if approved >= capacity {
			return domain.ErrEventFull
		}
	}

	query := `INSERT INTO registrations (id, event_id, student_id, status, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err = tx.ExecContext(ctx, query, reg.ID, reg.EventID, reg.StudentID, reg.Status, reg.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrRegistrationPending
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return tx.Commit()
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT id, event_id, student_id, status, created_at, approved_at
			  FROM registrations
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	var reg domain.Registration
	if err = row.Scan(&reg.ID, &reg.EventID, &reg.StudentID, &reg.Status, &reg.CreatedAt, &reg.ApprovedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return &reg, nil
}

func (r *RegistrationRepository) FindActive(ctx context.Context, eventID, studentID string) (*domain.Registration, error) {
	query := `SELECT id, event_id, student_id, status, created_at, approved_at
			  FROM registrations
			  WHERE event_id=$1 AND student_id=$2 AND status = ANY($3)
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, studentID, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("find active registration: %w", err)
	}

	var reg domain.Registration
	if err = row.Scan(&reg.ID, &reg.EventID, &reg.StudentID, &reg.Status, &reg.CreatedAt, &reg.ApprovedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return &reg, nil
}

// Approve re-validates capacity under the event lock before committing the
// transition. Approving a resolved registration fails, never re-transitions.
func (r *RegistrationRepository) Approve(ctx context.Context, id string, approvedAt time.Time) (*domain.Registration, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var reg domain.Registration
	regQuery := `SELECT id, event_id, student_id, status, created_at
				 FROM registrations
				 WHERE id = $1
				 FOR UPDATE`
	err = tx.QueryRowContext(ctx, regQuery, id).
		Scan(&reg.ID, &reg.EventID, &reg.StudentID, &reg.Status, &reg.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("lock registration: %w", err)
	}

	if reg.Status != domain.RegistrationStatusPending {
		return nil, domain.ErrRegistrationResolved
	}

	var capacity int
	lockQuery := `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, reg.EventID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	if capacity != domain.CapacityUnlimited {
		var approved int
		countQuery := `SELECT COUNT(*) FROM registrations
					   WHERE event_id = $1 AND status = $2`
		if err = tx.QueryRowContext(
			ctx, countQuery, reg.EventID, domain.RegistrationStatusApproved,
		).Scan(&approved); err != nil {
			return nil, fmt.Errorf("count approved: %w", err)
		}

		if approved >= capacity {
			return nil, domain.ErrEventFull
		}
	}

	query := `UPDATE registrations SET status = $2, approved_at = $3 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query, id, domain.RegistrationStatusApproved, approvedAt); err != nil {
		return nil, fmt.Errorf("approve registration: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	reg.Status = domain.RegistrationStatusApproved
	reg.ApprovedAt = &approvedAt

	return &reg, nil
}

func (r *RegistrationRepository) Reject(ctx context.Context, id string) (*domain.Registration, error) {
	query := `UPDATE registrations
			  SET status = $2
			  WHERE id = $1 AND status = $3
			  RETURNING id, event_id, student_id, status, created_at, approved_at`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		id, domain.RegistrationStatusRejected, domain.RegistrationStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("reject registration: %w", err)
	}

	var reg domain.Registration
	if err = row.Scan(&reg.ID, &reg.EventID, &reg.StudentID, &reg.Status, &reg.CreatedAt, &reg.ApprovedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Distinguish a missing registration from an already resolved one.
			if _, getErr := r.GetByID(ctx, id); getErr == nil {
				return nil, domain.ErrRegistrationResolved
			}
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return &reg, nil
}

func (r *RegistrationRepository) ListByStatus(ctx context.Context, status domain.RegistrationStatus) ([]*domain.RegistrationDetails, error) {
	query := `SELECT r.id, r.event_id, r.student_id, r.status, r.created_at, r.approved_at,
			         e.title, e.start_time,
			         u.first_name, u.last_name, u.college_id
			  FROM registrations r
			  JOIN events e ON e.id = r.event_id
			  JOIN users u ON u.id = r.student_id
			  WHERE r.status = $1
			  ORDER BY r.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, status)
	if err != nil {
		return nil, fmt.Errorf("list registrations by status: %w", err)
	}
	defer rows.Close()

	var res []*domain.RegistrationDetails
	for rows.Next() {
		var d domain.RegistrationDetails
		var firstName, lastName string
		if err = rows.Scan(
			&d.Registration.ID, &d.Registration.EventID, &d.Registration.StudentID,
			&d.Registration.Status, &d.Registration.CreatedAt, &d.Registration.ApprovedAt,
			&d.EventTitle, &d.EventStart,
			&firstName, &lastName, &d.CollegeID,
		); err != nil {
			return nil, fmt.Errorf("scan registration details: %w", err)
		}
		d.StudentName = firstName + " " + lastName
		res = append(res, &d)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) ListByStudent(ctx context.Context, studentID string) ([]*domain.StudentRegistration, error) {
	query := `SELECT r.id, r.event_id, r.student_id, r.status, r.created_at, r.approved_at,
			         e.id, e.title, e.club_id, e.venue, e.start_time, e.end_time,
			         e.category, e.capacity, e.description, e.reminder_sent,
			         e.created_at, e.updated_at
			  FROM registrations r
			  JOIN events e ON e.id = r.event_id
			  WHERE r.student_id = $1 AND r.status = ANY($2)
			  ORDER BY e.start_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, studentID, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("list registrations by student: %w", err)
	}
	defer rows.Close()

	var res []*domain.StudentRegistration
	for rows.Next() {
		var s domain.StudentRegistration
		if err = rows.Scan(
			&s.Registration.ID, &s.Registration.EventID, &s.Registration.StudentID,
			&s.Registration.Status, &s.Registration.CreatedAt, &s.Registration.ApprovedAt,
			&s.Event.ID, &s.Event.Title, &s.Event.ClubID, &s.Event.Venue,
			&s.Event.StartTime, &s.Event.EndTime, &s.Event.Category,
			&s.Event.Capacity, &s.Event.Description, &s.Event.ReminderSent,
			&s.Event.CreatedAt, &s.Event.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan student registration: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) ListActiveStudents(ctx context.Context, eventID string) ([]string, error) {
	return r.listStudents(ctx, eventID, pq.Array(domain.ActiveStatuses))
}

func (r *RegistrationRepository) ListApprovedStudents(ctx context.Context, eventID string) ([]string, error) {
	return r.listStudents(ctx, eventID, pq.Array([]domain.RegistrationStatus{domain.RegistrationStatusApproved}))
}

func (r *RegistrationRepository) listStudents(ctx context.Context, eventID string, statuses any) ([]string, error) {
	query := `SELECT student_id FROM registrations
			  WHERE event_id = $1 AND status = ANY($2)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, statuses)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan student id: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}
