package domain

import "time"

// CapacityUnlimited is the capacity sentinel for events without a seat limit.
const CapacityUnlimited = 0

type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ClubID       string    `json:"club_id"`
	Venue        string    `json:"venue"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Category     string    `json:"category"`
	Capacity     int       `json:"capacity"`
	Description  string    `json:"description"`
	ReminderSent bool      `json:"reminder_sent"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (e *Event) Unlimited() bool {
	return e.Capacity == CapacityUnlimited
}

type EventDetails struct {
	Event         Event `json:"event"`
	ApprovedCount int   `json:"approved_count"`
}

// EventCandidate is the slice of an event the conflict checker looks at.
type EventCandidate struct {
	Venue     string
	StartTime time.Time
	EndTime   time.Time
}

type CreateEventInput struct {
	Title       string
	ClubID      string
	Venue       string
	StartTime   time.Time
	EndTime     time.Time
	Category    string
	Capacity    int
	Description string
}

// UpdateEventInput carries a partial edit; nil fields keep their current value.
type UpdateEventInput struct {
	Title       *string
	Venue       *string
	StartTime   *time.Time
	EndTime     *time.Time
	Category    *string
	Capacity    *int
	Description *string
}

// TouchesSchedule reports whether the edit changes venue or times and so
// requires a fresh conflict check.
func (in UpdateEventInput) TouchesSchedule() bool {
	return in.Venue != nil || in.StartTime != nil || in.EndTime != nil
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Two events that only touch at a boundary do not overlap;
// equal starts always do.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
