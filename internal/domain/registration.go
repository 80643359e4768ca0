package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

// ActiveStatuses are the statuses that block a new request for the same
// (event, student) pair. A rejected registration does not.
var ActiveStatuses = []RegistrationStatus{RegistrationStatusPending, RegistrationStatusApproved}

type Registration struct {
	ID         string             `json:"id"`
	EventID    string             `json:"event_id"`
	StudentID  string             `json:"student_id"`
	Status     RegistrationStatus `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	ApprovedAt *time.Time         `json:"approved_at,omitempty"`
}

// RegistrationDetails joins a registration with the event and student it
// references, for the admin review lists.
type RegistrationDetails struct {
	Registration Registration `json:"registration"`
	EventTitle   string       `json:"event_title"`
	EventStart   time.Time    `json:"event_start"`
	StudentName  string       `json:"student_name"`
	CollegeID    string       `json:"college_id"`
}

// StudentRegistration is a student's own registration merged with its event.
type StudentRegistration struct {
	Registration Registration `json:"registration"`
	Event        Event        `json:"event"`
}
