package domain

import "time"

type Audience string

const (
	AudienceAll      Audience = "all"
	AudienceStudents Audience = "students"
	AudienceAdmins   Audience = "admins"
)

func (a Audience) Valid() bool {
	switch a {
	case AudienceAll, AudienceStudents, AudienceAdmins:
		return true
	}
	return false
}

type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Audience  Audience  `json:"target_audience"`
	EventID   *string   `json:"event_id,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateAnnouncementInput struct {
	Title     string
	Message   string
	Type      string
	Audience  Audience
	EventID   *string
	CreatedBy string
}
