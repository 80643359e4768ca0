package dto

import (
	"time"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
)

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ClubID      string `json:"club_id"`
	Venue       string `json:"venue"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Category    string `json:"category"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type EventDetailsResponse struct {
	Event         EventResponse `json:"event"`
	ApprovedCount int           `json:"approved_count"`
}

type RegistrationResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"event_id"`
	StudentID  string `json:"student_id"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	ApprovedAt string `json:"approved_at,omitempty"`
}

type RegistrationDetailsResponse struct {
	Registration RegistrationResponse `json:"registration"`
	EventTitle   string               `json:"event_title"`
	EventStart   string               `json:"event_start"`
	StudentName  string               `json:"student_name"`
	CollegeID    string               `json:"college_id"`
}

type StudentRegistrationResponse struct {
	Registration RegistrationResponse `json:"registration"`
	Event        EventResponse        `json:"event"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CollegeID string `json:"college_id"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type ClubResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Faculty     string `json:"faculty"`
	Description string `json:"description"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

type AnnouncementResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Message        string  `json:"message"`
	Type           string  `json:"type"`
	TargetAudience string  `json:"target_audience"`
	EventID        *string `json:"event_id,omitempty"`
	CreatedBy      string  `json:"created_by"`
	CreatedAt      string  `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		ClubID:      e.ClubID,
		Venue:       e.Venue,
		StartTime:   e.StartTime.Format(time.RFC3339),
		EndTime:     e.EndTime.Format(time.RFC3339),
		Category:    e.Category,
		Capacity:    e.Capacity,
		Description: e.Description,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	return EventDetailsResponse{
		Event:         ToEventResponse(&d.Event),
		ApprovedCount: d.ApprovedCount,
	}
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	resp := RegistrationResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		StudentID: r.StudentID,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
	if r.ApprovedAt != nil {
		resp.ApprovedAt = r.ApprovedAt.Format(time.RFC3339)
	}
	return resp
}

func ToRegistrationDetailsResponse(d *domain.RegistrationDetails) RegistrationDetailsResponse {
	return RegistrationDetailsResponse{
		Registration: ToRegistrationResponse(&d.Registration),
		EventTitle:   d.EventTitle,
		EventStart:   d.EventStart.Format(time.RFC3339),
		StudentName:  d.StudentName,
		CollegeID:    d.CollegeID,
	}
}

func ToStudentRegistrationResponse(s *domain.StudentRegistration) StudentRegistrationResponse {
	return StudentRegistrationResponse{
		Registration: ToRegistrationResponse(&s.Registration),
		Event:        ToEventResponse(&s.Event),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CollegeID: u.CollegeID,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToClubResponse(c *domain.Club) ClubResponse {
	return ClubResponse{
		ID:          c.ID,
		Name:        c.Name,
		Category:    c.Category,
		Faculty:     c.Faculty,
		Description: c.Description,
	}
}

func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

func ToAnnouncementResponse(a *domain.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:             a.ID,
		Title:          a.Title,
		Message:        a.Message,
		Type:           a.Type,
		TargetAudience: string(a.Audience),
		EventID:        a.EventID,
		CreatedBy:      a.CreatedBy,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}
