package domain

import "time"

// Broadcast recipients. Anything else is a concrete user id; broadcasts are
// resolved to per-user rows when the notification is stored.
const (
	RecipientAll       = "all"
	RecipientAllAdmins = "all-admins"
)

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
