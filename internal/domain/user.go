package domain

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAdmin, RoleFaculty:
		return true
	}
	return false
}

// User carries an explicit role assigned at account creation. The role is
// never inferred from the college id format.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	CollegeID      string    `json:"college_id"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type CreateUserInput struct {
	Email          string
	FirstName      string
	LastName       string
	CollegeID      string
	Role           Role
	TelegramChatID *int64
}
