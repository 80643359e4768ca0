package dto

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	ClubID      string `json:"club_id" binding:"required"`
	Venue       string `json:"venue" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Category    string `json:"category"`
	Capacity    int    `json:"capacity" binding:"gte=0"`
	Description string `json:"description"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Venue       *string `json:"venue"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Category    *string `json:"category"`
	Capacity    *int    `json:"capacity"`
	Description *string `json:"description"`
}

type RegisterRequest struct {
	StudentID string `json:"student_id" binding:"required,uuid"`
}

type CreateUserRequest struct {
	Email          string `json:"email" binding:"required,email"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	CollegeID      string `json:"college_id" binding:"required"`
	Role           string `json:"role" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateAnnouncementRequest struct {
	Title          string  `json:"title" binding:"required"`
	Message        string  `json:"message" binding:"required"`
	Type           string  `json:"type"`
	TargetAudience string  `json:"target_audience" binding:"required"`
	EventID        *string `json:"event_id"`
	CreatedBy      string  `json:"created_by" binding:"required,uuid"`
}
