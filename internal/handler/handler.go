package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	"github.com/Navadeep1603/Campus-connect/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListClubs(ctx context.Context) ([]*domain.Club, error)
}

type RegistrationSvc interface {
	Request(ctx context.Context, eventID, studentID string) (*domain.Registration, error)
	Approve(ctx context.Context, regID string) (*domain.Registration, error)
	Reject(ctx context.Context, regID string) (*domain.Registration, error)
	ListByStatus(ctx context.Context, status domain.RegistrationStatus) ([]*domain.RegistrationDetails, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.StudentRegistration, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type NotificationSvc interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id string) error
}

type AnnouncementSvc interface {
	Create(ctx context.Context, input domain.CreateAnnouncementInput) (*domain.Announcement, error)
	List(ctx context.Context, limit int) ([]*domain.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	eventService        EventSvc
	registrationService RegistrationSvc
	userService         UserSvc
	notificationService NotificationSvc
	announcementService AnnouncementSvc
}

func NewHandler(
	eventService EventSvc,
	registrationService RegistrationSvc,
	userService UserSvc,
	notificationService NotificationSvc,
	announcementService AnnouncementSvc,
) *Handler {
	return &Handler{
		eventService:        eventService,
		registrationService: registrationService,
		userService:         userService,
		notificationService: notificationService,
		announcementService: announcementService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time format, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_time format, expected RFC3339"})
		return
	}

	input := domain.CreateEventInput{
		Title:       req.Title,
		ClubID:      req.ClubID,
		Venue:       req.Venue,
		StartTime:   start,
		EndTime:     end,
		Category:    req.Category,
		Capacity:    req.Capacity,
		Description: req.Description,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Title:       req.Title,
		Venue:       req.Venue,
		Category:    req.Category,
		Capacity:    req.Capacity,
		Description: req.Description,
	}
	if req.StartTime != nil {
		start, err := time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time format, expected RFC3339"})
			return
		}
		input.StartTime = &start
	}
	if req.EndTime != nil {
		end, err := time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_time format, expected RFC3339"})
			return
		}
		input.EndTime = &end
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListClubs(c *ginext.Context) {
	clubs, err := h.eventService.ListClubs(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ClubResponse, 0, len(clubs))
	for _, club := range clubs {
		resp = append(resp, dto.ToClubResponse(club))
	}

	c.JSON(http.StatusOK, resp)
}

// Registrations

func (h *Handler) RegisterForEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := h.registrationService.Request(c.Request.Context(), eventID, req.StudentID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

func (h *Handler) ApproveRegistration(c *ginext.Context) {
	regID := c.Param("id")
	if _, err := uuid.Parse(regID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	reg, err := h.registrationService.Approve(c.Request.Context(), regID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *Handler) RejectRegistration(c *ginext.Context) {
	regID := c.Param("id")
	if _, err := uuid.Parse(regID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	reg, err := h.registrationService.Reject(c.Request.Context(), regID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *Handler) ListRegistrations(c *ginext.Context) {
	status := c.DefaultQuery("status", string(domain.RegistrationStatusPending))

	regs, err := h.registrationService.ListByStatus(c.Request.Context(), domain.RegistrationStatus(status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RegistrationDetailsResponse, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, dto.ToRegistrationDetailsResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetStudentRegistrations(c *ginext.Context) {
	studentID := c.Param("id")
	if _, err := uuid.Parse(studentID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid student id"})
		return
	}

	regs, err := h.registrationService.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.StudentRegistrationResponse, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, dto.ToStudentRegistrationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		CollegeID:      req.CollegeID,
		Role:           domain.Role(req.Role),
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// Notifications

func (h *Handler) ListNotifications(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	notifications, err := h.notificationService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, dto.ToNotificationResponse(n))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUnreadCount(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	count, err := h.notificationService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"unread": count})
}

func (h *Handler) MarkNotificationRead(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid notification id"})
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "read"})
}

// Announcements

func (h *Handler) CreateAnnouncement(c *ginext.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateAnnouncementInput{
		Title:     req.Title,
		Message:   req.Message,
		Type:      req.Type,
		Audience:  domain.Audience(req.TargetAudience),
		EventID:   req.EventID,
		CreatedBy: req.CreatedBy,
	}

	a, err := h.announcementService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAnnouncementResponse(a))
}

func (h *Handler) ListAnnouncements(c *ginext.Context) {
	announcements, err := h.announcementService.List(c.Request.Context(), 0)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		resp = append(resp, dto.ToAnnouncementResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteAnnouncement(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid announcement id"})
		return
	}

	if err := h.announcementService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrClubNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrAnnouncementNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrVenueConflict),
		errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrRegistrationPending),
		errors.Is(err, domain.ErrRegistrationResolved):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrCollegeIDTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
