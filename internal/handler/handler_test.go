package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	"github.com/Navadeep1603/Campus-connect/internal/handler/dto"
	hmocks "github.com/Navadeep1603/Campus-connect/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testMocks struct {
	eventSvc        *hmocks.MockEventSvc
	registrationSvc *hmocks.MockRegistrationSvc
	userSvc         *hmocks.MockUserSvc
	notificationSvc *hmocks.MockNotificationSvc
	announcementSvc *hmocks.MockAnnouncementSvc
}

func setupRouter(t *testing.T) (*testMocks, http.Handler) {
	t.Helper()
	m := &testMocks{
		eventSvc:        hmocks.NewMockEventSvc(t),
		registrationSvc: hmocks.NewMockRegistrationSvc(t),
		userSvc:         hmocks.NewMockUserSvc(t),
		notificationSvc: hmocks.NewMockNotificationSvc(t),
		announcementSvc: hmocks.NewMockAnnouncementSvc(t),
	}

	h := NewHandler(m.eventSvc, m.registrationSvc, m.userSvc, m.notificationSvc, m.announcementSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.POST("/events/:id/register", h.RegisterForEvent)
		api.GET("/registrations", h.ListRegistrations)
		api.POST("/registrations/:id/approve", h.ApproveRegistration)
		api.POST("/registrations/:id/reject", h.RejectRegistration)
		api.GET("/students/:id/registrations", h.GetStudentRegistrations)
		api.GET("/clubs", h.ListClubs)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/notifications", h.ListNotifications)
		api.GET("/users/:id/notifications/unread-count", h.GetUnreadCount)
		api.POST("/notifications/:id/read", h.MarkNotificationRead)
		api.POST("/announcements", h.CreateAnnouncement)
		api.GET("/announcements", h.ListAnnouncements)
		api.DELETE("/announcements/:id", h.DeleteAnnouncement)
	}

	return m, r
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	start := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	event := &domain.Event{
		ID:        uuid.New().String(),
		Title:     "Robotics Workshop",
		ClubID:    uuid.New().String(),
		Venue:     "Lab 2",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Capacity:  30,
		CreatedAt: time.Now(),
	}

	m.eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Title:     "Robotics Workshop",
		ClubID:    event.ClubID,
		Venue:     "Lab 2",
		StartTime: start.Format(time.RFC3339),
		EndTime:   start.Add(2 * time.Hour).Format(time.RFC3339),
		Capacity:  30,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Robotics Workshop", resp.Title)
	assert.Equal(t, 30, resp.Capacity)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"title":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidTime(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"title":"X","club_id":"c1","venue":"Lab 2","start_time":"not-a-time","end_time":"also-not"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_VenueConflict(t *testing.T) {
	m, r := setupRouter(t)

	m.eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(nil, domain.ErrVenueConflict)

	start := time.Now().Add(48 * time.Hour)
	body, _ := json.Marshal(dto.CreateEventRequest{
		Title:     "Robotics Workshop",
		ClubID:    uuid.New().String(),
		Venue:     "Main Auditorium",
		StartTime: start.Format(time.RFC3339),
		EndTime:   start.Add(2 * time.Hour).Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	details := &domain.EventDetails{
		Event:         domain.Event{ID: eventID, Title: "Robotics Workshop", Capacity: 30, StartTime: time.Now(), EndTime: time.Now().Add(time.Hour), CreatedAt: time.Now()},
		ApprovedCount: 12,
	}

	m.eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.ApprovedCount)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	m, r := setupRouter(t)

	events := []*domain.Event{
		{ID: "e1", Title: "Robotics Workshop", StartTime: time.Now(), EndTime: time.Now().Add(time.Hour), CreatedAt: time.Now()},
		{ID: "e2", Title: "Drama Night", StartTime: time.Now(), EndTime: time.Now().Add(time.Hour), CreatedAt: time.Now()},
	}
	m.eventSvc.EXPECT().List(mock.Anything).Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_UpdateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	updated := &domain.Event{
		ID:        eventID,
		Title:     "Robotics Showcase",
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	m.eventSvc.EXPECT().UpdateEvent(mock.Anything, eventID, mock.Anything).Return(updated, nil)

	body := []byte(`{"title":"Robotics Showcase"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/events/"+eventID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Robotics Showcase", resp.Title)
}

func TestHandler_UpdateEvent_Conflict(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.eventSvc.EXPECT().UpdateEvent(mock.Anything, eventID, mock.Anything).Return(nil, domain.ErrVenueConflict)

	body := []byte(`{"venue":"Main Auditorium"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/events/"+eventID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DeleteEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.eventSvc.EXPECT().DeleteEvent(mock.Anything, eventID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Registrations ---

func TestHandler_RegisterForEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	studentID := uuid.New().String()
	reg := &domain.Registration{
		ID:        uuid.New().String(),
		EventID:   eventID,
		StudentID: studentID,
		Status:    domain.RegistrationStatusPending,
		CreatedAt: time.Now(),
	}

	m.registrationSvc.EXPECT().Request(mock.Anything, eventID, studentID).Return(reg, nil)

	body, _ := json.Marshal(dto.RegisterRequest{StudentID: studentID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Empty(t, resp.ApprovedAt)
}

func TestHandler_RegisterForEvent_InvalidEventID(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"student_id":"` + uuid.New().String() + `"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/bad-id/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RegisterForEvent_EventFull(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	studentID := uuid.New().String()

	m.registrationSvc.EXPECT().Request(mock.Anything, eventID, studentID).Return(nil, domain.ErrEventFull)

	body, _ := json.Marshal(dto.RegisterRequest{StudentID: studentID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RegisterForEvent_AlreadyRegistered(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	studentID := uuid.New().String()

	m.registrationSvc.EXPECT().Request(mock.Anything, eventID, studentID).Return(nil, domain.ErrAlreadyRegistered)

	body, _ := json.Marshal(dto.RegisterRequest{StudentID: studentID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ApproveRegistration_Success(t *testing.T) {
	m, r := setupRouter(t)

	regID := uuid.New().String()
	approvedAt := time.Now()
	reg := &domain.Registration{
		ID:         regID,
		EventID:    uuid.New().String(),
		StudentID:  uuid.New().String(),
		Status:     domain.RegistrationStatusApproved,
		CreatedAt:  time.Now(),
		ApprovedAt: &approvedAt,
	}

	m.registrationSvc.EXPECT().Approve(mock.Anything, regID).Return(reg, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/registrations/"+regID+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
	assert.NotEmpty(t, resp.ApprovedAt)
}

func TestHandler_ApproveRegistration_AlreadyResolved(t *testing.T) {
	m, r := setupRouter(t)

	regID := uuid.New().String()
	m.registrationSvc.EXPECT().Approve(mock.Anything, regID).Return(nil, domain.ErrRegistrationResolved)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/registrations/"+regID+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ApproveRegistration_EventFull(t *testing.T) {
	m, r := setupRouter(t)

	regID := uuid.New().String()
	m.registrationSvc.EXPECT().Approve(mock.Anything, regID).Return(nil, domain.ErrEventFull)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/registrations/"+regID+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RejectRegistration_Success(t *testing.T) {
	m, r := setupRouter(t)

	regID := uuid.New().String()
	reg := &domain.Registration{
		ID:        regID,
		EventID:   uuid.New().String(),
		StudentID: uuid.New().String(),
		Status:    domain.RegistrationStatusRejected,
		CreatedAt: time.Now(),
	}

	m.registrationSvc.EXPECT().Reject(mock.Anything, regID).Return(reg, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/registrations/"+regID+"/reject", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "rejected", resp.Status)
}

func TestHandler_ListRegistrations_DefaultsToPending(t *testing.T) {
	m, r := setupRouter(t)

	details := []*domain.RegistrationDetails{
		{
			Registration: domain.Registration{ID: "r1", Status: domain.RegistrationStatusPending, CreatedAt: time.Now()},
			EventTitle:   "Robotics Workshop",
			EventStart:   time.Now(),
			StudentName:  "Alice Johnson",
			CollegeID:    "STU-1042",
		},
	}
	m.registrationSvc.EXPECT().ListByStatus(mock.Anything, domain.RegistrationStatusPending).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/registrations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RegistrationDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Alice Johnson", resp[0].StudentName)
}

func TestHandler_ListRegistrations_UnknownStatus(t *testing.T) {
	m, r := setupRouter(t)

	m.registrationSvc.EXPECT().ListByStatus(mock.Anything, domain.RegistrationStatus("cancelled")).Return(nil, domain.ErrValidation)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/registrations?status=cancelled", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetStudentRegistrations_Success(t *testing.T) {
	m, r := setupRouter(t)

	studentID := uuid.New().String()
	regs := []*domain.StudentRegistration{
		{
			Registration: domain.Registration{ID: "r1", EventID: "e1", StudentID: studentID, Status: domain.RegistrationStatusApproved, CreatedAt: time.Now()},
			Event:        domain.Event{ID: "e1", Title: "Robotics Workshop", StartTime: time.Now(), EndTime: time.Now().Add(time.Hour), CreatedAt: time.Now()},
		},
	}
	m.registrationSvc.EXPECT().ListByStudent(mock.Anything, studentID).Return(regs, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/"+studentID+"/registrations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.StudentRegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Clubs ---

func TestHandler_ListClubs_Success(t *testing.T) {
	m, r := setupRouter(t)

	clubs := []*domain.Club{
		{ID: "c1", Name: "Robotics Club", Category: "STEM", Faculty: "Dr. Lee"},
		{ID: "c2", Name: "Drama Society", Category: "Arts", Faculty: "Ms. Patel"},
	}
	m.eventSvc.EXPECT().ListClubs(mock.Anything).Return(clubs, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clubs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ClubResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Email:     "alice@campus.edu",
		FirstName: "Alice",
		LastName:  "Johnson",
		CollegeID: "STU-1042",
		Role:      domain.RoleStudent,
		CreatedAt: time.Now(),
	}
	m.userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{
		Email:     "alice@campus.edu",
		FirstName: "Alice",
		LastName:  "Johnson",
		CollegeID: "STU-1042",
		Role:      "student",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "student", resp.Role)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{
		Email:     "taken@campus.edu",
		FirstName: "Alice",
		LastName:  "Johnson",
		CollegeID: "STU-1042",
		Role:      "student",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Notifications ---

func TestHandler_ListNotifications_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	notifications := []*domain.Notification{
		{ID: "n1", UserID: userID, Message: "New event: Robotics Workshop", CreatedAt: time.Now()},
	}
	m.notificationSvc.EXPECT().ListByUser(mock.Anything, userID).Return(notifications, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/notifications", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.NotificationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUnreadCount_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.notificationSvc.EXPECT().UnreadCount(mock.Anything, userID).Return(3, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/notifications/unread-count", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"unread":3}`, w.Body.String())
}

func TestHandler_MarkNotificationRead_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.notificationSvc.EXPECT().MarkRead(mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/"+id+"/read", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Announcements ---

func TestHandler_CreateAnnouncement_Success(t *testing.T) {
	m, r := setupRouter(t)

	a := &domain.Announcement{
		ID:        uuid.New().String(),
		Title:     "Semester Fair",
		Message:   "Club fair this Friday on the main lawn.",
		Audience:  domain.AudienceAll,
		CreatedBy: uuid.New().String(),
		CreatedAt: time.Now(),
	}
	m.announcementSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(a, nil)

	body, _ := json.Marshal(dto.CreateAnnouncementRequest{
		Title:          "Semester Fair",
		Message:        "Club fair this Friday on the main lawn.",
		TargetAudience: "all",
		CreatedBy:      a.CreatedBy,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/announcements", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AnnouncementResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "all", resp.TargetAudience)
}

func TestHandler_DeleteAnnouncement_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.announcementSvc.EXPECT().Delete(mock.Anything, id).Return(domain.ErrAnnouncementNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/announcements/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
