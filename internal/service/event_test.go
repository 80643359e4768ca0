package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	"github.com/Navadeep1603/Campus-connect/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEventService(t *testing.T) (*EventService, *mocks.MockEventRepo, *mocks.MockClubRepo, *mocks.MockRegistrationRepo, *mocks.MockNotifier) {
	t.Helper()
	eventRepo := mocks.NewMockEventRepo(t)
	clubRepo := mocks.NewMockClubRepo(t)
	regRepo := mocks.NewMockRegistrationRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewEventService(eventRepo, clubRepo, regRepo, notifier, newTestLogger(t))
	return svc, eventRepo, clubRepo, regRepo, notifier
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return ts
}

func TestEventService_FindConflict_OverlapSameVenue(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	existing := &domain.Event{
		ID:        "e1",
		Title:     "Robotics Demo",
		Venue:     "Main Auditorium",
		StartTime: mustParse(t, "2026-09-10T14:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T16:00:00Z"),
	}
	eventRepo.EXPECT().ListByVenue(mock.Anything, "Main Auditorium").Return([]*domain.Event{existing}, nil)

	candidate := domain.EventCandidate{
		Venue:     "Main Auditorium",
		StartTime: mustParse(t, "2026-09-10T15:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T17:00:00Z"),
	}
	conflict, err := svc.FindConflict(context.Background(), candidate, "")

	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, "e1", conflict.ID)
}

// Back to back slots share an instant but not an interval.
func TestEventService_FindConflict_TouchingBoundaries(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	existing := &domain.Event{
		ID:        "e1",
		Venue:     "Main Auditorium",
		StartTime: mustParse(t, "2026-09-10T14:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T16:00:00Z"),
	}
	eventRepo.EXPECT().ListByVenue(mock.Anything, "Main Auditorium").Return([]*domain.Event{existing}, nil)

	candidate := domain.EventCandidate{
		Venue:     "Main Auditorium",
		StartTime: mustParse(t, "2026-09-10T16:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T18:00:00Z"),
	}
	conflict, err := svc.FindConflict(context.Background(), candidate, "")

	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestEventService_FindConflict_EqualStarts(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	existing := &domain.Event{
		ID:        "e1",
		Venue:     "Lab 2",
		StartTime: mustParse(t, "2026-09-10T14:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T15:00:00Z"),
	}
	eventRepo.EXPECT().ListByVenue(mock.Anything, "Lab 2").Return([]*domain.Event{existing}, nil)

	candidate := domain.EventCandidate{
		Venue:     "Lab 2",
		StartTime: mustParse(t, "2026-09-10T14:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T16:00:00Z"),
	}
	conflict, err := svc.FindConflict(context.Background(), candidate, "")

	require.NoError(t, err)
	require.NotNil(t, conflict)
}

func TestEventService_FindConflict_ContainedInterval(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	existing := &domain.Event{
		ID:        "e1",
		Venue:     "Lab 2",
		StartTime: mustParse(t, "2026-09-10T10:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T18:00:00Z"),
	}
	eventRepo.EXPECT().ListByVenue(mock.Anything, "Lab 2").Return([]*domain.Event{existing}, nil)

	candidate := domain.EventCandidate{
		Venue:     "Lab 2",
		StartTime: mustParse(t, "2026-09-10T12:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T13:00:00Z"),
	}
	conflict, err := svc.FindConflict(context.Background(), candidate, "")

	require.NoError(t, err)
	require.NotNil(t, conflict)
}

// An event never conflicts with itself when its own schedule is edited.
func TestEventService_FindConflict_IgnoresSelf(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	existing := &domain.Event{
		ID:        "e1",
		Venue:     "Main Auditorium",
		StartTime: mustParse(t, "2026-09-10T14:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T16:00:00Z"),
	}
	eventRepo.EXPECT().ListByVenue(mock.Anything, "Main Auditorium").Return([]*domain.Event{existing}, nil)

	candidate := domain.EventCandidate{
		Venue:     "Main Auditorium",
		StartTime: mustParse(t, "2026-09-10T14:30:00Z"),
		EndTime:   mustParse(t, "2026-09-10T16:30:00Z"),
	}
	conflict, err := svc.FindConflict(context.Background(), candidate, "e1")

	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestEventService_FindConflict_RepoError(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	eventRepo.EXPECT().ListByVenue(mock.Anything, "Main Auditorium").Return(nil, errors.New("db error"))

	candidate := domain.EventCandidate{
		Venue:     "Main Auditorium",
		StartTime: mustParse(t, "2026-09-10T14:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T16:00:00Z"),
	}
	_, err := svc.FindConflict(context.Background(), candidate, "")

	require.Error(t, err)
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	svc, eventRepo, clubRepo, _, notifier := newEventService(t)

	input := domain.CreateEventInput{
		Title:     "Robotics Workshop",
		ClubID:    "c1",
		Venue:     "Lab 2",
		StartTime: mustParse(t, "2026-09-10T14:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T16:00:00Z"),
		Capacity:  30,
	}

	clubRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Club{ID: "c1", Name: "Robotics Club"}, nil)
	eventRepo.EXPECT().ListByVenue(mock.Anything, "Lab 2").Return(nil, nil)
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().EventPublished(mock.Anything, mock.Anything).Return()

	event, err := svc.CreateEvent(context.Background(), input)

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Robotics Workshop", event.Title)
	assert.Equal(t, 30, event.Capacity)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEventService_CreateEvent_VenueConflict(t *testing.T) {
	svc, eventRepo, clubRepo, _, _ := newEventService(t)

	existing := &domain.Event{
		ID:        "e1",
		Title:     "Drama Rehearsal",
		Venue:     "Main Auditorium",
		StartTime: mustParse(t, "2026-09-10T15:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T17:00:00Z"),
	}
	clubRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Club{ID: "c1"}, nil)
	eventRepo.EXPECT().ListByVenue(mock.Anything, "Main Auditorium").Return([]*domain.Event{existing}, nil)

	input := domain.CreateEventInput{
		Title:     "Robotics Demo",
		ClubID:    "c1",
		Venue:     "Main Auditorium",
		StartTime: mustParse(t, "2026-09-10T14:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T16:00:00Z"),
	}
	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueConflict)
}

func TestEventService_CreateEvent_InvalidTimes(t *testing.T) {
	svc, _, _, _, _ := newEventService(t)

	input := domain.CreateEventInput{
		Title:     "Robotics Demo",
		ClubID:    "c1",
		Venue:     "Lab 2",
		StartTime: mustParse(t, "2026-09-10T16:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T14:00:00Z"),
	}
	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_NegativeCapacity(t *testing.T) {
	svc, _, _, _, _ := newEventService(t)

	input := domain.CreateEventInput{
		Title:     "Robotics Demo",
		ClubID:    "c1",
		Venue:     "Lab 2",
		StartTime: mustParse(t, "2026-09-10T14:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T16:00:00Z"),
		Capacity:  -1,
	}
	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_ClubNotFound(t *testing.T) {
	svc, _, clubRepo, _, _ := newEventService(t)

	clubRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrClubNotFound)

	input := domain.CreateEventInput{
		Title:     "Robotics Demo",
		ClubID:    "missing",
		Venue:     "Lab 2",
		StartTime: mustParse(t, "2026-09-10T14:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T16:00:00Z"),
	}
	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClubNotFound)
}

func TestEventService_UpdateEvent_RescheduleConflict(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	current := &domain.Event{
		ID:        "e1",
		Title:     "Robotics Demo",
		Venue:     "Main Auditorium",
		StartTime: mustParse(t, "2026-09-10T10:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T12:00:00Z"),
	}
	other := &domain.Event{
		ID:        "e2",
		Title:     "Drama Rehearsal",
		Venue:     "Main Auditorium",
		StartTime: mustParse(t, "2026-09-10T15:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T17:00:00Z"),
	}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(current, nil)
	eventRepo.EXPECT().ListByVenue(mock.Anything, "Main Auditorium").Return([]*domain.Event{current, other}, nil)

	start := mustParse(t, "2026-09-10T14:00:00Z")
	end := mustParse(t, "2026-09-10T16:00:00Z")
	_, err := svc.UpdateEvent(context.Background(), "e1", domain.UpdateEventInput{
		StartTime: &start,
		EndTime:   &end,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueConflict)
}

func TestEventService_UpdateEvent_RescheduleKeepsOwnSlot(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	current := &domain.Event{
		ID:        "e1",
		Venue:     "Main Auditorium",
		StartTime: mustParse(t, "2026-09-10T14:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T16:00:00Z"),
	}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(current, nil)
	eventRepo.EXPECT().ListByVenue(mock.Anything, "Main Auditorium").Return([]*domain.Event{current}, nil)
	eventRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	start := mustParse(t, "2026-09-10T14:30:00Z")
	updated, err := svc.UpdateEvent(context.Background(), "e1", domain.UpdateEventInput{StartTime: &start})

	require.NoError(t, err)
	assert.Equal(t, start, updated.StartTime)
}

// Changing only the title skips the conflict scan.
func TestEventService_UpdateEvent_TitleOnly(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	current := &domain.Event{
		ID:        "e1",
		Title:     "Robotics Demo",
		Venue:     "Main Auditorium",
		StartTime: mustParse(t, "2026-09-10T14:00:00Z"),
		EndTime:   mustParse(t, "2026-09-10T16:00:00Z"),
	}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(current, nil)
	eventRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	title := "Robotics Showcase"
	updated, err := svc.UpdateEvent(context.Background(), "e1", domain.UpdateEventInput{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "Robotics Showcase", updated.Title)
}

func TestEventService_UpdateEvent_NotFound(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	title := "New Title"
	_, err := svc.UpdateEvent(context.Background(), "missing", domain.UpdateEventInput{Title: &title})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_DeleteEvent_NotifiesRegistrants(t *testing.T) {
	svc, eventRepo, _, regRepo, notifier := newEventService(t)

	event := &domain.Event{ID: "e1", Title: "Robotics Demo"}
	students := []string{"u1", "u2"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	regRepo.EXPECT().ListActiveStudents(mock.Anything, "e1").Return(students, nil)
	eventRepo.EXPECT().Delete(mock.Anything, "e1").Return(nil)
	notifier.EXPECT().EventCancelled(mock.Anything, event, students).Return()

	err := svc.DeleteEvent(context.Background(), "e1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestEventService_DeleteEvent_NoRegistrants(t *testing.T) {
	svc, eventRepo, _, regRepo, _ := newEventService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	regRepo.EXPECT().ListActiveStudents(mock.Anything, "e1").Return(nil, nil)
	eventRepo.EXPECT().Delete(mock.Anything, "e1").Return(nil)

	err := svc.DeleteEvent(context.Background(), "e1")

	require.NoError(t, err)
}

func TestEventService_DeleteEvent_NotFound(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	err := svc.DeleteEvent(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_RemindUpcoming_Success(t *testing.T) {
	svc, eventRepo, _, regRepo, notifier := newEventService(t)

	due := []*domain.Event{
		{ID: "e1", Title: "Robotics Demo"},
		{ID: "e2", Title: "Drama Night"},
	}
	eventRepo.EXPECT().ListDueReminders(mock.Anything, 24*time.Hour).Return(due, nil)
	regRepo.EXPECT().ListApprovedStudents(mock.Anything, "e1").Return([]string{"u1"}, nil)
	regRepo.EXPECT().ListApprovedStudents(mock.Anything, "e2").Return(nil, nil)
	notifier.EXPECT().EventReminder(mock.Anything, due[0], []string{"u1"}).Return()
	eventRepo.EXPECT().MarkReminderSent(mock.Anything, "e1").Return(nil)
	eventRepo.EXPECT().MarkReminderSent(mock.Anything, "e2").Return(nil)

	reminded, err := svc.RemindUpcoming(context.Background(), 24*time.Hour)

	require.NoError(t, err)
	assert.Len(t, reminded, 2)
}

func TestEventService_RemindUpcoming_NoneDue(t *testing.T) {
	svc, eventRepo, _, _, _ := newEventService(t)

	eventRepo.EXPECT().ListDueReminders(mock.Anything, 24*time.Hour).Return(nil, nil)

	reminded, err := svc.RemindUpcoming(context.Background(), 24*time.Hour)

	require.NoError(t, err)
	assert.Empty(t, reminded)
}

func TestEventService_RemindUpcoming_MarkFailureSkipsEvent(t *testing.T) {
	svc, eventRepo, _, regRepo, notifier := newEventService(t)

	due := []*domain.Event{{ID: "e1", Title: "Robotics Demo"}}
	eventRepo.EXPECT().ListDueReminders(mock.Anything, time.Hour).Return(due, nil)
	regRepo.EXPECT().ListApprovedStudents(mock.Anything, "e1").Return([]string{"u1"}, nil)
	notifier.EXPECT().EventReminder(mock.Anything, due[0], []string{"u1"}).Return()
	eventRepo.EXPECT().MarkReminderSent(mock.Anything, "e1").Return(errors.New("db error"))

	reminded, err := svc.RemindUpcoming(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Empty(t, reminded)
}
