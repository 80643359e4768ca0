package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	"github.com/Navadeep1603/Campus-connect/internal/service/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newInboxNotifier(t *testing.T) (*InboxNotifier, *mocks.MockNotificationStore) {
	t.Helper()
	store := mocks.NewMockNotificationStore(t)
	return NewInboxNotifier(store, nil, newTestLogger(t)), store
}

func TestInboxNotifier_EventPublished_BroadcastsToAll(t *testing.T) {
	n, store := newInboxNotifier(t)

	event := &domain.Event{
		Title:     "Robotics Workshop",
		Venue:     "Lab 2",
		StartTime: time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
	}

	store.EXPECT().Send(mock.Anything, domain.RecipientAll, "New event: Robotics Workshop on 10.09.2026 14:00 at Lab 2").Return(nil)

	n.EventPublished(context.Background(), event)
}

func TestInboxNotifier_EventCancelled_MessagesEachRegistrant(t *testing.T) {
	n, store := newInboxNotifier(t)

	event := &domain.Event{
		Title:     "Robotics Workshop",
		StartTime: time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
	}

	store.EXPECT().Send(mock.Anything, "u1", mock.Anything).Return(nil)
	store.EXPECT().Send(mock.Anything, "u2", mock.Anything).Return(nil)

	n.EventCancelled(context.Background(), event, []string{"u1", "u2"})
}

func TestInboxNotifier_RegistrationRequested_NotifiesAdminsAndStudent(t *testing.T) {
	n, store := newInboxNotifier(t)

	student := &domain.User{ID: "u1", FirstName: "Alice", LastName: "Johnson", CollegeID: "STU-1042"}
	event := &domain.Event{ID: "e1", Title: "Robotics Workshop"}

	store.EXPECT().Send(mock.Anything, domain.RecipientAllAdmins,
		"New registration request from Alice Johnson (STU-1042) for Robotics Workshop").Return(nil)
	store.EXPECT().Send(mock.Anything, "u1",
		"Registration request submitted for Robotics Workshop. Waiting for admin approval.").Return(nil)

	n.RegistrationRequested(context.Background(), student, event)
}

func TestInboxNotifier_RegistrationApproved_MessagesStudent(t *testing.T) {
	n, store := newInboxNotifier(t)

	student := &domain.User{ID: "u1"}
	event := &domain.Event{Title: "Robotics Workshop"}

	store.EXPECT().Send(mock.Anything, "u1", "Your registration for Robotics Workshop has been approved.").Return(nil)

	n.RegistrationApproved(context.Background(), student, event)
}

func TestInboxNotifier_RegistrationRejected_MessagesStudent(t *testing.T) {
	n, store := newInboxNotifier(t)

	student := &domain.User{ID: "u1"}
	event := &domain.Event{Title: "Robotics Workshop"}

	store.EXPECT().Send(mock.Anything, "u1", "Your registration for Robotics Workshop has been rejected.").Return(nil)

	n.RegistrationRejected(context.Background(), student, event)
}

func TestInboxNotifier_AnnouncementPublished_AdminsOnly(t *testing.T) {
	n, store := newInboxNotifier(t)

	a := &domain.Announcement{Title: "Budget Review", Message: "Submit club budgets by Friday.", Audience: domain.AudienceAdmins}

	store.EXPECT().Send(mock.Anything, domain.RecipientAllAdmins, mock.Anything).Return(nil)

	n.AnnouncementPublished(context.Background(), a)
}

func TestInboxNotifier_AnnouncementPublished_AllAudience(t *testing.T) {
	n, store := newInboxNotifier(t)

	a := &domain.Announcement{Title: "Semester Fair", Message: "Club fair this Friday.", Audience: domain.AudienceAll}

	store.EXPECT().Send(mock.Anything, domain.RecipientAll, mock.Anything).Return(nil)

	n.AnnouncementPublished(context.Background(), a)
}

// Delivery failures are logged, never propagated.
func TestInboxNotifier_StoreError_DoesNotPanic(t *testing.T) {
	n, store := newInboxNotifier(t)

	event := &domain.Event{Title: "Robotics Workshop", StartTime: time.Now()}

	store.EXPECT().Send(mock.Anything, domain.RecipientAll, mock.Anything).Return(errors.New("db error"))

	n.EventPublished(context.Background(), event)
}
