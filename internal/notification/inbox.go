package notification

import (
	"context"
	"fmt"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	"github.com/Navadeep1603/Campus-connect/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02.01.2006 15:04"

// InboxNotifier turns workflow transitions into notification rows. Direct
// (non-broadcast) messages are also relayed to Telegram when the student has
// a chat id. Everything is fire-and-forget: a failed delivery is logged and
// never surfaces to the transition that triggered it.
type InboxNotifier struct {
	store  ports.NotificationStore
	relay  *TelegramRelay
	logger logger.Logger
}

func NewInboxNotifier(store ports.NotificationStore, relay *TelegramRelay, logger logger.Logger) *InboxNotifier {
	return &InboxNotifier{store: store, relay: relay, logger: logger}
}

func (n *InboxNotifier) EventPublished(ctx context.Context, event *domain.Event) {
	text := fmt.Sprintf("New event: %s on %s at %s",
		event.Title, event.StartTime.Format(timeLayout), event.Venue)
	n.send(ctx, domain.RecipientAll, text)
}

func (n *InboxNotifier) EventCancelled(ctx context.Context, event *domain.Event, studentIDs []string) {
	text := fmt.Sprintf("Event cancelled: %s on %s", event.Title, event.StartTime.Format(timeLayout))
	for _, id := range studentIDs {
		n.send(ctx, id, text)
	}
}

func (n *InboxNotifier) EventReminder(ctx context.Context, event *domain.Event, studentIDs []string) {
	text := fmt.Sprintf("Reminder: %s starts on %s at %s",
		event.Title, event.StartTime.Format(timeLayout), event.Venue)
	for _, id := range studentIDs {
		n.send(ctx, id, text)
	}
}

func (n *InboxNotifier) RegistrationRequested(ctx context.Context, student *domain.User, event *domain.Event) {
	n.send(ctx, domain.RecipientAllAdmins,
		fmt.Sprintf("New registration request from %s (%s) for %s",
			student.FullName(), student.CollegeID, event.Title))
	n.send(ctx, student.ID,
		fmt.Sprintf("Registration request submitted for %s. Waiting for admin approval.", event.Title))
	n.relayToUser(ctx, student,
		fmt.Sprintf("Registration submitted for %s, awaiting approval.", event.Title))
}

func (n *InboxNotifier) RegistrationApproved(ctx context.Context, student *domain.User, event *domain.Event) {
	text := fmt.Sprintf("Your registration for %s has been approved.", event.Title)
	n.send(ctx, student.ID, text)
	n.relayToUser(ctx, student, text)
}

func (n *InboxNotifier) RegistrationRejected(ctx context.Context, student *domain.User, event *domain.Event) {
	text := fmt.Sprintf("Your registration for %s has been rejected.", event.Title)
	n.send(ctx, student.ID, text)
	n.relayToUser(ctx, student, text)
}

func (n *InboxNotifier) AnnouncementPublished(ctx context.Context, a *domain.Announcement) {
	text := fmt.Sprintf("Announcement: %s - %s", a.Title, a.Message)
	switch a.Audience {
	case domain.AudienceAdmins:
		n.send(ctx, domain.RecipientAllAdmins, text)
	default:
		// "students" keeps the broadcast semantics of the inbox: the feed is
		// visible to every user, so both audiences map to RecipientAll.
		n.send(ctx, domain.RecipientAll, text)
	}
}

func (n *InboxNotifier) send(ctx context.Context, recipient, message string) {
	if err := n.store.Send(ctx, recipient, message); err != nil {
		n.logger.Error("failed to store notification",
			logger.String("recipient", recipient),
			logger.String("error", err.Error()),
		)
	}
}

func (n *InboxNotifier) relayToUser(ctx context.Context, user *domain.User, text string) {
	if n.relay != nil {
		n.relay.Send(ctx, user, text)
	}
}
