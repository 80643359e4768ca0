package service

import (
	"context"
	"testing"
	"time"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	"github.com/Navadeep1603/Campus-connect/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementService_Create_Success(t *testing.T) {
	repo := mocks.NewMockAnnouncementRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewAnnouncementService(repo, notifier)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().AnnouncementPublished(mock.Anything, mock.Anything).Return()

	a, err := svc.Create(context.Background(), domain.CreateAnnouncementInput{
		Title:     "Semester Fair",
		Message:   "Club fair this Friday on the main lawn.",
		Audience:  domain.AudienceAll,
		CreatedBy: "u1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, domain.AudienceAll, a.Audience)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestAnnouncementService_Create_MissingTitle(t *testing.T) {
	repo := mocks.NewMockAnnouncementRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewAnnouncementService(repo, notifier)

	_, err := svc.Create(context.Background(), domain.CreateAnnouncementInput{
		Message:  "No title here.",
		Audience: domain.AudienceAll,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAnnouncementService_Create_UnknownAudience(t *testing.T) {
	repo := mocks.NewMockAnnouncementRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewAnnouncementService(repo, notifier)

	_, err := svc.Create(context.Background(), domain.CreateAnnouncementInput{
		Title:    "Semester Fair",
		Message:  "Club fair this Friday.",
		Audience: "faculty",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAnnouncementService_List_DefaultLimit(t *testing.T) {
	repo := mocks.NewMockAnnouncementRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewAnnouncementService(repo, notifier)

	repo.EXPECT().List(mock.Anything, defaultAnnouncementLimit).Return(nil, nil)

	_, err := svc.List(context.Background(), 0)

	require.NoError(t, err)
}

func TestAnnouncementService_List_ExplicitLimit(t *testing.T) {
	repo := mocks.NewMockAnnouncementRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewAnnouncementService(repo, notifier)

	repo.EXPECT().List(mock.Anything, 10).Return([]*domain.Announcement{{ID: "a1"}}, nil)

	result, err := svc.List(context.Background(), 10)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestAnnouncementService_Delete_Success(t *testing.T) {
	repo := mocks.NewMockAnnouncementRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewAnnouncementService(repo, notifier)

	repo.EXPECT().Delete(mock.Anything, "a1").Return(nil)

	err := svc.Delete(context.Background(), "a1")

	require.NoError(t, err)
}

func TestAnnouncementService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockAnnouncementRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewAnnouncementService(repo, notifier)

	repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrAnnouncementNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAnnouncementNotFound)
}
