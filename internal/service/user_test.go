package service

import (
	"context"
	"testing"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	"github.com/Navadeep1603/Campus-connect/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Email:     "alice@campus.edu",
		FirstName: "Alice",
		LastName:  "Johnson",
		CollegeID: "STU-1042",
		Role:      domain.RoleStudent,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleStudent, user.Role)
	assert.Equal(t, "STU-1042", user.CollegeID)
}

func TestUserService_Create_MissingEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		CollegeID: "STU-1042",
		Role:      domain.RoleStudent,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// The role is an explicit field on the user; nothing is derived from the
// college id format.
func TestUserService_Create_UnknownRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Email:     "alice@campus.edu",
		CollegeID: "ADM-001",
		Role:      "superuser",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Email:     "alice@campus.edu",
		CollegeID: "STU-1042",
		Role:      domain.RoleStudent,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_List_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	users := []*domain.User{
		{ID: "u1", Role: domain.RoleStudent},
		{ID: "u2", Role: domain.RoleAdmin},
	}
	repo.EXPECT().List(mock.Anything).Return(users, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
