package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	"github.com/Navadeep1603/Campus-connect/internal/service/ports"
	"github.com/google/uuid"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if input.CollegeID == "" {
		return nil, fmt.Errorf("%w: college_id is required", domain.ErrValidation)
	}
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: role must be student, admin or faculty", domain.ErrValidation)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Email:          input.Email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		CollegeID:      input.CollegeID,
		Role:           input.Role,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
