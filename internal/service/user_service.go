package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/repository"
)

type UserService struct {
	users repository.UserRepository
	roles repository.RoleRepository
}

func NewUserService(users repository.UserRepository, roles repository.RoleRepository) *UserService {
	return &UserService{users: users, roles: roles}
}

type CreateUserInput struct {
	FirstName  string
	LastName   string
	PersonalID string
	Username   string
	Password   string
	RoleID     string
}

// Create adds a user with a hashed credential. Username and personalId must
// each be unique across all users, including against each other.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	for _, identifier := range []string{input.Username, input.PersonalID} {
		existing, err := s.users.GetByIdentifier(ctx, identifier)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrUserExists
		}
	}

	roleID, err := uuid.Parse(input.RoleID)
	if err != nil {
		return nil, domain.ErrRoleNotFound
	}
	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleNotFound
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PersonalID:   input.PersonalID,
		Username:     input.Username,
		PasswordHash: hashed,
		RoleID:       role.ID,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) ListWorkers(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleWorker)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// UpdateRole reassigns a user's role. Admin-only at the route layer.
func (s *UserService) UpdateRole(ctx context.Context, userID, roleID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil || user == nil {
		return nil, err
	}
	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleNotFound
	}

	user.RoleID = role.ID
	user.Role = role
	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
