package service

import (
	"context"
	"errors"

	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/repository"
	"github.com/remi/logiprod-report/internal/session"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both an unknown identifier and a wrong
// password: callers must not be able to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login authenticates by username or personalId. The returned user carries
// its role but never the password hash beyond this layer's needs.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*domain.User, error) {
	user, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ValidateUserInSession resolves a user where user[field] == value AND the
// user's role name equals role. Both conditions are mandatory: a correct
// value paired with the wrong role fails closed and returns nil.
func (s *AuthService) ValidateUserInSession(ctx context.Context, field, value, role string) (*domain.User, error) {
	if value == "" || role == "" {
		return nil, nil
	}
	return s.users.GetByFieldAndRole(ctx, field, value, role)
}

// IsStaffSession reports whether the session's declared userId resolves to
// a real user under the declared role, and that role is a staff role. The
// session is a claim, not a source of truth: this re-validates against the
// user store on every call.
func (s *AuthService) IsStaffSession(ctx context.Context, sess *session.Session) (bool, error) {
	user, err := s.ValidateUserInSession(ctx, "id", sess.UserID(), sess.Role())
	if err != nil {
		return false, err
	}
	return user != nil && domain.IsStaffRole(sess.Role()), nil
}

// ValidateAdminSession returns the validated user when the session belongs
// to an Admin, nil otherwise. The user is returned so callers can reuse it
// without a second lookup.
func (s *AuthService) ValidateAdminSession(ctx context.Context, sess *session.Session) (*domain.User, error) {
	user, err := s.ValidateUserInSession(ctx, "id", sess.UserID(), sess.Role())
	if err != nil {
		return nil, err
	}
	if user == nil || sess.Role() != domain.RoleAdmin {
		return nil, nil
	}
	return user, nil
}
