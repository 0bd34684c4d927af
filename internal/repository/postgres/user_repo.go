package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/remi/logiprod-report/internal/domain"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Preload("Role").First(&user, "id = ?", id).Error
	return notFoundAsNil(&user, err)
}

func (r *userRepository) GetByPersonalID(ctx context.Context, personalID string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Preload("Role").First(&user, "personal_id = ?", personalID).Error
	return notFoundAsNil(&user, err)
}

func (r *userRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Preload("Role").
		First(&user, "username = ? OR personal_id = ?", identifier, identifier).Error
	return notFoundAsNil(&user, err)
}

// userLookupColumns whitelists the columns GetByFieldAndRole may match on.
var userLookupColumns = map[string]string{
	"id":          "users.id = ?",
	"personal_id": "users.personal_id = ?",
}

func (r *userRepository) GetByFieldAndRole(ctx context.Context, field, value, role string) (*domain.User, error) {
	cond, ok := userLookupColumns[field]
	if !ok {
		return nil, nil
	}

	var user domain.User
	err := r.db.WithContext(ctx).
		Joins("Role").
		Where(cond, value).
		Where(`"Role"."name" = ?`, role).
		First(&user).Error
	return notFoundAsNil(&user, err)
}

func (r *userRepository) ListByRole(ctx context.Context, role string) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.WithContext(ctx).
		Joins("Role").
		Where(`"Role"."name" = ?`, role).
		Order("users.last_name asc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.WithContext(ctx).Preload("Role").Order("created_at desc").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}
