package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/remi/logiprod-report/internal/domain"
	"gorm.io/gorm"
)

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *roleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(ctx context.Context, role *domain.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *roleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Role, error) {
	var role domain.Role
	err := r.db.WithContext(ctx).First(&role, "id = ?", id).Error
	return notFoundAsNil(&role, err)
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	var role domain.Role
	err := r.db.WithContext(ctx).First(&role, "name = ?", name).Error
	return notFoundAsNil(&role, err)
}

func (r *roleRepository) GetByNameOrDisplayName(ctx context.Context, name, displayName string) (*domain.Role, error) {
	var role domain.Role
	err := r.db.WithContext(ctx).
		First(&role, "name = ? OR display_name = ?", name, displayName).Error
	return notFoundAsNil(&role, err)
}

func (r *roleRepository) List(ctx context.Context) ([]*domain.Role, error) {
	var roles []*domain.Role
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}
