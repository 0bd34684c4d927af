package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/remi/logiprod-report/internal/domain"
	"gorm.io/gorm"
)

type workstationRepository struct {
	db *gorm.DB
}

func NewWorkstationRepository(db *gorm.DB) *workstationRepository {
	return &workstationRepository{db: db}
}

func (r *workstationRepository) Create(ctx context.Context, ws *domain.Workstation) error {
	return r.db.WithContext(ctx).Create(ws).Error
}

func (r *workstationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workstation, error) {
	var ws domain.Workstation
	err := r.db.WithContext(ctx).First(&ws, "id = ?", id).Error
	return notFoundAsNil(&ws, err)
}

func (r *workstationRepository) GetByNameOrDisplayName(ctx context.Context, name, displayName string) (*domain.Workstation, error) {
	var ws domain.Workstation
	err := r.db.WithContext(ctx).
		First(&ws, "name = ? OR display_name = ?", name, displayName).Error
	return notFoundAsNil(&ws, err)
}

func (r *workstationRepository) List(ctx context.Context) ([]*domain.Workstation, error) {
	var stations []*domain.Workstation
	err := r.db.WithContext(ctx).Order("display_name asc").Find(&stations).Error
	if err != nil {
		return nil, err
	}
	return stations, nil
}
