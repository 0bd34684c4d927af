package postgres

import (
	"context"

	"github.com/remi/logiprod-report/internal/domain"
	"gorm.io/gorm"
)

type reportStatusRepository struct {
	db *gorm.DB
}

func NewReportStatusRepository(db *gorm.DB) *reportStatusRepository {
	return &reportStatusRepository{db: db}
}

func (r *reportStatusRepository) Create(ctx context.Context, status *domain.ReportStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *reportStatusRepository) GetByName(ctx context.Context, name string) (*domain.ReportStatus, error) {
	var status domain.ReportStatus
	err := r.db.WithContext(ctx).First(&status, "name = ?", name).Error
	return notFoundAsNil(&status, err)
}

func (r *reportStatusRepository) GetByNameOrDisplayName(ctx context.Context, name, displayName string) (*domain.ReportStatus, error) {
	var status domain.ReportStatus
	err := r.db.WithContext(ctx).
		First(&status, "name = ? OR display_name = ?", name, displayName).Error
	return notFoundAsNil(&status, err)
}

func (r *reportStatusRepository) List(ctx context.Context) ([]*domain.ReportStatus, error) {
	var statuses []*domain.ReportStatus
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}
