package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *reportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	var report domain.Report
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Workstation").
		First(&report, "id = ?", id).Error
	return notFoundAsNil(&report, err)
}

func (r *reportRepository) GetByIDAndWorkstation(ctx context.Context, id, workstationID uuid.UUID) (*domain.Report, error) {
	var report domain.Report
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Workstation").
		First(&report, "id = ? AND workstation_id = ?", id, workstationID).Error
	return notFoundAsNil(&report, err)
}

func (r *reportRepository) Update(ctx context.Context, report *domain.Report) error {
	return r.db.WithContext(ctx).Save(report).Error
}

func (r *reportRepository) List(ctx context.Context, filter repository.ReportFilter) ([]*domain.Report, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Report{}).
		Joins("JOIN workstations ON workstations.id = reports.workstation_id").
		Joins("JOIN users ON users.id = reports.owner_id")

	if filter.Status != "" {
		q = q.Where("reports.status_name ILIKE ?", "%"+filter.Status+"%")
	}
	if filter.Workstation != "" {
		q = q.Where("workstations.name ILIKE ?", "%"+filter.Workstation+"%")
	}
	if filter.Worker != "" {
		q = q.Where("users.username ILIKE ?", "%"+filter.Worker+"%")
	}
	if filter.OwnerID != nil {
		q = q.Where("reports.owner_id = ?", *filter.OwnerID)
	}
	if filter.From != nil {
		q = q.Where("reports.start_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("reports.start_date < ?", *filter.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []*domain.Report
	err := q.
		Preload("Owner").
		Preload("Workstation").
		Order("reports.start_date desc").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}
