package postgres

import (
	"errors"

	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.Role{},
		&domain.User{},
		&domain.Workstation{},
		&domain.ReportStatus{},
		&domain.Report{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:         NewUserRepository(db),
		Role:         NewRoleRepository(db),
		Workstation:  NewWorkstationRepository(db),
		ReportStatus: NewReportStatusRepository(db),
		Report:       NewReportRepository(db),
	}
}

// notFoundAsNil converts gorm's not-found error into a nil row so read
// paths never surface a missing record as a failure.
func notFoundAsNil[T any](row *T, err error) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}
