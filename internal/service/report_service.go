package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/repository"
)

var ErrInvalidStartDate = errors.New("invalid start date")

type ReportService struct {
	reports  repository.ReportRepository
	statuses repository.ReportStatusRepository
}

func NewReportService(reports repository.ReportRepository, statuses repository.ReportStatusRepository) *ReportService {
	return &ReportService{reports: reports, statuses: statuses}
}

// ParseStartDate combines the date and hour form fields into the report
// start time, interpreted in the site's local timezone.
func ParseStartDate(dateOfDay, hourOfDay string) (time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", dateOfDay+" "+hourOfDay, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidStartDate
	}
	return start, nil
}

type ReportInput struct {
	DateOfDay         string
	HourOfDay         string
	ReasonForDowntime string
	StorageLocation   string
	Duration          int
	Details           string
	WorkstationID     uuid.UUID
	WorkerID          uuid.UUID
}

// Create stores a report from the dashboard form. The end date is derived
// from start + duration; it is never accepted from the caller.
func (s *ReportService) Create(ctx context.Context, input ReportInput) (*domain.Report, error) {
	start, err := ParseStartDate(input.DateOfDay, input.HourOfDay)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		ReasonForDowntime: input.ReasonForDowntime,
		StorageLocation:   input.StorageLocation,
		Details:           input.Details,
		OwnerID:           input.WorkerID,
		WorkstationID:     input.WorkstationID,
		StatusName:        domain.DefaultReportStatus,
	}
	report.SetSchedule(start, input.Duration)

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

type UpdateReportInput struct {
	DateOfDay         string
	HourOfDay         string
	ReasonForDowntime string
	StorageLocation   string
	Duration          int
	Details           string
	StatusName        string
}

// Update rewrites the editable fields of an existing report. There is no
// optimistic-concurrency check: the last write wins.
func (s *ReportService) Update(ctx context.Context, id uuid.UUID, input UpdateReportInput) (*domain.Report, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrReportNotFound
	}

	start, err := ParseStartDate(input.DateOfDay, input.HourOfDay)
	if err != nil {
		return nil, err
	}

	report.ReasonForDowntime = input.ReasonForDowntime
	report.StorageLocation = input.StorageLocation
	report.Details = input.Details
	report.SetSchedule(start, input.Duration)

	if input.StatusName != "" && input.StatusName != report.StatusName {
		status, err := s.statuses.GetByName(ctx, input.StatusName)
		if err != nil {
			return nil, err
		}
		if status != nil {
			report.StatusName = status.Name
		}
	}

	if err := s.reports.Update(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	return s.reports.GetByID(ctx, id)
}

// ListTodayByOwner returns one worker's reports for the calendar day of
// now, capped at 50 like the main listing's largest view.
func (s *ReportService) ListTodayByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*domain.Report, error) {
	from, to, _ := DateRangeBounds(RangeToday, now)
	reports, _, err := s.reports.List(ctx, repository.ReportFilter{
		OwnerID: &ownerID,
		From:    &from,
		To:      &to,
		Limit:   50,
	})
	return reports, err
}

// List runs the filtered, paginated reports query.
func (s *ReportService) List(ctx context.Context, input ListReportsInput) (*ReportPage, error) {
	return s.ListAt(ctx, input, time.Now())
}

// ListAt is List with an explicit "now", so named date ranges resolve
// deterministically under test.
func (s *ReportService) ListAt(ctx context.Context, input ListReportsInput, now time.Time) (*ReportPage, error) {
	filter, page, pageSize := input.filter(now)

	reports, total, err := s.reports.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ReportPage{
		Reports:    reports,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages(total, pageSize),
	}, nil
}
