package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/repository"
)

// Wizard intents, in strict linear order. The current intent lives in the
// session; every step re-checks it before doing anything else.
const (
	IntentStepOne   = "step-one"
	IntentStepTwo   = "step-two"
	IntentStepThree = "step-three"
	IntentStepFour  = "step-four"
)

// SummaryTokenTTL is the freshness window for the step-four summary token.
// Older tokens are rejected so the summary link cannot be bookmarked or
// replayed.
const SummaryTokenTTL = 30 * time.Second

var (
	ErrUnknownWorker      = errors.New("no worker with that personal ID")
	ErrUnknownWorkstation = errors.New("no workstation with that id")
	ErrStaleSummaryToken  = errors.New("summary token expired")
	ErrBadSummaryToken    = errors.New("malformed summary token")
)

type WizardService struct {
	users        repository.UserRepository
	workstations repository.WorkstationRepository
	reports      repository.ReportRepository
}

func NewWizardService(users repository.UserRepository, workstations repository.WorkstationRepository, reports repository.ReportRepository) *WizardService {
	return &WizardService{users: users, workstations: workstations, reports: reports}
}

// ResolveWorker returns the Worker-role user with the given personalId, or
// nil when there is none (including when the personalId belongs to staff).
func (s *WizardService) ResolveWorker(ctx context.Context, personalID string) (*domain.User, error) {
	if personalID == "" {
		return nil, nil
	}
	return s.users.GetByFieldAndRole(ctx, "personal_id", personalID, domain.RoleWorker)
}

// GetWorkstation looks a workstation up by its id in string form. A value
// that is not a UUID resolves to nil rather than an error, matching the
// not-found contract of the store.
func (s *WizardService) GetWorkstation(ctx context.Context, id string) (*domain.Workstation, error) {
	wsID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return s.workstations.GetByID(ctx, wsID)
}

func (s *WizardService) ListWorkstations(ctx context.Context) ([]*domain.Workstation, error) {
	return s.workstations.List(ctx)
}

type WizardReportInput struct {
	DateOfDay         string
	HourOfDay         string
	ReasonForDowntime string
	StorageLocation   string
	Duration          int
	Details           string
	WorkstationID     string
	WorkerID          string
}

// CreateReport validates the hidden worker/workstation ids again, computes
// the end date from start + duration and stores the report. It returns the
// fresh summary token for the step-four URL.
func (s *WizardService) CreateReport(ctx context.Context, sessionPersonalID string, input WizardReportInput) (*domain.Report, string, error) {
	worker, err := s.ResolveWorker(ctx, sessionPersonalID)
	if err != nil {
		return nil, "", err
	}
	if worker == nil || worker.ID.String() != input.WorkerID {
		return nil, "", ErrUnknownWorker
	}

	workstation, err := s.GetWorkstation(ctx, input.WorkstationID)
	if err != nil {
		return nil, "", err
	}
	if workstation == nil {
		return nil, "", ErrUnknownWorkstation
	}

	start, err := ParseStartDate(input.DateOfDay, input.HourOfDay)
	if err != nil {
		return nil, "", err
	}

	report := &domain.Report{
		ReasonForDowntime: input.ReasonForDowntime,
		StorageLocation:   input.StorageLocation,
		Details:           input.Details,
		OwnerID:           worker.ID,
		WorkstationID:     workstation.ID,
		StatusName:        domain.DefaultReportStatus,
	}
	report.SetSchedule(start, input.Duration)

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, "", err
	}

	return report, NewSummaryToken(report.ID, time.Now()), nil
}

// LoadSummary resolves a summary token to its report. Tokens older than the
// freshness window are rejected even when everything else checks out.
func (s *WizardService) LoadSummary(ctx context.Context, token, workstationID string, now time.Time) (*domain.Report, error) {
	issuedAt, reportID, err := ParseSummaryToken(token)
	if err != nil {
		return nil, err
	}
	if now.Unix()-issuedAt >= int64(SummaryTokenTTL/time.Second) {
		return nil, ErrStaleSummaryToken
	}

	wsID, err := uuid.Parse(workstationID)
	if err != nil {
		return nil, domain.ErrReportNotFound
	}

	report, err := s.reports.GetByIDAndWorkstation(ctx, reportID, wsID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrReportNotFound
	}
	return report, nil
}

// NewSummaryToken packs a Unix timestamp and a report id into the single
// opaque path segment used by the step-four URL.
func NewSummaryToken(reportID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("%d-%s", now.Unix(), reportID)
}

func ParseSummaryToken(token string) (int64, uuid.UUID, error) {
	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return 0, uuid.Nil, ErrBadSummaryToken
	}
	issuedAt, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, uuid.Nil, ErrBadSummaryToken
	}
	reportID, err := uuid.Parse(parts[1])
	if err != nil {
		return 0, uuid.Nil, ErrBadSummaryToken
	}
	return issuedAt, reportID, nil
}
