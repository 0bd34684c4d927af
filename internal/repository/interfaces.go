package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/remi/logiprod-report/internal/domain"
)

// Read methods return (nil, nil) when no row matches: the callers treat a
// missing row as an authorization/not-found signal, never as a failure.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByPersonalID(ctx context.Context, personalID string) (*domain.User, error)
	// GetByIdentifier matches either username or personalId.
	GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	// GetByFieldAndRole matches user[field] == value AND user.role.name == role.
	// Only the "id" and "personal_id" fields are queried by callers.
	GetByFieldAndRole(ctx context.Context, field, value, role string) (*domain.User, error)
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	GetByNameOrDisplayName(ctx context.Context, name, displayName string) (*domain.Role, error)
	List(ctx context.Context) ([]*domain.Role, error)
}

type WorkstationRepository interface {
	Create(ctx context.Context, ws *domain.Workstation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Workstation, error)
	GetByNameOrDisplayName(ctx context.Context, name, displayName string) (*domain.Workstation, error)
	List(ctx context.Context) ([]*domain.Workstation, error)
}

type ReportStatusRepository interface {
	Create(ctx context.Context, status *domain.ReportStatus) error
	GetByName(ctx context.Context, name string) (*domain.ReportStatus, error)
	GetByNameOrDisplayName(ctx context.Context, name, displayName string) (*domain.ReportStatus, error)
	List(ctx context.Context) ([]*domain.ReportStatus, error)
}

// ReportFilter is the relational filter clause assembled from the listing
// query parameters. String fields are contains-matches; the date bounds are
// a half-open [From, To) interval.
type ReportFilter struct {
	Status      string
	Workstation string
	Worker      string
	OwnerID     *uuid.UUID
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	// GetByIDAndWorkstation is the summary-step lookup: the report must
	// belong to the workstation named in the URL.
	GetByIDAndWorkstation(ctx context.Context, id, workstationID uuid.UUID) (*domain.Report, error)
	Update(ctx context.Context, report *domain.Report) error
	// List returns the filtered page ordered by start date descending and
	// the total number of rows matching the filter.
	List(ctx context.Context, filter ReportFilter) ([]*domain.Report, int64, error)
}

type Repositories struct {
	User         UserRepository
	Role         RoleRepository
	Workstation  WorkstationRepository
	ReportStatus ReportStatusRepository
	Report       ReportRepository
}
