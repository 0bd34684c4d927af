package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/remi/logiprod-report/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RoleBuilder creates test roles with a builder pattern
type RoleBuilder struct {
	name        string
	displayName string
}

// NewRoleBuilder creates a new RoleBuilder defaulting to the Worker role
func NewRoleBuilder() *RoleBuilder {
	return &RoleBuilder{
		name:        domain.RoleWorker,
		displayName: "Worker",
	}
}

// WithName sets the role's machine name and display name together
func (b *RoleBuilder) WithName(name string) *RoleBuilder {
	b.name = name
	b.displayName = name
	return b
}

// Build creates the role in the database, reusing an existing row with the
// same name so multiple builders can share one role
func (b *RoleBuilder) Build(t *testing.T, db *gorm.DB) *domain.Role {
	t.Helper()

	var existing domain.Role
	if err := db.First(&existing, "name = ?", b.name).Error; err == nil {
		return &existing
	}

	role := &domain.Role{
		ID:          uuid.New(),
		Name:        b.name,
		DisplayName: b.displayName,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := db.Create(role).Error; err != nil {
		t.Fatalf("failed to create role: %v", err)
	}
	return role
}

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	firstName  string
	lastName   string
	personalID string
	username   string
	password   string
	roleName   string
}

// NewUserBuilder creates a new UserBuilder with default values. The
// personal ID is random but always exactly 8 characters.
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:6]
	return &UserBuilder{
		firstName:  "Test",
		lastName:   "Worker",
		personalID: fmt.Sprintf("I1%s", suffix),
		username:   fmt.Sprintf("user_%s", suffix),
		password:   "testpassword123",
		roleName:   domain.RoleWorker,
	}
}

// WithPersonalID sets the personal ID
func (b *UserBuilder) WithPersonalID(personalID string) *UserBuilder {
	b.personalID = personalID
	return b
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithRole sets the role name
func (b *UserBuilder) WithRole(roleName string) *UserBuilder {
	b.roleName = roleName
	return b
}

// Build creates the user (and its role when missing) in the database and
// returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	role := NewRoleBuilder().WithName(b.roleName).Build(t, db)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		FirstName:    b.firstName,
		LastName:     b.lastName,
		PersonalID:   b.personalID,
		Username:     b.username,
		PasswordHash: string(hashedPassword),
		RoleID:       role.ID,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// WorkstationBuilder creates test workstations with a builder pattern
type WorkstationBuilder struct {
	name        string
	displayName string
	wsType      domain.WorkstationType
}

// NewWorkstationBuilder creates a new WorkstationBuilder with default values
func NewWorkstationBuilder() *WorkstationBuilder {
	suffix := uuid.New().String()[:8]
	return &WorkstationBuilder{
		name:        fmt.Sprintf("station-%s", suffix),
		displayName: fmt.Sprintf("Station %s", suffix),
		wsType:      domain.WorkstationFixed,
	}
}

// WithName sets the workstation's machine name
func (b *WorkstationBuilder) WithName(name string) *WorkstationBuilder {
	b.name = name
	return b
}

// WithType sets the workstation type
func (b *WorkstationBuilder) WithType(wsType domain.WorkstationType) *WorkstationBuilder {
	b.wsType = wsType
	return b
}

// Build creates the workstation in the database
func (b *WorkstationBuilder) Build(t *testing.T, db *gorm.DB) *domain.Workstation {
	t.Helper()

	ws := &domain.Workstation{
		ID:          uuid.New(),
		Name:        b.name,
		DisplayName: b.displayName,
		Type:        b.wsType,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := db.Create(ws).Error; err != nil {
		t.Fatalf("failed to create workstation: %v", err)
	}
	return ws
}

// StatusBuilder creates report statuses with a builder pattern
type StatusBuilder struct {
	name        string
	displayName string
}

// NewStatusBuilder creates a new StatusBuilder defaulting to Pending
func NewStatusBuilder() *StatusBuilder {
	return &StatusBuilder{
		name:        domain.DefaultReportStatus,
		displayName: domain.DefaultReportStatus,
	}
}

// WithName sets the status name and display name together
func (b *StatusBuilder) WithName(name string) *StatusBuilder {
	b.name = name
	b.displayName = name
	return b
}

// Build creates the status in the database, reusing an existing row with
// the same name
func (b *StatusBuilder) Build(t *testing.T, db *gorm.DB) *domain.ReportStatus {
	t.Helper()

	var existing domain.ReportStatus
	if err := db.First(&existing, "name = ?", b.name).Error; err == nil {
		return &existing
	}

	status := &domain.ReportStatus{
		ID:          uuid.New(),
		Name:        b.name,
		DisplayName: b.displayName,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := db.Create(status).Error; err != nil {
		t.Fatalf("failed to create status: %v", err)
	}
	return status
}

// ReportBuilder creates test reports with a builder pattern
type ReportBuilder struct {
	startDate time.Time
	duration  int
	reason    string
	status    string
	owner     *domain.User
	station   *domain.Workstation
}

// NewReportBuilder creates a new ReportBuilder with default values. Owner
// and workstation are created on Build when not supplied.
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{
		startDate: time.Now().Truncate(time.Minute),
		duration:  5,
		reason:    "Conveyor jam",
		status:    domain.DefaultReportStatus,
	}
}

// WithStartDate sets the report's start date
func (b *ReportBuilder) WithStartDate(start time.Time) *ReportBuilder {
	b.startDate = start
	return b
}

// WithDuration sets the duration in minutes
func (b *ReportBuilder) WithDuration(minutes int) *ReportBuilder {
	b.duration = minutes
	return b
}

// WithReason sets the downtime reason
func (b *ReportBuilder) WithReason(reason string) *ReportBuilder {
	b.reason = reason
	return b
}

// WithStatus sets the status name
func (b *ReportBuilder) WithStatus(status string) *ReportBuilder {
	b.status = status
	return b
}

// WithOwner sets the owning worker
func (b *ReportBuilder) WithOwner(owner *domain.User) *ReportBuilder {
	b.owner = owner
	return b
}

// WithWorkstation sets the workstation
func (b *ReportBuilder) WithWorkstation(ws *domain.Workstation) *ReportBuilder {
	b.station = ws
	return b
}

// Build creates the report and any missing dependencies in the database
func (b *ReportBuilder) Build(t *testing.T, db *gorm.DB) *domain.Report {
	t.Helper()

	if b.owner == nil {
		b.owner, _ = NewUserBuilder().Build(t, db)
	}
	if b.station == nil {
		b.station = NewWorkstationBuilder().Build(t, db)
	}
	NewStatusBuilder().WithName(b.status).Build(t, db)

	report := &domain.Report{
		ID:                uuid.New(),
		ReasonForDowntime: b.reason,
		OwnerID:           b.owner.ID,
		WorkstationID:     b.station.ID,
		StatusName:        b.status,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	report.SetSchedule(b.startDate, b.duration)

	if err := db.Create(report).Error; err != nil {
		t.Fatalf("failed to create report: %v", err)
	}
	return report
}
