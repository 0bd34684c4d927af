package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportStatus is an open vocabulary for report lifecycle labels
// ("Pending", "Reviewed", "Cancelled", ...). Reports reference a status
// by name rather than by id so the vocabulary can evolve independently.
type ReportStatus struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	DisplayName string    `json:"displayName" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

const DefaultReportStatus = "Pending"

type Report struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	StartDate         time.Time `json:"startDate" gorm:"not null;index"`
	EndDate           time.Time `json:"endDate" gorm:"not null"`
	ReasonForDowntime string    `json:"reasonForDowntime" gorm:"not null"`
	StorageLocation   string    `json:"storageLocation"`
	Duration          int       `json:"duration" gorm:"not null"` // minutes
	Details           string    `json:"details"`
	OwnerID           uuid.UUID `json:"ownerId" gorm:"type:uuid;index;not null"`
	WorkstationID     uuid.UUID `json:"workstationId" gorm:"type:uuid;index;not null"`
	StatusName        string    `json:"statusName" gorm:"not null;default:'Pending'"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`

	// Relations
	Owner       *User        `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Workstation *Workstation `json:"workstation,omitempty" gorm:"foreignKey:WorkstationID"`
}

// SetSchedule is the only mutation path for the StartDate/EndDate/Duration
// triple: EndDate is always StartDate plus the duration in minutes and is
// never settable independently.
func (r *Report) SetSchedule(start time.Time, durationMinutes int) {
	r.StartDate = start
	r.Duration = durationMinutes
	r.EndDate = start.Add(time.Duration(durationMinutes) * time.Minute)
}
