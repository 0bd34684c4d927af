package domain

import (
	"time"

	"github.com/google/uuid"
)

type WorkstationType string

const (
	WorkstationMobile WorkstationType = "Mobile"
	WorkstationFixed  WorkstationType = "Fixed"
)

var WorkstationTypes = []WorkstationType{WorkstationMobile, WorkstationFixed}

func ValidWorkstationType(t string) bool {
	for _, wt := range WorkstationTypes {
		if string(wt) == t {
			return true
		}
	}
	return false
}

type Workstation struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string          `json:"name" gorm:"uniqueIndex;not null"`
	DisplayName string          `json:"displayName" gorm:"not null"`
	Type        WorkstationType `json:"type" gorm:"not null"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
