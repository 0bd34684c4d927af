package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"` // machine key, e.g. "Admin"
	DisplayName string    `json:"displayName" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

const (
	RoleWorker       = "Worker"
	RoleAdmin        = "Admin"
	RoleTeamLeader   = "TeamLeader"
	RoleDepotManager = "DepotManager"
)

// StaffRoles is every role except Worker.
var StaffRoles = []string{RoleAdmin, RoleTeamLeader, RoleDepotManager}

func IsStaffRole(name string) bool {
	for _, r := range StaffRoles {
		if r == name {
			return true
		}
	}
	return false
}
