package domain

import (
	"time"

	"github.com/google/uuid"
)

// PersonalIDLength is the fixed length of the human-facing worker identifier.
const PersonalIDLength = 8

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PersonalID   string    `json:"personalId" gorm:"column:personal_id;uniqueIndex;size:8;not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	FirstName    string    `json:"firstName" gorm:"not null"`
	LastName     string    `json:"lastName" gorm:"not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	RoleID       uuid.UUID `json:"roleId" gorm:"type:uuid;not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Relations
	Role *Role `json:"role,omitempty" gorm:"foreignKey:RoleID"`
}

// RoleName returns the name of the user's role, or "" when the relation
// was not preloaded.
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) IsStaff() bool {
	return IsStaffRole(u.RoleName())
}
