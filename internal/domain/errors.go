package domain

import "errors"

var (
	ErrUserExists        = errors.New("a user with that username or personal ID already exists")
	ErrRoleExists        = errors.New("a role with that name or display name already exists")
	ErrWorkstationExists = errors.New("a workstation with that name or display name already exists")
	ErrStatusExists      = errors.New("a status with that name or display name already exists")

	ErrInvalidWorkstationType = errors.New("invalid workstation type")

	ErrReportNotFound      = errors.New("report not found")
	ErrWorkstationNotFound = errors.New("workstation not found")
	ErrRoleNotFound        = errors.New("role not found")
)
