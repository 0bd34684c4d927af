package service

import (
	"context"

	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/repository"
)

// CatalogService manages the reference data behind the dashboard: roles,
// workstations and report statuses.
type CatalogService struct {
	roles        repository.RoleRepository
	workstations repository.WorkstationRepository
	statuses     repository.ReportStatusRepository
}

func NewCatalogService(roles repository.RoleRepository, workstations repository.WorkstationRepository, statuses repository.ReportStatusRepository) *CatalogService {
	return &CatalogService{roles: roles, workstations: workstations, statuses: statuses}
}

type CreateRoleInput struct {
	Name        string
	DisplayName string
	Description string
}

func (s *CatalogService) CreateRole(ctx context.Context, input CreateRoleInput) (*domain.Role, error) {
	existing, err := s.roles.GetByNameOrDisplayName(ctx, input.Name, input.DisplayName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrRoleExists
	}

	role := &domain.Role{
		Name:        input.Name,
		DisplayName: input.DisplayName,
		Description: input.Description,
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *CatalogService) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	return s.roles.List(ctx)
}

func (s *CatalogService) GetRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	return s.roles.GetByName(ctx, name)
}

type CreateWorkstationInput struct {
	Name        string
	DisplayName string
	Type        string
	Description string
}

func (s *CatalogService) CreateWorkstation(ctx context.Context, input CreateWorkstationInput) (*domain.Workstation, error) {
	if !domain.ValidWorkstationType(input.Type) {
		return nil, domain.ErrInvalidWorkstationType
	}

	existing, err := s.workstations.GetByNameOrDisplayName(ctx, input.Name, input.DisplayName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrWorkstationExists
	}

	ws := &domain.Workstation{
		Name:        input.Name,
		DisplayName: input.DisplayName,
		Type:        domain.WorkstationType(input.Type),
		Description: input.Description,
	}
	if err := s.workstations.Create(ctx, ws); err != nil {
		return nil, err
	}
	return ws, nil
}

func (s *CatalogService) ListWorkstations(ctx context.Context) ([]*domain.Workstation, error) {
	return s.workstations.List(ctx)
}

type CreateStatusInput struct {
	Name        string
	DisplayName string
	Description string
}

func (s *CatalogService) CreateStatus(ctx context.Context, input CreateStatusInput) (*domain.ReportStatus, error) {
	existing, err := s.statuses.GetByNameOrDisplayName(ctx, input.Name, input.DisplayName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrStatusExists
	}

	status := &domain.ReportStatus{
		Name:        input.Name,
		DisplayName: input.DisplayName,
		Description: input.Description,
	}
	if err := s.statuses.Create(ctx, status); err != nil {
		return nil, err
	}
	return status, nil
}

func (s *CatalogService) ListStatuses(ctx context.Context) ([]*domain.ReportStatus, error) {
	return s.statuses.List(ctx)
}
