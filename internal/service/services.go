package service

import (
	"github.com/remi/logiprod-report/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Wizard  *WizardService
	Report  *ReportService
	User    *UserService
	Catalog *CatalogService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User),
		Wizard:  NewWizardService(repos.User, repos.Workstation, repos.Report),
		Report:  NewReportService(repos.Report, repos.ReportStatus),
		User:    NewUserService(repos.User, repos.Role),
		Catalog: NewCatalogService(repos.Role, repos.Workstation, repos.ReportStatus),
	}
}
