// Command seed loads the reference data a fresh installation needs: the
// four roles, the report statuses, a couple of workstations and an initial
// admin account. Safe to run repeatedly; existing rows are left alone.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/remi/logiprod-report/internal/config"
	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/repository/postgres"
	"github.com/remi/logiprod-report/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	repos := postgres.NewRepositories(db)
	services := service.NewServices(repos)

	ctx := context.Background()

	roles := []service.CreateRoleInput{
		{Name: domain.RoleAdmin, DisplayName: "Admin", Description: "Full access, including reference data"},
		{Name: domain.RoleTeamLeader, DisplayName: "Team Leader", Description: "Reviews downtime reports"},
		{Name: domain.RoleDepotManager, DisplayName: "Depot Manager", Description: "Reviews downtime reports"},
		{Name: domain.RoleWorker, DisplayName: "Worker", Description: "Files downtime reports"},
	}
	for _, input := range roles {
		if _, err := services.Catalog.CreateRole(ctx, input); err != nil && err != domain.ErrRoleExists {
			log.Fatalf("failed to seed role %s: %v", input.Name, err)
		}
	}

	statuses := []service.CreateStatusInput{
		{Name: "Pending", DisplayName: "Pending", Description: "Awaiting review"},
		{Name: "Reviewed", DisplayName: "Reviewed", Description: "Checked by staff"},
		{Name: "Cancelled", DisplayName: "Cancelled", Description: "Withdrawn or filed in error"},
	}
	for _, input := range statuses {
		if _, err := services.Catalog.CreateStatus(ctx, input); err != nil && err != domain.ErrStatusExists {
			log.Fatalf("failed to seed status %s: %v", input.Name, err)
		}
	}

	workstations := []service.CreateWorkstationInput{
		{Name: "forklift-01", DisplayName: "Forklift 01", Type: "Mobile", Description: "Depot forklift"},
		{Name: "packing-line-a", DisplayName: "Packing Line A", Type: "Fixed", Description: "Main packing line"},
	}
	for _, input := range workstations {
		if _, err := services.Catalog.CreateWorkstation(ctx, input); err != nil && err != domain.ErrWorkstationExists {
			log.Fatalf("failed to seed workstation %s: %v", input.Name, err)
		}
	}

	adminRole, err := services.Catalog.GetRoleByName(ctx, domain.RoleAdmin)
	if err != nil || adminRole == nil {
		log.Fatalf("failed to load admin role: %v", err)
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("SEED_ADMIN_PASSWORD environment variable is required")
	}
	_, err = services.User.Create(ctx, service.CreateUserInput{
		FirstName:  "Site",
		LastName:   "Admin",
		PersonalID: "A0000001",
		Username:   "admin",
		Password:   password,
		RoleID:     adminRole.ID.String(),
	})
	if err != nil && err != domain.ErrUserExists {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	log.Println("Seed complete")
}
