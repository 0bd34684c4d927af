package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/remi/logiprod-report/internal/api/handlers"
	"github.com/remi/logiprod-report/internal/api/middleware"
	"github.com/remi/logiprod-report/internal/api/render"
	"github.com/remi/logiprod-report/internal/service"
	"github.com/remi/logiprod-report/internal/session"
)

func NewRouter(services *service.Services, sessions *session.Store, renderer *render.Renderer) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	pagesHandler := handlers.NewPagesHandler(services.Auth, sessions, renderer)
	authHandler := handlers.NewAuthHandler(services.Auth, sessions, renderer)
	profileHandler := handlers.NewProfileHandler(services.Auth, sessions, renderer)
	wizardHandler := handlers.NewWizardHandler(services.Wizard, services.Auth, sessions, renderer)
	reportsHandler := handlers.NewReportsHandler(services.Report, services.User, services.Catalog, renderer)
	usersHandler := handlers.NewUsersHandler(services.User, services.Report, services.Catalog, renderer)
	catalogHandler := handlers.NewCatalogHandler(services.Catalog, renderer)

	// Public pages
	r.Get("/", pagesHandler.Home)
	r.Get("/about", pagesHandler.About)
	r.Get("/login", authHandler.LoginPage)
	r.Post("/login", authHandler.Login)
	r.Get("/logout", authHandler.LogoutPage)
	r.Post("/logout", authHandler.Logout)
	r.Get("/profile", profileHandler.Profile)

	// Anonymous reporting wizard
	r.Route("/process", func(r chi.Router) {
		r.Get("/start", wizardHandler.StartPage)
		r.Post("/start", wizardHandler.StartSubmit)
		r.Get("/{personalId}", wizardHandler.WorkstationPage)
		r.Post("/{personalId}", wizardHandler.WorkstationSubmit)
		r.Get("/{personalId}/{workstationId}", wizardHandler.DetailsPage)
		r.Post("/{personalId}/{workstationId}", wizardHandler.DetailsSubmit)
		r.Get("/{personalId}/{workstationId}/{summaryToken}", wizardHandler.SummaryPage)
	})

	// Staff dashboard
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(middleware.RequireStaff(services.Auth, sessions))

		r.Get("/", reportsHandler.Dashboard)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", reportsHandler.Index)
			r.Get("/new", reportsHandler.NewPage)
			r.Post("/new", reportsHandler.Create)
			r.Get("/{reportId}", reportsHandler.EditPage)
			r.Post("/{reportId}", reportsHandler.Update)
		})

		r.Route("/workers", func(r chi.Router) {
			r.Get("/", usersHandler.WorkersIndex)
			r.Get("/new", usersHandler.NewWorkerPage)
			r.Post("/new", usersHandler.CreateWorker)
			r.Get("/{workerId}", usersHandler.WorkerReports)
		})

		r.Get("/workstations", catalogHandler.WorkstationsIndex)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", usersHandler.UsersIndex)
			r.Get("/new", usersHandler.NewUserPage)
			r.Post("/new", usersHandler.CreateUser)
		})

		r.Route("/roles", func(r chi.Router) {
			r.Get("/", catalogHandler.RolesIndex)
			r.Get("/new", catalogHandler.NewRolePage)
			r.Post("/new", catalogHandler.CreateRole)
		})

		// Admin-only subtree
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(services.Auth, sessions))

			r.Get("/roles", catalogHandler.RolesIndex)
			r.Get("/workstations/new", catalogHandler.NewWorkstationPage)
			r.Post("/workstations/new", catalogHandler.CreateWorkstation)
			r.Get("/status/new", catalogHandler.NewStatusPage)
			r.Post("/status/new", catalogHandler.CreateStatus)
		})
	})

	return r
}
