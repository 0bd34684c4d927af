package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/remi/logiprod-report/internal/api/forms"
	"github.com/remi/logiprod-report/internal/api/middleware"
	"github.com/remi/logiprod-report/internal/api/render"
	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/service"
)

// UsersHandler serves the staff user-management pages: the worker and user
// listings and the creation forms.
type UsersHandler struct {
	userService   *service.UserService
	reportService *service.ReportService
	catalog       *service.CatalogService
	render        *render.Renderer
}

func NewUsersHandler(userService *service.UserService, reportService *service.ReportService, catalog *service.CatalogService, render *render.Renderer) *UsersHandler {
	return &UsersHandler{userService: userService, reportService: reportService, catalog: catalog, render: render}
}

func (h *UsersHandler) WorkersIndex(w http.ResponseWriter, r *http.Request) {
	workers, err := h.userService.ListWorkers(r.Context())
	if err != nil {
		internalError(w, "handlers.Users", err)
		return
	}

	user, _ := middleware.GetUser(r.Context())
	data := navData(user)
	data["Workers"] = workers
	h.render.HTML(w, http.StatusOK, "workers_index", data)
}

// WorkerReports shows one worker's reports for the current day.
func (h *UsersHandler) WorkerReports(w http.ResponseWriter, r *http.Request) {
	workerID, err := uuid.Parse(chi.URLParam(r, "workerId"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	owner, err := h.userService.GetByID(r.Context(), workerID)
	if err != nil {
		internalError(w, "handlers.Users", err)
		return
	}
	if owner == nil {
		http.NotFound(w, r)
		return
	}

	reports, err := h.reportService.ListTodayByOwner(r.Context(), owner.ID, time.Now())
	if err != nil {
		internalError(w, "handlers.Users", err)
		return
	}
	days := service.SortReportsByDay(service.GroupReportsByDay(reports))

	user, _ := middleware.GetUser(r.Context())
	data := navData(user)
	data["Owner"] = owner
	data["Days"] = days
	h.render.HTML(w, http.StatusOK, "worker_reports", data)
}

// NewWorkerPage renders the worker creation form. The role is fixed to
// Worker and carried as a hidden field.
func (h *UsersHandler) NewWorkerPage(w http.ResponseWriter, r *http.Request) {
	h.renderUserForm(w, r, true, &forms.CreateUserForm{}, nil)
}

func (h *UsersHandler) CreateWorker(w http.ResponseWriter, r *http.Request) {
	h.createUser(w, r, true, "/dashboard/workers")
}

func (h *UsersHandler) UsersIndex(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		internalError(w, "handlers.Users", err)
		return
	}

	user, _ := middleware.GetUser(r.Context())
	data := navData(user)
	data["Users"] = users
	h.render.HTML(w, http.StatusOK, "users_index", data)
}

func (h *UsersHandler) NewUserPage(w http.ResponseWriter, r *http.Request) {
	h.renderUserForm(w, r, false, &forms.CreateUserForm{}, nil)
}

func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	h.createUser(w, r, false, "/dashboard")
}

func (h *UsersHandler) createUser(w http.ResponseWriter, r *http.Request, workerOnly bool, redirectTo string) {
	form, errs := forms.ParseCreateUser(r)
	if errs.Any() {
		h.renderUserForm(w, r, workerOnly, form, errs)
		return
	}

	_, err := h.userService.Create(r.Context(), service.CreateUserInput{
		FirstName:  form.FirstName,
		LastName:   form.LastName,
		PersonalID: form.PersonalID,
		Username:   form.Username,
		Password:   form.Password,
		RoleID:     form.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			errs.AddForm("A user with that username or personal ID already exists")
			h.renderUserForm(w, r, workerOnly, form, errs)
		case errors.Is(err, domain.ErrRoleNotFound):
			errs.AddField("role", "Invalid value.")
			h.renderUserForm(w, r, workerOnly, form, errs)
		default:
			internalError(w, "handlers.Users", err)
		}
		return
	}

	http.Redirect(w, r, redirectTo, http.StatusSeeOther)
}

func (h *UsersHandler) renderUserForm(w http.ResponseWriter, r *http.Request, workerOnly bool, form *forms.CreateUserForm, errs *forms.Errors) {
	user, _ := middleware.GetUser(r.Context())
	data := navData(user)
	data["WorkerOnly"] = workerOnly
	data["Form"] = form
	data["Errors"] = errs

	if workerOnly {
		role, err := h.catalog.GetRoleByName(r.Context(), domain.RoleWorker)
		if err != nil {
			internalError(w, "handlers.Users", err)
			return
		}
		if role != nil {
			data["WorkerRoleID"] = role.ID.String()
		}
	} else {
		roles, err := h.catalog.ListRoles(r.Context())
		if err != nil {
			internalError(w, "handlers.Users", err)
			return
		}
		data["Roles"] = roles
	}

	h.render.HTML(w, formStatus(errs), "user_form", data)
}
