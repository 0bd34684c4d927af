package handlers

import (
	"errors"
	"net/http"

	"github.com/remi/logiprod-report/internal/api/forms"
	"github.com/remi/logiprod-report/internal/api/middleware"
	"github.com/remi/logiprod-report/internal/api/render"
	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/service"
)

// CatalogHandler serves the reference-data pages: roles, workstations and
// report statuses.
type CatalogHandler struct {
	catalog *service.CatalogService
	render  *render.Renderer
}

func NewCatalogHandler(catalog *service.CatalogService, render *render.Renderer) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, render: render}
}

func (h *CatalogHandler) RolesIndex(w http.ResponseWriter, r *http.Request) {
	roles, err := h.catalog.ListRoles(r.Context())
	if err != nil {
		internalError(w, "handlers.Catalog", err)
		return
	}

	user, _ := middleware.GetUser(r.Context())
	data := navData(user)
	data["Roles"] = roles
	h.render.HTML(w, http.StatusOK, "roles_index", data)
}

func (h *CatalogHandler) NewRolePage(w http.ResponseWriter, r *http.Request) {
	h.renderRoleForm(w, r, &forms.RoleForm{}, nil)
}

func (h *CatalogHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	form, errs := forms.ParseRole(r)
	if errs.Any() {
		h.renderRoleForm(w, r, form, errs)
		return
	}

	_, err := h.catalog.CreateRole(r.Context(), service.CreateRoleInput{
		Name:        form.Name,
		DisplayName: form.DisplayName,
		Description: form.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRoleExists) {
			errs.AddForm("A role with that name or display name already exists")
			h.renderRoleForm(w, r, form, errs)
			return
		}
		internalError(w, "handlers.Catalog", err)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *CatalogHandler) renderRoleForm(w http.ResponseWriter, r *http.Request, form *forms.RoleForm, errs *forms.Errors) {
	user, _ := middleware.GetUser(r.Context())
	data := navData(user)
	data["Form"] = form
	data["Errors"] = errs
	h.render.HTML(w, formStatus(errs), "role_form", data)
}

func (h *CatalogHandler) WorkstationsIndex(w http.ResponseWriter, r *http.Request) {
	workstations, err := h.catalog.ListWorkstations(r.Context())
	if err != nil {
		internalError(w, "handlers.Catalog", err)
		return
	}

	user, _ := middleware.GetUser(r.Context())
	data := navData(user)
	data["Workstations"] = workstations
	h.render.HTML(w, http.StatusOK, "workstations_index", data)
}

func (h *CatalogHandler) NewWorkstationPage(w http.ResponseWriter, r *http.Request) {
	h.renderWorkstationForm(w, r, &forms.WorkstationForm{}, nil)
}

func (h *CatalogHandler) CreateWorkstation(w http.ResponseWriter, r *http.Request) {
	form, errs := forms.ParseWorkstation(r)
	if errs.Any() {
		h.renderWorkstationForm(w, r, form, errs)
		return
	}

	_, err := h.catalog.CreateWorkstation(r.Context(), service.CreateWorkstationInput{
		Name:        form.Name,
		DisplayName: form.DisplayName,
		Type:        form.Type,
		Description: form.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWorkstationExists):
			errs.AddForm("A workstation with that name or display name already exists")
			h.renderWorkstationForm(w, r, form, errs)
		case errors.Is(err, domain.ErrInvalidWorkstationType):
			errs.AddField("type", "Type must be Mobile or Fixed")
			h.renderWorkstationForm(w, r, form, errs)
		default:
			internalError(w, "handlers.Catalog", err)
		}
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *CatalogHandler) renderWorkstationForm(w http.ResponseWriter, r *http.Request, form *forms.WorkstationForm, errs *forms.Errors) {
	user, _ := middleware.GetUser(r.Context())
	data := navData(user)
	data["Form"] = form
	data["Types"] = domain.WorkstationTypes
	data["Errors"] = errs
	h.render.HTML(w, formStatus(errs), "workstation_form", data)
}

func (h *CatalogHandler) NewStatusPage(w http.ResponseWriter, r *http.Request) {
	h.renderStatusForm(w, r, &forms.StatusForm{}, nil)
}

func (h *CatalogHandler) CreateStatus(w http.ResponseWriter, r *http.Request) {
	form, errs := forms.ParseStatus(r)
	if errs.Any() {
		h.renderStatusForm(w, r, form, errs)
		return
	}

	_, err := h.catalog.CreateStatus(r.Context(), service.CreateStatusInput{
		Name:        form.Name,
		DisplayName: form.DisplayName,
		Description: form.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrStatusExists) {
			errs.AddForm("A status with that name or display name already exists")
			h.renderStatusForm(w, r, form, errs)
			return
		}
		internalError(w, "handlers.Catalog", err)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *CatalogHandler) renderStatusForm(w http.ResponseWriter, r *http.Request, form *forms.StatusForm, errs *forms.Errors) {
	user, _ := middleware.GetUser(r.Context())
	data := navData(user)
	data["Form"] = form
	data["Errors"] = errs
	h.render.HTML(w, formStatus(errs), "status_form", data)
}
