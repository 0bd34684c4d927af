package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/remi/logiprod-report/internal/api/forms"
	"github.com/remi/logiprod-report/internal/api/middleware"
	"github.com/remi/logiprod-report/internal/api/render"
	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/service"
)

// ReportsHandler serves the staff dashboard and the report listing, create
// and edit pages.
type ReportsHandler struct {
	reportService *service.ReportService
	userService   *service.UserService
	catalog       *service.CatalogService
	render        *render.Renderer
}

func NewReportsHandler(reportService *service.ReportService, userService *service.UserService, catalog *service.CatalogService, render *render.Renderer) *ReportsHandler {
	return &ReportsHandler{reportService: reportService, userService: userService, catalog: catalog, render: render}
}

func (h *ReportsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	h.render.HTML(w, http.StatusOK, "dashboard", navData(user))
}

// Index is the filtered, paginated, day-grouped report listing. Submitting
// the filter form with every field empty bounces back to the bare URL so
// the unfiltered listing has a single canonical address.
func (h *ReportsHandler) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := service.ListReportsInput{
		Status:      q.Get("status"),
		Workstation: q.Get("workstation"),
		Worker:      q.Get("worker"),
		DateRange:   q.Get("range"),
	}
	input.Page, _ = strconv.Atoi(q.Get("page"))
	input.PageSize, _ = strconv.Atoi(q.Get("size"))

	if r.URL.RawQuery != "" && input.IsEmpty() && q.Get("page") == "" && q.Get("size") == "" {
		http.Redirect(w, r, r.URL.Path, http.StatusSeeOther)
		return
	}

	page, err := h.reportService.List(r.Context(), input)
	if err != nil {
		internalError(w, "handlers.Reports", err)
		return
	}

	days := service.SortReportsByDay(service.GroupReportsByDay(page.Reports))

	user, _ := middleware.GetUser(r.Context())
	data := navData(user)
	data["Filter"] = input
	data["Page"] = page
	data["Days"] = days
	data["Ranges"] = service.DateRanges
	data["PageSizes"] = service.PageSizes
	if page.Page > 1 {
		data["PrevURL"] = listingURL(r.URL.Path, q, page.Page-1)
	}
	if page.Page < page.TotalPages {
		data["NextURL"] = listingURL(r.URL.Path, q, page.Page+1)
	}
	h.render.HTML(w, http.StatusOK, "reports_index", data)
}

// listingURL rebuilds the listing query string with a different page number,
// keeping only parameters that carry a value.
func listingURL(path string, q url.Values, page int) string {
	vals := url.Values{}
	for _, key := range []string{"status", "workstation", "worker", "range", "size"} {
		if v := q.Get(key); v != "" {
			vals.Set(key, v)
		}
	}
	vals.Set("page", strconv.Itoa(page))
	return path + "?" + vals.Encode()
}

func (h *ReportsHandler) NewPage(w http.ResponseWriter, r *http.Request) {
	h.renderNewForm(w, r, &forms.ReportForm{Duration: 3}, nil)
}

func (h *ReportsHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, errs := forms.ParseReport(r)
	if errs.Any() {
		h.renderNewForm(w, r, form, errs)
		return
	}

	workerID, errWorker := uuid.Parse(form.WorkerID)
	workstationID, errWorkstation := uuid.Parse(form.WorkstationID)
	if errWorker != nil || errWorkstation != nil {
		errs.AddForm("Invalid form fields.")
		h.renderNewForm(w, r, form, errs)
		return
	}

	_, err := h.reportService.Create(r.Context(), service.ReportInput{
		DateOfDay:         form.DateOfDay,
		HourOfDay:         form.HourOfDay,
		ReasonForDowntime: form.ReasonForDowntime,
		StorageLocation:   form.StorageLocation,
		Duration:          form.Duration,
		Details:           form.Details,
		WorkstationID:     workstationID,
		WorkerID:          workerID,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidStartDate) {
			errs.AddForm("Invalid form fields.")
			h.renderNewForm(w, r, form, errs)
			return
		}
		internalError(w, "handlers.Reports", err)
		return
	}

	http.Redirect(w, r, "/dashboard/reports", http.StatusSeeOther)
}

func (h *ReportsHandler) renderNewForm(w http.ResponseWriter, r *http.Request, form *forms.ReportForm, errs *forms.Errors) {
	workers, err := h.userService.ListWorkers(r.Context())
	if err != nil {
		internalError(w, "handlers.Reports", err)
		return
	}
	workstations, err := h.catalog.ListWorkstations(r.Context())
	if err != nil {
		internalError(w, "handlers.Reports", err)
		return
	}

	user, _ := middleware.GetUser(r.Context())
	data := navData(user)
	data["Editing"] = false
	data["Form"] = form
	data["Workers"] = workers
	data["Workstations"] = workstations
	data["Errors"] = errs
	h.render.HTML(w, formStatus(errs), "report_form", data)
}

// EditPage loads an existing report into the form. A missing or malformed
// report id is a plain 404.
func (h *ReportsHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	report, ok := h.loadReport(w, r)
	if !ok {
		return
	}

	form := &forms.ReportForm{
		DateOfDay:         report.StartDate.Format("2006-01-02"),
		HourOfDay:         report.StartDate.Format("15:04"),
		ReasonForDowntime: report.ReasonForDowntime,
		StorageLocation:   report.StorageLocation,
		Duration:          report.Duration,
		Details:           report.Details,
		WorkstationID:     report.WorkstationID.String(),
		WorkerID:          report.OwnerID.String(),
	}
	referer := safeLocalRedirect(r.Referer(), "/dashboard/reports")
	if u, err := url.Parse(r.Referer()); err == nil && u.Path != "" {
		referer = safeLocalRedirect(u.RequestURI(), "/dashboard/reports")
	}
	h.renderEditForm(w, r, form, report.StatusName, referer, nil)
}

func (h *ReportsHandler) Update(w http.ResponseWriter, r *http.Request) {
	report, ok := h.loadReport(w, r)
	if !ok {
		return
	}

	form, errs := forms.ParseReport(r)
	statusName := r.PostFormValue("statusName")
	referer := safeLocalRedirect(r.PostFormValue("_referer"), "/dashboard/reports")
	if errs.Any() {
		h.renderEditForm(w, r, form, statusName, referer, errs)
		return
	}

	_, err := h.reportService.Update(r.Context(), report.ID, service.UpdateReportInput{
		DateOfDay:         form.DateOfDay,
		HourOfDay:         form.HourOfDay,
		ReasonForDowntime: form.ReasonForDowntime,
		StorageLocation:   form.StorageLocation,
		Duration:          form.Duration,
		Details:           form.Details,
		StatusName:        statusName,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReportNotFound):
			http.NotFound(w, r)
		case errors.Is(err, service.ErrInvalidStartDate):
			errs.AddForm("Invalid form fields.")
			h.renderEditForm(w, r, form, statusName, referer, errs)
		default:
			internalError(w, "handlers.Reports", err)
		}
		return
	}

	http.Redirect(w, r, referer, http.StatusSeeOther)
}

func (h *ReportsHandler) loadReport(w http.ResponseWriter, r *http.Request) (*domain.Report, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "reportId"))
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}
	report, err := h.reportService.Get(r.Context(), id)
	if err != nil {
		internalError(w, "handlers.Reports", err)
		return nil, false
	}
	if report == nil {
		http.NotFound(w, r)
		return nil, false
	}
	return report, true
}

func (h *ReportsHandler) renderEditForm(w http.ResponseWriter, r *http.Request, form *forms.ReportForm, statusName, referer string, errs *forms.Errors) {
	statuses, err := h.catalog.ListStatuses(r.Context())
	if err != nil {
		internalError(w, "handlers.Reports", err)
		return
	}

	user, _ := middleware.GetUser(r.Context())
	data := navData(user)
	data["Editing"] = true
	data["Form"] = form
	data["StatusName"] = statusName
	data["Statuses"] = statuses
	data["Referer"] = referer
	data["Errors"] = errs
	h.render.HTML(w, formStatus(errs), "report_form", data)
}
