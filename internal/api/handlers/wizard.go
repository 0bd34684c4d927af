package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/remi/logiprod-report/internal/api/forms"
	"github.com/remi/logiprod-report/internal/api/render"
	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/service"
	"github.com/remi/logiprod-report/internal/session"
)

// WizardHandler drives the public four-step reporting flow. Each step
// re-derives every upstream guard (intent, worker validity, URL parameter
// consistency) instead of trusting earlier steps; any mismatch destroys the
// session and bounces home with no diagnostic.
type WizardHandler struct {
	wizard      *service.WizardService
	authService *service.AuthService
	sessions    *session.Store
	render      *render.Renderer
}

func NewWizardHandler(wizard *service.WizardService, authService *service.AuthService, sessions *session.Store, render *render.Renderer) *WizardHandler {
	return &WizardHandler{wizard: wizard, authService: authService, sessions: sessions, render: render}
}

// redirectStaff sends authenticated staff to the dashboard. The wizard is
// for anonymous workers only.
func (h *WizardHandler) redirectStaff(w http.ResponseWriter, r *http.Request, sess *session.Session) bool {
	staff, err := h.authService.IsStaffSession(r.Context(), sess)
	if err != nil {
		internalError(w, "handlers.Wizard", err)
		return true
	}
	if staff {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return true
	}
	return false
}

// guard checks the session against the step's expected intent and the URL's
// personalId parameter. On failure the session is destroyed and the browser
// redirected home; the returned worker is only valid when ok is true.
func (h *WizardHandler) guard(w http.ResponseWriter, r *http.Request, sess *session.Session, intent, personalIDParam string) (*domain.User, bool) {
	worker, err := h.wizard.ResolveWorker(r.Context(), sess.PersonalID())
	if err != nil {
		internalError(w, "handlers.Wizard", err)
		return nil, false
	}
	if worker == nil || sess.Intent() != intent || worker.PersonalID != personalIDParam {
		destroySessionTo(w, r, h.sessions, "/")
		return nil, false
	}
	return worker, true
}

// StartPage is the wizard entry. A session that already carries a validated
// worker at step one auto-advances; anything else starts a fresh flow.
func (h *WizardHandler) StartPage(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)
	if h.redirectStaff(w, r, sess) {
		return
	}

	worker, err := h.wizard.ResolveWorker(r.Context(), sess.PersonalID())
	if err != nil {
		internalError(w, "handlers.Wizard", err)
		return
	}
	if worker != nil && sess.Intent() == service.IntentStepOne {
		sess.Set(session.KeyIntent, service.IntentStepTwo)
		sess.Set(session.KeyPersonalID, worker.PersonalID)
		if !commitSession(w, h.sessions, sess, session.WizardTTL) {
			return
		}
		http.Redirect(w, r, "/process/"+worker.PersonalID, http.StatusSeeOther)
		return
	}

	// Restart the flow; whatever the old cookie carried is discarded.
	fresh := session.New()
	fresh.Set(session.KeyIntent, service.IntentStepOne)
	if !commitSession(w, h.sessions, fresh, session.WizardTTL) {
		return
	}
	h.renderStepOne(w, "", nil)
}

func (h *WizardHandler) StartSubmit(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)
	if h.redirectStaff(w, r, sess) {
		return
	}

	form, errs := forms.ParsePersonalID(r)
	if errs.Any() {
		h.renderStepOne(w, form.PersonalID, errs)
		return
	}

	worker, err := h.wizard.ResolveWorker(r.Context(), form.PersonalID)
	if err != nil {
		internalError(w, "handlers.Wizard", err)
		return
	}
	if worker == nil {
		errs.AddField("personalId", "Invalid personalId.")
		h.renderStepOne(w, form.PersonalID, errs)
		return
	}

	sess.Set(session.KeyIntent, service.IntentStepTwo)
	sess.Set(session.KeyPersonalID, worker.PersonalID)
	if !commitSession(w, h.sessions, sess, session.WizardTTL) {
		return
	}
	http.Redirect(w, r, "/process/"+worker.PersonalID, http.StatusSeeOther)
}

func (h *WizardHandler) renderStepOne(w http.ResponseWriter, personalID string, errs *forms.Errors) {
	h.render.HTML(w, formStatus(errs), "wizard_step_one", render.Data{
		"PersonalID": personalID,
		"Errors":     errs,
	})
}

// WorkstationPage is step two: pick the workstation the downtime happened on.
func (h *WizardHandler) WorkstationPage(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)
	if h.redirectStaff(w, r, sess) {
		return
	}
	if _, ok := h.guard(w, r, sess, service.IntentStepTwo, chi.URLParam(r, "personalId")); !ok {
		return
	}
	h.renderStepTwo(w, r, nil)
}

func (h *WizardHandler) WorkstationSubmit(w http.ResponseWriter, r *http.Request) {
	form, errs := forms.ParseWorkstationChoice(r)
	if errs.Any() {
		h.renderStepTwo(w, r, errs)
		return
	}

	workstation, err := h.wizard.GetWorkstation(r.Context(), form.WorkstationID)
	if err != nil {
		internalError(w, "handlers.Wizard", err)
		return
	}
	if workstation == nil {
		errs.AddField("workstationId", "Invalid workstation Id.")
		h.renderStepTwo(w, r, errs)
		return
	}

	sess := h.sessions.Get(r)
	worker, err := h.wizard.ResolveWorker(r.Context(), sess.PersonalID())
	if err != nil {
		internalError(w, "handlers.Wizard", err)
		return
	}
	if worker == nil {
		errs.AddForm("Invalid personalId.")
		h.renderStepTwo(w, r, errs)
		return
	}

	sess.Set(session.KeyIntent, service.IntentStepThree)
	sess.Set(session.KeyPersonalID, worker.PersonalID)
	if !commitSession(w, h.sessions, sess, session.WizardTTL) {
		return
	}
	http.Redirect(w, r, "/process/"+worker.PersonalID+"/"+workstation.ID.String(), http.StatusSeeOther)
}

func (h *WizardHandler) renderStepTwo(w http.ResponseWriter, r *http.Request, errs *forms.Errors) {
	workstations, err := h.wizard.ListWorkstations(r.Context())
	if err != nil {
		internalError(w, "handlers.Wizard", err)
		return
	}
	h.render.HTML(w, formStatus(errs), "wizard_step_two", render.Data{
		"Workstations": workstations,
		"Errors":       errs,
	})
}

// DetailsPage is step three: the report details form, with the resolved
// worker and workstation ids carried as hidden fields.
func (h *WizardHandler) DetailsPage(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)
	if h.redirectStaff(w, r, sess) {
		return
	}
	worker, ok := h.guard(w, r, sess, service.IntentStepThree, chi.URLParam(r, "personalId"))
	if !ok {
		return
	}

	workstation, err := h.wizard.GetWorkstation(r.Context(), chi.URLParam(r, "workstationId"))
	if err != nil {
		internalError(w, "handlers.Wizard", err)
		return
	}
	if workstation == nil {
		destroySessionTo(w, r, h.sessions, "/")
		return
	}

	now := time.Now()
	h.renderStepThree(w, &forms.ReportForm{
		DateOfDay:     now.Format("2006-01-02"),
		HourOfDay:     now.Format("15:04"),
		Duration:      3,
		WorkerID:      worker.ID.String(),
		WorkstationID: workstation.ID.String(),
	}, nil)
}

func (h *WizardHandler) DetailsSubmit(w http.ResponseWriter, r *http.Request) {
	form, errs := forms.ParseReport(r)
	if errs.Any() {
		h.renderStepThree(w, form, errs)
		return
	}

	sess := h.sessions.Get(r)
	report, token, err := h.wizard.CreateReport(r.Context(), sess.PersonalID(), service.WizardReportInput{
		DateOfDay:         form.DateOfDay,
		HourOfDay:         form.HourOfDay,
		ReasonForDowntime: form.ReasonForDowntime,
		StorageLocation:   form.StorageLocation,
		Duration:          form.Duration,
		Details:           form.Details,
		WorkstationID:     form.WorkstationID,
		WorkerID:          form.WorkerID,
	})
	if err != nil {
		if errors.Is(err, service.ErrUnknownWorker) ||
			errors.Is(err, service.ErrUnknownWorkstation) ||
			errors.Is(err, service.ErrInvalidStartDate) {
			errs.AddForm("Invalid form fields.")
			h.renderStepThree(w, form, errs)
			return
		}
		internalError(w, "handlers.Wizard", err)
		return
	}

	sess.Set(session.KeyIntent, service.IntentStepFour)
	if !commitSession(w, h.sessions, sess, session.WizardTTL) {
		return
	}

	next := "/process/" + chi.URLParam(r, "personalId") + "/" + report.WorkstationID.String() + "/" + token
	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (h *WizardHandler) renderStepThree(w http.ResponseWriter, form *forms.ReportForm, errs *forms.Errors) {
	h.render.HTML(w, formStatus(errs), "wizard_step_three", render.Data{
		"WorkerID":          form.WorkerID,
		"WorkstationID":     form.WorkstationID,
		"DateOfDay":         form.DateOfDay,
		"HourOfDay":         form.HourOfDay,
		"ReasonForDowntime": form.ReasonForDowntime,
		"StorageLocation":   form.StorageLocation,
		"Duration":          form.Duration,
		"Details":           form.Details,
		"Errors":            errs,
	})
}

// SummaryPage is step four. The summary token is only honored inside its
// freshness window; afterwards the link behaves like any other gate failure.
func (h *WizardHandler) SummaryPage(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)
	if h.redirectStaff(w, r, sess) {
		return
	}
	if _, ok := h.guard(w, r, sess, service.IntentStepFour, chi.URLParam(r, "personalId")); !ok {
		return
	}

	report, err := h.wizard.LoadSummary(r.Context(), chi.URLParam(r, "summaryToken"), chi.URLParam(r, "workstationId"), time.Now())
	if err != nil {
		if errors.Is(err, service.ErrBadSummaryToken) ||
			errors.Is(err, service.ErrStaleSummaryToken) ||
			errors.Is(err, domain.ErrReportNotFound) {
			destroySessionTo(w, r, h.sessions, "/")
			return
		}
		internalError(w, "handlers.Wizard", err)
		return
	}

	h.render.HTML(w, http.StatusOK, "wizard_step_four", render.Data{"Report": report})
}
