package handlers

import (
	"errors"
	"net/http"

	"github.com/remi/logiprod-report/internal/api/forms"
	"github.com/remi/logiprod-report/internal/api/render"
	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/service"
	"github.com/remi/logiprod-report/internal/session"
)

type AuthHandler struct {
	authService *service.AuthService
	sessions    *session.Store
	render      *render.Renderer
}

func NewAuthHandler(authService *service.AuthService, sessions *session.Store, render *render.Renderer) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, render: render}
}

// LoginPage renders the login form. Sessions that already resolve to a real
// user skip the form: staff land on the dashboard, workers on their profile.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)
	user, err := h.authService.ValidateUserInSession(r.Context(), "id", sess.UserID(), sess.Role())
	if err != nil {
		internalError(w, "handlers.Auth", err)
		return
	}
	if user != nil && user.IsStaff() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	if user != nil && sess.Role() == domain.RoleWorker {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	h.render.HTML(w, http.StatusOK, "login", render.Data{})
}

// Login authenticates by username or personal ID. Unknown identifier and
// wrong password produce the same form error.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	form, errs := forms.ParseLogin(r)
	if errs.Any() {
		h.renderLogin(w, form, errs)
		return
	}

	user, err := h.authService.Login(r.Context(), form.Identifier, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			errs.AddForm("Invalid credentials")
			h.renderLogin(w, form, errs)
			return
		}
		internalError(w, "handlers.Auth", err)
		return
	}

	sess := h.sessions.Get(r)
	sess.Set(session.KeyUserID, user.ID.String())
	sess.Set(session.KeyPersonalID, user.PersonalID)
	sess.Set(session.KeyRole, user.RoleName())
	if !commitSession(w, h.sessions, sess, session.AuthTTL) {
		return
	}

	if user.RoleName() == domain.RoleWorker {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, form *forms.LoginForm, errs *forms.Errors) {
	h.render.HTML(w, formStatus(errs), "login", render.Data{
		"Identifier": form.Identifier,
		"Errors":     errs,
	})
}

// Logout destroys the session. Only the POST form logs out; a plain GET on
// the logout URL goes home untouched.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	destroySessionTo(w, r, h.sessions, "/login")
}

func (h *AuthHandler) LogoutPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
