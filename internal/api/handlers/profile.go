package handlers

import (
	"net/http"

	"github.com/remi/logiprod-report/internal/api/render"
	"github.com/remi/logiprod-report/internal/service"
	"github.com/remi/logiprod-report/internal/session"
)

// ProfileHandler serves the worker landing page.
type ProfileHandler struct {
	authService *service.AuthService
	sessions    *session.Store
	render      *render.Renderer
}

func NewProfileHandler(authService *service.AuthService, sessions *session.Store, render *render.Renderer) *ProfileHandler {
	return &ProfileHandler{authService: authService, sessions: sessions, render: render}
}

func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)
	user, err := h.authService.ValidateUserInSession(r.Context(), "id", sess.UserID(), sess.Role())
	if err != nil {
		internalError(w, "handlers.Profile", err)
		return
	}
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if user.IsStaff() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := navData(user)
	data["Profile"] = user
	h.render.HTML(w, http.StatusOK, "profile", data)
}
