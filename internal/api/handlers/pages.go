package handlers

import (
	"net/http"

	"github.com/remi/logiprod-report/internal/api/render"
	"github.com/remi/logiprod-report/internal/service"
	"github.com/remi/logiprod-report/internal/session"
)

// PagesHandler serves the public, unguarded pages.
type PagesHandler struct {
	authService *service.AuthService
	sessions    *session.Store
	render      *render.Renderer
}

func NewPagesHandler(authService *service.AuthService, sessions *session.Store, render *render.Renderer) *PagesHandler {
	return &PagesHandler{authService: authService, sessions: sessions, render: render}
}

func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "home")
}

func (h *PagesHandler) About(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "about")
}

func (h *PagesHandler) renderPage(w http.ResponseWriter, r *http.Request, page string) {
	sess := h.sessions.Get(r)
	user, err := h.authService.ValidateUserInSession(r.Context(), "id", sess.UserID(), sess.Role())
	if err != nil {
		internalError(w, "handlers.Pages", err)
		return
	}
	h.render.HTML(w, http.StatusOK, page, navData(user))
}
