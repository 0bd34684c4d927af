// Package handlers contains the HTTP route handlers. Every handler renders
// a server-side page or answers with a redirect; there is no JSON surface.
package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/remi/logiprod-report/internal/api/forms"
	"github.com/remi/logiprod-report/internal/api/render"
	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/session"
)

// formStatus maps a validation outcome to the response code for the
// re-rendered form: 400 on any error, 200 otherwise.
func formStatus(errs *forms.Errors) int {
	if errs != nil && errs.Any() {
		return http.StatusBadRequest
	}
	return http.StatusOK
}

// navData populates the layout's navigation slots for the given user, which
// may be nil for anonymous visitors.
func navData(user *domain.User) render.Data {
	data := render.Data{}
	if user != nil {
		data["User"] = user
		data["IsStaff"] = user.IsStaff()
		data["IsWorker"] = user.RoleName() == domain.RoleWorker
	}
	return data
}

// commitSession attaches the signed session cookie to the response. A
// signing failure is a server fault, not a user one.
func commitSession(w http.ResponseWriter, store *session.Store, sess *session.Session, ttl time.Duration) bool {
	cookie, err := store.Commit(sess, ttl)
	if err != nil {
		log.Printf("ERROR [handlers] commit session: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return false
	}
	http.SetCookie(w, cookie)
	return true
}

// destroySessionTo clears the session cookie and redirects. Used by every
// gate failure so the browser cannot distinguish why it was bounced.
func destroySessionTo(w http.ResponseWriter, r *http.Request, store *session.Store, location string) {
	http.SetCookie(w, store.Destroy())
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// safeLocalRedirect returns target when it is a local path, fallback
// otherwise. Prevents referer-driven open redirects.
func safeLocalRedirect(target, fallback string) string {
	if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
		return target
	}
	return fallback
}

func internalError(w http.ResponseWriter, scope string, err error) {
	log.Printf("ERROR [%s] %v", scope, err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
