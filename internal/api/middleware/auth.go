package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/service"
	"github.com/remi/logiprod-report/internal/session"
)

type contextKey string

const (
	UserKey contextKey = "user"
)

// RequireStaff gates the dashboard area. The session cookie is only a
// claim: the declared user is re-resolved from the store and its role
// checked before the request may proceed. Anything less sends the browser
// to the login page.
func RequireStaff(authService *service.AuthService, sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := sessions.Get(r)

			user, err := authService.ValidateUserInSession(r.Context(), "id", sess.UserID(), sess.Role())
			if err != nil {
				log.Printf("ERROR [middleware.RequireStaff] session validation failed: %v", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
			if user == nil || !domain.IsStaffRole(sess.Role()) {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates the admin subtree. It expects to run inside
// RequireStaff and tightens the check to the Admin role exactly.
func RequireAdmin(authService *service.AuthService, sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := sessions.Get(r)

			user, err := authService.ValidateAdminSession(r.Context(), sess)
			if err != nil {
				log.Printf("ERROR [middleware.RequireAdmin] session validation failed: %v", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
			if user == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser returns the validated user stored by the auth middleware.
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok
}
