// Package session carries the per-browser state bag in a single signed
// cookie. The server keeps no session table: the cookie is a claim that
// callers must re-validate against the user store on every request.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "lpr_auth_session"

const (
	// AuthTTL is the lifetime of an authenticated staff/worker session.
	AuthTTL = 7 * 24 * time.Hour
	// WizardTTL is the lifetime of the anonymous reporting-flow session.
	WizardTTL = 15 * time.Minute
)

// Session keys. Absent keys read as the empty string.
const (
	KeyIntent     = "intent"
	KeyPersonalID = "personalId"
	KeyUserID     = "userId"
	KeyRole       = "role"
)

var ErrNoSecrets = errors.New("session store requires at least one secret")

type sessionClaims struct {
	Data map[string]string `json:"data"`
	jwt.RegisteredClaims
}

// Session is a small string-to-string bag. Mutations are only persisted to
// the client when the cookie returned by Store.Commit is attached to the
// response; forgetting to attach it silently drops the change.
type Session struct {
	values map[string]string
}

// New returns an empty session, detached from any request cookie.
func New() *Session {
	return newSession(nil)
}

func newSession(values map[string]string) *Session {
	if values == nil {
		values = make(map[string]string)
	}
	return &Session{values: values}
}

func (s *Session) Get(key string) string {
	return s.values[key]
}

func (s *Session) Set(key, value string) {
	s.values[key] = value
}

func (s *Session) Intent() string     { return s.Get(KeyIntent) }
func (s *Session) PersonalID() string { return s.Get(KeyPersonalID) }
func (s *Session) UserID() string     { return s.Get(KeyUserID) }
func (s *Session) Role() string       { return s.Get(KeyRole) }

// Store signs and verifies session cookies. The first secret signs new
// cookies; every secret is accepted for verification, which lets secrets
// rotate without invalidating live sessions.
type Store struct {
	secrets []string
	secure  bool
}

func NewStore(secrets []string, secure bool) (*Store, error) {
	if len(secrets) == 0 {
		return nil, ErrNoSecrets
	}
	return &Store{secrets: secrets, secure: secure}, nil
}

// Get reads the session cookie from the request. A missing, expired or
// tampered cookie yields an empty session, never an error: the gates treat
// an empty bag the same as a failed check.
func (st *Store) Get(r *http.Request) *Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return newSession(nil)
	}

	for _, secret := range st.secrets {
		claims := &sessionClaims{}
		token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err == nil && token.Valid {
			return newSession(claims.Data)
		}
	}

	return newSession(nil)
}

// Commit signs the session into a Set-Cookie value with the given lifetime.
func (st *Store) Commit(sess *Session, ttl time.Duration) (*http.Cookie, error) {
	now := time.Now()
	claims := &sessionClaims{
		Data: sess.values,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(st.secrets[0]))
	if err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(ttl),
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   st.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Destroy returns a Set-Cookie value that clears the session cookie.
func (st *Store) Destroy() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   st.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
