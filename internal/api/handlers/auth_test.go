package handlers_test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"testing"

	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBrowser returns a client that keeps cookies but does not follow
// redirects, so tests can assert on Location headers.
func newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func get(t *testing.T, client *http.Client, url string) *http.Response {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func postForm(t *testing.T, client *http.Client, url string, values url.Values) *http.Response {
	t.Helper()
	resp, err := client.PostForm(url, values)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func assertRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, location, resp.Header.Get("Location"))
}

func TestLogin(t *testing.T) {
	ts := testutil.NewTestServer(t)

	worker, workerPassword := testutil.NewUserBuilder().
		WithUsername("wrkr1").
		WithRole(domain.RoleWorker).
		Build(t, ts.DB.DB)
	_, adminPassword := testutil.NewUserBuilder().
		WithUsername("admin1").
		WithRole(domain.RoleAdmin).
		Build(t, ts.DB.DB)

	t.Run("worker lands on profile", func(t *testing.T) {
		client := newBrowser(t)
		resp := postForm(t, client, ts.URL("/login"), url.Values{
			"identifier": {worker.Username},
			"password":   {workerPassword},
		})
		assertRedirect(t, resp, "/profile")

		resp = get(t, client, ts.URL("/profile"))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body(t, resp), worker.PersonalID)
	})

	t.Run("login by personal id", func(t *testing.T) {
		client := newBrowser(t)
		resp := postForm(t, client, ts.URL("/login"), url.Values{
			"identifier": {worker.PersonalID},
			"password":   {workerPassword},
		})
		assertRedirect(t, resp, "/profile")
	})

	t.Run("staff lands on dashboard", func(t *testing.T) {
		client := newBrowser(t)
		resp := postForm(t, client, ts.URL("/login"), url.Values{
			"identifier": {"admin1"},
			"password":   {adminPassword},
		})
		assertRedirect(t, resp, "/dashboard")

		resp = get(t, client, ts.URL("/dashboard"))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("wrong password and unknown identifier are indistinguishable", func(t *testing.T) {
		for _, identifier := range []string{worker.Username, "nobody99"} {
			client := newBrowser(t)
			resp := postForm(t, client, ts.URL("/login"), url.Values{
				"identifier": {identifier},
				"password":   {"wrong-password"},
			})
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, body(t, resp), "Invalid credentials")
		}
	})

	t.Run("identifier length is validated", func(t *testing.T) {
		client := newBrowser(t)
		resp := postForm(t, client, ts.URL("/login"), url.Values{
			"identifier": {"abc"},
			"password":   {"whatever"},
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body(t, resp), "Identifier must be at least 5 characters long")
	})
}

func TestStaffGates(t *testing.T) {
	ts := testutil.NewTestServer(t)

	worker, workerPassword := testutil.NewUserBuilder().
		WithUsername("wrkr2").
		WithRole(domain.RoleWorker).
		Build(t, ts.DB.DB)
	_, leaderPassword := testutil.NewUserBuilder().
		WithUsername("lead1").
		WithRole(domain.RoleTeamLeader).
		Build(t, ts.DB.DB)
	_, adminPassword := testutil.NewUserBuilder().
		WithUsername("admin2").
		WithRole(domain.RoleAdmin).
		Build(t, ts.DB.DB)

	login := func(t *testing.T, username, password string) *http.Client {
		client := newBrowser(t)
		postForm(t, client, ts.URL("/login"), url.Values{
			"identifier": {username},
			"password":   {password},
		})
		return client
	}

	t.Run("anonymous dashboard visit redirects to login", func(t *testing.T) {
		resp := get(t, newBrowser(t), ts.URL("/dashboard"))
		assertRedirect(t, resp, "/login")
	})

	t.Run("worker session is not staff", func(t *testing.T) {
		client := login(t, worker.Username, workerPassword)
		resp := get(t, client, ts.URL("/dashboard"))
		assertRedirect(t, resp, "/login")
	})

	t.Run("team leader reaches dashboard but not admin subtree", func(t *testing.T) {
		client := login(t, "lead1", leaderPassword)

		resp := get(t, client, ts.URL("/dashboard/reports"))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp = get(t, client, ts.URL("/dashboard/admin/status/new"))
		assertRedirect(t, resp, "/login")
	})

	t.Run("admin reaches admin subtree", func(t *testing.T) {
		client := login(t, "admin2", adminPassword)
		resp := get(t, client, ts.URL("/dashboard/admin/workstations/new"))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("logout clears the session", func(t *testing.T) {
		client := login(t, "admin2", adminPassword)

		resp := postForm(t, client, ts.URL("/logout"), url.Values{})
		assertRedirect(t, resp, "/login")

		resp = get(t, client, ts.URL("/dashboard"))
		assertRedirect(t, resp, "/login")
	})
}
