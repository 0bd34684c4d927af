package handlers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staffClient(t *testing.T, ts *testutil.TestServer) *http.Client {
	t.Helper()
	staff, password := testutil.NewUserBuilder().
		WithRole(domain.RoleTeamLeader).
		Build(t, ts.DB.DB)

	client := newBrowser(t)
	resp := postForm(t, client, ts.URL("/login"), url.Values{
		"identifier": {staff.Username},
		"password":   {password},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	return client
}

func TestReportsListing(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := staffClient(t, ts)

	worker, _ := testutil.NewUserBuilder().
		WithUsername("picker01").
		WithRole(domain.RoleWorker).
		Build(t, ts.DB.DB)
	station := testutil.NewWorkstationBuilder().WithName("forklift-01").Build(t, ts.DB.DB)
	testutil.NewStatusBuilder().WithName("Reviewed").Build(t, ts.DB.DB)

	day := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	testutil.NewReportBuilder().
		WithOwner(worker).
		WithWorkstation(station).
		WithStartDate(day).
		WithReason("Hydraulic leak").
		Build(t, ts.DB.DB)
	testutil.NewReportBuilder().
		WithOwner(worker).
		WithWorkstation(station).
		WithStartDate(day.Add(26 * time.Hour)).
		WithReason("Battery swap").
		WithStatus("Reviewed").
		Build(t, ts.DB.DB)

	t.Run("groups by day", func(t *testing.T) {
		resp := get(t, client, ts.URL("/dashboard/reports"))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		page := body(t, resp)
		assert.Contains(t, page, "2026-08-25")
		assert.Contains(t, page, "2026-08-26")
		assert.Contains(t, page, "Hydraulic leak")
		assert.Contains(t, page, "Battery swap")
	})

	t.Run("status filter is a contains match", func(t *testing.T) {
		resp := get(t, client, ts.URL("/dashboard/reports?status=review"))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		page := body(t, resp)
		assert.Contains(t, page, "Battery swap")
		assert.NotContains(t, page, "Hydraulic leak")
	})

	t.Run("worker filter matches username", func(t *testing.T) {
		resp := get(t, client, ts.URL("/dashboard/reports?worker=picker"))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		page := body(t, resp)
		assert.Contains(t, page, "Hydraulic leak")
		assert.Contains(t, page, "Battery swap")
	})

	t.Run("empty filter submission redirects to the bare listing", func(t *testing.T) {
		resp := get(t, client, ts.URL("/dashboard/reports?status=&workstation=&worker=&range="))
		assertRedirect(t, resp, "/dashboard/reports")
	})

	t.Run("pagination keeps the filter", func(t *testing.T) {
		for i := 0; i < 6; i++ {
			testutil.NewReportBuilder().
				WithOwner(worker).
				WithWorkstation(station).
				WithStartDate(day.Add(time.Duration(i) * time.Minute)).
				Build(t, ts.DB.DB)
		}

		resp := get(t, client, ts.URL("/dashboard/reports?worker=picker&size=5"))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		page := body(t, resp)
		assert.Contains(t, page, "Page 1 of 2")
		assert.Contains(t, page, "worker=picker")
		assert.Contains(t, page, "page=2")
	})

	t.Run("unsupported page size falls back to the default", func(t *testing.T) {
		// Eight reports exist by now; an honored size=2 would paginate.
		resp := get(t, client, ts.URL("/dashboard/reports?size=2"))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body(t, resp), "Page 1 of 1")
	})
}

func TestReportCreateAndEdit(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := staffClient(t, ts)

	worker, _ := testutil.NewUserBuilder().
		WithRole(domain.RoleWorker).
		Build(t, ts.DB.DB)
	station := testutil.NewWorkstationBuilder().Build(t, ts.DB.DB)
	testutil.NewStatusBuilder().Build(t, ts.DB.DB)
	testutil.NewStatusBuilder().WithName("Reviewed").Build(t, ts.DB.DB)

	t.Run("create", func(t *testing.T) {
		resp := postForm(t, client, ts.URL("/dashboard/reports/new"), url.Values{
			"dateOfDay":         {"2026-08-24"},
			"hourOfDay":         {"14:30"},
			"reasonForDowntime": {"Scanner offline"},
			"duration":          {"12"},
			"workstationId":     {station.ID.String()},
			"workerId":          {worker.ID.String()},
		})
		assertRedirect(t, resp, "/dashboard/reports")

		var report domain.Report
		require.NoError(t, ts.DB.DB.First(&report, "reason_for_downtime = ?", "Scanner offline").Error)
		assert.Equal(t, domain.DefaultReportStatus, report.StatusName)
		assert.Equal(t, 12, report.Duration)
	})

	t.Run("create with bad ids re-renders the form", func(t *testing.T) {
		resp := postForm(t, client, ts.URL("/dashboard/reports/new"), url.Values{
			"dateOfDay":         {"2026-08-24"},
			"hourOfDay":         {"14:30"},
			"reasonForDowntime": {"Scanner offline"},
			"duration":          {"12"},
			"workstationId":     {"not-a-uuid"},
			"workerId":          {worker.ID.String()},
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body(t, resp), "Invalid form fields.")
	})

	t.Run("edit updates status and returns to the referer", func(t *testing.T) {
		report := testutil.NewReportBuilder().
			WithOwner(worker).
			WithWorkstation(station).
			WithReason("Label jam").
			Build(t, ts.DB.DB)

		editURL := fmt.Sprintf("/dashboard/reports/%s", report.ID)
		resp := postForm(t, client, ts.URL(editURL), url.Values{
			"dateOfDay":         {"2026-08-24"},
			"hourOfDay":         {"10:00"},
			"reasonForDowntime": {"Label jam cleared"},
			"duration":          {"4"},
			"workstationId":     {station.ID.String()},
			"workerId":          {worker.ID.String()},
			"statusName":        {"Reviewed"},
			"_referer":          {"/dashboard/reports?status=pending"},
		})
		assertRedirect(t, resp, "/dashboard/reports?status=pending")

		var updated domain.Report
		require.NoError(t, ts.DB.DB.First(&updated, "id = ?", report.ID).Error)
		assert.Equal(t, "Reviewed", updated.StatusName)
		assert.Equal(t, "Label jam cleared", updated.ReasonForDowntime)
	})

	t.Run("referer outside the site is ignored", func(t *testing.T) {
		report := testutil.NewReportBuilder().
			WithOwner(worker).
			WithWorkstation(station).
			Build(t, ts.DB.DB)

		resp := postForm(t, client, ts.URL(fmt.Sprintf("/dashboard/reports/%s", report.ID)), url.Values{
			"dateOfDay":         {"2026-08-24"},
			"hourOfDay":         {"10:00"},
			"reasonForDowntime": {"Checked"},
			"duration":          {"4"},
			"workstationId":     {station.ID.String()},
			"workerId":          {worker.ID.String()},
			"statusName":        {domain.DefaultReportStatus},
			"_referer":          {"https://evil.example/phish"},
		})
		assertRedirect(t, resp, "/dashboard/reports")
	})

	t.Run("unknown report id is a 404", func(t *testing.T) {
		resp := get(t, client, ts.URL("/dashboard/reports/"+uuid.NewString()))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
