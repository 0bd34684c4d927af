package forms

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formRequest(t *testing.T, values url.Values) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, r.ParseForm())
	return r
}

func TestParseLogin(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		form, errs := ParseLogin(formRequest(t, url.Values{
			"identifier": {"I140C06E"},
			"password":   {"hunter2!"},
		}))
		assert.False(t, errs.Any())
		assert.Equal(t, "I140C06E", form.Identifier)
	})

	t.Run("identifier too short", func(t *testing.T) {
		_, errs := ParseLogin(formRequest(t, url.Values{
			"identifier": {"abc"},
			"password":   {"hunter2!"},
		}))
		assert.Equal(t, "Identifier must be at least 5 characters long", errs.Fields["identifier"])
	})

	t.Run("identifier too long", func(t *testing.T) {
		_, errs := ParseLogin(formRequest(t, url.Values{
			"identifier": {"waytoolongname"},
			"password":   {"hunter2!"},
		}))
		assert.Equal(t, "Identifier must be at most 8 characters long", errs.Fields["identifier"])
	})

	t.Run("missing password", func(t *testing.T) {
		_, errs := ParseLogin(formRequest(t, url.Values{"identifier": {"I140C06E"}}))
		assert.Equal(t, "Password is required", errs.Fields["password"])
	})
}

func TestParsePersonalID(t *testing.T) {
	t.Run("exact length", func(t *testing.T) {
		form, errs := ParsePersonalID(formRequest(t, url.Values{"personalId": {"I140C06E"}}))
		assert.False(t, errs.Any())
		assert.Equal(t, "I140C06E", form.PersonalID)
	})

	t.Run("wrong length", func(t *testing.T) {
		for _, value := range []string{"I140", "I140C06E9"} {
			_, errs := ParsePersonalID(formRequest(t, url.Values{"personalId": {value}}))
			assert.Equal(t, "Personal Id must be exactly 8 characters long.", errs.Fields["personalId"], "value %q", value)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, errs := ParsePersonalID(formRequest(t, url.Values{}))
		assert.Equal(t, "Personal ID is required", errs.Fields["personalId"])
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		form, errs := ParsePersonalID(formRequest(t, url.Values{"personalId": {"  I140C06E  "}}))
		assert.False(t, errs.Any())
		assert.Equal(t, "I140C06E", form.PersonalID)
	})
}

func TestParseReport(t *testing.T) {
	valid := url.Values{
		"dateOfDay":         {"2026-03-09"},
		"hourOfDay":         {"22:59"},
		"reasonForDowntime": {"Conveyor jam"},
		"duration":          {"6"},
		"workstationId":     {"ws-id"},
		"workerId":          {"worker-id"},
	}

	t.Run("valid", func(t *testing.T) {
		form, errs := ParseReport(formRequest(t, valid))
		assert.False(t, errs.Any())
		assert.Equal(t, 6, form.Duration)
	})

	t.Run("missing duration", func(t *testing.T) {
		values := url.Values{}
		for k, v := range valid {
			values[k] = v
		}
		values.Del("duration")
		_, errs := ParseReport(formRequest(t, values))
		assert.Equal(t, "Duration is required", errs.Fields["duration"])
	})

	t.Run("non-numeric duration", func(t *testing.T) {
		values := url.Values{}
		for k, v := range valid {
			values[k] = v
		}
		values.Set("duration", "six")
		_, errs := ParseReport(formRequest(t, values))
		assert.Equal(t, "Duration must be a number", errs.Fields["duration"])
	})

	t.Run("non-positive duration", func(t *testing.T) {
		values := url.Values{}
		for k, v := range valid {
			values[k] = v
		}
		values.Set("duration", "0")
		_, errs := ParseReport(formRequest(t, values))
		assert.Equal(t, "Duration must be a positive number", errs.Fields["duration"])
	})

	t.Run("missing required fields", func(t *testing.T) {
		_, errs := ParseReport(formRequest(t, url.Values{"duration": {"6"}}))
		assert.Equal(t, "Date of day is required", errs.Fields["dateOfDay"])
		assert.Equal(t, "Hour of day is required", errs.Fields["hourOfDay"])
		assert.Equal(t, "Reason for downtime is required", errs.Fields["reasonForDowntime"])
		assert.Equal(t, "Workstation is required", errs.Fields["workstationId"])
		assert.Equal(t, "Worker is required", errs.Fields["workerId"])
	})
}

func TestParseWorkstation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		form, errs := ParseWorkstation(formRequest(t, url.Values{
			"name":        {"forklift-01"},
			"displayName": {"Forklift 01"},
			"type":        {"Mobile"},
		}))
		assert.False(t, errs.Any())
		assert.Equal(t, "Mobile", form.Type)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, errs := ParseWorkstation(formRequest(t, url.Values{
			"name":        {"forklift-01"},
			"displayName": {"Forklift 01"},
			"type":        {"Portable"},
		}))
		assert.Equal(t, "Type must be Mobile or Fixed", errs.Fields["type"])
	})

	t.Run("description bounds", func(t *testing.T) {
		_, errs := ParseWorkstation(formRequest(t, url.Values{
			"name":        {"forklift-01"},
			"displayName": {"Forklift 01"},
			"type":        {"Fixed"},
			"description": {"ab"},
		}))
		assert.Equal(t, "Description is too short", errs.Fields["description"])
	})
}

func TestErrors(t *testing.T) {
	errs := NewErrors()
	assert.False(t, errs.Any())

	errs.AddField("name", "first message")
	errs.AddField("name", "second message")
	assert.Equal(t, "first message", errs.Fields["name"])

	errs.AddForm("form-level message")
	assert.True(t, errs.Any())
	assert.Len(t, errs.Form, 1)
}
