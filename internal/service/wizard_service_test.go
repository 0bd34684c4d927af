package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryToken_RoundTrip(t *testing.T) {
	reportID := uuid.New()
	now := time.Unix(1767225600, 0)

	token := NewSummaryToken(reportID, now)
	issuedAt, parsedID, err := ParseSummaryToken(token)
	require.NoError(t, err)
	// The report id itself contains dashes; only the first dash separates.
	assert.Equal(t, now.Unix(), issuedAt)
	assert.Equal(t, reportID, parsedID)
}

func TestParseSummaryToken_Malformed(t *testing.T) {
	for _, token := range []string{
		"",
		"1767225600",
		"notanumber-" + uuid.New().String(),
		"1767225600-not-a-uuid",
	} {
		_, _, err := ParseSummaryToken(token)
		assert.ErrorIs(t, err, ErrBadSummaryToken, "token %q", token)
	}
}

func TestLoadSummary_Freshness(t *testing.T) {
	// Staleness is checked before any store access, so a service without
	// repositories is enough here.
	s := &WizardService{}
	ctx := context.Background()
	workstationID := uuid.New().String()
	issued := time.Unix(1767225600, 0)
	token := NewSummaryToken(uuid.New(), issued)

	_, err := s.LoadSummary(ctx, token, workstationID, issued.Add(30*time.Second))
	assert.ErrorIs(t, err, ErrStaleSummaryToken)

	_, err = s.LoadSummary(ctx, token, workstationID, issued.Add(5*time.Minute))
	assert.ErrorIs(t, err, ErrStaleSummaryToken)

	_, err = s.LoadSummary(ctx, "garbage", workstationID, issued)
	assert.ErrorIs(t, err, ErrBadSummaryToken)
}

func TestParseStartDate(t *testing.T) {
	start, err := ParseStartDate("2026-03-09", "22:59")
	require.NoError(t, err)
	assert.Equal(t, 2026, start.Year())
	assert.Equal(t, 22, start.Hour())
	assert.Equal(t, 59, start.Minute())

	_, err = ParseStartDate("09/03/2026", "22:59")
	assert.ErrorIs(t, err, ErrInvalidStartDate)

	_, err = ParseStartDate("", "")
	assert.ErrorIs(t, err, ErrInvalidStartDate)
}
