package service

import (
	"testing"
	"time"

	"github.com/remi/logiprod-report/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportAt(t *testing.T, value string, duration int) *domain.Report {
	t.Helper()
	start, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)

	var report domain.Report
	report.SetSchedule(start, duration)
	return &report
}

func TestGroupReportsByDay(t *testing.T) {
	reports := []*domain.Report{
		reportAt(t, "2026-08-25 09:00", 5),
		reportAt(t, "2026-08-25 16:30", 10),
		reportAt(t, "2026-08-26 08:15", 3),
	}

	grouped := GroupReportsByDay(reports)
	require.Len(t, grouped, 2)
	assert.Len(t, grouped["2026-08-25"], 2)
	assert.Len(t, grouped["2026-08-26"], 1)
}

func TestSortReportsByDay(t *testing.T) {
	// Deliberately out of order, both across and within days.
	reports := []*domain.Report{
		reportAt(t, "2026-08-26 08:15", 3),
		reportAt(t, "2026-08-25 16:30", 10),
		reportAt(t, "2026-08-25 09:00", 5),
	}

	days := SortReportsByDay(GroupReportsByDay(reports))
	require.Len(t, days, 2)

	assert.Equal(t, "2026-08-25", days[0].DateOfDay)
	assert.Equal(t, "2026-08-26", days[1].DateOfDay)

	require.Len(t, days[0].Reports, 2)
	assert.Equal(t, "09:00", days[0].Reports[0].StartTime)
	assert.Equal(t, "09:05", days[0].Reports[0].EndTime)
	assert.Equal(t, "16:30", days[0].Reports[1].StartTime)
	assert.Equal(t, "16:40", days[0].Reports[1].EndTime)
}

func TestSortReportsByDay_DeterministicForEqualInput(t *testing.T) {
	a := []*domain.Report{
		reportAt(t, "2026-08-25 09:00", 5),
		reportAt(t, "2026-08-26 08:15", 3),
		reportAt(t, "2026-08-25 16:30", 10),
	}
	b := []*domain.Report{a[1], a[2], a[0]}

	assert.Equal(t, SortReportsByDay(GroupReportsByDay(a)), SortReportsByDay(GroupReportsByDay(b)))
}

func TestSortReportsByDay_Empty(t *testing.T) {
	assert.Empty(t, SortReportsByDay(GroupReportsByDay(nil)))
}
