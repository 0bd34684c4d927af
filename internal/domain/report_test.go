package domain_test

import (
	"testing"
	"time"

	"github.com/remi/logiprod-report/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestReport_SetSchedule(t *testing.T) {
	var report domain.Report

	start := time.Date(2026, 3, 9, 22, 59, 0, 0, time.UTC)
	report.SetSchedule(start, 6)

	assert.Equal(t, start, report.StartDate)
	assert.Equal(t, 6, report.Duration)
	assert.Equal(t, time.Date(2026, 3, 9, 23, 5, 0, 0, time.UTC), report.EndDate)
}

func TestReport_SetScheduleCrossesMidnight(t *testing.T) {
	var report domain.Report

	start := time.Date(2026, 3, 9, 23, 50, 0, 0, time.UTC)
	report.SetSchedule(start, 30)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 20, 0, 0, time.UTC), report.EndDate)
}

func TestIsStaffRole(t *testing.T) {
	assert.True(t, domain.IsStaffRole(domain.RoleAdmin))
	assert.True(t, domain.IsStaffRole(domain.RoleTeamLeader))
	assert.True(t, domain.IsStaffRole(domain.RoleDepotManager))
	assert.False(t, domain.IsStaffRole(domain.RoleWorker))
	assert.False(t, domain.IsStaffRole(""))
}

func TestValidWorkstationType(t *testing.T) {
	assert.True(t, domain.ValidWorkstationType("Mobile"))
	assert.True(t, domain.ValidWorkstationType("Fixed"))
	assert.False(t, domain.ValidWorkstationType("mobile"))
	assert.False(t, domain.ValidWorkstationType("Portable"))
}
