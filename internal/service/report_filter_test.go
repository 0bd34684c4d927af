package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, August 26 2026, 14:30 local.
var filterNow = time.Date(2026, 8, 26, 14, 30, 0, 0, time.UTC)

func TestDateRangeBounds(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		from time.Time
		to   time.Time
	}{
		{RangeToday, day(2026, 8, 26), day(2026, 8, 27)},
		{RangeYesterday, day(2026, 8, 25), day(2026, 8, 26)},
		{RangeThisWeek, day(2026, 8, 24), day(2026, 8, 31)},
		{RangeLastWeek, day(2026, 8, 17), day(2026, 8, 24)},
		{RangeThisMonth, day(2026, 8, 1), day(2026, 9, 1)},
		{RangeLastMonth, day(2026, 7, 1), day(2026, 8, 1)},
		{RangeThisYear, day(2026, 1, 1), day(2027, 1, 1)},
		{RangeLastYear, day(2025, 1, 1), day(2026, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, ok := DateRangeBounds(tt.name, filterNow)
			require.True(t, ok)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}

func TestDateRangeBounds_WeekStartsMonday(t *testing.T) {
	// A Sunday belongs to the week that began the previous Monday.
	sunday := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	from, to, ok := DateRangeBounds(RangeThisWeek, sunday)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), to)
}

func TestDateRangeBounds_UnknownName(t *testing.T) {
	_, _, ok := DateRangeBounds("fortnight", filterNow)
	assert.False(t, ok)
	_, _, ok = DateRangeBounds("", filterNow)
	assert.False(t, ok)
}

func TestListReportsInput_Filter(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		filter, page, size := ListReportsInput{}.filter(filterNow)
		assert.Equal(t, 1, page)
		assert.Equal(t, DefaultPageSize, size)
		assert.Equal(t, DefaultPageSize, filter.Limit)
		assert.Equal(t, 0, filter.Offset)
		assert.Nil(t, filter.From)
		assert.Nil(t, filter.To)
	})

	t.Run("page size allow-list", func(t *testing.T) {
		_, _, size := ListReportsInput{PageSize: 25}.filter(filterNow)
		assert.Equal(t, 25, size)

		_, _, size = ListReportsInput{PageSize: 100}.filter(filterNow)
		assert.Equal(t, DefaultPageSize, size)

		_, _, size = ListReportsInput{PageSize: -5}.filter(filterNow)
		assert.Equal(t, DefaultPageSize, size)
	})

	t.Run("offset from page", func(t *testing.T) {
		filter, page, _ := ListReportsInput{Page: 3, PageSize: 5}.filter(filterNow)
		assert.Equal(t, 3, page)
		assert.Equal(t, 10, filter.Offset)

		filter, page, _ = ListReportsInput{Page: -2}.filter(filterNow)
		assert.Equal(t, 1, page)
		assert.Equal(t, 0, filter.Offset)
	})

	t.Run("named range resolves to bounds", func(t *testing.T) {
		filter, _, _ := ListReportsInput{DateRange: RangeToday}.filter(filterNow)
		require.NotNil(t, filter.From)
		require.NotNil(t, filter.To)
		assert.Equal(t, time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), *filter.From)
		assert.Equal(t, time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), *filter.To)
	})

	t.Run("unknown range leaves bounds unset", func(t *testing.T) {
		filter, _, _ := ListReportsInput{DateRange: "whenever"}.filter(filterNow)
		assert.Nil(t, filter.From)
		assert.Nil(t, filter.To)
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 10))
	assert.Equal(t, 1, totalPages(1, 10))
	assert.Equal(t, 1, totalPages(10, 10))
	assert.Equal(t, 2, totalPages(11, 10))
	assert.Equal(t, 5, totalPages(25, 5))
}

func TestListReportsInput_IsEmpty(t *testing.T) {
	assert.True(t, ListReportsInput{Page: 2, PageSize: 25}.IsEmpty())
	assert.False(t, ListReportsInput{Status: "pending"}.IsEmpty())
	assert.False(t, ListReportsInput{DateRange: RangeToday}.IsEmpty())
}
