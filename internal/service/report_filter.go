package service

import (
	"time"

	"github.com/remi/logiprod-report/internal/domain"
	"github.com/remi/logiprod-report/internal/repository"
)

// PageSizes is the allow-list for the listing page size.
var PageSizes = []int{5, 10, 25}

const DefaultPageSize = 10

// ListReportsInput mirrors the listing query parameters. Zero values mean
// "not filtered"; Page is 1-indexed.
type ListReportsInput struct {
	Status      string
	Workstation string
	Worker      string
	DateRange   string
	Page        int
	PageSize    int
}

// IsEmpty reports whether every filter parameter is the empty string; the
// listing handler short-circuits this case to the unfiltered base URL.
func (in ListReportsInput) IsEmpty() bool {
	return in.Status == "" && in.Workstation == "" && in.Worker == "" && in.DateRange == ""
}

type ReportPage struct {
	Reports    []*domain.Report
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
}

func (in ListReportsInput) filter(now time.Time) (repository.ReportFilter, int, int) {
	pageSize := DefaultPageSize
	for _, size := range PageSizes {
		if in.PageSize == size {
			pageSize = size
			break
		}
	}

	page := in.Page
	if page < 1 {
		page = 1
	}

	filter := repository.ReportFilter{
		Status:      in.Status,
		Workstation: in.Workstation,
		Worker:      in.Worker,
		Limit:       pageSize,
		Offset:      (page - 1) * pageSize,
	}

	if from, to, ok := DateRangeBounds(in.DateRange, now); ok {
		filter.From = &from
		filter.To = &to
	}

	return filter, page, pageSize
}

func totalPages(total int64, pageSize int) int {
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// Named date ranges accepted by the listing filter.
const (
	RangeToday     = "today"
	RangeYesterday = "yesterday"
	RangeThisWeek  = "this-week"
	RangeLastWeek  = "last-week"
	RangeThisMonth = "this-month"
	RangeLastMonth = "last-month"
	RangeThisYear  = "this-year"
	RangeLastYear  = "last-year"
)

// DateRanges lists the accepted range names in display order.
var DateRanges = []string{
	RangeToday, RangeYesterday,
	RangeThisWeek, RangeLastWeek,
	RangeThisMonth, RangeLastMonth,
	RangeThisYear, RangeLastYear,
}

// DateRangeBounds resolves a named range to concrete [from, to) boundaries
// relative to now. Weeks start on Monday. Unknown names return ok=false.
func DateRangeBounds(name string, now time.Time) (time.Time, time.Time, bool) {
	day := startOfDay(now)

	switch name {
	case RangeToday:
		return day, day.AddDate(0, 0, 1), true
	case RangeYesterday:
		return day.AddDate(0, 0, -1), day, true
	case RangeThisWeek:
		week := startOfWeek(day)
		return week, week.AddDate(0, 0, 7), true
	case RangeLastWeek:
		week := startOfWeek(day)
		return week.AddDate(0, 0, -7), week, true
	case RangeThisMonth:
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return month, month.AddDate(0, 1, 0), true
	case RangeLastMonth:
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return month.AddDate(0, -1, 0), month, true
	case RangeThisYear:
		year := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return year, year.AddDate(1, 0, 0), true
	case RangeLastYear:
		year := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return year.AddDate(-1, 0, 0), year, true
	}

	return time.Time{}, time.Time{}, false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfWeek(day time.Time) time.Time {
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	return day.AddDate(0, 0, 1-weekday)
}
