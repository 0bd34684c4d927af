package service

import (
	"sort"

	"github.com/remi/logiprod-report/internal/domain"
)

const (
	dayKeyFormat  = "2006-01-02"
	hourKeyFormat = "15:04"
)

// TimedReport decorates a report with preformatted HH:mm start/end strings
// for display.
type TimedReport struct {
	*domain.Report
	StartTime string
	EndTime   string
}

// DayGroup holds one calendar day's reports, ordered by start date.
type DayGroup struct {
	DateOfDay string
	Reports   []TimedReport
}

// GroupReportsByDay partitions a flat report list by the calendar day of
// the start date, keyed yyyy-MM-dd.
func GroupReportsByDay(reports []*domain.Report) map[string][]*domain.Report {
	grouped := make(map[string][]*domain.Report)
	for _, report := range reports {
		key := report.StartDate.Format(dayKeyFormat)
		grouped[key] = append(grouped[key], report)
	}
	return grouped
}

// SortReportsByDay flattens the day partitions into a display-ready slice:
// day keys ascending (lexicographic order is chronological for yyyy-MM-dd),
// reports within a day ascending by start date. Output is deterministic for
// equal inputs regardless of input order.
func SortReportsByDay(grouped map[string][]*domain.Report) []DayGroup {
	days := make([]string, 0, len(grouped))
	for day := range grouped {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]DayGroup, 0, len(days))
	for _, day := range days {
		reports := make([]TimedReport, 0, len(grouped[day]))
		for _, report := range grouped[day] {
			reports = append(reports, TimedReport{
				Report:    report,
				StartTime: report.StartDate.Format(hourKeyFormat),
				EndTime:   report.EndDate.Format(hourKeyFormat),
			})
		}
		sort.Slice(reports, func(i, j int) bool {
			return reports[i].StartDate.Before(reports[j].StartDate)
		})
		result = append(result, DayGroup{DateOfDay: day, Reports: reports})
	}
	return result
}
