package report

import (
	"fmt"
	"strings"
	"time"

	"weatherstats.app/pkg/errors"
)

// DateFilter names a reporting window relative to the current time
type DateFilter string

const (
	SelectedHour  DateFilter = "selected_hour"
	Today         DateFilter = "today"
	Yesterday     DateFilter = "yesterday"
	CurrentWeek   DateFilter = "current_week"
	LastSevenDays DateFilter = "last_seven_days"

	DefaultDateFilter = LastSevenDays

	// SelectedHourLayout is the accepted format of a selected hour, e.g. "2024-05-10 14"
	SelectedHourLayout = "2006-01-02 15"
)

// DateFilters lists every supported filter in display order
var DateFilters = []DateFilter{SelectedHour, Today, Yesterday, CurrentWeek, LastSevenDays}

// ParseDateFilter converts user input into a DateFilter. Empty input selects the default.
func ParseDateFilter(s string) (DateFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultDateFilter, nil
	}
	for _, f := range DateFilters {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.NewValidationError(fmt.Sprintf("unknown date filter %q", s))
}

// Window is a half-open time interval [Start, End)
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Range returns the window for the filter. Midnights and the selected hour are
// interpreted in now's location; the returned bounds are in UTC.
func (f DateFilter) Range(now time.Time, selectedHour string) (Window, error) {
	loc := now.Location()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	var start, end time.Time
	switch f {
	case SelectedHour:
		hour := strings.TrimSpace(selectedHour)
		if hour == "" {
			return Window{}, errors.NewValidationError("selected hour is required for the selected_hour filter")
		}
		h, err := time.ParseInLocation(SelectedHourLayout, hour, loc)
		if err != nil {
			return Window{}, errors.NewValidationError(fmt.Sprintf("selected hour %q must match YYYY-MM-DD HH", hour))
		}
		start, end = h, h.Add(time.Hour)
	case Today:
		start, end = midnight, midnight.AddDate(0, 0, 1)
	case Yesterday:
		start, end = midnight.AddDate(0, 0, -1), midnight
	case CurrentWeek:
		sinceMonday := (int(now.Weekday()) + 6) % 7
		start = midnight.AddDate(0, 0, -sinceMonday)
		end = start.AddDate(0, 0, 7)
	case LastSevenDays:
		end = midnight.AddDate(0, 0, 1)
		start = end.AddDate(0, 0, -7)
	default:
		return Window{}, errors.NewValidationError(fmt.Sprintf("unknown date filter %q", string(f)))
	}

	return Window{Start: start.UTC(), End: end.UTC()}, nil
}
