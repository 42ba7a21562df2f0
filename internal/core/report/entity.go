package report

import (
	"fmt"
	"strings"

	"weatherstats.app/pkg/errors"
)

// DataType selects which aggregate a report query runs
type DataType string

const (
	Countries DataType = "countries"
	Cities    DataType = "cities"
	Extremes  DataType = "extremes"
	Rain      DataType = "rain"
)

var dataTypes = []DataType{Countries, Cities, Extremes, Rain}

// ParseDataType converts user input into a DataType
func ParseDataType(s string) (DataType, error) {
	s = strings.TrimSpace(s)
	for _, d := range dataTypes {
		if string(d) == s {
			return d, nil
		}
	}
	return "", errors.NewValidationError(fmt.Sprintf("unknown data type %q, use one of countries, cities, extremes, rain", s))
}

// TempExtreme selects the highest or lowest temperature
type TempExtreme string

const (
	Max TempExtreme = "max"
	Min TempExtreme = "min"

	DefaultTempExtreme = Max
)

// ParseTempExtreme converts user input into a TempExtreme. Empty input selects max.
func ParseTempExtreme(s string) (TempExtreme, error) {
	switch TempExtreme(strings.TrimSpace(s)) {
	case "":
		return DefaultTempExtreme, nil
	case Max:
		return Max, nil
	case Min:
		return Min, nil
	default:
		return "", errors.NewValidationError(fmt.Sprintf("unknown temperature extreme %q, use max or min", s))
	}
}

// Query describes one reporting request
type Query struct {
	DataType     DataType
	DateFilter   DateFilter
	TempExtreme  TempExtreme
	SelectedHour string
}

// GroupStats holds the temperature aggregate of one city or country.
// StdDevTemperature is nil when fewer than two samples exist.
type GroupStats struct {
	Key               string   `json:"key"`
	MaxTemperature    float64  `json:"max_temperature"`
	MinTemperature    float64  `json:"min_temperature"`
	StdDevTemperature *float64 `json:"stddev_temperature"`
	Samples           int64    `json:"samples"`
}

// Extreme is the city holding the requested temperature extreme
type Extreme struct {
	City        string      `json:"city"`
	Temperature float64     `json:"temperature"`
	Kind        TempExtreme `json:"kind"`
}

// Result is the outcome of a Query. Exactly one of Groups, Extreme or RainHours is
// meaningful for a given DataType; Extreme stays nil for an empty window.
type Result struct {
	DataType   DataType     `json:"data_type"`
	DateFilter DateFilter   `json:"date_filter"`
	Window     Window       `json:"window"`
	Groups     []GroupStats `json:"groups,omitempty"`
	Extreme    *Extreme     `json:"extreme,omitempty"`
	RainHours  int64        `json:"rain_hours"`
}

// Lines renders the result as one human-readable line per row
func (r *Result) Lines() []string {
	switch r.DataType {
	case Countries, Cities:
		label := "City"
		if r.DataType == Countries {
			label = "Country"
		}
		lines := make([]string, 0, len(r.Groups))
		for _, g := range r.Groups {
			stddev := "n/a"
			if g.StdDevTemperature != nil {
				stddev = fmt.Sprintf("%.2f", *g.StdDevTemperature)
			}
			lines = append(lines, fmt.Sprintf("%s: %s, Max Temp: %.2f, Min Temp: %.2f, Std Dev: %s, Samples: %d",
				label, g.Key, g.MaxTemperature, g.MinTemperature, stddev, g.Samples))
		}
		return lines
	case Extremes:
		if r.Extreme == nil {
			return []string{"No observations in the selected window"}
		}
		return []string{fmt.Sprintf("City: %s, %s Temp: %.2f",
			r.Extreme.City, strings.ToUpper(string(r.Extreme.Kind[:1]))+string(r.Extreme.Kind[1:]), r.Extreme.Temperature)}
	case Rain:
		return []string{fmt.Sprintf("Rain hours: %d", r.RainHours)}
	default:
		return nil
	}
}
