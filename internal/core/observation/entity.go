package observation

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"weatherstats.app/internal/ports"
	"weatherstats.app/pkg/errors"
	"weatherstats.app/pkg/validation"
)

const (
	absoluteZeroCelsius = -273.15
	maxCountryLength    = 8
)

// Observation is a single weather reading for one city at one provider timestamp
type Observation struct {
	ID           uint
	Country      string
	City         string
	Temperature  float64
	RainPresence bool
	Description  string
	ObservedAt   time.Time
}

// IngestReport summarizes one ingestion pass
type IngestReport struct {
	Total        int           `json:"total"`
	Succeeded    int           `json:"succeeded"`
	Failed       int           `json:"failed"`
	FailedCities []string      `json:"failed_cities"`
	Duration     time.Duration `json:"-"`
}

// MarshalJSON emits Duration as whole milliseconds under duration_ms
func (r IngestReport) MarshalJSON() ([]byte, error) {
	type plain IngestReport
	return json.Marshal(struct {
		plain
		DurationMs int64 `json:"duration_ms"`
	}{plain: plain(r), DurationMs: r.Duration.Milliseconds()})
}

// Validate checks the record against the table schema before insert
func (o *Observation) Validate() error {
	if strings.TrimSpace(o.City) == "" {
		return errors.NewValidationError("city cannot be empty")
	}
	if strings.TrimSpace(o.Country) == "" {
		return errors.NewValidationError("country cannot be empty")
	}
	if len(o.Country) > maxCountryLength {
		return errors.NewValidationError(fmt.Sprintf("country must be at most %d characters", maxCountryLength))
	}
	if !validation.IsValidCountryCode(o.Country) {
		return errors.NewValidationError(fmt.Sprintf("country %q is not an ISO country code", o.Country))
	}
	if o.Temperature < absoluteZeroCelsius {
		return errors.NewValidationError("temperature cannot be below absolute zero")
	}
	if strings.TrimSpace(o.Description) == "" {
		return errors.NewValidationError("weather description cannot be empty")
	}
	if o.ObservedAt.IsZero() {
		return errors.NewValidationError("observation date cannot be empty")
	}
	if o.ObservedAt.Unix() <= 0 {
		return errors.NewValidationError("observation date must be after the Unix epoch")
	}
	return nil
}

// String returns a one-line representation used in logs and CLI output
func (o *Observation) String() string {
	rain := "dry"
	if o.RainPresence {
		rain = "rain"
	}
	return fmt.Sprintf("%s, %s: %.1f°C, %s, %s at %s",
		o.City, o.Country, o.Temperature, o.Description, rain, o.ObservedAt.UTC().Format(time.RFC3339))
}

func fromPorts(data *ports.ObservationData) *Observation {
	return &Observation{
		ID:           data.ID,
		Country:      data.Country,
		City:         data.City,
		Temperature:  data.Temperature,
		RainPresence: data.RainPresence,
		Description:  data.Description,
		ObservedAt:   data.ObservedAt.UTC(),
	}
}

func (o *Observation) toPorts() *ports.ObservationData {
	return &ports.ObservationData{
		ID:           o.ID,
		Country:      o.Country,
		City:         o.City,
		Temperature:  o.Temperature,
		RainPresence: o.RainPresence,
		Description:  o.Description,
		ObservedAt:   o.ObservedAt,
	}
}
