package ports

import (
	"context"
	"time"
)

// GroupBy is the column grouped statistics are computed over.
type GroupBy string

const (
	GroupByCity    GroupBy = "city"
	GroupByCountry GroupBy = "country"
)

// Extreme selects the highest or lowest temperature.
type Extreme string

const (
	ExtremeMax Extreme = "max"
	ExtremeMin Extreme = "min"
)

// GroupStatsData is one row of a grouped temperature aggregate.
// StdDevTemp is nil when the group holds fewer than two samples.
type GroupStatsData struct {
	Key        string
	MaxTemp    float64
	MinTemp    float64
	StdDevTemp *float64
	Samples    int64
}

// ExtremeData is the city holding a temperature extreme.
type ExtremeData struct {
	City        string
	Temperature float64
}

// ObservationRepository defines the contract for observation persistence and aggregation.
// Every window is half-open: start <= observed_at < end.
type ObservationRepository interface {
	Migrate(ctx context.Context) error
	Save(ctx context.Context, obs *ObservationData) error
	GroupStats(ctx context.Context, groupBy GroupBy, start, end time.Time) ([]GroupStatsData, error)
	TemperatureExtreme(ctx context.Context, extreme Extreme, start, end time.Time) (*ExtremeData, error)
	CountRainHours(ctx context.Context, start, end time.Time) (int64, error)
	All(ctx context.Context) ([]*ObservationData, error)
}
