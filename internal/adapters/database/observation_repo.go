package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
	"weatherstats.app/internal/ports"
	"weatherstats.app/pkg/errors"
)

// ObservationModel represents one stored weather observation
type ObservationModel struct {
	ID           uint      `gorm:"primaryKey"`
	Country      string    `gorm:"size:8;index;not null"`
	City         string    `gorm:"index;not null"`
	Temperature  float64   `gorm:"not null"`
	RainPresence bool      `gorm:"not null;default:false"`
	Description  string    `gorm:"column:weather_description;not null"`
	ObservedAt   time.Time `gorm:"column:weather_data_date;index;not null"`
}

func (ObservationModel) TableName() string {
	return "weather_data"
}

const windowCondition = "weather_data_date >= ? AND weather_data_date < ?"

// ObservationRepositoryAdapter implements the ObservationRepository port using GORM
type ObservationRepositoryAdapter struct {
	db *gorm.DB
}

// NewObservationRepositoryAdapter creates a new observation repository adapter
func NewObservationRepositoryAdapter(db *gorm.DB) *ObservationRepositoryAdapter {
	return &ObservationRepositoryAdapter{db: db}
}

// Migrate creates or updates the weather_data table
func (r *ObservationRepositoryAdapter) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&ObservationModel{}); err != nil {
		return errors.NewDatabaseError("failed to migrate weather_data table", err)
	}
	return nil
}

// Save inserts an observation and assigns its ID
func (r *ObservationRepositoryAdapter) Save(ctx context.Context, obs *ports.ObservationData) error {
	if obs == nil {
		return errors.NewValidationError("observation cannot be nil")
	}

	model := dataToModel(obs)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.NewDatabaseError(fmt.Sprintf("failed to save observation for %s", obs.City), err)
	}

	obs.ID = model.ID
	return nil
}

type groupStatsRow struct {
	GroupKey   string
	MaxTemp    float64
	MinTemp    float64
	SumTemp    float64
	SumSquares float64
	Samples    int64
}

// GroupStats aggregates temperatures per city or country inside [start, end).
// The standard deviation is derived from sums so the same query runs on every dialect.
func (r *ObservationRepositoryAdapter) GroupStats(ctx context.Context, groupBy ports.GroupBy, start, end time.Time) ([]ports.GroupStatsData, error) {
	column, err := groupColumn(groupBy)
	if err != nil {
		return nil, err
	}

	var rows []groupStatsRow
	err = r.db.WithContext(ctx).
		Model(&ObservationModel{}).
		Select(column+" AS group_key, MAX(temperature) AS max_temp, MIN(temperature) AS min_temp, "+
			"SUM(temperature) AS sum_temp, SUM(temperature * temperature) AS sum_squares, COUNT(*) AS samples").
		Where(windowCondition, start.UTC(), end.UTC()).
		Group(column).
		Order(column).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.NewDatabaseError(fmt.Sprintf("failed to aggregate temperatures by %s", column), err)
	}

	stats := make([]ports.GroupStatsData, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, ports.GroupStatsData{
			Key:        row.GroupKey,
			MaxTemp:    row.MaxTemp,
			MinTemp:    row.MinTemp,
			StdDevTemp: sampleStdDev(row.SumTemp, row.SumSquares, row.Samples),
			Samples:    row.Samples,
		})
	}
	return stats, nil
}

type extremeRow struct {
	City        string
	ExtremeTemp float64
}

// TemperatureExtreme returns the city with the highest maximum or lowest minimum inside [start, end).
// Ties go to the alphabetically first city. A nil result means the window holds no rows.
func (r *ObservationRepositoryAdapter) TemperatureExtreme(ctx context.Context, extreme ports.Extreme, start, end time.Time) (*ports.ExtremeData, error) {
	var aggregate, direction string
	switch extreme {
	case ports.ExtremeMax:
		aggregate, direction = "MAX", "DESC"
	case ports.ExtremeMin:
		aggregate, direction = "MIN", "ASC"
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported temperature extreme: %s", extreme))
	}

	var rows []extremeRow
	err := r.db.WithContext(ctx).
		Model(&ObservationModel{}).
		Select("city, " + aggregate + "(temperature) AS extreme_temp").
		Where(windowCondition, start.UTC(), end.UTC()).
		Group("city").
		Order("extreme_temp " + direction + ", city ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.NewDatabaseError("failed to query temperature extreme", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}
	return &ports.ExtremeData{City: rows[0].City, Temperature: rows[0].ExtremeTemp}, nil
}

// CountRainHours counts observations with rain inside [start, end)
func (r *ObservationRepositoryAdapter) CountRainHours(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ObservationModel{}).
		Where(windowCondition, start.UTC(), end.UTC()).
		Where("rain_presence = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, errors.NewDatabaseError("failed to count rain hours", err)
	}
	return count, nil
}

// All returns every stored observation ordered by ID
func (r *ObservationRepositoryAdapter) All(ctx context.Context) ([]*ports.ObservationData, error) {
	var models []ObservationModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, errors.NewDatabaseError("failed to load observations", err)
	}

	result := make([]*ports.ObservationData, len(models))
	for i := range models {
		result[i] = modelToData(&models[i])
	}
	return result, nil
}

// Ping checks the database connection
func (r *ObservationRepositoryAdapter) Ping(ctx context.Context) error {
	return Ping(ctx, r.db)
}

func groupColumn(groupBy ports.GroupBy) (string, error) {
	switch groupBy {
	case ports.GroupByCity:
		return "city", nil
	case ports.GroupByCountry:
		return "country", nil
	default:
		return "", errors.NewValidationError(fmt.Sprintf("unsupported grouping: %s", groupBy))
	}
}

func sampleStdDev(sum, sumSquares float64, n int64) *float64 {
	if n < 2 {
		return nil
	}
	count := float64(n)
	variance := (sumSquares - sum*sum/count) / (count - 1)
	// rounding can push a zero variance slightly negative
	if variance < 0 {
		variance = 0
	}
	stddev := math.Sqrt(variance)
	return &stddev
}

func dataToModel(data *ports.ObservationData) *ObservationModel {
	return &ObservationModel{
		ID:           data.ID,
		Country:      data.Country,
		City:         data.City,
		Temperature:  data.Temperature,
		RainPresence: data.RainPresence,
		Description:  data.Description,
		ObservedAt:   data.ObservedAt.UTC().Truncate(time.Second),
	}
}

func modelToData(model *ObservationModel) *ports.ObservationData {
	return &ports.ObservationData{
		ID:           model.ID,
		Country:      model.Country,
		City:         model.City,
		Temperature:  model.Temperature,
		RainPresence: model.RainPresence,
		Description:  model.Description,
		ObservedAt:   model.ObservedAt.UTC(),
	}
}
