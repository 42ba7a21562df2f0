package ports

import (
	"context"
	"time"
)

// ObservationData is one normalized weather observation as exchanged with adapters.
type ObservationData struct {
	ID           uint      `json:"id"`
	Country      string    `json:"country"`
	City         string    `json:"city"`
	Temperature  float64   `json:"temperature"`
	RainPresence bool      `json:"rain_presence"`
	Description  string    `json:"weather_description"`
	ObservedAt   time.Time `json:"weather_data_date"`
}

// WeatherProvider defines the contract for current-conditions providers
type WeatherProvider interface {
	FetchObservation(ctx context.Context, city string) (*ObservationData, error)
	GetProviderName() string
}
