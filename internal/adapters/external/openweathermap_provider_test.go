package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherstats.app/internal/mocks"
	"weatherstats.app/pkg/errors"
)

// Helper function to set up logger mock with variadic argument expectations
func setupLoggerMockOpenWeatherMap(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)

	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return mockLogger
}

func newOWMServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, err := w.Write([]byte(body))
		assert.NoError(t, err)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestOpenWeatherMapProvider_FetchObservation_Success(t *testing.T) {
	mockLogger := setupLoggerMockOpenWeatherMap(t)

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Rio de Janeiro", r.URL.Query().Get("q"))
		assert.Equal(t, "test-api-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{
			"dt": 1715349600,
			"sys": {"country": "BR"},
			"main": {"temp": 27.3, "humidity": 78},
			"weather": [{"description": "light rain"}, {"description": "mist"}],
			"rain": {"1h": 0.42}
		}`))
		assert.NoError(t, err)
	}))
	defer mockServer.Close()

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  "test-api-key",
		BaseURL: mockServer.URL,
		Logger:  mockLogger,
	})

	obs, err := provider.FetchObservation(context.Background(), "Rio de Janeiro")

	require.NoError(t, err)
	assert.Equal(t, "BR", obs.Country)
	assert.Equal(t, "Rio de Janeiro", obs.City)
	assert.Equal(t, 27.3, obs.Temperature)
	assert.True(t, obs.RainPresence)
	assert.Equal(t, "light rain", obs.Description)
	assert.Equal(t, time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC), obs.ObservedAt)
	assert.Equal(t, time.UTC, obs.ObservedAt.Location())
}

func TestOpenWeatherMapProvider_FetchObservation_RainPresence(t *testing.T) {
	tests := []struct {
		name     string
		rain     string
		expected bool
	}{
		{"NoRainObject", ``, false},
		{"ZeroLastHour", `, "rain": {"1h": 0}`, false},
		{"OnlyThreeHours", `, "rain": {"3h": 2.5}`, false},
		{"PositiveLastHour", `, "rain": {"1h": 1.1}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"dt": 1715349600, "sys": {"country": "GB"}, "main": {"temp": 11}, "weather": [{"description": "clouds"}]` + tt.rain + `}`
			server := newOWMServer(t, http.StatusOK, body)

			provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
				APIKey:  "k",
				BaseURL: server.URL,
				Logger:  setupLoggerMockOpenWeatherMap(t),
			})

			obs, err := provider.FetchObservation(context.Background(), "London")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, obs.RainPresence)
		})
	}
}

func TestOpenWeatherMapProvider_FetchObservation_NoWeatherList(t *testing.T) {
	server := newOWMServer(t, http.StatusOK, `{"dt": 1715349600, "sys": {"country": "GB"}, "main": {"temp": 11}}`)

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  "k",
		BaseURL: server.URL,
		Logger:  setupLoggerMockOpenWeatherMap(t),
	})

	obs, err := provider.FetchObservation(context.Background(), "London")

	require.NoError(t, err)
	assert.Empty(t, obs.Description)
}

func TestOpenWeatherMapProvider_FetchObservation_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		errText string
	}{
		{"Unauthorized", http.StatusUnauthorized, `{"message": "Invalid API key"}`, "returned status 401"},
		{"CityNotFound", http.StatusNotFound, `{"cod": "404", "message": "city not found"}`, "returned status 404"},
		{"ServerError", http.StatusInternalServerError, ``, "returned status 500"},
		{"InvalidJSON", http.StatusOK, `{"invalid": json`, "failed to decode"},
		{"MissingMain", http.StatusOK, `{"dt": 1715349600, "sys": {"country": "GB"}, "weather": [{"description": "clear sky"}]}`, "missing main.temp"},
		{"MissingTemp", http.StatusOK, `{"dt": 1715349600, "sys": {"country": "GB"}, "main": {"humidity": 70}, "weather": [{"description": "clear sky"}]}`, "missing main.temp"},
		{"MissingDt", http.StatusOK, `{"sys": {"country": "GB"}, "main": {"temp": 11}, "weather": [{"description": "clear sky"}]}`, "missing dt"},
		{"MissingSys", http.StatusOK, `{"dt": 1715349600, "main": {"temp": 11}, "weather": [{"description": "clear sky"}]}`, "missing sys.country"},
		{"OnlyDescription", http.StatusOK, `{"weather": [{"description": "clear sky"}]}`, "missing dt, sys.country, main.temp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newOWMServer(t, tt.status, tt.body)

			provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
				APIKey:  "k",
				BaseURL: server.URL,
				Logger:  setupLoggerMockOpenWeatherMap(t),
			})

			obs, err := provider.FetchObservation(context.Background(), "Atlantis")

			assert.Nil(t, obs)
			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, errors.ExternalAPIError, appErr.Type)
			assert.Contains(t, appErr.Message, tt.errText)
		})
	}
}

func TestOpenWeatherMapProvider_FetchObservation_NetworkError(t *testing.T) {
	server := newOWMServer(t, http.StatusOK, `{}`)
	baseURL := server.URL
	server.Close()

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  "k",
		BaseURL: baseURL,
		Timeout: time.Second,
		Logger:  setupLoggerMockOpenWeatherMap(t),
	})

	obs, err := provider.FetchObservation(context.Background(), "London")

	assert.Nil(t, obs)
	assert.True(t, errors.IsExternalAPIError(err))
	assert.Contains(t, err.Error(), "failed to call OpenWeatherMap")
}

func TestOpenWeatherMapProvider_FetchObservation_EmptyCity(t *testing.T) {
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey: "k",
		Logger: setupLoggerMockOpenWeatherMap(t),
	})

	obs, err := provider.FetchObservation(context.Background(), "")

	assert.Nil(t, obs)
	assert.True(t, errors.IsValidationError(err))
}

func TestOpenWeatherMapProvider_Defaults(t *testing.T) {
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{APIKey: "k"})

	owm, ok := provider.(*OpenWeatherMapProviderAdapter)
	require.True(t, ok)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5", owm.baseURL)
	assert.Equal(t, "openweathermap", provider.GetProviderName())

	client, ok := owm.client.(*http.Client)
	require.True(t, ok)
	assert.Equal(t, 10*time.Second, client.Timeout)
}
