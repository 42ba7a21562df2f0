// Package external provides adapters for external services:
// the OpenWeatherMap client and the cache backends used for report results.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weatherstats.app/internal/ports"
	"weatherstats.app/pkg/errors"
)

const (
	defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultHTTPTimeout           = 10 * time.Second
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
	// Client overrides the default http.Client
	Client HTTPClient
}

// OpenWeatherMapResponse represents the fields of the current weather response that are stored.
// Required fields are pointers so a body that omits them can be told apart from a zero value.
type OpenWeatherMapResponse struct {
	Dt  *int64 `json:"dt"`
	Sys *struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Rain map[string]float64 `json:"rain"`
}

// missingFields lists the required fields absent from the response
func (r *OpenWeatherMapResponse) missingFields() []string {
	var missing []string
	if r.Dt == nil {
		missing = append(missing, "dt")
	}
	if r.Sys == nil || r.Sys.Country == "" {
		missing = append(missing, "sys.country")
	}
	if r.Main == nil || r.Main.Temp == nil {
		missing = append(missing, "main.temp")
	}
	return missing
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) ports.WeatherProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}

	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// FetchObservation retrieves the current conditions for a city
func (p *OpenWeatherMapProviderAdapter) FetchObservation(ctx context.Context, city string) (*ports.ObservationData, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", p.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/weather?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build OpenWeatherMap request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call OpenWeatherMap", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("OpenWeatherMap returned status %d", resp.StatusCode), nil)
	}

	var apiResp OpenWeatherMapResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode OpenWeatherMap response", err)
	}
	if missing := apiResp.missingFields(); len(missing) > 0 {
		return nil, errors.NewExternalAPIError(
			fmt.Sprintf("malformed OpenWeatherMap response for %s: missing %s", city, strings.Join(missing, ", ")), nil)
	}

	var description string
	if len(apiResp.Weather) > 0 {
		description = apiResp.Weather[0].Description
	}

	return &ports.ObservationData{
		Country:      apiResp.Sys.Country,
		City:         city,
		Temperature:  *apiResp.Main.Temp,
		RainPresence: apiResp.Rain["1h"] > 0,
		Description:  description,
		ObservedAt:   time.Unix(*apiResp.Dt, 0).UTC(),
	}, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}
