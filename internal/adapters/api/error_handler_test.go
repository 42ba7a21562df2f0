package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherstats.app/pkg/errors"
)

func TestHTTPServerAdapter_HandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "validation",
			err:             errors.NewValidationError("unknown date filter \"tomorrow\""),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "unknown date filter \"tomorrow\"",
		},
		{
			name:            "wrapped_validation",
			err:             fmt.Errorf("country stats for selected_hour: %w", errors.NewValidationError("selected hour is required")),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "selected hour is required",
		},
		{
			name:            "not_found",
			err:             errors.NewNotFoundError("no observations"),
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "no observations",
		},
		{
			name:            "external_api",
			err:             errors.NewExternalAPIError("OpenWeatherMap returned status 502", nil),
			expectedStatus:  http.StatusServiceUnavailable,
			expectedMessage: "External service unavailable",
		},
		{
			name:            "database",
			err:             errors.NewDatabaseError("failed to count rain hours", fmt.Errorf("connection reset")),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
		{
			name:            "configuration",
			err:             errors.NewConfigurationError("REPORT_TIMEZONE is invalid", nil),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
		{
			name:            "plain_error",
			err:             fmt.Errorf("boom"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	server := &HTTPServerAdapter{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/test", func(c *gin.Context) { server.handleError(c, tt.err) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMessage, response.Error)
		})
	}
}
