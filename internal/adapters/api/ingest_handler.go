package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherstats.app/internal/adapters/infrastructure"
	"weatherstats.app/internal/ports"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// postIngest runs one ingestion pass over the configured cities.
// Per-city failures are reported in the body, not through the status code.
func (s *HTTPServerAdapter) postIngest(c *gin.Context) {
	result := s.ingestUseCase.IngestConfigured(c.Request.Context())
	s.logger.Info("Ingestion triggered over HTTP",
		ports.F("succeeded", result.Succeeded),
		ports.F("failed", result.Failed))
	c.JSON(http.StatusOK, result)
}

func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	if !infrastructure.Healthy(results) {
		s.logger.Warn("Health check failed", ports.F("components", infrastructure.Unhealthy(results)))
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Components: results})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Components: results})
}
