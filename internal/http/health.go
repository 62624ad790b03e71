package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse is the body returned by the health probes.
type StatusResponse struct {
	Status string `json:"status"`
}

// HealthController serves the liveness and readiness probes. Both report
// process health only and never touch storage, so a degraded database
// cannot take the service out of rotation.
type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Liveness reports that the process is up.
// GET /health/liveness
func (h *HealthController) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Status: "alive"})
}

// Readiness reports that the process is able to accept traffic.
// GET /health/readiness
func (h *HealthController) Readiness(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
