package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const ServiceName = "echo-api"

var healthStatus = HealthStatus{
	Status:  "healthy",
	Service: ServiceName,
}

// HealthCheck returns the health status of the service
// GET /health
//
// Response:
//   200: {"status": "healthy", "service": "echo-api"}
func HealthCheck(c *gin.Context) {
	startTime := time.Now()

	c.JSON(http.StatusOK, healthStatus)

	recordSuccessMetrics(EndpointHealth, startTime)
}
