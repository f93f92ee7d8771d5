package handlers

import (
	"net/http"
	"time"

	"echo-api/services"

	"github.com/gin-gonic/gin"
)

// IndexPage serves the HTML front end.
// GET /
func IndexPage(c *gin.Context) {
	startTime := time.Now()

	c.Data(http.StatusOK, "text/html; charset=utf-8", services.IndexPage())

	recordSuccessMetrics(EndpointPage, startTime)
}
