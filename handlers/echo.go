package handlers

import (
	"errors"
	"net/http"
	"time"

	"echo-api/logger"
	"echo-api/metrics"
	"echo-api/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// LogFieldKeys for structured logging
	LogFieldEndpoint   = "endpoint"
	LogFieldLength     = "length"
	LogFieldDurationMs = "duration_ms"

	EndpointPage   = "page"
	EndpointEcho   = "echo"
	EndpointHealth = "health"

	// Metric status label values
	LabelSuccess = "success"
	LabelError   = "error"
)

// now is the clock used for echo timestamps.
var now = time.Now

// Echo - Echo 엔드포인트 핸들러
// GET /api/echo?message=Hello%20World
func Echo(c *gin.Context) {
	// 요청 시작 시간 기록
	startTime := time.Now()

	req, err := bindEchoRequest(c)
	if err != nil {
		handleEchoValidationError(c, startTime, err)
		return
	}

	result := services.NewEchoResult(req.Message, now())

	logEchoSuccess(&result, startTime)
	metrics.MessageLength.Observe(float64(result.Length))
	recordSuccessMetrics(EndpointEcho, startTime)

	c.JSON(http.StatusOK, result)
}

// handleEchoValidationError answers 422 with the validation detail
func handleEchoValidationError(c *gin.Context, startTime time.Time, err error) {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		verr = newValueError(err)
	}

	fields := make([]string, 0, len(verr.Items))
	for _, item := range verr.Items {
		field := item.Loc[len(item.Loc)-1]
		fields = append(fields, field)
		metrics.ValidationErrors.WithLabelValues(field).Inc()
	}

	logger.Logger.Warn("Echo request rejected",
		zap.String(LogFieldEndpoint, EndpointEcho),
		zap.Strings("fields", fields),
		zap.Error(err),
	)
	metrics.RequestsTotal.WithLabelValues(EndpointEcho, LabelError).Inc()
	metrics.RequestDuration.WithLabelValues(EndpointEcho).Observe(time.Since(startTime).Seconds())

	c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: verr.Items})
}

// logEchoSuccess logs the echoed length; message content is not logged
func logEchoSuccess(result *services.EchoResult, startTime time.Time) {
	logger.Logger.Info("Echo request served",
		zap.String(LogFieldEndpoint, EndpointEcho),
		zap.Int(LogFieldLength, result.Length),
		zap.Float64(LogFieldDurationMs, float64(time.Since(startTime).Microseconds())/1000),
	)
}

// recordSuccessMetrics records success metrics
func recordSuccessMetrics(endpoint string, startTime time.Time) {
	metrics.RequestsTotal.WithLabelValues(endpoint, LabelSuccess).Inc()
	metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
}
