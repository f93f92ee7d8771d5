package middleware

import (
	"sort"
	"time"

	"echo-api/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggingMiddleware - HTTP 요청 로깅 미들웨어
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// 요청 처리
		c.Next()

		// 요청 처리 후 로깅
		logger.Logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Strings("query_keys", queryKeys(c)),
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// queryKeys returns the sorted parameter names of the request query.
// Values are left out so echoed messages never reach the logs.
func queryKeys(c *gin.Context) []string {
	query := c.Request.URL.Query()
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
