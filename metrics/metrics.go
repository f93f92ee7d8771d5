package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal - 엔드포인트별 요청 수
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "echo_service_requests_total",
			Help: "Total number of requests to the echo service",
		},
		[]string{"endpoint", "status"},
	)

	// RequestDuration - 요청 처리 시간
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "echo_service_request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// MessageLength - 에코된 메시지 길이 (문자 수)
	MessageLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "echo_service_message_length_chars",
			Help:    "Length of echoed messages in characters",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	// ValidationErrors - 파라미터 검증 실패 수
	ValidationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "echo_service_validation_errors_total",
			Help: "Total number of rejected requests by offending field",
		},
		[]string{"field"},
	)
)
