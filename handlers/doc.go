// Package handlers provides HTTP request handlers for the echo service.
//
// Overview
//
// Handlers are organized by endpoint:
//   - page.go: HTML page served at "/"
//   - echo.go: echo endpoint at "/api/echo"
//   - health.go: health check endpoint at "/health"
//   - errors.go: validation, 404 and 405 error bodies
//
// Request Flow
//
// The echo handler follows the same steps for every request:
//   1. Record start time
//   2. Bind and validate query parameters
//   3. Build the response from the input and the current time
//   4. Log the outcome and update metrics
//
// Error Handling
//
// Errors are returned as JSON with a "detail" field:
//   - 404: Not Found (unknown path)
//   - 405: Method Not Allowed (known path, wrong method)
//   - 422: Unprocessable Entity (missing or empty required parameter)
//
// Metrics
//
// Requests are tracked with Prometheus metrics:
//   - requests_total: Total requests by endpoint and status
//   - request_duration_seconds: Request duration by endpoint
//   - message_length_chars: Length of echoed messages
//   - validation_errors_total: Rejected requests by field
package handlers
