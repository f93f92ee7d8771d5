package handlers

// EchoRequest - Echo 엔드포인트 쿼리 파라미터
// An empty message is treated the same as a missing one.
type EchoRequest struct {
	Message string `form:"message" binding:"required"`
}

// HealthStatus - Health 엔드포인트 응답
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ValidationErrorItem describes one rejected input.
type ValidationErrorItem struct {
	Type  string   `json:"type"`
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Input any      `json:"input"`
}

// ValidationErrorResponse is the 422 response body.
type ValidationErrorResponse struct {
	Detail []ValidationErrorItem `json:"detail"`
}

// ErrorResponse is the body of 404 and 405 responses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
