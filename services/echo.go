package services

import (
	"time"
	"unicode/utf8"
)

// StatusSuccess is the status carried by every successful echo.
const StatusSuccess = "success"

const (
	timestampLayout      = "2006-01-02T15:04:05"
	timestampLayoutMicro = "2006-01-02T15:04:05.000000"
)

// EchoResult - 에코 응답
type EchoResult struct {
	OriginalMessage string `json:"original_message"`
	Echo            string `json:"echo"`
	Length          int    `json:"length"`
	Timestamp       string `json:"timestamp"`
	Status          string `json:"status"`
}

// NewEchoResult builds the echo for message at instant now.
func NewEchoResult(message string, now time.Time) EchoResult {
	return EchoResult{
		OriginalMessage: message,
		Echo:            message,
		Length:          CharCount(message),
		Timestamp:       FormatTimestamp(now),
		Status:          StatusSuccess,
	}
}

// CharCount returns the number of Unicode code points in s.
// Each byte of an invalid UTF-8 sequence counts as one character.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// FormatTimestamp renders t as naive ISO-8601 UTC with microsecond precision.
// The fractional part is omitted when it is zero.
func FormatTimestamp(t time.Time) string {
	t = t.UTC().Truncate(time.Microsecond)
	if t.Nanosecond() == 0 {
		return t.Format(timestampLayout)
	}
	return t.Format(timestampLayoutMicro)
}
