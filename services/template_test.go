package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexPage(t *testing.T) {
	page := string(IndexPage())

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "Echo Service")
	assert.Contains(t, page, `id="messageInput"`)
	assert.Contains(t, page, "encodeURIComponent(message)")
	assert.Contains(t, page, "/api/echo?message=")
	assert.Contains(t, page, "e.key === 'Enter'")
	for _, field := range []string{"original_message", "echo", "timestamp"} {
		assert.Contains(t, page, "data."+field)
	}
}
