package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequestID(t *testing.T) {
	reqID := NewRequestID()

	assert.True(t, strings.HasPrefix(reqID.String(), "req_"))
	assert.NotEqual(t, NewRequestID(), reqID)
}

func TestNewTraceID(t *testing.T) {
	traceID := NewTraceID()

	assert.True(t, strings.HasPrefix(traceID.String(), "trace_"))
	assert.NotEqual(t, NewTraceID(), traceID)
}

func TestUniqueness(t *testing.T) {
	seen := make(map[RequestID]bool)
	for i := 0; i < 1000; i++ {
		id := NewRequestID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
