// Package id provides centralized ID generation for the service.
//
// IDs are prefixed UUIDs: type-specific prefixes keep logs readable
// (req_*, trace_*) and separate types prevent misuse.
package id

import (
	"fmt"

	"github.com/google/uuid"
)

// RequestID identifies an API request
type RequestID string

// TraceID identifies a trace across spans
type TraceID string

const (
	requestPrefix = "req"
	tracePrefix   = "trace"
)

// NewRequestID generates a new request ID
func NewRequestID() RequestID {
	return RequestID(fmt.Sprintf("%s_%s", requestPrefix, uuid.NewString()))
}

// NewTraceID generates a new trace ID
func NewTraceID() TraceID {
	return TraceID(fmt.Sprintf("%s_%s", tracePrefix, uuid.NewString()))
}

// String returns the string form of a RequestID
func (r RequestID) String() string { return string(r) }

// String returns the string form of a TraceID
func (t TraceID) String() string { return string(t) }
