// Package tracing provides lightweight request tracing.
//
// Spans are collected on a buffered channel and logged asynchronously;
// slow spans are surfaced at warn level so they stand out in production
// logs without a dedicated tracing backend.
package tracing

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/calcware/numerics/internal/shared/id"
)

type contextKey string

const (
	traceIDKey contextKey = "trace_id"
	spanIDKey  contextKey = "span_id"

	// Spans slower than this are logged at warn level.
	slowSpanThreshold = 250 * time.Millisecond
)

// Span represents a single operation in a trace
type Span struct {
	TraceID   id.TraceID
	SpanID    id.RequestID
	ParentID  id.RequestID
	Name      string
	Service   string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Tags      map[string]string
	Error     error

	tracer *Tracer
}

// Tracer manages span collection
type Tracer struct {
	service string
	logger  *zap.Logger
	spans   chan *Span
}

// New creates a new tracer instance
func New(service string, logger *zap.Logger) *Tracer {
	t := &Tracer{
		service: service,
		logger:  logger,
		spans:   make(chan *Span, 1000),
	}

	go t.collect()

	return t
}

// StartSpan creates a new span under the trace carried by ctx,
// starting a fresh trace when none exists.
func (t *Tracer) StartSpan(ctx context.Context, name string) (*Span, context.Context) {
	traceID, _ := ctx.Value(traceIDKey).(id.TraceID)
	if traceID == "" {
		traceID = id.NewTraceID()
	}

	parentID, _ := ctx.Value(spanIDKey).(id.RequestID)

	span := &Span{
		TraceID:   traceID,
		SpanID:    id.NewRequestID(),
		ParentID:  parentID,
		Name:      name,
		Service:   t.service,
		StartTime: time.Now(),
		Tags:      make(map[string]string),
		tracer:    t,
	}

	newCtx := context.WithValue(ctx, traceIDKey, traceID)
	newCtx = context.WithValue(newCtx, spanIDKey, span.SpanID)

	return span, newCtx
}

// Finish marks the span as complete and submits it for collection
func (s *Span) Finish() {
	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(s.StartTime)

	select {
	case s.tracer.spans <- s:
	default:
		// Collector buffer full; drop rather than block the request path.
	}
}

// SetTag adds a tag to the span
func (s *Span) SetTag(key, value string) {
	s.Tags[key] = value
}

// SetError records an error in the span
func (s *Span) SetError(err error) {
	s.Error = err
}

// TraceIDFromContext extracts the trace ID carried by ctx, if any
func TraceIDFromContext(ctx context.Context) (id.TraceID, bool) {
	traceID, ok := ctx.Value(traceIDKey).(id.TraceID)
	return traceID, ok
}

func (t *Tracer) collect() {
	for span := range t.spans {
		fields := []zap.Field{
			zap.String("trace_id", span.TraceID.String()),
			zap.String("span_id", span.SpanID.String()),
			zap.String("name", span.Name),
			zap.Duration("duration", span.Duration),
		}
		if span.ParentID != "" {
			fields = append(fields, zap.String("parent_id", span.ParentID.String()))
		}
		for k, v := range span.Tags {
			fields = append(fields, zap.String(k, v))
		}

		switch {
		case span.Error != nil:
			t.logger.Error("span failed", append(fields, zap.Error(span.Error))...)
		case span.Duration > slowSpanThreshold:
			t.logger.Warn("slow span", fields...)
		default:
			t.logger.Debug("span", fields...)
		}
	}
}
