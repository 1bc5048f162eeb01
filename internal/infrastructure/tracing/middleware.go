package tracing

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// HTTPMiddleware traces every request and propagates the trace ID
// to the client via the X-Trace-ID response header.
func HTTPMiddleware(tracer *Tracer) gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := tracer.StartSpan(c.Request.Context(), c.Request.Method+" "+c.FullPath())
		span.SetTag("method", c.Request.Method)
		span.SetTag("path", c.Request.URL.Path)

		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Trace-ID", span.TraceID.String())

		c.Next()

		span.SetTag("status", strconv.Itoa(c.Writer.Status()))
		if len(c.Errors) > 0 {
			span.SetError(c.Errors.Last())
		}
		span.Finish()
	}
}
