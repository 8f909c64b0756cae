package ctxutil

import "context"

type traceKey struct{}

// TraceData carries the correlation ids assigned to one request. The request
// middleware writes it once; the request logger reads it back when the
// request finishes.
type TraceData struct {
	TraceID   string
	RequestID string
}

// WithTraceData returns a context carrying td.
func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceKey{}, td)
}

// GetTraceData returns the trace data stored on ctx, nil when absent.
func GetTraceData(ctx context.Context) *TraceData {
	td, _ := ctx.Value(traceKey{}).(*TraceData)
	return td
}
