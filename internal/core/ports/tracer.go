package ports

import "context"

// Span is a single traced operation.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Span interface {
	// End completes the span.
	End()
	// RecordError records err on the span and marks it failed.
	RecordError(err error)
	// SetAttribute attaches a key/value pair to the span.
	SetAttribute(key string, value any)
}

// Tracer starts spans.
type Tracer interface {
	// Start starts a span named name as a child of any span in ctx.
	Start(ctx context.Context, name string) (context.Context, Span)
}
