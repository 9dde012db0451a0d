package telemetry

import (
	"context"

	"github.com/mwatts/anyctl/internal/core/ports"
)

// NoOpTracer discards all spans. Useful for tests and embeddings that do
// not want tracing overhead.
type NoOpTracer struct{}

// NewNoOpTracer creates a tracer that records nothing.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start returns the context unchanged and a span that does nothing.
func (*NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}
