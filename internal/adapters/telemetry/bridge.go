package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/scorebook/internal/core/ports"
)

// LogBridge implements sdktrace.SpanProcessor and reports finished spans
// through the logger at debug level.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// NewProvider returns a tracer provider that reports spans to logger.
func NewProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewLogBridge(logger)))
}

// OnStart is called when a span starts.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}
	b.logger.Debug(FormatSpan(s))
}

// Shutdown is called when the SDK shuts down.
func (b *LogBridge) Shutdown(context.Context) error {
	return nil
}

// ForceFlush is a no-op, spans are reported as they end.
func (b *LogBridge) ForceFlush(context.Context) error {
	return nil
}

// FormatSpan renders a finished span on one line: name, duration, attributes and status.
func FormatSpan(s sdktrace.ReadOnlySpan) string {
	var sb strings.Builder
	sb.WriteString("span ")
	sb.WriteString(s.Name())
	fmt.Fprintf(&sb, " took=%s", s.EndTime().Sub(s.StartTime()))

	for _, kv := range s.Attributes() {
		fmt.Fprintf(&sb, " %s=%s", kv.Key, kv.Value.Emit())
	}

	if st := s.Status(); st.Code == codes.Error {
		fmt.Fprintf(&sb, " error=%q", st.Description)
	}
	return sb.String()
}
