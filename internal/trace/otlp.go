// Package trace records a card session as OpenTelemetry spans, one per
// phase, under a root session span.
package trace

import (
	"context"
	"os"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"greetcard/internal/card"
)

const tracerName = "greetcard/card"

// PhaseTracer turns sequencer transitions into spans.
type PhaseTracer struct {
	provider  *sdktrace.TracerProvider // nil unless we own an exporter
	tracer    oteltrace.Tracer
	sessionID string

	// mu guards the spans; image fallbacks arrive from loader goroutines.
	mu      sync.Mutex
	rootCtx context.Context
	root    oteltrace.Span
	current oteltrace.Span
}

// NewPhaseTracer exports to OTEL_EXPORTER_OTLP_ENDPOINT when it is set and
// records nothing otherwise.
func NewPhaseTracer(ctx context.Context, sessionID string) (*PhaseTracer, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return NewPhaseTracerWithProvider(noop.NewTracerProvider(), sessionID), nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "greetcard"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	t := NewPhaseTracerWithProvider(provider, sessionID)
	t.provider = provider
	return t, nil
}

// NewPhaseTracerWithProvider records spans with tp. The caller keeps
// ownership of tp. A nil tp records nothing.
func NewPhaseTracerWithProvider(tp oteltrace.TracerProvider, sessionID string) *PhaseTracer {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	t := &PhaseTracer{
		tracer:    tp.Tracer(tracerName),
		sessionID: sessionID,
	}
	t.rootCtx, t.root = t.tracer.Start(context.Background(), "card.session",
		oteltrace.WithAttributes(attribute.String("greetcard.session.id", sessionID)))
	t.startPhase(card.PhaseCover)
	return t
}

// PhaseChanged ends the span of from and opens one for to. It matches the
// sequencer's transition hook signature.
func (t *PhaseTracer) PhaseChanged(from, to card.Phase) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current != nil {
		t.current.SetAttributes(attribute.String("greetcard.phase.next", to.String()))
		t.current.End()
		t.current = nil
	}
	if to.Terminal() {
		t.root.AddEvent("card.done")
		return
	}
	t.startPhase(to)
}

// Effect records a decorative effect on the current phase span.
func (t *PhaseTracer) Effect(e card.Effect) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return
	}
	t.current.AddEvent("card.effect", oteltrace.WithAttributes(attribute.String("greetcard.effect", e.String())))
}

// ImageFallback records that url failed and a placeholder was shown.
func (t *PhaseTracer) ImageFallback(url string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	span := t.current
	if span == nil {
		span = t.root
	}
	if span == nil {
		return
	}
	span.AddEvent("card.image.fallback", oteltrace.WithAttributes(attribute.String("greetcard.image.url", url)))
}

func (t *PhaseTracer) startPhase(p card.Phase) {
	_, t.current = t.tracer.Start(t.rootCtx, "card.phase "+p.String(),
		oteltrace.WithAttributes(
			attribute.String("greetcard.phase", p.String()),
			attribute.String("greetcard.session.id", t.sessionID),
		))
}

// Shutdown ends open spans and flushes the exporter, if any.
func (t *PhaseTracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	if t.current != nil {
		t.current.End()
		t.current = nil
	}
	if t.root != nil {
		t.root.End()
		t.root = nil
	}
	t.mu.Unlock()
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
