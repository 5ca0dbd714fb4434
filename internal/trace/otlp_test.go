package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"greetcard/internal/card"
)

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, tp
}

func spanNames(spans []sdktrace.ReadOnlySpan) []string {
	names := make([]string, 0, len(spans))
	for _, s := range spans {
		names = append(names, s.Name())
	}
	return names
}

func TestPhaseTracer_SpanPerPhase(t *testing.T) {
	sr, tp := newRecorder(t)
	pt := NewPhaseTracerWithProvider(tp, "session-1")

	s := card.New("x", 1, card.WithTransitionHook(pt.PhaseChanged))
	_, _ = s.Proceed()
	require.True(t, s.OpenGift())
	pt.Effect(card.EffectFireworks)
	require.True(t, s.ShowCake())
	require.True(t, s.CutCake())
	require.True(t, s.CloseMessages())
	require.True(t, s.CloseGallery())
	require.NoError(t, pt.Shutdown(context.Background()))

	ended := sr.Ended()
	assert.Equal(t, []string{
		"card.phase Cover",
		"card.phase Reveal",
		"card.phase Messages",
		"card.phase Gallery",
		"card.session",
	}, spanNames(ended))

	root := ended[len(ended)-1]
	for _, s := range ended[:len(ended)-1] {
		assert.Equal(t, root.SpanContext().SpanID(), s.Parent().SpanID(), "phase spans are children of the session")
		assert.Contains(t, s.Attributes(), attribute.String("greetcard.session.id", "session-1"))
	}

	reveal := ended[1]
	require.Len(t, reveal.Events(), 1)
	assert.Equal(t, "card.effect", reveal.Events()[0].Name)
}

func TestPhaseTracer_ShutdownMidSession(t *testing.T) {
	sr, tp := newRecorder(t)
	pt := NewPhaseTracerWithProvider(tp, "s")
	pt.PhaseChanged(card.PhaseCover, card.PhaseReveal)
	pt.ImageFallback("https://example.invalid/a.png")
	require.NoError(t, pt.Shutdown(context.Background()))
	require.NoError(t, pt.Shutdown(context.Background()))

	assert.Equal(t, []string{"card.phase Cover", "card.phase Reveal", "card.session"}, spanNames(sr.Ended()))
}

func TestNewPhaseTracer_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	pt, err := NewPhaseTracer(context.Background(), "s")
	require.NoError(t, err)
	assert.Nil(t, pt.provider)
	pt.PhaseChanged(card.PhaseCover, card.PhaseReveal)
	assert.NoError(t, pt.Shutdown(context.Background()))
}
