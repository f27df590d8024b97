package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracer_RecordsThroughGlobalProvider(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	rec := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(trace.NewTracerProvider(trace.WithSpanProcessor(rec)))

	_, span := Tracer().Start(context.Background(), "world.tick")
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "world.tick", ended[0].Name())
	assert.Equal(t, TracerName, ended[0].InstrumentationScope().Name)
}

func TestInitTelemetry_ShutdownWithoutSpans(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	shutdown, err := InitTelemetry(context.Background(), Options{
		ServiceName: "voxelsim-test",
		Endpoint:    "127.0.0.1:4318",
		RunID:       "run-1",
	})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
