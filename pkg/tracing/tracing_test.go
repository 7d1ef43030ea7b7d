package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpan_WithoutTracerIsNoop(t *testing.T) {
	SetTracer(nil)

	ctx, span := StartSpan(context.Background(), "noop")
	defer span.End()

	assert.Equal(t, "", GetTraceID(ctx))
}

func TestStartSpan_WithoutTracerLeavesParentOpen(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	parentCtx, parent := tp.Tracer("test").Start(context.Background(), "http.request")
	SetTracer(nil)

	ctx, span := StartSpan(parentCtx, "usecase.Design")
	span.End()

	assert.Empty(t, recorder.Ended())
	assert.Equal(t, parent.SpanContext().TraceID().String(), GetTraceID(ctx))

	parent.End()
	require.Len(t, recorder.Ended(), 1)
	assert.Equal(t, "http.request", recorder.Ended()[0].Name())
}

func TestStartSpan_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	SetTracer(tp.Tracer("test"))
	t.Cleanup(func() { SetTracer(nil) })

	ctx, span := StartSpan(context.Background(), "usecase.Design")
	assert.NotEmpty(t, GetTraceID(ctx))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "usecase.Design", ended[0].Name())
}

func TestInit_DisabledIsNoop(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestClampRatio(t *testing.T) {
	assert.Equal(t, 0.0, clampRatio(-1))
	assert.Equal(t, 1.0, clampRatio(3))
	assert.Equal(t, 0.25, clampRatio(0.25))
}
