package ioc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

func TestNewTracerProvider(t *testing.T) {
	tp, err := NewTracerProvider(TraceConfig{ServiceName: "hirehub-test"})
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, tp.Shutdown(context.Background()))
	}()
	_, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	assert.True(t, span.SpanContext().IsSampled())
	ro, ok := span.(trace.ReadOnlySpan)
	require.True(t, ok)
	assert.Contains(t, ro.Resource().Attributes(), semconv.ServiceName("hirehub-test"))
}

func TestSampler(t *testing.T) {
	testCases := []struct {
		name  string
		ratio float64
		want  string
	}{
		{name: "默认全量", ratio: 0, want: "AlwaysOnSampler"},
		{name: "超过 1 也是全量", ratio: 2, want: "AlwaysOnSampler"},
		{name: "按比例", ratio: 0.25, want: "TraceIDRatioBased{0.25}"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, sampler(tc.ratio).Description(), tc.want)
		})
	}
}
