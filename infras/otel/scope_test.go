package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cleanrate/infras/otel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, fn func(scope otel.Scope)) trace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "rating.Submit")
	scope := otel.NewScope(span)
	fn(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return spans[0]
}

func TestScope_SetAttributes(t *testing.T) {
	ratedAt := time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)

	span := record(t, func(scope otel.Scope) {
		scope.SetAttribute("rating", 8)
		scope.SetAttributes(map[string]any{
			"floors":   []string{"3F", "4F"},
			"rated_at": ratedAt,
			"average":  decimal.RequireFromString("7.5"),
			"admin":    true,
		})
	})

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, int64(8), attrs["rating"].AsInt64())
	assert.Equal(t, []string{"3F", "4F"}, attrs["floors"].AsStringSlice())
	assert.Equal(t, "2026-10-19T08:30:00Z", attrs["rated_at"].AsString())
	assert.Equal(t, "7.5", attrs["average"].AsString())
	assert.True(t, attrs["admin"].AsBool())
}

func TestScope_TraceIfError(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.TraceIfError(nil)
	})
	assert.Equal(t, codes.Unset, span.Status().Code)

	span = record(t, func(scope otel.Scope) {
		scope.AddEvent("Rating added")
		scope.TraceIfError(errors.New("deadlock detected"))
	})
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "deadlock detected", span.Status().Description)
	require.Len(t, span.Events(), 2)
	assert.Equal(t, "Rating added", span.Events()[0].Name)
}
