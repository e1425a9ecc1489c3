package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("nhl-commentary-core/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan only opens a span under an existing trace.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func recordSpanError(span trace.Span, err error) {
	if err == nil || !span.IsRecording() {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// gameDateKey carries the schedule date of the game being processed so the
// date index can be updated by services that only receive a game id.
type gameDateKey struct{}

func WithGameDate(ctx context.Context, date string) context.Context {
	date = strings.TrimSpace(date)
	if date == "" {
		return ctx
	}
	return context.WithValue(ctx, gameDateKey{}, date)
}

func GameDateFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	date, _ := ctx.Value(gameDateKey{}).(string)
	return date
}
