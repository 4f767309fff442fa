// Package tracing provides the span abstraction used around statement execution.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/backupify/cassava/types"
)

// Tracer starts spans for statement executions.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, Span)
}

// Span captures one statement execution.
type Span interface {
	SetAttributes(attrs ...attribute.KeyValue)
	RecordError(err error)
	SetStatus(code codes.Code, description string)
	End()
}

// NopTracer returns the context unchanged with a no-op span.
type NopTracer struct{}

// StartSpan returns ctx and a span that discards everything.
func (NopTracer) StartSpan(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) SetAttributes(_ ...attribute.KeyValue) {}
func (nopSpan) RecordError(_ error)                   {}
func (nopSpan) SetStatus(_ codes.Code, _ string)      {}
func (nopSpan) End()                                  {}

// OtelTracer adapts an OpenTelemetry tracer.
type OtelTracer struct {
	tracer trace.Tracer
}

// NewOtelTracer wraps tracer, which must not be nil.
func NewOtelTracer(tracer trace.Tracer) *OtelTracer {
	return &OtelTracer{tracer: tracer}
}

// StartSpan starts a client-kind OpenTelemetry span.
func (t *OtelTracer) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	ctx, span := t.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindClient))
	return ctx, &otelSpan{span: span}
}

type otelSpan struct {
	span trace.Span
}

func (s *otelSpan) SetAttributes(attrs ...attribute.KeyValue) {
	s.span.SetAttributes(attrs...)
}

func (s *otelSpan) RecordError(err error) {
	s.span.RecordError(err)
}

func (s *otelSpan) SetStatus(code codes.Code, description string) {
	s.span.SetStatus(code, description)
}

func (s *otelSpan) End() {
	s.span.End()
}

// StatementAttributes returns the database semantic convention attributes
// for a CQL statement. Bind values are deliberately not recorded.
func StatementAttributes(cql string, argCount int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("db.system", "cassandra"),
		attribute.String("db.statement", cql),
		attribute.String("db.operation", types.KindOf(cql).String()),
		attribute.Int("db.cassandra.bind_count", argCount),
	}
}

// Finish records err (if any) on span and ends it.
func Finish(span Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
