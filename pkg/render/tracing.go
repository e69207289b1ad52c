package render

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Default tracer name for the renderer.
const defaultTracerName = "reflow"

// WithTracing starts spans around Mount and list reconciles using the
// tracer name from the global OpenTelemetry provider. An empty name uses
// "reflow".
//
// Configure the provider in main() before mounting:
//
//	otel.SetTracerProvider(tp)
//	r := render.New(tree, render.WithTracing("my-app"))
func WithTracing(name string) Option {
	if name == "" {
		name = defaultTracerName
	}
	return func(r *Renderer) {
		r.tracer = otel.Tracer(name)
	}
}

func (r *Renderer) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if r.tracer == nil {
		return ctx, noop.Span{}
	}
	return r.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
