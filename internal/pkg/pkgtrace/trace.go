package pkgtrace

import (
	"context"
	"io"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentation = "github.com/Wildcard209/UUID-Generator"

var (
	mu       sync.Mutex
	provider *sdktrace.TracerProvider
)

// Init installs a tracer provider writing spans to w. Calling Init again
// replaces the previous provider after flushing it.
func Init(ctx context.Context, serviceName, serviceVersion string, w io.Writer) error {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return err
	}
	return InitWithExporter(ctx, serviceName, serviceVersion, exporter)
}

// InitWithExporter installs a tracer provider using the supplied exporter.
func InitWithExporter(ctx context.Context, serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
	)
	if err != nil {
		return err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
	)

	mu.Lock()
	prev := provider
	provider = tp
	mu.Unlock()

	otel.SetTracerProvider(tp)

	if prev != nil {
		return prev.Shutdown(ctx)
	}
	return nil
}

// Shutdown flushes and stops the installed provider, if any.
func Shutdown(ctx context.Context) error {
	mu.Lock()
	tp := provider
	provider = nil
	mu.Unlock()

	if tp == nil {
		return nil
	}
	return tp.Shutdown(ctx)
}

// Span wraps an OpenTelemetry span.
type Span struct {
	span trace.Span
}

// StartSpan starts a span named name. kind is "SERVER", "CLIENT" or anything
// else for an internal span.
func StartSpan(ctx context.Context, name, kind string) (context.Context, *Span) {
	spanKind := trace.SpanKindInternal
	switch kind {
	case "SERVER":
		spanKind = trace.SpanKindServer
	case "CLIENT":
		spanKind = trace.SpanKindClient
	}

	ctx, span := otel.Tracer(instrumentation).Start(ctx, name, trace.WithSpanKind(spanKind))
	return ctx, &Span{span: span}
}

// SetAttributes attaches string attributes to the span.
func (s *Span) SetAttributes(attrs map[string]string) {
	if s == nil || len(attrs) == 0 {
		return
	}
	kv := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		kv = append(kv, attribute.String(k, v))
	}
	s.span.SetAttributes(kv...)
}

// SetStatus records err on the span, or an OK status when err is nil.
func (s *Span) SetStatus(err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
		return
	}
	s.span.SetStatus(codes.Ok, "")
}

// SetStatusFromHTTPCode maps an HTTP response code onto the span status.
func (s *Span) SetStatusFromHTTPCode(code int) {
	if s == nil {
		return
	}

	s.span.SetAttributes(attribute.Int("http.status_code", code))
	switch {
	case code >= 100 && code < 400:
		s.span.SetStatus(codes.Ok, "")
	case code >= 400 && code < 500:
		s.span.SetStatus(codes.Error, "client error")
	case code >= 500:
		s.span.SetStatus(codes.Error, "server error")
	}
}

// End finishes the span.
func (s *Span) End() {
	if s == nil {
		return
	}
	s.span.End()
}
