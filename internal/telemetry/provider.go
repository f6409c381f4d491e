package telemetry

import (
	"context"
	"runtime/debug"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Provider provides Recorder instances scoped to particular subsystems.
//
// boundary.Dispatcher's operations are plain, context-free functions (see
// SPEC_FULL.md §5), so WithTelemetry synthesizes a fresh
// [context.Background] for every dispatched call purely to carry the span
// through the otel API, which is inherently context-shaped. No caller ever
// supplies or observes that context.
type Provider struct {
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
	LoggerProvider log.LoggerProvider
}

// Recorder records traces, metrics and logs for a particular subsystem.
type Recorder struct {
	tracer trace.Tracer
	meter  metric.Meter
	logger log.Logger

	errorCount     Instrument[int64]
	operationCount Instrument[int64]
}

// Recorder returns a new Recorder instance scoped to pkg.
func (p *Provider) Recorder(pkg string, attrs ...Attr) *Recorder {
	r := &Recorder{
		tracer: p.TracerProvider.Tracer(pkg, trace.WithInstrumentationAttributes(asAttrKeyValues(attrs)...)),
		meter:  p.MeterProvider.Meter(pkg, metric.WithInstrumentationAttributes(asAttrKeyValues(attrs)...)),
		logger: p.LoggerProvider.Logger(pkg, log.WithInstrumentationAttributes(asAttrKeyValues(attrs)...)),
	}

	r.errorCount = r.Counter("errors", "{error}", "The number of errors that have occurred.")
	r.operationCount = r.Counter("operations", "{operation}", "The number of operations that have been dispatched.")

	return r
}

// Span wraps a [trace.Span] with the subset of behavior the boundary
// decorators use.
type Span struct {
	trace.Span
}

// SetAttributes adds attrs to the span.
func (s Span) SetAttributes(attrs ...Attr) {
	s.Span.SetAttributes(asAttrKeyValues(attrs)...)
}

// StartSpan starts a new span named name, scoped to ctx, and counts it as
// one dispatched operation.
func (r *Recorder) StartSpan(ctx context.Context, name string, attrs ...Attr) (context.Context, Span) {
	ctx, span := r.tracer.Start(ctx, name, trace.WithAttributes(asAttrKeyValues(attrs)...))
	r.operationCount(ctx, 1)
	return ctx, Span{span}
}

// Info logs an informational message to the log and as a span event.
func (r *Recorder) Info(ctx context.Context, event, message string, body ...Attr) {
	r.log(ctx, log.SeverityInfo, event, message, nil, body)
}

// Error logs an error message, marks the current span as failed, and
// increments the errors counter.
func (r *Recorder) Error(ctx context.Context, event string, err error, body ...Attr) {
	r.log(ctx, log.SeverityError, event, err.Error(), err, body)
	r.errorCount(ctx, 1)

	span := trace.SpanFromContext(ctx)
	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)
}

func (r *Recorder) log(ctx context.Context, severity log.Severity, event, message string, err error, body []Attr) {
	if !r.logger.Enabled(ctx, log.EnabledParameters{Severity: severity}) {
		return
	}

	span := trace.SpanFromContext(ctx)
	span.AddEvent(event, trace.WithAttributes(asAttrKeyValues(body)...))

	var rec log.Record
	rec.SetEventName(event)
	rec.SetSeverity(severity)
	rec.AddAttributes(log.String("message", message))

	if err != nil {
		rec.AddAttributes(log.String("error", err.Error()))
	}
	if len(body) != 0 {
		rec.SetBody(log.MapValue(asLogKeyValues(body)...))
	}

	r.logger.Emit(ctx, rec)
}

func buildInfoVersion(modulePath string) string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep.Path == modulePath {
				return dep.Version
			}
		}
	}
	return "unknown"
}
