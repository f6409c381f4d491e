package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// Instrument is a callable metric instrument: calling it records a
// measurement against the backing otel instrument, tagged with attrs.
type Instrument[T int64 | float64] func(ctx context.Context, value T, attrs ...Attr)

// Counter returns a monotonic counter instrument.
func (r *Recorder) Counter(name, unit, description string) Instrument[int64] {
	c, err := r.meter.Int64Counter(name, metric.WithUnit(unit), metric.WithDescription(description))
	if err != nil {
		panic(err)
	}
	return func(ctx context.Context, value int64, attrs ...Attr) {
		c.Add(ctx, value, metric.WithAttributes(asAttrKeyValues(attrs)...))
	}
}

// UpDownCounter returns a counter instrument that may also be decremented.
func (r *Recorder) UpDownCounter(name, unit, description string) Instrument[int64] {
	c, err := r.meter.Int64UpDownCounter(name, metric.WithUnit(unit), metric.WithDescription(description))
	if err != nil {
		panic(err)
	}
	return func(ctx context.Context, value int64, attrs ...Attr) {
		c.Add(ctx, value, metric.WithAttributes(asAttrKeyValues(attrs)...))
	}
}

// Histogram returns a histogram instrument.
func (r *Recorder) Histogram(name, unit, description string) Instrument[int64] {
	h, err := r.meter.Int64Histogram(name, metric.WithUnit(unit), metric.WithDescription(description))
	if err != nil {
		panic(err)
	}
	return func(ctx context.Context, value int64, attrs ...Attr) {
		h.Record(ctx, value, metric.WithAttributes(asAttrKeyValues(attrs)...))
	}
}
