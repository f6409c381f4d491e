package boundary

import (
	"context"

	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/discord/sorted-set-nif/internal/telemetry"
	"github.com/discord/sorted-set-nif/sortedset"
	"github.com/discord/sorted-set-nif/term"
)

// WithTelemetry returns a [Dispatch] that adds tracing, metrics, and
// logging to d, mirroring the teacher's set.WithTelemetry decorator shape.
//
// Dispatch methods take no context.Context (per SPEC_FULL.md §5), so every
// call here opens a fresh [context.Background] purely to carry the otel
// span; no caller supplies or observes it.
func WithTelemetry(
	d Dispatch,
	p trace.TracerProvider,
	m metric.MeterProvider,
	l log.LoggerProvider,
) Dispatch {
	telem := (&telemetry.Provider{
		TracerProvider: p,
		MeterProvider:  m,
		LoggerProvider: l,
	}).Recorder("github.com/discord/sorted-set-nif/boundary")

	return &instrumentedDispatch{
		Next:        d,
		Telemetry:   telem,
		OpenHandles: telem.UpDownCounter("open_handles", "{handle}", "The number of handles currently registered."),
		ValueSize:   telem.Histogram("value.size", "By", "The sizes of the terms passed to add and remove operations that completed without error."),
	}
}

type instrumentedDispatch struct {
	Next        Dispatch
	Telemetry   *telemetry.Recorder
	OpenHandles telemetry.Instrument[int64]
	ValueSize   telemetry.Instrument[int64]
}

func (d *instrumentedDispatch) New(config sortedset.Configuration) Handle {
	ctx, span := d.Telemetry.StartSpan(context.Background(), "boundary.new",
		telemetry.Int("bucket_capacity", config.BucketCapacity),
		telemetry.Int("initial_capacity", config.InitialCapacity),
	)
	defer span.End()

	h := d.Next.New(config)
	d.OpenHandles(ctx, 1)
	d.Telemetry.Info(ctx, "boundary.new.ok", "registered new container", telemetry.Stringer("handle", h))
	return h
}

func (d *instrumentedDispatch) Empty(config sortedset.Configuration) Handle {
	ctx, span := d.Telemetry.StartSpan(context.Background(), "boundary.empty",
		telemetry.Int("bucket_capacity", config.BucketCapacity),
		telemetry.Int("initial_capacity", config.InitialCapacity),
	)
	defer span.End()

	h := d.Next.Empty(config)
	d.OpenHandles(ctx, 1)
	d.Telemetry.Info(ctx, "boundary.empty.ok", "registered empty container", telemetry.Stringer("handle", h))
	return h
}

func (d *instrumentedDispatch) Release(h Handle) error {
	ctx, span := d.Telemetry.StartSpan(context.Background(), "boundary.release", telemetry.Stringer("handle", h))
	defer span.End()

	err := d.Next.Release(h)
	if err != nil {
		d.Telemetry.Error(ctx, "boundary.release.error", err)
		return err
	}

	d.OpenHandles(ctx, -1)
	d.Telemetry.Info(ctx, "boundary.release.ok", "released container reference")
	return nil
}

func (d *instrumentedDispatch) Shutdown() error {
	ctx, span := d.Telemetry.StartSpan(context.Background(), "boundary.shutdown")
	defer span.End()

	if err := d.Next.Shutdown(); err != nil {
		d.Telemetry.Error(ctx, "boundary.shutdown.error", err)
		return err
	}

	d.Telemetry.Info(ctx, "boundary.shutdown.ok", "released every remaining handle")
	return nil
}

func (d *instrumentedDispatch) AppendBucket(h Handle, raws []any) error {
	ctx, span := d.Telemetry.StartSpan(context.Background(), "boundary.append_bucket",
		telemetry.Stringer("handle", h), telemetry.Int("count", len(raws)),
	)
	defer span.End()

	if err := d.Next.AppendBucket(h, raws); err != nil {
		d.Telemetry.Error(ctx, "boundary.append_bucket.error", err)
		return err
	}

	d.Telemetry.Info(ctx, "boundary.append_bucket.ok", "appended bucket")
	return nil
}

func (d *instrumentedDispatch) Add(h Handle, raw any) (AddOutcome, error) {
	ctx, span := d.Telemetry.StartSpan(context.Background(), "boundary.add", telemetry.Stringer("handle", h))
	defer span.End()

	outcome, err := d.Next.Add(h, raw)
	if err != nil {
		d.Telemetry.Error(ctx, "boundary.add.error", err)
		return outcome, err
	}

	if t, admitErr := term.Admit(raw); admitErr == nil {
		d.ValueSize(ctx, int64(t.Size()))
	}

	span.SetAttributes(telemetry.Bool("added", outcome.Added), telemetry.Int("index", outcome.Index))
	d.Telemetry.Info(ctx, "boundary.add.ok", "dispatched add")
	return outcome, nil
}

func (d *instrumentedDispatch) Remove(h Handle, raw any) (RemoveOutcome, error) {
	ctx, span := d.Telemetry.StartSpan(context.Background(), "boundary.remove", telemetry.Stringer("handle", h))
	defer span.End()

	outcome, err := d.Next.Remove(h, raw)
	if err != nil {
		d.Telemetry.Error(ctx, "boundary.remove.error", err)
		return outcome, err
	}

	if t, admitErr := term.Admit(raw); admitErr == nil {
		d.ValueSize(ctx, int64(t.Size()))
	}

	span.SetAttributes(telemetry.Bool("removed", outcome.Removed), telemetry.Int("index", outcome.Index))
	d.Telemetry.Info(ctx, "boundary.remove.ok", "dispatched remove")
	return outcome, nil
}

func (d *instrumentedDispatch) At(h Handle, index int) (term.Term, bool, error) {
	ctx, span := d.Telemetry.StartSpan(context.Background(), "boundary.at",
		telemetry.Stringer("handle", h), telemetry.Int("index", index),
	)
	defer span.End()

	t, found, err := d.Next.At(h, index)
	if err != nil {
		d.Telemetry.Error(ctx, "boundary.at.error", err)
		return t, found, err
	}

	span.SetAttributes(telemetry.Bool("found", found))
	return t, found, nil
}

func (d *instrumentedDispatch) Slice(h Handle, start, amount int) ([]term.Term, error) {
	ctx, span := d.Telemetry.StartSpan(context.Background(), "boundary.slice",
		telemetry.Stringer("handle", h), telemetry.Int("start", start), telemetry.Int("amount", amount),
	)
	defer span.End()

	out, err := d.Next.Slice(h, start, amount)
	if err != nil {
		d.Telemetry.Error(ctx, "boundary.slice.error", err)
		return out, err
	}

	span.SetAttributes(telemetry.Int("returned", len(out)))
	return out, nil
}

func (d *instrumentedDispatch) FindIndex(h Handle, raw any) (int, bool, error) {
	ctx, span := d.Telemetry.StartSpan(context.Background(), "boundary.find_index", telemetry.Stringer("handle", h))
	defer span.End()

	idx, found, err := d.Next.FindIndex(h, raw)
	if err != nil {
		d.Telemetry.Error(ctx, "boundary.find_index.error", err)
		return idx, found, err
	}

	span.SetAttributes(telemetry.Bool("found", found))
	return idx, found, nil
}

func (d *instrumentedDispatch) Size(h Handle) (int, error) {
	ctx, span := d.Telemetry.StartSpan(context.Background(), "boundary.size", telemetry.Stringer("handle", h))
	defer span.End()

	size, err := d.Next.Size(h)
	if err != nil {
		d.Telemetry.Error(ctx, "boundary.size.error", err)
		return size, err
	}

	span.SetAttributes(telemetry.Int("size", size))
	return size, nil
}

func (d *instrumentedDispatch) ToList(h Handle) ([]term.Term, error) {
	ctx, span := d.Telemetry.StartSpan(context.Background(), "boundary.to_list", telemetry.Stringer("handle", h))
	defer span.End()

	out, err := d.Next.ToList(h)
	if err != nil {
		d.Telemetry.Error(ctx, "boundary.to_list.error", err)
		return out, err
	}

	span.SetAttributes(telemetry.Int("returned", len(out)))
	return out, nil
}

func (d *instrumentedDispatch) Debug(h Handle) (string, error) {
	ctx, span := d.Telemetry.StartSpan(context.Background(), "boundary.debug", telemetry.Stringer("handle", h))
	defer span.End()

	out, err := d.Next.Debug(h)
	if err != nil {
		d.Telemetry.Error(ctx, "boundary.debug.error", err)
		return out, err
	}
	return out, nil
}
