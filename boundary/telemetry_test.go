package boundary_test

import (
	"testing"

	lognoop "go.opentelemetry.io/otel/log/noop"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	. "github.com/discord/sorted-set-nif/boundary"
	"github.com/discord/sorted-set-nif/sortedset"
)

func TestWithTelemetry_RunsDispatchLifecycleWithoutPanicking(t *testing.T) {
	t.Parallel()

	d := WithTelemetry(
		NewDispatcher(),
		nooptrace.NewTracerProvider(),
		noopmetric.NewMeterProvider(),
		lognoop.NewLoggerProvider(),
	)

	h := d.New(sortedset.NewConfiguration(2, 2))

	if _, err := d.Add(h, 1); err != nil {
		t.Fatalf("Add() = %v", err)
	}
	if _, err := d.Add(h, 2); err != nil {
		t.Fatalf("second Add() = %v", err)
	}

	if out, err := d.Slice(h, -1, -1); err != nil || len(out) != 0 {
		t.Fatalf("Slice(-1, -1) = (%v, %v), want (empty, nil)", out, err)
	}

	if _, err := d.Remove(h, 1); err != nil {
		t.Fatalf("Remove() = %v", err)
	}

	if err := d.Shutdown(); err != nil {
		t.Fatalf("Shutdown() = %v", err)
	}
}
