package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics bundles the engine's instruments. A nil *Metrics is accepted
// everywhere the engine threads one through.
type Metrics struct {
	ordersCommitted metric.Int64Counter
	revenue         metric.Int64Counter
	checkoutSeconds metric.Float64Histogram
	snapshotSaves   metric.Int64Counter
}

func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("poscore/engine")

	ordersCommitted, err := meter.Int64Counter("poscore.orders.committed",
		metric.WithDescription("Orders committed through checkout"))
	if err != nil {
		return nil, err
	}

	revenue, err := meter.Int64Counter("poscore.orders.revenue",
		metric.WithDescription("Revenue committed through checkout, in currency units"))
	if err != nil {
		return nil, err
	}

	checkoutSeconds, err := meter.Float64Histogram("poscore.checkout.duration",
		metric.WithDescription("Checkout duration"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	snapshotSaves, err := meter.Int64Counter("poscore.snapshot.saves",
		metric.WithDescription("Snapshot saves handed to the persistence store"))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		ordersCommitted: ordersCommitted,
		revenue:         revenue,
		checkoutSeconds: checkoutSeconds,
		snapshotSaves:   snapshotSaves,
	}, nil
}

func (m *Metrics) RecordCheckout(ctx context.Context, total int64, lines int, d time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Int("lines", lines))
	m.ordersCommitted.Add(ctx, 1, attrs)
	m.revenue.Add(ctx, total)
	m.checkoutSeconds.Record(ctx, d.Seconds())
}

func (m *Metrics) RecordSnapshotSave(ctx context.Context, err error) {
	if m == nil {
		return
	}
	m.snapshotSaves.Add(ctx, 1, metric.WithAttributes(attribute.Bool("error", err != nil)))
}
