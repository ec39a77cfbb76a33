package feed

import (
	"context"

	"github.com/gabapcia/chainscope/internal/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/gabapcia/chainscope/internal/feed"

type metrics struct {
	accepted   metric.Int64Counter
	rejected   metric.Int64Counter
	windowSize metric.Int64Histogram
}

func newMetrics(meter metric.Meter) *metrics {
	if meter == nil {
		meter = otel.Meter(meterName)
	}

	accepted, err := meter.Int64Counter("feed.tx.accepted",
		metric.WithDescription("Live transactions admitted into the feed window"))
	if err != nil {
		logger.Warn(context.Background(), "feed metric disabled", "metric.name", "feed.tx.accepted", "error", err)
		accepted, _ = noop.Meter{}.Int64Counter("feed.tx.accepted")
	}

	rejected, err := meter.Int64Counter("feed.tx.rejected",
		metric.WithDescription("Live transactions rejected by the admission check"))
	if err != nil {
		logger.Warn(context.Background(), "feed metric disabled", "metric.name", "feed.tx.rejected", "error", err)
		rejected, _ = noop.Meter{}.Int64Counter("feed.tx.rejected")
	}

	windowSize, err := meter.Int64Histogram("feed.window.size",
		metric.WithDescription("Number of rows in the feed window after each change"))
	if err != nil {
		logger.Warn(context.Background(), "feed metric disabled", "metric.name", "feed.window.size", "error", err)
		windowSize, _ = noop.Meter{}.Int64Histogram("feed.window.size")
	}

	return &metrics{
		accepted:   accepted,
		rejected:   rejected,
		windowSize: windowSize,
	}
}

func (m *metrics) recordIngest(ctx context.Context, accepted bool, size int) {
	if !accepted {
		m.rejected.Add(ctx, 1)
		return
	}

	m.accepted.Add(ctx, 1)
	m.windowSize.Record(ctx, int64(size))
}

func (m *metrics) recordSeed(ctx context.Context, size int) {
	m.windowSize.Record(ctx, int64(size))
}
