package otelbridge

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/vitalsign/vitalsign/collect"
	"github.com/vitalsign/vitalsign/vitals"
)

// Bridge is a collect.Hook that records every observation on OpenTelemetry
// instruments. Safe for concurrent use.
type Bridge struct {
	requestTotal    metric.Int64Counter
	requestErrors   metric.Int64Counter
	requestDuration metric.Float64Histogram
	gcPause         metric.Float64Histogram
	loopLag         metric.Float64Gauge
}

var _ collect.Hook = (*Bridge)(nil)

// New creates a Bridge with instruments registered on meter.
func New(meter metric.Meter) (*Bridge, error) {
	requestTotal, err := meter.Int64Counter(
		"vitalsign.requests.total",
		metric.WithDescription("Total number of observed requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	requestErrors, err := meter.Int64Counter(
		"vitalsign.requests.errors",
		metric.WithDescription("Observed requests with status >= 400"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"vitalsign.requests.duration_ms",
		metric.WithDescription("Request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	gcPause, err := meter.Float64Histogram(
		"vitalsign.gc.pause_ms",
		metric.WithDescription("Garbage-collection pause in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	loopLag, err := meter.Float64Gauge(
		"vitalsign.eventloop.lag_ms",
		metric.WithDescription("Mean scheduler wake-up delay over the last window"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Bridge{
		requestTotal:    requestTotal,
		requestErrors:   requestErrors,
		requestDuration: requestDuration,
		gcPause:         gcPause,
		loopLag:         loopLag,
	}, nil
}

// ObserveRequest records one completed request.
func (b *Bridge) ObserveRequest(status int, duration time.Duration) {
	ctx := context.Background()
	opt := metric.WithAttributes(attribute.Int("http.status_code", status))

	b.requestTotal.Add(ctx, 1, opt)
	if status >= 400 {
		b.requestErrors.Add(ctx, 1, opt)
	}
	b.requestDuration.Record(ctx, float64(duration.Microseconds())/1000, opt)
}

// ObserveGC records one garbage-collection pause.
func (b *Bridge) ObserveGC(event vitals.GCEvent) {
	b.gcPause.Record(context.Background(), event.DurationMS,
		metric.WithAttributes(attribute.String("gc.kind", event.Kind.String())))
}

// ObserveLoopLag records the mean of the latest lag window.
func (b *Bridge) ObserveLoopLag(sample vitals.EventLoopSample) {
	b.loopLag.Record(context.Background(), sample.MeanMS)
}
