// Package otelbridge mirrors collector observations into OpenTelemetry.
//
// The in-memory state in package collect stays the source of truth for the
// snapshot and summary views; the bridge is a one-way fan-out so the same
// observations can reach an external metrics pipeline (Prometheus scrape,
// OTLP push, stdout during development) without the collector knowing
// about exporters.
//
//	reader, _ := otelbridge.NewMetricsReader(ctx, "prometheus")
//	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
//	bridge, _ := otelbridge.New(provider.Meter("vitalsign"))
//	c, _ := collect.Attach(collect.Config{Hooks: []collect.Hook{bridge}})
package otelbridge
