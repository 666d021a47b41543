// Package dashboard renders collected health history as a self-contained
// HTML page of charts. It is a development and triage aid; production
// dashboards should consume the exported telemetry instead.
package dashboard
