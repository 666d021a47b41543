package collect

import (
	"encoding/json"
	"net/http"
)

// ReportHandler serves the current snapshot and summary as JSON. The
// optional "event" query parameter is passed through as the usage event
// tag, so GET /metrics?event=pageView both records and reads.
//
// Serialization is done up front: a non-serializable value planted in the
// state by a producer is a bug and surfaces as a 500 rather than a
// truncated body.
func ReportHandler(c *Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := c.GetMetrics(r.URL.Query().Get("event"))

		body, err := json.Marshal(report)
		if err != nil {
			http.Error(w, "report serialization failed: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}
}
