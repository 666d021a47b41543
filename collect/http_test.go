package collect

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReportHandler(t *testing.T) {
	c := newTestCollector(t)
	handler := ReportHandler(c)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &top); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if _, ok := top["metrics"]; !ok {
		t.Error("missing metrics field")
	}
	if _, ok := top["summary"]; !ok {
		t.Error("missing summary field")
	}
}

func TestReportHandler_EventQuery(t *testing.T) {
	c := newTestCollector(t)
	handler := ReportHandler(c)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics?event=pageView", nil))
	}

	snap := c.Snapshot()
	if snap.Usage.PageViews != 3 {
		t.Errorf("PageViews = %d, want 3", snap.Usage.PageViews)
	}
}
