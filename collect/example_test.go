package collect_test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vitalsign/vitalsign/collect"
)

func ExampleAttach() {
	c, err := collect.Attach(collect.Config{
		SamplingInterval: 30 * time.Second,
	})
	if err != nil {
		panic(err)
	}
	defer c.Shutdown(context.Background())

	mux := http.NewServeMux()
	mux.Handle("/metrics", collect.ReportHandler(c))

	// Instrument the application routes.
	_ = c.Middleware(mux)

	report := c.GetMetrics("")
	fmt.Println("http status:", report.Summary.HTTP.Status)
	// Output:
	// http status: OK
}

func ExampleCollector_GetMetrics() {
	c, err := collect.New(collect.Config{})
	if err != nil {
		panic(err)
	}

	c.GetMetrics(collect.PageViewTag)
	c.GetMetrics("search")
	report := c.GetMetrics("")

	fmt.Println("page views:", report.Summary.Usage.PageViews)
	fmt.Println("searches:", report.Metrics.Usage.CustomEvents.Get("search"))
	// Output:
	// page views: 1
	// searches: 1
}
