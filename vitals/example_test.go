package vitals_test

import (
	"fmt"

	"github.com/vitalsign/vitalsign/vitals"
)

func ExampleSummarize() {
	state := vitals.NewState()
	state.HTTP.Total = 5
	state.HTTP.Errors = 2
	state.HTTP.Durations = []float64{10, 12, 9, 11, 10}

	summary := vitals.Summarize(state)

	fmt.Println("error rate:", summary.HTTP.ErrorRate)
	fmt.Println("status:", summary.HTTP.Status)
	// Output:
	// error rate: 40.0%
	// status: Needs attention
}

func ExampleFormatBytes() {
	fmt.Println(vitals.FormatBytes(1023))
	fmt.Println(vitals.FormatBytes(1024))
	fmt.Println(vitals.FormatBytes(1048576))
	// Output:
	// 1023 B
	// 1.00 KB
	// 1.00 MB
}

func ExampleNewReport() {
	state := vitals.NewState()
	state.Usage.PageViews = 3

	report := vitals.NewReport(state)

	fmt.Println("page views:", report.Summary.Usage.PageViews)
	fmt.Println("usage:", report.Summary.Usage.Status)
	fmt.Println("faults:", report.Summary.Faults.Status)
	// Output:
	// page views: 3
	// usage: User activity detected
	// faults: No runtime faults
}
