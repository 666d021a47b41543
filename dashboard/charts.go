package dashboard

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/vitalsign/vitalsign/vitals"
)

// Snapshotter yields a point-in-time copy of collected state.
// *collect.Collector satisfies it.
type Snapshotter interface {
	Snapshot() *vitals.State
}

const timeLabel = "15:04:05"

// Render writes the dashboard page for the given state to w.
func Render(s *vitals.State, w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = "vitalsign"

	page.AddCharts(
		requestDurationChart(s),
		gcPauseChart(s),
		loopLagChart(s),
		residentMemoryChart(s),
		hostLoadChart(s),
	)

	return page.Render(w)
}

// Handler serves the dashboard page from a live snapshot.
func Handler(src Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := Render(src.Snapshot(), w); err != nil {
			http.Error(w, "dashboard rendering failed: "+err.Error(), http.StatusInternalServerError)
		}
	}
}

func newLine(title, unit string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: unit}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", AxisLabel: &opts.AxisLabel{Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
	)
	return line
}

func requestDurationChart(s *vitals.State) *charts.Line {
	xLabels := make([]string, len(s.HTTP.Durations))
	data := make([]opts.LineData, len(s.HTTP.Durations))
	for i, v := range s.HTTP.Durations {
		xLabels[i] = "#" + strconv.Itoa(i+1)
		data[i] = opts.LineData{Value: v}
	}

	line := newLine("Request durations", "ms")
	line.SetXAxis(xLabels).AddSeries("", data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(true)}),
	)
	return line
}

func gcPauseChart(s *vitals.State) *charts.Line {
	xLabels := make([]string, len(s.GC))
	data := make([]opts.LineData, len(s.GC))
	for i, e := range s.GC {
		xLabels[i] = e.Timestamp.Format(timeLabel)
		data[i] = opts.LineData{Value: e.DurationMS}
	}

	line := newLine("GC pauses", "ms")
	line.SetXAxis(xLabels).AddSeries("", data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(true)}),
	)
	return line
}

func loopLagChart(s *vitals.State) *charts.Line {
	xLabels := make([]string, len(s.EventLoop))
	mean := make([]opts.LineData, len(s.EventLoop))
	p99 := make([]opts.LineData, len(s.EventLoop))
	for i, sample := range s.EventLoop {
		xLabels[i] = sample.Timestamp.Format(timeLabel)
		mean[i] = opts.LineData{Value: sample.MeanMS}
		p99[i] = opts.LineData{Value: sample.P99MS}
	}

	line := newLine("Scheduling lag", "ms")
	line.SetGlobalOptions(charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}))
	line.SetXAxis(xLabels).
		AddSeries("mean", mean).
		AddSeries("p99", p99)
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)
	return line
}

func residentMemoryChart(s *vitals.State) *charts.Line {
	xLabels := make([]string, len(s.Process))
	resident := make([]opts.LineData, len(s.Process))
	heapUsed := make([]opts.LineData, len(s.Process))
	for i, p := range s.Process {
		xLabels[i] = p.Timestamp.Format(timeLabel)
		resident[i] = opts.LineData{Value: float64(p.Memory.Resident) / (1024 * 1024)}
		heapUsed[i] = opts.LineData{Value: float64(p.Memory.HeapUsed) / (1024 * 1024)}
	}

	line := newLine("Process memory", "MB")
	line.SetGlobalOptions(charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}))
	line.SetXAxis(xLabels).
		AddSeries("resident", resident).
		AddSeries("heap used", heapUsed)
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.2)}),
	)
	return line
}

func hostLoadChart(s *vitals.State) *charts.Line {
	xLabels := make([]string, len(s.Host))
	load1 := make([]opts.LineData, len(s.Host))
	for i, h := range s.Host {
		xLabels[i] = h.Timestamp.Format(timeLabel)
		load1[i] = opts.LineData{Value: h.Load1}
	}

	line := newLine("Host load (1m)", "")
	line.SetXAxis(xLabels).AddSeries("", load1,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(true)}),
	)
	return line
}
