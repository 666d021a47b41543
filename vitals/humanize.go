package vitals

import "fmt"

// FormatMS renders a millisecond measurement for display. Values under one
// second render in milliseconds, larger values in seconds, both with two
// fractional digits.
func FormatMS(ms float64) string {
	if ms < 1000 {
		return fmt.Sprintf("%.2f ms", ms)
	}
	return fmt.Sprintf("%.2f s", ms/1000)
}

// FormatBytes renders a byte count in the largest unit (B, KB, MB, GB) in
// which the scaled value stays below 1024. Whole bytes render without
// fractional digits.
func FormatBytes(n uint64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	v := float64(n) / 1024
	for _, unit := range []string{"KB", "MB"} {
		if v < 1024 {
			return fmt.Sprintf("%.2f %s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.2f GB", v)
}

// FormatLoad renders the three load averages comma-joined with two
// fractional digits each.
func FormatLoad(l1, l5, l15 float64) string {
	return fmt.Sprintf("%.2f, %.2f, %.2f", l1, l5, l15)
}

// FormatUptime renders an uptime as an integral second count.
func FormatUptime(sec uint64) string {
	return fmt.Sprintf("%d s", sec)
}

// FormatPercent renders a percentage with one fractional digit.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
