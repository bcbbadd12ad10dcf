package exporter

import (
	"fmt"

	"github.com/volatiletech/null/v8"
)

// formatFloat formats a float64 value for CSV output with exactly 2 decimal places
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatNullFloat formats an optional average. Absent values become the
// empty string so a missing subject never reads as 0.00 in a report.
func formatNullFloat(f null.Float64) string {
	if !f.Valid {
		return ""
	}
	return formatFloat(f.Float64)
}

// formatInt formats an int64 value for CSV output
func formatInt(i int64) string {
	return fmt.Sprintf("%d", i)
}
