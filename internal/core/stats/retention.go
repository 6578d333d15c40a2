package stats

import "time"

// DefaultRetentionDays is the width of the hot-authoritative window.
const DefaultRetentionDays = 7

// Threshold returns the oldest hot-authoritative day (YYYY-MM-DD) for the given
// clock reading: current date minus the retention window. Days at or after the
// threshold are owned by the hot tier, days before it by the cold tier.
func Threshold(now time.Time, retentionDays int) string {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	return now.UTC().AddDate(0, 0, -retentionDays).Format(DateLayout)
}

// IsHot reports whether a day is hot-authoritative under the given threshold.
// ISO dates compare correctly as strings, so this is a plain ordering check:
// the threshold day itself is still hot, one day older is cold.
func IsHot(day, threshold string) bool {
	return day >= threshold
}
