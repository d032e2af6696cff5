package stats

import (
	"fmt"
	"time"
)

// allTimeStart is the fixed window start for the "all" range. Nothing in the
// system predates the launch of online tracking.
var allTimeStart = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// ResolveRange maps a named range to a concrete inclusive window ending now.
// Accepted ranges are "week" (trailing 7 days), "month" (trailing 30 days),
// "year" (trailing 365 days) and "all".
func ResolveRange(name string, now time.Time) (time.Time, time.Time, error) {
	end := now.UTC()
	switch name {
	case "week":
		return end.AddDate(0, 0, -7), end, nil
	case "month":
		return end.AddDate(0, 0, -30), end, nil
	case "year":
		return end.AddDate(0, 0, -365), end, nil
	case "all":
		return allTimeStart, end, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown stats range %q", name)
	}
}
