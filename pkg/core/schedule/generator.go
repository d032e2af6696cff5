package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

// ErrInvalidInput indicates a malformed month or time string supplied by the
// caller. The whole batch is rejected before any entry is produced.
var ErrInvalidInput = errors.New("invalid schedule input")

// Entry is a candidate cleaning schedule entry for a single Saturday.
type Entry struct {
	LocationID    string `json:"location_id"`
	Date          string `json:"date"` // YYYY-MM-DD
	Time          string `json:"time"` // HH:MM:SS
	AssignedGroup string `json:"assigned_group"`
}

// Result holds the generated entries together with duplicate-filter counts.
type Result struct {
	Entries []Entry `json:"data"`
	Created int     `json:"created"`
	Skipped int     `json:"skipped"`
}

// groupRotation maps a Saturday's 0-based ordinal within its month to a
// cleaning group. The 5th Saturday (and beyond) is an all-hands date.
var groupRotation = [...]string{"A", "B", "C", "D"}

// GroupAll is the assignment for the 5th+ Saturday of a month.
const GroupAll = "All"

// Generate computes one candidate entry per cleaning date across the
// requested months, assigns groups by ordinal position within each month, and
// filters out dates already present in existingDates. Months are "YYYY-MM"
// strings; defaultTime is "HH:MM:SS" and is copied onto every entry.
// recurrenceRule optionally replaces the every-Saturday default with an
// RFC 5545 RRULE, evaluated within each month.
//
// All months, the default time and the recurrence rule are validated up
// front: on any malformed input the call fails with ErrInvalidInput and no
// entries are produced. An empty months list is not an error and yields an
// empty result. A nil existingDates set means nothing is considered a
// duplicate.
func Generate(locationID string, months []string, defaultTime, recurrenceRule string, existingDates map[string]bool) (*Result, error) {
	if _, err := time.Parse("15:04:05", defaultTime); err != nil {
		return nil, fmt.Errorf("%w: default time %q: %v", ErrInvalidInput, defaultTime, err)
	}

	if recurrenceRule != "" {
		if _, err := rrule.StrToRRule(recurrenceRule); err != nil {
			return nil, fmt.Errorf("%w: recurrence rule %q: %v", ErrInvalidInput, recurrenceRule, err)
		}
	}

	starts := make([]time.Time, len(months))
	for i, month := range months {
		start, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, fmt.Errorf("%w: month %q: %v", ErrInvalidInput, month, err)
		}
		starts[i] = start
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	result := &Result{Entries: []Entry{}}
	for _, start := range starts {
		days, err := cleaningDaysOfMonth(start, recurrenceRule)
		if err != nil {
			return nil, err
		}

		for ordinal, day := range days {
			group := GroupAll
			if ordinal < len(groupRotation) {
				group = groupRotation[ordinal]
			}

			date := day.Format("2006-01-02")
			if existingDates[date] {
				result.Skipped++
				continue
			}

			result.Entries = append(result.Entries, Entry{
				LocationID:    locationID,
				Date:          date,
				Time:          defaultTime,
				AssignedGroup: group,
			})
			result.Created++
		}
	}

	return result, nil
}

// cleaningDaysOfMonth enumerates the cleaning dates of the month containing
// start, ascending. An empty recurrenceRule means every Saturday; otherwise
// the rule is evaluated with the month as its window. start must be the first
// day of the month at midnight UTC.
func cleaningDaysOfMonth(start time.Time, recurrenceRule string) ([]time.Time, error) {
	lastDay := start.AddDate(0, 1, -1)

	if recurrenceRule == "" {
		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.SA},
			Dtstart:   start,
			Until:     lastDay,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build recurrence rule for %s: %w", start.Format("2006-01"), err)
		}
		return rule.All(), nil
	}

	rule, err := rrule.StrToRRule(recurrenceRule)
	if err != nil {
		return nil, fmt.Errorf("%w: recurrence rule %q: %v", ErrInvalidInput, recurrenceRule, err)
	}
	rule.DTStart(start)
	rule.Until(lastDay)

	return rule.All(), nil
}
