package stats

import (
	"math"
	"sort"
	"time"

	"go.uber.org/zap"
)

const (
	// minTaskHours excludes accidental instant-assign/instant-complete clicks.
	minTaskHours = 1.0 / 60.0

	// maxCreditHours caps the credit for a single task no matter how long it
	// was left open.
	maxCreditHours = 2.0

	dateLayout = "2006-01-02"
)

// TimedTask is a single unit of cleaning work with its assignment and
// completion timestamps as stored (RFC 3339 strings, empty when absent).
type TimedTask struct {
	TaskID      string
	AssignedAt  string
	CompletedAt string
}

// DailyBucket is one day's worth of credited hours.
type DailyBucket struct {
	Date      string  `json:"date"`
	Hours     float64 `json:"hours"`
	TaskCount int     `json:"task_count"`
}

// WeeklyBucket aggregates credited hours for a Sunday-start week.
type WeeklyBucket struct {
	WeekStart string  `json:"week_start"`
	Hours     float64 `json:"hours"`
	TaskCount int     `json:"task_count"`
}

// AggregateDaily buckets task contributions by completion date over the
// inclusive window [windowStart, windowEnd]. Every calendar day in the window
// appears exactly once, zero-filled when no task completed on it. Tasks
// shorter than one minute are excluded entirely; contributions are capped at
// two hours per task; hours are rounded half-up to one decimal place per
// bucket. Tasks completing outside the window, missing a timestamp, or
// carrying an unparseable timestamp are skipped, never fatal.
func AggregateDaily(tasks []TimedTask, windowStart, windowEnd time.Time, logger *zap.Logger) []DailyBucket {
	start := truncateToDay(windowStart)
	end := truncateToDay(windowEnd)

	buckets := make(map[string]*DailyBucket)
	var order []string
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		buckets[key] = &DailyBucket{Date: key}
		order = append(order, key)
	}

	for _, task := range tasks {
		contribution, completedAt, ok := taskContribution(task, logger)
		if !ok {
			continue
		}

		key := completedAt.UTC().Format(dateLayout)
		bucket, inWindow := buckets[key]
		if !inWindow {
			continue
		}

		bucket.Hours += contribution
		bucket.TaskCount++
	}

	result := make([]DailyBucket, len(order))
	for i, key := range order {
		bucket := buckets[key]
		bucket.Hours = roundTenth(bucket.Hours)
		result[i] = *bucket
	}
	return result
}

// AggregateWeekly rolls the same filtered contributions up into Sunday-start
// weeks. Unlike AggregateDaily only weeks with activity appear, ascending.
func AggregateWeekly(tasks []TimedTask, windowStart, windowEnd time.Time, logger *zap.Logger) []WeeklyBucket {
	start := truncateToDay(windowStart)
	end := truncateToDay(windowEnd)

	buckets := make(map[string]*WeeklyBucket)
	for _, task := range tasks {
		contribution, completedAt, ok := taskContribution(task, logger)
		if !ok {
			continue
		}

		day := truncateToDay(completedAt.UTC())
		if day.Before(start) || day.After(end) {
			continue
		}

		key := weekStart(day).Format(dateLayout)
		bucket, exists := buckets[key]
		if !exists {
			bucket = &WeeklyBucket{WeekStart: key}
			buckets[key] = bucket
		}
		bucket.Hours += contribution
		bucket.TaskCount++
	}

	result := make([]WeeklyBucket, 0, len(buckets))
	for _, bucket := range buckets {
		bucket.Hours = roundTenth(bucket.Hours)
		result = append(result, *bucket)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].WeekStart < result[j].WeekStart })
	return result
}

// AggregateLifetime sums capped contributions across all tasks with no window
// restriction, rounding once at the end.
func AggregateLifetime(tasks []TimedTask, logger *zap.Logger) float64 {
	var total float64
	for _, task := range tasks {
		contribution, _, ok := taskContribution(task, logger)
		if !ok {
			continue
		}
		total += contribution
	}
	return roundTenth(total)
}

// taskContribution applies the floor and cap rules to a single task. The
// third return is false when the task contributes nothing: a missing or
// malformed timestamp, or a sub-minute duration.
func taskContribution(task TimedTask, logger *zap.Logger) (float64, time.Time, bool) {
	if task.AssignedAt == "" || task.CompletedAt == "" {
		return 0, time.Time{}, false
	}

	assignedAt, err := time.Parse(time.RFC3339, task.AssignedAt)
	if err != nil {
		logger.Warn("Skipping task with malformed assigned_at",
			zap.String("task_id", task.TaskID),
			zap.String("assigned_at", task.AssignedAt))
		return 0, time.Time{}, false
	}

	completedAt, err := time.Parse(time.RFC3339, task.CompletedAt)
	if err != nil {
		logger.Warn("Skipping task with malformed completed_at",
			zap.String("task_id", task.TaskID),
			zap.String("completed_at", task.CompletedAt))
		return 0, time.Time{}, false
	}

	durationHours := completedAt.Sub(assignedAt).Hours()
	if durationHours < minTaskHours {
		return 0, time.Time{}, false
	}

	return math.Min(durationHours, maxCreditHours), completedAt, true
}

// weekStart returns the Sunday on or before day.
func weekStart(day time.Time) time.Time {
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// roundTenth rounds half away from zero to one decimal place.
func roundTenth(hours float64) float64 {
	return math.Round(hours*10) / 10
}
