package db

import "context"

// ScheduleStore defines the interface for schedule database operations
type ScheduleStore interface {
	GetScheduleDates(ctx context.Context, locationID string) ([]string, error)
	GetSchedulesBetween(ctx context.Context, locationID, fromDate, toDate string) ([]ScheduleEntry, error)
	InsertScheduleEntries(ctx context.Context, entries []ScheduleEntry) error
}

// TaskStore defines the interface for session task database operations
type TaskStore interface {
	GetMemberTasks(ctx context.Context, memberID string) ([]SessionTask, error)
	GetTask(ctx context.Context, taskID string) (*SessionTask, error)
	SetTaskCompleted(ctx context.Context, taskID, completedAt string) error
}

// ProfileStore defines the interface for member profile database operations
type ProfileStore interface {
	UpsertProfile(ctx context.Context, profile *MemberProfile) error
	GetProfilesByGroup(ctx context.Context, assignedGroup string) ([]MemberProfile, error)
	LinkAnonymousActivity(ctx context.Context, identityHash, memberID string) (int, error)
}

// PointsStore defines the interface for points database operations
type PointsStore interface {
	InsertPointsEntry(ctx context.Context, entry *PointsEntry) error
	GetPointsTotals(ctx context.Context) ([]PointsTotal, error)
}

// Store defines the full database surface used by the application.
// postgres.DB implements this interface.
type Store interface {
	ScheduleStore
	TaskStore
	ProfileStore
	PointsStore
}
