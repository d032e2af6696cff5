package db

// ScheduleEntry represents a cleaning schedule database record. At most one
// entry exists per (location_id, date); the table enforces it.
type ScheduleEntry struct {
	ID            string
	LocationID    string
	Date          string // YYYY-MM-DD
	Time          string // HH:MM:SS
	AssignedGroup string // A, B, C, D or All
}

// SessionTask represents a single unit of work within a cleaning session.
// MemberID may reference either a registered profile or an anonymous
// participant's temporary id. Timestamps are RFC 3339 strings, empty when
// not yet set.
type SessionTask struct {
	ID          string
	SessionID   string
	MemberID    string
	Description string
	Points      int
	AssignedAt  string
	CompletedAt string
}

// MemberProfile represents a registered member record.
type MemberProfile struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	PhoneNumber   string
	AssignedGroup string
	IdentityHash  string
}

// PointsEntry represents points awarded for a completed task.
type PointsEntry struct {
	ID        string
	MemberID  string
	TaskID    string
	Points    int
	AwardedAt string
}

// PointsTotal is an aggregated leaderboard row.
type PointsTotal struct {
	MemberID    string
	DisplayName string
	Points      int
}
