package domain

import "time"

// Task is the unit being scheduled: one household chore.
// DueDate/DueTime are kept as the raw wire strings ("2006-01-02",
// "15:04") because the grouper sorts on the zero-padded time string
// and an empty string means "no schedule".
type Task struct {
	ID          string
	HouseholdID string
	DomainID    string
	OwnerID     string

	Title   string
	Details string

	DueDate string
	DueTime string

	FrequencyType     string
	FrequencyInterval int

	IsCompleted bool
	CompletedAt *time.Time

	IsSnoozed    bool
	SnoozedUntil *time.Time

	// NotificationSent is set once the due scan has attempted delivery
	// for this schedule; rescheduling the task re-arms it.
	NotificationSent bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// Denormalized for display; filled by the repo on read.
	OwnerName  string
	DomainName string
}

// IsRecurring reports whether the task carries a recurrence tag.
// Instance generation is handled elsewhere (not here).
func (t Task) IsRecurring() bool { return t.FrequencyType != "" }
