// Package schedule holds the due-state classifier and the time-of-day
// grouper. Everything here is a pure function over task snapshots; it
// never touches storage and is safe to call from any number of readers.
package schedule

import "time"

const (
	// DateLayout is the calendar-date form tasks carry ("2025-03-14").
	DateLayout = "2006-01-02"
	// TimeLayout is the 24-hour time-of-day form ("08:30").
	TimeLayout = "15:04"
)

// Deadline returns the instant a task becomes overdue. A task with a
// time is due at that clock time; a date-only task is late only after
// its whole calendar day has elapsed. ok is false when dueDate is
// absent or unparseable — such tasks have no deadline.
func Deadline(dueDate, dueTime string, loc *time.Location) (deadline time.Time, ok bool) {
	if dueDate == "" {
		return time.Time{}, false
	}
	day, err := time.ParseInLocation(DateLayout, dueDate, loc)
	if err != nil {
		return time.Time{}, false
	}
	if h, m, ok := parseHourMinute(dueTime); ok {
		return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc), true
	}
	// No (or malformed) time: end of the due day, 23:59:59.999.
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 999_000_000, loc), true
}

// IsOverdue reports whether a task with the given schedule is overdue
// at now. It is recomputed on every read and never persisted; callers
// decide what to do with overdue-but-completed tasks.
func IsOverdue(dueDate, dueTime string, now time.Time) bool {
	deadline, ok := Deadline(dueDate, dueTime, now.Location())
	if !ok {
		return false
	}
	return now.After(deadline)
}

// DueInstant returns the moment the notification scan treats the task
// as due: the due date at its clock time, or local midnight for
// date-only tasks. ok is false when there is no usable due date.
func DueInstant(dueDate, dueTime string, loc *time.Location) (due time.Time, ok bool) {
	if dueDate == "" {
		return time.Time{}, false
	}
	day, err := time.ParseInLocation(DateLayout, dueDate, loc)
	if err != nil {
		return time.Time{}, false
	}
	h, m, _ := parseHourMinute(dueTime) // malformed time degrades to midnight
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc), true
}

// DueWithin reports whether the task's due instant falls inside the
// trailing window: 0 <= now-due <= window, inclusive at both ends.
func DueWithin(dueDate, dueTime string, now time.Time, window time.Duration) bool {
	due, ok := DueInstant(dueDate, dueTime, now.Location())
	if !ok {
		return false
	}
	diff := now.Sub(due)
	return diff >= 0 && diff <= window
}
