package schedule

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/clairecicle/Mental-load-app/internal/domain"
)

// hourMinute is deliberately loose: any "digits:digits" anywhere in
// the string counts, matching how the app has always read due times.
var hourMinute = regexp.MustCompile(`(\d+):(\d+)`)

func parseHourMinute(s string) (hour, minute int, ok bool) {
	m := hourMinute.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, true
}

// Grouped is the daily-view partition of one day's tasks.
type Grouped struct {
	EarlierToday []domain.Task
	UpNext       []domain.Task
	Anytime      []domain.Task
	Completed    []domain.Task
}

// GroupByHour partitions a day's tasks into display buckets given the
// current hour. Non-completed tasks land in exactly one of
// EarlierToday (due hour strictly before currentHour), UpNext (due
// hour >= currentHour) or Anytime (no parseable due time); completed
// tasks all land in Completed. The function does not filter by date —
// callers hand it the "today" snapshot.
//
// Timed buckets are sorted ascending by the raw due-time string.
// Lexicographic order on zero-padded 24-hour HH:MM is chronological
// order, and string comparison is what every client of this data has
// used; keep it that way.
func GroupByHour(tasks []domain.Task, currentHour int) Grouped {
	var g Grouped
	for _, t := range tasks {
		if t.IsCompleted {
			g.Completed = append(g.Completed, t)
			continue
		}
		hour, _, ok := parseHourMinute(t.DueTime)
		if !ok {
			g.Anytime = append(g.Anytime, t)
			continue
		}
		if hour < currentHour {
			g.EarlierToday = append(g.EarlierToday, t)
		} else {
			g.UpNext = append(g.UpNext, t)
		}
	}
	sortByDueTime(g.EarlierToday)
	sortByDueTime(g.UpNext)
	return g
}

func sortByDueTime(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DueTime < tasks[j].DueTime
	})
}
