package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clairecicle/Mental-load-app/internal/domain"
)

func task(id, dueTime string) domain.Task {
	return domain.Task{ID: id, Title: id, DueTime: dueTime}
}

func completedTask(id, dueTime string) domain.Task {
	t := task(id, dueTime)
	t.IsCompleted = true
	return t
}

func dueTimes(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.DueTime
	}
	return out
}

func ids(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestGroupByHour_Partition(t *testing.T) {
	tasks := []domain.Task{
		task("walk-dog", "08:00"),
		task("clean-fridge", "14:00"),
		task("water-plants", ""),
		task("pay-bill", "17:00"),
		completedTask("meditation", "07:00"),
	}

	g := GroupByHour(tasks, 12)

	assert.Equal(t, []string{"walk-dog"}, ids(g.EarlierToday))
	assert.Equal(t, []string{"clean-fridge", "pay-bill"}, ids(g.UpNext))
	assert.Equal(t, []string{"water-plants"}, ids(g.Anytime))
	assert.Equal(t, []string{"meditation"}, ids(g.Completed))
}

func TestGroupByHour_PartitionIsTotalAndDisjoint(t *testing.T) {
	tasks := []domain.Task{
		task("a", "00:00"),
		task("b", "09:30"),
		task("c", "23:59"),
		task("d", ""),
		task("e", "garbage"),
		completedTask("f", "10:00"),
	}

	for hour := 0; hour < 24; hour++ {
		g := GroupByHour(tasks, hour)
		seen := map[string]int{}
		for _, bucket := range [][]domain.Task{g.EarlierToday, g.UpNext, g.Anytime, g.Completed} {
			for _, tk := range bucket {
				seen[tk.ID]++
			}
		}
		require.Len(t, seen, len(tasks), "hour %d: every task appears", hour)
		for id, n := range seen {
			require.Equal(t, 1, n, "hour %d: task %s appears once", hour, id)
		}
	}
}

func TestGroupByHour_MalformedTimeDegradesToAnytime(t *testing.T) {
	g := GroupByHour([]domain.Task{task("x", "not-a-time")}, 10)

	assert.Empty(t, g.EarlierToday)
	assert.Empty(t, g.UpNext)
	require.Len(t, g.Anytime, 1)
	assert.Equal(t, "x", g.Anytime[0].ID)
}

func TestGroupByHour_SortsWithinBucketsByRawTime(t *testing.T) {
	tasks := []domain.Task{
		task("b", "14:00"),
		task("a", "08:00"),
		task("c", "11:00"),
	}

	g := GroupByHour(tasks, 7)

	assert.Empty(t, g.EarlierToday)
	assert.Equal(t, []string{"08:00", "11:00", "14:00"}, dueTimes(g.UpNext))
}

func TestGroupByHour_HourBoundaryGoesToUpNext(t *testing.T) {
	g := GroupByHour([]domain.Task{task("x", "09:15")}, 9)

	assert.Empty(t, g.EarlierToday)
	require.Len(t, g.UpNext, 1)
}

func TestGroupByHour_Deterministic(t *testing.T) {
	tasks := []domain.Task{
		task("a", "10:00"),
		task("b", ""),
		task("c", "06:00"),
		completedTask("d", "12:00"),
	}

	first := GroupByHour(tasks, 8)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, GroupByHour(tasks, 8))
	}
}

func TestGroupByHour_AnytimeKeepsInsertionOrder(t *testing.T) {
	tasks := []domain.Task{
		task("later", ""),
		task("sooner", ""),
	}

	g := GroupByHour(tasks, 12)

	assert.Equal(t, []string{"later", "sooner"}, ids(g.Anytime))
}
