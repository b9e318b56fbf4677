package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clairecicle/Mental-load-app/internal/domain"
	"github.com/clairecicle/Mental-load-app/internal/repo"
)

func newTestRepos(t *testing.T) repo.Store {
	t.Helper()
	return repo.NewFileStore(filepath.Join(t.TempDir(), "db.json")).Repos()
}

func seedFixtures(t *testing.T, store repo.Store) (domain.Household, domain.User, domain.Domain) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	hh, err := store.Households.Create(ctx, domain.Household{ID: "hh-1", Name: "Home", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	user, err := store.Users.Create(ctx, domain.User{
		ID: "user-1", Email: "alice@example.com", Name: "Alice",
		PasswordHash: "x", HouseholdID: hh.ID, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	dom, err := store.Domains.Create(ctx, domain.Domain{
		ID: "dom-1", HouseholdID: hh.ID, OwnerID: user.ID, Name: "Kitchen",
		CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	return hh, user, dom
}

// newTaskService pins the clock to 2026-03-10 10:00 local time.
func newTaskService(t *testing.T, store repo.Store) *TaskService {
	t.Helper()
	svc := NewTaskService(store.Tasks, nil)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	}
	return svc
}

func TestTaskServiceCreate(t *testing.T) {
	store := newTestRepos(t)
	hh, user, dom := seedFixtures(t, store)
	svc := newTaskService(t, store)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskInput{
		HouseholdID: hh.ID, DomainID: dom.ID, OwnerID: user.ID,
		Title: "  Water plants  ", DueDate: "2026-03-10", DueTime: "09:00",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Water plants", created.Title)
	assert.False(t, created.IsCompleted)
	assert.False(t, created.NotificationSent)

	_, err = svc.Create(ctx, CreateTaskInput{HouseholdID: hh.ID, Title: "   "})
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestTaskServiceTodayAndUpcoming(t *testing.T) {
	store := newTestRepos(t)
	hh, user, dom := seedFixtures(t, store)
	svc := newTaskService(t, store)
	ctx := context.Background()

	mk := func(title, date, tod string) {
		_, err := svc.Create(ctx, CreateTaskInput{
			HouseholdID: hh.ID, DomainID: dom.ID, OwnerID: user.ID,
			Title: title, DueDate: date, DueTime: tod,
		})
		require.NoError(t, err)
	}
	mk("Today early", "2026-03-10", "08:00")
	mk("Today late", "2026-03-10", "18:00")
	mk("Tomorrow", "2026-03-11", "")
	mk("Yesterday", "2026-03-09", "")
	mk("Anytime", "", "")

	today, err := svc.Today(ctx, hh.ID)
	require.NoError(t, err)
	require.Len(t, today, 2)

	upcoming, err := svc.Upcoming(ctx, hh.ID)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Tomorrow", upcoming[0].Title)
}

func TestTaskServiceTodayGrouped(t *testing.T) {
	store := newTestRepos(t)
	hh, user, dom := seedFixtures(t, store)
	svc := newTaskService(t, store)
	ctx := context.Background()

	mk := func(title, tod string) domain.Task {
		created, err := svc.Create(ctx, CreateTaskInput{
			HouseholdID: hh.ID, DomainID: dom.ID, OwnerID: user.ID,
			Title: title, DueDate: "2026-03-10", DueTime: tod,
		})
		require.NoError(t, err)
		return created
	}
	mk("Breakfast dishes", "08:00")
	mk("Dinner prep", "17:30")
	untimed := mk("Whenever", "")
	finished := mk("Morning run", "06:00")

	_, err := svc.Complete(ctx, finished.ID)
	require.NoError(t, err)

	// Pinned clock is 10:00.
	grouped, err := svc.TodayGrouped(ctx, hh.ID)
	require.NoError(t, err)
	require.Len(t, grouped.EarlierToday, 1)
	assert.Equal(t, "Breakfast dishes", grouped.EarlierToday[0].Title)
	require.Len(t, grouped.UpNext, 1)
	assert.Equal(t, "Dinner prep", grouped.UpNext[0].Title)
	require.Len(t, grouped.Anytime, 1)
	assert.Equal(t, untimed.ID, grouped.Anytime[0].ID)
	require.Len(t, grouped.Completed, 1)
	assert.Equal(t, finished.ID, grouped.Completed[0].ID)
}

func TestTaskServiceOverdue(t *testing.T) {
	store := newTestRepos(t)
	hh, user, dom := seedFixtures(t, store)
	svc := newTaskService(t, store)
	ctx := context.Background()

	mk := func(title, date, tod string) domain.Task {
		created, err := svc.Create(ctx, CreateTaskInput{
			HouseholdID: hh.ID, DomainID: dom.ID, OwnerID: user.ID,
			Title: title, DueDate: date, DueTime: tod,
		})
		require.NoError(t, err)
		return created
	}
	mk("Past date", "2026-03-09", "")
	mk("Past time today", "2026-03-10", "09:00")
	mk("Later today", "2026-03-10", "15:00")
	mk("Date only today", "2026-03-10", "")
	mk("No date", "", "")
	donePast := mk("Done past", "2026-03-01", "")
	_, err := svc.Complete(ctx, donePast.ID)
	require.NoError(t, err)

	overdue, err := svc.Overdue(ctx, hh.ID)
	require.NoError(t, err)
	titles := make([]string, 0, len(overdue))
	for _, task := range overdue {
		titles = append(titles, task.Title)
	}
	assert.ElementsMatch(t, []string{"Past date", "Past time today"}, titles)
}

func TestTaskServiceUpdateReArmsNotification(t *testing.T) {
	store := newTestRepos(t)
	hh, user, dom := seedFixtures(t, store)
	svc := newTaskService(t, store)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskInput{
		HouseholdID: hh.ID, DomainID: dom.ID, OwnerID: user.ID,
		Title: "Dentist", DueDate: "2026-03-10", DueTime: "09:00",
	})
	require.NoError(t, err)
	require.NoError(t, store.Tasks.MarkNotified(ctx, created.ID))

	newTime := "16:00"
	updated, err := svc.Update(ctx, created.ID, UpdateTaskInput{DueTime: &newTime})
	require.NoError(t, err)
	assert.Equal(t, "16:00", updated.DueTime)
	assert.False(t, updated.NotificationSent)

	newTitle := "Dentist appointment"
	updated, err = svc.Update(ctx, created.ID, UpdateTaskInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Dentist appointment", updated.Title)

	_, err = svc.Update(ctx, "missing", UpdateTaskInput{Title: &newTitle})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskServiceUpdateTogglesCompletion(t *testing.T) {
	store := newTestRepos(t)
	hh, user, dom := seedFixtures(t, store)
	svc := newTaskService(t, store)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskInput{
		HouseholdID: hh.ID, DomainID: dom.ID, OwnerID: user.ID, Title: "Water plants",
	})
	require.NoError(t, err)

	done := true
	updated, err := svc.Update(ctx, created.ID, UpdateTaskInput{IsCompleted: &done})
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	require.NotNil(t, updated.CompletedAt)

	undone := false
	updated, err = svc.Update(ctx, created.ID, UpdateTaskInput{IsCompleted: &undone})
	require.NoError(t, err)
	assert.False(t, updated.IsCompleted)
	assert.Nil(t, updated.CompletedAt)
}

func TestTaskServiceCompleteAndReopen(t *testing.T) {
	store := newTestRepos(t)
	hh, user, dom := seedFixtures(t, store)
	svc := newTaskService(t, store)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskInput{
		HouseholdID: hh.ID, DomainID: dom.ID, OwnerID: user.ID, Title: "Dishes",
	})
	require.NoError(t, err)

	done, err := svc.Complete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, done.IsCompleted)
	assert.NotNil(t, done.CompletedAt)

	reopened, err := svc.Reopen(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, reopened.IsCompleted)
	assert.Nil(t, reopened.CompletedAt)

	_, err = svc.Complete(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskServiceDelete(t *testing.T) {
	store := newTestRepos(t)
	hh, user, dom := seedFixtures(t, store)
	svc := newTaskService(t, store)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTaskInput{
		HouseholdID: hh.ID, DomainID: dom.ID, OwnerID: user.ID, Title: "Dishes",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
}
