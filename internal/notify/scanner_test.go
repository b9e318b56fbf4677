package notify

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clairecicle/Mental-load-app/internal/domain"
	"github.com/clairecicle/Mental-load-app/internal/repo"
)

type fakeTransport struct {
	sent    []Payload
	targets []string
	fail    map[string]error
}

func (f *fakeTransport) Send(_ context.Context, sub domain.PushSubscription, p Payload) error {
	if err, ok := f.fail[sub.Endpoint]; ok {
		return err
	}
	f.sent = append(f.sent, p)
	f.targets = append(f.targets, sub.Endpoint)
	return nil
}

func setupScanner(t *testing.T, transport Transport) (*Scanner, repo.Store) {
	t.Helper()
	store := repo.NewFileStore(filepath.Join(t.TempDir(), "db.json")).Repos()
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := store.Households.Create(ctx, domain.Household{ID: "hh-1", Name: "Home", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	_, err = store.Users.Create(ctx, domain.User{
		ID: "user-1", Email: "a@b.c", Name: "Alice", PasswordHash: "x",
		HouseholdID: "hh-1", CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	_, err = store.Domains.Create(ctx, domain.Domain{
		ID: "dom-1", HouseholdID: "hh-1", OwnerID: "user-1", Name: "Kitchen",
		CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	return NewScanner(store.Tasks, store.Subscriptions, transport), store
}

func addTask(t *testing.T, store repo.Store, id, dueDate, dueTime string) {
	t.Helper()
	now := time.Now().UTC()
	_, err := store.Tasks.Create(context.Background(), domain.Task{
		ID: id, HouseholdID: "hh-1", DomainID: "dom-1", OwnerID: "user-1",
		Title: "Task " + id, DueDate: dueDate, DueTime: dueTime,
		CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
}

func addSub(t *testing.T, store repo.Store, id, endpoint string) {
	t.Helper()
	_, err := store.Subscriptions.Create(context.Background(), domain.PushSubscription{
		ID: id, Endpoint: endpoint, P256dh: "p", Auth: "a", CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestScannerNotifiesDueTasks(t *testing.T) {
	transport := &fakeTransport{}
	scanner, store := setupScanner(t, transport)
	ctx := context.Background()

	// Pin the clock to 09:02 so a 09:00 task is inside the window.
	scanNow := time.Date(2026, 3, 10, 9, 2, 0, 0, time.Local)
	scanner.now = func() time.Time { return scanNow }

	addTask(t, store, "due", "2026-03-10", "09:00")
	addTask(t, store, "future", "2026-03-10", "12:00")
	addTask(t, store, "old", "2026-03-10", "08:00")
	addTask(t, store, "undated", "", "")
	addSub(t, store, "sub-1", "https://push.example.com/a")
	addSub(t, store, "sub-2", "https://push.example.com/b")

	res, err := scanner.Scan(ctx)
	require.NoError(t, err)
	// The undated task is never a scan candidate.
	assert.Equal(t, 3, res.CheckedTasks)
	require.Len(t, res.Notifications, 2)
	assert.Equal(t, "due", res.Notifications[0].TaskID)
	assert.True(t, res.Notifications[0].Sent)

	// One payload per subscriber.
	require.Len(t, transport.sent, 2)
	assert.Equal(t, "Task due now!", transport.sent[0].Title)
	assert.Equal(t, `"Task due" is due`, transport.sent[0].Body)
	assert.Equal(t, "due", transport.sent[0].PrimaryKey)
	assert.ElementsMatch(t, []string{"https://push.example.com/a", "https://push.example.com/b"}, transport.targets)

	got, err := store.Tasks.GetByID(ctx, "due")
	require.NoError(t, err)
	assert.True(t, got.NotificationSent)

	// Out-of-window tasks stay unnotified.
	for _, id := range []string{"future", "old"} {
		got, err := store.Tasks.GetByID(ctx, id)
		require.NoError(t, err)
		assert.False(t, got.NotificationSent, id)
	}
}

func TestScannerSecondScanIsQuiet(t *testing.T) {
	transport := &fakeTransport{}
	scanner, store := setupScanner(t, transport)
	ctx := context.Background()

	scanner.now = func() time.Time { return time.Date(2026, 3, 10, 9, 2, 0, 0, time.Local) }
	addTask(t, store, "due", "2026-03-10", "09:00")
	addSub(t, store, "sub-1", "https://push.example.com/a")

	res, err := scanner.Scan(ctx)
	require.NoError(t, err)
	assert.Len(t, res.Notifications, 1)

	res, err = scanner.Scan(ctx)
	require.NoError(t, err)
	assert.Empty(t, res.Notifications)
	assert.Len(t, transport.sent, 1)
}

func TestScannerWindowBoundaries(t *testing.T) {
	transport := &fakeTransport{}
	scanner, store := setupScanner(t, transport)
	ctx := context.Background()

	addTask(t, store, "dated", "2026-03-10", "")
	addSub(t, store, "sub-1", "https://push.example.com/a")

	// A date-only task comes due at local midnight.
	scanner.now = func() time.Time { return time.Date(2026, 3, 10, 0, 5, 0, 0, time.Local) }
	res, err := scanner.Scan(ctx)
	require.NoError(t, err)
	assert.Len(t, res.Notifications, 1, "exactly five minutes past is still in the window")

	addTask(t, store, "late", "2026-03-10", "")
	scanner.now = func() time.Time { return time.Date(2026, 3, 10, 0, 5, 1, 0, time.Local) }
	res, err = scanner.Scan(ctx)
	require.NoError(t, err)
	assert.Empty(t, res.Notifications, "past the window must not notify")
}

func TestScannerDeliveryFailureStillMarks(t *testing.T) {
	transport := &fakeTransport{fail: map[string]error{
		"https://push.example.com/bad": errors.New("gone"),
	}}
	scanner, store := setupScanner(t, transport)
	ctx := context.Background()

	scanner.now = func() time.Time { return time.Date(2026, 3, 10, 9, 2, 0, 0, time.Local) }
	addTask(t, store, "due", "2026-03-10", "09:00")
	addSub(t, store, "sub-bad", "https://push.example.com/bad")
	addSub(t, store, "sub-good", "https://push.example.com/good")

	res, err := scanner.Scan(ctx)
	require.NoError(t, err)
	require.Len(t, res.Notifications, 2)
	assert.False(t, res.Notifications[0].Sent)
	assert.True(t, res.Notifications[1].Sent)

	// The good subscriber still got it and the flag is set.
	assert.Equal(t, []string{"https://push.example.com/good"}, transport.targets)
	got, err := store.Tasks.GetByID(ctx, "due")
	require.NoError(t, err)
	assert.True(t, got.NotificationSent)
}

func TestScannerFiresForCompletedTask(t *testing.T) {
	transport := &fakeTransport{}
	scanner, store := setupScanner(t, transport)
	ctx := context.Background()

	// Completion does not gate the scan; only the schedule and the
	// sent flag do.
	scanner.now = func() time.Time { return time.Date(2026, 3, 10, 9, 2, 0, 0, time.Local) }
	addTask(t, store, "done", "2026-03-10", "09:00")
	_, err := store.Tasks.SetCompleted(ctx, "done", true, time.Now())
	require.NoError(t, err)
	addSub(t, store, "sub-1", "https://push.example.com/a")

	res, err := scanner.Scan(ctx)
	require.NoError(t, err)
	assert.Len(t, res.Notifications, 1)
	assert.Len(t, transport.sent, 1)
}
