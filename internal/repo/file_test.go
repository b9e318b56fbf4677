package repo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clairecicle/Mental-load-app/internal/domain"
)

func newTestStore(t *testing.T) (Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	return NewFileStore(path).Repos(), path
}

func seedHousehold(t *testing.T, store Store) (domain.Household, domain.User, domain.Domain) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	hh, err := store.Households.Create(ctx, domain.Household{
		ID: "hh-1", Name: "Test Household", CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	user, err := store.Users.Create(ctx, domain.User{
		ID: "user-1", Email: "alice@example.com", Name: "Alice",
		PasswordHash: "x", HouseholdID: hh.ID, Role: "member",
		CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	dom, err := store.Domains.Create(ctx, domain.Domain{
		ID: "dom-1", HouseholdID: hh.ID, OwnerID: user.ID, Name: "Kitchen",
		CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	return hh, user, dom
}

func newTask(hh domain.Household, user domain.User, dom domain.Domain, id, title, dueDate, dueTime string) domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	return domain.Task{
		ID: id, HouseholdID: hh.ID, DomainID: dom.ID, OwnerID: user.ID,
		Title: title, DueDate: dueDate, DueTime: dueTime,
		CreatedAt: now, UpdatedAt: now,
	}
}

func TestFileTaskCRUD(t *testing.T) {
	store, _ := newTestStore(t)
	hh, user, dom := seedHousehold(t, store)
	ctx := context.Background()

	created, err := store.Tasks.Create(ctx, newTask(hh, user, dom, "task-1", "Water plants", "2026-03-10", "09:00"))
	require.NoError(t, err)
	assert.Equal(t, "Alice", created.OwnerName)
	assert.Equal(t, "Kitchen", created.DomainName)

	got, err := store.Tasks.GetByID(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, "Water plants", got.Title)
	assert.Equal(t, "2026-03-10", got.DueDate)
	assert.Equal(t, "09:00", got.DueTime)
	assert.False(t, got.IsCompleted)

	got.Title = "Water all plants"
	got.DueTime = ""
	updated, err := store.Tasks.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "Water all plants", updated.Title)
	assert.Empty(t, updated.DueTime)

	require.NoError(t, store.Tasks.Delete(ctx, "task-1"))
	_, err = store.Tasks.GetByID(ctx, "task-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileTaskGetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Tasks.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileTaskListFilters(t *testing.T) {
	store, _ := newTestStore(t)
	hh, user, dom := seedHousehold(t, store)
	ctx := context.Background()

	bob, err := store.Users.Create(ctx, domain.User{
		ID: "user-2", Email: "bob@example.com", Name: "Bob",
		PasswordHash: "x", HouseholdID: hh.ID,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})
	require.NoError(t, err)

	_, err = store.Tasks.Create(ctx, newTask(hh, user, dom, "task-1", "Dishes", "2026-03-10", ""))
	require.NoError(t, err)
	_, err = store.Tasks.Create(ctx, newTask(hh, user, dom, "task-2", "Laundry", "2026-03-11", ""))
	require.NoError(t, err)

	bobTask := newTask(hh, bob, dom, "task-3", "Trash", "2026-03-10", "")
	bobTask.OwnerID = bob.ID
	_, err = store.Tasks.Create(ctx, bobTask)
	require.NoError(t, err)

	all, err := store.Tasks.List(ctx, hh.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := store.Tasks.List(ctx, hh.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "task-3", mine[0].ID)
	assert.Equal(t, "Bob", mine[0].OwnerName)

	byDate, err := store.Tasks.ListByDate(ctx, hh.ID, "2026-03-10")
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	after, err := store.Tasks.ListAfterDate(ctx, hh.ID, "2026-03-10")
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "task-2", after[0].ID)

	other, err := store.Tasks.List(ctx, "hh-other", "")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestFileTaskSetCompleted(t *testing.T) {
	store, _ := newTestStore(t)
	hh, user, dom := seedHousehold(t, store)
	ctx := context.Background()

	_, err := store.Tasks.Create(ctx, newTask(hh, user, dom, "task-1", "Dishes", "", ""))
	require.NoError(t, err)

	at := time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)
	done, err := store.Tasks.SetCompleted(ctx, "task-1", true, at)
	require.NoError(t, err)
	assert.True(t, done.IsCompleted)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, at, done.CompletedAt.UTC())

	reopened, err := store.Tasks.SetCompleted(ctx, "task-1", false, at.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, reopened.IsCompleted)
	assert.Nil(t, reopened.CompletedAt)

	_, err = store.Tasks.SetCompleted(ctx, "missing", true, at)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileTaskNotificationFlag(t *testing.T) {
	store, _ := newTestStore(t)
	hh, user, dom := seedHousehold(t, store)
	ctx := context.Background()

	_, err := store.Tasks.Create(ctx, newTask(hh, user, dom, "task-1", "Dated", "2026-03-10", "09:00"))
	require.NoError(t, err)
	_, err = store.Tasks.Create(ctx, newTask(hh, user, dom, "task-2", "Undated", "", ""))
	require.NoError(t, err)

	pending, err := store.Tasks.ListUnnotified(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "task-1", pending[0].ID)

	require.NoError(t, store.Tasks.MarkNotified(ctx, "task-1"))

	pending, err = store.Tasks.ListUnnotified(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	got, err := store.Tasks.GetByID(ctx, "task-1")
	require.NoError(t, err)
	assert.True(t, got.NotificationSent)
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	store, path := newTestStore(t)
	hh, user, dom := seedHousehold(t, store)
	ctx := context.Background()

	_, err := store.Tasks.Create(ctx, newTask(hh, user, dom, "task-1", "Dishes", "2026-03-10", ""))
	require.NoError(t, err)

	reopened := NewFileStore(path).Repos()
	got, err := reopened.Tasks.GetByID(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, "Dishes", got.Title)
	assert.Equal(t, "Alice", got.OwnerName)
}

func TestFileUserRepo(t *testing.T) {
	store, _ := newTestStore(t)
	hh, user, _ := seedHousehold(t, store)
	ctx := context.Background()

	byEmail, err := store.Users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = store.Users.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	members, err := store.Users.List(ctx, hh.ID)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestFileDiscussionResolve(t *testing.T) {
	store, _ := newTestStore(t)
	hh, user, _ := seedHousehold(t, store)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	_, err := store.Discussions.Create(ctx, domain.DiscussionItem{
		ID: "disc-1", HouseholdID: hh.ID, CreatedByID: user.ID,
		Title: "Vacation dates", CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	resolved, err := store.Discussions.SetResolved(ctx, "disc-1", true, now)
	require.NoError(t, err)
	assert.True(t, resolved.IsResolved)
	require.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, "Alice", resolved.CreatedByName)

	reopened, err := store.Discussions.SetResolved(ctx, "disc-1", false, now)
	require.NoError(t, err)
	assert.False(t, reopened.IsResolved)
	assert.Nil(t, reopened.ResolvedAt)
}

func TestFileShoppingPurchase(t *testing.T) {
	store, _ := newTestStore(t)
	hh, user, _ := seedHousehold(t, store)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	_, err := store.Shopping.Create(ctx, domain.ShoppingListItem{
		ID: "item-1", HouseholdID: hh.ID, CreatedByID: user.ID,
		ItemName: "Milk", Quantity: "2", CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	bought, err := store.Shopping.SetPurchased(ctx, "item-1", true, user.ID, now)
	require.NoError(t, err)
	assert.True(t, bought.IsPurchased)
	assert.Equal(t, user.ID, bought.PurchasedByID)
	assert.Equal(t, "Alice", bought.PurchasedByName)
	require.NotNil(t, bought.PurchasedAt)

	returned, err := store.Shopping.SetPurchased(ctx, "item-1", false, "", now)
	require.NoError(t, err)
	assert.False(t, returned.IsPurchased)
	assert.Empty(t, returned.PurchasedByID)
	assert.Nil(t, returned.PurchasedAt)
}

func TestFileSubscriptions(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	_, err := store.Subscriptions.Create(ctx, domain.PushSubscription{
		ID: "sub-1", Endpoint: "https://push.example.com/a",
		P256dh: "key", Auth: "auth", CreatedAt: now,
	})
	require.NoError(t, err)

	subs, err := store.Subscriptions.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "https://push.example.com/a", subs[0].Endpoint)
}
