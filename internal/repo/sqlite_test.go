package repo

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newSQLiteTestStore(t *testing.T) Store {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)

	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.Up(db, "../../migrations/sqlite"))
	return NewSQLiteStore(db)
}

func TestSQLiteTaskCRUD(t *testing.T) {
	store := newSQLiteTestStore(t)
	hh, user, dom := seedHousehold(t, store)
	ctx := context.Background()

	created, err := store.Tasks.Create(ctx, newTask(hh, user, dom, "task-1", "Water plants", "2026-03-10", "09:00"))
	require.NoError(t, err)
	assert.Equal(t, "Alice", created.OwnerName)
	assert.Equal(t, "Kitchen", created.DomainName)

	got, err := store.Tasks.GetByID(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, "Water plants", got.Title)
	assert.False(t, got.IsCompleted)

	require.NoError(t, store.Tasks.Delete(ctx, "task-1"))
	_, err = store.Tasks.GetByID(ctx, "task-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteTaskUpdatePersistsFlags(t *testing.T) {
	store := newSQLiteTestStore(t)
	hh, user, dom := seedHousehold(t, store)
	ctx := context.Background()

	created, err := store.Tasks.Create(ctx, newTask(hh, user, dom, "task-1", "Dentist", "2026-03-10", "09:00"))
	require.NoError(t, err)
	require.NoError(t, store.Tasks.MarkNotified(ctx, created.ID))

	// Completion toggled and the due schedule moved in one patch; the
	// notification flag must come back cleared and completed_at set.
	patch, err := store.Tasks.GetByID(ctx, created.ID)
	require.NoError(t, err)
	at := time.Now().UTC().Truncate(time.Second)
	patch.IsCompleted = true
	patch.CompletedAt = &at
	patch.DueDate = "2026-03-12"
	patch.NotificationSent = false

	updated, err := store.Tasks.Update(ctx, patch)
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, "2026-03-12", updated.DueDate)
	assert.False(t, updated.NotificationSent)

	got, err := store.Tasks.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.IsCompleted)
	assert.False(t, got.NotificationSent)
}

func TestSQLiteNotificationFlag(t *testing.T) {
	store := newSQLiteTestStore(t)
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
}
