package todos

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/common"
	"notekeeper/internal/server/models"
	"notekeeper/internal/server/store"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newUser(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO users (username, password_hash) VALUES (?, ?)`, name, "x")
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func newNote(t *testing.T, db *sql.DB, userID int64, title string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO notes (user_id, title, content) VALUES (?, ?, ?)`, userID, title, "body")
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func TestCreate_Defaults(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	userID := newUser(t, db, "alice")

	id, err := r.Create(ctx, userID, "buy milk", "", nil, "normal", nil)
	require.NoError(t, err)
	assert.NotZero(t, id)

	list, err := r.List(ctx, userID, models.TodoFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "buy milk", list[0].Title)
	assert.Equal(t, "normal", list[0].Priority)
	assert.False(t, list[0].Completed)
	assert.Nil(t, list[0].DueDate)
	assert.Nil(t, list[0].NoteTitle)
}

func TestList_Filters(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	userID := newUser(t, db, "alice")
	noteID := newNote(t, db, userID, "project")

	due := "2026-09-01"
	first, err := r.Create(ctx, userID, "urgent task", "", &due, "high", &noteID)
	require.NoError(t, err)
	_, err = r.Create(ctx, userID, "casual task", "", nil, "low", nil)
	require.NoError(t, err)

	require.NoError(t, r.Toggle(ctx, userID, first))

	open, err := r.List(ctx, userID, models.TodoFilter{Status: "open"})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "casual task", open[0].Title)

	done, err := r.List(ctx, userID, models.TodoFilter{Status: "done"})
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, "urgent task", done[0].Title)

	high, err := r.List(ctx, userID, models.TodoFilter{Priority: "high"})
	require.NoError(t, err)
	require.Len(t, high, 1)
	require.NotNil(t, high[0].DueDate)
	assert.Equal(t, due, *high[0].DueDate)
	require.NotNil(t, high[0].NoteTitle)
	assert.Equal(t, "project", *high[0].NoteTitle)

	linked, err := r.List(ctx, userID, models.TodoFilter{NoteTitle: "project"})
	require.NoError(t, err)
	assert.Len(t, linked, 1)

	both, err := r.List(ctx, userID, models.TodoFilter{Status: "done", Priority: "low"})
	require.NoError(t, err)
	assert.Empty(t, both, "filters combine conjunctively")
}

func TestList_ScopedToUser(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	alice := newUser(t, db, "alice")
	bob := newUser(t, db, "bob")

	_, err := r.Create(ctx, alice, "mine", "", nil, "normal", nil)
	require.NoError(t, err)

	list, err := r.List(ctx, bob, models.TodoFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestToggle_FlipsBothWays(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	userID := newUser(t, db, "alice")

	id, err := r.Create(ctx, userID, "task", "", nil, "normal", nil)
	require.NoError(t, err)

	require.NoError(t, r.Toggle(ctx, userID, id))
	list, err := r.List(ctx, userID, models.TodoFilter{})
	require.NoError(t, err)
	assert.True(t, list[0].Completed)

	require.NoError(t, r.Toggle(ctx, userID, id))
	list, err = r.List(ctx, userID, models.TodoFilter{})
	require.NoError(t, err)
	assert.False(t, list[0].Completed)

	assert.ErrorIs(t, r.Toggle(ctx, userID, 999), common.ErrNotFound)
}

func TestDelete_And_Exists(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	userID := newUser(t, db, "alice")

	id, err := r.Create(ctx, userID, "task", "", nil, "normal", nil)
	require.NoError(t, err)

	ok, err := r.Exists(ctx, userID, id)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, r.Delete(ctx, userID, id))

	ok, err = r.Exists(ctx, userID, id)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, r.Delete(ctx, userID, id), common.ErrNotFound)
}

func TestNoteDelete_UnlinksTodo(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	userID := newUser(t, db, "alice")
	noteID := newNote(t, db, userID, "project")

	_, err := r.Create(ctx, userID, "task", "", nil, "normal", &noteID)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM notes WHERE id = ?`, noteID)
	require.NoError(t, err)

	list, err := r.List(ctx, userID, models.TodoFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].NoteTitle, "deleting the note must keep the todo")
}

func TestCountByUser(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	userID := newUser(t, db, "alice")

	count, err := r.CountByUser(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = r.Create(ctx, userID, "a", "", nil, "normal", nil)
	require.NoError(t, err)
	_, err = r.Create(ctx, userID, "b", "", nil, "normal", nil)
	require.NoError(t, err)

	count, err = r.CountByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
