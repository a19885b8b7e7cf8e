package notes

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/common"
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

func TestCreate_And_GetByTitle(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	userID := newUser(t, db, "alice")

	id, err := r.Create(ctx, userID, "shopping", "milk\neggs", nil)
	require.NoError(t, err)
	assert.NotZero(t, id)

	n, err := r.GetByTitle(ctx, userID, "shopping")
	require.NoError(t, err)
	assert.Equal(t, id, n.ID)
	assert.Equal(t, "milk\neggs", n.Content)
	assert.False(t, n.ModifiedAt.IsZero())
	assert.Nil(t, n.FolderID)
}

func TestCreate_DuplicateTitle(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	userID := newUser(t, db, "alice")

	_, err := r.Create(ctx, userID, "shopping", "a", nil)
	require.NoError(t, err)

	_, err = r.Create(ctx, userID, "shopping", "b", nil)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestCreate_SameTitleDifferentUsers(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	alice := newUser(t, db, "alice")
	bob := newUser(t, db, "bob")

	_, err := r.Create(ctx, alice, "shopping", "a", nil)
	require.NoError(t, err)
	_, err = r.Create(ctx, bob, "shopping", "b", nil)
	require.NoError(t, err)
}

func TestGetByTitle_ScopedToUser(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	alice := newUser(t, db, "alice")
	bob := newUser(t, db, "bob")

	_, err := r.Create(ctx, alice, "secret", "content", nil)
	require.NoError(t, err)

	_, err = r.GetByTitle(ctx, bob, "secret")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestList_OrderAndLimit(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	userID := newUser(t, db, "alice")

	for _, title := range []string{"first", "second", "third"} {
		_, err := r.Create(ctx, userID, title, "body", nil)
		require.NoError(t, err)
	}

	list, err := r.List(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Title)
	assert.Equal(t, "first", list[2].Title)

	list, err = r.List(ctx, userID, 2)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUpdateContent_RefreshesOrdering(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	userID := newUser(t, db, "alice")

	_, err := r.Create(ctx, userID, "old", "a", nil)
	require.NoError(t, err)
	_, err = r.Create(ctx, userID, "new", "b", nil)
	require.NoError(t, err)

	require.NoError(t, r.UpdateContent(ctx, userID, "old", "updated"))

	list, err := r.List(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "old", list[0].Title)
	assert.Equal(t, "updated", list[0].Content)
}

func TestUpdateContent_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	userID := newUser(t, db, "alice")

	err := r.UpdateContent(ctx, userID, "missing", "x")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRename(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	userID := newUser(t, db, "alice")

	_, err := r.Create(ctx, userID, "draft", "a", nil)
	require.NoError(t, err)
	_, err = r.Create(ctx, userID, "final", "b", nil)
	require.NoError(t, err)

	assert.ErrorIs(t, r.Rename(ctx, userID, "draft", "final"), common.ErrConflict)
	assert.ErrorIs(t, r.Rename(ctx, userID, "missing", "other"), common.ErrNotFound)

	require.NoError(t, r.Rename(ctx, userID, "draft", "draft v2"))
	_, err = r.GetByTitle(ctx, userID, "draft v2")
	assert.NoError(t, err)
}

func TestDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	userID := newUser(t, db, "alice")

	_, err := r.Create(ctx, userID, "temp", "a", nil)
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, userID, "temp"))
	_, err = r.GetByTitle(ctx, userID, "temp")
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.ErrorIs(t, r.Delete(ctx, userID, "temp"), common.ErrNotFound)
}

func TestSearch_TitleAndContent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	userID := newUser(t, db, "alice")

	_, err := r.Create(ctx, userID, "meeting notes", "discuss roadmap", nil)
	require.NoError(t, err)
	_, err = r.Create(ctx, userID, "groceries", "buy milk for the meeting", nil)
	require.NoError(t, err)
	_, err = r.Create(ctx, userID, "unrelated", "nothing here", nil)
	require.NoError(t, err)

	found, err := r.Search(ctx, userID, "meeting")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = r.Search(ctx, userID, "MEETING")
	require.NoError(t, err)
	assert.Len(t, found, 2, "search should be case-insensitive")

	found, err = r.Search(ctx, userID, "zebra")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestSetFolder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	userID := newUser(t, db, "alice")

	res, err := db.Exec(`INSERT INTO folders (user_id, name) VALUES (?, ?)`, userID, "work")
	require.NoError(t, err)
	folderID, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = r.Create(ctx, userID, "note", "body", nil)
	require.NoError(t, err)

	require.NoError(t, r.SetFolder(ctx, userID, "note", &folderID))
	n, err := r.GetByTitle(ctx, userID, "note")
	require.NoError(t, err)
	require.NotNil(t, n.FolderID)
	assert.Equal(t, folderID, *n.FolderID)

	require.NoError(t, r.SetFolder(ctx, userID, "note", nil))
	n, err = r.GetByTitle(ctx, userID, "note")
	require.NoError(t, err)
	assert.Nil(t, n.FolderID)
}

func TestDeleteFolder_OrphansNote(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	userID := newUser(t, db, "alice")

	res, err := db.Exec(`INSERT INTO folders (user_id, name) VALUES (?, ?)`, userID, "work")
	require.NoError(t, err)
	folderID, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = r.Create(ctx, userID, "note", "body", &folderID)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM folders WHERE id = ?`, folderID)
	require.NoError(t, err)

	n, err := r.GetByTitle(ctx, userID, "note")
	require.NoError(t, err)
	assert.Nil(t, n.FolderID, "deleting a folder must not delete its notes")
}

func TestCountByUser_And_MostRecent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	userID := newUser(t, db, "alice")

	_, err := r.MostRecent(ctx, userID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = r.Create(ctx, userID, "a", "1", nil)
	require.NoError(t, err)
	_, err = r.Create(ctx, userID, "b", "2", nil)
	require.NoError(t, err)

	count, err := r.CountByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	rn, err := r.MostRecent(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "b", rn.Title)
}
