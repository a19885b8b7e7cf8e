package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/common"
)

func TestFolderCreate_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	token := f.login(t, "alice")

	_, err := f.folders.Create(ctx, token, "   ", nil)
	assert.ErrorIs(t, err, common.ErrValidation)

	bogus := int64(42)
	_, err = f.folders.Create(ctx, token, "child", &bogus)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestFolderTree_Structure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	token := f.login(t, "alice")

	work, err := f.folders.Create(ctx, token, "work", nil)
	require.NoError(t, err)
	_, err = f.folders.Create(ctx, token, "home", nil)
	require.NoError(t, err)
	projects, err := f.folders.Create(ctx, token, "projects", &work)
	require.NoError(t, err)
	_, err = f.folders.Create(ctx, token, "archive", &projects)
	require.NoError(t, err)

	tree, err := f.folders.Tree(ctx, token)
	require.NoError(t, err)
	require.Len(t, tree, 2)

	found := false
	for _, root := range tree {
		if root.Name != "work" {
			assert.Empty(t, root.Children)
			continue
		}
		found = true
		require.Len(t, root.Children, 1)
		assert.Equal(t, "projects", root.Children[0].Name)
		require.Len(t, root.Children[0].Children, 1)
		assert.Equal(t, "archive", root.Children[0].Children[0].Name)
	}
	require.True(t, found)
}

func TestFolderTree_EmptyForNewUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	token := f.login(t, "alice")

	tree, err := f.folders.Tree(ctx, token)
	require.NoError(t, err)
	assert.NotNil(t, tree)
	assert.Empty(t, tree)
}

func TestFolderMove_CycleRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	token := f.login(t, "alice")

	a, err := f.folders.Create(ctx, token, "a", nil)
	require.NoError(t, err)
	b, err := f.folders.Create(ctx, token, "b", &a)
	require.NoError(t, err)
	c, err := f.folders.Create(ctx, token, "c", &b)
	require.NoError(t, err)

	// Into itself.
	assert.ErrorIs(t, f.folders.Move(ctx, token, a, &a), common.ErrValidation)
	// Into a direct child.
	assert.ErrorIs(t, f.folders.Move(ctx, token, a, &b), common.ErrValidation)
	// Into a deeper descendant.
	assert.ErrorIs(t, f.folders.Move(ctx, token, a, &c), common.ErrValidation)

	// A legal move still works.
	require.NoError(t, f.folders.Move(ctx, token, c, &a))
	// And to the root.
	require.NoError(t, f.folders.Move(ctx, token, c, nil))
}

func TestFolderMove_ParentMustBeOwn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.login(t, "alice")
	bob := f.login(t, "bobby")

	mine, err := f.folders.Create(ctx, alice, "mine", nil)
	require.NoError(t, err)
	theirs, err := f.folders.Create(ctx, bob, "theirs", nil)
	require.NoError(t, err)

	err = f.folders.Move(ctx, alice, mine, &theirs)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestFolderRename_SiblingConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	token := f.login(t, "alice")

	a, err := f.folders.Create(ctx, token, "a", nil)
	require.NoError(t, err)
	_, err = f.folders.Create(ctx, token, "b", nil)
	require.NoError(t, err)

	assert.ErrorIs(t, f.folders.Rename(ctx, token, a, "b"), common.ErrConflict)
	require.NoError(t, f.folders.Rename(ctx, token, a, "renamed"))
}

func TestFolderDelete_OrphansNotesKeepsThem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	token := f.login(t, "alice")

	folderID, err := f.folders.Create(ctx, token, "work", nil)
	require.NoError(t, err)

	_, err = f.notes.Create(ctx, token, "report", "body", &folderID)
	require.NoError(t, err)

	require.NoError(t, f.folders.Delete(ctx, token, folderID))

	n, err := f.notes.Get(ctx, token, "report")
	require.NoError(t, err)
	assert.Nil(t, n.FolderID)
}
