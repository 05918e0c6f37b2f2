package adapter

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "covquest.dev/pkg/covquest/internal/model"
	"covquest.dev/pkg/covquest/internal/testutil"
)

func TestGitRepositoryOpener_OpenFailsWithoutMetadata(t *testing.T) {
	opener := NewGitRepositoryOpener()

	_, err := opener.Open(context.Background(), m.Path(t.TempDir()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open git repository")
}

func TestGitRepositoryOpener_DoesNotSearchParents(t *testing.T) {
	fixture := testutil.NewGitRepo(t)
	fixture.CommitFiles("alice", "src/main/java/x/Foo.java")

	_, err := NewGitRepositoryOpener().Open(context.Background(), m.Path(filepath.Join(fixture.Dir, "src")))
	require.Error(t, err)
}

func TestGitRepository_HeadFailsOnEmptyRepository(t *testing.T) {
	fixture := testutil.NewGitRepo(t)

	repo, err := NewGitRepositoryOpener().Open(context.Background(), m.Path(fixture.Dir))
	require.NoError(t, err)

	_, err = repo.Head(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolve HEAD")
}

func TestGitRepository_HeadAndCommit(t *testing.T) {
	fixture := testutil.NewGitRepo(t)
	first := fixture.CommitFiles("bob", "README.md")
	second := fixture.CommitFiles("alice", "src/main/java/x/Foo.java")

	repo, err := NewGitRepositoryOpener().Open(context.Background(), m.Path(fixture.Dir))
	require.NoError(t, err)

	head, err := repo.Head(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second, head.Hash)
	assert.Equal(t, "alice", head.Author)
	assert.Equal(t, []string{first}, head.Parents)
	assert.NotEmpty(t, head.Tree)

	root, err := repo.Commit(context.Background(), first)
	require.NoError(t, err)
	assert.True(t, root.IsRoot())
	assert.Equal(t, "bob", root.Author)

	_, err = repo.Commit(context.Background(), strings.Repeat("f", 40))
	require.Error(t, err)
}

func TestGitRepository_MergeCommitKeepsParentOrder(t *testing.T) {
	fixture := testutil.NewGitRepo(t)
	base := fixture.CommitFiles("bob", "base.txt")
	side := fixture.CommitFiles("bob", "side.txt")
	fixture.Reset(base)
	main := fixture.CommitFiles("bob", "main.txt")
	fixture.Touch("side.txt")
	merge := fixture.Commit("alice", "merge side", main, side)

	repo, err := NewGitRepositoryOpener().Open(context.Background(), m.Path(fixture.Dir))
	require.NoError(t, err)

	commit, err := repo.Commit(context.Background(), merge)
	require.NoError(t, err)
	assert.Equal(t, []string{main, side}, commit.Parents)
}

func TestGitRepository_DiffText(t *testing.T) {
	fixture := testutil.NewGitRepo(t)
	first := fixture.CommitFiles("bob", "README.md", "src/main/java/x/Old.java")
	fixture.RemoveFile("src/main/java/x/Old.java")
	fixture.Touch("src/main/java/x/Foo.java", "README.md")
	second := fixture.Commit("alice", "rework")

	repo, err := NewGitRepositoryOpener().Open(context.Background(), m.Path(fixture.Dir))
	require.NoError(t, err)

	text, err := repo.DiffText(context.Background(), first, second)
	require.NoError(t, err)
	assert.Contains(t, text, "diff --git a/README.md b/README.md")
	assert.Contains(t, text, "diff --git a/src/main/java/x/Foo.java b/src/main/java/x/Foo.java")
	assert.Contains(t, text, "diff --git a/src/main/java/x/Old.java b/src/main/java/x/Old.java")
}

func TestGitRepository_UserName(t *testing.T) {
	fixture := testutil.NewGitRepo(t)
	fixture.SetUserName("Alice Example")

	repo, err := NewGitRepositoryOpener().Open(context.Background(), m.Path(fixture.Dir))
	require.NoError(t, err)

	name, err := repo.UserName(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alice Example", name)
}

func TestGitRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGitRepositoryOpener().Open(ctx, m.Path(t.TempDir()))
	require.ErrorIs(t, err, context.Canceled)
}
