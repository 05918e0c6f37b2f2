package domain

import (
	"context"
	"fmt"
	"strings"

	m "covquest.dev/pkg/covquest/internal/model"
)

// fakeRepository is an in-memory linear history. Commit i changes files[i].
type fakeRepository struct {
	commits   map[string]m.Commit
	files     map[string][]string
	head      string
	userName  string
	diffCalls int
}

func commitHash(i int) string {
	return fmt.Sprintf("%040x", i+1)
}

// newLinearHistory builds a chain whose first author is the root commit and
// whose last author is HEAD. Commit i changes src/main/java/app/F<i>.java.
func newLinearHistory(authors ...string) *fakeRepository {
	repo := &fakeRepository{
		commits: make(map[string]m.Commit, len(authors)),
		files:   make(map[string][]string, len(authors)),
	}

	for i, author := range authors {
		commit := m.Commit{Hash: commitHash(i), Author: author, Tree: fmt.Sprintf("tree-%d", i)}
		if i > 0 {
			commit.Parents = []string{commitHash(i - 1)}
		}

		repo.commits[commit.Hash] = commit
		repo.files[commit.Hash] = []string{fmt.Sprintf("src/main/java/app/F%d.java", i)}
		repo.head = commit.Hash
	}

	return repo
}

func (r *fakeRepository) Head(_ context.Context) (m.Commit, error) {
	commit, ok := r.commits[r.head]
	if !ok {
		return m.Commit{}, fmt.Errorf("reference not found")
	}

	return commit, nil
}

func (r *fakeRepository) Commit(_ context.Context, hash string) (m.Commit, error) {
	commit, ok := r.commits[hash]
	if !ok {
		return m.Commit{}, fmt.Errorf("object not found: %s", hash)
	}

	return commit, nil
}

func (r *fakeRepository) DiffText(_ context.Context, _, newHash string) (string, error) {
	r.diffCalls++

	return syntheticDiff(r.files[newHash]...), nil
}

func (r *fakeRepository) UserName(_ context.Context) (string, error) {
	return r.userName, nil
}

// syntheticDiff renders a git diff modifying each path.
func syntheticDiff(paths ...string) string {
	var b strings.Builder

	for _, path := range paths {
		fmt.Fprintf(&b, "diff --git a/%s b/%s\n", path, path)
		fmt.Fprintf(&b, "index 1111111..2222222 100644\n")
		fmt.Fprintf(&b, "--- a/%s\n+++ b/%s\n", path, path)
		fmt.Fprintf(&b, "@@ -1 +1 @@\n-old\n+new\n")
	}

	return b.String()
}

func indexedPath(i int) m.Path {
	return m.Path(fmt.Sprintf("src/main/java/app/F%d.java", i))
}
