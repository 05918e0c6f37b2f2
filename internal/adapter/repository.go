// Package adapter contains the infrastructure adapters the challenge pipeline
// reads from: version-control history, coverage report artifacts and the
// workspace file system.
package adapter

import (
	"context"

	m "covquest.dev/pkg/covquest/internal/model"
)

// RepositoryOpener opens the version-control metadata of a workspace.
type RepositoryOpener interface {
	// Open expects the workspace root to hold the metadata directory itself;
	// parent directories are not searched.
	Open(ctx context.Context, workspace m.Path) (Repository, error)
}

// Repository exposes the read-only history operations used by the walker.
// Implementations never modify the repository.
type Repository interface {
	// Head resolves the commit the current branch points to.
	Head(ctx context.Context) (m.Commit, error)

	// Commit loads a single commit by hash.
	Commit(ctx context.Context, hash string) (m.Commit, error)

	// DiffText renders the unified diff between the trees of two commits.
	DiffText(ctx context.Context, oldHash, newHash string) (string, error)

	// UserName returns the configured committer name, or "" when unset.
	UserName(ctx context.Context) (string, error)
}
