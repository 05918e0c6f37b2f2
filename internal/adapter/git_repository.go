package adapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	m "covquest.dev/pkg/covquest/internal/model"
)

// Compile-time interface conformance checks.
var (
	_ RepositoryOpener = (*GitRepositoryOpener)(nil)
	_ Repository       = (*GitRepository)(nil)
)

// GitRepositoryOpener opens git working copies with go-git.
type GitRepositoryOpener struct{}

// NewGitRepositoryOpener constructs a GitRepositoryOpener.
func NewGitRepositoryOpener() *GitRepositoryOpener {
	return &GitRepositoryOpener{}
}

// Open reads the .git directory located directly in workspace.
func (o *GitRepositoryOpener) Open(ctx context.Context, workspace m.Path) (Repository, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo, err := git.PlainOpen(string(workspace))
	if err != nil {
		slog.Error("Failed to open git repository", "workspace", workspace, "error", err)
		return nil, fmt.Errorf("open git repository %s: %w", workspace, err)
	}

	return &GitRepository{repo: repo}, nil
}

// GitRepository is a Repository backed by a go-git repository.
type GitRepository struct {
	repo *git.Repository
}

// Head resolves HEAD to its commit.
func (r *GitRepository) Head(ctx context.Context) (m.Commit, error) {
	if err := ctx.Err(); err != nil {
		return m.Commit{}, err
	}

	ref, err := r.repo.Head()
	if err != nil {
		return m.Commit{}, fmt.Errorf("resolve HEAD: %w", err)
	}

	return r.Commit(ctx, ref.Hash().String())
}

// Commit loads the commit object identified by hash.
func (r *GitRepository) Commit(ctx context.Context, hash string) (m.Commit, error) {
	commit, err := r.commitObject(ctx, hash)
	if err != nil {
		return m.Commit{}, err
	}

	return toCommit(commit), nil
}

// DiffText renders the patch that turns the tree of oldHash into the tree of newHash.
func (r *GitRepository) DiffText(ctx context.Context, oldHash, newHash string) (string, error) {
	from, err := r.commitObject(ctx, oldHash)
	if err != nil {
		return "", err
	}

	to, err := r.commitObject(ctx, newHash)
	if err != nil {
		return "", err
	}

	patch, err := from.PatchContext(ctx, to)
	if err != nil {
		return "", fmt.Errorf("diff %s..%s: %w", m.ShortHash(oldHash), m.ShortHash(newHash), err)
	}

	slog.Debug("Computed commit diff", "old", m.ShortHash(oldHash), "new", m.ShortHash(newHash),
		"files", len(patch.FilePatches()))

	return patch.String(), nil
}

// UserName reads user.name from the local, global and system git configuration.
func (r *GitRepository) UserName(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cfg, err := r.repo.ConfigScoped(config.SystemScope)
	if err != nil {
		return "", fmt.Errorf("read git config: %w", err)
	}

	return cfg.User.Name, nil
}

func (r *GitRepository) commitObject(ctx context.Context, hash string) (*object.Commit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	commit, err := r.repo.CommitObject(plumbing.NewHash(hash))
	if err != nil {
		return nil, fmt.Errorf("read commit %s: %w", m.ShortHash(hash), err)
	}

	return commit, nil
}

func toCommit(c *object.Commit) m.Commit {
	parents := make([]string, 0, len(c.ParentHashes))
	for _, parent := range c.ParentHashes {
		parents = append(parents, parent.String())
	}

	return m.Commit{
		Hash:    c.Hash.String(),
		Author:  c.Author.Name,
		Parents: parents,
		Tree:    c.TreeHash.String(),
	}
}
