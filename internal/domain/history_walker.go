package domain

import (
	"context"
	"errors"
	"log/slog"

	"covquest.dev/pkg/covquest/internal/adapter"
	m "covquest.dev/pkg/covquest/internal/model"
)

// Default walk caps.
const (
	DefaultMaxAuthored = 10
	DefaultMaxVisited  = 100
)

// HistoryLimits bounds a history walk.
type HistoryLimits struct {
	MaxAuthored int // commits by the requested author
	MaxVisited  int // commits of any author
}

func (l HistoryLimits) normalized() HistoryLimits {
	if l.MaxAuthored <= 0 {
		l.MaxAuthored = DefaultMaxAuthored
	}

	if l.MaxVisited <= 0 {
		l.MaxVisited = DefaultMaxVisited
	}

	return l
}

// HistoryWalker collects the files an author recently changed.
type HistoryWalker interface {
	// ScanUserChanges walks first-parent ancestry from HEAD and returns the
	// filtered set of paths changed by commits whose author name equals author.
	ScanUserChanges(ctx context.Context, workspace m.Path, author string) (*m.ChangedFileSet, error)
	// ResolveAuthor returns user, or the repository's configured user name
	// when user is empty.
	ResolveAuthor(ctx context.Context, workspace m.Path, user string) (string, error)
}

type historyWalker struct {
	adapter.RepositoryOpener
	DiffExtractor
	filter *PathFilter
	limits HistoryLimits
}

// NewHistoryWalker creates a HistoryWalker. Non-positive limits fall back to
// DefaultMaxAuthored and DefaultMaxVisited.
func NewHistoryWalker(
	opener adapter.RepositoryOpener,
	extractor DiffExtractor,
	filter *PathFilter,
	limits HistoryLimits,
) HistoryWalker {
	return &historyWalker{
		RepositoryOpener: opener,
		DiffExtractor:    extractor,
		filter:           filter,
		limits:           limits.normalized(),
	}
}

func (w *historyWalker) ScanUserChanges(ctx context.Context, workspace m.Path, author string) (*m.ChangedFileSet, error) {
	repo, err := w.Open(ctx, workspace)
	if err != nil {
		return nil, newRepositoryAccessError(workspace, "open", err)
	}

	head, err := repo.Head(ctx)
	if err != nil {
		return nil, newRepositoryAccessError(workspace, "resolve HEAD", err)
	}

	changes := &m.ChangedFileSet{}
	authored, visited := 0, 0

	// First parent only: commits reachable solely through a merge's other
	// parents are never visited.
	current := &head
	for current != nil && authored < w.limits.MaxAuthored && visited < w.limits.MaxVisited {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		parent, err := w.parentOf(ctx, repo, *current)
		if err != nil {
			return nil, newRepositoryAccessError(workspace, "read commit", err)
		}

		if current.Author == author {
			paths, err := w.Diff(ctx, repo, parent, *current)
			if err != nil {
				return nil, newRepositoryAccessError(workspace, "diff "+current.ShortHash(), err)
			}

			changes.Add(paths...)
			authored++
		}

		visited++
		current = parent
	}

	slog.Debug("history walk finished",
		"workspace", workspace,
		"author", author,
		"visited", visited,
		"authored", authored,
		"paths", changes.Len())

	if changes.Len() == 0 || w.filter == nil {
		return changes, nil
	}

	return w.filter.Apply(changes), nil
}

func (w *historyWalker) parentOf(ctx context.Context, repo adapter.Repository, commit m.Commit) (*m.Commit, error) {
	hash, ok := commit.FirstParent()
	if !ok {
		return nil, nil
	}

	parent, err := repo.Commit(ctx, hash)
	if err != nil {
		return nil, err
	}

	return &parent, nil
}

func (w *historyWalker) ResolveAuthor(ctx context.Context, workspace m.Path, user string) (string, error) {
	if user != "" {
		return user, nil
	}

	repo, err := w.Open(ctx, workspace)
	if err != nil {
		return "", newRepositoryAccessError(workspace, "open", err)
	}

	name, err := repo.UserName(ctx)
	if err != nil {
		return "", newRepositoryAccessError(workspace, "read user config", err)
	}

	if name == "" {
		return "", errors.Join(ErrUnknownAuthor, errors.New("pass --user or set user.name in git config"))
	}

	return name, nil
}
