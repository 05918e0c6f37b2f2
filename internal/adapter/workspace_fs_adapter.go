package adapter

import (
	"context"
	"os"
	"path/filepath"

	m "covquest.dev/pkg/covquest/internal/model"
)

// WorkspaceFSAdapter abstracts the file system lookups the workflow performs
// on a workspace, so diagnostics can be tested without real directories.
type WorkspaceFSAdapter interface {
	// FileInfo returns metadata for a path so callers can check existence or
	// distinguish between files and directories.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// Resolve returns target unchanged when it is absolute, otherwise joined onto base.
	Resolve(ctx context.Context, base, target m.Path) m.Path

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

var _ WorkspaceFSAdapter = (*LocalWorkspaceFSAdapter)(nil)

// LocalWorkspaceFSAdapter implements WorkspaceFSAdapter on top of the os package.
type LocalWorkspaceFSAdapter struct{}

// NewLocalWorkspaceFSAdapter constructs a LocalWorkspaceFSAdapter.
func NewLocalWorkspaceFSAdapter() *LocalWorkspaceFSAdapter {
	return &LocalWorkspaceFSAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalWorkspaceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// Resolve anchors relative targets at base.
func (a *LocalWorkspaceFSAdapter) Resolve(_ context.Context, base, target m.Path) m.Path {
	if filepath.IsAbs(string(target)) {
		return m.Path(filepath.Clean(string(target)))
	}

	return m.Path(filepath.Join(string(base), string(target)))
}

// JoinPath joins path elements into a single path.
func (a *LocalWorkspaceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
