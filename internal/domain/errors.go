package domain

import (
	"errors"
	"fmt"

	m "covquest.dev/pkg/covquest/internal/model"
)

var (
	// ErrRepositoryAccess marks failures to read version-control metadata.
	ErrRepositoryAccess = errors.New("repository access failed")

	// ErrNoEligibleCandidate is returned when none of the recently changed
	// files has partially or not covered lines.
	ErrNoEligibleCandidate = errors.New("no eligible candidate")

	// ErrUnknownAuthor is returned when no author was given and the
	// repository configuration does not name one either.
	ErrUnknownAuthor = errors.New("author identity unknown")

	// ErrDiagnosticsFailed is returned by Doctor when at least one check failed.
	ErrDiagnosticsFailed = errors.New("workspace diagnostics failed")
)

// RepositoryAccessError describes which repository operation failed.
// It matches ErrRepositoryAccess with errors.Is.
type RepositoryAccessError struct {
	Workspace m.Path
	Op        string
	Err       error
}

func newRepositoryAccessError(workspace m.Path, op string, err error) *RepositoryAccessError {
	return &RepositoryAccessError{Workspace: workspace, Op: op, Err: err}
}

func (e *RepositoryAccessError) Error() string {
	return fmt.Sprintf("%s: %s in %s: %v", ErrRepositoryAccess, e.Op, e.Workspace, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *RepositoryAccessError) Unwrap() []error {
	return []error{ErrRepositoryAccess, e.Err}
}
