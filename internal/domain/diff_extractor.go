package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	godiff "github.com/sourcegraph/go-diff/diff"

	"covquest.dev/pkg/covquest/internal/adapter"
	m "covquest.dev/pkg/covquest/internal/model"
)

const (
	gitDiffHeader = "diff --git "
	devNull       = "/dev/null"
)

// DiffExtractor lists the files changed between two adjacent commits.
type DiffExtractor interface {
	// Diff returns the new-side paths of every file section in the diff from
	// old to newCommit. A nil old (root of history) yields no paths.
	Diff(ctx context.Context, repo adapter.Repository, old *m.Commit, newCommit m.Commit) ([]m.Path, error)
}

type diffExtractor struct{}

// NewDiffExtractor constructs a DiffExtractor that parses unified git diffs.
func NewDiffExtractor() DiffExtractor {
	return &diffExtractor{}
}

func (e *diffExtractor) Diff(ctx context.Context, repo adapter.Repository, old *m.Commit, newCommit m.Commit) ([]m.Path, error) {
	if old == nil {
		return []m.Path{}, nil
	}

	text, err := repo.DiffText(ctx, old.Hash, newCommit.Hash)
	if err != nil {
		return nil, err
	}

	paths, err := ParsePaths(text)
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", newCommit.ShortHash(), err)
	}

	return paths, nil
}

// ParsePaths extracts the new-side path of every file section in a unified
// git diff, in diff order. Renamed files are reported under their new name
// only; deleted files keep the path named in their section header.
func ParsePaths(diffText string) ([]m.Path, error) {
	if strings.TrimSpace(diffText) == "" {
		return []m.Path{}, nil
	}

	fileDiffs, err := godiff.ParseMultiFileDiff([]byte(diffText))
	if err != nil {
		return nil, fmt.Errorf("parse diff: %w", err)
	}

	paths := make([]m.Path, 0, len(fileDiffs))

	for _, fd := range fileDiffs {
		if path := newSidePath(fd); path != "" {
			paths = append(paths, m.Path(path))
		}
	}

	return paths, nil
}

// newSidePath prefers the names go-diff parsed from the ---/+++ lines or, for
// header-only sections, from the extended headers. The raw "diff --git" line
// is ambiguous for unquoted names with spaces and is only a last resort.
func newSidePath(fd *godiff.FileDiff) string {
	if name := sideName(fd.NewName); name != "" {
		return name
	}

	if name := sideName(fd.OrigName); name != "" {
		return name
	}

	for _, line := range fd.Extended {
		if strings.HasPrefix(line, gitDiffHeader) {
			return headerNewPath(line)
		}
	}

	return ""
}

// sideName strips quoting and the a/ or b/ prefix from a parsed file name.
func sideName(name string) string {
	if name == "" || name == devNull {
		return ""
	}

	if strings.HasPrefix(name, `"`) {
		if unquoted, err := strconv.Unquote(name); err == nil {
			name = unquoted
		}
	}

	return stripSidePrefix(name)
}

// headerNewPath returns the "b/" token of a "diff --git a/<old> b/<new>" line.
func headerNewPath(line string) string {
	names := strings.TrimPrefix(line, gitDiffHeader)

	if strings.HasSuffix(names, `"`) {
		if idx := strings.LastIndex(names, ` "b/`); idx >= 0 {
			if unquoted, err := strconv.Unquote(names[idx+1:]); err == nil {
				return stripSidePrefix(unquoted)
			}
		}
	}

	idx := strings.LastIndex(names, " b/")
	if idx < 0 {
		return ""
	}

	return stripSidePrefix(names[idx+1:])
}

// stripSidePrefix removes the a/ or b/ prefix git puts in front of diff paths.
func stripSidePrefix(path string) string {
	if strings.HasPrefix(path, "a/") || strings.HasPrefix(path, "b/") {
		return path[2:]
	}

	return path
}
