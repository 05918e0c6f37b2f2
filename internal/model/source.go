// Package model defines the data structures shared by the challenge pipeline.
package model

import "strings"

// Path represents a file system or repository path.
//
// Paths read from commit history are always slash-separated and relative to
// the workspace root.
type Path string

// Segments splits a slash-separated path into its non-empty segments.
func (p Path) Segments() []string {
	parts := strings.Split(string(p), "/")
	segments := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		segments = append(segments, part)
	}

	return segments
}

// Commit is a read-only view of a single commit.
type Commit struct {
	Hash    string
	Author  string   // author display name
	Parents []string // ordered, first parent first
	Tree    string
}

// IsRoot reports whether the commit has no parents.
func (c Commit) IsRoot() bool {
	return len(c.Parents) == 0
}

// FirstParent returns the hash of the first parent, if any.
func (c Commit) FirstParent() (string, bool) {
	if c.IsRoot() {
		return "", false
	}

	return c.Parents[0], true
}

// ShortHash returns the abbreviated commit hash used in logs.
func (c Commit) ShortHash() string {
	return ShortHash(c.Hash)
}

// ShortHash abbreviates a commit hash to seven characters.
func ShortHash(hash string) string {
	if len(hash) <= 7 {
		return hash
	}

	return hash[:7]
}
