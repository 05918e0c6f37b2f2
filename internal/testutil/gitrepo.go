// Package testutil provides fixtures shared by package tests: throwaway git
// repositories and coverage report files.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitRepo is a git working copy created in a temporary directory.
type GitRepo struct {
	t    testing.TB
	Dir  string
	Repo *git.Repository
	wt   *git.Worktree
	when time.Time
	seq  int
}

// NewGitRepo initialises an empty repository in t.TempDir().
func NewGitRepo(t testing.TB) *GitRepo {
	t.Helper()

	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init repository: %v", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("open worktree: %v", err)
	}

	return &GitRepo{
		t:    t,
		Dir:  dir,
		Repo: repo,
		wt:   wt,
		when: time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC),
	}
}

// WriteFile writes content to rel and stages it.
func (r *GitRepo) WriteFile(rel, content string) {
	r.t.Helper()

	full := filepath.Join(r.Dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		r.t.Fatalf("mkdir %s: %v", rel, err)
	}

	if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
		r.t.Fatalf("write %s: %v", rel, err)
	}

	if _, err := r.wt.Add(rel); err != nil {
		r.t.Fatalf("stage %s: %v", rel, err)
	}
}

// Touch writes a fresh revision of every path and stages it.
func (r *GitRepo) Touch(paths ...string) {
	r.t.Helper()

	for _, rel := range paths {
		r.seq++
		r.WriteFile(rel, fmt.Sprintf("revision %d of %s\n", r.seq, rel))
	}
}

// RemoveFile deletes rel from the worktree and the index.
func (r *GitRepo) RemoveFile(rel string) {
	r.t.Helper()

	if _, err := r.wt.Remove(rel); err != nil {
		r.t.Fatalf("remove %s: %v", rel, err)
	}
}

// Commit records the staged changes as author. Without explicit parents the
// commit goes on top of HEAD.
func (r *GitRepo) Commit(author, message string, parents ...string) string {
	r.t.Helper()

	r.when = r.when.Add(time.Minute)
	sig := &object.Signature{
		Name:  author,
		Email: strings.ToLower(strings.ReplaceAll(author, " ", ".")) + "@example.com",
		When:  r.when,
	}

	opts := &git.CommitOptions{Author: sig, AllowEmptyCommits: true}
	for _, parent := range parents {
		opts.Parents = append(opts.Parents, plumbing.NewHash(parent))
	}

	hash, err := r.wt.Commit(message, opts)
	if err != nil {
		r.t.Fatalf("commit %q: %v", message, err)
	}

	return hash.String()
}

// CommitFiles touches paths and commits them as author.
func (r *GitRepo) CommitFiles(author string, paths ...string) string {
	r.t.Helper()

	r.Touch(paths...)

	return r.Commit(author, fmt.Sprintf("%s changes %s", author, strings.Join(paths, ", ")))
}

// Reset moves HEAD and the worktree to hash.
func (r *GitRepo) Reset(hash string) {
	r.t.Helper()

	err := r.wt.Reset(&git.ResetOptions{Commit: plumbing.NewHash(hash), Mode: git.HardReset})
	if err != nil {
		r.t.Fatalf("reset to %s: %v", hash, err)
	}
}

// SetUserName writes user.name into the repository-local configuration.
func (r *GitRepo) SetUserName(name string) {
	r.t.Helper()

	cfg, err := r.Repo.Config()
	if err != nil {
		r.t.Fatalf("read config: %v", err)
	}

	cfg.User.Name = name
	if err := r.Repo.SetConfig(cfg); err != nil {
		r.t.Fatalf("write config: %v", err)
	}
}
