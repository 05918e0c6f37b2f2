package domain

import (
	"context"
	"fmt"
	"log/slog"

	"covquest.dev/pkg/covquest/internal/adapter"
	m "covquest.dev/pkg/covquest/internal/model"
)

// GenerateArgs identifies who to generate challenges for.
type GenerateArgs struct {
	Workspace m.Path
	User      string // empty selects the repository's configured user name
	Count     int    // values below 1 mean 1
}

// Generator composes the history walk and the selector.
type Generator interface {
	// GenerateChallenge produces a single challenge for user.
	GenerateChallenge(ctx context.Context, workspace m.Path, user string) (m.Challenge, error)
	// Generate produces up to args.Count distinct challenges.
	Generate(ctx context.Context, args GenerateArgs) ([]m.Challenge, error)
}

type generator struct {
	HistoryWalker
	ChallengeSelector
	adapter.WorkspaceFSAdapter
	reportRoot m.Path
}

// NewGenerator creates a Generator. reportRoot is resolved against the
// workspace unless it is absolute.
func NewGenerator(
	walker HistoryWalker,
	selector ChallengeSelector,
	fsAdapter adapter.WorkspaceFSAdapter,
	reportRoot m.Path,
) Generator {
	return &generator{
		HistoryWalker:      walker,
		ChallengeSelector:  selector,
		WorkspaceFSAdapter: fsAdapter,
		reportRoot:         reportRoot,
	}
}

func (g *generator) GenerateChallenge(ctx context.Context, workspace m.Path, user string) (m.Challenge, error) {
	challenges, err := g.Generate(ctx, GenerateArgs{Workspace: workspace, User: user, Count: 1})
	if err != nil {
		return m.Challenge{}, err
	}

	return challenges[0], nil
}

func (g *generator) Generate(ctx context.Context, args GenerateArgs) ([]m.Challenge, error) {
	author, err := g.ResolveAuthor(ctx, args.Workspace, args.User)
	if err != nil {
		return nil, err
	}

	changes, err := g.ScanUserChanges(ctx, args.Workspace, author)
	if err != nil {
		return nil, err
	}

	reportRoot := g.Resolve(ctx, args.Workspace, g.reportRoot)

	slog.Info("selecting challenge",
		"author", author,
		"candidates", changes.Len(),
		"reportRoot", reportRoot,
		"count", args.Count)

	challenges, err := g.SelectN(ctx, reportRoot, author, changes.Paths(), args.Count)
	if err != nil {
		return nil, fmt.Errorf("select challenge for %s: %w", author, err)
	}

	return challenges, nil
}
