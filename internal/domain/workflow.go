package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"covquest.dev/pkg/covquest/internal/adapter"
	"covquest.dev/pkg/covquest/internal/controller"
	m "covquest.dev/pkg/covquest/internal/model"
)

// ReportIndexFile must exist at the root of a coverage report tree.
const ReportIndexFile = "index.html"

// RunArgs are shared by every workflow command.
type RunArgs struct {
	Workspace m.Path
	User      string
	Settings  Settings
	Format    controller.Format
}

// ChallengeArgs contains the arguments for generating challenges.
type ChallengeArgs struct {
	RunArgs
	Count int
}

// ScanArgs contains the arguments for listing recent candidates.
type ScanArgs struct {
	RunArgs
	All      bool // include candidates that are fully covered or have no report
	Parallel int
}

// InspectArgs contains the arguments for inspecting explicit sources.
type InspectArgs struct {
	RunArgs
	Paths    []m.Path
	Parallel int
}

// DoctorArgs contains the arguments for workspace diagnostics.
type DoctorArgs struct {
	RunArgs
}

// Workflow runs the CLI-facing commands and renders their results.
type Workflow interface {
	Generate(ctx context.Context, args ChallengeArgs) error
	Scan(ctx context.Context, args ScanArgs) error
	Inspect(ctx context.Context, args InspectArgs) error
	Doctor(ctx context.Context, args DoctorArgs) error
}

type workflow struct {
	adapter.RepositoryOpener
	adapter.ReportReader
	adapter.WorkspaceFSAdapter
	controller.UI
	random RandomSource
}

// NewWorkflow creates a Workflow with the provided dependencies. A nil random
// uses NewRandomSource.
func NewWorkflow(
	opener adapter.RepositoryOpener,
	reader adapter.ReportReader,
	fsAdapter adapter.WorkspaceFSAdapter,
	ui controller.UI,
	random RandomSource,
) Workflow {
	return &workflow{
		RepositoryOpener:   opener,
		ReportReader:       reader,
		WorkspaceFSAdapter: fsAdapter,
		UI:                 ui,
		random:             random,
	}
}

func (w *workflow) Generate(ctx context.Context, args ChallengeArgs) error {
	pipeline, err := w.pipeline(args.RunArgs)
	if err != nil {
		return err
	}

	if err := w.start(ctx, controller.ModeGenerate, args.Format); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	author, err := pipeline.Walker.ResolveAuthor(ctx, args.Workspace, args.User)
	if err != nil {
		return err
	}

	challenges, err := pipeline.Generator.Generate(ctx, GenerateArgs{
		Workspace: args.Workspace,
		User:      author,
		Count:     args.Count,
	})
	if errors.Is(err, ErrNoEligibleCandidate) {
		if displayErr := w.DisplayNoChallenge(ctx, author, err); displayErr != nil {
			return fmt.Errorf("display: %w", displayErr)
		}

		return err
	}

	if err != nil {
		slog.Error("Failed to generate challenge", "author", author, "error", err)
		return err
	}

	if err := w.DisplayChallenges(ctx, challenges); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	pipeline, err := w.pipeline(args.RunArgs)
	if err != nil {
		return err
	}

	if err := w.start(ctx, controller.ModeScan, args.Format); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	author, err := pipeline.Walker.ResolveAuthor(ctx, args.Workspace, args.User)
	if err != nil {
		return err
	}

	changes, err := pipeline.Walker.ScanUserChanges(ctx, args.Workspace, author)
	if err != nil {
		return err
	}

	candidates, err := pipeline.Inspector.InspectAll(ctx, w.reportRoot(ctx, args.RunArgs), changes.Paths(), args.Parallel)
	if err != nil {
		return fmt.Errorf("inspect candidates: %w", err)
	}

	if !args.All {
		candidates = eligibleOnly(candidates)
	}

	if err := w.DisplayCandidates(ctx, author, candidates); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) Inspect(ctx context.Context, args InspectArgs) error {
	pipeline, err := w.pipeline(args.RunArgs)
	if err != nil {
		return err
	}

	if err := w.start(ctx, controller.ModeInspect, args.Format); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	candidates, err := pipeline.Inspector.InspectAll(ctx, w.reportRoot(ctx, args.RunArgs), args.Paths, args.Parallel)
	if err != nil {
		return fmt.Errorf("inspect sources: %w", err)
	}

	if err := w.DisplayCandidates(ctx, args.User, candidates); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) Doctor(ctx context.Context, args DoctorArgs) error {
	pipeline, err := w.pipeline(args.RunArgs)
	if err != nil {
		return err
	}

	if err := w.start(ctx, controller.ModeDoctor, args.Format); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	checks := w.repositoryChecks(ctx, pipeline, args.RunArgs)
	checks = append(checks, w.reportChecks(ctx, args.RunArgs)...)

	if err := w.DisplayDiagnostics(ctx, checks); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	for _, check := range checks {
		if !check.OK {
			return fmt.Errorf("%w: %s", ErrDiagnosticsFailed, check.Name)
		}
	}

	return nil
}

func (w *workflow) repositoryChecks(ctx context.Context, pipeline *Pipeline, args RunArgs) []m.Check {
	repo, err := w.Open(ctx, args.Workspace)
	if err != nil {
		return []m.Check{{Name: "git repository", Detail: err.Error()}}
	}

	checks := []m.Check{{Name: "git repository", OK: true, Detail: string(args.Workspace)}}

	head, err := repo.Head(ctx)
	if err != nil {
		checks = append(checks, m.Check{Name: "HEAD", Detail: err.Error()})
	} else {
		checks = append(checks, m.Check{Name: "HEAD", OK: true, Detail: head.ShortHash() + " by " + head.Author})
	}

	author, err := pipeline.Walker.ResolveAuthor(ctx, args.Workspace, args.User)
	if err != nil {
		return append(checks, m.Check{Name: "author", Detail: err.Error()})
	}

	return append(checks, m.Check{Name: "author", OK: true, Detail: author})
}

func (w *workflow) reportChecks(ctx context.Context, args RunArgs) []m.Check {
	root := w.reportRoot(ctx, args)

	info, err := w.FileInfo(ctx, root)
	if err != nil {
		return []m.Check{{Name: "report root", Detail: err.Error()}}
	}

	if !info.IsDir() {
		return []m.Check{{Name: "report root", Detail: string(root) + " is not a directory"}}
	}

	checks := []m.Check{{Name: "report root", OK: true, Detail: string(root)}}

	index := w.JoinPath(ctx, string(root), ReportIndexFile)
	if _, err := w.FileInfo(ctx, index); err != nil {
		return append(checks, m.Check{Name: "report index", Detail: err.Error()})
	}

	return append(checks, m.Check{Name: "report index", OK: true, Detail: string(index)})
}

func (w *workflow) start(ctx context.Context, mode controller.StartMode, format controller.Format) error {
	return w.Start(ctx, controller.WithMode(mode), controller.WithFormat(format))
}

func (w *workflow) pipeline(args RunArgs) (*Pipeline, error) {
	pipeline, err := NewPipeline(w.RepositoryOpener, w.ReportReader, w.WorkspaceFSAdapter, args.Settings, w.random)
	if err != nil {
		slog.Error("Invalid pipeline settings", "error", err)
		return nil, fmt.Errorf("configure pipeline: %w", err)
	}

	return pipeline, nil
}

func (w *workflow) reportRoot(ctx context.Context, args RunArgs) m.Path {
	root := args.Settings.ReportRoot
	if root == "" {
		root = DefaultReportRoot
	}

	return w.Resolve(ctx, args.Workspace, root)
}

func eligibleOnly(candidates []m.Candidate) []m.Candidate {
	eligible := make([]m.Candidate, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate.Eligible() {
			eligible = append(eligible, candidate)
		}
	}

	return eligible
}
