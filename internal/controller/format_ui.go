package controller

import (
	"context"

	"github.com/spf13/cobra"

	m "covquest.dev/pkg/covquest/internal/model"
)

// FormatUI chooses its renderer from the format passed to Start.
type FormatUI struct {
	cmd      *cobra.Command
	isTTY    bool
	renderer UI
}

// NewUI creates a FormatUI. Text output is styled on terminals.
func NewUI(cmd *cobra.Command, isTTY bool) *FormatUI {
	return &FormatUI{cmd: cmd, isTTY: isTTY, renderer: NewSimpleUI(cmd)}
}

// Start selects the renderer and starts it.
func (u *FormatUI) Start(ctx context.Context, options ...StartOption) error {
	config := newStartConfig(options)
	u.renderer = NewRenderer(u.cmd, config.format, u.isTTY)

	return u.renderer.Start(ctx, options...)
}

// Close finalizes the active renderer.
func (u *FormatUI) Close(ctx context.Context) {
	u.renderer.Close(ctx)
}

// DisplayChallenges delegates to the active renderer.
func (u *FormatUI) DisplayChallenges(ctx context.Context, challenges []m.Challenge) error {
	return u.renderer.DisplayChallenges(ctx, challenges)
}

// DisplayCandidates delegates to the active renderer.
func (u *FormatUI) DisplayCandidates(ctx context.Context, author string, candidates []m.Candidate) error {
	return u.renderer.DisplayCandidates(ctx, author, candidates)
}

// DisplayNoChallenge delegates to the active renderer.
func (u *FormatUI) DisplayNoChallenge(ctx context.Context, author string, reason error) error {
	return u.renderer.DisplayNoChallenge(ctx, author, reason)
}

// DisplayDiagnostics delegates to the active renderer.
func (u *FormatUI) DisplayDiagnostics(ctx context.Context, checks []m.Check) error {
	return u.renderer.DisplayDiagnostics(ctx, checks)
}
