package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "covquest.dev/pkg/covquest/internal/model"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)
)

// StyledUI renders text output with colors and borders for terminals.
type StyledUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	return &StyledUI{cmd: cmd}
}

// Start remembers the mode and prints its title.
func (s *StyledUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mode = newStartConfig(options).mode
	s.println(infoStyle.Render("covquest " + s.mode.String()))

	return nil
}

// Close finalizes the UI.
func (s *StyledUI) Close(_ context.Context) {}

// DisplayChallenges renders each challenge in a box.
func (s *StyledUI) DisplayChallenges(ctx context.Context, challenges []m.Challenge) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, challenge := range challenges {
		body := strings.Join([]string{
			successStyle.Render(challenge.String()),
			faintStyle.Render(string(challenge.Source)),
			formatCoverage(challenge.Coverage),
		}, "\n")

		s.println(boxStyle.Render(body))
	}

	return nil
}

// DisplayCandidates renders the candidate table with eligible rows highlighted.
func (s *StyledUI) DisplayCandidates(ctx context.Context, author string, candidates []m.Candidate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if author != "" {
		s.println(faintStyle.Render("Recent changes by " + author))
	}

	for _, line := range strings.Split(strings.TrimRight(renderCandidateTable(candidates), "\n"), "\n") {
		s.println(line)
	}

	return nil
}

// DisplayNoChallenge renders the failure message as a warning.
func (s *StyledUI) DisplayNoChallenge(ctx context.Context, author string, reason error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := NoChallengeMessage
	if author != "" {
		message += " for " + author
	}

	s.println(warningStyle.Render(message))

	if reason != nil {
		s.println(faintStyle.Render(reason.Error()))
	}

	return nil
}

// DisplayDiagnostics renders one colored line per check.
func (s *StyledUI) DisplayDiagnostics(ctx context.Context, checks []m.Check) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, check := range checks {
		mark := successStyle.Render("✓")
		if !check.OK {
			mark = errorStyle.Render("✗")
		}

		s.println(fmt.Sprintf("%s %s %s", mark, check.Name, faintStyle.Render(check.Detail)))
	}

	return nil
}

func (s *StyledUI) println(line string) {
	_, _ = fmt.Fprintln(s.cmd.OutOrStdout(), line)
}
