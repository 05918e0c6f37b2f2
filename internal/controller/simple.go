package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "covquest.dev/pkg/covquest/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayChallenges prints one line per challenge.
func (s *SimpleUI) DisplayChallenges(ctx context.Context, challenges []m.Challenge) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, challenge := range challenges {
		s.printf("%s (%s)\n", challenge, formatCoverage(challenge.Coverage))
	}

	return nil
}

// DisplayCandidates prints a table of candidates and their coverage.
func (s *SimpleUI) DisplayCandidates(ctx context.Context, author string, candidates []m.Candidate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if author != "" {
		s.printf("Recent changes by %s\n", author)
	}

	s.printf("\n%s", renderCandidateTable(candidates))

	return nil
}

// DisplayNoChallenge prints the failure message.
func (s *SimpleUI) DisplayNoChallenge(ctx context.Context, author string, _ error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if author == "" {
		s.printf("%s\n", NoChallengeMessage)
		return nil
	}

	s.printf("%s for %s\n", NoChallengeMessage, author)

	return nil
}

// DisplayDiagnostics prints one line per check.
func (s *SimpleUI) DisplayDiagnostics(ctx context.Context, checks []m.Check) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, check := range checks {
		s.printf("[%s] %s: %s\n", checkLabel(check), check.Name, check.Detail)
	}

	return nil
}

func renderCandidateTable(candidates []m.Candidate) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Class", "Covered", "Partial", "Missed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	eligible := 0

	for _, candidate := range candidates {
		table.Append(candidateRow(candidate))

		if candidate.Eligible() {
			eligible++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(candidates)),
		fmt.Sprintf("Eligible %d", eligible),
		"", "", "",
	})

	table.Render()

	return tableBuffer.String()
}

func candidateRow(candidate m.Candidate) []string {
	class := candidate.Location.QualifiedName()
	if !candidate.Located {
		class = noReportLabel
	}

	if candidate.Report.Absent {
		return []string{string(candidate.Source), class, "-", "-", "-"}
	}

	return []string{
		string(candidate.Source),
		class,
		fmt.Sprintf("%d", candidate.Report.Covered),
		fmt.Sprintf("%d", candidate.Report.Partial),
		fmt.Sprintf("%d", candidate.Report.Uncovered),
	}
}

func formatCoverage(report m.CoverageReport) string {
	if report.Absent {
		return noReportLabel
	}

	return fmt.Sprintf("%d covered, %d partial, %d missed", report.Covered, report.Partial, report.Uncovered)
}

func checkLabel(check m.Check) string {
	if check.OK {
		return "ok"
	}

	return "fail"
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

const noReportLabel = "no report"
