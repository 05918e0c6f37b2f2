package controller

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "covquest.dev/pkg/covquest/internal/model"
)

// StructuredUI writes machine-readable JSON or YAML documents.
type StructuredUI struct {
	cmd    *cobra.Command
	format Format
}

type candidatesDocument struct {
	Author     string        `json:"author,omitempty" yaml:"author,omitempty"`
	Candidates []m.Candidate `json:"candidates" yaml:"candidates"`
}

type noChallengeDocument struct {
	Author  string `json:"author,omitempty" yaml:"author,omitempty"`
	Message string `json:"message" yaml:"message"`
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

type diagnosticsDocument struct {
	Checks []m.Check `json:"checks" yaml:"checks"`
}

type challengesDocument struct {
	Challenges []m.Challenge `json:"challenges" yaml:"challenges"`
}

// NewStructuredUI creates a StructuredUI writing format.
func NewStructuredUI(cmd *cobra.Command, format Format) *StructuredUI {
	return &StructuredUI{cmd: cmd, format: format}
}

// Start initializes the UI.
func (s *StructuredUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *StructuredUI) Close(_ context.Context) {}

// DisplayChallenges writes the challenges document.
func (s *StructuredUI) DisplayChallenges(ctx context.Context, challenges []m.Challenge) error {
	return s.write(ctx, challengesDocument{Challenges: challenges})
}

// DisplayCandidates writes the candidates document.
func (s *StructuredUI) DisplayCandidates(ctx context.Context, author string, candidates []m.Candidate) error {
	if candidates == nil {
		candidates = []m.Candidate{}
	}

	return s.write(ctx, candidatesDocument{Author: author, Candidates: candidates})
}

// DisplayNoChallenge writes the failure document.
func (s *StructuredUI) DisplayNoChallenge(ctx context.Context, author string, reason error) error {
	document := noChallengeDocument{Author: author, Message: NoChallengeMessage}
	if reason != nil {
		document.Reason = reason.Error()
	}

	return s.write(ctx, document)
}

// DisplayDiagnostics writes the diagnostics document.
func (s *StructuredUI) DisplayDiagnostics(ctx context.Context, checks []m.Check) error {
	return s.write(ctx, diagnosticsDocument{Checks: checks})
}

func (s *StructuredUI) write(ctx context.Context, document any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := s.cmd.OutOrStdout()

	switch s.format {
	case FormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)

		if err := encoder.Encode(document); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return encoder.Close()
	default:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(document); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	}
}
