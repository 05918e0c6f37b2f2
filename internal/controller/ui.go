// Package controller provides output adapters for displaying challenges and
// coverage candidates.
package controller

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "covquest.dev/pkg/covquest/internal/model"
)

// StartMode defines the command the UI is rendering for.
type StartMode int

// Available StartMode values.
const (
	ModeGenerate StartMode = iota
	ModeScan
	ModeInspect
	ModeDoctor
)

func (s StartMode) String() string {
	switch s {
	case ModeGenerate:
		return "generate"
	case ModeScan:
		return "scan"
	case ModeInspect:
		return "inspect"
	case ModeDoctor:
		return "doctor"
	default:
		return "unknown"
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	format Format
}

// WithMode sets the command the UI renders for.
func WithMode(mode StartMode) StartOption {
	return func(c *StartConfig) {
		c.mode = mode
	}
}

// WithFormat sets the output format.
func WithFormat(format Format) StartOption {
	return func(c *StartConfig) {
		c.format = format
	}
}

func newStartConfig(options []StartOption) StartConfig {
	config := StartConfig{}
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines the interface for displaying pipeline results.
// Implementations can use different output methods (plain text, styled, json).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayChallenges(ctx context.Context, challenges []m.Challenge) error
	DisplayCandidates(ctx context.Context, author string, candidates []m.Candidate) error
	DisplayNoChallenge(ctx context.Context, author string, reason error) error
	DisplayDiagnostics(ctx context.Context, checks []m.Check) error
}

// Format selects how results are rendered.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an output format name.
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return Format(value), nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want text, json or yaml)", value)
	}
}

// NewRenderer picks the UI for format. Text output is styled when styled is true.
func NewRenderer(cmd *cobra.Command, format Format, styled bool) UI {
	switch format {
	case FormatJSON, FormatYAML:
		return NewStructuredUI(cmd, format)
	}

	if styled {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// NoChallengeMessage is shown when selection found nothing eligible.
const NoChallengeMessage = "no challenge could be generated this time"
