package cmd

import (
	"github.com/spf13/cobra"

	"covquest.dev/pkg/covquest/internal/domain"
)

// doctorCmd represents the doctor command.
var doctorCmd = newDoctorCmd()

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the workspace and coverage report can be read",
		Long: `Check that the workspace is a git repository with a resolvable HEAD, that
the commit author is known and that the coverage report directory exists and
contains index.html.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runArgs, err := runArgsFromConfig()
			if err != nil {
				return err
			}

			return workflow.Doctor(cmd.Context(), domain.DoctorArgs{RunArgs: runArgs})
		},
	}
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
