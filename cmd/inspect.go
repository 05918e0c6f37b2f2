package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"covquest.dev/pkg/covquest/internal/domain"
)

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <path>...",
		Short: "Show the coverage report location and counts for source files",
		Long: `Show where the coverage report of each given source file is expected and
what it contains. Paths are relative to the workspace, e.g.
src/main/java/com/acme/Foo.java.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runArgs, err := runArgsFromConfig()
			if err != nil {
				return err
			}

			return workflow.Inspect(cmd.Context(), domain.InspectArgs{
				RunArgs:  runArgs,
				Paths:    parsePaths(args),
				Parallel: viper.GetInt(parallelConfigKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
