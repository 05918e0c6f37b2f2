package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"covquest.dev/pkg/covquest/internal/domain"
)

var scanAllFlag bool

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List the classes you recently changed and their coverage",
		Long: `List the source files changed by your recent commits together with the
coverage of each class. Only challenge candidates are shown unless --all is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runArgs, err := runArgsFromConfig()
			if err != nil {
				return err
			}

			return workflow.Scan(cmd.Context(), domain.ScanArgs{
				RunArgs:  runArgs,
				All:      scanAllFlag,
				Parallel: viper.GetInt(parallelConfigKey),
			})
		},
	}

	cmd.Flags().BoolVarP(&scanAllFlag, "all", "a", false, "include fully covered files and files without a report")

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
