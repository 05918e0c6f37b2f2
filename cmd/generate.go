package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"covquest.dev/pkg/covquest/internal/domain"
)

var generateCountFlag int

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

const generateLongDescription = `Generate a coverage challenge from your recent commits.

The last commits you authored on the current branch are scanned (up to 10 of
your commits within the last 100 commits). Test sources are skipped. A changed
class whose coverage report still shows partially covered or missed lines is
picked at random.`

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Pick a class you recently changed and challenge yourself to cover it",
		Long:  generateLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runArgs, err := runArgsFromConfig()
			if err != nil {
				return err
			}

			return workflow.Generate(cmd.Context(), domain.ChallengeArgs{
				RunArgs: runArgs,
				Count:   viper.GetInt(countConfigKey),
			})
		},
	}

	cmd.Flags().IntVarP(&generateCountFlag, countFlagName, "n", viper.GetInt(countConfigKey), "number of distinct challenges to draw")
	bindFlagToConfig(cmd.Flags().Lookup(countFlagName), countConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
