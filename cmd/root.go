// Package cmd provides the root command and CLI setup for covquest.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"covquest.dev/pkg/covquest/internal/adapter"
	"covquest.dev/pkg/covquest/internal/controller"
	"covquest.dev/pkg/covquest/internal/domain"
	m "covquest.dev/pkg/covquest/internal/model"
)

var repositoryOpener adapter.RepositoryOpener
var reportReader adapter.ReportReader
var workspaceFS adapter.WorkspaceFSAdapter
var workflow domain.Workflow
var ui controller.UI

var (
	workspaceFlag   string
	reportRootFlag  string
	userFlag        string
	formatFlag      string
	parallelFlag    int
	verboseFlag     bool
	logFileFlag     string
	excludePatterns []string
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	repositoryOpener = adapter.NewGitRepositoryOpener()
	reportReader = adapter.NewHTMLReportReader()
	workspaceFS = adapter.NewLocalWorkspaceFSAdapter()
	workflow = domain.NewWorkflow(
		repositoryOpener,
		reportReader,
		workspaceFS,
		ui,
		nil,
	)
}

const rootLongDescription = `covquest turns your own recent commits into coverage challenges.

It walks the current branch's history, collects the source files you changed
in your last commits, and picks one whose coverage report still shows
partially covered or missed lines.

Coverage reports are read from an existing JaCoCo HTML report
(default: target/site/jacoco inside the workspace).`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

// newRootCmd returns a root command with its persistent flags configured.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "covquest",
		Short:        "Coverage challenges from your recent commits",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&workspaceFlag, workspaceFlagName, "w", viper.GetString(workspaceConfigKey), "path to the git working copy")
	bindFlagToConfig(flags.Lookup(workspaceFlagName), workspaceConfigKey)

	flags.StringVarP(&reportRootFlag, reportRootFlagName, "r", viper.GetString(reportRootConfigKey), "coverage report directory, relative to the workspace unless absolute")
	bindFlagToConfig(flags.Lookup(reportRootFlagName), reportRootConfigKey)

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude changed files matching regex (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.StringVarP(&userFlag, userFlagName, "u", viper.GetString(userConfigKey), "commit author name (default: user.name from git config)")
	bindFlagToConfig(flags.Lookup(userFlagName), userConfigKey)

	flags.StringVarP(&formatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "output format: text, json or yaml")
	bindFlagToConfig(flags.Lookup(formatFlagName), formatConfigKey)

	flags.IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of parallel report readers")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// runArgsFromConfig collects the arguments shared by every workflow command.
func runArgsFromConfig() (domain.RunArgs, error) {
	format, err := controller.ParseFormat(viper.GetString(formatConfigKey))
	if err != nil {
		return domain.RunArgs{}, err
	}

	return domain.RunArgs{
		Workspace: m.Path(viper.GetString(workspaceConfigKey)),
		User:      viper.GetString(userConfigKey),
		Settings:  settingsFromConfig(),
		Format:    format,
	}, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
