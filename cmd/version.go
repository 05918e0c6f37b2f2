package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the covquest build version, module path and the Go version used to build it.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd, debug.ReadBuildInfo)
		},
	}
}

func printVersion(cmd *cobra.Command, readBuildInfo func() (*debug.BuildInfo, bool)) {
	info, ok := readBuildInfo()
	if !ok || info.Main.Version == "" {
		cmd.Println("covquest version: unknown")
		return
	}

	cmd.Println("covquest version\t", info.Main.Version)
	cmd.Println("module\t\t", info.Main.Path)
	cmd.Println("go version\t", info.GoVersion)
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
