package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tagforge",
	Short: "A CLI tool for namespaced semver tags in a monorepo",
	Long: `tagforge manages per-application release tags of the form
@<namespace>/<major>.<minor>.<patch> inside a single git repository.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func Execute() error {
	return rootCmd.Execute()
}
