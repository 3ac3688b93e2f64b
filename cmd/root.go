package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "patternbook",
	Short: "Living style guide for admin markup patterns",
	Long: `Patternbook turns a directory of HTML snippets into a single reference
page. Every snippet is shown rendered, followed by a collapsible panel with
its escaped source, and a mini menu links to each one. The page can be
served over HTTP, exported as a static file or queried by AI agents via MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".patternbook.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
