package cmd

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/patternbook/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing tools to list patterns and fetch their source or rendered markup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, renderer, err := setup()
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		logger.Info("patternbook MCP server started on stdio", "patterns_dir", cfg.PatternsDir)

		srv := mcpserver.NewServer(cfg.PatternsDir, cfg.ListOptions(), renderer)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
