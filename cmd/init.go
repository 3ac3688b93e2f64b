package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/patternbook/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize patternbook configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the pattern page and writes the answers to the config file (.patternbook.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.RunWizard(cfgFile); err != nil {
			return err
		}
		fmt.Printf("Configuration written to %s\n", cfgFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
