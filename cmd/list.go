package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/patternbook/internal/patterns"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the patterns in page order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		snippets, err := patterns.List(cfg.PatternsDir, cfg.ListOptions())
		if err != nil {
			return err
		}

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(snippets)
		}

		if len(snippets) == 0 {
			fmt.Printf("No patterns found in %s\n", cfg.PatternsDir)
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TITLE\tANCHOR\tFILE")
		for _, s := range snippets {
			fmt.Fprintf(tw, "%s\t#%s\t%s\n", s.Title(), s.Anchor, s.Name)
		}
		return tw.Flush()
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the list as JSON")
	rootCmd.AddCommand(listCmd)
}
