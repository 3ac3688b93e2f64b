package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/patternbook/internal/export"
	"github.com/ziadkadry99/patternbook/internal/progress"
)

var (
	exportOutput string
	exportWatch  bool
	exportQuiet  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the pattern page to a standalone HTML file",
	Long: `Renders the pattern page once and writes it to a file. With --watch the
page is re-exported whenever the pattern directory changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, renderer, err := setup()
		if err != nil {
			return err
		}

		output := cfg.Export.Output
		if cmd.Flags().Changed("output") {
			output = exportOutput
		}

		e := &export.Exporter{
			Renderer: renderer,
			Dir:      cfg.PatternsDir,
			Options:  cfg.ListOptions(),
			Output:   output,
			Reporter: progress.NewReporter(exportQuiet || exportWatch),
			Logger:   logger,
		}

		n, err := e.Export()
		if err != nil {
			return err
		}
		if !exportQuiet {
			fmt.Fprintf(os.Stderr, "Exported %d pattern(s) to %s\n", n, output)
		}

		if !exportWatch {
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return e.Watch(ctx, export.DefaultDebounce)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "patternbook.html", "Output file (overrides export.output)")
	exportCmd.Flags().BoolVarP(&exportWatch, "watch", "w", false, "Re-export when the pattern directory changes")
	exportCmd.Flags().BoolVarP(&exportQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.AddCommand(exportCmd)
}
