package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose      bool
	formatOutput string
	outputFile   string
)

var rootCmd = &cobra.Command{
	Use:   "ringbench",
	Short: "Benchmark and demo tool for the ringbuf packages",
	Long: `ringbench — exercise the growable ring buffer engine.

Commands:
  bench     Timed append/drain cycles over the ring engine
  pipe      Copy stdin to stdout through a ring-backed pipe
  tail      Keep the last N lines of stdin in a bounded window
  version   Version information

Examples:
  ringbench bench --batch 4096 --cycles 100000
  ringbench bench --format json -o report.json
  cat access.log | ringbench tail -n 20
  some-producer | ringbench pipe | some-consumer`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&formatOutput, "format", "text", "output format: text, json, yaml")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "output file path")
}
