package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CasualX/ringbuf/pkg/buffer"
)

var flagTailLines int

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Keep and print the last N lines of stdin",
	Long: `Read stdin to the end while keeping only the last N lines in a
fixed-capacity window, then print them. Memory use is bounded by the
window size regardless of input length.`,
	RunE: runTail,
}

func init() {
	tailCmd.Flags().IntVarP(&flagTailLines, "lines", "n", 10, "number of lines to keep")
	rootCmd.AddCommand(tailCmd)
}

func runTail(cmd *cobra.Command, args []string) error {
	w := buffer.WindowN[string](flagTailLines)

	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		w.Push(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	for _, line := range w.Snapshot() {
		fmt.Println(line)
	}
	return nil
}
