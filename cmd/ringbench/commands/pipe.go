package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/CasualX/ringbuf/pkg/buffer"
)

var flagPipeBuffer int

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Copy stdin to stdout through a ring-backed pipe",
	Long: `Copy stdin to stdout through a buffer.Pipe.

A writer goroutine fills the pipe from stdin while the main goroutine
drains it to stdout. The pipe grows to the peak backlog once and then
reuses that storage for the rest of the stream.`,
	RunE: runPipe,
}

func init() {
	pipeCmd.Flags().IntVar(&flagPipeBuffer, "buffer", 1<<12, "initial pipe capacity in bytes")
	rootCmd.AddCommand(pipeCmd)
}

func runPipe(cmd *cobra.Command, args []string) error {
	p := buffer.BytesPipeN(flagPipeBuffer)

	go func() {
		defer p.CloseWrite()
		n, err := io.Copy(p, os.Stdin)
		if err != nil {
			p.CloseWithError(err)
			return
		}
		slog.Debug("stdin drained", "bytes", n)
	}()

	n, err := io.Copy(os.Stdout, p)
	if err != nil {
		return err
	}
	slog.Debug("pipe done", "bytes", n, "peak_cap", p.Cap())
	return nil
}
