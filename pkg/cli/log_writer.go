package cli

import (
	"strings"

	"github.com/CasualX/ringbuf/pkg/buffer"
)

// LogBuffer is a thread-safe bounded history of log lines.
type LogBuffer = buffer.Window[string]

// NewLogBuffer creates a new buffer keeping the last maxLines lines.
func NewLogBuffer(maxLines int) *LogBuffer {
	return buffer.WindowN[string](maxLines)
}

// LogWriter implements io.Writer and keeps the most recent log lines in a
// bounded window. Suitable as a slog sink when only the tail of the log
// matters.
type LogWriter struct {
	buf *LogBuffer
}

// NewLogWriter creates a new log writer keeping the last maxLines lines.
func NewLogWriter(maxLines int) *LogWriter {
	return &LogWriter{buf: NewLogBuffer(maxLines)}
}

// Write implements io.Writer.
// Handles multi-line input by splitting on newlines.
func (w *LogWriter) Write(p []byte) (n int, err error) {
	text := strings.TrimRight(string(p), "\n")
	for _, line := range strings.Split(text, "\n") {
		w.buf.Push(line)
	}
	return len(p), nil
}

// Lines returns all buffered lines, oldest first.
func (w *LogWriter) Lines() []string {
	return w.buf.Snapshot()
}

// Last returns the last n buffered lines, oldest first.
func (w *LogWriter) Last(n int) []string {
	return w.buf.Last(n)
}
