package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBenchCommand_JSONReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")

	rootCmd.SetArgs([]string{"bench", "--batch", "64", "--cycles", "50", "--format", "json", "-o", out})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var report BenchReport
	require.NoError(t, json.Unmarshal(data, &report))
	require.Equal(t, 50, report.Cycles)
	require.Equal(t, 64, report.Batch)
	require.Equal(t, int64(50*64), report.BytesMoved)
	require.NotEmpty(t, report.RunID)
	// steady-state append/drain grows once at most
	require.LessOrEqual(t, report.Growths, 1)
}
