package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type sampleReport struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func TestOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := Output(sampleReport{Name: "bench", Count: 3}, OutputOptions{
		Format: FormatJSON,
		Writer: &buf,
	})
	require.NoError(t, err)

	var got sampleReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "bench", got.Name)
	require.Equal(t, 3, got.Count)
}

func TestOutput_YAMLDefault(t *testing.T) {
	var buf bytes.Buffer
	err := Output(sampleReport{Name: "bench", Count: 3}, OutputOptions{
		Writer: &buf,
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "name: bench")
	require.Contains(t, buf.String(), "count: 3")
}

func TestOutput_UnsupportedFormat(t *testing.T) {
	err := Output(sampleReport{}, OutputOptions{Format: "xml", Writer: &bytes.Buffer{}})
	require.Error(t, err)
}
