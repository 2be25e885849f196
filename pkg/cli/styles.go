package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for styled terminal output.
type Theme struct {
	Primary lipgloss.Color // Main accent color
	Dim     lipgloss.Color // Dimmed/secondary text color
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Dim   lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label: lipgloss.NewStyle().Foreground(t.Dim),
		Value: lipgloss.NewStyle().Bold(true),
		Dim:   lipgloss.NewStyle().Foreground(t.Dim),
	}
}

// KV is a single labeled value in a summary block.
type KV struct {
	Key   string
	Value string
}

// RenderSummary renders a titled key/value block with aligned labels.
func (s Styles) RenderSummary(title string, rows []KV) string {
	width := 0
	for _, kv := range rows {
		width = max(width, len(kv.Key))
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(title))
	b.WriteByte('\n')
	for _, kv := range rows {
		pad := strings.Repeat(" ", width-len(kv.Key))
		b.WriteString("  ")
		b.WriteString(s.Label.Render(kv.Key + pad))
		b.WriteString("  ")
		b.WriteString(s.Value.Render(kv.Value))
		b.WriteByte('\n')
	}
	return b.String()
}
