package ui

import (
	"encoding/json"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary = lipgloss.Color("39")  // Cyan
	ColorSuccess = lipgloss.Color("82")  // Green
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("245") // Gray
)

// Styles for various UI elements
var (
	Header  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	Success = lipgloss.NewStyle().Foreground(ColorSuccess)
	Error   = lipgloss.NewStyle().Foreground(ColorError)
	Dim     = lipgloss.NewStyle().Foreground(ColorMuted)

	resultBody = lipgloss.NewStyle().PaddingLeft(2)
)

// RenderTitle renders a section title for CLI output.
func RenderTitle(title string) string {
	return Header.Render(title)
}

// RenderError renders an error line for CLI output.
func RenderError(msg string) string {
	return Error.Render("error: " + msg)
}

// RenderResult renders an operation result: structured values as indented
// JSON, anything else verbatim (the embedding CLI's table output is
// already formatted).
func RenderResult(v any) string {
	if s, ok := v.(string); ok {
		return resultBody.Render(s)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Dim.Render("(unrenderable result)")
	}
	return resultBody.Render(string(data))
}
