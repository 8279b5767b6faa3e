package main

import (
	"encoding/json"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/wordbook/internal/theme"
)

// outputStyles binds the user's theme to the command's output stream.
func outputStyles(cmd *cobra.Command, app *AppContext) theme.Styles {
	mode := theme.Light
	if themes, err := app.Theme(); err == nil {
		mode = themes.Mode()
	}
	return theme.StylesWithRenderer(mode, lipgloss.NewRenderer(cmd.OutOrStdout()))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
