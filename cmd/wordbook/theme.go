package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/wordbook/internal/theme"
)

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the light/dark theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeShow(cmd, rootFlags)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the active theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeShow(cmd, rootFlags)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeChange(cmd, rootFlags, func(m *theme.Manager) (theme.Mode, error) {
				return m.Toggle()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Choose the theme explicitly",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := theme.ParseMode(args[0])
			if err != nil {
				return newCommandError("set theme", "parsing theme name", err, "Use 'light' or 'dark'.")
			}
			return runThemeChange(cmd, rootFlags, func(m *theme.Manager) (theme.Mode, error) {
				return mode, m.Set(mode)
			})
		},
	})

	return cmd
}

func runThemeShow(cmd *cobra.Command, rootFlags *rootFlags) error {
	app, err := newAppContext(cmd, rootFlags, "theme.show")
	if err != nil {
		return err
	}
	defer app.Close()

	themes, err := app.Theme()
	if err != nil {
		return newCommandError("show theme", "loading theme", err, "Check permissions on "+app.DataDir+".")
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), themes.Mode().Short())
	return nil
}

func runThemeChange(cmd *cobra.Command, rootFlags *rootFlags, change func(*theme.Manager) (theme.Mode, error)) error {
	app, err := newAppContext(cmd, rootFlags, "theme.change")
	if err != nil {
		return err
	}
	defer app.Close()

	themes, err := app.Theme()
	if err != nil {
		return newCommandError("change theme", "loading theme", err, "Check permissions on "+app.DataDir+".")
	}

	mode, err := change(themes)
	if err != nil {
		return newCommandError("change theme", "saving theme", err, "Check permissions on "+app.DataDir+".")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Theme set to %s\n", mode.Short())
	return nil
}
