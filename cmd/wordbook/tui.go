package main

import (
	"errors"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/wordbook/internal/tui"
)

func newTUICmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.InOrStdin()) {
				return newCommandError("launch the interactive view", "checking the terminal", errors.New("stdin is not a terminal"), "Use 'wordbook lookup <word>' in scripts and pipelines.")
			}
			return runTUI(cmd, flags)
		},
	}

	return cmd
}

func runTUI(cmd *cobra.Command, flags *rootFlags) error {
	const operation = "launch the interactive view"

	app, err := newAppContext(cmd, flags, "tui")
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()

	controller, err := app.Lookup()
	if err != nil {
		return newCommandError(operation, "creating the dictionary client", err, "Check the service URL in your configuration.")
	}

	favs, err := app.Favorites(ctx)
	if err != nil {
		app.Logger.Error(err, "favorites restore failed")
		return newCommandError(operation, "restoring favorites", err, "Delete "+filepath.Join(app.SessionDir, "favorites.json")+" or start a new session with WORDBOOK_SESSION.")
	}

	themes, err := app.Theme()
	if err != nil {
		return newCommandError(operation, "loading theme", err, "Check permissions on "+app.DataDir+".")
	}

	app.Logger.Info("launching interactive view")

	err = tui.Run(tui.Options{
		Context:   ctx,
		Lookup:    controller,
		Favorites: favs,
		Theme:     themes,
		Logger:    app.Logger,
	},
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return newCommandError(operation, "running the interactive view", err, "Re-run with --verbose to see diagnostic logs.")
	}
	return nil
}
