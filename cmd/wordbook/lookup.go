package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/wordbook/internal/lookup"
	"github.com/alexisbeaulieu97/wordbook/internal/tui"
)

type lookupOptions struct {
	jsonOutput bool
}

func newLookupCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &lookupOptions{}

	cmd := &cobra.Command{
		Use:     "lookup <word...>",
		Aliases: []string{"define"},
		Short:   "Print definitions for a word or phrase",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, rootFlags, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runLookup(cmd *cobra.Command, rootFlags *rootFlags, term string, opts *lookupOptions) error {
	const operation = "look up word"

	app, err := newAppContext(cmd, rootFlags, "lookup")
	if err != nil {
		return err
	}
	defer app.Close()

	controller, err := app.Lookup()
	if err != nil {
		return newCommandError(operation, "creating the dictionary client", err, "Check the service URL in your configuration.")
	}

	controller.SetQuery(term)
	if err := controller.Search(cmd.Context()); err != nil {
		if errors.Is(err, lookup.ErrEmptyQuery) {
			return newCommandError(operation, "validating input", errors.New(lookup.ValidationMessage), "Pass the word to look up, for example 'wordbook lookup kitten'.")
		}
		return newCommandError(operation, fmt.Sprintf("querying the dictionary for %q", term), err, "Check your network connection and the --service-url setting, then retry.")
	}

	state := controller.State()

	if opts.jsonOutput {
		if state.NotFound != nil {
			return writeJSON(cmd.OutOrStdout(), state.NotFound)
		}
		return writeJSON(cmd.OutOrStdout(), state.Entries)
	}

	styles := outputStyles(cmd, app)
	if state.NotFound != nil {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderNotFound(styles, *state.NotFound))
		return nil
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderEntries(styles, state.Entries, -1))
	return nil
}
