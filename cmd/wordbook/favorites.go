package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/wordbook/internal/dictionary"
	"github.com/alexisbeaulieu97/wordbook/internal/lookup"
	"github.com/alexisbeaulieu97/wordbook/internal/tui"
)

const definitionPreviewWidth = 60

func newFavoritesCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage the favorites saved in this session",
	}

	cmd.AddCommand(newFavoritesListCmd(rootFlags))
	cmd.AddCommand(newFavoritesAddCmd(rootFlags))
	cmd.AddCommand(newFavoritesRemoveCmd(rootFlags))
	cmd.AddCommand(newFavoritesShowCmd(rootFlags))
	cmd.AddCommand(newFavoritesClearCmd(rootFlags))

	return cmd
}

type favoritesListOptions struct {
	jsonOutput bool
}

func newFavoritesListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &favoritesListOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved favorites",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavoritesList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runFavoritesList(cmd *cobra.Command, rootFlags *rootFlags, opts *favoritesListOptions) error {
	app, err := newAppContext(cmd, rootFlags, "favorites.list")
	if err != nil {
		return err
	}
	defer app.Close()

	favs, err := app.Favorites(cmd.Context())
	if err != nil {
		return newCommandError("list favorites", "restoring favorites", err, "Start a new session with WORDBOOK_SESSION or delete the corrupted favorites file.")
	}

	entries := favs.List()
	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), entries)
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No favorites saved in this session.")
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "\nAdd one with: wordbook favorites add <word>")
		return nil
	}

	tbl := table.New("#", "Word", "Part of Speech", "Definition").WithWriter(cmd.OutOrStdout())
	for i, e := range entries {
		pos, def := firstDefinition(e)
		tbl.AddRow(strconv.Itoa(i+1), e.Word, pos, truncate(def, definitionPreviewWidth))
	}
	tbl.Print()

	return nil
}

func newFavoritesAddCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <word...>",
		Short: "Look up a word and save its first entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavoritesAdd(cmd, rootFlags, strings.Join(args, " "))
		},
	}

	return cmd
}

func runFavoritesAdd(cmd *cobra.Command, rootFlags *rootFlags, term string) error {
	const operation = "add favorite"

	app, err := newAppContext(cmd, rootFlags, "favorites.add")
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	favs, err := app.Favorites(ctx)
	if err != nil {
		return newCommandError(operation, "restoring favorites", err, "Start a new session with WORDBOOK_SESSION or delete the corrupted favorites file.")
	}

	controller, err := app.Lookup()
	if err != nil {
		return newCommandError(operation, "creating the dictionary client", err, "Check the service URL in your configuration.")
	}

	controller.SetQuery(term)
	if err := controller.Search(ctx); err != nil {
		if errors.Is(err, lookup.ErrEmptyQuery) {
			return newCommandError(operation, "validating input", errors.New(lookup.ValidationMessage), "Pass the word to save, for example 'wordbook favorites add kitten'.")
		}
		return newCommandError(operation, fmt.Sprintf("querying the dictionary for %q", term), err, "Check your network connection and the --service-url setting, then retry.")
	}

	state := controller.State()
	if state.NotFound != nil || len(state.Entries) == 0 {
		return newCommandError(operation, fmt.Sprintf("looking up %q", term), errors.New("no definitions found"), "Check the spelling and try again.")
	}

	entry := state.Entries[0]
	added, err := favs.Add(ctx, entry)
	if err != nil {
		return newCommandError(operation, "saving favorites", err, "Check permissions on "+app.SessionDir+".")
	}

	if !added {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "'%s' is already a favorite\n", entry.Word)
		return nil
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Added '%s' to favorites\n", entry.Word)
	return nil
}

type favoritesRemoveOptions struct {
	force bool
}

func newFavoritesRemoveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &favoritesRemoveOptions{}

	cmd := &cobra.Command{
		Use:     "remove <word...>",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a word from favorites",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavoritesRemove(cmd, rootFlags, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Remove without confirmation")

	return cmd
}

func runFavoritesRemove(cmd *cobra.Command, rootFlags *rootFlags, word string, opts *favoritesRemoveOptions) error {
	const operation = "remove favorite"

	if strings.TrimSpace(word) == "" {
		return newCommandError(operation, "validating word", errors.New("word cannot be empty"), "Provide the word you wish to remove.")
	}

	app, err := newAppContext(cmd, rootFlags, "favorites.remove")
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	favs, err := app.Favorites(ctx)
	if err != nil {
		return newCommandError(operation, "restoring favorites", err, "Start a new session with WORDBOOK_SESSION or delete the corrupted favorites file.")
	}

	if !favs.Contains(word) {
		return newCommandError(operation, fmt.Sprintf("looking up favorite %q", word), errors.New("not in favorites"), "Run 'wordbook favorites list' to view saved words.")
	}

	if !opts.force {
		confirmed, err := confirm(cmd, operation, fmt.Sprintf("Remove '%s' from favorites?", word))
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if _, err := favs.RemoveWord(ctx, word); err != nil {
		return newCommandError(operation, "saving favorites", err, "Check permissions on "+app.SessionDir+".")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed '%s' from favorites\n", word)
	return nil
}

func newFavoritesShowCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <word...>",
		Short: "Print a saved favorite without querying the dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavoritesShow(cmd, rootFlags, strings.Join(args, " "))
		},
	}

	return cmd
}

func runFavoritesShow(cmd *cobra.Command, rootFlags *rootFlags, word string) error {
	const operation = "show favorite"

	app, err := newAppContext(cmd, rootFlags, "favorites.show")
	if err != nil {
		return err
	}
	defer app.Close()

	favs, err := app.Favorites(cmd.Context())
	if err != nil {
		return newCommandError(operation, "restoring favorites", err, "Start a new session with WORDBOOK_SESSION or delete the corrupted favorites file.")
	}

	entry, ok := favs.Get(word)
	if !ok {
		return newCommandError(operation, fmt.Sprintf("looking up favorite %q", word), errors.New("not in favorites"), "Run 'wordbook favorites list' to view saved words.")
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderEntry(outputStyles(cmd, app), entry))
	return nil
}

type favoritesClearOptions struct {
	force bool
}

func newFavoritesClearCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &favoritesClearOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every favorite saved in this session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavoritesClear(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Clear without confirmation")

	return cmd
}

func runFavoritesClear(cmd *cobra.Command, rootFlags *rootFlags, opts *favoritesClearOptions) error {
	const operation = "clear favorites"

	app, err := newAppContext(cmd, rootFlags, "favorites.clear")
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	favs, err := app.Favorites(ctx)
	if err != nil {
		return newCommandError(operation, "restoring favorites", err, "Start a new session with WORDBOOK_SESSION or delete the corrupted favorites file.")
	}

	if favs.Len() == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No favorites saved in this session.")
		return nil
	}

	if !opts.force {
		confirmed, err := confirm(cmd, operation, fmt.Sprintf("Remove all %d favorites?", favs.Len()))
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	cleared, err := favs.Clear(ctx)
	if err != nil {
		return newCommandError(operation, "deleting favorites", err, "Check permissions on "+app.SessionDir+".")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Cleared %d favorites\n", cleared)
	return nil
}

func firstDefinition(e dictionary.WordEntry) (string, string) {
	for _, m := range e.Meanings {
		if len(m.Definitions) > 0 {
			return m.PartOfSpeech, m.Definitions[0].Definition
		}
	}
	return "", ""
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
