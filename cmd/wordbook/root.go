package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	serviceURL string
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "wordbook",
		Short:         "Look up English words and keep a list of favorites",
		Long:          "wordbook queries a public dictionary service for definitions, phonetics and audio, and keeps the words you save for the current shell session.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the interactive view when attached to a terminal
			if isTerminal(cmd.InOrStdin()) {
				return runTUI(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a config file (default ~/.wordbook/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.serviceURL, "service-url", "", "Override the dictionary service base URL")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Write logs to stderr instead of the session log file")

	cmd.AddCommand(newLookupCmd(flags))
	cmd.AddCommand(newFavoritesCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newTUICmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
