package main

import (
	"fmt"

	"github.com/spf13/cobra"
	releaseversion "sigs.k8s.io/release-utils/version"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := releaseversion.GetVersionInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "wordbook %s\ncommit: %s\nbuilt: %s\ngo: %s\nplatform: %s\n",
				version, commit, date, info.GoVersion, info.Platform)
			return nil
		},
	}

	return cmd
}
