package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/itchan-dev/forum/shared/logger"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "forum-api",
		Short:         "Forum JSON API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand())
	root.AddCommand(newMigrateCommand())
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
