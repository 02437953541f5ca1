package cmd

import (
	"fmt"
	"os"

	"metadata-bridge/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "metadata-bridge",
	Short: "AniDB to TvDB episode metadata bridge",
	Long: `Metadata Bridge resolves AniDB episodes to their TvDB counterparts and
serves the merged title, overview and artwork over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Debug config gives ISO8601 timestamps on the console.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
