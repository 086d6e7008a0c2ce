package commands

import (
	"github.com/riskibarqy/league-scraper/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints build version information.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		version.Print(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
