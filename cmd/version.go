package cmd

import (
	"github.com/castellanops/cumulus/internal/message"
	"github.com/castellanops/cumulus/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Cumulus",
	Long:  `All software has versions. This is Cumulus's`,
	Run: func(cmd *cobra.Command, args []string) {
		message.Info(version.FullVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
