package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/castellanops/cumulus/internal/logs"
	"github.com/castellanops/cumulus/internal/message"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	quietFlag   bool
	silentFlag  bool
	noColorFlag bool
	verboseFlag bool
	logToFile   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cumulus",
	Short: "Cumulus is a CLI tool for auditing and administering Microsoft 365 tenants and on-prem directories.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logToFile {
			slog.SetDefault(logs.FileLogger())
		} else {
			logs.ConsoleLogger()
			if verboseFlag {
				logs.SetLevel(slog.LevelDebug)
			}
		}
		message.SetQuiet(quietFlag)
		message.SetSilent(silentFlag)
		message.SetNoColor(noColorFlag)
		if !quietFlag && !silentFlag {
			message.Banner()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	generateCommands(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cumulus.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress banner and progress messages")
	rootCmd.PersistentFlags().BoolVar(&silentFlag, "silent", false, "suppress all console messages")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logToFile, "log-file", false, "write debug logs to cumulus.log instead of stderr")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cumulus")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
