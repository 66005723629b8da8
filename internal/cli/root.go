// Package cli contains the aura command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "aura",
	Short: "Personal migraine episode diary",
	Long: `aura is a single-binary migraine diary.

It records episodes (date, time of onset, severity, triggers, pain location,
workday flag, note), renders calendar and statistics views over them, and
composes shareable plain-text reports. Data lives in a local SQLite file.

Examples:
  aura serve                                 # Start the web server
  aura reset-password --email user@host      # Issue a temporary password
  aura report --email user@host --period last30days`,
	Version: Version,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (YAML)")
}
