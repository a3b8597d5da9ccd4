package cmd

import (
	"fmt"
	"os"

	"foodorder/configs"

	"github.com/spf13/cobra"
)

var cfg *configs.Config

// rootCmd runs the server when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "foodorder",
	Short: "Restaurant ordering backend.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = configs.LoadConfig()
		configs.SetupLogger(cfg.LogLevel, cfg.LogPretty)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
