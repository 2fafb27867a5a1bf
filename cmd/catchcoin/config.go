package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catch-the-coin/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default config YAML",
	Long: `Print the built-in configuration of a game. Save it as
~/.arcade/configs/<game>.yaml or pass it with --config to customize play.

Examples:
  catchcoin config > ~/.arcade/configs/catchcoin.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := gameArg(args)

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: %q has no configuration\n", gameID)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
