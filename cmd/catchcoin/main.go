// catchcoin is a small arcade game: slide the paddle, catch the falling coin.
//
// Usage:
//
//	catchcoin list              - List available games
//	catchcoin play [game]       - Play in the terminal (or a window with --gui)
//	catchcoin serve             - Start SSH server for remote play
//	catchcoin scores [game]     - Show high scores
//	catchcoin config [game]     - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/catch-the-coin/internal/games/catchcoin"
	"github.com/vovakirdan/catch-the-coin/internal/registry"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "catchcoin",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catchcoin",
	Short: "Catch the Coin - a tiny arcade game for terminal and desktop",
	Long: `Catch the Coin: move the paddle left and right to catch the falling coin.
Every catch scores a point and makes the next coin fall faster. Miss three
coins and the game is over; press Enter to play again.

Available commands:
  list     - Show all available games
  play     - Play in the terminal or in a window
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default config

Examples:
  catchcoin play
  catchcoin play --gui
  catchcoin play --difficulty hard --name ann
  catchcoin serve --ssh :2222
  catchcoin scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// gameArg returns the game named on the command line, defaulting to Catch the Coin.
// Unknown games end the process.
func gameArg(args []string) string {
	gameID := catchcoin.ID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'catchcoin list' to see available games.")
		os.Exit(1)
	}
	return gameID
}
