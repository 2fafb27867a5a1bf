package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/catch-the-coin/internal/config"
	"github.com/vovakirdan/catch-the-coin/internal/core"
	"github.com/vovakirdan/catch-the-coin/internal/games/catchcoin"
	"github.com/vovakirdan/catch-the-coin/internal/platform/gui"
	"github.com/vovakirdan/catch-the-coin/internal/platform/tui"
	"github.com/vovakirdan/catch-the-coin/internal/registry"
	"github.com/vovakirdan/catch-the-coin/internal/settings"
	"github.com/vovakirdan/catch-the-coin/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagGUI        bool
	flagName       string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without a game argument, Catch the Coin is started.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Enter      - Restart (after game over)
  Q/Ctrl+C   - Quit (terminal)
  Ctrl+S     - Save a text screenshot (terminal)
  F11        - Toggle fullscreen (window)
  Esc        - Quit (window)

Difficulty options (speed-up per caught coin):
  easy   - 0.15
  normal - 0.25
  hard   - 0.4
  fixed  - no speed-up

Examples:
  catchcoin play
  catchcoin play --gui
  catchcoin play --difficulty hard
  catchcoin play --config ./my-catchcoin.yaml --name ann`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name for the scoreboard (default: $USER)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := gameArg(args)

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set config path and difficulty before the game is created
	if gameID == catchcoin.ID {
		catchcoin.SetConfigPath(flagConfig)
		catchcoin.SetDifficultyPreset(preset)
		if _, err := catchcoin.LoadConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	player := playerName()
	if flagGUI {
		err = playWindow(game, store, player)
	} else {
		err = playTerminal(game, store, player)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

func playTerminal(game registry.Game, store *storage.Store, player string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	return tui.Run(game, store, cfg, player, logger)
}

func playWindow(game registry.Game, store *storage.Store, player string) error {
	data, err := settings.Open()
	if err != nil {
		logger.Warn("window settings will not be saved", "error", err)
		data = nil
	}
	sm, err := settings.NewManager(data)
	if err != nil {
		logger.Warn("could not load window settings, using defaults", "error", err)
	}

	return gui.Run(game, store, sm, gui.Options{
		Player:   player,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Logger:   logger,
	})
}

// playerName picks the name scores are saved under.
func playerName() string {
	if flagName != "" {
		return flagName
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "player"
}
