package config

import (
	_ "embed"
)

//go:embed defaults/catchcoin.yaml
var defaultCatchCoinYAML []byte

// DefaultCatchCoinConfig returns the default Catch the Coin configuration.
// It mirrors defaults/catchcoin.yaml and is used when the embedded file cannot be parsed.
func DefaultCatchCoinConfig() CatchCoinConfig {
	return CatchCoinConfig{
		Playfield: PlayfieldConfig{
			Width:  600,
			Height: 400,
		},
		Player: PlayerConfig{
			Width:        40,
			Height:       20,
			Step:         6,
			Margin:       20,
			BottomOffset: 40,
		},
		Coin: CoinConfig{
			Width:      20,
			Height:     20,
			SpawnY:     -20,
			Margin:     20,
			MissMargin: 20,
		},
		Speed: SpeedConfig{
			Initial:   3,
			Increment: 0.25,
			Max:       12,
		},
		Lives: 3,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "catchcoin":
		return defaultCatchCoinYAML
	default:
		return nil
	}
}
