// Package config provides YAML-based game configuration loading and
// difficulty presets for Catch the Coin.
package config

import (
	"errors"
	"fmt"
)

// CatchCoinConfig contains all tunable constants of Catch the Coin.
type CatchCoinConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Coin      CoinConfig      `yaml:"coin"`
	Speed     SpeedConfig     `yaml:"speed"`
	Lives     int             `yaml:"lives"`
}

// PlayfieldConfig is the logical coordinate space actors move in.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the paddle.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Step         float64 `yaml:"step"`
	Margin       float64 `yaml:"margin"`
	BottomOffset float64 `yaml:"bottom_offset"`
}

// CoinConfig defines the falling coin.
type CoinConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	SpawnY     float64 `yaml:"spawn_y"`
	Margin     int     `yaml:"margin"`
	MissMargin float64 `yaml:"miss_margin"`
}

// SpeedConfig defines how fast the coin falls and how catching speeds it up.
type SpeedConfig struct {
	Initial   float64 `yaml:"initial"`
	Increment float64 `yaml:"increment"`
	Max       float64 `yaml:"max"`
}

// Validate reports every inconsistency in the configuration at once.
func (c CatchCoinConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Coin.Width <= 0 || c.Coin.Height <= 0 {
		errs = append(errs, fmt.Errorf("coin size must be positive, got %vx%v", c.Coin.Width, c.Coin.Height))
	}
	if c.Player.Step < 0 {
		errs = append(errs, fmt.Errorf("player step must not be negative, got %v", c.Player.Step))
	}
	if c.Player.Margin < 0 || 2*c.Player.Margin > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("player margin %v leaves no room in width %v", c.Player.Margin, c.Playfield.Width))
	}
	if c.Coin.Margin < 0 || float64(2*c.Coin.Margin) > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("coin margin %d leaves no room in width %v", c.Coin.Margin, c.Playfield.Width))
	}
	if c.Speed.Initial <= 0 || c.Speed.Max < c.Speed.Initial {
		errs = append(errs, fmt.Errorf("speed range [%v, %v] is invalid", c.Speed.Initial, c.Speed.Max))
	}
	if c.Speed.Increment < 0 {
		errs = append(errs, fmt.Errorf("speed increment must not be negative, got %v", c.Speed.Increment))
	}
	if c.Lives < 1 {
		errs = append(errs, fmt.Errorf("lives must be at least 1, got %d", c.Lives))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid catchcoin config: %w", errors.Join(errs...))
	}
	return nil
}
