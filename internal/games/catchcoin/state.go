// Package catchcoin implements Catch the Coin: the player slides a paddle
// along the bottom of the playfield to catch a coin that keeps falling faster.
package catchcoin

import (
	"fmt"
	"math"

	"github.com/vovakirdan/catch-the-coin/internal/config"
	"github.com/vovakirdan/catch-the-coin/internal/core"
)

// Phase is the state machine of a session.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// IntSource picks random integers. *math/rand.Rand satisfies it.
type IntSource interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// Actor is a drawable entity centered at Pos.
type Actor struct {
	Pos  core.Vec
	W, H float64
}

// Bounds returns the collision rectangle of the actor.
func (a Actor) Bounds() core.RectF {
	return core.RectFromCenter(a.Pos, a.W, a.H)
}

// Visual appearance of the actors and the HUD.
var (
	playerSprite = core.Sprite{Shape: core.ShapeBox, Color: core.ColorCyan, Glyph: '█'}
	coinSprite   = core.Sprite{Shape: core.ShapeDisc, Color: core.ColorGold, Glyph: '●'}

	scoreStyle  = core.TextStyle{Color: core.ColorWhite, Size: 36}
	livesStyle  = core.TextStyle{Color: core.ColorOrange, Size: 28}
	promptStyle = core.TextStyle{Color: core.ColorYellow, Size: 40, Align: core.AlignCenter}
)

const restartPrompt = "Game Over! Press ENTER to restart"

// State holds everything that changes during a session.
type State struct {
	cfg config.CatchCoinConfig
	rng IntSource

	player    Actor
	coin      Actor
	score     int
	lives     int
	coinSpeed float64
	phase     Phase
}

// New creates a session in the Playing phase with the coin above the playfield.
func New(cfg config.CatchCoinConfig, rng IntSource) *State {
	s := &State{
		cfg: cfg,
		rng: rng,
		player: Actor{
			Pos: core.Vec{X: math.Floor(cfg.Playfield.Width / 2), Y: cfg.Playfield.Height - cfg.Player.BottomOffset},
			W:   cfg.Player.Width,
			H:   cfg.Player.Height,
		},
		coin: Actor{
			W: cfg.Coin.Width,
			H: cfg.Coin.Height,
		},
	}
	s.restart()
	return s
}

// Update advances the simulation by one tick.
func (s *State) Update(in core.InputFrame) {
	if s.phase == PhaseGameOver {
		return
	}

	pc := s.cfg.Player
	minX, maxX := pc.Margin, s.cfg.Playfield.Width-pc.Margin
	if in.Has(core.ActionLeft) {
		s.player.Pos.X = math.Max(minX, s.player.Pos.X-pc.Step)
	}
	if in.Has(core.ActionRight) {
		s.player.Pos.X = math.Min(maxX, s.player.Pos.X+pc.Step)
	}

	s.coin.Pos.Y += s.coinSpeed

	// Missed: the coin fell past the bottom edge
	if s.coin.Pos.Y > s.cfg.Playfield.Height+s.cfg.Coin.MissMargin {
		s.lives--
		s.ResetCoin()
	}

	// Caught: speed up a bit
	if s.player.Bounds().Intersects(s.coin.Bounds()) {
		s.score++
		s.coinSpeed = math.Min(s.cfg.Speed.Max, s.coinSpeed+s.cfg.Speed.Increment)
		s.ResetCoin()
	}

	if s.lives <= 0 {
		s.lives = 0
		s.phase = PhaseGameOver
	}
}

// OnKeyDown handles a discrete key press. Only Confirm during game over has an effect.
func (s *State) OnKeyDown(a core.Action) {
	if s.phase == PhaseGameOver && a == core.ActionConfirm {
		s.restart()
	}
}

// restart puts every counter back to its initial value.
func (s *State) restart() {
	s.score = 0
	s.lives = s.cfg.Lives
	s.coinSpeed = s.cfg.Speed.Initial
	s.phase = PhasePlaying
	s.ResetCoin()
}

// ResetCoin moves the coin back above the playfield at a random column.
func (s *State) ResetCoin() {
	margin := s.cfg.Coin.Margin
	span := int(s.cfg.Playfield.Width) - 2*margin + 1
	s.coin.Pos.X = float64(margin + s.rng.Intn(span))
	s.coin.Pos.Y = s.cfg.Coin.SpawnY
}

// Draw renders the playfield, the actors and the HUD.
func (s *State) Draw(dst core.Canvas) {
	dst.Fill(core.ColorBackground)
	dst.DrawSprite(s.player.Bounds(), playerSprite)
	dst.DrawSprite(s.coin.Bounds(), coinSprite)
	dst.DrawText(fmt.Sprintf("Score: %d", s.score), core.Vec{X: 10, Y: 10}, scoreStyle)
	dst.DrawText(fmt.Sprintf("Lives: %d", s.lives), core.Vec{X: 10, Y: 50}, livesStyle)

	if s.phase == PhaseGameOver {
		center := core.Vec{X: math.Floor(s.cfg.Playfield.Width / 2), Y: math.Floor(s.cfg.Playfield.Height / 2)}
		dst.DrawText(restartPrompt, center, promptStyle)
	}
}

// Score returns the number of coins caught.
func (s *State) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *State) Lives() int { return s.lives }

// CoinSpeed returns how far the coin falls per tick.
func (s *State) CoinSpeed() float64 { return s.coinSpeed }

// Phase returns the current phase.
func (s *State) Phase() Phase { return s.phase }

// Player returns the paddle.
func (s *State) Player() Actor { return s.player }

// Coin returns the coin.
func (s *State) Coin() Actor { return s.coin }

// Playfield returns the logical size of the playfield.
func (s *State) Playfield() (w, h float64) {
	return s.cfg.Playfield.Width, s.cfg.Playfield.Height
}
