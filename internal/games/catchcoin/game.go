package catchcoin

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/catch-the-coin/internal/config"
	"github.com/vovakirdan/catch-the-coin/internal/core"
	"github.com/vovakirdan/catch-the-coin/internal/registry"
)

// ID is the registry identifier and the score table key.
const ID = "catchcoin"

var (
	optsMu     sync.RWMutex
	configPath string
	preset     config.DifficultyPreset
)

// SetConfigPath selects a custom YAML config for games created afterwards.
func SetConfigPath(path string) {
	optsMu.Lock()
	defer optsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset selects the difficulty for games created afterwards.
func SetDifficultyPreset(p config.DifficultyPreset) {
	optsMu.Lock()
	defer optsMu.Unlock()
	preset = p
}

// LoadConfig resolves the configuration new games will use.
func LoadConfig() (config.CatchCoinConfig, error) {
	optsMu.RLock()
	path, p := configPath, preset
	optsMu.RUnlock()

	cfg, err := config.LoadCatchCoin(path)
	if err != nil {
		return config.DefaultCatchCoinConfig(), err
	}
	config.ApplyCatchCoinPreset(&cfg, p)
	return cfg, nil
}

// Game adapts State to the registry.Game interface.
type Game struct {
	state *State
}

// NewGame creates a game with the default configuration.
// Reset replaces it with the configured one.
func NewGame() *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Game{state: New(config.DefaultCatchCoinConfig(), rng)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Catch the Coin"
}

// Reset starts a fresh session. A config that fails to load falls back to defaults;
// callers that care validate it up front with LoadConfig.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultCatchCoinConfig()
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.state = New(cfg, rand.New(rand.NewSource(seed)))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.state.Update(in)
	return core.StepResult{State: g.State()}
}

// HandleKey forwards a key-down event.
func (g *Game) HandleKey(a core.Action) {
	g.state.OnKeyDown(a)
}

// Draw renders the current state.
func (g *Game) Draw(dst core.Canvas) {
	g.state.Draw(dst)
}

// Playfield returns the logical size Draw uses.
func (g *Game) Playfield() (w, h float64) {
	return g.state.Playfield()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		Lives:    g.state.Lives(),
		GameOver: g.state.Phase() == PhaseGameOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return NewGame()
	})
}
