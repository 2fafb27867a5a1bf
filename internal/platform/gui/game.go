// Package gui runs games in a desktop window with Ebitengine.
package gui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/catch-the-coin/internal/core"
	"github.com/vovakirdan/catch-the-coin/internal/registry"
	"github.com/vovakirdan/catch-the-coin/internal/settings"
	"github.com/vovakirdan/catch-the-coin/internal/storage"
)

// Options configures a desktop session.
type Options struct {
	Player   string
	TickRate int
	Seed     int64
	Logger   *log.Logger
}

// Game drives a registry.Game from the Ebitengine loop.
type Game struct {
	game       registry.Game
	store      *storage.Store
	settings   *settings.Manager
	logger     *log.Logger
	player     string
	canvas     *canvas
	keys       []ebiten.Key
	state      core.GameState
	scoreSaved bool
}

// NewGame wraps game for the desktop. store and sm may be nil.
func NewGame(game registry.Game, store *storage.Store, sm *settings.Manager, opts Options) (*Game, error) {
	c, err := newCanvas()
	if err != nil {
		return nil, err
	}
	if sm == nil {
		sm, _ = settings.NewManager(nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		game:     game,
		store:    store,
		settings: sm,
		logger:   logger,
		player:   opts.Player,
		canvas:   c,
	}, nil
}

// Update handles discrete key presses first, then steps with held keys.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		switch k {
		case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
			g.game.HandleKey(core.ActionConfirm)
			g.state = g.game.State()
			if !g.state.GameOver {
				g.scoreSaved = false
			}
		case ebiten.KeyF11:
			g.toggleFullscreen()
		case ebiten.KeyEscape:
			return ebiten.Termination
		}
	}

	frame := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		frame.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		frame.Set(core.ActionRight)
	}

	g.state = g.game.Step(frame).State
	if g.state.GameOver && !g.scoreSaved {
		g.saveScore()
		g.scoreSaved = true
	}
	return nil
}

func (g *Game) toggleFullscreen() {
	on := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(on)
	g.settings.SetFullscreen(on)
	if err := g.settings.Save(); err != nil {
		g.logger.Warn("could not save settings", "error", err)
	}
}

func (g *Game) saveScore() {
	if g.store == nil || g.state.Score <= 0 {
		return
	}
	if _, err := g.store.SaveScore(g.game.ID(), g.player, g.state.Score); err != nil {
		g.logger.Warn("could not save score", "game", g.game.ID(), "player", g.player, "error", err)
		return
	}
	g.logger.Info("score saved", "game", g.game.ID(), "player", g.player, "score", g.state.Score)
}

// Draw renders the game into the window.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.game.Draw(g.canvas)
}

// Layout keeps the logical screen at the playfield size; Ebitengine scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.game.Playfield()
	return int(w), int(h)
}

// Run opens a window and plays until it is closed or Escape is pressed.
func Run(game registry.Game, store *storage.Store, sm *settings.Manager, opts Options) error {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}

	g, err := NewGame(game, store, sm, opts)
	if err != nil {
		return err
	}

	game.Reset(core.RuntimeConfig{TickRate: opts.TickRate, Seed: opts.Seed})
	w, h := game.Playfield()
	prefs := g.settings.Settings()

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(w*prefs.Scale), int(h*prefs.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(prefs.Fullscreen)
	ebiten.SetTPS(opts.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
