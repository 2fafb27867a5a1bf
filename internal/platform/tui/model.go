package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catch-the-coin/internal/core"
	"github.com/vovakirdan/catch-the-coin/internal/registry"
	"github.com/vovakirdan/catch-the-coin/internal/storage"
)

// holdFraction is the share of a second a single key press keeps a direction held.
// Terminals never report key releases, so held keys are approximated from auto-repeat.
const holdFraction = 6

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	player     string
	gameState  core.GameState
	holdTicks  int
	holdLeft   int
	holdRight  int
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// Scores are saved under player; a nil store disables saving.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		store:     store,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    log.Default(),
		player:    player,
		holdTicks: core.Max(1, cfg.TickRate/holdFraction),
	}
}

// WithLogger returns a copy of the model that reports through logger.
func (m Model) WithLogger(logger *log.Logger) Model {
	m.logger = logger
	return m
}

// playRows leaves the last terminal row for the help line.
func playRows(h int) int {
	return core.Max(1, h-1)
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Debug("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft:
		m.holdLeft = m.holdTicks
		m.holdRight = 0
	case core.ActionRight:
		m.holdRight = m.holdTicks
		m.holdLeft = 0
	case core.ActionConfirm:
		m.game.HandleKey(core.ActionConfirm)
		m.gameState = m.game.State()
		if !m.gameState.GameOver {
			m.scoreSaved = false
		}
	}

	return m, nil
}

// handleResize processes window resize events. The playfield is logical,
// so the game keeps running and only the cell grid changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	if m.holdLeft > 0 {
		frame.Set(core.ActionLeft)
		m.holdLeft--
	}
	if m.holdRight > 0 {
		frame.Set(core.ActionRight)
		m.holdRight--
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished game. Failures are logged and play goes on.
func (m Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.player, m.gameState.Score); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "player", m.player, "error", err)
		return
	}
	m.logger.Debug("score saved", "game", m.game.ID(), "player", m.player, "score", m.gameState.Score)
}

// saveScreenshot writes the current frame as plain text under ~/.arcade/screenshots.
func (m Model) saveScreenshot() (string, error) {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// draw renders the game into the screen buffer.
func (m Model) draw() {
	w, h := m.game.Playfield()
	m.game.Draw(newCellCanvas(m.screen, w, h))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state seen on the last tick or key press.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewModel(game, store, cfg, player)
	if logger != nil {
		model = model.WithLogger(logger)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
