// Package settings persists desktop window preferences with gdata.
package settings

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory.
const AppName = "catchcoin"

// Storage location inside the gdata app directory
const (
	settingsObject   = "settings"
	settingsProperty = "window"
)

// Scale limits for the desktop window.
const (
	MinScale = 0.5
	MaxScale = 4.0
)

// Settings are the user's window preferences.
type Settings struct {
	Scale      float64 `yaml:"scale"`      // Window size relative to the playfield
	Fullscreen bool    `yaml:"fullscreen"` // Start in fullscreen
}

// Default returns the settings used before anything was saved.
func Default() Settings {
	return Settings{Scale: 1}
}

// Open opens the gdata store for the application.
func Open() (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return nil, fmt.Errorf("settings: cannot open data dir: %w", err)
	}
	return m, nil
}

// Manager keeps the current settings in memory and saves them on request.
// With a nil gdata manager nothing is persisted.
type Manager struct {
	data     *gdata.Manager
	settings Settings
}

// NewManager creates a manager and loads saved settings.
// A load error is returned alongside a usable manager holding defaults.
func NewManager(data *gdata.Manager) (*Manager, error) {
	m := &Manager{data: data, settings: Default()}
	if err := m.Load(); err != nil {
		return m, err
	}
	return m, nil
}

// Load replaces the in-memory settings with the saved ones.
// Missing settings are not an error.
func (m *Manager) Load() error {
	m.settings = Default()
	if m.data == nil || !m.data.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	raw, err := m.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: cannot load: %w", err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("settings: cannot parse: %w", err)
	}
	loaded.Scale = clampScale(loaded.Scale)

	m.settings = loaded
	return nil
}

// Save writes the in-memory settings.
func (m *Manager) Save() error {
	if m.data == nil {
		return nil
	}

	raw, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: cannot encode: %w", err)
	}
	if err := m.data.SaveObjectProp(settingsObject, settingsProperty, raw); err != nil {
		return fmt.Errorf("settings: cannot save: %w", err)
	}
	return nil
}

// Settings returns the current settings.
func (m *Manager) Settings() Settings {
	return m.settings
}

// Persistent reports whether Save writes anywhere.
func (m *Manager) Persistent() bool {
	return m.data != nil
}

// SetFullscreen changes the fullscreen preference. Call Save to persist it.
func (m *Manager) SetFullscreen(on bool) {
	m.settings.Fullscreen = on
}

// SetScale changes the window scale, clamped to [MinScale, MaxScale].
// Call Save to persist it.
func (m *Manager) SetScale(scale float64) {
	m.settings.Scale = clampScale(scale)
}

func clampScale(s float64) float64 {
	if s <= 0 {
		return Default().Scale
	}
	return min(MaxScale, max(MinScale, s))
}
