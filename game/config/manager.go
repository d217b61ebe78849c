package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/wricardo/mcp-training/pandemic/game/engine"
	"github.com/wricardo/mcp-training/pandemic/game/service"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// DefaultDifficulty is the preset used when nothing else is chosen.
const DefaultDifficulty = "introductory"

var presets = []service.DifficultyInfo{
	{
		ID:          "introductory",
		Name:        "Introductory",
		Description: "Four epidemic cards. The gentlest game, for learning the rules.",
		Epidemics:   4,
	},
	{
		ID:          "standard",
		Name:        "Standard",
		Description: "Five epidemic cards. The usual challenge.",
		Epidemics:   5,
	},
	{
		ID:          "heroic",
		Name:        "Heroic",
		Description: "Six epidemic cards. Infections accelerate quickly.",
		Epidemics:   6,
	},
}

// Manager serves the difficulty presets
type Manager struct {
	defaultConfig *service.DifficultyInfo
	configs       map[string]*service.DifficultyInfo
	order         []string
	mu            sync.RWMutex
}

// NewManager creates a manager holding the three presets
func NewManager() *Manager {
	m := &Manager{
		configs: make(map[string]*service.DifficultyInfo, len(presets)),
	}
	for _, p := range presets {
		if err := engine.ValidateDifficulty(p.Epidemics); err != nil {
			panic(fmt.Sprintf("preset %s: %v", p.ID, err))
		}
		m.configs[p.ID] = &p
		m.order = append(m.order, p.ID)
	}
	m.defaultConfig = m.configs[DefaultDifficulty]
	return m
}

// LoadConfig finds a preset by id, display name or epidemic count ("4",
// "5", "6"). Names are matched ignoring case.
func (m *Manager) LoadConfig(name string) (*service.DifficultyInfo, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, fmt.Errorf("%w: empty difficulty", ErrInvalidConfig)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if config, exists := m.configs[key]; exists {
		return config, nil
	}
	if n, err := strconv.Atoi(key); err == nil {
		if err := engine.ValidateDifficulty(n); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		for _, id := range m.order {
			if m.configs[id].Epidemics == n {
				return m.configs[id], nil
			}
		}
	}
	for _, id := range m.order {
		if strings.EqualFold(m.configs[id].Name, key) {
			return m.configs[id], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, name)
}

// ListConfigs returns the presets from easiest to hardest
func (m *Manager) ListConfigs() ([]*service.DifficultyInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configs := make([]*service.DifficultyInfo, 0, len(m.order))
	for _, id := range m.order {
		configs = append(configs, m.configs[id])
	}
	return configs, nil
}

// GetDefault returns the default preset
func (m *Manager) GetDefault() *service.DifficultyInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// SetDefault sets the default preset by name
func (m *Manager) SetDefault(name string) error {
	config, err := m.LoadConfig(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultConfig = config
	return nil
}
