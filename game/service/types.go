package service

import (
	"time"

	"github.com/wricardo/mcp-training/pandemic/game/engine"
)

// NewGameRequest seats the players and picks the difficulty of a new game
type NewGameRequest struct {
	Players    []engine.PlayerSpec `json:"players"`
	Difficulty string              `json:"difficulty,omitempty"` // preset id or epidemic count; empty uses the default
	Seed       uint64              `json:"seed,omitempty"`       // 0 picks a random seed
}

// GameInfo provides information about a running game
type GameInfo struct {
	ID             string          `json:"id"`
	Difficulty     string          `json:"difficulty"`
	CreatedAt      time.Time       `json:"created_at"`
	LastAccessedAt time.Time       `json:"last_accessed_at"`
	State          engine.Snapshot `json:"state"`
}

// CommandResult contains the outcome of one engine command
type CommandResult struct {
	Events   []engine.Event  `json:"events"`
	Messages []string        `json:"messages,omitempty"`
	State    engine.Snapshot `json:"state"`
}

// DifficultyInfo describes a difficulty preset
type DifficultyInfo struct {
	ID          string `json:"id"` // The identifier to use when creating a game
	Name        string `json:"name"`
	Description string `json:"description"`
	Epidemics   int    `json:"epidemics"`
}
