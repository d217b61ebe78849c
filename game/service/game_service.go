package service

import (
	"context"
	"sync"
	"time"

	"github.com/wricardo/mcp-training/pandemic/game/cards"
	"github.com/wricardo/mcp-training/pandemic/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Game Management
	CreateGame(ctx context.Context, req NewGameRequest) (*GameInfo, error)
	GetGame(ctx context.Context, gameID string) (*GameInfo, error)
	ListGames(ctx context.Context) ([]*GameInfo, error)
	DeleteGame(ctx context.Context, gameID string) error

	// Turn Commands
	Act(ctx context.Context, gameID, player string, action engine.Action) (*CommandResult, error)
	PlayEvent(ctx context.Context, gameID, player string, event cards.Event, params engine.EventParams) (*CommandResult, error)
	DrawPlayerCards(ctx context.Context, gameID string) (*CommandResult, error)
	Discard(ctx context.Context, gameID, player string, card cards.PlayerCard) (*CommandResult, error)
	InfectCities(ctx context.Context, gameID string) (*CommandResult, error)

	// Queries
	ForecastPreview(ctx context.Context, gameID string) ([]cards.InfectionCard, error)
	ListDifficulties(ctx context.Context) ([]*DifficultyInfo, error)
}

// SessionManager defines game storage operations
type SessionManager interface {
	Create(id string, game *engine.Game, difficulty string) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// ConfigManager serves the difficulty presets
type ConfigManager interface {
	LoadConfig(name string) (*DifficultyInfo, error)
	ListConfigs() ([]*DifficultyInfo, error)
	GetDefault() *DifficultyInfo
}

// Session is one running game
type Session struct {
	ID         string
	Game       *engine.Game
	Difficulty string
	CreatedAt  time.Time
	// LastAccessedAt is guarded by mu once the session is shared. Use Touch
	// and LastAccessed.
	LastAccessedAt time.Time

	// mu serialises commands; the engine itself is not safe for concurrent use.
	mu sync.Mutex
}

// Touch records an access at t. It waits for a running command to finish.
func (s *Session) Touch(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastAccessedAt = t
}

// LastAccessed returns the time of the last access
func (s *Session) LastAccessed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.LastAccessedAt
}
