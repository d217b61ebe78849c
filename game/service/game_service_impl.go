package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/wricardo/mcp-training/pandemic/game/cards"
	"github.com/wricardo/mcp-training/pandemic/game/engine"
)

// ErrNoDifficulty is returned when a difficulty name matches no preset.
var ErrNoDifficulty = errors.New("unknown difficulty")

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	logger   *zap.Logger
}

// Option configures the game service.
type Option func(*gameServiceImpl)

// WithLogger sets the logger handed to every new game.
func WithLogger(logger *zap.Logger) Option {
	return func(s *gameServiceImpl) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager, opts ...Option) GameService {
	s := &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateGame seats the players, sets the difficulty and deals a new game
func (s *gameServiceImpl) CreateGame(ctx context.Context, req NewGameRequest) (*GameInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	difficulty, err := s.difficulty(req.Difficulty)
	if err != nil {
		return nil, err
	}

	game, err := engine.New(engine.WithSeed(req.Seed), engine.WithLogger(s.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	if _, err := game.SetPlayers(req.Players); err != nil {
		return nil, err
	}
	if _, err := game.SetDifficulty(difficulty.Epidemics); err != nil {
		return nil, err
	}
	if _, err := game.Start(); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	sess, err := s.sessions.Create("", game, difficulty.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.logger.Info("game created",
		zap.String("game", sess.ID),
		zap.String("difficulty", difficulty.ID),
		zap.Uint64("seed", game.Seed()),
	)
	return gameInfo(sess), nil
}

// difficulty resolves a preset name, falling back to the default
func (s *gameServiceImpl) difficulty(name string) (*DifficultyInfo, error) {
	if strings.TrimSpace(name) == "" {
		return s.configs.GetDefault(), nil
	}
	d, err := s.configs.LoadConfig(name)
	if err != nil {
		available, listErr := s.configs.ListConfigs()
		if listErr != nil || len(available) == 0 {
			return nil, fmt.Errorf("%w %q: %v", ErrNoDifficulty, name, err)
		}
		ids := make([]string, 0, len(available))
		for _, a := range available {
			ids = append(ids, a.ID)
		}
		return nil, fmt.Errorf("%w %q. Available difficulties: %s", ErrNoDifficulty, name, strings.Join(ids, ", "))
	}
	return d, nil
}

// GetGame retrieves a game and its current state
func (s *gameServiceImpl) GetGame(ctx context.Context, gameID string) (*GameInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sess, err := s.session(gameID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return gameInfo(sess), nil
}

// ListGames returns every running game, oldest first
func (s *gameServiceImpl) ListGames(ctx context.Context) ([]*GameInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sessions := s.sessions.List()
	slices.SortFunc(sessions, func(a, b *Session) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	result := make([]*GameInfo, 0, len(sessions))
	for _, sess := range sessions {
		sess.mu.Lock()
		result = append(result, gameInfo(sess))
		sess.mu.Unlock()
	}
	return result, nil
}

// DeleteGame removes a game
func (s *gameServiceImpl) DeleteGame(ctx context.Context, gameID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.sessions.Delete(gameID)
}

func (s *gameServiceImpl) Act(ctx context.Context, gameID, player string, action engine.Action) (*CommandResult, error) {
	return s.command(ctx, gameID, func(g *engine.Game) ([]engine.Event, error) {
		return g.Act(player, action)
	})
}

func (s *gameServiceImpl) PlayEvent(ctx context.Context, gameID, player string, event cards.Event, params engine.EventParams) (*CommandResult, error) {
	return s.command(ctx, gameID, func(g *engine.Game) ([]engine.Event, error) {
		return g.PlayEvent(player, event, params)
	})
}

func (s *gameServiceImpl) DrawPlayerCards(ctx context.Context, gameID string) (*CommandResult, error) {
	return s.command(ctx, gameID, (*engine.Game).DrawPlayerCards)
}

func (s *gameServiceImpl) Discard(ctx context.Context, gameID, player string, card cards.PlayerCard) (*CommandResult, error) {
	return s.command(ctx, gameID, func(g *engine.Game) ([]engine.Event, error) {
		return g.Discard(player, card)
	})
}

func (s *gameServiceImpl) InfectCities(ctx context.Context, gameID string) (*CommandResult, error) {
	return s.command(ctx, gameID, (*engine.Game).InfectCities)
}

// ForecastPreview shows the infection cards a Forecast would rearrange
func (s *gameServiceImpl) ForecastPreview(ctx context.Context, gameID string) ([]cards.InfectionCard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sess, err := s.session(gameID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.Game.ForecastPreview()
}

// ListDifficulties returns the difficulty presets
func (s *gameServiceImpl) ListDifficulties(ctx context.Context) ([]*DifficultyInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.configs.ListConfigs()
}

// command runs fn against one game while holding its lock. Engine errors are
// returned unchanged so callers can match them with errors.Is.
func (s *gameServiceImpl) command(ctx context.Context, gameID string, fn func(*engine.Game) ([]engine.Event, error)) (*CommandResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sess, err := s.session(gameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	events, err := fn(sess.Game)
	if err != nil {
		return nil, err
	}
	result := &CommandResult{
		Events: events,
		State:  sess.Game.Snapshot(),
	}
	for _, e := range events {
		result.Messages = append(result.Messages, e.String())
	}
	if out := sess.Game.Outcome(); out != engine.OutcomeNone {
		s.logger.Info("game finished", zap.String("game", sess.ID), zap.Stringer("outcome", out))
	}
	return result, nil
}

func (s *gameServiceImpl) session(gameID string) (*Session, error) {
	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game %q: %w", gameID, err)
	}
	if err := s.sessions.UpdateLastAccessed(gameID); err != nil {
		return nil, fmt.Errorf("game %q: %w", gameID, err)
	}
	return sess, nil
}

// gameInfo must be called with sess.mu held.
func gameInfo(sess *Session) *GameInfo {
	return &GameInfo{
		ID:             sess.ID,
		Difficulty:     sess.Difficulty,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		State:          sess.Game.Snapshot(),
	}
}
