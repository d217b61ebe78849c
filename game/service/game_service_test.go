package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/wricardo/mcp-training/pandemic/game/cards"
	"github.com/wricardo/mcp-training/pandemic/game/engine"
	"github.com/wricardo/mcp-training/pandemic/game/service"
)

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
	clock    time.Time
	touchErr error // returned by UpdateLastAccessed when set
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *MockSessionManager) Create(id string, game *engine.Game, difficulty string) (*service.Session, error) {
	// Generate ID if empty (mimics real session manager behavior)
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}
	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	m.clock = m.clock.Add(time.Second)
	session := &service.Session{
		ID:             id,
		Game:           game,
		Difficulty:     difficulty,
		CreatedAt:      m.clock,
		LastAccessedAt: m.clock,
	}
	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, errors.New("session not found")
	}
	return session, nil
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	if m.touchErr != nil {
		return m.touchErr
	}
	if session, exists := m.sessions[id]; exists {
		m.clock = m.clock.Add(time.Second)
		session.Touch(m.clock)
	}
	return nil
}

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	configs []*service.DifficultyInfo
}

func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		configs: []*service.DifficultyInfo{
			{ID: "easy", Name: "Easy", Epidemics: 4},
			{ID: "hard", Name: "Hard", Epidemics: 6},
		},
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*service.DifficultyInfo, error) {
	for _, c := range m.configs {
		if c.ID == name {
			return c, nil
		}
	}
	return nil, errors.New("config not found")
}

func (m *MockConfigManager) ListConfigs() ([]*service.DifficultyInfo, error) {
	return m.configs, nil
}

func (m *MockConfigManager) GetDefault() *service.DifficultyInfo {
	return m.configs[0]
}

func newTestService(t *testing.T) (service.GameService, *MockSessionManager) {
	t.Helper()
	sessions := NewMockSessionManager()
	return service.NewGameService(sessions, NewMockConfigManager()), sessions
}

var twoPlayers = []engine.PlayerSpec{
	{Name: "Ada", Role: engine.Scientist},
	{Name: "Ben", Role: engine.Medic},
}

func createGame(t *testing.T, svc service.GameService) *service.GameInfo {
	t.Helper()
	info, err := svc.CreateGame(context.Background(), service.NewGameRequest{Players: twoPlayers, Seed: 1})
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	return info
}

func TestGameService_CreateGame(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newTestService(t)

	t.Run("default difficulty", func(t *testing.T) {
		info := createGame(t, svc)
		if info.ID == "" {
			t.Fatal("Expected a game ID")
		}
		if info.Difficulty != "easy" {
			t.Errorf("Expected default difficulty 'easy', got %q", info.Difficulty)
		}
		if info.State.Phase != engine.PhaseActions {
			t.Errorf("Expected the game to be in the actions phase, got %s", info.State.Phase)
		}
		if info.State.Seed != 1 {
			t.Errorf("Expected seed 1, got %d", info.State.Seed)
		}
		if len(info.State.Players) != 2 {
			t.Errorf("Expected 2 players, got %d", len(info.State.Players))
		}
	})

	t.Run("named difficulty", func(t *testing.T) {
		info, err := svc.CreateGame(ctx, service.NewGameRequest{Players: twoPlayers, Difficulty: "hard", Seed: 2})
		if err != nil {
			t.Fatalf("Failed to create game: %v", err)
		}
		if info.State.EpidemicsConfigured != 6 {
			t.Errorf("Expected 6 epidemics, got %d", info.State.EpidemicsConfigured)
		}
	})

	t.Run("unknown difficulty", func(t *testing.T) {
		before := len(sessions.sessions)
		_, err := svc.CreateGame(ctx, service.NewGameRequest{Players: twoPlayers, Difficulty: "nightmare"})
		if !errors.Is(err, service.ErrNoDifficulty) {
			t.Fatalf("Expected ErrNoDifficulty, got %v", err)
		}
		if !strings.Contains(err.Error(), "easy, hard") {
			t.Errorf("Expected the available difficulties in %q", err.Error())
		}
		if len(sessions.sessions) != before {
			t.Error("A rejected game must not be stored")
		}
	})

	t.Run("bad players", func(t *testing.T) {
		_, err := svc.CreateGame(ctx, service.NewGameRequest{Players: twoPlayers[:1]})
		if !errors.Is(err, engine.ErrSetup) {
			t.Errorf("Expected ErrSetup for one player, got %v", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := svc.CreateGame(canceled, service.NewGameRequest{Players: twoPlayers}); !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	})
}

func TestGameService_Act(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	info := createGame(t, svc)
	current := info.State.CurrentPlayer

	result, err := svc.Act(ctx, info.ID, current, engine.Action{Kind: engine.ActionPass})
	if err != nil {
		t.Fatalf("Pass failed: %v", err)
	}
	if result.State.ActionsLeft != engine.ActionsPerTurn-1 {
		t.Errorf("Expected %d actions left, got %d", engine.ActionsPerTurn-1, result.State.ActionsLeft)
	}

	other := "Ada"
	if strings.EqualFold(current, "Ada") {
		other = "Ben"
	}
	_, err = svc.Act(ctx, info.ID, other, engine.Action{Kind: engine.ActionPass})
	if !errors.Is(err, engine.ErrNotYourTurn) {
		t.Errorf("Expected ErrNotYourTurn, got %v", err)
	}
	if !errors.Is(err, engine.ErrPrecondition) {
		t.Errorf("Expected engine errors to pass through unchanged, got %v", err)
	}

	_, err = svc.Act(ctx, "missing", current, engine.Action{Kind: engine.ActionPass})
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Errorf("Expected an error naming the missing game, got %v", err)
	}
}

func TestGameService_FullTurn(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	info := createGame(t, svc)
	current := info.State.CurrentPlayer

	if _, err := svc.InfectCities(ctx, info.ID); !errors.Is(err, engine.ErrWrongPhase) {
		t.Errorf("Expected ErrWrongPhase infecting during actions, got %v", err)
	}

	for range engine.ActionsPerTurn {
		if _, err := svc.Act(ctx, info.ID, current, engine.Action{Kind: engine.ActionPass}); err != nil {
			t.Fatalf("Pass failed: %v", err)
		}
	}

	result, err := svc.DrawPlayerCards(ctx, info.ID)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if len(result.Messages) != len(result.Events) {
		t.Errorf("Expected one message per event, got %d for %d", len(result.Messages), len(result.Events))
	}
	if result.State.Phase != engine.PhaseInfect {
		t.Fatalf("Expected the infect phase after drawing, got %s", result.State.Phase)
	}

	preview, err := svc.ForecastPreview(ctx, info.ID)
	if err != nil {
		t.Fatalf("ForecastPreview failed: %v", err)
	}
	if len(preview) != engine.ForecastCards {
		t.Errorf("Expected %d cards in the preview, got %d", engine.ForecastCards, len(preview))
	}

	result, err = svc.InfectCities(ctx, info.ID)
	if err != nil {
		t.Fatalf("Infect failed: %v", err)
	}
	if result.State.CurrentPlayer == current {
		t.Error("Expected the turn to pass to the next player")
	}
	if result.State.Phase != engine.PhaseActions {
		t.Errorf("Expected the actions phase, got %s", result.State.Phase)
	}
}

func TestGameService_PlayEventAndDiscardPreconditions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	info := createGame(t, svc)

	ada, _ := info.State.Player("Ada")
	var missing cards.Event
	for _, e := range cards.Events {
		held := false
		for _, c := range ada.Hand {
			if c == cards.EventCard(e) {
				held = true
			}
		}
		if !held {
			missing = e
			break
		}
	}
	if _, err := svc.PlayEvent(ctx, info.ID, "Ada", missing, engine.EventParams{}); !errors.Is(err, engine.ErrPrecondition) {
		t.Errorf("Expected ErrPrecondition for an event not held, got %v", err)
	}
	if _, err := svc.Discard(ctx, info.ID, "Ada", ada.Hand[0]); !errors.Is(err, engine.ErrWrongPhase) {
		t.Errorf("Expected ErrWrongPhase discarding during actions, got %v", err)
	}
}

func TestGameService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	first := createGame(t, svc)
	second := createGame(t, svc)

	games, err := svc.ListGames(ctx)
	if err != nil {
		t.Fatalf("ListGames failed: %v", err)
	}
	if len(games) != 2 || games[0].ID != first.ID || games[1].ID != second.ID {
		t.Fatalf("Expected games oldest first, got %v", games)
	}

	if err := svc.DeleteGame(ctx, first.ID); err != nil {
		t.Fatalf("DeleteGame failed: %v", err)
	}
	if _, err := svc.GetGame(ctx, first.ID); err == nil {
		t.Error("Expected an error getting a deleted game")
	}
	got, err := svc.GetGame(ctx, second.ID)
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if !got.LastAccessedAt.After(got.CreatedAt) {
		t.Error("Expected GetGame to update the last access time")
	}
}

func TestGameService_ListDifficulties(t *testing.T) {
	svc, _ := newTestService(t)
	difficulties, err := svc.ListDifficulties(context.Background())
	if err != nil {
		t.Fatalf("ListDifficulties failed: %v", err)
	}
	if len(difficulties) != 2 || difficulties[1].Epidemics != 6 {
		t.Errorf("Unexpected difficulties: %v", difficulties)
	}
}

func TestGameService_SessionGoneBeforeAccessUpdate(t *testing.T) {
	svc, sessions := newTestService(t)
	ctx := context.Background()
	info := createGame(t, svc)

	expired := errors.New("session expired")
	sessions.touchErr = expired

	if _, err := svc.GetGame(ctx, info.ID); !errors.Is(err, expired) {
		t.Errorf("Expected GetGame to report the failed access update, got %v", err)
	}
	if _, err := svc.Act(ctx, info.ID, info.State.CurrentPlayer, engine.Action{Kind: engine.ActionPass}); !errors.Is(err, expired) {
		t.Fatalf("Expected Act to report the failed access update, got %v", err)
	}

	sessions.touchErr = nil
	got, err := svc.GetGame(ctx, info.ID)
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if got.State.ActionsLeft != info.State.ActionsLeft {
		t.Errorf("Expected the rejected command to leave %d actions, got %d", info.State.ActionsLeft, got.State.ActionsLeft)
	}
}
