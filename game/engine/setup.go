package engine

import (
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/wricardo/mcp-training/pandemic/game/cards"
	"github.com/wricardo/mcp-training/pandemic/game/deck"
)

// ValidatePlayers checks a seating plan: 2 to 4 players, non-empty names that
// are unique ignoring case, and no role taken twice.
func ValidatePlayers(specs []PlayerSpec) error {
	if len(specs) < MinPlayers || len(specs) > MaxPlayers {
		return setupError("need %d to %d players, got %d", MinPlayers, MaxPlayers, len(specs))
	}
	names := make(map[string]bool, len(specs))
	roles := make(map[Role]bool, len(specs))
	for i, s := range specs {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return setupError("player %d has no name", i+1)
		}
		key := strings.ToLower(name)
		if names[key] {
			return setupError("duplicate player name %q", name)
		}
		names[key] = true

		if s.Role == RoleNone {
			continue
		}
		if !s.Role.Valid() {
			return setupError("player %q has an unknown role", name)
		}
		if roles[s.Role] {
			return setupError("role %s taken twice", s.Role)
		}
		roles[s.Role] = true
	}
	return nil
}

// ValidateDifficulty checks the number of epidemic cards.
func ValidateDifficulty(epidemics int) error {
	if epidemics < MinEpidemics || epidemics > MaxEpidemics {
		return setupError("epidemics must be between %d and %d, got %d", MinEpidemics, MaxEpidemics, epidemics)
	}
	return nil
}

// SetPlayers seats the players. It may be called again until Start.
func (g *Game) SetPlayers(specs []PlayerSpec) ([]Event, error) {
	return g.run(func() error {
		if g.phase != PhaseSetup {
			return ErrWrongPhase
		}
		if err := ValidatePlayers(specs); err != nil {
			return err
		}
		g.specs = make([]PlayerSpec, len(specs))
		for i, s := range specs {
			g.specs[i] = PlayerSpec{Name: strings.TrimSpace(s.Name), Role: s.Role}
		}
		return nil
	})
}

// SetDifficulty chooses how many epidemic cards go into the player deck.
func (g *Game) SetDifficulty(epidemics int) ([]Event, error) {
	return g.run(func() error {
		if g.phase != PhaseSetup {
			return ErrWrongPhase
		}
		if err := ValidateDifficulty(epidemics); err != nil {
			return err
		}
		g.difficulty = epidemics
		return nil
	})
}

// Start deals the game: roles, decks, starting hands, epidemics, turn order
// and the initial infection.
func (g *Game) Start() ([]Event, error) {
	return g.run(func() error {
		if g.phase != PhaseSetup {
			return ErrWrongPhase
		}
		if len(g.specs) == 0 {
			return setupError("players have not been set")
		}
		g.setupBoard()
		if out := g.seedInfections(); out != OutcomeNone {
			// Unreachable with the standard deck; handled for custom maps.
			g.finish(out)
			return nil
		}
		g.beginPlay()
		return nil
	})
}

// setupBoard covers every setup step before the initial infection.
func (g *Game) setupBoard() {
	g.dealRoles()

	g.city(StartCity).Station = true

	g.playerDeck = cards.NewPlayerDeck(g.world)
	g.playerDeck.Shuffle(g.rng)
	g.infectionDeck = cards.NewInfectionDeck(g.world)
	g.infectionDeck.Shuffle(g.rng)

	perPlayer := 6 - len(g.players)
	for range perPlayer {
		for _, p := range g.players {
			c, _ := g.playerDeck.DrawTop()
			g.addToHand(p, c)
		}
	}

	cards.AddEpidemicCards(g.playerDeck, g.difficulty, g.rng)

	// The player holding the most populous city goes first.
	slices.SortStableFunc(g.players, func(a, b *Player) int {
		return b.maxPopulation() - a.maxPopulation()
	})
}

func (g *Game) dealRoles() {
	taken := make(map[Role]bool)
	for _, s := range g.specs {
		if s.Role != RoleNone {
			taken[s.Role] = true
		}
	}
	var free []Role
	for _, r := range Roles {
		if !taken[r] {
			free = append(free, r)
		}
	}
	roleDeck := deck.New(free...)
	roleDeck.Shuffle(g.rng)

	g.players = make([]*Player, 0, len(g.specs))
	for _, s := range g.specs {
		role := s.Role
		if role == RoleNone {
			role, _ = roleDeck.DrawTop()
		}
		g.players = append(g.players, &Player{Name: s.Name, Role: role, Location: StartCity})
	}
}

// seedInfections draws three rounds of three infection cards; cities drawn
// in the first round get three cubes, then two, then one.
func (g *Game) seedInfections() Outcome {
	for round := range SetupRounds {
		for range SetupCitiesPerRound {
			card, ok := g.infectionDeck.DrawTop()
			if !ok {
				return OutcomeNone
			}
			chain := newChain()
			var out Outcome
			for range SetupRounds - round {
				if out = g.infect(card.City, card.Color, chain); out != OutcomeNone {
					break
				}
			}
			g.infectionDiscard.PushTop(card)
			if out != OutcomeNone {
				return out
			}
		}
	}
	return OutcomeNone
}

func (g *Game) beginPlay() {
	g.phase = PhaseActions
	g.current = 0
	g.actionsLeft = ActionsPerTurn
	g.turn = 1

	names := make([]string, len(g.players))
	roles := make([]string, len(g.players))
	for i, p := range g.players {
		names[i] = p.Name
		roles[i] = p.Role.String()
	}
	g.emit(Event{Type: EventGameStarted, Count: g.difficulty})
	g.emit(Event{Type: EventTurnAdvanced, Player: g.players[0].Name})
	g.logger.Info("game started",
		zap.Strings("players", names),
		zap.Strings("roles", roles),
		zap.Int("epidemics", g.difficulty),
		zap.Uint64("seed", g.seed),
	)
}
