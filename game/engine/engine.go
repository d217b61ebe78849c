package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/wricardo/mcp-training/pandemic/game/cards"
	"github.com/wricardo/mcp-training/pandemic/game/deck"
	"github.com/wricardo/mcp-training/pandemic/game/world"
)

// Engine is the command surface of a game.
type Engine interface {
	// Setup
	SetPlayers(specs []PlayerSpec) ([]Event, error)
	SetDifficulty(epidemics int) ([]Event, error)
	Start() ([]Event, error)

	// Turn
	Act(player string, action Action) ([]Event, error)
	PlayEvent(player string, event cards.Event, params EventParams) ([]Event, error)
	DrawPlayerCards() ([]Event, error)
	Discard(player string, card cards.PlayerCard) ([]Event, error)
	InfectCities() ([]Event, error)

	// Queries
	ForecastPreview() ([]cards.InfectionCard, error)
	Snapshot() Snapshot
	Phase() Phase
	Outcome() Outcome
}

// Game implements Engine. It is not safe for concurrent use; callers that
// share a Game serialise commands themselves.
type Game struct {
	world  *world.Map
	rng    *rand.Rand
	seed   uint64
	logger *zap.Logger

	phase      Phase
	specs      []PlayerSpec
	difficulty int

	cities   [world.NumCities]CityState
	diseases [world.NumColors]DiseaseState

	playerDeck    *deck.Deck[cards.PlayerCard]
	playerDiscard *deck.Deck[cards.PlayerCard]
	playerRemoved *deck.Deck[cards.PlayerCard]

	infectionDeck    *deck.Deck[cards.InfectionCard]
	infectionDiscard *deck.Deck[cards.InfectionCard]
	infectionRemoved *deck.Deck[cards.InfectionCard]

	players       []*Player
	current       int
	actionsLeft   int
	turn          int
	opsFlightUsed bool

	outbreaks  int
	rateIndex  int
	epidemics  int
	quietNight bool
	outcome    Outcome

	pending []Event
}

// Option configures a Game.
type Option func(*Game)

// WithSeed fixes the random seed. Zero picks a fresh seed.
func WithSeed(seed uint64) Option {
	return func(g *Game) { g.seed = seed }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithMap replaces the standard board.
func WithMap(m *world.Map) Option {
	return func(g *Game) {
		if m != nil {
			g.world = m
		}
	}
}

// New creates a game in the setup phase.
func New(opts ...Option) (*Game, error) {
	g := &Game{
		world:      world.Standard(),
		logger:     zap.NewNop(),
		phase:      PhaseSetup,
		difficulty: MinEpidemics,

		playerDeck:       deck.New[cards.PlayerCard](),
		playerDiscard:    deck.New[cards.PlayerCard](),
		playerRemoved:    deck.New[cards.PlayerCard](),
		infectionDeck:    deck.New[cards.InfectionCard](),
		infectionDiscard: deck.New[cards.InfectionCard](),
		infectionRemoved: deck.New[cards.InfectionCard](),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.seed == 0 {
		seed, err := NewSeed()
		if err != nil {
			return nil, err
		}
		g.seed = seed
	}
	g.rng = rand.New(rand.NewPCG(g.seed, g.seed))
	return g, nil
}

// NewSeed returns a non-zero seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		if seed := binary.LittleEndian.Uint64(b[:]); seed != 0 {
			return seed, nil
		}
	}
}

// Seed returns the seed that drives every shuffle in this game.
func (g *Game) Seed() uint64 { return g.seed }

func (g *Game) Phase() Phase { return g.phase }

func (g *Game) Outcome() Outcome { return g.outcome }

// CurrentPlayer returns the name of the active player, or "" before start.
func (g *Game) CurrentPlayer() string {
	if len(g.players) == 0 {
		return ""
	}
	return g.players[g.current].Name
}

// InfectionRate is the number of infection cards drawn per turn.
func (g *Game) InfectionRate() int {
	return InfectionRates[g.rateIndex]
}

// run executes one command. Events emitted by fn are returned only when fn
// succeeds, and the invariants are checked after every state change.
func (g *Game) run(fn func() error) ([]Event, error) {
	if g.outcome != OutcomeNone {
		return nil, &GameOverError{Outcome: g.outcome}
	}
	g.pending = nil
	if err := fn(); err != nil {
		g.pending = nil
		return nil, err
	}
	if g.phase != PhaseSetup {
		if err := g.CheckInvariants(); err != nil {
			panic(err)
		}
	}
	events := g.pending
	g.pending = nil
	return events, nil
}

func (g *Game) emit(e Event) {
	g.pending = append(g.pending, e)
}

// finish ends the game.
func (g *Game) finish(outcome Outcome) {
	if g.outcome != OutcomeNone {
		return
	}
	g.outcome = outcome
	g.phase = PhaseOver
	g.emit(Event{Type: EventGameOver, Outcome: outcome})
	g.logger.Info("game over",
		zap.String("outcome", outcome.String()),
		zap.Int("turn", g.turn),
		zap.Int("outbreaks", g.outbreaks),
		zap.Int("epidemics", g.epidemics),
		zap.Uint64("seed", g.seed),
	)
}

func (g *Game) player(name string) (*Player, error) {
	for _, p := range g.players {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
}

func (g *Game) playerWithRole(r Role) *Player {
	for _, p := range g.players {
		if p.Role == r {
			return p
		}
	}
	return nil
}

func (g *Game) city(id world.City) *CityState {
	return &g.cities[id.Index()]
}

func (g *Game) disease(c world.Color) DiseaseState {
	return g.diseases[c.Index()]
}

// cubesOnBoard counts the cubes of one color across all cities.
func (g *Game) cubesOnBoard(c world.Color) int {
	total := 0
	for i := range g.cities {
		total += g.cities[i].Cubes[c.Index()]
	}
	return total
}

func (g *Game) stations() []world.City {
	var out []world.City
	for _, id := range g.world.AllCities() {
		if g.city(id).Station {
			out = append(out, id)
		}
	}
	return out
}

// addToHand puts c into p's hand, keeping the hand sorted.
func (g *Game) addToHand(p *Player, c cards.PlayerCard) {
	i, _ := slices.BinarySearchFunc(p.Hand, c, cards.Compare)
	p.Hand = slices.Insert(p.Hand, i, c)
	g.emit(Event{Type: EventHandChanged, Player: p.Name, Count: len(p.Hand)})
}

// removeFromHand takes c out of p's hand. It reports false if p does not
// hold c.
func (g *Game) removeFromHand(p *Player, c cards.PlayerCard) bool {
	i := slices.Index(p.Hand, c)
	if i < 0 {
		return false
	}
	p.Hand = slices.Delete(p.Hand, i, i+1)
	g.emit(Event{Type: EventHandChanged, Player: p.Name, Count: len(p.Hand)})
	return true
}

// transfer moves c between two hands. It is the only way a card changes
// owner.
func (g *Game) transfer(c cards.PlayerCard, from, to *Player) bool {
	if !g.removeFromHand(from, c) {
		return false
	}
	g.addToHand(to, c)
	return true
}

// discard moves c from p's hand to the player discard pile.
func (g *Game) discard(p *Player, c cards.PlayerCard) bool {
	if !g.removeFromHand(p, c) {
		return false
	}
	g.playerDiscard.PushTop(c)
	return true
}

func (g *Game) overHandLimit() []*Player {
	var out []*Player
	for _, p := range g.players {
		if len(p.Hand) > MaxHandSize {
			out = append(out, p)
		}
	}
	return out
}
