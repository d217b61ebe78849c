package engine

import (
	"fmt"
	"strings"

	"github.com/wricardo/mcp-training/pandemic/game/cards"
	"github.com/wricardo/mcp-training/pandemic/game/world"
)

const (
	ActionsPerTurn      = 4
	CardsPerDraw        = 2
	MaxHandSize         = 7
	MaxCubesPerCity     = 3
	CubesPerColor       = 24
	MaxStations         = 6
	MaxOutbreaks        = 8
	MinPlayers          = 2
	MaxPlayers          = 4
	MinEpidemics        = 4
	MaxEpidemics        = 6
	CureCards           = 5
	ScientistCureCards  = 4
	ForecastCards       = 6
	SetupRounds         = 3
	SetupCitiesPerRound = 3

	// StartCity holds the first research station and every pawn at setup.
	StartCity = world.Atlanta
)

// InfectionRates is indexed by the infection-rate marker.
var InfectionRates = [...]int{2, 2, 2, 3, 3, 4, 4}

// Phase is the current step of the turn state machine.
type Phase int

const (
	PhaseSetup   Phase = iota // players and difficulty being chosen
	PhaseActions              // active player spending actions
	PhaseDraw                 // actions spent, player cards to draw
	PhaseDiscard              // some hand is over the limit
	PhaseInfect               // infect cities, then next player
	PhaseOver                 // won or lost
)

var phaseNames = map[Phase]string{
	PhaseSetup:   "setup",
	PhaseActions: "actions",
	PhaseDraw:    "draw",
	PhaseDiscard: "discard",
	PhaseInfect:  "infect",
	PhaseOver:    "over",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "unknown"
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// DiseaseState tracks cure progress for one color. States only move forward.
type DiseaseState int

const (
	DiseaseActive DiseaseState = iota
	DiseaseCured
	DiseaseEradicated
)

var diseaseStateNames = map[DiseaseState]string{
	DiseaseActive:     "active",
	DiseaseCured:      "cured",
	DiseaseEradicated: "eradicated",
}

func (s DiseaseState) String() string {
	if n, ok := diseaseStateNames[s]; ok {
		return n
	}
	return "unknown"
}

func (s DiseaseState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome records how a game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeOutbreaks
	OutcomeCubes
	OutcomeTimeout
)

var outcomeNames = map[Outcome]string{
	OutcomeNone:      "",
	OutcomeWin:       "win",
	OutcomeOutbreaks: "too_many_outbreaks",
	OutcomeCubes:     "out_of_cubes",
	OutcomeTimeout:   "out_of_player_cards",
}

var outcomeText = map[Outcome]string{
	OutcomeWin:       "All four cures discovered. The players win!",
	OutcomeOutbreaks: "Too many outbreaks. The players lose.",
	OutcomeCubes:     "A disease ran out of cubes. The players lose.",
	OutcomeTimeout:   "The player deck ran out. The players lose.",
}

func (o Outcome) String() string {
	return outcomeNames[o]
}

// Description is a sentence suitable for showing at the end of a game.
func (o Outcome) Description() string {
	return outcomeText[o]
}

// Won reports whether o is the winning outcome.
func (o Outcome) Won() bool {
	return o == OutcomeWin
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Role is a player's special ability.
type Role int

const (
	RoleNone Role = iota
	ContingencyPlanner
	Dispatcher
	Medic
	OperationsExpert
	QuarantineSpecialist
	Researcher
	Scientist
)

// Roles lists every role card.
var Roles = []Role{ContingencyPlanner, Dispatcher, Medic, OperationsExpert, QuarantineSpecialist, Researcher, Scientist}

var roleNames = map[Role]string{
	RoleNone:             "None",
	ContingencyPlanner:   "Contingency Planner",
	Dispatcher:           "Dispatcher",
	Medic:                "Medic",
	OperationsExpert:     "Operations Expert",
	QuarantineSpecialist: "Quarantine Specialist",
	Researcher:           "Researcher",
	Scientist:            "Scientist",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

func (r Role) Valid() bool {
	return r >= ContingencyPlanner && r <= Scientist
}

func (r Role) MarshalText() ([]byte, error) {
	if r == RoleNone {
		return []byte(""), nil
	}
	return []byte(strings.ReplaceAll(strings.ToLower(r.String()), " ", "_")), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRole accepts "Operations Expert", "operations_expert" or
// "operationsexpert". An empty string yields RoleNone.
func ParseRole(s string) (Role, error) {
	key := roleKey(s)
	if key == "" || key == "none" {
		return RoleNone, nil
	}
	for _, r := range Roles {
		if roleKey(r.String()) == key {
			return r, nil
		}
	}
	return RoleNone, fmt.Errorf("unknown role %q", s)
}

func roleKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CityState is the mutable part of a city.
type CityState struct {
	Cubes   [world.NumColors]int
	Station bool
}

// PlayerSpec describes a seat before the game starts. A zero Role is dealt
// at random.
type PlayerSpec struct {
	Name string `json:"name"`
	Role Role   `json:"role,omitempty"`
}

// Player is a seat at the table.
type Player struct {
	Name     string
	Role     Role
	Location world.City
	Hand     []cards.PlayerCard

	// stored is the Contingency Planner's reserved event card.
	stored cards.Event
}

// Holds reports whether the player's hand contains c.
func (p *Player) Holds(c cards.PlayerCard) bool {
	for _, h := range p.Hand {
		if h == c {
			return true
		}
	}
	return false
}

// StoredEvent returns the Contingency Planner's reserved event, if any.
func (p *Player) StoredEvent() cards.Event {
	return p.stored
}

func (p *Player) maxPopulation() int {
	best := 0
	for _, c := range p.Hand {
		if pop := c.Population(); pop > best {
			best = pop
		}
	}
	return best
}
