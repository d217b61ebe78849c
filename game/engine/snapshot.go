package engine

import (
	"slices"
	"strings"

	"github.com/wricardo/mcp-training/pandemic/game/cards"
	"github.com/wricardo/mcp-training/pandemic/game/world"
)

// Snapshot is a read-only copy of the game state. Nothing in it aliases the
// engine.
type Snapshot struct {
	Seed                 uint64                `json:"seed"`
	Phase                Phase                 `json:"phase"`
	Turn                 int                   `json:"turn"`
	CurrentPlayer        string                `json:"current_player,omitempty"`
	ActionsLeft          int                   `json:"actions_left"`
	OperationsFlightUsed bool                  `json:"operations_flight_used,omitempty"`
	Players              []PlayerView          `json:"players"`
	Cities               []CityView            `json:"cities"`
	Diseases             []DiseaseView         `json:"diseases"`
	Outbreaks            int                   `json:"outbreaks"`
	InfectionRate        int                   `json:"infection_rate"`
	InfectionRateIndex   int                   `json:"infection_rate_index"`
	Epidemics            int                   `json:"epidemics"`
	EpidemicsConfigured  int                   `json:"epidemics_configured"`
	PlayerDeckSize       int                   `json:"player_deck_size"`
	InfectionDeckSize    int                   `json:"infection_deck_size"`
	PlayerDiscard        []cards.PlayerCard    `json:"player_discard"`
	InfectionDiscard     []cards.InfectionCard `json:"infection_discard"`
	PlayerRemoved        []cards.PlayerCard    `json:"player_removed,omitempty"`
	InfectionRemoved     []cards.InfectionCard `json:"infection_removed,omitempty"`
	QuietNight           bool                  `json:"quiet_night,omitempty"`
	Outcome              Outcome               `json:"outcome,omitempty"`
}

type PlayerView struct {
	Name        string             `json:"name"`
	Role        Role               `json:"role"`
	Location    world.City         `json:"location"`
	Hand        []cards.PlayerCard `json:"hand"`
	StoredEvent cards.Event        `json:"stored_event,omitempty"`
}

type CityView struct {
	City    world.City           `json:"city"`
	Color   world.Color          `json:"color"`
	Cubes   [world.NumColors]int `json:"cubes"`
	Station bool                 `json:"station,omitempty"`
}

// Total returns the number of cubes of every color in the city.
func (c CityView) Total() int {
	n := 0
	for _, v := range c.Cubes {
		n += v
	}
	return n
}

type DiseaseView struct {
	Color     world.Color  `json:"color"`
	State     DiseaseState `json:"state"`
	OnBoard   int          `json:"on_board"`
	Remaining int          `json:"remaining"`
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Seed:                 g.seed,
		Phase:                g.phase,
		Turn:                 g.turn,
		CurrentPlayer:        g.CurrentPlayer(),
		ActionsLeft:          g.actionsLeft,
		OperationsFlightUsed: g.opsFlightUsed,
		Outbreaks:            g.outbreaks,
		InfectionRate:        g.InfectionRate(),
		InfectionRateIndex:   g.rateIndex,
		Epidemics:            g.epidemics,
		EpidemicsConfigured:  g.difficulty,
		PlayerDeckSize:       g.playerDeck.Len(),
		InfectionDeckSize:    g.infectionDeck.Len(),
		PlayerDiscard:        g.playerDiscard.Cards(),
		InfectionDiscard:     g.infectionDiscard.Cards(),
		PlayerRemoved:        g.playerRemoved.Cards(),
		InfectionRemoved:     g.infectionRemoved.Cards(),
		QuietNight:           g.quietNight,
		Outcome:              g.outcome,
	}
	if g.phase == PhaseSetup {
		for _, spec := range g.specs {
			s.Players = append(s.Players, PlayerView{Name: spec.Name, Role: spec.Role})
		}
	}
	for _, p := range g.players {
		s.Players = append(s.Players, PlayerView{
			Name:        p.Name,
			Role:        p.Role,
			Location:    p.Location,
			Hand:        slices.Clone(p.Hand),
			StoredEvent: p.stored,
		})
	}
	for _, id := range g.world.AllCities() {
		cs := g.city(id)
		s.Cities = append(s.Cities, CityView{
			City:    id,
			Color:   g.world.ColorOf(id),
			Cubes:   cs.Cubes,
			Station: cs.Station,
		})
	}
	for _, c := range world.Colors {
		onBoard := g.cubesOnBoard(c)
		s.Diseases = append(s.Diseases, DiseaseView{
			Color:     c,
			State:     g.disease(c),
			OnBoard:   onBoard,
			Remaining: CubesPerColor - onBoard,
		})
	}
	return s
}

// Player finds a player by name, ignoring case.
func (s Snapshot) Player(name string) (PlayerView, bool) {
	for _, p := range s.Players {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return PlayerView{}, false
}

// City returns the view of one city.
func (s Snapshot) City(id world.City) CityView {
	for _, c := range s.Cities {
		if c.City == id {
			return c
		}
	}
	return CityView{City: id}
}

// Disease returns the track of one color.
func (s Snapshot) Disease(c world.Color) DiseaseView {
	for _, d := range s.Diseases {
		if d.Color == c {
			return d
		}
	}
	return DiseaseView{Color: c}
}

// Stations lists the cities with a research station.
func (s Snapshot) Stations() []world.City {
	var out []world.City
	for _, c := range s.Cities {
		if c.Station {
			out = append(out, c.City)
		}
	}
	return out
}
