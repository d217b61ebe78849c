package engine

import (
	"fmt"

	"github.com/wricardo/mcp-training/pandemic/game/world"
)

// EventType identifies events emitted by the engine.
type EventType string

const (
	EventGameStarted            EventType = "game_started"
	EventInfected               EventType = "infected"
	EventOutbreak               EventType = "outbreak"
	EventEpidemicDrawn          EventType = "epidemic_drawn"
	EventInfectionRateIncreased EventType = "infection_rate_increased"
	EventInfectionSkipped       EventType = "infection_skipped"
	EventCured                  EventType = "cured"
	EventEradicated             EventType = "eradicated"
	EventCubesRemoved           EventType = "cubes_removed"
	EventStationBuilt           EventType = "station_built"
	EventStationMoved           EventType = "station_moved"
	EventPawnMoved              EventType = "pawn_moved"
	EventCardDrawn              EventType = "card_drawn"
	EventHandChanged            EventType = "hand_changed"
	EventEventPlayed            EventType = "event_played"
	EventTurnAdvanced           EventType = "turn_advanced"
	EventGameOver               EventType = "game_over"
)

// Event is emitted by the engine after a state change. Only the fields that
// matter for Type are set.
type Event struct {
	Type    EventType   `json:"type"`
	Player  string      `json:"player,omitempty"`
	City    world.City  `json:"city,omitempty"`
	From    world.City  `json:"from,omitempty"`
	Color   world.Color `json:"color,omitempty"`
	Count   int         `json:"count,omitempty"`
	Card    string      `json:"card,omitempty"`
	Outcome Outcome     `json:"outcome,omitempty"`
}

func (e Event) String() string {
	switch e.Type {
	case EventGameStarted:
		return "The game begins."
	case EventInfected:
		return fmt.Sprintf("%s gains a %s cube.", e.City, e.Color)
	case EventOutbreak:
		return fmt.Sprintf("OUTBREAK of %s in %s! (%d so far)", e.Color, e.City, e.Count)
	case EventEpidemicDrawn:
		return fmt.Sprintf("EPIDEMIC in %s!", e.City)
	case EventInfectionRateIncreased:
		return fmt.Sprintf("Infection rate is now %d.", e.Count)
	case EventInfectionSkipped:
		return "One quiet night: no cities are infected."
	case EventCured:
		return fmt.Sprintf("A cure for %s has been discovered.", e.Color)
	case EventEradicated:
		return fmt.Sprintf("%s has been eradicated.", e.Color)
	case EventCubesRemoved:
		return fmt.Sprintf("%d %s cube(s) removed from %s.", e.Count, e.Color, e.City)
	case EventStationBuilt:
		return fmt.Sprintf("Research station built in %s.", e.City)
	case EventStationMoved:
		return fmt.Sprintf("Research station moved from %s to %s.", e.From, e.City)
	case EventPawnMoved:
		return fmt.Sprintf("%s moves from %s to %s.", e.Player, e.From, e.City)
	case EventCardDrawn:
		return fmt.Sprintf("%s draws %s.", e.Player, e.Card)
	case EventHandChanged:
		return fmt.Sprintf("%s now holds %d card(s).", e.Player, e.Count)
	case EventEventPlayed:
		return fmt.Sprintf("%s plays %s.", e.Player, e.Card)
	case EventTurnAdvanced:
		return fmt.Sprintf("It is now %s's turn.", e.Player)
	case EventGameOver:
		return e.Outcome.Description()
	}
	return string(e.Type)
}
