package cards

import (
	"github.com/wricardo/mcp-training/pandemic/game/deck"
	"github.com/wricardo/mcp-training/pandemic/game/world"
)

// InfectionCard names a city to infect with its native color.
type InfectionCard struct {
	City  world.City  `json:"city"`
	Color world.Color `json:"color"`
}

func (c InfectionCard) String() string {
	return c.City.String()
}

// NewInfectionDeck returns one infection card per city, unshuffled.
func NewInfectionDeck(m *world.Map) *deck.Deck[InfectionCard] {
	all := m.AllCities()
	out := make([]InfectionCard, 0, len(all))
	for _, id := range all {
		out = append(out, InfectionCard{City: id, Color: m.ColorOf(id)})
	}
	return deck.New(out...)
}
