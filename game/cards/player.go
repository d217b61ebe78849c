package cards

import (
	"cmp"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wricardo/mcp-training/pandemic/game/deck"
	"github.com/wricardo/mcp-training/pandemic/game/world"
)

// Kind tags the PlayerCard variant.
type Kind int

const (
	KindNone Kind = iota
	KindCity
	KindEvent
	KindEpidemic
)

var kindNames = map[Kind]string{
	KindNone:     "none",
	KindCity:     "city",
	KindEvent:    "event",
	KindEpidemic: "epidemic",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if strings.EqualFold(name, string(text)) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown card kind %q", text)
}

// PlayerCard is a card of the player deck. Only the field matching Kind is
// set, so two cards are equal exactly when they are the same card.
type PlayerCard struct {
	Kind  Kind       `json:"kind"`
	City  world.City `json:"city,omitempty"`
	Event Event      `json:"event,omitempty"`
}

func CityCard(id world.City) PlayerCard {
	return PlayerCard{Kind: KindCity, City: id}
}

func EventCard(e Event) PlayerCard {
	return PlayerCard{Kind: KindEvent, Event: e}
}

func EpidemicCard() PlayerCard {
	return PlayerCard{Kind: KindEpidemic}
}

func (c PlayerCard) IsCity() bool     { return c.Kind == KindCity }
func (c PlayerCard) IsEvent() bool    { return c.Kind == KindEvent }
func (c PlayerCard) IsEpidemic() bool { return c.Kind == KindEpidemic }

// Valid reports whether c is a well-formed card.
func (c PlayerCard) Valid() bool {
	switch c.Kind {
	case KindCity:
		return c.City.Valid() && c.Event == NoEvent
	case KindEvent:
		return c.Event.Valid() && c.City == world.NoCity
	case KindEpidemic:
		return c.City == world.NoCity && c.Event == NoEvent
	}
	return false
}

// Color returns the color of a city card and NoColor for anything else.
func (c PlayerCard) Color() world.Color {
	if c.Kind != KindCity {
		return world.NoColor
	}
	return c.City.Color()
}

// Country returns the country printed on a city card.
func (c PlayerCard) Country() string {
	if info, ok := world.Standard().City(c.City); ok && c.Kind == KindCity {
		return info.Country
	}
	return ""
}

// Population returns the population printed on a city card, zero otherwise.
func (c PlayerCard) Population() int {
	if info, ok := world.Standard().City(c.City); ok && c.Kind == KindCity {
		return info.Population
	}
	return 0
}

func (c PlayerCard) String() string {
	switch c.Kind {
	case KindCity:
		return c.City.String()
	case KindEvent:
		return c.Event.String()
	case KindEpidemic:
		return "Epidemic"
	}
	return "None"
}

var printer = message.NewPrinter(language.English)

// Describe renders the full card face, e.g.
// "Atlanta (Blue) United States, pop. 4,715,000".
func (c PlayerCard) Describe() string {
	switch c.Kind {
	case KindCity:
		return printer.Sprintf("%s (%s) %s, pop. %d", c.City, c.Color(), c.Country(), c.Population())
	case KindEvent:
		return fmt.Sprintf("%s [event] %s", c.Event, c.Event.Description())
	}
	return c.String()
}

// Compare orders city cards by color, then city, then the printed
// population; event cards follow in Events order and epidemics come last.
func Compare(a, b PlayerCard) int {
	if a.Kind != b.Kind {
		return cmp.Compare(rank(a.Kind), rank(b.Kind))
	}
	switch a.Kind {
	case KindCity:
		if c := cmp.Compare(a.Color(), b.Color()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.City, b.City); c != 0 {
			return c
		}
		return cmp.Compare(a.Population(), b.Population())
	case KindEvent:
		return cmp.Compare(a.Event, b.Event)
	}
	return 0
}

func rank(k Kind) int {
	switch k {
	case KindCity:
		return 0
	case KindEvent:
		return 1
	case KindEpidemic:
		return 2
	}
	return 3
}

// ParsePlayerCard resolves a card by its printed name: a city, an event, or
// "epidemic".
func ParsePlayerCard(s string) (PlayerCard, error) {
	if strings.EqualFold(strings.TrimSpace(s), "epidemic") {
		return EpidemicCard(), nil
	}
	if e, err := ParseEvent(s); err == nil {
		return EventCard(e), nil
	}
	if id, err := world.ParseCity(s); err == nil {
		return CityCard(id), nil
	}
	return PlayerCard{}, fmt.Errorf("unknown player card %q", s)
}

// NewPlayerDeck returns the 48 city cards followed by the event cards,
// unshuffled and without epidemics.
func NewPlayerDeck(m *world.Map) *deck.Deck[PlayerCard] {
	all := m.AllCities()
	out := make([]PlayerCard, 0, len(all)+len(Events))
	for _, id := range all {
		out = append(out, CityCard(id))
	}
	for _, e := range Events {
		out = append(out, EventCard(e))
	}
	return deck.New(out...)
}
