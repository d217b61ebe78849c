package cards

import (
	"fmt"
	"strings"
)

// Event names one of the special event cards.
type Event int

const (
	NoEvent Event = iota
	Airlift
	Forecast
	GovernmentGrant
	OneQuietNight
	ResilientPopulation
)

// Events lists every event card in deck order.
var Events = []Event{Airlift, Forecast, GovernmentGrant, OneQuietNight, ResilientPopulation}

var eventNames = map[Event]string{
	NoEvent:             "None",
	Airlift:             "Airlift",
	Forecast:            "Forecast",
	GovernmentGrant:     "Government Grant",
	OneQuietNight:       "One Quiet Night",
	ResilientPopulation: "Resilient Population",
}

var eventText = map[Event]string{
	Airlift:             "Move any 1 pawn to any city.",
	Forecast:            "Draw, look at, and rearrange the top 6 cards of the Infection Deck.",
	GovernmentGrant:     "Add 1 research station to any city.",
	OneQuietNight:       "Skip the next Infect Cities step.",
	ResilientPopulation: "Remove any 1 card in the Infection Discard Pile from the game.",
}

func (e Event) String() string {
	if s, ok := eventNames[e]; ok {
		return s
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// Description returns the rules text printed on the card.
func (e Event) Description() string {
	return eventText[e]
}

func (e Event) Valid() bool {
	return e >= Airlift && e <= ResilientPopulation
}

func (e Event) MarshalText() ([]byte, error) {
	if e == NoEvent {
		return []byte(""), nil
	}
	return []byte(eventKey(e.String())), nil
}

func (e *Event) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*e = NoEvent
		return nil
	}
	parsed, err := ParseEvent(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// ParseEvent accepts "Government Grant", "government_grant" or
// "governmentgrant".
func ParseEvent(s string) (Event, error) {
	key := eventKey(s)
	for _, e := range Events {
		if eventKey(e.String()) == key || strings.ReplaceAll(eventKey(e.String()), "_", "") == key {
			return e, nil
		}
	}
	return NoEvent, fmt.Errorf("unknown event %q", s)
}

func eventKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "_", " ")), "_")
}
