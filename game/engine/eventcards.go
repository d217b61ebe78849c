package engine

import (
	"slices"

	"go.uber.org/zap"

	"github.com/wricardo/mcp-training/pandemic/game/cards"
	"github.com/wricardo/mcp-training/pandemic/game/world"
)

// EventParams carries the choices for an event card:
//
//	Airlift:              Pawn (defaults to the card holder), Destination
//	Forecast:             Order, the new top cards with Order[0] on top
//	Government Grant:     Destination, RemoveStation when six stations exist
//	One Quiet Night:      nothing
//	Resilient Population: Target, a city in the infection discard pile
type EventParams struct {
	Pawn          string       `json:"pawn,omitempty"`
	Destination   world.City   `json:"destination,omitempty"`
	RemoveStation world.City   `json:"remove_station,omitempty"`
	Order         []world.City `json:"order,omitempty"`
	Target        world.City   `json:"target,omitempty"`
}

// PlayEvent plays an event card from a player's hand, or the Contingency
// Planner's stored event. Any player may play an event between commands
// once the game has started; it costs no action. Playing an event during the
// discard phase counts towards the hand limit.
func (g *Game) PlayEvent(player string, event cards.Event, params EventParams) ([]Event, error) {
	return g.run(func() error {
		if g.phase == PhaseSetup || g.phase == PhaseOver {
			return ErrWrongPhase
		}
		p, err := g.player(player)
		if err != nil {
			return err
		}
		card := cards.EventCard(event)
		fromHand := p.Holds(card)
		if !fromHand && (p.stored == cards.NoEvent || p.stored != event) {
			return precondition("%s does not hold %s", p.Name, event)
		}

		apply, err := g.prepareEvent(p, event, params)
		if err != nil {
			return err
		}

		if fromHand {
			g.discard(p, card)
		} else {
			p.stored = cards.NoEvent
			g.playerRemoved.PushTop(card)
		}
		g.emit(Event{Type: EventEventPlayed, Player: p.Name, Card: event.String()})
		g.logger.Debug("event played", zap.String("player", p.Name), zap.Stringer("event", event))
		apply()

		if g.phase == PhaseDiscard && len(g.overHandLimit()) == 0 {
			g.phase = PhaseInfect
		}
		return nil
	})
}

// prepareEvent validates the event and returns the closure that applies it,
// so nothing changes if the parameters are wrong.
func (g *Game) prepareEvent(p *Player, event cards.Event, params EventParams) (func(), error) {
	switch event {
	case cards.Airlift:
		pawn := p
		if params.Pawn != "" {
			var err error
			if pawn, err = g.player(params.Pawn); err != nil {
				return nil, err
			}
		}
		if err := checkDestination(pawn, params.Destination); err != nil {
			return nil, err
		}
		return func() { g.movePawn(pawn, params.Destination) }, nil

	case cards.Forecast:
		top := g.infectionDeck.Peek(ForecastCards)
		if len(params.Order) != len(top) {
			return nil, precondition("forecast needs an order for the top %d infection cards", len(top))
		}
		reordered := make([]cards.InfectionCard, 0, len(top))
		for _, id := range params.Order {
			i := slices.IndexFunc(top, func(c cards.InfectionCard) bool { return c.City == id })
			if i < 0 {
				return nil, precondition("%s is not among the top infection cards", id)
			}
			if slices.ContainsFunc(reordered, func(c cards.InfectionCard) bool { return c.City == id }) {
				return nil, precondition("%s listed twice", id)
			}
			reordered = append(reordered, top[i])
		}
		return func() {
			for range reordered {
				g.infectionDeck.DrawTop()
			}
			for i := len(reordered) - 1; i >= 0; i-- {
				g.infectionDeck.PushTop(reordered[i])
			}
		}, nil

	case cards.GovernmentGrant:
		if err := g.checkStationSite(params.Destination, params.RemoveStation); err != nil {
			return nil, err
		}
		return func() { g.placeStation(params.Destination, params.RemoveStation) }, nil

	case cards.OneQuietNight:
		if g.quietNight {
			return nil, precondition("the next infection is already skipped")
		}
		return func() { g.quietNight = true }, nil

	case cards.ResilientPopulation:
		match := func(c cards.InfectionCard) bool { return c.City == params.Target }
		if !g.infectionDiscard.Contains(match) {
			return nil, precondition("%s is not in the infection discard pile", params.Target)
		}
		return func() {
			c, _ := g.infectionDiscard.Take(match)
			g.infectionRemoved.PushTop(c)
		}, nil
	}
	return nil, precondition("unknown event %s", event)
}

// ForecastPreview shows the cards a Forecast would rearrange, top first.
func (g *Game) ForecastPreview() ([]cards.InfectionCard, error) {
	if g.phase == PhaseSetup {
		return nil, ErrWrongPhase
	}
	return g.infectionDeck.Peek(ForecastCards), nil
}
