package engine

import (
	"strings"

	"github.com/wricardo/mcp-training/pandemic/game/cards"
	"github.com/wricardo/mcp-training/pandemic/game/world"
)

// pawnFor resolves which pawn an action moves. Only the Dispatcher may move
// a pawn other than their own.
func (g *Game) pawnFor(actor *Player, name string) (*Player, error) {
	if name == "" {
		return actor, nil
	}
	pawn, err := g.player(name)
	if err != nil {
		return nil, err
	}
	if pawn != actor && actor.Role != Dispatcher {
		return nil, precondition("only the Dispatcher may move another player's pawn")
	}
	return pawn, nil
}

func checkDestination(pawn *Player, dest world.City) error {
	if !dest.Valid() {
		return precondition("unknown destination")
	}
	if dest == pawn.Location {
		return precondition("%s is already in %s", pawn.Name, dest)
	}
	return nil
}

// movePawn relocates pawn. The Medic clears cured diseases on arrival.
func (g *Game) movePawn(pawn *Player, dest world.City) {
	from := pawn.Location
	pawn.Location = dest
	g.emit(Event{Type: EventPawnMoved, Player: pawn.Name, From: from, City: dest})
	g.medicSweep(pawn)
}

func (g *Game) drive(actor *Player, a Action) error {
	pawn, err := g.pawnFor(actor, a.Pawn)
	if err != nil {
		return err
	}
	if err := checkDestination(pawn, a.Destination); err != nil {
		return err
	}
	if !g.world.IsAdjacent(pawn.Location, a.Destination) {
		return precondition("%s is not adjacent to %s", a.Destination, pawn.Location)
	}
	g.movePawn(pawn, a.Destination)
	return nil
}

func (g *Game) directFlight(actor *Player, a Action) error {
	pawn, err := g.pawnFor(actor, a.Pawn)
	if err != nil {
		return err
	}
	if err := checkDestination(pawn, a.Destination); err != nil {
		return err
	}
	card := cards.CityCard(a.Destination)
	if !actor.Holds(card) {
		return precondition("direct flight to %s needs the %s card", a.Destination, a.Destination)
	}
	g.discard(actor, card)
	g.movePawn(pawn, a.Destination)
	return nil
}

// charterFlight discards the card of the moved pawn's city, which for a
// Dispatcher moving someone else is that pawn's city, not their own.
func (g *Game) charterFlight(actor *Player, a Action) error {
	pawn, err := g.pawnFor(actor, a.Pawn)
	if err != nil {
		return err
	}
	if err := checkDestination(pawn, a.Destination); err != nil {
		return err
	}
	card := cards.CityCard(pawn.Location)
	if !actor.Holds(card) {
		return precondition("charter flight from %s needs the %s card", pawn.Location, pawn.Location)
	}
	g.discard(actor, card)
	g.movePawn(pawn, a.Destination)
	return nil
}

func (g *Game) shuttleFlight(actor *Player, a Action) error {
	pawn, err := g.pawnFor(actor, a.Pawn)
	if err != nil {
		return err
	}
	if err := checkDestination(pawn, a.Destination); err != nil {
		return err
	}
	if !g.city(pawn.Location).Station || !g.city(a.Destination).Station {
		return precondition("shuttle flights need a research station in %s and %s", pawn.Location, a.Destination)
	}
	g.movePawn(pawn, a.Destination)
	return nil
}

// operationsFlight is the Operations Expert's once-per-turn move from a
// research station to anywhere by discarding any city card.
func (g *Game) operationsFlight(actor *Player, a Action) error {
	if actor.Role != OperationsExpert {
		return precondition("only the Operations Expert can do that")
	}
	if a.Pawn != "" && !strings.EqualFold(strings.TrimSpace(a.Pawn), actor.Name) {
		return precondition("the Operations Expert can only fly their own pawn")
	}
	if g.opsFlightUsed {
		return precondition("already used this turn")
	}
	if !g.city(actor.Location).Station {
		return precondition("%s has no research station", actor.Location)
	}
	if err := checkDestination(actor, a.Destination); err != nil {
		return err
	}
	card := cards.CityCard(a.Card)
	if !a.Card.Valid() || !actor.Holds(card) {
		return precondition("choose a city card from your hand to discard")
	}
	g.discard(actor, card)
	g.opsFlightUsed = true
	g.movePawn(actor, a.Destination)
	return nil
}

// dispatch moves any pawn to a city that holds another pawn.
func (g *Game) dispatch(actor *Player, a Action) error {
	if actor.Role != Dispatcher {
		return precondition("only the Dispatcher can do that")
	}
	pawn, err := g.pawnFor(actor, a.Pawn)
	if err != nil {
		return err
	}
	if err := checkDestination(pawn, a.Destination); err != nil {
		return err
	}
	occupied := false
	for _, p := range g.players {
		if p != pawn && p.Location == a.Destination {
			occupied = true
			break
		}
	}
	if !occupied {
		return precondition("no other pawn is in %s", a.Destination)
	}
	g.movePawn(pawn, a.Destination)
	return nil
}
