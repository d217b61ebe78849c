package engine

import (
	"fmt"

	"github.com/wricardo/mcp-training/pandemic/game/cards"
	"github.com/wricardo/mcp-training/pandemic/game/world"
)

// CheckInvariants verifies the conservation and bound rules of a started
// game. The engine calls it after every command and panics on failure.
func (g *Game) CheckInvariants() error {
	stations := 0
	for _, id := range g.world.AllCities() {
		cs := g.city(id)
		for _, c := range world.Colors {
			if n := cs.Cubes[c.Index()]; n < 0 || n > MaxCubesPerCity {
				return &InvariantError{"cubes per city", fmt.Sprintf("%s has %d %s cubes", id, n, c)}
			}
		}
		if cs.Station {
			stations++
		}
	}
	if stations > MaxStations {
		return &InvariantError{"station limit", fmt.Sprintf("%d research stations", stations)}
	}

	for _, c := range world.Colors {
		n := g.cubesOnBoard(c)
		if n > CubesPerColor {
			return &InvariantError{"cube supply", fmt.Sprintf("%d %s cubes on the board", n, c)}
		}
		if g.disease(c) == DiseaseEradicated && n != 0 {
			return &InvariantError{"eradication", fmt.Sprintf("%s is eradicated with %d cubes left", c, n)}
		}
	}

	if g.outbreaks > MaxOutbreaks && !(g.outcome == OutcomeOutbreaks && g.outbreaks == MaxOutbreaks+1) {
		return &InvariantError{"outbreak limit", fmt.Sprintf("%d outbreaks", g.outbreaks)}
	}

	if err := g.checkPlayerCards(); err != nil {
		return err
	}
	if err := g.checkInfectionCards(); err != nil {
		return err
	}

	// Hands may grow past the limit during actions; the discard phase
	// settles them before any infection.
	if g.phase == PhaseInfect {
		for _, p := range g.players {
			if len(p.Hand) > MaxHandSize {
				return &InvariantError{"hand limit", fmt.Sprintf("%s holds %d cards", p.Name, len(p.Hand))}
			}
		}
	}
	return nil
}

// checkPlayerCards counts every player card wherever it is: both piles, the
// removed pile, every hand and the Contingency Planner's slot.
func (g *Game) checkPlayerCards() error {
	counts := make(map[cards.PlayerCard]int)
	add := func(cs []cards.PlayerCard) {
		for _, c := range cs {
			counts[c]++
		}
	}
	add(g.playerDeck.Cards())
	add(g.playerDiscard.Cards())
	add(g.playerRemoved.Cards())
	for _, p := range g.players {
		add(p.Hand)
		if p.stored != cards.NoEvent {
			counts[cards.EventCard(p.stored)]++
		}
	}

	for _, id := range g.world.AllCities() {
		if n := counts[cards.CityCard(id)]; n != 1 {
			return &InvariantError{"player cards", fmt.Sprintf("%s city card appears %d times", id, n)}
		}
	}
	for _, e := range cards.Events {
		if n := counts[cards.EventCard(e)]; n != 1 {
			return &InvariantError{"player cards", fmt.Sprintf("%s appears %d times", e, n)}
		}
	}
	if n := counts[cards.EpidemicCard()]; n != g.difficulty {
		return &InvariantError{"player cards", fmt.Sprintf("%d epidemic cards, want %d", n, g.difficulty)}
	}
	if total := len(counts); total != len(g.world.AllCities())+len(cards.Events)+1 {
		return &InvariantError{"player cards", fmt.Sprintf("%d distinct cards", total)}
	}
	return nil
}

func (g *Game) checkInfectionCards() error {
	counts := make(map[world.City]int)
	for _, pile := range [][]cards.InfectionCard{
		g.infectionDeck.Cards(),
		g.infectionDiscard.Cards(),
		g.infectionRemoved.Cards(),
	} {
		for _, c := range pile {
			counts[c.City]++
		}
	}
	for _, id := range g.world.AllCities() {
		if counts[id] != 1 {
			return &InvariantError{"infection cards", fmt.Sprintf("%s appears %d times", id, counts[id])}
		}
	}
	if len(counts) != len(g.world.AllCities()) {
		return &InvariantError{"infection cards", fmt.Sprintf("%d distinct cards", len(counts))}
	}
	return nil
}
