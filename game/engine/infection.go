package engine

import (
	"go.uber.org/zap"

	"github.com/wricardo/mcp-training/pandemic/game/world"
)

// chain holds the cities that already broke out during one infection
// sequence. Every top-level infection starts a fresh chain.
type chain map[world.City]bool

func newChain() chain {
	return make(chain)
}

// infect places one cube of color on city. Checks run in a fixed order:
// eradicated, already broke out in this chain, Quarantine Specialist, Medic
// with a cured disease, supply, and finally placement or outbreak. A
// non-None result is a loss.
func (g *Game) infect(city world.City, color world.Color, visited chain) Outcome {
	if g.disease(color) == DiseaseEradicated {
		return OutcomeNone
	}
	if visited[city] {
		return OutcomeNone
	}
	if g.quarantined(city) {
		g.logger.Debug("infection prevented by quarantine",
			zap.Stringer("city", city), zap.Stringer("color", color))
		return OutcomeNone
	}
	if g.medicGuards(city, color) {
		g.logger.Debug("infection prevented by medic",
			zap.Stringer("city", city), zap.Stringer("color", color))
		return OutcomeNone
	}
	if g.cubesOnBoard(color) >= CubesPerColor {
		g.logger.Debug("cube supply exhausted",
			zap.Stringer("city", city), zap.Stringer("color", color))
		return OutcomeCubes
	}

	cs := g.city(city)
	if cs.Cubes[color.Index()] < MaxCubesPerCity {
		cs.Cubes[color.Index()]++
		g.emit(Event{Type: EventInfected, City: city, Color: color, Count: cs.Cubes[color.Index()]})
		return OutcomeNone
	}
	return g.outbreak(city, color, visited)
}

// outbreak spreads color from a saturated city to each neighbour in
// ascending city order. The first loss stops the cascade.
func (g *Game) outbreak(city world.City, color world.Color, visited chain) Outcome {
	visited[city] = true
	g.outbreaks++
	g.emit(Event{Type: EventOutbreak, City: city, Color: color, Count: g.outbreaks})
	g.logger.Debug("outbreak",
		zap.Stringer("city", city),
		zap.Stringer("color", color),
		zap.Int("outbreaks", g.outbreaks),
	)
	if g.outbreaks > MaxOutbreaks {
		return OutcomeOutbreaks
	}
	for _, n := range g.world.Adjacent(city) {
		if out := g.infect(n, color, visited); out != OutcomeNone {
			return out
		}
	}
	return OutcomeNone
}

// quarantined reports whether the Quarantine Specialist stands in or next to
// city.
func (g *Game) quarantined(city world.City) bool {
	qs := g.playerWithRole(QuarantineSpecialist)
	if qs == nil {
		return false
	}
	return qs.Location == city || g.world.IsAdjacent(qs.Location, city)
}

// medicGuards reports whether the Medic keeps cured cubes out of city.
func (g *Game) medicGuards(city world.City, color world.Color) bool {
	medic := g.playerWithRole(Medic)
	return medic != nil && medic.Location == city && g.disease(color) == DiseaseCured
}

// resolveEpidemic runs Increase, Infect and Intensify. The loss check comes
// before Intensify, so a lost game leaves the discard pile unshuffled.
func (g *Game) resolveEpidemic() Outcome {
	g.epidemics++
	if g.rateIndex < len(InfectionRates)-1 {
		g.rateIndex++
	}
	g.emit(Event{Type: EventInfectionRateIncreased, Count: g.InfectionRate()})

	card, ok := g.infectionDeck.DrawBottom()
	if !ok {
		g.logger.Warn("epidemic with an empty infection deck")
		return OutcomeNone
	}
	g.emit(Event{Type: EventEpidemicDrawn, City: card.City, Color: card.Color})
	g.logger.Debug("epidemic",
		zap.Stringer("city", card.City),
		zap.Int("epidemics", g.epidemics),
		zap.Int("rate", g.InfectionRate()),
	)

	visited := newChain()
	out := OutcomeNone
	for range 3 {
		if out = g.infect(card.City, card.Color, visited); out != OutcomeNone {
			break
		}
	}
	g.infectionDiscard.PushTop(card)
	if out != OutcomeNone {
		return out
	}

	g.infectionDiscard.Shuffle(g.rng)
	g.infectionDeck.Append(g.infectionDiscard)
	return OutcomeNone
}

// removeCubes clears n cubes of color from city (all of them if n < 0) and
// returns how many were removed.
func (g *Game) removeCubes(city world.City, color world.Color, n int) int {
	cs := g.city(city)
	have := cs.Cubes[color.Index()]
	if n < 0 || n > have {
		n = have
	}
	if n == 0 {
		return 0
	}
	cs.Cubes[color.Index()] -= n
	g.emit(Event{Type: EventCubesRemoved, City: city, Color: color, Count: n})
	g.checkEradication(color)
	return n
}

// checkEradication moves a cured disease with no cubes left to eradicated.
func (g *Game) checkEradication(color world.Color) {
	if g.disease(color) != DiseaseCured || g.cubesOnBoard(color) != 0 {
		return
	}
	g.diseases[color.Index()] = DiseaseEradicated
	g.emit(Event{Type: EventEradicated, Color: color})
}

// medicSweep removes the cubes of every cured disease from the Medic's city.
func (g *Game) medicSweep(p *Player) {
	if p.Role != Medic {
		return
	}
	for _, c := range world.Colors {
		if g.disease(c) == DiseaseCured {
			g.removeCubes(p.Location, c, -1)
		}
	}
}
