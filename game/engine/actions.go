package engine

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/wricardo/mcp-training/pandemic/game/cards"
	"github.com/wricardo/mcp-training/pandemic/game/world"
)

// ActionKind names a player action.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionPass
	ActionCancel
	ActionDrive
	ActionDirectFlight
	ActionCharterFlight
	ActionShuttleFlight
	ActionOperationsFlight
	ActionDispatch
	ActionBuildStation
	ActionTreatDisease
	ActionShareKnowledge
	ActionDiscoverCure
	ActionTakeEvent
)

var actionNames = map[ActionKind]string{
	ActionNone:             "none",
	ActionPass:             "pass",
	ActionCancel:           "cancel",
	ActionDrive:            "drive",
	ActionDirectFlight:     "direct_flight",
	ActionCharterFlight:    "charter_flight",
	ActionShuttleFlight:    "shuttle_flight",
	ActionOperationsFlight: "operations_flight",
	ActionDispatch:         "dispatch",
	ActionBuildStation:     "build_station",
	ActionTreatDisease:     "treat_disease",
	ActionShareKnowledge:   "share_knowledge",
	ActionDiscoverCure:     "discover_cure",
	ActionTakeEvent:        "take_event",
}

// ActionKinds lists the actions a player can choose, in menu order.
var ActionKinds = []ActionKind{
	ActionDrive, ActionDirectFlight, ActionCharterFlight, ActionShuttleFlight,
	ActionBuildStation, ActionTreatDisease, ActionShareKnowledge, ActionDiscoverCure,
	ActionOperationsFlight, ActionDispatch, ActionTakeEvent, ActionPass,
}

func (k ActionKind) String() string {
	if s, ok := actionNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ActionKind) UnmarshalText(text []byte) error {
	parsed, err := ParseActionKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseActionKind accepts "direct_flight", "direct flight" or
// "directflight".
func ParseActionKind(s string) (ActionKind, error) {
	key := roleKey(s)
	for k, name := range actionNames {
		if k != ActionNone && roleKey(name) == key {
			return k, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", s)
}

// Action is one player action. Which fields are read depends on Kind:
//
//	drive, direct_flight, charter_flight, shuttle_flight: Destination, Pawn
//	operations_flight: Destination, Card
//	dispatch: Pawn, Destination
//	build_station: RemoveStation when six stations exist
//	treat_disease: Color (optional if only one color is present)
//	share_knowledge: Partner, Card (defaults to the current city), Take
//	discover_cure: Color and/or Cards (auto-picked when empty)
//	take_event: Event
type Action struct {
	Kind          ActionKind   `json:"kind"`
	Pawn          string       `json:"pawn,omitempty"`
	Destination   world.City   `json:"destination,omitempty"`
	Color         world.Color  `json:"color,omitempty"`
	Card          world.City   `json:"card,omitempty"`
	Partner       string       `json:"partner,omitempty"`
	Take          bool         `json:"take,omitempty"`
	Cards         []world.City `json:"cards,omitempty"`
	RemoveStation world.City   `json:"remove_station,omitempty"`
	Event         cards.Event  `json:"event,omitempty"`
}

// ActionsLeft is the number of actions the active player may still take.
func (g *Game) ActionsLeft() int { return g.actionsLeft }

// Act performs one action for the active player. A successful action costs
// one action point; a rejected or canceled one costs nothing.
func (g *Game) Act(player string, a Action) ([]Event, error) {
	return g.run(func() error {
		if g.phase != PhaseActions {
			return ErrWrongPhase
		}
		actor, err := g.player(player)
		if err != nil {
			return err
		}
		if actor != g.players[g.current] {
			return ErrNotYourTurn
		}

		switch a.Kind {
		case ActionCancel:
			return ErrCanceled
		case ActionPass:
		case ActionDrive:
			err = g.drive(actor, a)
		case ActionDirectFlight:
			err = g.directFlight(actor, a)
		case ActionCharterFlight:
			err = g.charterFlight(actor, a)
		case ActionShuttleFlight:
			err = g.shuttleFlight(actor, a)
		case ActionOperationsFlight:
			err = g.operationsFlight(actor, a)
		case ActionDispatch:
			err = g.dispatch(actor, a)
		case ActionBuildStation:
			err = g.buildStation(actor, a)
		case ActionTreatDisease:
			err = g.treatDisease(actor, a)
		case ActionShareKnowledge:
			err = g.shareKnowledge(actor, a)
		case ActionDiscoverCure:
			err = g.discoverCure(actor, a)
		case ActionTakeEvent:
			err = g.takeEvent(actor, a)
		default:
			err = precondition("unknown action %s", a.Kind)
		}
		if err != nil {
			return err
		}

		g.logger.Debug("action",
			zap.String("player", actor.Name),
			zap.Stringer("kind", a.Kind),
		)
		if g.outcome != OutcomeNone {
			return nil
		}
		g.actionsLeft--
		if g.actionsLeft == 0 {
			g.phase = PhaseDraw
		}
		return nil
	})
}

func (g *Game) buildStation(actor *Player, a Action) error {
	here := actor.Location
	card := cards.CityCard(here)
	if actor.Role != OperationsExpert && !actor.Holds(card) {
		return precondition("building in %s needs the %s card", here, here)
	}
	if err := g.checkStationSite(here, a.RemoveStation); err != nil {
		return err
	}
	if actor.Role != OperationsExpert {
		g.discard(actor, card)
	}
	g.placeStation(here, a.RemoveStation)
	return nil
}

// checkStationSite validates building in city. remove must name an existing
// station when all six are on the board, and must be empty otherwise.
func (g *Game) checkStationSite(city, remove world.City) error {
	if !city.Valid() {
		return precondition("unknown city")
	}
	if g.city(city).Station {
		return precondition("%s already has a research station", city)
	}
	full := len(g.stations()) >= MaxStations
	switch {
	case full && remove == world.NoCity:
		return precondition("all %d research stations are built; choose one to move", MaxStations)
	case full && (!remove.Valid() || !g.city(remove).Station):
		return precondition("%s has no research station to move", remove)
	case !full && remove != world.NoCity:
		return precondition("research stations are still available; nothing to move")
	}
	return nil
}

func (g *Game) placeStation(city, remove world.City) {
	if remove != world.NoCity {
		g.city(remove).Station = false
		g.city(city).Station = true
		g.emit(Event{Type: EventStationMoved, From: remove, City: city})
		return
	}
	g.city(city).Station = true
	g.emit(Event{Type: EventStationBuilt, City: city})
}

// treatDisease removes one cube, or every cube of the color when the disease
// is cured or the actor is the Medic.
func (g *Game) treatDisease(actor *Player, a Action) error {
	here := actor.Location
	cs := g.city(here)
	color := a.Color
	if color == world.NoColor {
		for _, c := range world.Colors {
			if cs.Cubes[c.Index()] == 0 {
				continue
			}
			if color != world.NoColor {
				return precondition("%s has cubes of several colors; choose one", here)
			}
			color = c
		}
	}
	if !color.Valid() || cs.Cubes[color.Index()] == 0 {
		return precondition("no cubes to treat in %s", here)
	}
	n := 1
	if actor.Role == Medic || g.disease(color) == DiseaseCured {
		n = -1
	}
	g.removeCubes(here, color, n)
	return nil
}

// shareKnowledge gives a city card to, or takes one from, a partner in the
// same city. The card must match the city unless the Researcher is the one
// giving it.
func (g *Game) shareKnowledge(actor *Player, a Action) error {
	partner, err := g.player(a.Partner)
	if err != nil {
		return err
	}
	if partner == actor {
		return precondition("choose another player to share with")
	}
	if partner.Location != actor.Location {
		return precondition("%s is not in %s", partner.Name, actor.Location)
	}
	city := a.Card
	if city == world.NoCity {
		city = actor.Location
	}
	card := cards.CityCard(city)

	giver, receiver := actor, partner
	if a.Take {
		giver, receiver = partner, actor
	}
	if city != actor.Location && giver.Role != Researcher {
		return precondition("only the %s card can be shared here", actor.Location)
	}
	if !giver.Holds(card) {
		return precondition("%s does not hold %s", giver.Name, city)
	}
	g.transfer(card, giver, receiver)
	return nil
}

func (g *Game) cureCost(p *Player) int {
	if p.Role == Scientist {
		return ScientistCureCards
	}
	return CureCards
}

// discoverCure discards the required city cards of one color at a research
// station. Without explicit Cards the lowest-sorted matching cards are used.
func (g *Game) discoverCure(actor *Player, a Action) error {
	if !g.city(actor.Location).Station {
		return precondition("%s has no research station", actor.Location)
	}
	need := g.cureCost(actor)

	color := a.Color
	if color == world.NoColor && len(a.Cards) > 0 {
		color = a.Cards[0].Color()
	}
	if color == world.NoColor {
		for _, c := range world.Colors {
			if g.disease(c) == DiseaseActive && countColor(actor.Hand, c) >= need {
				color = c
				break
			}
		}
	}
	if !color.Valid() {
		return precondition("no disease can be cured with this hand")
	}
	if g.disease(color) != DiseaseActive {
		return precondition("%s is already %s", color, g.disease(color))
	}

	var chosen []cards.PlayerCard
	if len(a.Cards) > 0 {
		if len(a.Cards) != need {
			return precondition("a cure needs exactly %d cards, got %d", need, len(a.Cards))
		}
		for _, id := range a.Cards {
			card := cards.CityCard(id)
			if card.Color() != color {
				return precondition("%s is not %s", id, color)
			}
			if slices.Contains(chosen, card) {
				return precondition("%s listed twice", id)
			}
			if !actor.Holds(card) {
				return fmt.Errorf("%w: %s", ErrCardNotInHand, id)
			}
			chosen = append(chosen, card)
		}
	} else {
		for _, c := range actor.Hand {
			if c.Color() == color && len(chosen) < need {
				chosen = append(chosen, c)
			}
		}
		if len(chosen) < need {
			return precondition("a %s cure needs %d %s cards, you hold %d", color, need, color, len(chosen))
		}
	}

	for _, c := range chosen {
		g.discard(actor, c)
	}
	g.diseases[color.Index()] = DiseaseCured
	g.emit(Event{Type: EventCured, Player: actor.Name, Color: color})
	g.logger.Info("cure discovered", zap.Stringer("color", color), zap.String("player", actor.Name))

	if medic := g.playerWithRole(Medic); medic != nil {
		g.medicSweep(medic)
	}
	g.checkEradication(color)
	g.checkWin()
	return nil
}

func countColor(hand []cards.PlayerCard, c world.Color) int {
	n := 0
	for _, h := range hand {
		if h.Color() == c {
			n++
		}
	}
	return n
}

func (g *Game) checkWin() {
	for _, s := range g.diseases {
		if s == DiseaseActive {
			return
		}
	}
	g.finish(OutcomeWin)
}

// takeEvent lets the Contingency Planner store an event card from the player
// discard pile.
func (g *Game) takeEvent(actor *Player, a Action) error {
	if actor.Role != ContingencyPlanner {
		return precondition("only the Contingency Planner can do that")
	}
	if actor.stored != cards.NoEvent {
		return precondition("already storing %s", actor.stored)
	}
	card := cards.EventCard(a.Event)
	taken, ok := g.playerDiscard.Take(func(c cards.PlayerCard) bool { return c == card })
	if !ok {
		return precondition("%s is not in the discard pile", a.Event)
	}
	actor.stored = taken.Event
	g.emit(Event{Type: EventHandChanged, Player: actor.Name, Count: len(actor.Hand), Card: taken.String()})
	return nil
}
