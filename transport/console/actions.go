package console

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/wricardo/mcp-training/pandemic/game/cards"
	"github.com/wricardo/mcp-training/pandemic/game/engine"
	"github.com/wricardo/mcp-training/pandemic/game/world"
)

var actionLabels = map[engine.ActionKind]string{
	engine.ActionDrive:          "Drive/Ferry to an adjacent city",
	engine.ActionDirectFlight:   "Direct Flight (discard a city card)",
	engine.ActionCharterFlight:  "Charter Flight (discard your city's card)",
	engine.ActionShuttleFlight:  "Shuttle Flight between research stations",
	engine.ActionBuildStation:   "Build a Research Station",
	engine.ActionTreatDisease:   "Treat Disease",
	engine.ActionShareKnowledge: "Share Knowledge",
	engine.ActionDiscoverCure:   "Discover a Cure",
}

// roleActions are only offered to the role that owns them.
var roleActions = map[engine.ActionKind]struct {
	role  engine.Role
	label string
}{
	engine.ActionOperationsFlight: {engine.OperationsExpert, "Operations Flight from a research station"},
	engine.ActionDispatch:         {engine.Dispatcher, "Dispatch a pawn to another pawn"},
	engine.ActionTakeEvent:        {engine.ContingencyPlanner, "Take an Event card from the discard pile"},
}

func actionLabel(kind engine.ActionKind, role engine.Role) (string, bool) {
	if label, ok := actionLabels[kind]; ok {
		return label, true
	}
	if ra, ok := roleActions[kind]; ok && ra.role == role {
		return ra.label, true
	}
	return "", false
}

var movements = []engine.ActionKind{
	engine.ActionDrive, engine.ActionDirectFlight, engine.ActionCharterFlight, engine.ActionShuttleFlight,
}

// actionParams asks for whatever the action needs. The engine still checks
// every rule; the menus only keep obviously wrong input out.
func (c *Console) actionParams(s engine.Snapshot, me engine.PlayerView, kind engine.ActionKind) (engine.Action, error) {
	a := engine.Action{Kind: kind}
	mover := me

	if me.Role == engine.Dispatcher && slices.Contains(movements, kind) {
		p, err := c.choosePlayer("Move which pawn?", s.Players)
		if err != nil {
			return a, err
		}
		mover = p
		if p.Name != me.Name {
			a.Pawn = p.Name
		}
	}

	var err error
	switch kind {
	case engine.ActionDrive:
		a.Destination, err = c.chooseCity("Drive to", c.world.Adjacent(mover.Location))
	case engine.ActionDirectFlight:
		a.Destination, err = c.chooseCity("Fly to", cityCards(me.Hand))
	case engine.ActionCharterFlight:
		a.Destination, err = c.readCity("Fly to which city")
	case engine.ActionShuttleFlight:
		stations := slices.DeleteFunc(s.Stations(), func(id world.City) bool { return id == mover.Location })
		a.Destination, err = c.chooseCity("Fly to", stations)
	case engine.ActionOperationsFlight:
		if a.Destination, err = c.readCity("Fly to which city"); err == nil {
			a.Card, err = c.chooseCity("Discard which card?", cityCards(me.Hand))
		}
	case engine.ActionDispatch:
		var p engine.PlayerView
		if p, err = c.choosePlayer("Dispatch which pawn?", s.Players); err == nil {
			a.Pawn = p.Name
			a.Destination, err = c.chooseCity("Move to the city of", pawnCities(s.Players, p.Location))
		}
	case engine.ActionBuildStation:
		if len(s.Stations()) >= engine.MaxStations {
			a.RemoveStation, err = c.chooseCity("Six stations exist. Move which one?", s.Stations())
		}
	case engine.ActionTreatDisease:
		colors := presentColors(s.City(me.Location))
		if len(colors) > 1 {
			a.Color, err = c.chooseColor("Treat which disease?", colors)
		}
	case engine.ActionShareKnowledge:
		err = c.shareParams(s, me, &a)
	case engine.ActionDiscoverCure:
		a.Color, err = c.chooseColor("Cure which disease?", handColors(me.Hand))
	case engine.ActionTakeEvent:
		var events []cards.Event
		for _, card := range s.PlayerDiscard {
			if card.IsEvent() {
				events = append(events, card.Event)
			}
		}
		a.Event, err = c.chooseEvent("Take which event?", events)
	}
	return a, err
}

func (c *Console) shareParams(s engine.Snapshot, me engine.PlayerView, a *engine.Action) error {
	var partners []engine.PlayerView
	for _, p := range s.Players {
		if p.Name != me.Name && p.Location == me.Location {
			partners = append(partners, p)
		}
	}
	partner, err := c.choosePlayer("Share with whom?", partners)
	if err != nil {
		return err
	}
	a.Partner = partner.Name

	dir, err := c.menu("Give or take?", []string{"Give a card", "Take a card"})
	if err != nil {
		return err
	}
	a.Take = dir == 1

	giver := me
	if a.Take {
		giver = partner
	}
	if giver.Role == engine.Researcher {
		a.Card, err = c.chooseCity("Which card?", cityCards(giver.Hand))
	}
	return err
}

// playEvent lets any player play an event card they hold or have stored.
func (c *Console) playEvent(ctx context.Context, id string, s engine.Snapshot) error {
	type play struct {
		player string
		event  cards.Event
	}
	var plays []play
	var labels []string
	for _, p := range s.Players {
		for _, card := range p.Hand {
			if card.IsEvent() {
				plays = append(plays, play{p.Name, card.Event})
				labels = append(labels, fmt.Sprintf("%s plays %s: %s", p.Name, card.Event, card.Event.Description()))
			}
		}
		if p.StoredEvent != cards.NoEvent {
			plays = append(plays, play{p.Name, p.StoredEvent})
			labels = append(labels, fmt.Sprintf("%s plays stored %s: %s", p.Name, p.StoredEvent, p.StoredEvent.Description()))
		}
	}
	i, err := c.menu("Play which Event card?", labels)
	if err != nil {
		return err
	}
	pick := plays[i]

	var params engine.EventParams
	switch pick.event {
	case cards.Airlift:
		p, err := c.choosePlayer("Airlift which pawn?", s.Players)
		if err != nil {
			return err
		}
		params.Pawn = p.Name
		if params.Destination, err = c.readCity("Airlift to which city"); err != nil {
			return err
		}
	case cards.Forecast:
		preview, err := c.svc.ForecastPreview(ctx, id)
		if err != nil {
			return err
		}
		if params.Order, err = c.readOrder(preview); err != nil {
			return err
		}
	case cards.GovernmentGrant:
		if params.Destination, err = c.readCity("Build the station in which city"); err != nil {
			return err
		}
		if len(s.Stations()) >= engine.MaxStations {
			if params.RemoveStation, err = c.chooseCity("Six stations exist. Move which one?", s.Stations()); err != nil {
				return err
			}
		}
	case cards.ResilientPopulation:
		discard := make([]world.City, 0, len(s.InfectionDiscard))
		for _, card := range s.InfectionDiscard {
			discard = append(discard, card.City)
		}
		if params.Target, err = c.chooseCity("Remove which infection card?", discard); err != nil {
			return err
		}
	}
	return c.report(c.svc.PlayEvent(ctx, id, pick.player, pick.event, params))
}

// readOrder shows the Forecast cards and reads their new order as a comma
// separated list of positions, e.g. "3,1,2,6,5,4".
func (c *Console) readOrder(preview []cards.InfectionCard) ([]world.City, error) {
	c.printf("%s\n", banner("Forecast"))
	for i, card := range preview {
		c.printf("\t%d. %s (%s)\n", i+1, card.City, card.Color)
	}
	line, err := c.prompt("Enter the new order, top first")
	if err != nil {
		return nil, err
	}
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != len(preview) {
		return nil, fmt.Errorf("%w: expected %d positions, got %d", ErrInvalidInput, len(preview), len(fields))
	}
	order := make([]world.City, 0, len(preview))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > len(preview) {
			return nil, fmt.Errorf("%w: %q is not a position", ErrInvalidInput, f)
		}
		order = append(order, preview[n-1].City)
	}
	return order, nil
}

func (c *Console) choosePlayer(title string, players []engine.PlayerView) (engine.PlayerView, error) {
	labels := make([]string, len(players))
	for i, p := range players {
		labels[i] = fmt.Sprintf("%s (%s) in %s", p.Name, p.Role, p.Location)
	}
	i, err := c.menu(title, labels)
	if err != nil {
		return engine.PlayerView{}, err
	}
	return players[i], nil
}

func (c *Console) chooseCity(title string, ids []world.City) (world.City, error) {
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = fmt.Sprintf("%s (%s)", id, id.Color())
	}
	i, err := c.menu(title, labels)
	if err != nil {
		return world.NoCity, err
	}
	return ids[i], nil
}

func (c *Console) chooseColor(title string, colors []world.Color) (world.Color, error) {
	labels := make([]string, len(colors))
	for i, col := range colors {
		labels[i] = col.String()
	}
	i, err := c.menu(title, labels)
	if err != nil {
		return world.NoColor, err
	}
	return colors[i], nil
}

func (c *Console) chooseEvent(title string, events []cards.Event) (cards.Event, error) {
	labels := make([]string, len(events))
	for i, e := range events {
		labels[i] = fmt.Sprintf("%s: %s", e, e.Description())
	}
	i, err := c.menu(title, labels)
	if err != nil {
		return cards.NoEvent, err
	}
	return events[i], nil
}

func cityCards(hand []cards.PlayerCard) []world.City {
	var out []world.City
	for _, card := range hand {
		if card.IsCity() {
			out = append(out, card.City)
		}
	}
	return out
}

// pawnCities lists the distinct cities holding a pawn, other than from.
func pawnCities(players []engine.PlayerView, from world.City) []world.City {
	var out []world.City
	for _, p := range players {
		if p.Location != from && !slices.Contains(out, p.Location) {
			out = append(out, p.Location)
		}
	}
	return out
}

func presentColors(city engine.CityView) []world.Color {
	var out []world.Color
	for _, col := range world.Colors {
		if city.Cubes[col.Index()] > 0 {
			out = append(out, col)
		}
	}
	return out
}

func handColors(hand []cards.PlayerCard) []world.Color {
	var out []world.Color
	for _, col := range world.Colors {
		for _, card := range hand {
			if card.IsCity() && card.Color() == col {
				out = append(out, col)
				break
			}
		}
	}
	return out
}
