package engine

import (
	"errors"
	"slices"
	"testing"

	"github.com/wricardo/mcp-training/pandemic/game/cards"
	"github.com/wricardo/mcp-training/pandemic/game/world"
)

// toDraw finishes the active player's actions.
func toDraw(t *testing.T, g *Game) {
	t.Helper()
	for g.Phase() == PhaseActions {
		if _, err := g.Act(g.CurrentPlayer(), Action{Kind: ActionPass}); err != nil {
			t.Fatalf("Pass failed: %v", err)
		}
	}
}

func TestDrawPlayerCards(t *testing.T) {
	g := newTestGame(t)
	toDraw(t, g)
	p := g.players[g.current]
	stackPlayerDeck(t, g, cityCards(world.Tokyo, world.Lima)...)
	hand := len(p.Hand)
	deckSize := g.playerDeck.Len()

	events, err := g.DrawPlayerCards()
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if len(p.Hand) != hand+2 || !p.Holds(cards.CityCard(world.Tokyo)) || !p.Holds(cards.CityCard(world.Lima)) {
		t.Errorf("Expected Tokyo and Lima in hand, got %v", p.Hand)
	}
	if g.playerDeck.Len() != deckSize-2 {
		t.Errorf("Deck shrank by %d, want 2", deckSize-g.playerDeck.Len())
	}
	if countEvents(events, EventCardDrawn) != 2 {
		t.Errorf("Expected 2 card_drawn events, got %d", countEvents(events, EventCardDrawn))
	}
	if g.Phase() != PhaseInfect {
		t.Errorf("Expected the infect phase, got %s", g.Phase())
	}
	if _, err := g.DrawPlayerCards(); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Expected ErrWrongPhase drawing twice, got %v", err)
	}
}

func TestDrawEpidemic(t *testing.T) {
	g := newTestGame(t)
	clearCubes(g)
	toDraw(t, g)
	p := g.players[g.current]

	// Move an epidemic to the top, followed by a city card.
	epidemic := cards.EpidemicCard()
	g.playerDeck.Take(func(c cards.PlayerCard) bool { return c.IsEpidemic() })
	stackPlayerDeck(t, g, cards.CityCard(world.Tokyo))
	g.playerDeck.PushTop(epidemic)

	bottom := g.infectionDeck.Cards()[0]
	hand := len(p.Hand)
	events, err := g.DrawPlayerCards()
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if !hasEvent(events, EventEpidemicDrawn) || !hasEvent(events, EventInfectionRateIncreased) {
		t.Errorf("Expected epidemic events, got %v", events)
	}
	if len(p.Hand) != hand+1 || p.Holds(epidemic) {
		t.Errorf("Epidemics never reach a hand, got %v", p.Hand)
	}
	if top := g.playerDiscard.Peek(1); len(top) != 1 || !top[0].IsEpidemic() {
		t.Errorf("Expected the epidemic on the discard pile, got %v", top)
	}
	if cubes(g, bottom.City, bottom.Color) != 3 {
		t.Errorf("Expected 3 cubes in %s", bottom.City)
	}
	if g.InfectionRate() != 2 || g.rateIndex != 1 {
		t.Errorf("Expected rate index 1, got %d", g.rateIndex)
	}
}

func TestEmptyPlayerDeckLoses(t *testing.T) {
	g := newTestGame(t)
	toDraw(t, g)
	for g.playerDeck.Len() > 1 {
		c, _ := g.playerDeck.DrawTop()
		g.playerRemoved.PushTop(c)
	}
	if top := g.playerDeck.Peek(1); top[0].IsEpidemic() {
		// Keep the last card harmless.
		c, _ := g.playerDeck.DrawTop()
		g.playerRemoved.PushTop(c)
		r, _ := g.playerRemoved.Take(func(c cards.PlayerCard) bool { return c.IsCity() })
		g.playerDeck.PushTop(r)
	}

	events, err := g.DrawPlayerCards()
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if g.Outcome() != OutcomeTimeout || g.Phase() != PhaseOver {
		t.Fatalf("Expected %s, got %s in phase %s", OutcomeTimeout, g.Outcome(), g.Phase())
	}
	if !hasEvent(events, EventGameOver) {
		t.Error("Expected a game_over event")
	}

	_, err = g.InfectCities()
	var over *GameOverError
	if !errors.As(err, &over) || over.Outcome != OutcomeTimeout {
		t.Errorf("Expected *GameOverError, got %v", err)
	}
	if !errors.Is(err, ErrGameOver) || errors.Is(err, ErrPrecondition) {
		t.Errorf("Game over is not a precondition error: %v", err)
	}
}

// fillHand gives p city cards until the hand holds n cards.
func fillHand(t *testing.T, g *Game, p *Player, n int, skip ...world.City) {
	t.Helper()
	for _, id := range g.world.AllCities() {
		if len(p.Hand) >= n {
			return
		}
		c := cards.CityCard(id)
		if p.Holds(c) || slices.Contains(skip, id) {
			continue
		}
		giveCards(t, g, p, c)
	}
}

// stackFreshCards puts two city cards p does not hold on top of the player
// deck.
func stackFreshCards(t *testing.T, g *Game, p *Player, skip ...world.City) {
	t.Helper()
	var fresh []cards.PlayerCard
	for _, id := range g.world.AllCities() {
		c := cards.CityCard(id)
		if len(fresh) < CardsPerDraw && !p.Holds(c) && !slices.Contains(skip, id) {
			fresh = append(fresh, c)
		}
	}
	stackPlayerDeck(t, g, fresh...)
}

func TestDiscardPhase(t *testing.T) {
	g := newTestGame(t)
	toDraw(t, g)
	p := g.players[g.current]
	discardCard(t, g, cards.CityCard(world.Santiago))
	giveCards(t, g, p, cityCards(world.Tokyo, world.Lima)...)
	fillHand(t, g, p, MaxHandSize, world.Santiago)
	stackFreshCards(t, g, p, world.Santiago)

	if _, err := g.DrawPlayerCards(); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if len(p.Hand) != MaxHandSize+2 || g.Phase() != PhaseDiscard {
		t.Fatalf("Expected the discard phase with %d cards, got %d in %s", MaxHandSize+2, len(p.Hand), g.Phase())
	}
	if _, err := g.InfectCities(); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Expected ErrWrongPhase infecting before discarding, got %v", err)
	}

	other := g.players[(g.current+1)%len(g.players)]
	if _, err := g.Discard(other.Name, cards.CityCard(world.Santiago)); !errors.Is(err, ErrPrecondition) {
		t.Errorf("Expected ErrPrecondition discarding within the limit, got %v", err)
	}
	if _, err := g.Discard(p.Name, cards.CityCard(world.Santiago)); !errors.Is(err, ErrCardNotInHand) {
		t.Errorf("Expected ErrCardNotInHand, got %v", err)
	}

	if _, err := g.Discard(p.Name, cards.CityCard(world.Tokyo)); err != nil {
		t.Fatalf("Discard failed: %v", err)
	}
	if g.Phase() != PhaseDiscard {
		t.Fatalf("Still over the limit, got %s", g.Phase())
	}
	if _, err := g.Discard(p.Name, cards.CityCard(world.Lima)); err != nil {
		t.Fatalf("Discard failed: %v", err)
	}
	if len(p.Hand) != MaxHandSize || g.Phase() != PhaseInfect {
		t.Errorf("Expected %d cards and the infect phase, got %d and %s", MaxHandSize, len(p.Hand), g.Phase())
	}
}

func TestEventDuringDiscardCountsTowardsLimit(t *testing.T) {
	g := newTestGame(t)
	toDraw(t, g)
	p := g.players[g.current]
	giveCards(t, g, p, cards.EventCard(cards.OneQuietNight))
	fillHand(t, g, p, MaxHandSize-1)
	stackFreshCards(t, g, p)

	if _, err := g.DrawPlayerCards(); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if len(p.Hand) != MaxHandSize+1 || g.Phase() != PhaseDiscard {
		t.Fatalf("Expected %d cards in the discard phase, got %d in %s", MaxHandSize+1, len(p.Hand), g.Phase())
	}
	if _, err := g.PlayEvent(p.Name, cards.OneQuietNight, EventParams{}); err != nil {
		t.Fatalf("Playing One Quiet Night failed: %v", err)
	}
	if g.Phase() != PhaseInfect {
		t.Errorf("Expected the infect phase, got %s", g.Phase())
	}
}

func TestInfectCities(t *testing.T) {
	g := newTestGame(t)
	clearCubes(g)
	toDraw(t, g)
	stackPlayerDeck(t, g, cityCards(world.Tokyo, world.Lima)...)
	if _, err := g.DrawPlayerCards(); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	stackInfectionDeck(t, g, world.Paris, world.Lagos, world.Tehran)
	first := g.CurrentPlayer()

	events, err := g.InfectCities()
	if err != nil {
		t.Fatalf("Infect failed: %v", err)
	}
	if countEvents(events, EventInfected) != 2 {
		t.Errorf("Expected 2 infections at rate 2, got %d", countEvents(events, EventInfected))
	}
	if cubes(g, world.Paris, world.Blue) != 1 || cubes(g, world.Lagos, world.Yellow) != 1 || cubes(g, world.Tehran, world.Black) != 0 {
		t.Error("Expected Paris and Lagos infected, Tehran untouched")
	}
	if g.CurrentPlayer() == first || g.Phase() != PhaseActions || g.ActionsLeft() != ActionsPerTurn {
		t.Errorf("Expected the next player's action phase, got %s in %s", g.CurrentPlayer(), g.Phase())
	}
	if g.turn != 2 || !hasEvent(events, EventTurnAdvanced) {
		t.Errorf("Expected turn 2, got %d", g.turn)
	}
}

func TestOneQuietNight(t *testing.T) {
	g := newTestGame(t)
	clearCubes(g)
	p := mustPlayer(t, g, "Ben")
	giveCards(t, g, p, cards.EventCard(cards.OneQuietNight))

	if _, err := g.PlayEvent("Ben", cards.OneQuietNight, EventParams{}); err != nil {
		t.Fatalf("Playing One Quiet Night failed: %v", err)
	}
	if p.Holds(cards.EventCard(cards.OneQuietNight)) {
		t.Error("Expected the event card to be discarded")
	}
	toDraw(t, g)
	if _, err := g.DrawPlayerCards(); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	for g.Phase() == PhaseDiscard {
		cur := g.players[g.current]
		if _, err := g.Discard(cur.Name, cur.Hand[0]); err != nil {
			t.Fatalf("Discard failed: %v", err)
		}
	}
	deckSize := g.infectionDeck.Len()

	events, err := g.InfectCities()
	if err != nil {
		t.Fatalf("Infect failed: %v", err)
	}
	if !hasEvent(events, EventInfectionSkipped) || hasEvent(events, EventInfected) {
		t.Errorf("Expected the infection step skipped, got %v", events)
	}
	if g.infectionDeck.Len() != deckSize || g.quietNight {
		t.Error("One Quiet Night skips exactly one infection step")
	}
}

func TestForecast(t *testing.T) {
	g := newTestGame(t)
	p := mustPlayer(t, g, "Ada")
	giveCards(t, g, p, cards.EventCard(cards.Forecast))

	preview, err := g.ForecastPreview()
	if err != nil || len(preview) != ForecastCards {
		t.Fatalf("Preview = %v, %v", preview, err)
	}
	order := make([]world.City, len(preview))
	for i, c := range preview {
		order[len(order)-1-i] = c.City
	}

	bad := slices.Clone(order)
	bad[0] = bad[1]
	if _, err := g.PlayEvent("Ada", cards.Forecast, EventParams{Order: bad}); !errors.Is(err, ErrPrecondition) {
		t.Errorf("Expected ErrPrecondition for a repeated city, got %v", err)
	}
	if _, err := g.PlayEvent("Ada", cards.Forecast, EventParams{Order: order[:3]}); !errors.Is(err, ErrPrecondition) {
		t.Errorf("Expected ErrPrecondition for a short order, got %v", err)
	}

	if _, err := g.PlayEvent("Ada", cards.Forecast, EventParams{Order: order}); err != nil {
		t.Fatalf("Forecast failed: %v", err)
	}
	after, _ := g.ForecastPreview()
	for i, c := range after {
		if c.City != order[i] {
			t.Errorf("Position %d holds %s, want %s", i, c.City, order[i])
		}
	}
	if p.Holds(cards.EventCard(cards.Forecast)) {
		t.Error("Expected Forecast to be discarded")
	}
}

func TestResilientPopulation(t *testing.T) {
	g := newTestGame(t)
	p := mustPlayer(t, g, "Ben")
	giveCards(t, g, p, cards.EventCard(cards.ResilientPopulation))
	target := g.infectionDiscard.Peek(1)[0].City

	if _, err := g.PlayEvent("Ben", cards.ResilientPopulation, EventParams{Target: g.infectionDeck.Peek(1)[0].City}); !errors.Is(err, ErrPrecondition) {
		t.Errorf("Expected ErrPrecondition for a card not in the discard pile, got %v", err)
	}
	if _, err := g.PlayEvent("Ben", cards.ResilientPopulation, EventParams{Target: target}); err != nil {
		t.Fatalf("Resilient Population failed: %v", err)
	}
	if g.infectionDiscard.Contains(func(c cards.InfectionCard) bool { return c.City == target }) {
		t.Error("Expected the card gone from the discard pile")
	}
	if removed := g.infectionRemoved.Cards(); len(removed) != 1 || removed[0].City != target {
		t.Errorf("Expected %s removed from the game, got %v", target, removed)
	}
}

func TestAirliftAndGovernmentGrant(t *testing.T) {
	g := newTestGame(t)
	ada := mustPlayer(t, g, "Ada")
	giveCards(t, g, ada, cards.EventCard(cards.Airlift), cards.EventCard(cards.GovernmentGrant))
	actions := g.ActionsLeft()

	if _, err := g.PlayEvent("Ada", cards.Airlift, EventParams{Pawn: "Ben", Destination: world.Atlanta}); !errors.Is(err, ErrPrecondition) {
		t.Errorf("Expected ErrPrecondition airlifting in place, got %v", err)
	}
	if _, err := g.PlayEvent("Ada", cards.Airlift, EventParams{Pawn: "Ben", Destination: world.Sydney}); err != nil {
		t.Fatalf("Airlift failed: %v", err)
	}
	if mustPlayer(t, g, "Ben").Location != world.Sydney {
		t.Error("Expected Ben in Sydney")
	}

	events, err := g.PlayEvent("Ada", cards.GovernmentGrant, EventParams{Destination: world.Cairo})
	if err != nil {
		t.Fatalf("Government Grant failed: %v", err)
	}
	if !g.city(world.Cairo).Station || !hasEvent(events, EventStationBuilt) {
		t.Error("Expected a station in Cairo")
	}
	if g.ActionsLeft() != actions {
		t.Error("Events cost no actions")
	}
	if _, err := g.PlayEvent("Ada", cards.GovernmentGrant, EventParams{Destination: world.Lima}); !errors.Is(err, ErrPrecondition) {
		t.Errorf("Expected ErrPrecondition playing a discarded event, got %v", err)
	}
}

func TestOneQuietNightTwice(t *testing.T) {
	g := newTestGame(t, PlayerSpec{Name: "Cal", Role: ContingencyPlanner}, PlayerSpec{Name: "Sam", Role: Scientist})
	cal := mustPlayer(t, g, "Cal")
	quiet := cards.EventCard(cards.OneQuietNight)
	giveCards(t, g, cal, quiet)
	if _, err := g.PlayEvent("Cal", cards.OneQuietNight, EventParams{}); err != nil {
		t.Fatalf("One Quiet Night failed: %v", err)
	}

	// Store the discarded card and try to play it again before it fires.
	makeActive(t, g, "Cal")
	if _, err := g.Act("Cal", Action{Kind: ActionTakeEvent, Event: cards.OneQuietNight}); err != nil {
		t.Fatalf("Take event failed: %v", err)
	}
	if _, err := g.PlayEvent("Cal", cards.OneQuietNight, EventParams{}); !errors.Is(err, ErrPrecondition) {
		t.Errorf("Expected ErrPrecondition while a quiet night is pending, got %v", err)
	}
	if cal.StoredEvent() != cards.OneQuietNight {
		t.Error("A rejected event must stay stored")
	}
}

func TestFullRoundKeepsInvariants(t *testing.T) {
	g, err := New(WithSeed(77))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g.SetPlayers([]PlayerSpec{{Name: "A"}, {Name: "B"}, {Name: "C"}})
	g.SetDifficulty(6)
	if _, err := g.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	for range 6 {
		if g.Phase() == PhaseOver {
			break
		}
		toDraw(t, g)
		if _, err := g.DrawPlayerCards(); err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
		for g.Phase() == PhaseDiscard {
			for _, p := range g.overHandLimit() {
				if _, err := g.Discard(p.Name, p.Hand[0]); err != nil {
					t.Fatalf("Discard failed: %v", err)
				}
			}
		}
		if g.Phase() == PhaseOver {
			break
		}
		if _, err := g.InfectCities(); err != nil {
			t.Fatalf("Infect failed: %v", err)
		}
	}
	if err := g.CheckInvariants(); err != nil {
		t.Errorf("Invariants broken: %v", err)
	}
}
