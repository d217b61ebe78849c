package engine

import (
	"testing"

	"github.com/wricardo/mcp-training/pandemic/game/world"
)

func TestInfectPlacesCube(t *testing.T) {
	g := newTestGame(t)
	clearCubes(g)

	if out := g.infect(world.Lagos, world.Yellow, newChain()); out != OutcomeNone {
		t.Fatalf("Unexpected outcome %s", out)
	}
	if cubes(g, world.Lagos, world.Yellow) != 1 {
		t.Errorf("Expected 1 yellow cube in Lagos, got %d", cubes(g, world.Lagos, world.Yellow))
	}
	// Outbreak recursion can place a foreign color.
	g.infect(world.Lagos, world.Black, newChain())
	if cubes(g, world.Lagos, world.Black) != 1 {
		t.Error("Expected a black cube in Lagos")
	}
}

func TestOutbreakCascade(t *testing.T) {
	g := newTestGame(t)
	clearCubes(g)
	g.city(world.Miami).Cubes[world.Yellow.Index()] = 3
	before := g.outbreaks

	g.pending = nil
	if out := g.infect(world.Miami, world.Yellow, newChain()); out != OutcomeNone {
		t.Fatalf("Unexpected outcome %s", out)
	}

	if g.outbreaks != before+1 {
		t.Errorf("Expected %d outbreaks, got %d", before+1, g.outbreaks)
	}
	for _, n := range []world.City{world.Atlanta, world.Bogota, world.MexicoCity, world.Washington} {
		if got := cubes(g, n, world.Yellow); got != 1 {
			t.Errorf("%s has %d yellow cubes, want 1", n, got)
		}
	}
	if cubes(g, world.Miami, world.Yellow) != 3 {
		t.Error("Miami should stay at 3 cubes")
	}
	if countEvents(g.pending, EventOutbreak) != 1 || countEvents(g.pending, EventInfected) != 4 {
		t.Errorf("Unexpected events: %v", g.pending)
	}
}

func TestOutbreakCycleVisitsEachCityOnce(t *testing.T) {
	g := newTestGame(t)
	clearCubes(g)
	for _, c := range []world.City{world.Atlanta, world.Chicago, world.Washington} {
		g.city(c).Cubes[world.Blue.Index()] = 3
	}
	before := g.outbreaks

	if out := g.infect(world.Atlanta, world.Blue, newChain()); out != OutcomeNone {
		t.Fatalf("Unexpected outcome %s", out)
	}
	if g.outbreaks != before+3 {
		t.Errorf("Expected 3 outbreaks, got %d", g.outbreaks-before)
	}

	// Miami and Montréal border two of the three cities, so they gain two.
	want := map[world.City]int{
		world.Atlanta:      3,
		world.Chicago:      3,
		world.Washington:   3,
		world.Miami:        2,
		world.Montreal:     2,
		world.LosAngeles:   1,
		world.MexicoCity:   1,
		world.SanFrancisco: 1,
		world.NewYork:      1,
	}
	for city, n := range want {
		if got := cubes(g, city, world.Blue); got != n {
			t.Errorf("%s has %d blue cubes, want %d", city, got, n)
		}
	}
	if got := g.cubesOnBoard(world.Blue); got != 3*3+2*2+4 {
		t.Errorf("Expected 17 blue cubes, got %d", got)
	}
}

func TestEighthOutbreakIsSafeNinthLoses(t *testing.T) {
	g := newTestGame(t)
	clearCubes(g)
	g.outbreaks = MaxOutbreaks - 1
	g.city(world.Santiago).Cubes[world.Yellow.Index()] = 3
	if out := g.infect(world.Santiago, world.Yellow, newChain()); out != OutcomeNone {
		t.Fatalf("Eighth outbreak should not lose, got %s", out)
	}
	if g.outbreaks != MaxOutbreaks {
		t.Fatalf("Expected %d outbreaks, got %d", MaxOutbreaks, g.outbreaks)
	}

	g.city(world.Santiago).Cubes[world.Yellow.Index()] = 3
	if out := g.infect(world.Santiago, world.Yellow, newChain()); out != OutcomeOutbreaks {
		t.Errorf("Expected outbreak loss, got %q", out)
	}
}

func TestCubeSupplyBoundary(t *testing.T) {
	g := newTestGame(t)
	clearCubes(g)
	blue := g.world.CitiesOf(world.Blue)
	// 7 full cities plus 2 cubes = 23 on the board.
	for _, c := range blue[:7] {
		g.city(c).Cubes[world.Blue.Index()] = 3
	}
	g.city(blue[7]).Cubes[world.Blue.Index()] = 2

	if out := g.infect(blue[8], world.Blue, newChain()); out != OutcomeNone {
		t.Fatalf("The 24th cube should fit, got %s", out)
	}
	if g.cubesOnBoard(world.Blue) != CubesPerColor {
		t.Fatalf("Expected %d blue cubes, got %d", CubesPerColor, g.cubesOnBoard(world.Blue))
	}
	if out := g.infect(blue[9], world.Blue, newChain()); out != OutcomeCubes {
		t.Errorf("The 25th cube should lose, got %q", out)
	}
	if g.cubesOnBoard(world.Blue) != CubesPerColor {
		t.Error("A losing placement must not add a cube")
	}
}

func TestEradicatedDiseaseIgnoresInfection(t *testing.T) {
	g := newTestGame(t)
	clearCubes(g)
	g.diseases[world.Red.Index()] = DiseaseEradicated
	g.infect(world.Tokyo, world.Red, newChain())
	if cubes(g, world.Tokyo, world.Red) != 0 {
		t.Error("Eradicated disease placed a cube")
	}
}

func TestQuarantineSpecialistProtectsNeighbourhood(t *testing.T) {
	g := newTestGame(t, PlayerSpec{Name: "Quinn", Role: QuarantineSpecialist}, PlayerSpec{Name: "Sam", Role: Scientist})
	clearCubes(g)
	mustPlayer(t, g, "Quinn").Location = world.Atlanta

	for _, c := range []world.City{world.Atlanta, world.Chicago, world.Miami, world.Washington} {
		g.infect(c, c.Color(), newChain())
		if total := g.Snapshot().City(c).Total(); total != 0 {
			t.Errorf("%s got %d cubes despite quarantine", c, total)
		}
	}
	g.infect(world.NewYork, world.Blue, newChain())
	if cubes(g, world.NewYork, world.Blue) != 1 {
		t.Error("New York is two steps away and should be infected")
	}
}

func TestMedicBlocksCuredCubes(t *testing.T) {
	g := newTestGame(t, PlayerSpec{Name: "Mel", Role: Medic}, PlayerSpec{Name: "Sam", Role: Scientist})
	clearCubes(g)
	mustPlayer(t, g, "Mel").Location = world.Essen
	g.diseases[world.Blue.Index()] = DiseaseCured

	g.infect(world.Essen, world.Blue, newChain())
	if cubes(g, world.Essen, world.Blue) != 0 {
		t.Error("Medic should keep cured blue out of Essen")
	}
	g.infect(world.Essen, world.Red, newChain())
	if cubes(g, world.Essen, world.Red) != 1 {
		t.Error("Medic only blocks cured diseases")
	}
}

func TestEpidemic(t *testing.T) {
	g := newTestGame(t)
	clearCubes(g)

	bottom := g.infectionDeck.Cards()[0]
	discardBefore := g.infectionDiscard.Len()
	deckBefore := g.infectionDeck.Len()

	if out := g.resolveEpidemic(); out != OutcomeNone {
		t.Fatalf("Unexpected outcome %s", out)
	}
	if g.rateIndex != 1 || g.epidemics != 1 {
		t.Errorf("Expected rate index 1 and 1 epidemic, got %d and %d", g.rateIndex, g.epidemics)
	}
	if got := cubes(g, bottom.City, bottom.Color); got != 3 {
		t.Errorf("Epidemic city %s has %d cubes, want 3", bottom.City, got)
	}
	if g.infectionDiscard.Len() != 0 {
		t.Errorf("Expected the discard pile to be drained, has %d", g.infectionDiscard.Len())
	}
	if g.infectionDeck.Len() != deckBefore+discardBefore {
		t.Errorf("Deck has %d cards, want %d", g.infectionDeck.Len(), deckBefore+discardBefore)
	}

	found := false
	for _, c := range g.infectionDeck.Peek(discardBefore + 1) {
		if c.City == bottom.City {
			found = true
		}
	}
	if !found {
		t.Errorf("Epidemic city %s should be back on top of the infection deck", bottom.City)
	}
}

func TestEpidemicOnInfectedCityOutbreaksOnce(t *testing.T) {
	g := newTestGame(t)
	clearCubes(g)
	bottom := g.infectionDeck.Cards()[0]
	g.city(bottom.City).Cubes[bottom.Color.Index()] = 2
	before := g.outbreaks

	g.resolveEpidemic()
	if g.outbreaks != before+1 {
		t.Errorf("Expected exactly one outbreak, got %d", g.outbreaks-before)
	}
	if cubes(g, bottom.City, bottom.Color) != 3 {
		t.Errorf("Expected 3 cubes in %s", bottom.City)
	}
}

func TestInfectionRateSaturates(t *testing.T) {
	g := newTestGame(t)
	want := []int{2, 2, 3, 3, 4, 4, 4, 4}
	for i, rate := range want {
		clearCubes(g)
		g.outbreaks = 0
		g.resolveEpidemic()
		if g.InfectionRate() != rate {
			t.Errorf("After %d epidemics rate = %d, want %d", i+1, g.InfectionRate(), rate)
		}
	}
	if g.rateIndex != len(InfectionRates)-1 {
		t.Errorf("Rate index should stop at %d, got %d", len(InfectionRates)-1, g.rateIndex)
	}
}

func TestInfectCitiesUsesFreshChainPerCard(t *testing.T) {
	g := newTestGame(t)
	clearCubes(g)
	g.outbreaks = 0
	g.city(world.Santiago).Cubes[world.Yellow.Index()] = 3
	g.city(world.Lima).Cubes[world.Yellow.Index()] = 2
	stackInfectionDeck(t, g, world.Santiago, world.Lima)
	g.phase = PhaseInfect
	turn := g.turn

	events, err := g.InfectCities()
	if err != nil {
		t.Fatalf("InfectCities failed: %v", err)
	}
	// Santiago breaks out and fills Lima. The Lima card starts a new chain,
	// so Lima breaks out and Santiago breaks out a second time.
	if g.outbreaks != 3 {
		t.Errorf("Expected 3 outbreaks, got %d", g.outbreaks)
	}
	if countEvents(events, EventOutbreak) != 3 {
		t.Errorf("Expected 3 outbreak events, got %d", countEvents(events, EventOutbreak))
	}
	if g.turn != turn+1 || g.phase != PhaseActions {
		t.Errorf("Turn should advance, got turn=%d phase=%s", g.turn, g.phase)
	}
	top := g.infectionDiscard.Peek(2)
	if len(top) != 2 || top[0].City != world.Lima || top[1].City != world.Santiago {
		t.Errorf("Unexpected infection discard top: %v", top)
	}
}
