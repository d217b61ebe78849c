// Command analyze prints quick, human-readable statistics about the world
// map: cities and population per color, how connected the cities are, how
// far every city is from Atlanta, and any adjacency declared by only one of
// its two cities.
package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wricardo/mcp-training/pandemic/game/world"
)

// ColorStats summarizes the cities of one disease color.
type ColorStats struct {
	Color      world.Color
	Cities     int
	Population int
}

// DegreeStats summarizes how many neighbours cities have.
type DegreeStats struct {
	Min, Max int
	Average  float64
	Hubs     []world.City // cities with Max neighbours
}

func main() {
	if err := analyze(os.Stdout, world.Standard()); err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}
}

func analyze(w io.Writer, m *world.Map) error {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "=== Cities by color ===\n")
	for _, s := range colorStats(m) {
		p.Fprintf(w, "%-6s %2d cities, population %d\n", s.Color, s.Cities, s.Population)
	}

	d := degreeStats(m)
	p.Fprintf(w, "\n=== Connections ===\n")
	p.Fprintf(w, "Neighbours per city: min %d, max %d, average %.2f\n", d.Min, d.Max, d.Average)
	p.Fprintf(w, "Best connected: %s\n", names(d.Hubs))

	dist := distancesFrom(m, world.Atlanta)
	far := 0
	var farthest []world.City
	for id, n := range dist {
		switch {
		case n > far:
			far, farthest = n, []world.City{id}
		case n == far:
			farthest = append(farthest, id)
		}
	}
	slices.Sort(farthest)
	p.Fprintf(w, "\n=== Distance from Atlanta ===\n")
	p.Fprintf(w, "Reachable cities: %d of %d\n", len(dist), world.NumCities)
	p.Fprintf(w, "Farthest (%d drives): %s\n", far, names(farthest))

	p.Fprintf(w, "\n=== Adjacency ===\n")
	if asym := m.Asymmetries(); len(asym) > 0 {
		p.Fprintf(w, "⚠️  %d connections are declared by one city only:\n", len(asym))
		for _, e := range asym {
			p.Fprintf(w, "   %s -> %s\n", e.From, e.To)
		}
	} else {
		p.Fprintf(w, "✅ Every connection is declared by both cities\n")
	}
	if len(dist) != world.NumCities {
		return fmt.Errorf("%d cities cannot be reached from Atlanta", world.NumCities-len(dist))
	}
	return nil
}

func colorStats(m *world.Map) []ColorStats {
	out := make([]ColorStats, 0, world.NumColors)
	for _, c := range world.Colors {
		s := ColorStats{Color: c}
		for _, id := range m.CitiesOf(c) {
			info, _ := m.City(id)
			s.Cities++
			s.Population += info.Population
		}
		out = append(out, s)
	}
	return out
}

func degreeStats(m *world.Map) DegreeStats {
	d := DegreeStats{Min: world.NumCities}
	total := 0
	for _, id := range m.AllCities() {
		n := len(m.Adjacent(id))
		total += n
		d.Min = min(d.Min, n)
		switch {
		case n > d.Max:
			d.Max, d.Hubs = n, []world.City{id}
		case n == d.Max:
			d.Hubs = append(d.Hubs, id)
		}
	}
	d.Average = float64(total) / float64(world.NumCities)
	return d
}

// distancesFrom returns the number of drives from start to every reachable
// city.
func distancesFrom(m *world.Map, start world.City) map[world.City]int {
	dist := map[world.City]int{start: 0}
	queue := []world.City{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range m.Adjacent(cur) {
			if _, seen := dist[n]; !seen {
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist
}

func names(ids []world.City) string {
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ", "
		}
		out += id.String()
	}
	return out
}
