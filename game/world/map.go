package world

import (
	"fmt"
	"slices"
	"sync"
)

// Map is the read-only city graph.
type Map struct {
	cities   [NumCities + 1]CityInfo
	declared [NumCities + 1][]City
	adjacent [NumCities + 1][]City
}

// Edge is an adjacency declared by only one of its endpoints.
type Edge struct {
	From City
	To   City
}

var (
	standardOnce sync.Once
	standardMap  *Map
)

// Standard returns the 48-city board. The returned Map is shared.
func Standard() *Map {
	standardOnce.Do(func() {
		m, err := NewMap(cityTable[1:])
		if err != nil {
			panic(fmt.Sprintf("world: invalid built-in city table: %v", err))
		}
		standardMap = m
	})
	return standardMap
}

// NewMap builds a Map from city descriptions. Every city must appear exactly
// once. Neighbour lists may be one-sided; the resulting graph is undirected.
func NewMap(infos []CityInfo) (*Map, error) {
	if len(infos) != NumCities {
		return nil, fmt.Errorf("expected %d cities, got %d", NumCities, len(infos))
	}
	m := &Map{}
	seen := make(map[City]bool, NumCities)
	for _, info := range infos {
		if !info.ID.Valid() {
			return nil, fmt.Errorf("invalid city id %d", int(info.ID))
		}
		if seen[info.ID] {
			return nil, fmt.Errorf("duplicate city %s", info.ID)
		}
		if !info.Color.Valid() {
			return nil, fmt.Errorf("city %s has no disease color", info.ID)
		}
		seen[info.ID] = true
		info.Neighbors = slices.Clone(info.Neighbors)
		m.cities[info.ID] = info
		m.declared[info.ID] = info.Neighbors
	}

	sets := make([]map[City]struct{}, NumCities+1)
	for id := City(1); id <= NumCities; id++ {
		sets[id] = make(map[City]struct{})
	}
	for id := City(1); id <= NumCities; id++ {
		for _, n := range m.declared[id] {
			if !n.Valid() {
				return nil, fmt.Errorf("city %s lists invalid neighbour %d", id, int(n))
			}
			if n == id {
				return nil, fmt.Errorf("city %s lists itself as a neighbour", id)
			}
			sets[id][n] = struct{}{}
			sets[n][id] = struct{}{}
		}
	}
	for id := City(1); id <= NumCities; id++ {
		adj := make([]City, 0, len(sets[id]))
		for n := range sets[id] {
			adj = append(adj, n)
		}
		slices.Sort(adj)
		m.adjacent[id] = adj
	}
	return m, nil
}

// City returns the static description of id.
func (m *Map) City(id City) (CityInfo, bool) {
	if !id.Valid() {
		return CityInfo{}, false
	}
	info := m.cities[id]
	info.Neighbors = slices.Clone(m.adjacent[id])
	return info, true
}

// ColorOf returns the native color of id, or NoColor for an unknown city.
func (m *Map) ColorOf(id City) Color {
	if !id.Valid() {
		return NoColor
	}
	return m.cities[id].Color
}

// Adjacent returns the neighbours of id in ascending City order. The order
// is what makes outbreak cascades reproducible.
func (m *Map) Adjacent(id City) []City {
	if !id.Valid() {
		return nil
	}
	return slices.Clone(m.adjacent[id])
}

// IsAdjacent reports whether a and b share an edge. Either endpoint's
// declaration is enough.
func (m *Map) IsAdjacent(a, b City) bool {
	if !a.Valid() || !b.Valid() || a == b {
		return false
	}
	return slices.Contains(m.declared[a], b) || slices.Contains(m.declared[b], a)
}

// AllCities returns every city in ascending order.
func (m *Map) AllCities() []City {
	all := make([]City, 0, NumCities)
	for id := City(1); id <= NumCities; id++ {
		all = append(all, id)
	}
	return all
}

// CitiesOf returns the cities of one color in ascending order.
func (m *Map) CitiesOf(c Color) []City {
	var out []City
	for id := City(1); id <= NumCities; id++ {
		if m.cities[id].Color == c {
			out = append(out, id)
		}
	}
	return out
}

// Asymmetries lists the edges that only one endpoint declares.
func (m *Map) Asymmetries() []Edge {
	var out []Edge
	for id := City(1); id <= NumCities; id++ {
		for _, n := range m.declared[id] {
			if !slices.Contains(m.declared[n], id) {
				out = append(out, Edge{From: id, To: n})
			}
		}
	}
	return out
}
