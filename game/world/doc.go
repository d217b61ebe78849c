// Package world holds the static geography of the game: the four disease
// colors, the closed set of 48 cities and the undirected graph that links
// them.
//
// Everything in this package is immutable after construction. A Map is safe
// to share between games and goroutines.
//
// Usage:
//
//	m := world.Standard()
//	for _, n := range m.Adjacent(world.Atlanta) {
//		fmt.Println(n, m.ColorOf(n))
//	}
//
//	if m.IsAdjacent(world.Mumbai, world.Karachi) {
//		// drive / ferry is legal
//	}
package world
