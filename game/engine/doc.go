// Package engine provides the rules engine for the cooperative pandemic
// board game.
//
// The engine package implements the game mechanics including:
//   - Disease cubes, outbreaks with per-chain cycle protection, and epidemics
//   - The player and infection decks with their discard and removed piles
//   - Player actions and the seven role abilities
//   - Event cards playable between commands
//   - The turn phases: actions, draw, discard, infect
//   - Win and loss detection
//
// Core Types:
//
// The Engine interface is the command surface, implemented by Game. Every
// command returns the Events it caused or an error. Errors wrapping
// ErrPrecondition leave the game untouched; once the game ends every
// command returns a *GameOverError. Snapshot returns a deep copy of the
// state for rendering.
//
// Usage:
//
//	g, err := engine.New(engine.WithSeed(42), engine.WithLogger(logger))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	g.SetPlayers([]engine.PlayerSpec{{Name: "Ada"}, {Name: "Grace", Role: engine.Medic}})
//	g.SetDifficulty(5)
//	events, err := g.Start()
//
//	events, err = g.Act("Ada", engine.Action{Kind: engine.ActionDrive, Destination: world.Chicago})
//	if errors.Is(err, engine.ErrPrecondition) {
//		// re-prompt, nothing changed
//	}
//
// Game Rules:
//
// Each turn the active player takes four actions, draws two player cards
// (resolving any epidemic), discards down to seven cards and infects as many
// cities as the infection rate. The players win by curing all four
// diseases. They lose on the ninth outbreak, when a disease runs out of
// cubes, or when the player deck cannot be drawn from.
//
// All randomness comes from one seeded generator, so a seed and a sequence
// of commands always replay the same game.
package engine
