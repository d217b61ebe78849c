// Package mcp provides the Model Context Protocol server for the game.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for every game command
//   - Stdio transport
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_game: Seat 2 to 4 players and start a game
//   - list_games: List running games
//   - game_state: Board, hands, disease tracks and piles
//   - delete_game: Abandon a game
//   - act: One action for the current player
//   - play_event: Play an event card, at no action cost
//   - draw_cards: Draw the two player cards
//   - discard: Discard down to the hand limit
//   - infect_cities: Infect cities and pass the turn
//   - forecast_preview: Peek at the cards a Forecast would rearrange
//   - list_difficulties: List the difficulty presets
//   - game_rules: Rules summary
//
// Errors:
//
// Rejected commands come back as tool results with IsError set and the
// engine's message as text, never as protocol errors, so an agent can read
// the reason and try something else.
//
// Usage:
//
//	srv := mcp.NewServer(gameService, mcp.WithLogger(logger))
//	if err := srv.ServeStdio(ctx, os.Stdin, os.Stdout); err != nil {
//		log.Fatal(err)
//	}
package mcp
