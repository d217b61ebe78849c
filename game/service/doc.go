// Package service provides the business logic layer for the pandemic game.
//
// The service package implements:
//   - Multi-game management with one engine per game
//   - Difficulty preset lookup
//   - Command serialisation per game
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager stores the running games.
// ConfigManager serves the difficulty presets.
//
// Architecture:
//
// The service layer sits between the front-ends (console and MCP) and the
// engine. Every command result carries the events the engine emitted, their
// human-readable messages and a snapshot taken after the command. Engine
// errors pass through unchanged, so callers can test them with errors.Is
// against engine.ErrPrecondition or engine.ErrGameOver.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr := config.NewManager()
//	gameService := service.NewGameService(sessionMgr, configMgr, service.WithLogger(logger))
//
//	info, err := gameService.CreateGame(ctx, service.NewGameRequest{
//		Players:    []engine.PlayerSpec{{Name: "Ada"}, {Name: "Grace"}},
//		Difficulty: "standard",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Act(ctx, info.ID, "Ada", engine.Action{
//		Kind:        engine.ActionDrive,
//		Destination: world.Chicago,
//	})
package service
