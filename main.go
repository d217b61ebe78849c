// Command pandemic runs the cooperative Pandemic board game.
//
// It supports three commands:
//  1. "play" (default) – plays one game on the terminal, reading the players
//     and the difficulty from stdin
//  2. "mcp" – serves the game as Model Context Protocol tools over stdio
//  3. "cities" – lists the world map
//
// Settings are read from the environment and an optional .env file; the
// --seed, --difficulty and --log-level flags override them.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/wricardo/mcp-training/pandemic/game/config"
	"github.com/wricardo/mcp-training/pandemic/game/service"
	"github.com/wricardo/mcp-training/pandemic/game/session"
	"github.com/wricardo/mcp-training/pandemic/game/world"
	"github.com/wricardo/mcp-training/pandemic/transport/console"
	"github.com/wricardo/mcp-training/pandemic/transport/mcp"
	"github.com/wricardo/mcp-training/pandemic/transport/render"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "pandemic"
)

// app holds what the commands share once Before has run.
type app struct {
	in       io.Reader
	out      io.Writer
	envFiles []string

	settings config.Settings
	logger   *zap.Logger
	sessions *session.Manager
	svc      service.GameService
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{in: os.Stdin, out: os.Stdout}
	if err := a.command().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}
}

// command builds the CLI. Exit codes: 0 when a game ends, won or lost; 1 on
// invalid input or a failure.
func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:           AppName,
		Usage:          "the cooperative disease-fighting board game",
		Version:        Version,
		DefaultCommand: "play",
		Reader:         a.in,
		Writer:         a.out,
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "random seed for a reproducible game (0 picks one; overrides PANDEMIC_SEED)",
			},
			&cli.StringFlag{
				Name:  "difficulty",
				Usage: "introductory, standard or heroic (overrides PANDEMIC_DIFFICULTY)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (overrides PANDEMIC_LOG_LEVEL)",
			},
		},
		Before: a.before,
		After:  a.after,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play a game on the terminal",
				Action: a.play,
			},
			{
				Name:   "mcp",
				Usage:  "serve the game as MCP tools over stdio",
				Action: a.serveMCP,
			},
			{
				Name:   "cities",
				Usage:  "list the cities of the world map",
				Action: a.cities,
			},
		},
	}
}

// before loads the settings, applies the flag overrides and initializes
// services.
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	settings, err := config.Load(a.envFiles...)
	if err != nil {
		return ctx, err
	}
	if cmd.IsSet("seed") {
		settings.Seed = cmd.Uint64("seed")
	}
	if cmd.IsSet("difficulty") {
		settings.Difficulty = cmd.String("difficulty")
	}
	if cmd.IsSet("log-level") {
		settings.LogLevel = cmd.String("log-level")
	}
	if err := settings.Validate(); err != nil {
		return ctx, err
	}
	a.settings = settings

	if a.logger, err = settings.Logger(); err != nil {
		return ctx, err
	}
	if err := a.initializeServices(); err != nil {
		return ctx, err
	}
	return ctx, nil
}

func (a *app) after(ctx context.Context, cmd *cli.Command) error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return nil
}

func (a *app) initializeServices() error {
	configManager := config.NewManager()
	if err := configManager.SetDefault(a.settings.Difficulty); err != nil {
		return fmt.Errorf("failed to set default difficulty: %w", err)
	}
	a.sessions = session.NewManager(session.WithLogger(a.logger))
	a.svc = service.NewGameService(a.sessions, configManager, service.WithLogger(a.logger))
	return nil
}

func (a *app) play(ctx context.Context, cmd *cli.Command) error {
	opts := []console.Option{
		console.WithSeed(a.settings.Seed),
		console.WithLogger(a.logger),
	}
	if cmd.IsSet("difficulty") {
		opts = append(opts, console.WithDifficulty(a.settings.Difficulty))
	}
	_, err := console.New(a.svc, a.in, a.out, opts...).Run(ctx)
	return err
}

func (a *app) serveMCP(ctx context.Context, cmd *cli.Command) error {
	go a.sessions.RunCleanup(ctx, a.settings.SessionTTL, cleanupInterval(a.settings.SessionTTL))

	srv := mcp.NewServer(a.svc, mcp.WithLogger(a.logger))
	return srv.ServeStdio(ctx, a.in, a.out)
}

func (a *app) cities(ctx context.Context, cmd *cli.Command) error {
	return render.Cities(a.out, world.Standard())
}

// cleanupInterval checks for idle games four times per TTL, but never more
// often than once a second nor less often than once an hour.
func cleanupInterval(ttl time.Duration) time.Duration {
	return max(min(ttl/4, time.Hour), time.Second)
}
