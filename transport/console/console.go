// Package console is the terminal front-end: it reads the players and the
// difficulty from a line-based input, then drives every turn through the
// game service with numbered menus.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/wricardo/mcp-training/pandemic/game/cards"
	"github.com/wricardo/mcp-training/pandemic/game/engine"
	"github.com/wricardo/mcp-training/pandemic/game/service"
	"github.com/wricardo/mcp-training/pandemic/game/world"
	"github.com/wricardo/mcp-training/pandemic/transport/render"
)

var (
	// ErrInvalidInput is returned for input that cannot be used. During
	// setup it ends the session; during play the prompt is repeated.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInputClosed is returned when the input ends before the game does.
	ErrInputClosed = errors.New("input closed")
)

// Console plays one game on a text stream
type Console struct {
	svc        service.GameService
	in         *bufio.Scanner
	out        io.Writer
	world      *world.Map
	seed       uint64
	difficulty string
	logger     *zap.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithSeed fixes the seed of the game. Zero picks one at random.
func WithSeed(seed uint64) Option {
	return func(c *Console) { c.seed = seed }
}

// WithDifficulty preselects the difficulty so the menu is skipped.
func WithDifficulty(id string) Option {
	return func(c *Console) { c.difficulty = id }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Console) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a console reading from in and writing to out.
func New(svc service.GameService, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		world:  world.Standard(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run sets up a game and plays it to the end. A finished game, won or lost,
// returns its outcome and a nil error.
func (c *Console) Run(ctx context.Context) (engine.Outcome, error) {
	req, err := c.setup(ctx)
	if err != nil {
		return engine.OutcomeNone, err
	}
	info, err := c.svc.CreateGame(ctx, req)
	if err != nil {
		return engine.OutcomeNone, err
	}
	c.logger.Info("console game started", zap.String("game", info.ID), zap.Uint64("seed", info.State.Seed))

	c.printf("Using %s difficulty (seed %d).\n\n", info.Difficulty, info.State.Seed)
	for _, p := range info.State.Players {
		c.printf("%s\n", render.Player(p, false))
	}

	for {
		if err := ctx.Err(); err != nil {
			return engine.OutcomeNone, err
		}
		info, err := c.svc.GetGame(ctx, info.ID)
		if err != nil {
			return engine.OutcomeNone, err
		}
		s := info.State
		if s.Outcome != engine.OutcomeNone {
			c.printf("Game Over: %s\n", s.Outcome.Description())
			return s.Outcome, nil
		}

		switch s.Phase {
		case engine.PhaseActions:
			err = c.actionTurn(ctx, info.ID, s)
		case engine.PhaseDraw:
			err = c.drawTurn(ctx, info.ID, s)
		case engine.PhaseDiscard:
			err = c.discardTurn(ctx, info.ID, s)
		case engine.PhaseInfect:
			err = c.report(c.svc.InfectCities(ctx, info.ID))
		default:
			err = fmt.Errorf("unexpected phase %s", s.Phase)
		}
		if errors.Is(err, ErrInvalidInput) {
			c.printf("Invalid selection: %v\n", err)
			continue
		}
		if err != nil {
			return engine.OutcomeNone, err
		}
	}
}

// setup reads the player count, the names and the difficulty. Any invalid
// answer ends the session.
func (c *Console) setup(ctx context.Context) (service.NewGameRequest, error) {
	req := service.NewGameRequest{Seed: c.seed, Difficulty: c.difficulty}

	line, err := c.prompt(fmt.Sprintf("Enter number of players [%d-%d]", engine.MinPlayers, engine.MaxPlayers))
	if err != nil {
		return req, err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < engine.MinPlayers || n > engine.MaxPlayers {
		return req, fmt.Errorf("%w: %q is not a player count", ErrInvalidInput, line)
	}

	for i := range n {
		name, err := c.prompt(fmt.Sprintf("Enter Player #%d's Name", i+1))
		if err != nil {
			return req, err
		}
		if name == "" {
			return req, fmt.Errorf("%w: player %d has no name", ErrInvalidInput, i+1)
		}
		req.Players = append(req.Players, engine.PlayerSpec{Name: name})
	}

	if req.Difficulty == "" {
		difficulties, err := c.svc.ListDifficulties(ctx)
		if err != nil {
			return req, err
		}
		labels := make([]string, len(difficulties))
		for i, d := range difficulties {
			labels[i] = fmt.Sprintf("%s (%d Epidemics)", d.Name, d.Epidemics)
		}
		i, err := c.menu("Set Difficulty", labels)
		if err != nil {
			return req, err
		}
		req.Difficulty = difficulties[i].ID
	}
	return req, nil
}

type choice struct {
	label string
	run   func() error
}

func (c *Console) actionTurn(ctx context.Context, id string, s engine.Snapshot) error {
	me, _ := s.Player(s.CurrentPlayer)
	if s.ActionsLeft == engine.ActionsPerTurn {
		c.printf("\n%s", render.State(s))
	}
	c.printf("\n%s\nPlease take your turn. Used %d/%d actions.\n",
		render.Player(me, true), engine.ActionsPerTurn-s.ActionsLeft, engine.ActionsPerTurn)

	act := func(kind engine.ActionKind) func() error {
		return func() error {
			a, err := c.actionParams(s, me, kind)
			if err != nil {
				return err
			}
			return c.report(c.svc.Act(ctx, id, me.Name, a))
		}
	}

	choices := []choice{{"Do Nothing (Cost: 1 action)", act(engine.ActionPass)}}
	for _, kind := range engine.ActionKinds {
		label, ok := actionLabel(kind, me.Role)
		if ok {
			choices = append(choices, choice{label, act(kind)})
		}
	}
	if holdsEvents(s) {
		choices = append(choices, choice{"Play an Event card (Cost: none)", func() error { return c.playEvent(ctx, id, s) }})
	}
	choices = append(choices,
		choice{"Show the board", func() error { c.printf("%s", render.State(s)); return nil }},
		choice{"Show the rules", func() error { c.printf("%s", render.Rules); return nil }},
	)
	return c.runMenu(fmt.Sprintf("Action Menu For %s", me.Name), choices)
}

func (c *Console) drawTurn(ctx context.Context, id string, s engine.Snapshot) error {
	if !holdsEvents(s) {
		return c.report(c.svc.DrawPlayerCards(ctx, id))
	}
	return c.runMenu(fmt.Sprintf("Does anyone wish to play an Event card before %s draws %d cards?", s.CurrentPlayer, engine.CardsPerDraw),
		[]choice{
			{"Draw cards from the player deck", func() error { return c.report(c.svc.DrawPlayerCards(ctx, id)) }},
			{"Play an Event card", func() error { return c.playEvent(ctx, id, s) }},
		})
}

func (c *Console) discardTurn(ctx context.Context, id string, s engine.Snapshot) error {
	for _, p := range s.Players {
		if len(p.Hand) <= engine.MaxHandSize {
			continue
		}
		choices := make([]choice, 0, len(p.Hand)+1)
		for _, card := range p.Hand {
			choices = append(choices, choice{card.Describe(), func() error {
				return c.report(c.svc.Discard(ctx, id, p.Name, card))
			}})
		}
		// Playing an event from the full hand also brings it down.
		if holdsEvents(s) {
			choices = append(choices, choice{"Play an Event card", func() error { return c.playEvent(ctx, id, s) }})
		}
		title := fmt.Sprintf("Discard Cards in %s's Hand: %d/%d cards", p.Name, len(p.Hand), engine.MaxHandSize)
		return c.runMenu(title, choices)
	}
	return nil
}

// report prints the result of a command. Rejected commands are printed and
// swallowed so the player can try again.
func (c *Console) report(result *service.CommandResult, err error) error {
	if errors.Is(err, engine.ErrPrecondition) || errors.Is(err, engine.ErrCanceled) {
		c.printf("Cannot do that: %v\n", err)
		return nil
	}
	if err != nil {
		return err
	}
	c.printf("%s", render.Result(result))
	return nil
}

func (c *Console) runMenu(title string, choices []choice) error {
	labels := make([]string, len(choices))
	for i, ch := range choices {
		labels[i] = ch.label
	}
	i, err := c.menu(title, labels)
	if err != nil {
		return err
	}
	return choices[i].run()
}

// menu prints numbered options and returns the zero-based selection.
func (c *Console) menu(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("%w: nothing to choose from", ErrInvalidInput)
	}
	c.printf("%s\n", banner(title))
	for i, o := range options {
		c.printf("\t%d. %s\n", i+1, o)
	}
	line, err := c.prompt("Enter selection")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(options) {
		return 0, fmt.Errorf("%w: %q is not between 1 and %d", ErrInvalidInput, line, len(options))
	}
	return n - 1, nil
}

func (c *Console) prompt(label string) (string, error) {
	c.printf("%s: ", label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) readCity(label string) (world.City, error) {
	line, err := c.prompt(label)
	if err != nil {
		return world.NoCity, err
	}
	id, err := world.ParseCity(line)
	if err != nil {
		return world.NoCity, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return id, nil
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// banner centers title in a 64 column rule of '='.
func banner(title string) string {
	const width = 64
	pad := width - len(title)
	if pad <= 0 {
		return title
	}
	left := pad / 2
	return strings.Repeat("=", left) + title + strings.Repeat("=", pad-left)
}

func holdsEvents(s engine.Snapshot) bool {
	for _, p := range s.Players {
		if p.StoredEvent != cards.NoEvent {
			return true
		}
		for _, card := range p.Hand {
			if card.IsEvent() {
				return true
			}
		}
	}
	return false
}
