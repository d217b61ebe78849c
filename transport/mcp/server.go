package mcp

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/wricardo/mcp-training/pandemic/game/cards"
	"github.com/wricardo/mcp-training/pandemic/game/engine"
	"github.com/wricardo/mcp-training/pandemic/game/service"
	"github.com/wricardo/mcp-training/pandemic/transport/render"
)

// Version is reported to MCP clients during initialization.
const Version = "1.0.0"

// Server exposes a GameService as MCP tools
type Server struct {
	svc       service.GameService
	logger    *zap.Logger
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for tool calls.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates an MCP server backed by svc
func NewServer(svc service.GameService, opts ...Option) *Server {
	s := &Server{
		svc:    svc,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.initMCPServer()
	return s
}

func (s *Server) initMCPServer() {
	s.mcpServer = server.NewMCPServer(
		"Pandemic",
		Version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Pandemic - MCP Interface

A cooperative board game: 2 to 4 players travel the world treating diseases
and discovering cures before outbreaks, cube shortages or the player deck
end the game.

TYPICAL FLOW:
1. create_game with the player names (and optional roles, difficulty, seed)
2. The current player takes 4 actions with act
3. draw_cards, then discard if a hand is over 7 cards
4. infect_cities ends the turn; repeat from step 2

AVAILABLE TOOLS:
- create_game, list_games, game_state, delete_game
- act: one action (drive, direct_flight, charter_flight, shuttle_flight,
  build_station, treat_disease, share_knowledge, discover_cure,
  operations_flight, dispatch, take_event, pass)
- play_event: play an event card at any time, costs no action
- draw_cards, discard, infect_cities: the rest of the turn
- forecast_preview: the infection cards a Forecast would rearrange
- list_difficulties, game_rules

City, color, card and event names are matched ignoring case, spaces and
accents ("sao paulo" finds São Paulo).`),
	)

	s.registerTools()
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	gameID := map[string]interface{}{
		"type":        "string",
		"description": "ID of the game, as returned by create_game",
	}
	player := map[string]interface{}{
		"type":        "string",
		"description": "Name of the player issuing the command",
	}
	stringProp := func(description string) map[string]interface{} {
		return map[string]interface{}{"type": "string", "description": description}
	}

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "create_game",
		Description: "Create and start a new game",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"players": map[string]interface{}{
					"type":        "array",
					"description": "Player names, 2 to 4, in seating order",
					"items":       map[string]interface{}{"type": "string"},
				},
				"roles": map[string]interface{}{
					"type":        "array",
					"description": "Optional roles matching players by position; empty entries are dealt at random",
					"items":       map[string]interface{}{"type": "string"},
				},
				"difficulty": map[string]interface{}{
					"type":        "string",
					"description": "Difficulty id (introductory, standard, heroic) or epidemic count (optional)",
				},
				"seed": map[string]interface{}{
					"type":        "number",
					"description": "Random seed for a reproducible game (optional)",
				},
			},
			Required: []string{"players"},
		},
	}, s.handleCreateGame)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_games",
		Description: "List all running games",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListGames)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Show the board, players, hands and disease tracks",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{"game_id": gameID},
			Required:   []string{"game_id"},
		},
	}, s.handleGameState)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "delete_game",
		Description: "Abandon a game",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{"game_id": gameID},
			Required:   []string{"game_id"},
		},
	}, s.handleDeleteGame)

	kinds := make([]string, 0, len(engine.ActionKinds))
	for _, k := range engine.ActionKinds {
		kinds = append(kinds, k.String())
	}
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "act",
		Description: "Take one action for the current player. Rejected actions cost nothing.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": gameID,
				"player":  player,
				"kind": map[string]interface{}{
					"type":        "string",
					"description": "The action to take",
					"enum":        kinds,
				},
				"destination":    stringProp("Target city for movement actions"),
				"pawn":           stringProp("Pawn to move (Dispatcher only; defaults to the player)"),
				"color":          stringProp("Disease color for treat_disease or discover_cure"),
				"card":           stringProp("City card to share, or to discard for operations_flight"),
				"partner":        stringProp("Other player for share_knowledge"),
				"remove_station": stringProp("Station to remove when building a seventh"),
				"event":          stringProp("Event card to store for take_event"),
				"take": map[string]interface{}{
					"type":        "boolean",
					"description": "For share_knowledge: take the card from the partner instead of giving it",
				},
				"cards": map[string]interface{}{
					"type":        "array",
					"description": "For discover_cure: the city cards to discard (optional)",
					"items":       map[string]interface{}{"type": "string"},
				},
			},
			Required: []string{"game_id", "player", "kind"},
		},
	}, s.handleAct)

	events := make([]string, 0, len(cards.Events))
	for _, e := range cards.Events {
		events = append(events, e.String())
	}
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "play_event",
		Description: "Play an event card from a hand or the Contingency Planner's store. Costs no action.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": gameID,
				"player":  player,
				"event": map[string]interface{}{
					"type":        "string",
					"description": "The event card to play",
					"enum":        events,
				},
				"pawn":           stringProp("Airlift: pawn to move (defaults to the player)"),
				"destination":    stringProp("Airlift or Government Grant: target city"),
				"remove_station": stringProp("Government Grant: station to remove when six exist"),
				"target":         stringProp("Resilient Population: city to remove from the infection discard"),
				"order": map[string]interface{}{
					"type":        "array",
					"description": "Forecast: the previewed cities in their new order, top first",
					"items":       map[string]interface{}{"type": "string"},
				},
			},
			Required: []string{"game_id", "player", "event"},
		},
	}, s.handlePlayEvent)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "draw_cards",
		Description: "Draw the two player cards after the actions are spent",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{"game_id": gameID},
			Required:   []string{"game_id"},
		},
	}, s.handleDrawCards)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "discard",
		Description: "Discard a card from a hand over the 7 card limit",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": gameID,
				"player":  player,
				"card":    stringProp("City or event card to discard"),
			},
			Required: []string{"game_id", "player", "card"},
		},
	}, s.handleDiscard)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "infect_cities",
		Description: "Infect cities at the infection rate and pass the turn",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{"game_id": gameID},
			Required:   []string{"game_id"},
		},
	}, s.handleInfectCities)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "forecast_preview",
		Description: "Show the top infection cards a Forecast would rearrange",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{"game_id": gameID},
			Required:   []string{"game_id"},
		},
	}, s.handleForecastPreview)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_difficulties",
		Description: "List the difficulty presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListDifficulties)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_rules",
		Description: "Get a summary of the rules, roles and actions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameRules)
}

// GetMCPServer returns the underlying MCP server
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the tools over stdin and stdout until ctx is done or
// stdin closes.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("mcp stdio server ready", zap.String("version", Version))
	return server.NewStdioServer(s.mcpServer).Listen(ctx, in, out)
}

// Tool handlers

type gameArgs struct {
	GameID string `json:"game_id"`
}

type createGameArgs struct {
	Players    []string `json:"players"`
	Roles      []string `json:"roles"`
	Difficulty string   `json:"difficulty"`
	Seed       uint64   `json:"seed"`
}

type actArgs struct {
	GameID string `json:"game_id"`
	Player string `json:"player"`
	engine.Action
}

type playEventArgs struct {
	GameID string      `json:"game_id"`
	Player string      `json:"player"`
	Event  cards.Event `json:"event"`
	engine.EventParams
}

type discardArgs struct {
	GameID string `json:"game_id"`
	Player string `json:"player"`
	Card   string `json:"card"`
}

func (s *Server) handleCreateGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args createGameArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	specs := make([]engine.PlayerSpec, len(args.Players))
	for i, name := range args.Players {
		specs[i].Name = name
		if i < len(args.Roles) && strings.TrimSpace(args.Roles[i]) != "" {
			role, err := engine.ParseRole(args.Roles[i])
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			specs[i].Role = role
		}
	}

	info, err := s.svc.CreateGame(ctx, service.NewGameRequest{
		Players:    specs,
		Difficulty: args.Difficulty,
		Seed:       args.Seed,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created game: %s\nDifficulty: %s\nSeed: %d\n\n%s",
		info.ID, info.Difficulty, info.State.Seed, render.State(info.State))
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleListGames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	games, err := s.svc.ListGames(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Running games (%d):\n\n", len(games))
	for _, g := range games {
		names := make([]string, 0, len(g.State.Players))
		for _, p := range g.State.Players {
			names = append(names, p.Name)
		}
		status := g.State.Phase.String()
		if g.State.Outcome != engine.OutcomeNone {
			status = g.State.Outcome.String()
		}
		fmt.Fprintf(&b, "- %s (%s, turn %d, %s) players: %s, created %s\n",
			g.ID, g.Difficulty, g.State.Turn, status, strings.Join(names, ", "), g.CreatedAt.Format("15:04:05"))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	gameID, err := request.RequireString("game_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	info, err := s.svc.GetGame(ctx, gameID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(render.State(info.State)), nil
}

func (s *Server) handleDeleteGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	gameID, err := request.RequireString("game_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.svc.DeleteGame(ctx, gameID); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted game %s", gameID)), nil
}

func (s *Server) handleAct(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args actArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.Kind == engine.ActionNone {
		return mcp.NewToolResultError("kind is required"), nil
	}
	return s.commandResult(s.svc.Act(ctx, args.GameID, args.Player, args.Action))
}

func (s *Server) handlePlayEvent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args playEventArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if !args.Event.Valid() {
		return mcp.NewToolResultError("event is required"), nil
	}
	return s.commandResult(s.svc.PlayEvent(ctx, args.GameID, args.Player, args.Event, args.EventParams))
}

func (s *Server) handleDrawCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args gameArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	return s.commandResult(s.svc.DrawPlayerCards(ctx, args.GameID))
}

func (s *Server) handleDiscard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args discardArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	card, err := cards.ParsePlayerCard(args.Card)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.commandResult(s.svc.Discard(ctx, args.GameID, args.Player, card))
}

func (s *Server) handleInfectCities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args gameArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	return s.commandResult(s.svc.InfectCities(ctx, args.GameID))
}

func (s *Server) handleForecastPreview(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	gameID, err := request.RequireString("game_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	preview, err := s.svc.ForecastPreview(ctx, gameID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Top of the infection deck (top first):\n")
	for i, c := range preview {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, c.City, c.Color)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleListDifficulties(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	difficulties, err := s.svc.ListDifficulties(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Difficulties:\n\n"
	for _, d := range difficulties {
		result += fmt.Sprintf("• %s (%s)\n  %s\n  Epidemic cards: %d\n\n", d.Name, d.ID, d.Description, d.Epidemics)
	}
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleGameRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(render.Rules), nil
}

// commandResult turns a command outcome into a tool result. Rejected
// commands are tool errors, not protocol errors, so the agent can retry.
func (s *Server) commandResult(result *service.CommandResult, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		s.logger.Debug("command rejected", zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(render.Result(result)), nil
}
