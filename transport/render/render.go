// Package render turns game snapshots and command results into the plain
// text shown by the console and returned by the MCP tools.
package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wricardo/mcp-training/pandemic/game/cards"
	"github.com/wricardo/mcp-training/pandemic/game/engine"
	"github.com/wricardo/mcp-training/pandemic/game/service"
	"github.com/wricardo/mcp-training/pandemic/game/world"
)

var printer = message.NewPrinter(language.English)

// State renders the whole board.
func State(s engine.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Turn %d, %s phase", s.Turn, s.Phase)
	if s.CurrentPlayer != "" {
		fmt.Fprintf(&b, ", %s to play", s.CurrentPlayer)
		if s.Phase == engine.PhaseActions {
			fmt.Fprintf(&b, " (%d action(s) left)", s.ActionsLeft)
		}
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Outbreaks: %d/%d  Infection rate: %d  Epidemics: %d/%d\n",
		s.Outbreaks, engine.MaxOutbreaks, s.InfectionRate, s.Epidemics, s.EpidemicsConfigured)
	fmt.Fprintf(&b, "Player deck: %d  Infection deck: %d\n", s.PlayerDeckSize, s.InfectionDeckSize)
	if s.QuietNight {
		b.WriteString("One Quiet Night is in effect.\n")
	}

	b.WriteString("\nDiseases:\n")
	for _, d := range s.Diseases {
		fmt.Fprintf(&b, "  %-6s %-10s %2d on board, %2d left\n", d.Color, d.State, d.OnBoard, d.Remaining)
	}

	b.WriteString("\nPlayers:\n")
	for _, p := range s.Players {
		b.WriteString("  " + Player(p, p.Name == s.CurrentPlayer) + "\n")
	}

	fmt.Fprintf(&b, "\nResearch stations: %s\n", joinCities(s.Stations()))

	b.WriteString("\nInfected cities:\n")
	infected := 0
	for _, c := range s.Cities {
		if c.Total() == 0 {
			continue
		}
		infected++
		fmt.Fprintf(&b, "  %s: %s\n", c.City, cubeList(c.Cubes))
	}
	if infected == 0 {
		b.WriteString("  none\n")
	}

	if len(s.InfectionDiscard) > 0 {
		names := make([]string, 0, len(s.InfectionDiscard))
		for _, c := range s.InfectionDiscard {
			names = append(names, c.String())
		}
		fmt.Fprintf(&b, "\nInfection discard (top first): %s\n", strings.Join(names, ", "))
	}

	if s.Outcome != engine.OutcomeNone {
		fmt.Fprintf(&b, "\nGAME OVER: %s\n", s.Outcome.Description())
	}
	return b.String()
}

// Player renders one player line. The active player is starred.
func Player(p engine.PlayerView, active bool) string {
	marker := " "
	if active {
		marker = "*"
	}
	line := fmt.Sprintf("%s %s (%s) in %s: %s", marker, p.Name, p.Role, p.Location, Hand(p.Hand))
	if p.StoredEvent != cards.NoEvent {
		line += fmt.Sprintf(" [stored: %s]", p.StoredEvent)
	}
	return line
}

// Hand lists cards by name, with the city color in brackets.
func Hand(hand []cards.PlayerCard) string {
	if len(hand) == 0 {
		return "no cards"
	}
	names := make([]string, 0, len(hand))
	for _, c := range hand {
		if c.IsCity() {
			names = append(names, fmt.Sprintf("%s [%s]", c, c.Color()))
		} else {
			names = append(names, c.String())
		}
	}
	return strings.Join(names, ", ")
}

// Result renders the events of one command followed by a short status line.
func Result(r *service.CommandResult) string {
	var b strings.Builder
	for _, m := range r.Messages {
		b.WriteString(m + "\n")
	}
	b.WriteString(Status(r.State))
	return b.String()
}

// Status is the one-line summary printed after every command.
func Status(s engine.Snapshot) string {
	if s.Outcome != engine.OutcomeNone {
		return "GAME OVER: " + s.Outcome.Description() + "\n"
	}
	switch s.Phase {
	case engine.PhaseActions:
		return fmt.Sprintf("%s has %d action(s) left.\n", s.CurrentPlayer, s.ActionsLeft)
	case engine.PhaseDraw:
		return fmt.Sprintf("%s must draw player cards.\n", s.CurrentPlayer)
	case engine.PhaseDiscard:
		var over []string
		for _, p := range s.Players {
			if len(p.Hand) > engine.MaxHandSize {
				over = append(over, p.Name)
			}
		}
		return fmt.Sprintf("Hand limit exceeded, discard required: %s.\n", strings.Join(over, ", "))
	case engine.PhaseInfect:
		return fmt.Sprintf("Infect %d cit(ies) to end %s's turn.\n", s.InfectionRate, s.CurrentPlayer)
	}
	return fmt.Sprintf("Phase: %s.\n", s.Phase)
}

// Cities writes the map listing: one line per city with its color,
// country, population and neighbours.
func Cities(w io.Writer, m *world.Map) error {
	for _, c := range world.Colors {
		if _, err := fmt.Fprintf(w, "%s\n", c); err != nil {
			return err
		}
		for _, id := range m.CitiesOf(c) {
			info, _ := m.City(id)
			_, err := printer.Fprintf(w, "  %-16s %-24s pop. %11d  -> %s\n",
				info.Name, info.Country, info.Population, joinCities(info.Neighbors))
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func cubeList(cubes [world.NumColors]int) string {
	var parts []string
	for _, c := range world.Colors {
		if n := cubes[c.Index()]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, strings.ToLower(c.String())))
		}
	}
	return strings.Join(parts, ", ")
}

func joinCities(ids []world.City) string {
	if len(ids) == 0 {
		return "none"
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, id.String())
	}
	return strings.Join(names, ", ")
}
