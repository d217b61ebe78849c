package engine

import (
	"go.uber.org/zap"

	"github.com/wricardo/mcp-training/pandemic/game/cards"
)

// DrawPlayerCards draws two player cards for the active player. Epidemics
// are resolved on the spot and go to the discard pile. Running out of cards
// loses the game.
func (g *Game) DrawPlayerCards() ([]Event, error) {
	return g.run(func() error {
		if g.phase != PhaseDraw {
			return ErrWrongPhase
		}
		p := g.players[g.current]
		for range CardsPerDraw {
			card, ok := g.playerDeck.DrawTop()
			if !ok {
				g.finish(OutcomeTimeout)
				return nil
			}
			g.emit(Event{Type: EventCardDrawn, Player: p.Name, Card: card.String()})
			if card.IsEpidemic() {
				g.playerDiscard.PushTop(card)
				if out := g.resolveEpidemic(); out != OutcomeNone {
					g.finish(out)
					return nil
				}
				continue
			}
			g.addToHand(p, card)
		}

		if len(g.overHandLimit()) > 0 {
			g.phase = PhaseDiscard
		} else {
			g.phase = PhaseInfect
		}
		return nil
	})
}

// Discard drops a card from a hand over the limit. Once every hand is back
// to seven cards the turn moves on to infection.
func (g *Game) Discard(player string, card cards.PlayerCard) ([]Event, error) {
	return g.run(func() error {
		if g.phase != PhaseDiscard {
			return ErrWrongPhase
		}
		p, err := g.player(player)
		if err != nil {
			return err
		}
		if len(p.Hand) <= MaxHandSize {
			return precondition("%s is within the hand limit", p.Name)
		}
		if !g.discard(p, card) {
			return ErrCardNotInHand
		}
		if len(g.overHandLimit()) == 0 {
			g.phase = PhaseInfect
		}
		return nil
	})
}

// InfectCities draws as many infection cards as the infection rate and
// infects each city once, then passes the turn. One Quiet Night skips the
// draw.
func (g *Game) InfectCities() ([]Event, error) {
	return g.run(func() error {
		if g.phase != PhaseInfect {
			return ErrWrongPhase
		}
		if g.quietNight {
			g.quietNight = false
			g.emit(Event{Type: EventInfectionSkipped})
		} else {
			for range g.InfectionRate() {
				card, ok := g.infectionDeck.DrawTop()
				if !ok {
					g.logger.Warn("infection deck is empty")
					break
				}
				out := g.infect(card.City, card.Color, newChain())
				g.infectionDiscard.PushTop(card)
				if out != OutcomeNone {
					g.finish(out)
					return nil
				}
			}
		}
		g.advanceTurn()
		return nil
	})
}

func (g *Game) advanceTurn() {
	g.current = (g.current + 1) % len(g.players)
	g.actionsLeft = ActionsPerTurn
	g.opsFlightUsed = false
	g.turn++
	g.phase = PhaseActions
	next := g.players[g.current]
	g.emit(Event{Type: EventTurnAdvanced, Player: next.Name})
	g.logger.Debug("turn advanced", zap.String("player", next.Name), zap.Int("turn", g.turn))
}
