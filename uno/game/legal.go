package game

import (
	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
)

// EffectiveColor is the color cards are matched against: the chosen color if
// one is set, else the color of the top card.
func (g *Game) EffectiveColor() color.Color {
	if g.currentColor != nil {
		return g.currentColor
	}
	if top := g.pile.Top(); top != nil {
		return top.Color()
	}
	return nil
}

func (g *Game) IsPlayable(c card.Card) bool {
	return Playable(c, g.currentColor, g.pile.Top())
}

// AllowedMoves lists the cards seat may play right now. After a draw that is
// at most the drawn card itself.
func (g *Game) AllowedMoves(seat int) []card.Card {
	if err := g.checkTurn(seat); err != nil {
		return nil
	}
	hand := g.players[seat].hand
	if g.drewThisTurn {
		if g.lastDrawn != nil && hand.Contains(g.lastDrawn) && g.IsPlayable(g.lastDrawn) {
			return []card.Card{g.lastDrawn}
		}
		return nil
	}
	return hand.PlayableCards(g.currentColor, g.pile.Top())
}

func (g *Game) CanDraw(seat int) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}
	if g.drewThisTurn {
		return consts.ErrAlreadyDrew
	}
	return nil
}

func (g *Game) CanPass(seat int) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}
	if !g.drewThisTurn {
		return consts.ErrMustDrawFirst
	}
	return nil
}

// checkTurn rejects any regular action outside seat's normal turn.
func (g *Game) checkTurn(seat int) error {
	if g.over {
		return consts.ErrGameOver
	}
	if !g.validSeat(seat) {
		return consts.ErrInvalidSeat
	}
	switch g.phase.(type) {
	case AwaitingPlus4Decision:
		return consts.ErrPlus4Pending
	case AwaitingInitialWildColor:
		return consts.ErrChooseStartingColor
	}
	if seat != g.seats.Current() {
		return consts.ErrNotYourTurn
	}
	return nil
}
