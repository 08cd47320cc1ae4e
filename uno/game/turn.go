package game

import (
	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/action"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
	"github.com/miguel-rebelo-hq/UnoAI/uno/event"
	"github.com/ratel-online/core/log"
)

// PlayCard moves c from seat's hand to the pile and applies its effect.
// chosen is required for wild cards and ignored otherwise. A rejected play
// leaves the game untouched.
func (g *Game) PlayCard(seat int, c card.Card, chosen color.Color) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}
	player := g.players[seat]
	held, found := g.resolve(seat, c)
	if !found {
		return consts.ErrCardNotInHand
	}
	if !g.IsPlayable(held) {
		return consts.ErrCardNotPlayable
	}
	if g.drewThisTurn && !card.Same(held, g.lastDrawn) {
		return consts.ErrOnlyDrawnCard
	}
	if card.IsWild(held) && !color.Valid(chosen) {
		return consts.ErrInvalidWildColor
	}

	previousColor := g.EffectiveColor()
	if err := player.RemoveCard(held); err != nil {
		return err
	}
	g.pile.Add(held)
	g.events.CardPlayed.Emit(event.CardPlayedPayload{Seat: seat, PlayerName: player.Name(), Card: held})

	if card.IsWild(held) {
		g.currentColor = chosen
		g.events.ColorPicked.Emit(event.ColorPickedPayload{Seat: seat, PlayerName: player.Name(), Color: chosen})
	} else {
		g.currentColor = held.Color()
	}

	g.performCardActions(seat, held, previousColor)

	if player.NoCards() {
		if _, pending := g.phase.(AwaitingPlus4Decision); !pending {
			g.finish(seat)
		}
	}
	return nil
}

// resolve finds the physical card the caller means. An equal copy of the
// drawn card resolves to the drawn card itself.
func (g *Game) resolve(seat int, c card.Card) (card.Card, bool) {
	hand := g.players[seat].hand
	if hand.Contains(c) {
		return c, true
	}
	if g.drewThisTurn && g.lastDrawn != nil && g.lastDrawn.Equal(c) && hand.Contains(g.lastDrawn) {
		return g.lastDrawn, true
	}
	return hand.Find(c)
}

func (g *Game) performCardActions(seat int, playedCard card.Card, previousColor color.Color) {
	g.lastPenalty = nil
	target := g.seats.Peek(1)
	steps := 1

	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			g.penalize(target, cardAction.Amount())
		case action.ReverseTurnsAction:
			g.seats.Reverse()
			g.events.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{Direction: g.seats.Direction()})
		case action.SkipTurnAction:
			g.skip(target)
			steps++
		case action.PickColorAction:
			// color was set by PlayCard
		case action.ChallengeableDrawAction:
			wasLegal := previousColor == nil || !g.players[seat].HasColor(previousColor)
			g.phase = AwaitingPlus4Decision{PlayedBy: seat, Target: target, WasLegal: wasLegal}
			g.seats.SetCurrent(target)
			g.resetTurn()
			return
		}
	}

	g.advanceTurn(steps)
	if g.seats.Current() == seat {
		log.Errorf("[performCardActions] seat %d would act twice after %s, forcing advance\n", seat, card.Display(playedCard))
		g.advanceTurn(1)
	}
}

// DrawOne is the voluntary once-per-turn draw.
func (g *Game) DrawOne(seat int) (card.Card, error) {
	if err := g.CanDraw(seat); err != nil {
		return nil, err
	}
	drawn := g.drawCards(seat, 1)
	if len(drawn) == 0 {
		return nil, consts.ErrDeckExhausted
	}
	g.drewThisTurn = true
	g.lastDrawn = drawn[0]
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		Seat:       seat,
		PlayerName: g.players[seat].Name(),
		Cards:      drawn,
	})
	return drawn[0], nil
}

// Pass ends the turn after a draw that could not or would not be played.
// A call made while holding two cards lapses, since no card was played.
func (g *Game) Pass(seat int) error {
	if err := g.CanPass(seat); err != nil {
		return err
	}
	if g.players[seat].HandSize() > 1 {
		g.unoCalled[seat] = false
	}
	g.events.PlayerPassed.Emit(event.PlayerPassedPayload{Seat: seat, PlayerName: g.players[seat].Name()})
	g.advanceTurn(1)
	return nil
}

// AdvanceTurn moves the turn without any rule checks.
func (g *Game) AdvanceTurn(steps int) {
	g.advanceTurn(steps)
}

func (g *Game) advanceTurn(steps int) {
	g.seats.Advance(steps)
	g.resetTurn()
}

func (g *Game) resetTurn() {
	g.drewThisTurn = false
	g.lastDrawn = nil
}

// penalize forces seat to draw amount cards and records it.
func (g *Game) penalize(seat, amount int) {
	drawn := g.drawCards(seat, amount)
	g.lastPenalty = &Penalty{Seat: seat, Amount: amount}
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		Seat:       seat,
		PlayerName: g.players[seat].Name(),
		Cards:      drawn,
		Penalty:    true,
	})
}
