package game

import (
	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
	"github.com/miguel-rebelo-hq/UnoAI/uno/event"
)

// AcceptPlus4 lets the target take the four cards. Their turn is lost.
func (g *Game) AcceptPlus4(seat int) error {
	pending, err := g.pendingFor(seat)
	if err != nil {
		return err
	}
	g.penalize(seat, consts.WildDrawFourPenalty)
	g.phase = Normal{}
	g.events.Plus4Resolved.Emit(event.Plus4ResolvedPayload{
		PlayedBy: pending.PlayedBy,
		Target:   seat,
		WasLegal: pending.WasLegal,
	})
	g.settlePlus4(pending)
	return nil
}

// ChallengePlus4 contests the +4. A legal +4 costs the challenger six cards
// and their turn; a bluff makes the player of the +4 draw four and the
// challenger keeps the turn. It reports whether the +4 was legal.
func (g *Game) ChallengePlus4(seat int) (bool, error) {
	pending, err := g.pendingFor(seat)
	if err != nil {
		return false, err
	}
	g.phase = Normal{}
	if pending.WasLegal {
		g.penalize(seat, consts.FailedChallengeDraw)
	} else {
		g.penalize(pending.PlayedBy, consts.WildDrawFourPenalty)
	}
	g.events.Plus4Resolved.Emit(event.Plus4ResolvedPayload{
		PlayedBy:   pending.PlayedBy,
		Target:     seat,
		Challenged: true,
		WasLegal:   pending.WasLegal,
	})
	if pending.WasLegal {
		g.settlePlus4(pending)
	}
	return pending.WasLegal, nil
}

// settlePlus4 ends the round if the +4 was the last card, else the target
// is skipped.
func (g *Game) settlePlus4(pending AwaitingPlus4Decision) {
	if g.players[pending.PlayedBy].NoCards() {
		g.finish(pending.PlayedBy)
		return
	}
	g.skip(pending.Target)
	g.advanceTurn(1)
}

func (g *Game) pendingFor(seat int) (AwaitingPlus4Decision, error) {
	if g.over {
		return AwaitingPlus4Decision{}, consts.ErrGameOver
	}
	pending, ok := g.phase.(AwaitingPlus4Decision)
	if !ok || pending.Target != seat {
		return AwaitingPlus4Decision{}, consts.ErrNoPlus4Pending
	}
	return pending, nil
}

// SetInitialWildColor names the color of a Wild starter. The seat that chose
// still takes its normal turn afterwards.
func (g *Game) SetInitialWildColor(c color.Color) error {
	pending, ok := g.phase.(AwaitingInitialWildColor)
	if !ok {
		return consts.ErrNoInitialWild
	}
	if !color.Valid(c) {
		return consts.ErrInvalidColor
	}
	g.currentColor = c
	g.phase = Normal{}
	g.events.ColorPicked.Emit(event.ColorPickedPayload{
		Seat:       pending.Seat,
		PlayerName: g.players[pending.Seat].Name(),
		Color:      c,
	})
	return nil
}
