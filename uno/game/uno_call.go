package game

import (
	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/miguel-rebelo-hq/UnoAI/uno/event"
)

// CallUno declares UNO for seat. It is allowed with one card left, or with two
// during the seat's own turn, just before playing the second to last card.
func (g *Game) CallUno(seat int) error {
	if g.over {
		return consts.ErrGameOver
	}
	if !g.validSeat(seat) {
		return consts.ErrInvalidSeat
	}
	size := g.players[seat].HandSize()
	_, normal := g.phase.(Normal)
	ownTurn := normal && seat == g.seats.Current()
	if size != 1 && !(size == 2 && ownTurn) {
		return consts.ErrUnoNotAllowed
	}
	g.unoCalled[seat] = true
	g.events.UnoCalled.Emit(event.UnoCalledPayload{Seat: seat, PlayerName: g.players[seat].Name()})
	return nil
}

// ChallengeUno accuses seat of sitting on one card without calling UNO. A
// correct accusation costs seat two cards.
func (g *Game) ChallengeUno(seat int) error {
	if g.over {
		return consts.ErrGameOver
	}
	if !g.validSeat(seat) {
		return consts.ErrInvalidSeat
	}
	player := g.players[seat]
	if player.HandSize() != 1 || g.unoCalled[seat] {
		g.events.UnoChallenged.Emit(event.UnoChallengedPayload{Seat: seat, PlayerName: player.Name()})
		return consts.ErrUnoChallengeFailed
	}
	g.penalize(seat, consts.UnoPenalty)
	g.events.UnoChallenged.Emit(event.UnoChallengedPayload{Seat: seat, PlayerName: player.Name(), Penalized: true})
	return nil
}

func (g *Game) UnoCalled(seat int) bool {
	return g.validSeat(seat) && g.unoCalled[seat]
}
