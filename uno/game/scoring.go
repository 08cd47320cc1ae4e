package game

import (
	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
)

// CardPoints is the official value of a card left in hand.
func CardPoints(c card.Card) int {
	switch c.Value() {
	case card.Skip, card.Reverse, card.DrawTwo:
		return consts.CardPointsAction
	case card.Wild, card.WildDrawFour:
		return consts.CardPointsWild
	}
	number, _ := c.Value().Number()
	return number
}

func HandPoints(cards []card.Card) int {
	total := 0
	for _, c := range cards {
		total += CardPoints(c)
	}
	return total
}

func (g *Game) HandPointsForPlayer(seat int) int {
	if !g.validSeat(seat) {
		return 0
	}
	return HandPoints(g.players[seat].Hand())
}

func (g *Game) AllHandsPoints() []int {
	points := make([]int, len(g.players))
	for seat := range g.players {
		points[seat] = g.HandPointsForPlayer(seat)
	}
	return points
}

// WinnerPoints is the sum of every opponent's hand, or 0 while the round runs.
func (g *Game) WinnerPoints() int {
	winner, ok := g.Winner()
	if !ok {
		return 0
	}
	total := 0
	for seat := range g.players {
		if seat != winner {
			total += g.HandPointsForPlayer(seat)
		}
	}
	return total
}
