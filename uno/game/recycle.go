package game

import (
	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/ratel-online/core/log"
)

// drawCards deals amount cards to seat one at a time, recycling the pile
// into the deck whenever the deck runs dry.
func (g *Game) drawCards(seat, amount int) []card.Card {
	player := g.players[seat]
	drawn := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		if g.deck.Empty() {
			g.recycle()
		}
		if g.deck.Empty() {
			g.rebuild()
		}
		drawn = append(drawn, player.Draw(g.deck, 1)...)
	}
	if player.HandSize() > 1 {
		g.unoCalled[seat] = false
	}
	return drawn
}

// recycle moves every pile card except the top back into the deck.
func (g *Game) recycle() {
	under := g.pile.TakeUnderTop()
	if len(under) == 0 {
		return
	}
	g.deck.AddCards(under)
}

// rebuild is the last resort when deck and pile are both exhausted: a fresh
// set minus one copy of the current top.
func (g *Game) rebuild() {
	log.Errorf("[rebuild] deck and pile exhausted, rebuilding a fresh deck\n")
	g.deck.Build()
	if top := g.pile.Top(); top != nil {
		g.deck.RemoveEqual(top)
	}
	g.deck.Shuffle()
}
