package game

import (
	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
)

// Table describes a hand-arranged position for tests.
type Table struct {
	Hands     [][]card.Card
	Top       card.Card
	Current   int
	Direction int
	Color     color.Color
	// DeckSize caps the draw deck; the rest of the standard set goes under
	// the top card. Zero keeps every remaining card in the deck.
	DeckSize int
}

// Arrange replaces the game state with t while keeping all 108 cards in play:
// cards not placed in hands or on top are split between deck and pile.
func Arrange(g *Game, t Table) {
	rest := StandardCards()
	take := func(c card.Card) {
		for index, candidate := range rest {
			if candidate.Equal(c) {
				rest = append(rest[:index], rest[index+1:]...)
				return
			}
		}
		panic("card not available in a standard deck: " + card.Display(c))
	}

	g.players = newPlayers(g.humanName)
	for seat, hand := range t.Hands {
		for _, c := range hand {
			take(c)
		}
		g.players[seat].AddCards(hand)
	}
	take(t.Top)

	deckCards := rest
	var pileCards []card.Card
	if t.DeckSize > 0 && t.DeckSize < len(rest) {
		deckCards = rest[:t.DeckSize]
		pileCards = rest[t.DeckSize:]
	}
	g.deck.cards = append([]card.Card{}, deckCards...)
	g.pile = NewPile()
	for _, c := range pileCards {
		g.pile.Add(c)
	}
	g.pile.Add(t.Top)

	g.seats.Reset(t.Current)
	if t.Direction < 0 {
		g.seats.Reverse()
	}
	g.currentColor = t.Color
	g.phase = Normal{}
	g.over = false
	g.winner = -1
	g.lastPenalty = nil
	g.unoCalled = make([]bool, len(g.players))
	g.resetTurn()
}

// StackDeck puts cards on top of the draw deck, taking them out of the pile
// or the deck so the total stays the same.
func StackDeck(g *Game, cards ...card.Card) {
	for _, c := range cards {
		if !g.deck.RemoveEqual(c) {
			removeEqualFromPile(g.pile, c)
		}
	}
	g.deck.cards = append(append([]card.Card{}, cards...), g.deck.cards...)
}

// EmptyDeckIntoPile moves the whole deck under the pile's top card.
func EmptyDeckIntoPile(g *Game) {
	top := g.pile.cards[len(g.pile.cards)-1]
	under := append(g.pile.cards[:len(g.pile.cards)-1], g.deck.cards...)
	g.pile.cards = append(under, top)
	g.deck.cards = nil
}

func SetPhase(g *Game, p Phase) {
	g.phase = p
}

func removeEqualFromPile(p *Pile, c card.Card) {
	for index, candidate := range p.cards[:len(p.cards)-1] {
		if candidate.Equal(c) {
			p.cards = append(p.cards[:index], p.cards[index+1:]...)
			return
		}
	}
	panic("card not available for stacking: " + card.Display(c))
}
