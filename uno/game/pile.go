package game

import (
	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
)

// Pile is the discard pile; the last card is the top.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Top() card.Card {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return nil
	}
	return p.cards[pileSize-1]
}

func (p *Pile) Size() int {
	return len(p.cards)
}

// TakeUnderTop removes and returns every card below the top one.
func (p *Pile) TakeUnderTop() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	under := make([]card.Card, len(p.cards)-1)
	copy(under, p.cards[:len(p.cards)-1])
	p.cards = []card.Card{p.cards[len(p.cards)-1]}
	return under
}
