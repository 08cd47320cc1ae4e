package game

import (
	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
)

// Player is one seat at the table.
type Player struct {
	name  string
	human bool
	hand  *Hand
}

func NewPlayer(name string, human bool) *Player {
	return &Player{
		name:  name,
		human: human,
		hand:  NewHand(),
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) IsHuman() bool {
	return p.human
}

func (p *Player) Hand() []card.Card {
	return p.hand.Cards()
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}

func (p *Player) NoCards() bool {
	return p.hand.Empty()
}

func (p *Player) HasColor(c color.Color) bool {
	return p.hand.HasColor(c)
}

// Draw moves up to amount cards from the deck into the hand.
func (p *Player) Draw(deck *Deck, amount int) []card.Card {
	cards := deck.Draw(amount)
	p.hand.AddCards(cards)
	return cards
}

func (p *Player) AddCards(cards []card.Card) {
	p.hand.AddCards(cards)
}

func (p *Player) RemoveCard(c card.Card) error {
	return p.hand.RemoveCard(c)
}
