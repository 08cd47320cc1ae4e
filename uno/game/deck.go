package game

import (
	"math/rand"

	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
)

// Deck is the draw stack. The top of the stack is the front of the slice.
type Deck struct {
	rng   *rand.Rand
	cards []card.Card
}

func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{rng: rng}
	deck.Build()
	deck.Shuffle()
	return deck
}

// Build resets the deck to the full standard set, unshuffled.
func (d *Deck) Build() {
	d.cards = StandardCards()
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

// Draw removes up to amount cards from the top. It never refills itself.
func (d *Deck) Draw(amount int) []card.Card {
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	if amount <= 0 {
		return []card.Card{}
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards
}

func (d *Deck) DrawOne() (card.Card, bool) {
	cards := d.Draw(1)
	if len(cards) == 0 {
		return nil, false
	}
	return cards[0], true
}

// AddCards appends cards to the bottom and reshuffles.
func (d *Deck) AddCards(cards []card.Card) {
	d.cards = append(d.cards, cards...)
	d.Shuffle()
}

// PutBack returns a card to the bottom of the deck without shuffling.
func (d *Deck) PutBack(c card.Card) {
	d.cards = append(d.cards, c)
}

// RemoveEqual drops one card structurally equal to c.
func (d *Deck) RemoveEqual(c card.Card) bool {
	for index, candidate := range d.cards {
		if candidate.Equal(c) {
			d.cards = append(d.cards[:index], d.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// StandardCards returns a fresh copy of the 108-card set.
func StandardCards() []card.Card {
	cards := make([]card.Card, 0, consts.DeckSize)

	cards = append(cards, createBlackCards()...)
	for _, cardColor := range color.All {
		cards = append(cards, createColorCards(cardColor)...)
	}

	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := []card.Card{card.NewNumberCard(cardColor, 0)}

	for number := 1; number <= 9; number++ {
		cards = append(cards, card.NewNumberCard(cardColor, number), card.NewNumberCard(cardColor, number))
	}
	for i := 0; i < 2; i++ {
		cards = append(cards,
			card.NewSkipCard(cardColor),
			card.NewReverseCard(cardColor),
			card.NewDrawTwoCard(cardColor),
		)
	}

	return cards
}

func createBlackCards() []card.Card {
	cards := make([]card.Card, 0, 8)
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewWildCard(), card.NewWildDrawFourCard())
	}
	return cards
}
