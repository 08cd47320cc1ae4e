package game

import (
	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.StartingHandSize)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// Contains matches by identity, not by color and value.
func (h *Hand) Contains(c card.Card) bool {
	return h.indexOf(c) >= 0
}

// Find returns the physical card in hand for c: the same card if held,
// otherwise the first structurally equal one.
func (h *Hand) Find(c card.Card) (card.Card, bool) {
	if index := h.indexOf(c); index >= 0 {
		return h.cards[index], true
	}
	for _, cardInHand := range h.cards {
		if cardInHand.Equal(c) {
			return cardInHand, true
		}
	}
	return nil, false
}

func (h *Hand) PlayableCards(activeColor color.Color, lastPlayedCard card.Card) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, activeColor, lastPlayedCard) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// RemoveCard removes the given physical card, keeping the order of the rest.
func (h *Hand) RemoveCard(c card.Card) error {
	index := h.indexOf(c)
	if index < 0 {
		return consts.ErrCardNotInHand
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return nil
}

func (h *Hand) HasColor(c color.Color) bool {
	if c == nil {
		return false
	}
	for _, cardInHand := range h.cards {
		if cardInHand.Color() == c {
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) indexOf(c card.Card) int {
	for index, cardInHand := range h.cards {
		if card.Same(cardInHand, c) {
			return index
		}
	}
	return -1
}
