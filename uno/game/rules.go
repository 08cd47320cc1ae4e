package game

import (
	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
)

// Playable reports whether candidateCard may go on lastPlayedCard. activeColor,
// when set, overrides the color of lastPlayedCard.
func Playable(candidateCard card.Card, activeColor color.Color, lastPlayedCard card.Card) bool {
	if card.IsWild(candidateCard) {
		return true
	}
	if lastPlayedCard == nil {
		return false
	}

	effectiveColor := activeColor
	if effectiveColor == nil {
		effectiveColor = lastPlayedCard.Color()
	}
	if candidateCard.Color() != nil && candidateCard.Color() == effectiveColor {
		return true
	}

	return candidateCard.Value() == lastPlayedCard.Value()
}
