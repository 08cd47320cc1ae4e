package card

import (
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/action"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
)

type WildDrawFourCard struct {
	identity
}

func NewWildDrawFourCard() WildDrawFourCard {
	return WildDrawFourCard{identity: newIdentity()}
}

// Actions puts the draw behind a challenge window instead of applying it.
func (c WildDrawFourCard) Actions() []action.Action {
	return []action.Action{
		action.NewPickColorAction(),
		action.NewChallengeableDrawAction(4),
	}
}

func (c WildDrawFourCard) Color() color.Color {
	return nil
}

func (c WildDrawFourCard) Value() Value {
	return WildDrawFour
}

func (c WildDrawFourCard) Equal(other Card) bool {
	_, typeMatched := other.(WildDrawFourCard)
	return typeMatched
}

func (c WildDrawFourCard) String() string {
	return paint(c)
}
