package card

import (
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/action"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
)

type ReverseCard struct {
	identity
	color color.Color
}

func NewReverseCard(color color.Color) ReverseCard {
	return ReverseCard{identity: newIdentity(), color: color}
}

func (c ReverseCard) Actions() []action.Action {
	return []action.Action{
		action.NewReverseTurnsAction(),
	}
}

func (c ReverseCard) Color() color.Color {
	return c.color
}

func (c ReverseCard) Value() Value {
	return Reverse
}

func (c ReverseCard) Equal(other Card) bool {
	_, typeMatched := other.(ReverseCard)
	return typeMatched && c.color == other.Color()
}

func (c ReverseCard) String() string {
	return paint(c)
}
