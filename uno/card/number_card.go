package card

import (
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/action"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
)

type NumberCard struct {
	identity
	color  color.Color
	number int
}

func NewNumberCard(color color.Color, number int) NumberCard {
	return NumberCard{
		identity: newIdentity(),
		color:    color,
		number:   number,
	}
}

func (c NumberCard) Actions() []action.Action {
	return []action.Action{}
}

func (c NumberCard) Color() color.Color {
	return c.color
}

func (c NumberCard) Value() Value {
	return NumberValue(c.number)
}

func (c NumberCard) Equal(other Card) bool {
	otherNumberCard, typeMatched := other.(NumberCard)
	return typeMatched && c.color == other.Color() && c.number == otherNumberCard.number
}

func (c NumberCard) Number() int {
	return c.number
}

func (c NumberCard) String() string {
	return paint(c)
}
