package card

import (
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/action"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
)

type DrawTwoCard struct {
	identity
	color color.Color
}

func NewDrawTwoCard(color color.Color) DrawTwoCard {
	return DrawTwoCard{identity: newIdentity(), color: color}
}

func (c DrawTwoCard) Actions() []action.Action {
	return []action.Action{
		action.NewSkipTurnAction(),
		action.NewDrawCardsAction(2),
	}
}

func (c DrawTwoCard) Color() color.Color {
	return c.color
}

func (c DrawTwoCard) Value() Value {
	return DrawTwo
}

func (c DrawTwoCard) Equal(other Card) bool {
	_, typeMatched := other.(DrawTwoCard)
	return typeMatched && c.color == other.Color()
}

func (c DrawTwoCard) String() string {
	return paint(c)
}
