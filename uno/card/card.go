package card

import (
	"github.com/google/uuid"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/action"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
)

// Card is an immutable UNO card. Two cards are Equal when color and value
// match; every physical card also carries its own ID so duplicates in a hand
// can be told apart.
type Card interface {
	ID() uuid.UUID
	Actions() []action.Action
	Color() color.Color
	Value() Value
	Equal(other Card) bool
	String() string
}

type identity struct {
	id uuid.UUID
}

func newIdentity() identity {
	return identity{id: uuid.New()}
}

func (i identity) ID() uuid.UUID {
	return i.id
}

// Same reports whether a and b are the same physical card.
func Same(a, b Card) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID() == b.ID()
}

func IsWild(c Card) bool {
	return c.Value() == Wild || c.Value() == WildDrawFour
}

// Display renders "Red 5" for colored cards and the bare value for wilds.
func Display(c Card) string {
	if IsWild(c) || c.Color() == nil {
		return string(c.Value())
	}
	return c.Color().Name() + " " + string(c.Value())
}

func paint(c Card) string {
	if c.Color() == nil {
		return "[" + Display(c) + "]"
	}
	return c.Color().Paintf("[%s]", Display(c))
}
