package player

import (
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
	"github.com/miguel-rebelo-hq/UnoAI/uno/game"
)

// Controller drives one seat through the engine. Each method is called only
// when the game is waiting on that seat.
type Controller interface {
	Name() string
	TakeTurn(g *game.Game, seat int) error
	PickStartingColor(g *game.Game, seat int) (color.Color, error)
	RespondToPlus4(g *game.Game, seat int) error
}
