package player

import (
	"math/rand"

	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/miguel-rebelo-hq/UnoAI/uno/game"
	"github.com/miguel-rebelo-hq/UnoAI/uno/ui"
)

// CreateControllers builds one controller per seat. With autoplay the human
// seat is driven by a bot as well.
func CreateControllers(g *game.Game, console *ui.Console, rng *rand.Rand, autoplay bool) []Controller {
	controllers := make([]Controller, 0, consts.Players)
	for seat, seated := range g.Players() {
		if seat == consts.HumanSeat && !autoplay {
			controllers = append(controllers, NewHumanPlayer(seated.Name(), console))
			continue
		}
		controllers = append(controllers, NewBotPlayer(seated.Name(), rng))
	}
	return controllers
}
