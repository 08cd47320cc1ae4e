package match

import (
	"github.com/miguel-rebelo-hq/UnoAI/uno/game"
	"github.com/miguel-rebelo-hq/UnoAI/uno/player"
)

// PlayRound hands control to whichever seat the game is waiting on until the
// round is over.
func PlayRound(g *game.Game, controllers []player.Controller) error {
	for !g.Over() {
		switch phase := g.Phase().(type) {
		case game.AwaitingInitialWildColor:
			chosen, err := controllers[phase.Seat].PickStartingColor(g, phase.Seat)
			if err != nil {
				return err
			}
			if err := g.SetInitialWildColor(chosen); err != nil {
				return err
			}
		case game.AwaitingPlus4Decision:
			if err := controllers[phase.Target].RespondToPlus4(g, phase.Target); err != nil {
				return err
			}
		default:
			seat := g.CurrentIndex()
			if err := controllers[seat].TakeTurn(g, seat); err != nil {
				return err
			}
		}
	}
	return nil
}
