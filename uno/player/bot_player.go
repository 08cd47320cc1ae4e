package player

import (
	"math/rand"

	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
	"github.com/miguel-rebelo-hq/UnoAI/uno/game"
	"github.com/ratel-online/core/log"
)

type botPlayer struct {
	name            string
	rng             *rand.Rand
	challengeChance float64
}

func NewBotPlayer(name string, rng *rand.Rand) Controller {
	return botPlayer{name: name, rng: rng, challengeChance: consts.BotChallengeChance}
}

func (p botPlayer) Name() string {
	return p.name
}

// TakeTurn plays the best move. Without one the bot draws, then plays the
// drawn card if it can and passes otherwise.
func (p botPlayer) TakeTurn(g *game.Game, seat int) error {
	p.catchMissedUno(g, seat)

	move := g.ChooseBestMove(seat)
	if move.Action == game.ActionPlay {
		p.callUno(g, seat)
		err := g.PlayCard(seat, move.Card, move.Color)
		if err == nil {
			return nil
		}
		log.Errorf("[botPlayer.TakeTurn] %s could not play %s: %v\n", p.name, card.Display(move.Card), err)
	}

	drawn, err := g.DrawOne(seat)
	if err != nil {
		return err
	}
	if g.IsPlayable(drawn) {
		var chosen color.Color
		if card.IsWild(drawn) {
			chosen = g.ChooseColorForBot(seat)
		}
		p.callUno(g, seat)
		return g.PlayCard(seat, drawn, chosen)
	}
	return g.Pass(seat)
}

func (p botPlayer) PickStartingColor(g *game.Game, seat int) (color.Color, error) {
	return g.ChooseColorForBot(seat), nil
}

func (p botPlayer) RespondToPlus4(g *game.Game, seat int) error {
	if p.rng.Float64() < p.challengeChance {
		_, err := g.ChallengePlus4(seat)
		return err
	}
	return g.AcceptPlus4(seat)
}

// callUno announces UNO right before the second to last card goes down.
func (p botPlayer) callUno(g *game.Game, seat int) {
	if g.Player(seat).HandSize() == 2 && !g.UnoCalled(seat) {
		_ = g.CallUno(seat)
	}
}

// catchMissedUno challenges every opponent sitting on one uncalled card.
func (p botPlayer) catchMissedUno(g *game.Game, seat int) {
	for other, player := range g.Players() {
		if other != seat && player.HandSize() == 1 && !g.UnoCalled(other) {
			_ = g.ChallengeUno(other)
		}
	}
}
