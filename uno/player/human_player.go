package player

import (
	"errors"
	"fmt"

	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
	"github.com/miguel-rebelo-hq/UnoAI/uno/game"
	"github.com/miguel-rebelo-hq/UnoAI/uno/msg"
	"github.com/miguel-rebelo-hq/UnoAI/uno/ui"
)

type humanPlayer struct {
	name    string
	console *ui.Console
}

func NewHumanPlayer(name string, console *ui.Console) Controller {
	return humanPlayer{name: name, console: console}
}

func (p humanPlayer) Name() string {
	return p.name
}

type turnOption struct {
	text string
	run  func() error
}

// TakeTurn keeps prompting until the turn has moved on. Rule violations are
// shown and the prompt repeats.
func (p humanPlayer) TakeTurn(g *game.Game, seat int) error {
	p.console.Println(msg.Message.HumanPlayerTurnStarted(p.name))
	for ownsTurn(g, seat) {
		p.console.Println(g.ExtractState(seat))

		options := p.turnOptions(g, seat)
		texts := make([]string, 0, len(options))
		for _, option := range options {
			texts = append(texts, option.text)
		}
		index, err := p.console.PromptChoice("Select an action:", texts)
		if err != nil {
			return err
		}
		if err := options[index].run(); err != nil {
			if !recoverable(err) {
				return err
			}
			p.console.Println(err.Error())
		}
	}
	return nil
}

func (p humanPlayer) turnOptions(g *game.Game, seat int) []turnOption {
	var options []turnOption
	for _, playable := range g.AllowedMoves(seat) {
		playable := playable
		options = append(options, turnOption{
			text: fmt.Sprintf("Play %s", playable),
			run: func() error {
				var chosen color.Color
				if card.IsWild(playable) {
					var err error
					if chosen, err = p.console.PromptColor(); err != nil {
						return err
					}
				}
				return g.PlayCard(seat, playable, chosen)
			},
		})
	}
	if g.CanDraw(seat) == nil {
		options = append(options, turnOption{text: "Draw card", run: func() error {
			_, err := g.DrawOne(seat)
			return err
		}})
	}
	if g.CanPass(seat) == nil {
		options = append(options, turnOption{text: "Pass", run: func() error {
			return g.Pass(seat)
		}})
	}
	if g.Player(seat).HandSize() <= 2 && !g.UnoCalled(seat) {
		options = append(options, turnOption{text: "Call UNO!", run: func() error {
			return g.CallUno(seat)
		}})
	}
	for other, opponent := range g.Players() {
		if other == seat || opponent.HandSize() != 1 || g.UnoCalled(other) {
			continue
		}
		other := other
		options = append(options, turnOption{text: fmt.Sprintf("Challenge UNO! (%s)", opponent.Name()), run: func() error {
			return g.ChallengeUno(other)
		}})
	}
	return options
}

func (p humanPlayer) PickStartingColor(g *game.Game, seat int) (color.Color, error) {
	p.console.Println(g.ExtractState(seat))
	return p.console.PromptColor()
}

func (p humanPlayer) RespondToPlus4(g *game.Game, seat int) error {
	p.console.Println(msg.Message.HumanPlayerHitByPlus4())
	challenge, err := p.console.PromptPlus4Decision()
	if err != nil {
		return err
	}
	if challenge {
		_, err = g.ChallengePlus4(seat)
		return err
	}
	return g.AcceptPlus4(seat)
}

func ownsTurn(g *game.Game, seat int) bool {
	_, normal := g.Phase().(game.Normal)
	return !g.Over() && normal && g.CurrentIndex() == seat
}

// recoverable reports whether err is a rule violation the player can retry.
func recoverable(err error) bool {
	var ruleErr consts.Error
	return errors.As(err, &ruleErr) && ruleErr.Code == 1
}
