package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/miguel-rebelo-hq/UnoAI/config"
	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
	"github.com/miguel-rebelo-hq/UnoAI/uno/game"
	"github.com/miguel-rebelo-hq/UnoAI/uno/match"
	"github.com/miguel-rebelo-hq/UnoAI/uno/msg"
	"github.com/miguel-rebelo-hq/UnoAI/uno/player"
	"github.com/miguel-rebelo-hq/UnoAI/uno/ui"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	conf := config.Load()
	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Infof("starting session, seed %d, target %d\n", seed, conf.TargetScore)

	if err := run(conf, rand.New(rand.NewSource(seed))); err != nil && !errors.Is(err, consts.ErrInputClosed) {
		log.Error(err)
		os.Exit(1)
	}
}

// run plays rounds until a match is won in autoplay, or until input closes.
func run(conf config.Config, rng *rand.Rand) error {
	console := ui.NewConsole(os.Stdin, color.Stdout, conf.BotDelay)
	console.Println(msg.Message.Welcome())

	var m *match.Match
	for {
		g := game.New(game.WithRand(rng), game.WithHumanName(conf.PlayerName))
		names := make([]string, 0, consts.Players)
		for _, seated := range g.Players() {
			names = append(names, seated.Name())
		}
		if m == nil {
			m = match.New(names, conf.TargetScore)
		}
		msg.NewNarrator(consts.HumanSeat, names, func(line string) { console.Println(line) }).Subscribe(g.Events())

		round := m.NextRound()
		log.Infof("round %d started\n", round)
		console.Println(msg.Message.RoundStarted(round))
		g.Setup()
		if seat, ok := g.InitialWildPending(); ok {
			console.Println(msg.Message.StartingColorNeeded(names[seat]))
		}

		if err := match.PlayRound(g, player.CreateControllers(g, console, rng, conf.Autoplay)); err != nil {
			return err
		}

		winner, _ := g.Winner()
		matchWon := m.RecordRound(winner, g.WinnerPoints())
		log.Infof("round %d won by %s for %d points\n", round, names[winner], g.WinnerPoints())
		console.Scoreboard(m.Names(), m.Scores(), m.Target())
		if matchWon {
			score := m.Scores()[winner]
			log.Infof("match won by %s with %d points\n", names[winner], score)
			console.Println(msg.Message.MatchWon(names[winner], score))
			if conf.Autoplay {
				return nil
			}
			m.Restart()
			console.Println(msg.Message.MatchRestarted())
		}
		time.Sleep(consts.RoundRestartInterval)
	}
}
