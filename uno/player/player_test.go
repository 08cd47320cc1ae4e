package player_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
	"github.com/miguel-rebelo-hq/UnoAI/uno/game"
	"github.com/miguel-rebelo-hq/UnoAI/uno/player"
	"github.com/miguel-rebelo-hq/UnoAI/uno/ui"
	"github.com/stretchr/testify/require"
)

func newGame(seed int64) (*game.Game, *rand.Rand) {
	rng := rand.New(rand.NewSource(seed))
	g := game.New(game.WithRand(rng))
	g.Setup()
	return g, rng
}

// humanTurnGame finds a seed whose round opens on the human seat.
func humanTurnGame(t *testing.T) *game.Game {
	for seed := int64(1); seed < 500; seed++ {
		g, _ := newGame(seed)
		if _, normal := g.Phase().(game.Normal); normal && g.CurrentIndex() == consts.HumanSeat {
			return g
		}
	}
	t.Fatal("no seed starts on the human seat")
	return nil
}

func TestBotsFinishRounds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, rng := newGame(seed)
		controllers := player.CreateControllers(g, nil, rng, true)
		require.Len(t, controllers, consts.Players)

		for step := 0; step < 2000 && !g.Over(); step++ {
			switch phase := g.Phase().(type) {
			case game.AwaitingInitialWildColor:
				chosen, err := controllers[phase.Seat].PickStartingColor(g, phase.Seat)
				require.NoError(t, err)
				require.NoError(t, g.SetInitialWildColor(chosen))
			case game.AwaitingPlus4Decision:
				require.NoError(t, controllers[phase.Target].RespondToPlus4(g, phase.Target))
			default:
				seat := g.CurrentIndex()
				require.NoError(t, controllers[seat].TakeTurn(g, seat), "seed %d step %d", seed, step)
				if _, pending := g.Plus4Pending(); !pending && !g.Over() {
					require.NotEqual(t, seat, g.CurrentIndex())
				}
			}
			require.Equal(t, consts.DeckSize, g.Deck().Size()+g.Pile().Size()+handTotal(g))
		}
		require.True(t, g.Over(), "seed %d did not finish", seed)
	}
}

func handTotal(g *game.Game) int {
	total := 0
	for _, seated := range g.Players() {
		total += seated.HandSize()
	}
	return total
}

func TestCreateControllers(t *testing.T) {
	g, rng := newGame(1)
	console := ui.NewConsole(strings.NewReader(""), &bytes.Buffer{}, 0)

	controllers := player.CreateControllers(g, console, rng, false)
	names := make([]string, 0, len(controllers))
	for _, controller := range controllers {
		names = append(names, controller.Name())
	}
	require.Equal(t, []string{"You", "Bot 2", "Bot 3", "Bot 4"}, names)
}

func TestHumanPlayer(t *testing.T) {
	t.Run("plays_through_a_turn", func(t *testing.T) {
		g := humanTurnGame(t)
		input := strings.Repeat("A\nred\n", 10)
		out := &bytes.Buffer{}
		human := player.NewHumanPlayer("You", ui.NewConsole(strings.NewReader(input), out, 0))

		require.NoError(t, human.TakeTurn(g, consts.HumanSeat))
		require.NotEqual(t, consts.HumanSeat, g.CurrentIndex())
		require.Contains(t, out.String(), "It's your turn, You!")
		require.Contains(t, out.String(), "Select an action:")
	})

	t.Run("closed_input_stops_the_turn", func(t *testing.T) {
		g := humanTurnGame(t)
		human := player.NewHumanPlayer("You", ui.NewConsole(strings.NewReader(""), &bytes.Buffer{}, 0))

		require.ErrorIs(t, human.TakeTurn(g, consts.HumanSeat), consts.ErrInputClosed)
		require.Equal(t, consts.HumanSeat, g.CurrentIndex())
	})

	t.Run("returns_when_it_is_not_their_turn", func(t *testing.T) {
		g := humanTurnGame(t)
		human := player.NewHumanPlayer("Bot 2", ui.NewConsole(strings.NewReader(""), &bytes.Buffer{}, 0))
		require.NoError(t, human.TakeTurn(g, 1))
	})

	t.Run("picks_the_starting_color", func(t *testing.T) {
		g := humanTurnGame(t)
		human := player.NewHumanPlayer("You", ui.NewConsole(strings.NewReader("blue\n"), &bytes.Buffer{}, 0))
		chosen, err := human.PickStartingColor(g, consts.HumanSeat)
		require.NoError(t, err)
		require.Equal(t, color.Blue, chosen)
	})

	t.Run("plus4_response_needs_a_pending_plus4", func(t *testing.T) {
		g := humanTurnGame(t)
		human := player.NewHumanPlayer("You", ui.NewConsole(strings.NewReader("A\n"), &bytes.Buffer{}, 0))
		require.ErrorIs(t, human.RespondToPlus4(g, consts.HumanSeat), consts.ErrNoPlus4Pending)
	})
}
