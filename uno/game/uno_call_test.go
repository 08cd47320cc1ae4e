package game_test

import (
	"testing"

	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
	"github.com/miguel-rebelo-hq/UnoAI/uno/event"
	"github.com/miguel-rebelo-hq/UnoAI/uno/game"
	"github.com/stretchr/testify/require"
)

func arrangeForUno(g *game.Game) {
	game.Arrange(g, game.Table{
		Hands: [][]card.Card{
			{card.NewNumberCard(color.Red, 5), card.NewNumberCard(color.Blue, 1)},
			{card.NewNumberCard(color.Yellow, 1)},
			{card.NewNumberCard(color.Yellow, 2), card.NewNumberCard(color.Yellow, 3)},
			{card.NewNumberCard(color.Yellow, 4), card.NewNumberCard(color.Yellow, 5), card.NewNumberCard(color.Yellow, 6)},
		},
		Top:   card.NewNumberCard(color.Red, 7),
		Color: color.Red,
	})
}

func TestCallUno(t *testing.T) {
	scenarios := []struct {
		description string
		seat        int
		expected    error
	}{
		{description: "two_cards_on_own_turn", seat: 0},
		{description: "one_card_any_time", seat: 1},
		{description: "two_cards_out_of_turn", seat: 2, expected: consts.ErrUnoNotAllowed},
		{description: "three_cards", seat: 3, expected: consts.ErrUnoNotAllowed},
		{description: "invalid_seat", seat: -1, expected: consts.ErrInvalidSeat},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			g := newTestGame(1)
			arrangeForUno(g)

			err := g.CallUno(scenario.seat)
			if scenario.expected != nil {
				require.ErrorIs(t, err, scenario.expected)
				require.False(t, g.UnoCalled(scenario.seat))
				return
			}
			require.NoError(t, err)
			require.True(t, g.UnoCalled(scenario.seat))
		})
	}
}

func TestChallengeUno(t *testing.T) {
	t.Run("penalizes_a_silent_last_card", func(t *testing.T) {
		g := newTestGame(1)
		arrangeForUno(g)
		listener := event.NewDummyListener()
		listener.Subscribe(g.Events())

		require.NoError(t, g.ChallengeUno(1))
		require.Equal(t, 3, g.Player(1).HandSize())
		penalty, ok := g.LastPenalty()
		require.True(t, ok)
		require.Equal(t, game.Penalty{Seat: 1, Amount: consts.UnoPenalty}, penalty)
		require.Contains(t, listener.ReceivedPayloads(), event.UnoChallengedPayload{Seat: 1, PlayerName: "Bot 2", Penalized: true})
		require.Equal(t, consts.DeckSize, totalCards(g))
	})

	t.Run("called_uno_is_safe", func(t *testing.T) {
		g := newTestGame(1)
		arrangeForUno(g)
		require.NoError(t, g.CallUno(1))

		require.ErrorIs(t, g.ChallengeUno(1), consts.ErrUnoChallengeFailed)
		require.Equal(t, 1, g.Player(1).HandSize())
	})

	t.Run("more_than_one_card_is_safe", func(t *testing.T) {
		g := newTestGame(1)
		arrangeForUno(g)
		require.ErrorIs(t, g.ChallengeUno(2), consts.ErrUnoChallengeFailed)
	})

	t.Run("drawing_clears_the_call", func(t *testing.T) {
		g := newTestGame(1)
		arrangeForUno(g)
		require.NoError(t, g.CallUno(0))
		require.True(t, g.UnoCalled(0))

		_, err := g.DrawOne(0)
		require.NoError(t, err)
		require.False(t, g.UnoCalled(0))
	})
	t.Run("call_before_passing_lapses", func(t *testing.T) {
		g := newTestGame(1)
		arrange(g, []card.Card{card.NewNumberCard(color.Blue, 1)}, card.NewNumberCard(color.Red, 7), color.Red)
		game.StackDeck(g, card.NewNumberCard(color.Green, 2))

		_, err := g.DrawOne(0)
		require.NoError(t, err)
		require.NoError(t, g.CallUno(0))
		require.NoError(t, g.Pass(0))
		require.False(t, g.UnoCalled(0))
		require.Equal(t, 2, g.Player(0).HandSize())
	})
}
