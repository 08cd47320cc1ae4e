package game_test

import (
	"testing"

	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
	"github.com/miguel-rebelo-hq/UnoAI/uno/game"
	"github.com/stretchr/testify/require"
)

func TestCards(t *testing.T) {
	pile := game.NewPile()
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(card.NewNumberCard(color.Green, 5))
	pile.Add(card.NewNumberCard(color.Green, 7))
	require.Equal(t, []string{"Blue 5", "Green 5", "Green 7"}, displays(pile.Cards()))
}

func TestTop(t *testing.T) {
	pile := game.NewPile()
	require.Nil(t, pile.Top())
	pile.Add(card.NewNumberCard(color.Blue, 5))
	top := card.NewNumberCard(color.Green, 7)
	pile.Add(top)
	require.True(t, card.Same(top, pile.Top()))
}

func TestTakeUnderTop(t *testing.T) {
	t.Run("keeps_only_the_top", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.NewNumberCard(color.Blue, 5))
		pile.Add(card.NewSkipCard(color.Blue))
		top := card.NewWildCard()
		pile.Add(top)

		under := pile.TakeUnderTop()
		require.Equal(t, []string{"Blue 5", "Blue Skip"}, displays(under))
		require.Equal(t, 1, pile.Size())
		require.True(t, card.Same(top, pile.Top()))
	})

	t.Run("nothing_to_take_from_a_single_card", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.NewNumberCard(color.Blue, 5))
		require.Empty(t, pile.TakeUnderTop())
		require.Equal(t, 1, pile.Size())
	})
}
