package card_test

import (
	"testing"

	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/action"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActions(t *testing.T) {
	scenarios := []struct {
		card     card.Card
		expected []action.Action
	}{
		{card: card.NewNumberCard(color.Red, 3), expected: []action.Action{}},
		{card: card.NewSkipCard(color.Red), expected: []action.Action{action.NewSkipTurnAction()}},
		{card: card.NewReverseCard(color.Red), expected: []action.Action{action.NewReverseTurnsAction()}},
		{card: card.NewDrawTwoCard(color.Red), expected: []action.Action{action.NewSkipTurnAction(), action.NewDrawCardsAction(2)}},
		{card: card.NewWildCard(), expected: []action.Action{action.NewPickColorAction()}},
		{card: card.NewWildDrawFourCard(), expected: []action.Action{action.NewPickColorAction(), action.NewChallengeableDrawAction(4)}},
	}

	for _, scenario := range scenarios {
		t.Run(card.Display(scenario.card), func(t *testing.T) {
			assert.ElementsMatch(t, scenario.expected, scenario.card.Actions())
		})
	}
}

func TestEqualAndSame(t *testing.T) {
	red5 := card.NewNumberCard(color.Red, 5)
	otherRed5 := card.NewNumberCard(color.Red, 5)

	require.True(t, red5.Equal(otherRed5))
	require.False(t, card.Same(red5, otherRed5))
	require.True(t, card.Same(red5, red5))
	require.False(t, card.Same(red5, nil))

	require.False(t, red5.Equal(card.NewNumberCard(color.Blue, 5)))
	require.False(t, red5.Equal(card.NewNumberCard(color.Red, 6)))
	require.False(t, card.NewSkipCard(color.Red).Equal(card.NewReverseCard(color.Red)))
	require.True(t, card.NewWildCard().Equal(card.NewWildCard()))
	require.False(t, card.NewWildCard().Equal(card.NewWildDrawFourCard()))
	require.True(t, card.NewDrawTwoCard(color.Green).Equal(card.NewDrawTwoCard(color.Green)))
}

func TestDisplay(t *testing.T) {
	scenarios := []struct {
		card     card.Card
		expected string
	}{
		{card: card.NewNumberCard(color.Red, 5), expected: "Red 5"},
		{card: card.NewSkipCard(color.Yellow), expected: "Yellow Skip"},
		{card: card.NewReverseCard(color.Green), expected: "Green Reverse"},
		{card: card.NewDrawTwoCard(color.Blue), expected: "Blue +2"},
		{card: card.NewWildCard(), expected: "Wild"},
		{card: card.NewWildDrawFourCard(), expected: "+4"},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.expected, func(t *testing.T) {
			require.Equal(t, scenario.expected, card.Display(scenario.card))
			require.Contains(t, scenario.card.String(), scenario.expected)
		})
	}
}

func TestIsWild(t *testing.T) {
	require.True(t, card.IsWild(card.NewWildCard()))
	require.True(t, card.IsWild(card.NewWildDrawFourCard()))
	require.False(t, card.IsWild(card.NewDrawTwoCard(color.Red)))
	require.Nil(t, card.NewWildCard().Color())
}

func TestValueNumber(t *testing.T) {
	number, ok := card.NumberValue(7).Number()
	require.True(t, ok)
	require.Equal(t, 7, number)

	_, ok = card.Skip.Number()
	require.False(t, ok)
	_, ok = card.DrawTwo.Number()
	require.False(t, ok)
	_, ok = card.WildDrawFour.Number()
	require.False(t, ok)
	_, ok = card.Value("-1").Number()
	require.False(t, ok)
	_, ok = card.Value("12").Number()
	require.False(t, ok)
}
