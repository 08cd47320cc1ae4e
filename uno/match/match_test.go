package match_test

import (
	"math/rand"
	"testing"

	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/miguel-rebelo-hq/UnoAI/uno/game"
	"github.com/miguel-rebelo-hq/UnoAI/uno/match"
	"github.com/miguel-rebelo-hq/UnoAI/uno/player"
	"github.com/stretchr/testify/require"
)

var names = []string{"You", "Bot 2", "Bot 3", "Bot 4"}

func TestRecordRound(t *testing.T) {
	m := match.New(names, consts.TargetScore)

	require.False(t, m.RecordRound(2, 300))
	require.False(t, m.RecordRound(1, 120))
	require.True(t, m.RecordRound(2, 200))
	require.Equal(t, []int{0, 120, 500, 0}, m.Scores())
	require.False(t, m.RecordRound(9, 1000))
}

func TestRestart(t *testing.T) {
	m := match.New(names, 100)
	m.NextRound()
	require.Equal(t, 2, m.NextRound())
	m.RecordRound(0, 150)

	m.Restart()
	require.Equal(t, []int{0, 0, 0, 0}, m.Scores())
	require.Equal(t, 0, m.Round())
	require.Equal(t, 100, m.Target())
}

func TestPlayRound(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := game.New(game.WithRand(rng))
		g.Setup()

		require.NoError(t, match.PlayRound(g, player.CreateControllers(g, nil, rng, true)))
		require.True(t, g.Over())

		winner, ok := g.Winner()
		require.True(t, ok)
		m := match.New(names, consts.TargetScore)
		m.RecordRound(winner, g.WinnerPoints())
		require.Equal(t, g.WinnerPoints(), m.Scores()[winner])
	}
}

func TestPlayMatchToTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := match.New(names, 150)

	won := false
	for round := 0; round < 100 && !won; round++ {
		m.NextRound()
		g := game.New(game.WithRand(rng))
		g.Setup()
		require.NoError(t, match.PlayRound(g, player.CreateControllers(g, nil, rng, true)))
		winner, _ := g.Winner()
		won = m.RecordRound(winner, g.WinnerPoints())
	}
	require.True(t, won)
	best := 0
	for _, score := range m.Scores() {
		if score > best {
			best = score
		}
	}
	require.GreaterOrEqual(t, best, 150)
}
