package game_test

import (
	"testing"

	"github.com/miguel-rebelo-hq/UnoAI/uno/game"
	"github.com/stretchr/testify/assert"
)

func TestCurrent(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Next()
	assert.Equal(t, 2, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 3, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
}

func TestAdvance(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 2, cycler.Advance(2))
	assert.Equal(t, 0, cycler.Advance(2))
	cycler.Reverse()
	assert.Equal(t, 2, cycler.Advance(2))
	assert.Equal(t, 1, cycler.Advance(1))
	assert.Equal(t, -1, cycler.Direction())
}

func TestPeek(t *testing.T) {
	cycler := game.NewCycler(4)
	cycler.SetCurrent(3)
	assert.Equal(t, 0, cycler.Peek(1))
	assert.Equal(t, 1, cycler.Peek(2))
	assert.Equal(t, 3, cycler.Current())
	cycler.Reverse()
	assert.Equal(t, 2, cycler.Peek(1))
}

func TestReset(t *testing.T) {
	cycler := game.NewCycler(4)
	cycler.Reverse()
	cycler.Reset(5)
	assert.Equal(t, 1, cycler.Current())
	assert.Equal(t, 1, cycler.Direction())
}
