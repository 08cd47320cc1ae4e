package game

import (
	"math"

	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
)

type MoveAction int

const (
	ActionDraw MoveAction = iota
	ActionPlay
)

func (a MoveAction) String() string {
	if a == ActionPlay {
		return "play"
	}
	return "draw"
}

// Move is a bot decision. Card and Color are set only for plays; Color only
// for wild cards.
type Move struct {
	Action MoveAction
	Card   card.Card
	Color  color.Color
}

// ChooseBestMove picks seat's play for this turn with a freshly drawn persona.
func (g *Game) ChooseBestMove(seat int) Move {
	moves := g.AllowedMoves(seat)
	if len(moves) == 0 {
		return Move{Action: ActionDraw}
	}
	if g.players[seat].HandSize() == 1 {
		return g.playMove(seat, moves[0])
	}

	persona := g.personas.Pick()
	if g.rng.Float64() < persona.RandomProb {
		return g.playMove(seat, moves[g.rng.Intn(len(moves))])
	}

	bestScore := math.Inf(-1)
	var best Move
	for _, candidate := range orderNonWildFirst(moves) {
		move := g.playMove(seat, candidate)
		score := g.scoreMove(seat, move, persona)
		if score > bestScore {
			bestScore = score
			best = move
		}
	}
	return best
}

func (g *Game) playMove(seat int, c card.Card) Move {
	move := Move{Action: ActionPlay, Card: c}
	if card.IsWild(c) {
		move.Color = g.bestColorAfterPlay(seat, c)
	}
	return move
}

func (g *Game) scoreMove(seat int, move Move, persona Persona) float64 {
	if g.players[seat].HandSize() == 1 {
		return math.Inf(1)
	}
	played := move.Card
	nextHand := g.players[g.seats.Peek(1)].HandSize()

	var base float64
	switch played.Value() {
	case card.WildDrawFour:
		base = 40
		if nextHand == 1 {
			base += 20 * persona.NextUnoScale
		}
	case card.DrawTwo:
		base = 20
		if nextHand == 1 {
			base += 12 * persona.NextUnoScale
		}
	case card.Skip:
		base = 12
		if nextHand == 1 {
			base += 6 * persona.NextUnoScale
		}
	case card.Reverse:
		base = 4
	default:
		base = 2
	}
	score := base * persona.impact(played.Value())

	remaining := g.handWithout(seat, played)
	counts := colorCounts(remaining)

	colorToSet := played.Color()
	if card.IsWild(played) {
		colorToSet = move.Color
	}
	if colorToSet != nil {
		score += float64(counts[colorToSet]) * 2 * persona.ColorBias
	}

	distinct := 0
	for _, count := range counts {
		if count > 0 {
			distinct++
		}
	}
	score += float64(consts.MaxDistinctColors-distinct) * persona.DiversityBias

	score += float64(CardPoints(played)) * persona.HighPointsBias

	if card.IsWild(played) {
		score -= persona.WildPenalty
	}
	return score
}

// ChooseColorForBot picks the most frequent color in seat's hand, or a random
// one when the hand holds only wild cards.
func (g *Game) ChooseColorForBot(seat int) color.Color {
	if !g.validSeat(seat) {
		return color.Random(g.rng)
	}
	return g.mostFrequentColor(g.players[seat].Hand())
}

func (g *Game) bestColorAfterPlay(seat int, played card.Card) color.Color {
	return g.mostFrequentColor(g.handWithout(seat, played))
}

func (g *Game) mostFrequentColor(cards []card.Card) color.Color {
	counts := colorCounts(cards)
	var best color.Color
	bestCount := 0
	for _, c := range color.All {
		if counts[c] > bestCount {
			best = c
			bestCount = counts[c]
		}
	}
	if best == nil {
		return color.Random(g.rng)
	}
	return best
}

func (g *Game) handWithout(seat int, played card.Card) []card.Card {
	hand := g.players[seat].Hand()
	for index, c := range hand {
		if card.Same(c, played) {
			return append(hand[:index], hand[index+1:]...)
		}
	}
	return hand
}

func colorCounts(cards []card.Card) map[color.Color]int {
	colors := make([]color.Color, 0, len(cards))
	for _, c := range cards {
		colors = append(colors, c.Color())
	}
	return color.Counts(colors)
}

func orderNonWildFirst(cards []card.Card) []card.Card {
	ordered := make([]card.Card, 0, len(cards))
	for _, c := range cards {
		if !card.IsWild(c) {
			ordered = append(ordered, c)
		}
	}
	for _, c := range cards {
		if card.IsWild(c) {
			ordered = append(ordered, c)
		}
	}
	return ordered
}
