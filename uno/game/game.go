package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
	"github.com/miguel-rebelo-hq/UnoAI/uno/event"
)

// Game is the state of a single round. It assumes a single caller at a time
// and keeps no locks; a new round is a new Game.
type Game struct {
	rng       *rand.Rand
	personas  PersonaPicker
	events    *event.Bus
	humanName string

	players []*Player
	deck    *Deck
	pile    *Pile
	seats   *Cycler

	currentColor color.Color
	drewThisTurn bool
	lastDrawn    card.Card

	phase       Phase
	over        bool
	winner      int
	lastPenalty *Penalty
	unoCalled   []bool
}

// Penalty records the most recent forced draw.
type Penalty struct {
	Seat   int
	Amount int
}

type Option func(*Game)

// WithRand injects the random source used for shuffling, seating and bot choices.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithPersonaPicker(picker PersonaPicker) Option {
	return func(g *Game) {
		g.personas = picker
	}
}

func WithHumanName(name string) Option {
	return func(g *Game) {
		if name != "" {
			g.humanName = name
		}
	}
}

func WithEvents(bus *event.Bus) Option {
	return func(g *Game) {
		g.events = bus
	}
}

func New(options ...Option) *Game {
	g := &Game{
		humanName: consts.DefaultHumanName,
		phase:     Normal{},
		winner:    -1,
	}
	for _, option := range options {
		option(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.personas == nil {
		g.personas = NewRandomPersonaPicker(g.rng)
	}
	if g.events == nil {
		g.events = event.NewBus()
	}
	g.deck = NewDeck(g.rng)
	g.pile = NewPile()
	g.seats = NewCycler(consts.Players)
	g.players = newPlayers(g.humanName)
	g.unoCalled = make([]bool, consts.Players)
	return g
}

func newPlayers(humanName string) []*Player {
	players := make([]*Player, 0, consts.Players)
	players = append(players, NewPlayer(humanName, true))
	for seat := 2; seat <= consts.Players; seat++ {
		players = append(players, NewPlayer(fmt.Sprintf(consts.BotNameFormat, seat), false))
	}
	return players
}

// Setup deals a fresh round: seven cards each, a starter that is never a +4,
// a random starting seat, and the starter's effect applied.
func (g *Game) Setup() {
	g.players = newPlayers(g.humanName)
	g.deck.Build()
	for i := 0; i < consts.StarterShuffles; i++ {
		g.deck.Shuffle()
	}
	g.pile = NewPile()

	for i := 0; i < consts.StartingHandSize; i++ {
		for _, player := range g.players {
			player.Draw(g.deck, 1)
		}
	}

	first := g.drawStarter()
	g.pile.Add(first)

	g.seats.Reset(g.rng.Intn(len(g.players)))
	g.resetTurn()
	g.currentColor = nil
	g.lastPenalty = nil
	g.over = false
	g.winner = -1
	g.phase = Normal{}
	g.unoCalled = make([]bool, len(g.players))

	start := g.seats.Current()
	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: first, StartingSeat: start})

	switch first.Value() {
	case card.Wild:
		g.phase = AwaitingInitialWildColor{Seat: start}
	case card.Reverse:
		g.seats.Reverse()
		g.events.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{Direction: g.seats.Direction()})
		g.advanceTurn(1)
		g.currentColor = first.Color()
	case card.Skip:
		g.currentColor = first.Color()
		g.skip(start)
		g.advanceTurn(1)
	case card.DrawTwo:
		g.currentColor = first.Color()
		g.penalize(start, consts.DrawTwoPenalty)
		g.skip(start)
		g.advanceTurn(1)
	default:
		g.currentColor = first.Color()
	}
}

func (g *Game) drawStarter() card.Card {
	for {
		if g.deck.Empty() {
			g.deck.Build()
			g.deck.Shuffle()
		}
		first, _ := g.deck.DrawOne()
		if first.Value() != card.WildDrawFour {
			return first
		}
		g.deck.PutBack(first)
		g.deck.Shuffle()
	}
}

func (g *Game) Events() *event.Bus {
	return g.events
}

func (g *Game) Players() []*Player {
	players := make([]*Player, len(g.players))
	copy(players, g.players)
	return players
}

func (g *Game) Player(seat int) *Player {
	if !g.validSeat(seat) {
		return nil
	}
	return g.players[seat]
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) Pile() *Pile {
	return g.pile
}

func (g *Game) TopCard() card.Card {
	return g.pile.Top()
}

func (g *Game) CurrentIndex() int {
	return g.seats.Current()
}

func (g *Game) CurrentPlayer() *Player {
	return g.players[g.seats.Current()]
}

func (g *Game) Direction() int {
	return g.seats.Direction()
}

// NextPlayerIndex is the seat steps ahead of the current one.
func (g *Game) NextPlayerIndex(steps int) int {
	return g.seats.Peek(steps)
}

// CurrentColor is the explicit color in force, nil before any is set.
func (g *Game) CurrentColor() color.Color {
	return g.currentColor
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Over() bool {
	return g.over
}

// Winner returns the winning seat once the round is over.
func (g *Game) Winner() (int, bool) {
	if !g.over || g.winner < 0 {
		return -1, false
	}
	return g.winner, true
}

func (g *Game) DrewThisTurn() bool {
	return g.drewThisTurn
}

func (g *Game) LastDrawnCard() card.Card {
	return g.lastDrawn
}

func (g *Game) LastPenalty() (Penalty, bool) {
	if g.lastPenalty == nil {
		return Penalty{}, false
	}
	return *g.lastPenalty, true
}

// Plus4Pending reports the open +4 challenge, if any.
func (g *Game) Plus4Pending() (AwaitingPlus4Decision, bool) {
	pending, ok := g.phase.(AwaitingPlus4Decision)
	return pending, ok
}

// InitialWildPending reports the seat that must name the starting color.
func (g *Game) InitialWildPending() (int, bool) {
	pending, ok := g.phase.(AwaitingInitialWildColor)
	return pending.Seat, ok
}

func (g *Game) validSeat(seat int) bool {
	return seat >= 0 && seat < len(g.players)
}

func (g *Game) finish(seat int) {
	g.over = true
	g.winner = seat
	g.events.RoundWon.Emit(event.RoundWonPayload{
		Seat:       seat,
		PlayerName: g.players[seat].Name(),
		Points:     g.WinnerPoints(),
	})
}

func (g *Game) skip(seat int) {
	g.events.TurnSkipped.Emit(event.TurnSkippedPayload{Seat: seat, PlayerName: g.players[seat].Name()})
}
