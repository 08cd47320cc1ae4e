package game

import (
	"fmt"
	"strings"

	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
)

// State is a read-only snapshot of the table from one seat's point of view.
type State struct {
	Seat              int
	LastPlayedCard    card.Card
	ActiveColor       color.Color
	CurrentSeat       int
	Direction         int
	CurrentPlayerHand []card.Card
	PlayableCards     []card.Card
	PlayerSequence    []string
	PlayerHandCounts  []int
	DrewThisTurn      bool
	Phase             Phase
}

func (g *Game) ExtractState(seat int) State {
	playerSequence := make([]string, 0, len(g.players))
	playerHandCounts := make([]int, 0, len(g.players))
	for _, player := range g.players {
		playerSequence = append(playerSequence, player.Name())
		playerHandCounts = append(playerHandCounts, player.HandSize())
	}

	var hand []card.Card
	if g.validSeat(seat) {
		hand = g.players[seat].Hand()
	}

	return State{
		Seat:              seat,
		LastPlayedCard:    g.pile.Top(),
		ActiveColor:       g.EffectiveColor(),
		CurrentSeat:       g.seats.Current(),
		Direction:         g.seats.Direction(),
		CurrentPlayerHand: hand,
		PlayableCards:     g.AllowedMoves(seat),
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  playerHandCounts,
		DrewThisTurn:      g.drewThisTurn,
		Phase:             g.phase,
	}
}

func (s State) String() string {
	var lines []string
	top := "none"
	if s.LastPlayedCard != nil {
		top = s.LastPlayedCard.String()
	}
	if s.ActiveColor != nil && s.LastPlayedCard != nil && card.IsWild(s.LastPlayedCard) {
		top = fmt.Sprintf("%s, color %s", top, s.ActiveColor)
	}
	lines = append(lines, fmt.Sprintf("Last played card: %s", top))

	arrow := "->"
	if s.Direction < 0 {
		arrow = "<-"
	}
	var playerStatuses []string
	for seat, playerName := range s.PlayerSequence {
		marker := ""
		if seat == s.CurrentSeat {
			marker = "*"
		}
		uno := ""
		if s.PlayerHandCounts[seat] == 1 {
			uno = " UNO!"
		}
		playerStatuses = append(playerStatuses, fmt.Sprintf("%s%s (%d card(s))%s", marker, playerName, s.PlayerHandCounts[seat], uno))
	}
	lines = append(lines, fmt.Sprintf("Turn order %s %s", arrow, strings.Join(playerStatuses, ", ")))

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentPlayerHand))

	return strings.Join(lines, "\n")
}
