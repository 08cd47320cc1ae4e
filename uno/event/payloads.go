package event

import (
	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
)

type FirstCardPlayedPayload struct {
	Card         card.Card
	StartingSeat int
}

type CardPlayedPayload struct {
	Seat       int
	PlayerName string
	Card       card.Card
}

type ColorPickedPayload struct {
	Seat       int
	PlayerName string
	Color      color.Color
}

// CardsDrawnPayload is emitted for voluntary draws and penalties alike.
type CardsDrawnPayload struct {
	Seat       int
	PlayerName string
	Cards      []card.Card
	Penalty    bool
}

type TurnSkippedPayload struct {
	Seat       int
	PlayerName string
}

type TurnOrderReversedPayload struct {
	Direction int
}

type PlayerPassedPayload struct {
	Seat       int
	PlayerName string
}

type Plus4ResolvedPayload struct {
	PlayedBy   int
	Target     int
	Challenged bool
	WasLegal   bool
}

type UnoCalledPayload struct {
	Seat       int
	PlayerName string
}

type UnoChallengedPayload struct {
	Seat       int
	PlayerName string
	Penalized  bool
}

type RoundWonPayload struct {
	Seat       int
	PlayerName string
	Points     int
}
