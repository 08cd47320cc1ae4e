package event

// Bus groups the emitters of a single round. Each game owns its own bus so
// listeners never leak from one round into the next.
type Bus struct {
	FirstCardPlayed   Emitter[FirstCardPlayedPayload]
	CardPlayed        Emitter[CardPlayedPayload]
	ColorPicked       Emitter[ColorPickedPayload]
	CardsDrawn        Emitter[CardsDrawnPayload]
	TurnSkipped       Emitter[TurnSkippedPayload]
	TurnOrderReversed Emitter[TurnOrderReversedPayload]
	PlayerPassed      Emitter[PlayerPassedPayload]
	Plus4Resolved     Emitter[Plus4ResolvedPayload]
	UnoCalled         Emitter[UnoCalledPayload]
	UnoChallenged     Emitter[UnoChallengedPayload]
	RoundWon          Emitter[RoundWonPayload]
}

func NewBus() *Bus {
	return &Bus{}
}
