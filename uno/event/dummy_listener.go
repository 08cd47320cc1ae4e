package event

type DummyListener struct {
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

// Subscribe records every payload emitted on bus.
func (l *DummyListener) Subscribe(bus *Bus) {
	bus.FirstCardPlayed.AddListener(func(p FirstCardPlayedPayload) { l.record(p) })
	bus.CardPlayed.AddListener(func(p CardPlayedPayload) { l.record(p) })
	bus.ColorPicked.AddListener(func(p ColorPickedPayload) { l.record(p) })
	bus.CardsDrawn.AddListener(func(p CardsDrawnPayload) { l.record(p) })
	bus.TurnSkipped.AddListener(func(p TurnSkippedPayload) { l.record(p) })
	bus.TurnOrderReversed.AddListener(func(p TurnOrderReversedPayload) { l.record(p) })
	bus.PlayerPassed.AddListener(func(p PlayerPassedPayload) { l.record(p) })
	bus.Plus4Resolved.AddListener(func(p Plus4ResolvedPayload) { l.record(p) })
	bus.UnoCalled.AddListener(func(p UnoCalledPayload) { l.record(p) })
	bus.UnoChallenged.AddListener(func(p UnoChallengedPayload) { l.record(p) })
	bus.RoundWon.AddListener(func(p RoundWonPayload) { l.record(p) })
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	return l.receivedPayloads
}

func (l *DummyListener) record(payload interface{}) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}
