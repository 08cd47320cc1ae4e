package msg

import (
	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/event"
)

// Narrator turns game events into lines for one seat's point of view. Cards
// drawn by that seat are shown, everyone else's are only counted.
type Narrator struct {
	seat  int
	names []string
	out   func(string)

	drawTwoPending bool
}

func NewNarrator(seat int, names []string, out func(string)) *Narrator {
	return &Narrator{seat: seat, names: names, out: out}
}

func (n *Narrator) Subscribe(bus *event.Bus) {
	bus.FirstCardPlayed.AddListener(n.onFirstCardPlayed)
	bus.CardPlayed.AddListener(n.onCardPlayed)
	bus.ColorPicked.AddListener(n.onColorPicked)
	bus.CardsDrawn.AddListener(n.onCardsDrawn)
	bus.TurnSkipped.AddListener(n.onTurnSkipped)
	bus.TurnOrderReversed.AddListener(n.onTurnOrderReversed)
	bus.PlayerPassed.AddListener(n.onPlayerPassed)
	bus.Plus4Resolved.AddListener(n.onPlus4Resolved)
	bus.UnoCalled.AddListener(n.onUnoCalled)
	bus.UnoChallenged.AddListener(n.onUnoChallenged)
	bus.RoundWon.AddListener(n.onRoundWon)
}

func (n *Narrator) onFirstCardPlayed(p event.FirstCardPlayedPayload) {
	n.drawTwoPending = p.Card.Value() == card.DrawTwo
	n.out(Message.FirstCardPlayed(p.Card, n.name(p.StartingSeat)))
}

func (n *Narrator) onCardPlayed(p event.CardPlayedPayload) {
	n.drawTwoPending = p.Card.Value() == card.DrawTwo
	n.out(Message.PlayerPlayedCard(p.PlayerName, p.Card))
}

func (n *Narrator) onColorPicked(p event.ColorPickedPayload) {
	n.out(Message.PlayerPickedColor(p.PlayerName, p.Color))
}

// onCardsDrawn reports a +2 or a voluntary draw. Other penalties are told by
// the +4 resolution or the UNO challenge that caused them.
func (n *Narrator) onCardsDrawn(p event.CardsDrawnPayload) {
	drawTwo := p.Penalty && n.drawTwoPending
	n.drawTwoPending = false
	if p.Seat == n.seat {
		n.out(Message.HumanPlayerDrewCards(p.Cards))
		return
	}
	if p.Penalty && !drawTwo {
		return
	}
	n.out(Message.PlayerDrewCards(p.PlayerName, len(p.Cards)))
}

func (n *Narrator) onTurnSkipped(p event.TurnSkippedPayload) {
	n.out(Message.PlayerTurnSkipped(p.PlayerName))
}

func (n *Narrator) onTurnOrderReversed(event.TurnOrderReversedPayload) {
	n.out(Message.TurnOrderReversed())
}

func (n *Narrator) onPlayerPassed(p event.PlayerPassedPayload) {
	n.out(Message.PlayerPassed(p.PlayerName))
}

func (n *Narrator) onPlus4Resolved(p event.Plus4ResolvedPayload) {
	target := n.name(p.Target)
	switch {
	case !p.Challenged:
		n.out(Message.Plus4Accepted(target))
	case p.WasLegal:
		n.out(Message.Plus4ChallengeFailed(target))
	default:
		n.out(Message.Plus4ChallengeSucceeded(target, n.name(p.PlayedBy)))
	}
}

func (n *Narrator) onUnoCalled(p event.UnoCalledPayload) {
	n.out(Message.UnoCalled(p.PlayerName))
}

func (n *Narrator) onUnoChallenged(p event.UnoChallengedPayload) {
	n.out(Message.UnoChallenged(p.PlayerName, p.Penalized))
}

func (n *Narrator) onRoundWon(p event.RoundWonPayload) {
	n.out(Message.WinnerFound(p.PlayerName, p.Points))
}

func (n *Narrator) name(seat int) string {
	if seat < 0 || seat >= len(n.names) {
		return "?"
	}
	return n.names[seat]
}
