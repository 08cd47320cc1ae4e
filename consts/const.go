package consts

import (
	"time"
)

const (
	Players          = 4
	HumanSeat        = 0
	StartingHandSize = 7
	DeckSize         = 108
	StarterShuffles  = 3

	DrawTwoPenalty       = 2
	WildDrawFourPenalty  = 4
	FailedChallengeDraw  = 6
	UnoPenalty           = 2
	TargetScore          = 500
	DefaultHumanName     = "You"
	BotNameFormat        = "Bot %d"
	DefaultBotDelay      = time.Second
	BotChallengeChance   = 0.5
	CardPointsAction     = 20
	CardPointsWild       = 50
	MaxDistinctColors    = 4
	RoundRestartInterval = 800 * time.Millisecond
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

// Rule violations. Code 1 errors are recoverable and meant for the player;
// code 2 errors signal an engine inconsistency.
var (
	ErrGameOver            = NewErr(1, false, "Game is over")
	ErrPlus4Pending        = NewErr(1, false, "+4 is pending: accept or challenge first")
	ErrChooseStartingColor = NewErr(1, false, "Choose a starting color first")
	ErrNotYourTurn         = NewErr(1, false, "It's not your turn")
	ErrCardNotPlayable     = NewErr(1, false, "Card not playable")
	ErrOnlyDrawnCard       = NewErr(1, false, "After drawing, you may only play the drawn card")
	ErrInvalidWildColor    = NewErr(1, false, "Choose a valid color for Wild")
	ErrAlreadyDrew         = NewErr(1, false, "You can draw only 1 card per turn")
	ErrMustDrawFirst       = NewErr(1, false, "You need to draw before passing")
	ErrNoPlus4Pending      = NewErr(1, false, "No +4 is waiting on you")
	ErrNoInitialWild       = NewErr(1, false, "No starting color to choose")
	ErrInvalidColor        = NewErr(1, false, "Invalid color")
	ErrInvalidSeat         = NewErr(1, false, "Invalid seat")
	ErrUnoNotAllowed       = NewErr(1, false, "You can only call UNO with one or two cards left")
	ErrUnoChallengeFailed  = NewErr(1, false, "Challenge failed: that player is safe")
	ErrInputInvalid        = NewErr(1, false, "Input invalid")
	ErrCardNotInHand       = NewErr(2, false, "Card not in hand")
	ErrDeckExhausted       = NewErr(2, false, "No card left to draw")
	ErrInputClosed         = NewErr(2, true, "Input closed")
)
