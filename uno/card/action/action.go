package action

type Action interface{}

// DrawCardsAction makes the next seat draw immediately.
type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}

// ChallengeableDrawAction defers a draw until the target accepts or challenges it.
type ChallengeableDrawAction struct {
	amount int
}

func NewChallengeableDrawAction(amount int) Action {
	return ChallengeableDrawAction{amount: amount}
}

func (a ChallengeableDrawAction) Amount() int {
	return a.amount
}
