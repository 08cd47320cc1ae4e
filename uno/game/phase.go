package game

// Phase is the round's sub-state. Only Normal allows regular plays, draws and
// passes; the other two wait for a single resolving action.
type Phase interface {
	phase()
}

type Normal struct{}

// AwaitingInitialWildColor waits for Seat to name the color of a Wild starter.
type AwaitingInitialWildColor struct {
	Seat int
}

// AwaitingPlus4Decision waits for Target to accept or challenge a +4.
type AwaitingPlus4Decision struct {
	PlayedBy int
	Target   int
	WasLegal bool
}

func (Normal) phase()                   {}
func (AwaitingInitialWildColor) phase() {}
func (AwaitingPlus4Decision) phase()    {}
