package match

// Match keeps the cumulative scores of a series of rounds.
type Match struct {
	names  []string
	scores []int
	target int
	round  int
}

func New(names []string, target int) *Match {
	return &Match{
		names:  names,
		scores: make([]int, len(names)),
		target: target,
	}
}

func (m *Match) Names() []string {
	return m.names
}

func (m *Match) Scores() []int {
	scores := make([]int, len(m.scores))
	copy(scores, m.scores)
	return scores
}

func (m *Match) Target() int {
	return m.target
}

func (m *Match) Round() int {
	return m.round
}

// NextRound counts a new round and returns its number.
func (m *Match) NextRound() int {
	m.round++
	return m.round
}

// RecordRound credits the round winner and reports whether that won the match.
func (m *Match) RecordRound(winner, points int) bool {
	if winner < 0 || winner >= len(m.scores) {
		return false
	}
	m.scores[winner] += points
	return m.scores[winner] >= m.target
}

func (m *Match) Restart() {
	m.scores = make([]int, len(m.names))
	m.round = 0
}
