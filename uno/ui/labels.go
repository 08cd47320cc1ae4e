package ui

const initialRune = 'A'

type runeSequence struct {
	currentRune rune
}

func (s *runeSequence) next() rune {
	if s.currentRune == 0 {
		s.currentRune = initialRune
	}
	currentRune := s.currentRune
	s.currentRune++
	return currentRune
}

// labels returns "A", "B", ... for n options.
func labels(n int) []string {
	sequence := runeSequence{}
	result := make([]string, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, string(sequence.next()))
	}
	return result
}
