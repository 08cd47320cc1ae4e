package card

import "strconv"

type Value string

const (
	Skip         Value = "Skip"
	Reverse      Value = "Reverse"
	DrawTwo      Value = "+2"
	Wild         Value = "Wild"
	WildDrawFour Value = "+4"
)

func NumberValue(number int) Value {
	return Value(strconv.Itoa(number))
}

// Number returns the face value of a number card value. Only a single digit
// counts, so "+2" and "+4" are not numbers.
func (v Value) Number() (int, bool) {
	if len(v) != 1 || v[0] < '0' || v[0] > '9' {
		return 0, false
	}
	return int(v[0] - '0'), true
}
