package color

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/fatih/color"
)

// Color is one of the four suit colors. Wild cards report a nil Color.
type Color interface {
	Name() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Name() string {
	return c.name
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction("%s", text)
}

func (c *colorStruct) Paintf(text string, args ...interface{}) string {
	return c.colorFunction(text, args...)
}

func (c *colorStruct) String() string {
	return c.Paint(c.name)
}

var Red = &colorStruct{
	name:          "Red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Yellow = &colorStruct{
	name:          "Yellow",
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

var Green = &colorStruct{
	name:          "Green",
	colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
}

var Blue = &colorStruct{
	name:          "Blue",
	colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
}

var Stdout io.Writer = color.Output

// All lists the colors in the order used for tie-breaking.
var All = []Color{Red, Yellow, Green, Blue}

var colors = map[string]Color{
	strings.ToLower(Red.name):    Red,
	strings.ToLower(Yellow.name): Yellow,
	strings.ToLower(Green.name):  Green,
	strings.ToLower(Blue.name):   Blue,
	"r":                          Red,
	"y":                          Yellow,
	"g":                          Green,
	"b":                          Blue,
}

func ByName(name string) (Color, error) {
	color := colors[strings.ToLower(strings.TrimSpace(name))]
	if color == nil {
		return nil, fmt.Errorf("invalid color '%s'", name)
	}
	return color, nil
}

// Valid reports whether c is one of the four suit colors.
func Valid(c Color) bool {
	for _, candidate := range All {
		if c == candidate {
			return true
		}
	}
	return false
}

func Random(rng *rand.Rand) Color {
	return All[rng.Intn(len(All))]
}

// Counts tallies how many of the given colors are present, skipping nil.
func Counts(colors []Color) map[Color]int {
	counts := make(map[Color]int, len(All))
	for _, c := range All {
		counts[c] = 0
	}
	for _, c := range colors {
		if c != nil {
			counts[c]++
		}
	}
	return counts
}
