package game

import (
	"math/rand"

	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
)

// Persona is a bundle of scoring weights used by a bot for one turn.
type Persona struct {
	Name           string
	Impact         map[card.Value]float64
	DefaultImpact  float64
	ColorBias      float64
	DiversityBias  float64
	WildPenalty    float64
	HighPointsBias float64
	RandomProb     float64
	NextUnoScale   float64
}

func (p Persona) impact(value card.Value) float64 {
	if multiplier, ok := p.Impact[value]; ok {
		return multiplier
	}
	return p.DefaultImpact
}

var (
	Aggressive = Persona{
		Name:           "Aggressive",
		Impact:         map[card.Value]float64{card.WildDrawFour: 1.4, card.DrawTwo: 1.3, card.Skip: 1.2, card.Reverse: 1.0},
		DefaultImpact:  1.0,
		ColorBias:      1.0,
		DiversityBias:  1.0,
		WildPenalty:    2.0,
		HighPointsBias: 0.05,
		RandomProb:     0.08,
		NextUnoScale:   1.2,
	}
	Conservative = Persona{
		Name:           "Conservative",
		Impact:         map[card.Value]float64{card.WildDrawFour: 0.9, card.DrawTwo: 0.95, card.Skip: 1.0, card.Reverse: 1.0},
		DefaultImpact:  1.1,
		ColorBias:      1.2,
		DiversityBias:  1.1,
		WildPenalty:    5.0,
		HighPointsBias: 0.02,
		RandomProb:     0.07,
		NextUnoScale:   1.0,
	}
	Monochrome = Persona{
		Name:           "Monochrome",
		Impact:         map[card.Value]float64{},
		DefaultImpact:  1.0,
		ColorBias:      2.0,
		DiversityBias:  1.6,
		WildPenalty:    3.0,
		HighPointsBias: 0.03,
		RandomProb:     0.10,
		NextUnoScale:   1.0,
	}
	Chaotic = Persona{
		Name:           "Chaotic",
		Impact:         map[card.Value]float64{},
		DefaultImpact:  1.0,
		ColorBias:      0.8,
		DiversityBias:  0.8,
		WildPenalty:    2.0,
		HighPointsBias: 0.0,
		RandomProb:     0.35,
		NextUnoScale:   0.8,
	}
	Finisher = Persona{
		Name:           "Finisher",
		Impact:         map[card.Value]float64{card.WildDrawFour: 1.2, card.DrawTwo: 1.1, card.Skip: 1.1, card.Reverse: 1.0},
		DefaultImpact:  1.0,
		ColorBias:      1.0,
		DiversityBias:  1.2,
		WildPenalty:    3.5,
		HighPointsBias: 0.15,
		RandomProb:     0.12,
		NextUnoScale:   1.3,
	}

	Personas = []Persona{Aggressive, Conservative, Monochrome, Chaotic, Finisher}
)

// PersonaPicker hands out the persona a bot uses for its next turn.
type PersonaPicker interface {
	Pick() Persona
}

type randomPersonaPicker struct {
	rng *rand.Rand
}

func NewRandomPersonaPicker(rng *rand.Rand) PersonaPicker {
	return randomPersonaPicker{rng: rng}
}

func (p randomPersonaPicker) Pick() Persona {
	return Personas[p.rng.Intn(len(Personas))]
}

// FixedPersona always picks the same persona.
type FixedPersona Persona

func (p FixedPersona) Pick() Persona {
	return Persona(p)
}
