package ui

import (
	"fmt"
	"strings"

	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
)

// PromptString reads the next non-empty line. A closed input is reported as
// consts.ErrInputClosed.
func (c *Console) PromptString(message string) (string, error) {
	for {
		c.print(message)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return "", err
			}
			return "", consts.ErrInputClosed
		}
		input := strings.TrimSpace(c.in.Text())
		if input == "" {
			c.print("Invalid text input")
			continue
		}
		return input, nil
	}
}

func (c *Console) promptUppercaseString(message string) (string, error) {
	input, err := c.PromptString(message)
	return strings.ToUpper(input), err
}

// PromptChoice lists options under letter labels and returns the index of the
// one picked.
func (c *Console) PromptChoice(title string, options []string) (int, error) {
	optionLabels := labels(len(options))
	lines := []string{title}
	for index, option := range options {
		lines = append(lines, fmt.Sprintf("%s (enter %s)", option, optionLabels[index]))
	}
	message := strings.Join(lines, "\n")

	for {
		selected, err := c.promptUppercaseString(message)
		if err != nil {
			return -1, err
		}
		for index, label := range optionLabels {
			if label == selected {
				return index, nil
			}
		}
		c.print(fmt.Sprintf("No option assigned to '%s'", selected))
	}
}

func (c *Console) PromptColor() (color.Color, error) {
	colorMessage := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
	for {
		colorName, err := c.PromptString(colorMessage)
		if err != nil {
			return nil, err
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil {
			c.print(fmt.Sprintf("Unknown color '%s'", colorName))
			continue
		}
		return chosenColor, nil
	}
}

// PromptPlus4Decision reports true when the player challenges the +4.
func (c *Console) PromptPlus4Decision() (bool, error) {
	index, err := c.PromptChoice("A +4 was played on you:", []string{"Accept +4 (Draw 4)", "Challenge +4"})
	if err != nil {
		return false, err
	}
	return index == 1, nil
}
