package msg

import (
	"fmt"
	"strings"

	"github.com/miguel-rebelo-hq/UnoAI/uno/card"
	"github.com/miguel-rebelo-hq/UnoAI/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	return fmt.Sprintf(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) RoundStarted(round int) string {
	return fmt.Sprintf("Round %d started. Official rules, +4 challenge enabled. Draw 1 if you cannot play.", round)
}

func (m MessageWriter) FirstCardPlayed(c card.Card, startingPlayer string) string {
	return fmt.Sprintf("First card is %s, %s starts", c, startingPlayer)
}

func (m MessageWriter) StartingColorNeeded(playerName string) string {
	return fmt.Sprintf("Starting card is Wild. %s chooses the starting color.", playerName)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return fmt.Sprintf("It's your turn, %s!", playerName)
}

func (m MessageWriter) HumanPlayerHitByPlus4() string {
	return "You were hit by +4. Accept or Challenge."
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return fmt.Sprintf("You drew %s!", joinCards(cards))
}

func (m MessageWriter) PlayerDrewCards(playerName string, count int) string {
	if count == 1 {
		return fmt.Sprintf("%s drew a card!", playerName)
	}
	return fmt.Sprintf("%s drew %d cards!", playerName, count)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return fmt.Sprintf("%s drew and ended the turn.", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, c color.Color) string {
	return fmt.Sprintf("%s chose color %s.", playerName, c)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card) string {
	if c.Value() == card.WildDrawFour {
		return fmt.Sprintf("%s played %s. Waiting for target to accept or challenge.", playerName, c)
	}
	return fmt.Sprintf("%s played %s.", playerName, c)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return fmt.Sprintf("%s was skipped.", playerName)
}

func (m MessageWriter) TurnOrderReversed() string {
	return "Direction reversed."
}

func (m MessageWriter) Plus4Accepted(targetName string) string {
	return fmt.Sprintf("%s accepted +4 and drew 4.", targetName)
}

func (m MessageWriter) Plus4ChallengeFailed(targetName string) string {
	return fmt.Sprintf("%s challenged +4 and failed, drew 6 and was skipped.", targetName)
}

func (m MessageWriter) Plus4ChallengeSucceeded(targetName, playedByName string) string {
	return fmt.Sprintf("%s challenged +4 successfully. %s drew 4.", targetName, playedByName)
}

func (m MessageWriter) UnoCalled(playerName string) string {
	return fmt.Sprintf("%s called UNO!", playerName)
}

func (m MessageWriter) UnoChallenged(playerName string, penalized bool) string {
	if penalized {
		return fmt.Sprintf("%s forgot to call UNO and drew 2!", playerName)
	}
	return fmt.Sprintf("UNO challenge failed, %s is safe.", playerName)
}

func (m MessageWriter) WinnerFound(playerName string, points int) string {
	return fmt.Sprintf("%s wins the round and earns %d points!", playerName, points)
}

func (m MessageWriter) MatchWon(playerName string, score int) string {
	return fmt.Sprintf("%s wins the match with %d points!", playerName, score)
}

func (m MessageWriter) MatchRestarted() string {
	return "Match restarted."
}

func joinCards(cards []card.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}
