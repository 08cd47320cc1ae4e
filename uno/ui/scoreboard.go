package ui

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Scoreboard prints the cumulative match scores.
func (c *Console) Scoreboard(names []string, scores []int, target int) {
	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetTitle(fmt.Sprintf("Scoreboard (to %d)", target))
	t.AppendHeader(table.Row{"Player", "Points"})
	for seat, name := range names {
		t.AppendRow(table.Row{name, scores[seat]})
	}
	t.SetStyle(table.StyleLight)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 12},
		{Number: 2, Align: text.AlignRight, WidthMin: 8},
	})
	t.Render()
}
