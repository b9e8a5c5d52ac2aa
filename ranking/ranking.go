// Package ranking formats the top score list for display.
package ranking

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const (
	Title      = "Top 10 Scores"
	EmptyText  = "No scores yet. Play a game!"
	HeaderText = "Rank       Score"
)

// Lines returns one "rank score" row per entry, or the empty notice.
func Lines(scores []int) []string {
	if len(scores) == 0 {
		return []string{EmptyText}
	}
	lines := make([]string, len(scores))
	for i, score := range scores {
		lines[i] = fmt.Sprintf("%4d %11d", i+1, score)
	}
	return lines
}

// Print writes the ranking table to w. The best score is highlighted.
func Print(w io.Writer, scores []int) {
	title := color.New(color.FgYellow, color.Bold)
	header := color.New(color.FgCyan)
	best := color.New(color.FgGreen, color.Bold)
	row := color.New(color.FgWhite)

	title.Fprintln(w, Title)
	if len(scores) == 0 {
		row.Fprintln(w, EmptyText)
		return
	}
	header.Fprintln(w, HeaderText)
	for i, line := range Lines(scores) {
		if i == 0 {
			best.Fprintln(w, line)
			continue
		}
		row.Fprintln(w, line)
	}
}

// PrintSummary writes the result of a finished session followed by the ranking.
func PrintSummary(w io.Writer, score int, scores []int) {
	color.New(color.FgYellow).Fprintf(w, "Final score: %d\n", score)
	Print(w, scores)
}
