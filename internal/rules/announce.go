package rules

import (
	"fmt"
	"strings"
)

// FormatAnnouncement builds the display string for one or more winners:
//
//	Player Alice: BINGO! (row 2, diag main)
//	Players Alice, Bob: BINGO! (col 5)
//
// Duplicate line labels are collapsed, keeping first-seen order. With no
// lines the parenthetical is omitted entirely.
func FormatAnnouncement(names []string, lines []WinLine) string {
	noun := "Player"
	if len(names) > 1 {
		noun = "Players"
	}
	msg := fmt.Sprintf("%s %s: BINGO!", noun, strings.Join(names, ", "))

	labels := dedupLabels(lines)
	if len(labels) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (%s)", msg, strings.Join(labels, ", "))
}

func dedupLabels(lines []WinLine) []string {
	seen := make(map[string]struct{}, len(lines))
	var labels []string
	for _, l := range lines {
		label := l.Label()
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	return labels
}
