// Package rules detects completed lines on a bingo card and formats winner
// announcements. All functions are pure over the card's mask; Mark is the
// only entry point that mutates.
package rules

import (
	"fmt"

	"github.com/lox/minibingo/internal/card"
)

// LineKind tags a completed line as a row, column or diagonal.
type LineKind string

const (
	Row  LineKind = "row"
	Col  LineKind = "col"
	Diag LineKind = "diag"
)

// Diagonal indexes.
const (
	DiagMain = 0
	DiagAnti = 1
)

// WinLine describes one completed line on a card. Index is 0-4 for rows and
// columns, DiagMain or DiagAnti for diagonals.
type WinLine struct {
	Kind  LineKind `json:"kind"`
	Index int      `json:"index"`
}

// Label renders a human-readable name: rows and columns 1-indexed ("row 2",
// "col 5"), diagonals "diag main" / "diag anti".
func (w WinLine) Label() string {
	if w.Kind == Diag {
		if w.Index == DiagMain {
			return "diag main"
		}
		return "diag anti"
	}
	return fmt.Sprintf("%s %d", w.Kind, w.Index+1)
}

// Result bundles bingo status with the completed lines behind it.
type Result struct {
	HasBingo bool
	Lines    []WinLine
}

// Mark marks n on the card if present and reports whether it marked.
func Mark(c *card.Card, n int) bool {
	return c.Mark(n)
}

// WinningLines returns every currently complete line: rows ascending, then
// columns ascending, then the main diagonal, then the anti-diagonal.
func WinningLines(c *card.Card) []WinLine {
	var lines []WinLine
	for r := 0; r < card.Size; r++ {
		if rowComplete(c, r) {
			lines = append(lines, WinLine{Kind: Row, Index: r})
		}
	}
	for col := 0; col < card.Size; col++ {
		if colComplete(c, col) {
			lines = append(lines, WinLine{Kind: Col, Index: col})
		}
	}
	if diagComplete(c, DiagMain) {
		lines = append(lines, WinLine{Kind: Diag, Index: DiagMain})
	}
	if diagComplete(c, DiagAnti) {
		lines = append(lines, WinLine{Kind: Diag, Index: DiagAnti})
	}
	return lines
}

// Evaluate reports whether the card has bingo along with its full line list.
func Evaluate(c *card.Card) Result {
	lines := WinningLines(c)
	return Result{HasBingo: len(lines) > 0, Lines: lines}
}

func rowComplete(c *card.Card, r int) bool {
	for col := 0; col < card.Size; col++ {
		if !c.Marked(r, col) {
			return false
		}
	}
	return true
}

func colComplete(c *card.Card, col int) bool {
	for r := 0; r < card.Size; r++ {
		if !c.Marked(r, col) {
			return false
		}
	}
	return true
}

func diagComplete(c *card.Card, which int) bool {
	for i := 0; i < card.Size; i++ {
		col := i
		if which == DiagAnti {
			col = card.Size - 1 - i
		}
		if !c.Marked(i, col) {
			return false
		}
	}
	return true
}
