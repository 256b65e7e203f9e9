package game

import (
	"fmt"
	"strings"
)

// RenderCardsText returns a plain-text dump of every player's card, usable
// by any text UI.
func (g *Game) RenderCardsText() string {
	parts := make([]string, 0, len(g.players))
	for _, p := range g.players {
		parts = append(parts, fmt.Sprintf("=== %s (P%d) ===\n%s", p.Name, p.ID, p.Card.Render()))
	}
	return strings.Join(parts, "\n\n")
}
