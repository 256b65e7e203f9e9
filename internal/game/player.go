package game

import (
	"github.com/lox/minibingo/internal/card"
	"github.com/lox/minibingo/internal/rules"
)

// Player is one participant in a game: an identity, a card, and cached
// bingo status. Players belong to exactly one Game, which drives every
// mutation.
type Player struct {
	ID   int
	Name string
	Card *card.Card

	HasBingo bool
	Lines    []rules.WinLine
}

// Mark marks n on the player's card, reporting whether the card held it.
func (p *Player) Mark(n int) bool {
	return rules.Mark(p.Card, n)
}

// refreshStatus re-evaluates the card and caches the result.
func (p *Player) refreshStatus() {
	res := rules.Evaluate(p.Card)
	p.HasBingo = res.HasBingo
	p.Lines = res.Lines
}
