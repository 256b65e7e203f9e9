package game

import (
	"github.com/lox/minibingo/internal/card"
	"github.com/lox/minibingo/internal/rules"
)

// PlayerSnapshot is a copied view of one player's state.
type PlayerSnapshot struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	HasBingo bool            `json:"has_bingo"`
	Lines    []rules.WinLine `json:"lines"`
	Grid     card.Grid       `json:"grid"`
	Marks    card.Mask       `json:"marks"`
}

// Snapshot is a copied, serializable view of the whole game. Mutating it
// cannot affect the live game.
type Snapshot struct {
	GameID        string           `json:"game_id"`
	Called        []int            `json:"called"`
	PoolRemaining int              `json:"pool_remaining"`
	Finished      bool             `json:"finished"`
	Winners       []int            `json:"winners"`
	Players       []PlayerSnapshot `json:"players"`
}

// Snapshot captures the current game state. Every slice and grid in the
// result is a copy.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		GameID:        g.id,
		Called:        g.Called(),
		PoolRemaining: g.pool.Remaining(),
		Finished:      g.finished,
		Winners:       g.Winners(),
		Players:       make([]PlayerSnapshot, 0, len(g.players)),
	}
	for _, p := range g.players {
		lines := make([]rules.WinLine, len(p.Lines))
		copy(lines, p.Lines)
		snap.Players = append(snap.Players, PlayerSnapshot{
			ID:       p.ID,
			Name:     p.Name,
			HasBingo: p.HasBingo,
			Lines:    lines,
			Grid:     p.Card.Grid(),
			Marks:    p.Card.Marks(),
		})
	}
	return snap
}
