// Package game orchestrates a multi-player bingo round: per-player cards,
// one draw pool, winner detection, and a serializable snapshot of the whole
// state. A Game is single-threaded; one control loop issues one operation at
// a time.
package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/minibingo/internal/card"
	"github.com/lox/minibingo/internal/draw"
	"github.com/lox/minibingo/internal/gameid"
	"github.com/lox/minibingo/internal/randutil"
	"github.com/lox/minibingo/internal/rules"
)

// ErrFinished is returned by DrawNext once the pool has been emptied.
var ErrFinished = errors.New("game already finished")

// ErrPlayerNotFound is returned for lookups of unknown player ids.
var ErrPlayerNotFound = errors.New("player not found")

// Config describes a new game. Seed is the optional master seed: when set,
// per-player card seeds and the pool seed are derived from it
// deterministically, so the same master seed replays the same game.
type Config struct {
	Players int
	Names   []string // optional, must match Players when supplied
	Seed    *int64
	Logger  *log.Logger
}

// Game is the controller for one bingo round.
type Game struct {
	id     string
	logger *log.Logger

	players  []*Player
	pool     *draw.Pool
	called   []int
	finished bool
	winners  []int
}

// New validates the config and builds a game with freshly generated cards
// and a full pool.
func New(cfg Config) (*Game, error) {
	if cfg.Players < 1 {
		return nil, fmt.Errorf("player count must be >= 1, got %d", cfg.Players)
	}
	if cfg.Names != nil && len(cfg.Names) != cfg.Players {
		return nil, fmt.Errorf("got %d names for %d players", len(cfg.Names), cfg.Players)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		id:     gameid.Generate(),
		logger: logger.WithPrefix("game"),
	}
	for i := 0; i < cfg.Players; i++ {
		name := fmt.Sprintf("Player %d", i+1)
		if cfg.Names != nil {
			name = cfg.Names[i]
		}
		g.players = append(g.players, &Player{ID: i + 1, Name: name})
	}
	g.deal(cfg.Seed)

	g.logger.Debug("Game created", "gameID", g.id, "players", cfg.Players, "seeded", cfg.Seed != nil)
	return g, nil
}

// deal regenerates every player's card and the pool from an optional master
// seed, and clears all round state.
func (g *Game) deal(masterSeed *int64) {
	n := uint64(len(g.players))
	for i, p := range g.players {
		var cardSeed int64
		if masterSeed != nil {
			cardSeed = randutil.Child(*masterSeed, uint64(i))
		} else {
			cardSeed = randutil.RandomSeed()
		}
		p.Card = card.Generate(cardSeed)
		p.HasBingo = false
		p.Lines = nil
	}
	if masterSeed != nil {
		g.pool = draw.New(randutil.Child(*masterSeed, n))
	} else {
		g.pool = draw.NewRandom()
	}
	g.called = nil
	g.finished = false
	g.winners = nil
}

// DrawResult reports the outcome of one DrawNext call.
type DrawResult struct {
	// Number is the drawn number.
	Number int
	// Marked records, per player id, whether that player's card held the
	// number.
	Marked map[int]bool
	// NewWinners lists the ids of players whose bingo status flipped to
	// true on this draw, in player-id order.
	NewWinners []int
	// Announcements holds one formatted string per new winner.
	Announcements []string
}

// DrawNext draws one number, marks every player's card, and detects players
// achieving their first bingo on this draw. The game transitions to finished
// when this draw empties the pool; any later call fails with ErrFinished.
func (g *Game) DrawNext() (*DrawResult, error) {
	if g.finished {
		return nil, ErrFinished
	}
	n, err := g.pool.Draw()
	if err != nil {
		return nil, fmt.Errorf("draw: %w", err)
	}
	g.called = append(g.called, n)

	res := &DrawResult{
		Number: n,
		Marked: make(map[int]bool, len(g.players)),
	}
	for _, p := range g.players {
		res.Marked[p.ID] = p.Mark(n)
	}

	// Players iterate in id order, so new winners come out id-ordered. A
	// player already in winners never re-enters, even when later draws
	// complete more of their lines.
	for _, p := range g.players {
		prev := p.HasBingo
		p.refreshStatus()
		if p.HasBingo && !prev {
			res.NewWinners = append(res.NewWinners, p.ID)
			g.winners = append(g.winners, p.ID)
			res.Announcements = append(res.Announcements,
				rules.FormatAnnouncement([]string{p.Name}, p.Lines))
			g.logger.Info("Bingo", "gameID", g.id, "player", p.Name, "number", n)
		}
	}

	if g.pool.IsEmpty() {
		g.finished = true
		g.logger.Debug("Pool exhausted, game finished", "gameID", g.id)
	}

	g.logger.Debug("Number drawn", "gameID", g.id, "number", n, "remaining", g.pool.Remaining())
	return res, nil
}

// PeekNext reports the number the next DrawNext would call without mutating
// any state, or ok=false when the pool is empty.
func (g *Game) PeekNext() (n int, ok bool) {
	return g.pool.Peek()
}

// PlayerByID returns the player with the given id.
func (g *Game) PlayerByID(id int) (*Player, error) {
	for _, p := range g.players {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("player %d: %w", id, ErrPlayerNotFound)
}

// Players returns the players in id order. The slice is a copy.
func (g *Game) Players() []*Player {
	out := make([]*Player, len(g.players))
	copy(out, g.players)
	return out
}

// Winners returns the ids of players in order of first bingo. The slice is
// a copy.
func (g *Game) Winners() []int {
	out := make([]int, len(g.winners))
	copy(out, g.winners)
	return out
}

// Called returns the full call history in draw order. The slice is a copy.
func (g *Game) Called() []int {
	out := make([]int, len(g.called))
	copy(out, g.called)
	return out
}

// Remaining returns how many numbers are left in the pool.
func (g *Game) Remaining() int {
	return g.pool.Remaining()
}

// Finished reports whether the pool has been drained.
func (g *Game) Finished() bool {
	return g.finished
}

// ID returns the generated identifier for this game instance.
func (g *Game) ID() string {
	return g.id
}

// Reset starts a new round with the same player identities but fresh cards
// and a fresh pool. With a master seed the new round is fully reproducible;
// without one every component reseeds nondeterministically.
func (g *Game) Reset(masterSeed *int64) {
	g.deal(masterSeed)
	g.logger.Debug("Game reset", "gameID", g.id, "seeded", masterSeed != nil)
}
