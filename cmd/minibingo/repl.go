package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lox/minibingo/internal/game"
)

// repl is the plain-text interactive loop: one command per line, state
// printed after each.
type repl struct {
	game  *game.Game
	delay time.Duration
	in    io.Reader
	out   io.Writer
}

func newREPL(g *game.Game, delay time.Duration, in io.Reader, out io.Writer) *repl {
	return &repl{game: g, delay: delay, in: in, out: out}
}

func (r *repl) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *repl) printHeader() {
	r.printf("%s\n", strings.Repeat("=", 60))
	r.printf("Players:\n")
	for _, p := range r.game.Players() {
		r.printf("  P%d: %s\n", p.ID, p.Name)
	}
	r.printf("%s\n", strings.Repeat("=", 60))
}

func (r *repl) showStatus() {
	snap := r.game.Snapshot()
	called := "(none)"
	if len(snap.Called) > 0 {
		parts := make([]string, len(snap.Called))
		for i, n := range snap.Called {
			parts[i] = strconv.Itoa(n)
		}
		called = strings.Join(parts, ", ")
	}
	r.printf("Numbers called (%d): %s\n", len(snap.Called), called)
	r.printf("Remaining in pool: %d\n", snap.PoolRemaining)

	if len(snap.Winners) == 0 {
		r.printf("No winners yet.\n")
		return
	}
	r.printf("Winners so far:\n")
	for _, id := range snap.Winners {
		p, err := r.game.PlayerByID(id)
		if err != nil {
			continue
		}
		labels := make([]string, 0, len(p.Lines))
		for _, l := range p.Lines {
			labels = append(labels, l.Label())
		}
		r.printf("  %s (P%d) — %s\n", p.Name, p.ID, strings.Join(labels, ", "))
	}
}

func (r *repl) showCards() {
	r.printf("%s\n", r.game.RenderCardsText())
}

// stepDraw draws one number and prints the outcome. It reports whether the
// game can continue drawing.
func (r *repl) stepDraw() bool {
	res, err := r.game.DrawNext()
	if err != nil {
		if errors.Is(err, game.ErrFinished) {
			r.printf("\nDraw pool exhausted — game over.\n")
			return false
		}
		r.printf("\nDraw failed: %v\n", err)
		return false
	}
	r.printDrawResult(res)
	return !r.game.Finished()
}

func (r *repl) printDrawResult(res *game.DrawResult) {
	r.printf("\nNumber drawn: %d\n", res.Number)

	var markedBy []string
	for _, p := range r.game.Players() {
		if res.Marked[p.ID] {
			markedBy = append(markedBy, p.Name)
		}
	}
	if len(markedBy) > 0 {
		r.printf("Marked by: %s\n", strings.Join(markedBy, ", "))
	} else {
		r.printf("No player had it.\n")
	}

	for _, msg := range res.Announcements {
		r.printf("\n%s\n%s\n%s\n", strings.Repeat("!", 8), msg, strings.Repeat("!", 8))
	}
}

// autoToFirstWin draws on a timer until the first bingo or exhaustion.
func (r *repl) autoToFirstWin(ctx context.Context) error {
	ac := game.NewAutoCaller(r.game, r.delay, nil, nil)
	err := ac.Run(ctx, r.printDrawResult)
	if err != nil && !errors.Is(err, game.ErrFinished) {
		return err
	}
	r.printf("\n")
	r.showStatus()
	return nil
}

// loop runs the interactive command loop until quit, EOF or cancellation.
func (r *repl) loop(ctx context.Context) error {
	r.printHeader()
	r.showStatus()
	r.showCards()

	scanner := bufio.NewScanner(r.in)
	for {
		r.printf("\n[D]raw  [P]eek  [S]tatus  [C]ards  [A]uto  [R]eset  [Q]uit\n> ")
		if !scanner.Scan() {
			r.printf("\n")
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return nil
		}

		fields := strings.Fields(strings.ToLower(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "d", "draw":
			if !r.stepDraw() {
				return nil
			}

		case "p", "peek":
			if n, ok := r.game.PeekNext(); ok {
				r.printf("Next up (peek): %d\n", n)
			} else {
				r.printf("Next up (peek): (pool empty)\n")
			}

		case "s", "status":
			r.showStatus()

		case "c", "cards":
			r.showCards()

		case "a", "auto":
			if err := r.autoToFirstWin(ctx); err != nil {
				return err
			}

		case "r", "reset":
			var seed *int64
			if len(fields) > 1 {
				n, err := strconv.ParseInt(fields[1], 10, 64)
				if err != nil {
					r.printf("Bad seed %q — usage: reset [seed]\n", fields[1])
					continue
				}
				seed = &n
			}
			r.game.Reset(seed)
			r.printf("New round — fresh cards, full pool.\n")
			r.showCards()

		case "q", "quit", "exit":
			r.printf("Goodbye!\n")
			return nil

		default:
			r.printf("Unknown command — try D/P/S/C/A/R/Q\n")
		}
	}
}
