package game

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// errAutoDone stops the ticker from inside its callback.
var errAutoDone = errors.New("auto-caller done")

// AutoCaller drives a game on a timer, drawing one number per tick until
// the first bingo or pool exhaustion. The clock is injected so tests can
// advance time synthetically.
type AutoCaller struct {
	game     *Game
	clock    quartz.Clock
	interval time.Duration
	logger   *log.Logger
}

// NewAutoCaller builds an auto-caller over g. A nil clock means real time.
func NewAutoCaller(g *Game, interval time.Duration, clock quartz.Clock, logger *log.Logger) *AutoCaller {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &AutoCaller{
		game:     g,
		clock:    clock,
		interval: interval,
		logger:   logger.WithPrefix("autocaller"),
	}
}

// Run draws on each tick, invoking onDraw after every draw, and returns once
// any player has bingo, the pool is drained, or ctx is cancelled. A game
// that is already finished returns ErrFinished.
func (a *AutoCaller) Run(ctx context.Context, onDraw func(*DrawResult)) error {
	if a.game.Finished() {
		return ErrFinished
	}

	w := a.clock.TickerFunc(ctx, a.interval, func() error {
		res, err := a.game.DrawNext()
		if err != nil {
			return err
		}
		if onDraw != nil {
			onDraw(res)
		}
		if len(a.game.Winners()) > 0 || a.game.Finished() {
			return errAutoDone
		}
		return nil
	}, "autocaller")

	err := w.Wait()
	switch {
	case errors.Is(err, errAutoDone):
		a.logger.Debug("Auto-calling stopped", "winners", a.game.Winners(), "finished", a.game.Finished())
		return nil
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return nil
	default:
		return err
	}
}
