// Package simulator runs batches of seeded bingo games to completion and
// aggregates draws-to-first-win statistics.
package simulator

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/minibingo/internal/game"
	"github.com/lox/minibingo/internal/randutil"
	"github.com/lox/minibingo/internal/statistics"
)

// Config holds configuration for a simulation run.
type Config struct {
	Games       int
	Players     int
	Seed        int64
	Parallelism int // concurrent games; <= 1 means sequential
	Logger      *log.Logger
}

// Simulator plays full bingo games without a UI.
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{config: config, logger: logger.WithPrefix("simulator")}
}

// Run plays every game to its first bingo and returns the aggregate
// statistics. Each game gets an independent master seed derived from the
// run seed, so a run is reproducible regardless of parallelism.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	stats := &statistics.Statistics{}
	var mu sync.Mutex

	grp, ctx := errgroup.WithContext(ctx)
	limit := s.config.Parallelism
	if limit < 1 {
		limit = 1
	}
	grp.SetLimit(limit)

	for i := 0; i < s.config.Games; i++ {
		gameSeed := randutil.Child(s.config.Seed, uint64(i))
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.playGame(gameSeed)
			if err != nil {
				return fmt.Errorf("game with seed %d: %w", gameSeed, err)
			}
			mu.Lock()
			stats.Add(result)
			mu.Unlock()
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	s.logger.Debug("Simulation complete", "games", stats.Games, "meanDraws", stats.Mean())
	return stats, nil
}

// playGame runs one game until its first winner. A full card is certain by
// draw 75, so the loop always terminates.
func (s *Simulator) playGame(masterSeed int64) (statistics.GameResult, error) {
	g, err := game.New(game.Config{
		Players: s.config.Players,
		Seed:    &masterSeed,
		Logger:  s.config.Logger,
	})
	if err != nil {
		return statistics.GameResult{}, err
	}

	for {
		res, err := g.DrawNext()
		if err != nil {
			return statistics.GameResult{}, err
		}
		if len(res.NewWinners) > 0 {
			return statistics.GameResult{
				Seed:     masterSeed,
				Draws:    len(g.Called()),
				WinnerID: res.NewWinners[0],
			}, nil
		}
	}
}
