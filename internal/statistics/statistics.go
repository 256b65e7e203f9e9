// Package statistics aggregates results across simulated bingo games,
// mainly the distribution of how many draws a game needs to produce its
// first winner.
package statistics

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Seed     int64 // master seed for this game (for replay)
	Draws    int   // calls made until the first bingo
	WinnerID int   // id of the first winner
}

// Statistics tracks the draws-to-first-bingo distribution and winner spread.
type Statistics struct {
	Games     int
	SumDraws  float64
	SumDraws2 float64 // sum of squares for variance
	Values    []float64

	MinDraws int
	MaxDraws int

	WinnerCounts map[int]int
}

// Add records one game result.
func (s *Statistics) Add(r GameResult) {
	d := float64(r.Draws)
	s.Games++
	s.SumDraws += d
	s.SumDraws2 += d * d
	s.Values = append(s.Values, d)

	if s.Games == 1 || r.Draws < s.MinDraws {
		s.MinDraws = r.Draws
	}
	if r.Draws > s.MaxDraws {
		s.MaxDraws = r.Draws
	}

	if s.WinnerCounts == nil {
		s.WinnerCounts = make(map[int]int)
	}
	s.WinnerCounts[r.WinnerID]++
}

// Mean returns the average draws to first bingo.
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumDraws / float64(s.Games)
}

// Variance returns the sample variance of draws to first bingo.
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	n := float64(s.Games)
	return (s.SumDraws2 - s.SumDraws*s.SumDraws/n) / (n - 1)
}

// StdDev returns the sample standard deviation.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Percentile returns the p-th percentile (0-100) of draws to first bingo.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	idx := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Validate checks internal consistency after a run.
func (s *Statistics) Validate() error {
	if s.Games != len(s.Values) {
		return fmt.Errorf("games count %d does not match %d recorded values", s.Games, len(s.Values))
	}
	total := 0
	for _, c := range s.WinnerCounts {
		total += c
	}
	if total != s.Games {
		return fmt.Errorf("winner counts sum to %d for %d games", total, s.Games)
	}
	return nil
}

// Summary renders a human-readable report.
func (s *Statistics) Summary() string {
	if s.Games == 0 {
		return "no games played"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Games:             %d\n", s.Games)
	fmt.Fprintf(&b, "Draws to bingo:    mean %.1f, stddev %.1f\n", s.Mean(), s.StdDev())
	fmt.Fprintf(&b, "                   min %d, median %.0f, p90 %.0f, max %d\n",
		s.MinDraws, s.Percentile(50), s.Percentile(90), s.MaxDraws)

	ids := make([]int, 0, len(s.WinnerCounts))
	for id := range s.WinnerCounts {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	b.WriteString("First winner:      ")
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		c := s.WinnerCounts[id]
		parts = append(parts, fmt.Sprintf("P%d %d (%.1f%%)", id, c, 100*float64(c)/float64(s.Games)))
	}
	b.WriteString(strings.Join(parts, ", "))
	return b.String()
}
