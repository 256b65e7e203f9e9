package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/minibingo/internal/draw"
	"github.com/lox/minibingo/internal/gameid"
)

func seed(s int64) *int64 { return &s }

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{Players: 0})
	assert.Error(t, err)

	_, err = New(Config{Players: -3})
	assert.Error(t, err)

	_, err = New(Config{Players: 2, Names: []string{"Alice"}})
	assert.Error(t, err)

	g, err := New(Config{Players: 2, Names: []string{"Alice", "Bob"}})
	require.NoError(t, err)
	assert.Equal(t, "Alice", g.Players()[0].Name)
	assert.Equal(t, "Bob", g.Players()[1].Name)
	assert.NoError(t, gameid.Validate(g.ID()))
}

func TestDefaultPlayerNames(t *testing.T) {
	g, err := New(Config{Players: 2})
	require.NoError(t, err)
	assert.Equal(t, "Player 1", g.Players()[0].Name)
	assert.Equal(t, "Player 2", g.Players()[1].Name)
}

func TestSeededGamesHaveIdenticalTraces(t *testing.T) {
	runTrace := func() (numbers []int, winners []int) {
		g, err := New(Config{Players: 2, Seed: seed(42)})
		require.NoError(t, err)
		for !g.Finished() {
			res, err := g.DrawNext()
			require.NoError(t, err)
			numbers = append(numbers, res.Number)
		}
		return numbers, g.Winners()
	}

	nums1, winners1 := runTrace()
	nums2, winners2 := runTrace()
	assert.Equal(t, nums1, nums2)
	assert.Equal(t, winners1, winners2)
	assert.Len(t, nums1, draw.PoolSize)
}

func TestSeededGamesHaveIdenticalCards(t *testing.T) {
	a, err := New(Config{Players: 3, Seed: seed(7)})
	require.NoError(t, err)
	b, err := New(Config{Players: 3, Seed: seed(7)})
	require.NoError(t, err)
	for i := range a.Players() {
		assert.Equal(t, a.Players()[i].Card.Grid(), b.Players()[i].Card.Grid())
	}
}

func TestWinnerRecordedExactlyOnce(t *testing.T) {
	g, err := New(Config{Players: 2, Seed: seed(123)})
	require.NoError(t, err)

	firstWin := make(map[int]int) // id -> draw index of first bingo
	timesReported := make(map[int]int)

	for i := 0; !g.Finished(); i++ {
		res, err := g.DrawNext()
		require.NoError(t, err)
		for _, id := range res.NewWinners {
			timesReported[id]++
			if _, seen := firstWin[id]; !seen {
				firstWin[id] = i
			}
		}
	}

	// Both players eventually win over a full drain, and each is reported
	// as a new winner exactly once.
	require.Len(t, timesReported, 2)
	for id, count := range timesReported {
		assert.Equal(t, 1, count, "player %d reported as new winner %d times", id, count)
	}
	assert.Len(t, g.Winners(), 2)
}

func TestNewWinnersComeWithAnnouncements(t *testing.T) {
	g, err := New(Config{Players: 1, Seed: seed(5)})
	require.NoError(t, err)

	for !g.Finished() {
		res, err := g.DrawNext()
		require.NoError(t, err)
		require.Len(t, res.Announcements, len(res.NewWinners))
		for _, msg := range res.Announcements {
			assert.Contains(t, msg, "BINGO!")
		}
		if len(res.NewWinners) > 0 {
			break
		}
	}
	require.NotEmpty(t, g.Winners())
}

func TestDrainSetsFinishedExactlyOnEmptyingDraw(t *testing.T) {
	g, err := New(Config{Players: 1, Seed: seed(9)})
	require.NoError(t, err)

	for i := 0; i < draw.PoolSize; i++ {
		assert.False(t, g.Finished(), "finished before draw %d", i)
		_, err := g.DrawNext()
		require.NoError(t, err)
	}
	assert.True(t, g.Finished())
	assert.Equal(t, 0, g.Remaining())

	_, err = g.DrawNext()
	assert.ErrorIs(t, err, ErrFinished)
}

func TestPeekNextAgreesWithDraw(t *testing.T) {
	g, err := New(Config{Players: 1, Seed: seed(3)})
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		peeked, ok := g.PeekNext()
		require.True(t, ok)
		res, err := g.DrawNext()
		require.NoError(t, err)
		assert.Equal(t, peeked, res.Number)
	}
}

func TestMarkedMapCoversAllPlayers(t *testing.T) {
	g, err := New(Config{Players: 3, Seed: seed(11)})
	require.NoError(t, err)
	res, err := g.DrawNext()
	require.NoError(t, err)
	assert.Len(t, res.Marked, 3)
	for _, p := range g.Players() {
		_, present := res.Marked[p.ID]
		assert.True(t, present)
	}
}

func TestPlayerByID(t *testing.T) {
	g, err := New(Config{Players: 2})
	require.NoError(t, err)

	p, err := g.PlayerByID(2)
	require.NoError(t, err)
	assert.Equal(t, 2, p.ID)

	_, err = g.PlayerByID(99)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestSnapshotIsDetached(t *testing.T) {
	g, err := New(Config{Players: 2, Seed: seed(21)})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		_, err := g.DrawNext()
		require.NoError(t, err)
	}

	snap := g.Snapshot()
	assert.Equal(t, g.ID(), snap.GameID)
	assert.Len(t, snap.Called, 10)
	assert.Equal(t, draw.PoolSize-10, snap.PoolRemaining)
	require.Len(t, snap.Players, 2)

	// Mutating the snapshot must not leak back into the game.
	snap.Called[0] = -1
	snap.Winners = append(snap.Winners, 99)
	snap.Players[0].Grid[0][0] = -1
	assert.NotEqual(t, -1, g.Called()[0])
	assert.NotContains(t, g.Winners(), 99)
	assert.NotEqual(t, -1, g.Players()[0].Card.Value(0, 0))
}

func TestSnapshotLinesKeepGrowingAfterFirstWin(t *testing.T) {
	g, err := New(Config{Players: 1, Seed: seed(13)})
	require.NoError(t, err)

	var linesAtWin int
	for !g.Finished() {
		res, err := g.DrawNext()
		require.NoError(t, err)
		if len(res.NewWinners) > 0 {
			linesAtWin = len(g.Snapshot().Players[0].Lines)
			break
		}
	}
	require.NotZero(t, linesAtWin)

	// Drain the rest; a fully marked card completes all 12 lines while the
	// winners list stays frozen at the first win.
	for !g.Finished() {
		_, err := g.DrawNext()
		require.NoError(t, err)
	}
	snap := g.Snapshot()
	assert.Len(t, snap.Players[0].Lines, 12)
	assert.GreaterOrEqual(t, 12, linesAtWin)
	assert.Equal(t, []int{1}, snap.Winners)
}

func TestResetPreservesIdentitiesAndClearsState(t *testing.T) {
	g, err := New(Config{Players: 2, Names: []string{"Alice", "Bob"}, Seed: seed(42)})
	require.NoError(t, err)
	for i := 0; i < 15; i++ {
		_, err := g.DrawNext()
		require.NoError(t, err)
	}

	oldGrid := g.Players()[0].Card.Grid()
	g.Reset(seed(1000))

	assert.Equal(t, "Alice", g.Players()[0].Name)
	assert.Equal(t, 1, g.Players()[0].ID)
	assert.Empty(t, g.Called())
	assert.Empty(t, g.Winners())
	assert.False(t, g.Finished())
	assert.Equal(t, draw.PoolSize, g.Remaining())
	assert.NotEqual(t, oldGrid, g.Players()[0].Card.Grid())
}

func TestResetWithSeedIsReproducible(t *testing.T) {
	g, err := New(Config{Players: 2, Seed: seed(1)})
	require.NoError(t, err)
	g.Reset(seed(500))
	gridA := g.Players()[0].Card.Grid()
	gridB := g.Players()[1].Card.Grid()
	resA, err := g.DrawNext()
	require.NoError(t, err)

	// A fresh game constructed with the same master seed matches the reset
	// game exactly.
	h, err := New(Config{Players: 2, Seed: seed(500)})
	require.NoError(t, err)
	assert.Equal(t, gridA, h.Players()[0].Card.Grid())
	assert.Equal(t, gridB, h.Players()[1].Card.Grid())
	resB, err := h.DrawNext()
	require.NoError(t, err)
	assert.Equal(t, resA.Number, resB.Number)
}

func TestRenderCardsText(t *testing.T) {
	g, err := New(Config{Players: 2, Names: []string{"Alice", "Bob"}, Seed: seed(8)})
	require.NoError(t, err)
	out := g.RenderCardsText()
	assert.Contains(t, out, "=== Alice (P1) ===")
	assert.Contains(t, out, "=== Bob (P2) ===")
	assert.Contains(t, out, "FREE")
}
