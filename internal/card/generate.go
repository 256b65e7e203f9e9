package card

import (
	rand "math/rand/v2"
	"sort"

	"github.com/lox/minibingo/internal/randutil"
)

// Generator produces valid cards from an injected random source. A seeded
// source yields byte-identical grids on every run.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds one card: each column samples its range without
// replacement (four numbers for the center column, five otherwise), sorts
// ascending, and places top to bottom, skipping the free center.
func (g *Generator) Generate() *Card {
	var grid Grid
	for col := 0; col < Size; col++ {
		need := Size
		if col == CenterCol {
			need = Size - 1
		}
		nums := g.sample(col, need)
		sort.Ints(nums)

		i := 0
		for r := 0; r < Size; r++ {
			if r == CenterRow && col == CenterCol {
				grid[r][col] = FreeValue
				continue
			}
			grid[r][col] = nums[i]
			i++
		}
	}

	c := fromGrid(grid)
	// Sampling guarantees validity; re-verify anyway rather than trust it.
	if err := c.Validate(); err != nil {
		panic("card: generated invalid card: " + err.Error())
	}
	return c
}

// sample picks need distinct numbers from col's range.
func (g *Generator) sample(col, need int) []int {
	low, high := ColumnRange(col)
	pool := make([]int, 0, high-low+1)
	for n := low; n <= high; n++ {
		pool = append(pool, n)
	}
	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:need]
}

// Generate produces a card from a deterministic seed. The same seed always
// yields the same grid.
func Generate(seed int64) *Card {
	return NewGenerator(randutil.New(seed)).Generate()
}

// GenerateRandom produces a card from a fresh nondeterministic seed.
func GenerateRandom() *Card {
	return Generate(randutil.RandomSeed())
}
