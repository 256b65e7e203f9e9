// Package card implements the 75-ball bingo card: a 5x5 grid with
// column-partitioned numbers, a free center, and a marked-cell mask.
package card

import (
	"fmt"
	"strings"
)

// Size is the grid dimension of a standard card.
const Size = 5

// CenterRow and CenterCol locate the free cell.
const (
	CenterRow = 2
	CenterCol = 2
)

// FreeValue is the reserved cell value for the free center.
const FreeValue = 0

// Grid is a card's numbers in row-major order.
type Grid [Size][Size]int

// Mask is the marked state of each cell, parallel to Grid.
type Mask [Size][Size]bool

// ColumnRange returns the inclusive numeric range assigned to a column:
// B 1-15, I 16-30, N 31-45, G 46-60, O 61-75.
func ColumnRange(col int) (low, high int) {
	low = col*15 + 1
	return low, low + 14
}

// Card is a single player's bingo card. The grid never changes after
// construction; marking only flips mask entries.
type Card struct {
	grid   Grid
	marked Mask
}

// New builds a Card from a row-major grid. The grid must be exactly 5x5;
// the center cell's mark is forced regardless of input.
func New(rows [][]int) (*Card, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("card grid must be %dx%d, got %d rows", Size, Size, len(rows))
	}
	c := &Card{}
	for r, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("card grid must be %dx%d, row %d has %d cells", Size, Size, r, len(row))
		}
		copy(c.grid[r][:], row)
	}
	c.marked[CenterRow][CenterCol] = true
	return c, nil
}

// fromGrid builds a Card from an already-shaped grid. Used by the generator.
func fromGrid(g Grid) *Card {
	c := &Card{grid: g}
	c.marked[CenterRow][CenterCol] = true
	return c
}

// Numbers returns every non-center value on the card in row-major order.
func (c *Card) Numbers() []int {
	nums := make([]int, 0, Size*Size-1)
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			if n := c.grid[r][col]; n != FreeValue {
				nums = append(nums, n)
			}
		}
	}
	return nums
}

// Position returns the (row, col) of a value on the card, or ok=false if the
// value is not present. The free center never matches.
func (c *Card) Position(n int) (row, col int, ok bool) {
	if n == FreeValue {
		return 0, 0, false
	}
	for r := 0; r < Size; r++ {
		for cl := 0; cl < Size; cl++ {
			if c.grid[r][cl] == n {
				return r, cl, true
			}
		}
	}
	return 0, 0, false
}

// Mark marks the cell holding n if present and reports whether it was found.
// Marking an absent or already-marked value is a no-op, never an error.
func (c *Card) Mark(n int) bool {
	r, cl, ok := c.Position(n)
	if !ok {
		return false
	}
	c.marked[r][cl] = true
	return true
}

// Marked reports whether the cell at (row, col) is marked.
func (c *Card) Marked(row, col int) bool {
	return c.marked[row][col]
}

// Value returns the number at (row, col).
func (c *Card) Value(row, col int) int {
	return c.grid[row][col]
}

// Grid returns a copy of the card's numbers.
func (c *Card) Grid() Grid {
	return c.grid
}

// Marks returns a copy of the card's mask.
func (c *Card) Marks() Mask {
	return c.marked
}

// Validate checks the structural invariants of a card: every non-center cell
// holds a nonzero value inside its column's range, no value repeats, and the
// center is the free cell with its mark set.
func (c *Card) Validate() error {
	seen := make(map[int]struct{}, Size*Size-1)
	for col := 0; col < Size; col++ {
		low, high := ColumnRange(col)
		for r := 0; r < Size; r++ {
			if r == CenterRow && col == CenterCol {
				continue
			}
			n := c.grid[r][col]
			if n < low || n > high {
				return fmt.Errorf("cell (%d,%d) value %d outside column range %d-%d", r, col, n, low, high)
			}
			if _, dup := seen[n]; dup {
				return fmt.Errorf("duplicate value %d on card", n)
			}
			seen[n] = struct{}{}
		}
	}
	if c.grid[CenterRow][CenterCol] != FreeValue {
		return fmt.Errorf("center cell must be free, got %d", c.grid[CenterRow][CenterCol])
	}
	if !c.marked[CenterRow][CenterCol] {
		return fmt.Errorf("center cell must be marked")
	}
	return nil
}

// Render returns a plain-text drawing of the card: a B I N G O header, one
// line per row, marked cells bracketed and the free center labeled FREE.
func (c *Card) Render() string {
	var b strings.Builder
	b.WriteString("  B    I    N    G    O")
	for r := 0; r < Size; r++ {
		b.WriteByte('\n')
		cells := make([]string, Size)
		for col := 0; col < Size; col++ {
			cell := fmt.Sprintf("%2d", c.grid[r][col])
			if r == CenterRow && col == CenterCol {
				cell = "FREE"
			}
			if c.marked[r][col] {
				cells[col] = fmt.Sprintf("[%3s]", cell)
			} else {
				cells[col] = fmt.Sprintf(" %3s ", cell)
			}
		}
		b.WriteString(strings.Join(cells, ""))
	}
	return b.String()
}
