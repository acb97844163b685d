package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// White-box checks for the placement invariants: exact mine count, correct
// adjacency everywhere, and the first-click safe zone.

// mineCount recounts mines straight off the grid.
func mineCount(b *Board) int {
	n := 0
	for i := range b.cells {
		if b.cells[i].mine {
			n++
		}
	}
	return n
}

// recountAdjacent recomputes the 8-neighborhood mine count from scratch.
func recountAdjacent(b *Board, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.inBounds(x+dx, y+dy) && b.cells[b.index(x+dx, y+dy)].mine {
				n++
			}
		}
	}
	return n
}

func TestPlaceRandom_CountAndAdjacency(t *testing.T) {
	cases := []struct {
		name        string
		w, h, mines int
		sx, sy      int
	}{
		{"Beginner", 9, 9, 10, 4, 4},
		{"Intermediate", 16, 16, 40, 0, 0},
		{"Expert", 30, 16, 99, 29, 15},
		{"Narrow", 1, 50, 12, 0, 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := New(tc.w, tc.h, tc.mines, WithSeed(1))
			require.NoError(t, err)
			require.False(t, b.placed, "mines must not exist before the first reveal")

			require.NoError(t, b.Reveal(tc.sx, tc.sy))
			require.True(t, b.placed)
			require.Equal(t, tc.mines, mineCount(b))

			for y := 0; y < tc.h; y++ {
				for x := 0; x < tc.w; x++ {
					c := b.cells[b.index(x, y)]
					if c.mine {
						continue
					}
					require.Equalf(t, recountAdjacent(b, x, y), c.adjacent,
						"adjacency mismatch at (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestPlaceRandom_SafeZone(t *testing.T) {
	// Plenty of room: the clicked cell and all 8 neighbors stay clear,
	// so the first reveal is always a zero-adjacency cascade.
	for seed := int64(0); seed < 25; seed++ {
		b, err := New(9, 9, 10, WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, b.Reveal(4, 4))

		c := b.cells[b.index(4, 4)]
		require.False(t, c.mine)
		require.Zero(t, c.adjacent, "seed %d: first click must open a zero cell", seed)
		require.Equal(t, InProgress, b.State())
	}
}

func TestPlaceRandom_DenseBoardShrinksSafeZone(t *testing.T) {
	// 3x3 with 8 mines leaves room for nothing but the clicked cell. The
	// exclusion shrinks accordingly and the lone safe reveal wins outright.
	b, err := New(3, 3, 8, WithSeed(7))
	require.NoError(t, err)
	require.NoError(t, b.Reveal(1, 1))

	require.Equal(t, 8, mineCount(b))
	require.False(t, b.cells[b.index(1, 1)].mine)
	require.Equal(t, 8, b.cells[b.index(1, 1)].adjacent)
	require.Equal(t, Won, b.State())
}

func TestPlaceRandom_Deterministic(t *testing.T) {
	a, err := New(16, 16, 40, WithSeed(42))
	require.NoError(t, err)
	b, err := New(16, 16, 40, WithSeed(42))
	require.NoError(t, err)

	require.NoError(t, a.Reveal(8, 8))
	require.NoError(t, b.Reveal(8, 8))

	for i := range a.cells {
		require.Equal(t, a.cells[i].mine, b.cells[i].mine, "cell %d", i)
	}
	require.Equal(t, a.Snapshot(), b.Snapshot())
}
