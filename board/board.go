package board

import (
	"fmt"
	"math/rand"
	"time"
)

// neighborOffsets spans the 8-connected neighborhood.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

type cell struct {
	mine     bool
	adjacent int
	vis      Visibility
}

// Board owns a width×height grid of cells and the game state machine
// NotStarted → InProgress → {Won, Lost}. The zero value is not usable;
// construct with New.
type Board struct {
	width, height int
	mines         int
	cells         []cell // row-major, index = y*width + x
	state         State
	revealed      int
	flagged       int
	placed        bool
	rng           *rand.Rand
}

// New allocates a hidden board of the given dimensions holding mines mines.
// It returns ErrInvalidConfig when a dimension is not positive or the mine
// count is outside (0, width*height).
func New(width, height, mines int, opts ...Option) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfig, width, height)
	}
	if mines <= 0 || mines >= width*height {
		return nil, fmt.Errorf("%w: %d mines on a %dx%d grid", ErrInvalidConfig, mines, width, height)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	seed := cfg.seed
	if !cfg.seeded {
		seed = time.Now().UnixNano()
	}

	b := &Board{
		width:  width,
		height: height,
		mines:  mines,
		cells:  make([]cell, width*height),
		rng:    rand.New(rand.NewSource(seed)),
	}
	if cfg.layout != nil {
		if err := b.placeFixed(cfg.layout); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Mines returns the total number of mines on the board.
func (b *Board) Mines() int { return b.mines }

// State returns the current game state.
func (b *Board) State() State { return b.state }

// Status returns aggregate counters for the board. Read-only.
func (b *Board) Status() Status {
	return Status{
		State:          b.state,
		Revealed:       b.revealed,
		Flagged:        b.flagged,
		MinesRemaining: b.mines - b.flagged,
	}
}

// CellView returns the render state of the cell at (x, y).
func (b *Board) CellView(x, y int) (CellView, error) {
	if !b.inBounds(x, y) {
		return CellView{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return b.view(b.index(x, y)), nil
}

// Snapshot returns the render state of every cell, indexed [y][x]. The
// slice is freshly allocated; mutating it does not touch the board.
func (b *Board) Snapshot() [][]CellView {
	grid := make([][]CellView, b.height)
	for y := 0; y < b.height; y++ {
		grid[y] = make([]CellView, b.width)
		for x := 0; x < b.width; x++ {
			grid[y][x] = b.view(b.index(x, y))
		}
	}
	return grid
}

// Reveal opens the cell at (x, y).
//
// The first successful reveal places the mines (keeping the clicked cell
// and its neighbors clear) and moves the board to InProgress. Revealing a
// mine reveals every mine and ends the game as Lost. Revealing a
// zero-adjacency cell cascades through the connected zero region and its
// numbered border. Revealing the last non-mine cell ends the game as Won.
//
// Revealed and flagged cells are rejected with ErrInvalidTransition, as is
// any reveal on an ended board.
func (b *Board) Reveal(x, y int) error {
	if !b.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if b.state.Ended() {
		return fmt.Errorf("%w: game already %v", ErrInvalidTransition, b.state)
	}
	i := b.index(x, y)
	switch b.cells[i].vis {
	case Revealed:
		return fmt.Errorf("%w: (%d,%d) is already revealed", ErrInvalidTransition, x, y)
	case Flagged:
		return fmt.Errorf("%w: (%d,%d) is flagged; unflag it first", ErrInvalidTransition, x, y)
	}

	if !b.placed {
		b.placeRandom(x, y)
	}
	if b.state == NotStarted {
		b.state = InProgress
	}

	if b.cells[i].mine {
		b.explode(i)
		return nil
	}
	b.floodReveal(x, y)
	b.checkWin()
	return nil
}

// ToggleFlag flips the cell at (x, y) between Hidden and Flagged and
// returns the new flagged state. Revealed cells and ended boards are
// rejected with ErrInvalidTransition.
func (b *Board) ToggleFlag(x, y int) (bool, error) {
	if !b.inBounds(x, y) {
		return false, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if b.state.Ended() {
		return false, fmt.Errorf("%w: game already %v", ErrInvalidTransition, b.state)
	}
	c := &b.cells[b.index(x, y)]
	if c.vis == Revealed {
		return false, fmt.Errorf("%w: (%d,%d) is already revealed", ErrInvalidTransition, x, y)
	}
	if c.vis == Flagged {
		c.vis = Hidden
		b.flagged--
		return false, nil
	}
	c.vis = Flagged
	b.flagged++
	return true, nil
}

// Chord opens every unflagged hidden neighbor of a revealed cell whose
// flag count satisfies its number, the classic both-buttons move. When the
// flag count does not match, Chord is a no-op. A mis-placed flag makes a
// chord open a mine and lose the game.
//
// Chording a cell that is not revealed, or an ended board, is rejected
// with ErrInvalidTransition.
func (b *Board) Chord(x, y int) error {
	if !b.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if b.state.Ended() {
		return fmt.Errorf("%w: game already %v", ErrInvalidTransition, b.state)
	}
	i := b.index(x, y)
	if b.cells[i].vis != Revealed {
		return fmt.Errorf("%w: chord needs a revealed cell, (%d,%d) is %v", ErrInvalidTransition, x, y, b.cells[i].vis)
	}
	if b.flaggedNeighbors(x, y) != b.cells[i].adjacent {
		return nil
	}

	// A mis-flagged chord still opens the remaining safe neighbors before
	// the explosion, so the lost board shows everything the chord touched.
	exploded := -1
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !b.inBounds(nx, ny) {
			continue
		}
		ni := b.index(nx, ny)
		if b.cells[ni].vis != Hidden {
			continue
		}
		if b.cells[ni].mine {
			if exploded < 0 {
				exploded = ni
			}
			continue
		}
		b.floodReveal(nx, ny)
	}
	if exploded >= 0 {
		b.explode(exploded)
		return nil
	}
	b.checkWin()
	return nil
}

func (b *Board) index(x, y int) int { return y*b.width + x }

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) view(i int) CellView {
	c := b.cells[i]
	v := CellView{Visibility: c.vis}
	if c.vis == Revealed {
		v.Adjacent = c.adjacent
	}
	if c.vis == Revealed || b.state.Ended() {
		v.Mine = c.mine
	}
	return v
}

// placeFixed applies a WithMines layout at construction.
func (b *Board) placeFixed(layout []Point) error {
	if len(layout) != b.mines {
		return fmt.Errorf("%w: layout has %d points for %d mines", ErrInvalidConfig, len(layout), b.mines)
	}
	for _, p := range layout {
		if !b.inBounds(p.X, p.Y) {
			return fmt.Errorf("%w: layout point (%d,%d) out of bounds", ErrInvalidConfig, p.X, p.Y)
		}
		i := b.index(p.X, p.Y)
		if b.cells[i].mine {
			return fmt.Errorf("%w: duplicate layout point (%d,%d)", ErrInvalidConfig, p.X, p.Y)
		}
		b.cells[i].mine = true
	}
	b.computeAdjacency()
	b.placed = true
	return nil
}

// placeRandom scatters the mines on the first reveal, keeping (sx, sy) and
// its neighbors clear so the opening move always cascades. On boards too
// dense for a full safe zone the exclusion shrinks to the clicked cell
// alone, which is always satisfiable since mines < width*height.
func (b *Board) placeRandom(sx, sy int) {
	safe := func(x, y int) bool {
		dx, dy := x-sx, y-sy
		return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
	}
	candidates := b.candidates(safe)
	if len(candidates) < b.mines {
		candidates = b.candidates(func(x, y int) bool { return x == sx && y == sy })
	}

	b.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, i := range candidates[:b.mines] {
		b.cells[i].mine = true
	}
	b.computeAdjacency()
	b.placed = true
}

// candidates lists the indices of cells not excluded by keepClear.
func (b *Board) candidates(keepClear func(x, y int) bool) []int {
	out := make([]int, 0, len(b.cells))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if keepClear(x, y) {
				continue
			}
			out = append(out, b.index(x, y))
		}
	}
	return out
}

// computeAdjacency fills in the mine-neighbor count of every cell.
func (b *Board) computeAdjacency() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.cells[b.index(x, y)].mine {
				continue
			}
			count := 0
			for _, d := range neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if b.inBounds(nx, ny) && b.cells[b.index(nx, ny)].mine {
					count++
				}
			}
			b.cells[b.index(x, y)].adjacent = count
		}
	}
}

func (b *Board) flaggedNeighbors(x, y int) int {
	count := 0
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if b.inBounds(nx, ny) && b.cells[b.index(nx, ny)].vis == Flagged {
			count++
		}
	}
	return count
}

func (b *Board) revealCell(i int) {
	if b.cells[i].vis == Revealed {
		return
	}
	// A flagged mine opened on loss gives its flag back to the counter.
	if b.cells[i].vis == Flagged {
		b.flagged--
	}
	b.cells[i].vis = Revealed
	b.revealed++
}

// floodReveal opens the non-mine cell at (x, y). A zero-adjacency cell
// seeds a breadth-first cascade over the 8-connected zero region and its
// numbered border. Flagged cells are skipped, never opened. Iterative on
// purpose: an explicit queue bounds stack usage on large boards.
func (b *Board) floodReveal(x, y int) {
	start := b.index(x, y)
	b.revealCell(start)
	if b.cells[start].adjacent != 0 {
		return
	}

	seen := make([]bool, len(b.cells))
	seen[start] = true
	queue := []int{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ux, uy := u%b.width, u/b.width
		for _, d := range neighborOffsets {
			nx, ny := ux+d[0], uy+d[1]
			if !b.inBounds(nx, ny) {
				continue
			}
			v := b.index(nx, ny)
			if seen[v] {
				continue
			}
			seen[v] = true
			if b.cells[v].vis != Hidden {
				continue
			}
			// A zero cell has no mined neighbors, so v is never a mine.
			b.revealCell(v)
			if b.cells[v].adjacent == 0 {
				queue = append(queue, v)
			}
		}
	}
}

// explode reveals the mine at i and every other mine, ending the game.
// Opening the remaining mines is display-only: the loss is decided by the
// single cell the player hit.
func (b *Board) explode(i int) {
	b.revealCell(i)
	for j := range b.cells {
		if b.cells[j].mine {
			b.revealCell(j)
		}
	}
	b.state = Lost
}

// checkWin ends the game as Won once every non-mine cell is revealed and
// flags whatever mines the player left unmarked, matching the classic
// end-of-game display.
func (b *Board) checkWin() {
	if b.revealed != b.width*b.height-b.mines {
		return
	}
	b.state = Won
	for i := range b.cells {
		if b.cells[i].mine && b.cells[i].vis == Hidden {
			b.cells[i].vis = Flagged
			b.flagged++
		}
	}
}
