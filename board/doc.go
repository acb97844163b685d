// Package board implements the minesweeper board model: mine placement,
// adjacency counts, reveal with flood-fill, flag tracking and win/loss
// detection. It is pure in-memory logic with no I/O, reusable outside the
// terminal shell that ships with this repository.
//
// A Board is driven through three commands:
//
//   - Reveal(x, y): open a cell, cascading through zero-adjacency regions.
//   - ToggleFlag(x, y): mark or unmark a hidden cell.
//   - Chord(x, y): open the unflagged neighbors of a satisfied number.
//
// Render state is read back per cell with CellView or per frame with
// Snapshot; aggregate counters come from Status. Callers hold no references
// into the grid.
//
// Mines are placed on the first Reveal, never under the revealed cell or
// its neighbors, so the opening move is always a cascade. WithMines opts
// into a fixed layout placed at construction instead, which is how tests
// and replays pin the grid down. WithSeed makes random placement
// deterministic.
//
// Boards are not safe for concurrent use; commands are expected to arrive
// sequentially from a single input loop.
package board
