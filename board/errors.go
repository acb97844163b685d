package board

import "errors"

// Sentinel errors reported by board commands. All are recoverable caller
// errors; the board never panics on bad input.
var (
	// ErrInvalidConfig indicates unusable construction parameters:
	// non-positive dimensions, no mines, mines filling the whole grid,
	// or a WithMines layout that does not match them.
	ErrInvalidConfig = errors.New("board: invalid configuration")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("board: coordinate out of bounds")
	// ErrInvalidTransition indicates a command the current cell or board
	// state forbids, such as revealing a revealed cell, flagging a revealed
	// cell, or any command after the game has ended.
	ErrInvalidTransition = errors.New("board: invalid transition")
)
