package board

// Visibility is the player-facing state of a single cell.
type Visibility int

const (
	// Hidden cells have not been revealed or flagged.
	Hidden Visibility = iota
	// Revealed cells are open; revealing never reverses.
	Revealed
	// Flagged cells are marked as suspected mines.
	Flagged
)

// String returns a short lowercase name for the visibility.
func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// State is the overall game state of a Board.
type State int

const (
	// NotStarted means no cell has been revealed yet.
	NotStarted State = iota
	// InProgress means at least one reveal succeeded and the game is live.
	InProgress
	// Won means every non-mine cell is revealed.
	Won
	// Lost means a mine was revealed.
	Lost
)

// Ended reports whether the state is terminal. Terminal boards reject all
// further commands.
func (s State) Ended() bool { return s == Won || s == Lost }

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Point is a cell coordinate, x across and y down, zero-based.
type Point struct {
	X, Y int
}

// CellView is the read-only render state of one cell.
//
// Adjacent is populated only for revealed cells; Mine is disclosed only
// once the cell is revealed or the game has ended. Hidden information
// never leaks through a view.
type CellView struct {
	Visibility Visibility
	Adjacent   int
	Mine       bool
}

// Status is an aggregate snapshot of the board, read-only.
//
// MinesRemaining is the usual flag-counter estimate, mine count minus
// flags placed; it can go negative when the player over-flags.
type Status struct {
	State          State
	Revealed       int
	Flagged        int
	MinesRemaining int
}
