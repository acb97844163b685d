package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/mines/board"
)

// cellFace picks the symbol and style for one cell view.
func cellFace(c board.CellView, th Theme) (string, lipgloss.Style) {
	switch c.Visibility {
	case board.Flagged:
		return th.FlagSym, th.Danger
	case board.Hidden:
		return th.HiddenSym, th.Muted
	}
	if c.Mine {
		return th.MineSym, th.Danger
	}
	if c.Adjacent == 0 {
		return th.BlankSym, th.Numbers[0]
	}
	return strconv.Itoa(c.Adjacent), th.Numbers[c.Adjacent]
}

// renderGrid draws the whole board, one symbol per cell, highlighting the
// cursor. It reads only the snapshot: rendering never sees mine placement.
func renderGrid(b *board.Board, th Theme, cx, cy int) string {
	snap := b.Snapshot()
	var sb strings.Builder
	for y, row := range snap {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, c := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sym, style := cellFace(c, th)
			if x == cx && y == cy {
				style = th.Cursor
			}
			sb.WriteString(style.Render(sym))
		}
	}
	return sb.String()
}
