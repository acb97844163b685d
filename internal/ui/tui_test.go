package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/mines/board"
	"github.com/idilsaglam/mines/internal/settings"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

// fixedModel is a 3x3 board with one mine in the top-left corner.
func fixedModel(t *testing.T) Model {
	t.Helper()
	cfg := settings.Settings{
		Difficulty: settings.Custom,
		Theme:      "mono",
		Width:      3,
		Height:     3,
		Mines:      1,
	}
	m, err := NewModel(cfg, board.WithMines(board.Point{X: 0, Y: 0}))
	require.NoError(t, err)
	return m
}

func TestCursorMovementClamps(t *testing.T) {
	m := fixedModel(t)

	m = press(t, m, keyRunes("l"), keyRunes("l"), keyRunes("l"), keyRunes("l"))
	assert.Equal(t, 2, m.cx, "cursor must clamp at the right edge")

	m = press(t, m, keyRunes("j"), keyRunes("j"), keyRunes("j"))
	assert.Equal(t, 2, m.cy, "cursor must clamp at the bottom edge")

	m = press(t, m, keyRunes("h"), keyRunes("h"), keyRunes("h"), keyRunes("k"), keyRunes("k"), keyRunes("k"))
	assert.Equal(t, 0, m.cx)
	assert.Equal(t, 0, m.cy)
}

func TestRevealKeyPlaysTheBoard(t *testing.T) {
	m := fixedModel(t)

	// Walk to the far corner and open it: cascades into a win.
	m = press(t, m,
		keyRunes("l"), keyRunes("l"),
		keyRunes("j"), keyRunes("j"),
		tea.KeyMsg{Type: tea.KeySpace})

	assert.Equal(t, board.Won, m.b.State())
}

func TestFlagKeyTogglesFlag(t *testing.T) {
	m := fixedModel(t)

	m = press(t, m, keyRunes("f"))
	assert.Equal(t, 1, m.b.Status().Flagged)

	m = press(t, m, keyRunes("f"))
	assert.Equal(t, 0, m.b.Status().Flagged)
}

func TestPausedBoardIgnoresMoves(t *testing.T) {
	m := fixedModel(t)

	m = press(t, m, keyRunes("p"), tea.KeyMsg{Type: tea.KeySpace}, keyRunes("l"))
	assert.True(t, m.paused)
	assert.Equal(t, board.NotStarted, m.b.State())
	assert.Equal(t, 0, m.cx)

	m = press(t, m, keyRunes("p"))
	assert.False(t, m.paused)
}

func TestDifficultyKeysStartPresets(t *testing.T) {
	m := fixedModel(t)

	m = press(t, m, keyRunes("1"))
	assert.Equal(t, 9, m.b.Width())
	assert.Equal(t, settings.Beginner, m.cfg.Difficulty)
	assert.True(t, m.changed)

	m = press(t, m, keyRunes("3"))
	assert.Equal(t, 30, m.b.Width())
	assert.Equal(t, 16, m.b.Height())
}

func TestCustomGamePrompt(t *testing.T) {
	m := fixedModel(t)

	m = press(t, m, keyRunes("g"))
	require.True(t, m.prompting)

	for _, r := range "4x4:3" {
		m = press(t, m, keyRunes(string(r)))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.prompting)
	assert.Equal(t, settings.Custom, m.cfg.Difficulty)
	assert.Equal(t, 4, m.b.Width())
	assert.Equal(t, 4, m.b.Height())
	assert.Equal(t, 3, m.b.Mines())
}

func TestCustomGamePromptRejectsNonsense(t *testing.T) {
	m := fixedModel(t)

	m = press(t, m, keyRunes("g"))
	for _, r := range "potato" {
		m = press(t, m, keyRunes(string(r)))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.prompting, "bad input keeps the prompt open")
	assert.NotEmpty(t, m.promptErr)

	// Unplayable dimensions are rejected too.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc}, keyRunes("g"))
	for _, r := range "2x2:4" {
		m = press(t, m, keyRunes(string(r)))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.prompting)
	assert.Contains(t, m.promptErr, "mines")
}

func TestParseCustom(t *testing.T) {
	cases := []struct {
		in      string
		w, h, m int
		ok      bool
	}{
		{"12x8:16", 12, 8, 16, true},
		{" 9 x 9 : 10 ", 9, 9, 10, true},
		{"30X16:99", 30, 16, 99, true},
		{"12-8-16", 0, 0, 0, false},
		{"", 0, 0, 0, false},
	}
	for _, tc := range cases {
		w, h, mines, err := parseCustom(tc.in)
		if !tc.ok {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, [3]int{tc.w, tc.h, tc.m}, [3]int{w, h, mines}, tc.in)
	}
}

func TestThemeCycleAndFallback(t *testing.T) {
	assert.Equal(t, "neon", NextTheme("classic").Name)
	assert.Equal(t, "mono", NextTheme("neon").Name)
	assert.Equal(t, "classic", NextTheme("mono").Name)
	assert.Equal(t, "classic", NextTheme("no-such-theme").Name)
	assert.Equal(t, "classic", ThemeByName("no-such-theme").Name)
}

func TestViewShowsStatus(t *testing.T) {
	m := fixedModel(t)
	v := m.View()
	assert.True(t, strings.Contains(v, "Mines"))
	assert.True(t, strings.Contains(v, string(settings.Custom)))
}
