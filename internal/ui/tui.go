package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/stopwatch"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/mines/board"
	"github.com/idilsaglam/mines/internal/settings"
)

// Model is the Bubble Tea model wrapping one board. It owns the cursor,
// the game timer and the custom-game prompt; all game rules stay in the
// board package, and board rejections surface here as plain no-ops.
type Model struct {
	b     *board.Board
	cfg   settings.Settings
	theme Theme
	keys  keyMap
	help  help.Model
	watch stopwatch.Model
	ti    textinput.Model

	cx, cy    int
	paused    bool
	prompting bool
	promptErr string
	changed   bool // settings differ from what was loaded; save on quit
}

// NewModel builds a model for the given settings. Board options apply to
// the initial board only (a -seed flag should not replay the same grid on
// every later game).
func NewModel(cfg settings.Settings, opts ...board.Option) (Model, error) {
	w, h, mines := cfg.Board()
	b, err := board.New(w, h, mines, opts...)
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "width x height : mines  (e.g. 12x8:16)"
	ti.CharLimit = 16

	return Model{
		b:     b,
		cfg:   cfg,
		theme: ThemeByName(cfg.Theme),
		keys:  defaultKeyMap(),
		help:  help.New(),
		watch: stopwatch.NewWithInterval(time.Second),
		ti:    ti,
	}, nil
}

// Run starts the interactive game and persists changed settings when the
// player quits.
func Run(cfg settings.Settings, opts ...board.Option) error {
	m, err := NewModel(cfg, opts...)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.changed {
		if err := settings.Save(fm.cfg); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case stopwatch.TickMsg, stopwatch.StartStopMsg, stopwatch.ResetMsg:
		var cmd tea.Cmd
		m.watch, cmd = m.watch.Update(msg)
		return m, cmd
	}

	if m.prompting {
		return m.updatePrompt(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Theme):
		m.theme = NextTheme(m.theme.Name)
		m.cfg.Theme = m.theme.Name
		m.changed = true
		return m, nil
	case key.Matches(keyMsg, m.keys.NewGame):
		return m.newGame(m.cfg)
	case key.Matches(keyMsg, m.keys.Difficulty):
		cfg := m.cfg
		switch keyMsg.String() {
		case "1":
			cfg.Difficulty = settings.Beginner
		case "2":
			cfg.Difficulty = settings.Intermediate
		case "3":
			cfg.Difficulty = settings.Expert
		}
		return m.newGame(cfg)
	case key.Matches(keyMsg, m.keys.CustomGame):
		m.prompting = true
		m.promptErr = ""
		m.ti.SetValue("")
		m.ti.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, m.keys.Pause):
		return m.togglePause()
	}

	if m.paused {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cy > 0 {
			m.cy--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cy < m.b.Height()-1 {
			m.cy++
		}
	case key.Matches(keyMsg, m.keys.Left):
		if m.cx > 0 {
			m.cx--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.cx < m.b.Width()-1 {
			m.cx++
		}
	case key.Matches(keyMsg, m.keys.Reveal):
		return m.applyMove(func() error { return m.b.Reveal(m.cx, m.cy) })
	case key.Matches(keyMsg, m.keys.Chord):
		return m.applyMove(func() error { return m.b.Chord(m.cx, m.cy) })
	case key.Matches(keyMsg, m.keys.Flag):
		if !m.b.State().Ended() {
			_, _ = m.b.ToggleFlag(m.cx, m.cy)
		}
	}
	return m, nil
}

// applyMove runs a board command and drives the timer off the resulting
// state: start on the first reveal, stop when the game ends. Rejected
// commands are user-visible no-ops.
func (m Model) applyMove(fn func() error) (tea.Model, tea.Cmd) {
	if m.b.State().Ended() {
		return m, nil
	}
	wasIdle := m.b.State() == board.NotStarted
	if err := fn(); err != nil {
		return m, nil
	}
	var cmds []tea.Cmd
	if wasIdle && m.b.State() != board.NotStarted {
		cmds = append(cmds, m.watch.Start())
	}
	if m.b.State().Ended() {
		cmds = append(cmds, m.watch.Stop())
	}
	return m, tea.Batch(cmds...)
}

// newGame replaces the board using cfg and resets the clock. The cursor
// stays put, clamped to the new grid.
func (m Model) newGame(cfg settings.Settings) (tea.Model, tea.Cmd) {
	w, h, mines := cfg.Board()
	b, err := board.New(w, h, mines)
	if err != nil {
		// Settings are normalized and prompts validated, so this should
		// not happen; keep the old board rather than crash.
		return m, nil
	}
	if cfg != m.cfg {
		m.changed = true
	}
	m.b = b
	m.cfg = cfg
	m.paused = false
	if m.cx >= w {
		m.cx = w - 1
	}
	if m.cy >= h {
		m.cy = h - 1
	}
	return m, tea.Batch(m.watch.Stop(), m.watch.Reset())
}

func (m Model) togglePause() (tea.Model, tea.Cmd) {
	if m.b.State().Ended() {
		return m, nil
	}
	m.paused = !m.paused
	if m.b.State() == board.NotStarted {
		return m, nil
	}
	return m, m.watch.Toggle()
}

func (m Model) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			w, h, mines, err := parseCustom(m.ti.Value())
			if err != nil {
				m.promptErr = err.Error()
				return m, nil
			}
			if _, err := board.New(w, h, mines); err != nil {
				m.promptErr = "mines must fit the board: 0 < mines < width*height"
				return m, nil
			}
			cfg := m.cfg
			cfg.Difficulty = settings.Custom
			cfg.Width, cfg.Height, cfg.Mines = w, h, mines
			m.prompting = false
			m.ti.Blur()
			return m.newGame(cfg)
		case "esc":
			m.prompting = false
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// parseCustom reads a "WxH:M" board size, whitespace tolerated.
func parseCustom(s string) (w, h, mines int, err error) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
	if _, serr := fmt.Sscanf(s, "%dx%d:%d", &w, &h, &mines); serr != nil {
		return 0, 0, 0, fmt.Errorf("expected WxH:M, e.g. 12x8:16")
	}
	return w, h, mines, nil
}

func (m Model) face() string {
	switch m.b.State() {
	case board.Won:
		return m.theme.Success.Render(m.theme.FaceWon)
	case board.Lost:
		return m.theme.Danger.Render(m.theme.FaceLost)
	default:
		return m.theme.FaceLive
	}
}

func (m Model) statusLine() string {
	st := m.b.Status()
	th := m.theme
	parts := []string{
		th.Danger.Render(th.FlagSym) + fmt.Sprintf(" %d", st.MinesRemaining),
		th.Accent.Render(m.watch.View()),
	}
	switch st.State {
	case board.Won:
		parts = append(parts, th.Success.Render("cleared! press n for a new game"))
	case board.Lost:
		parts = append(parts, th.Danger.Render("boom. press n for a new game"))
	default:
		parts = append(parts, th.Muted.Render(string(m.cfg.Difficulty)))
	}
	return strings.Join(parts, "   ")
}

func (m Model) View() string {
	th := m.theme

	header := th.Title.Render("Mines") + "  " + m.face()
	body := renderGrid(m.b, th, m.cx, m.cy)
	if m.paused {
		body = th.Muted.Render("paused\npress p to resume")
	}

	content := header + "\n\n" + body + "\n\n" + m.statusLine()
	if m.prompting {
		bar := "New custom game"
		if m.promptErr != "" {
			bar += " - " + th.Danger.Render(m.promptErr)
		}
		content += "\n" + bar + "\n" + m.ti.View()
	}
	content += "\n" + m.help.View(m.keys)

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return frame.Render(content)
}
