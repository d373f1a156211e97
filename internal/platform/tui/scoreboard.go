package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

const (
	sidebarBreakpoint = 80 // narrower terminals fall back to the tab layout
	sidebarWidth      = 20
	scoresPerBoard    = 100
)

// ScoreboardKeyMap holds the scoreboard key bindings.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
}

// ShortHelp returns the bindings shown in the one-line help footer.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns the default scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev mode"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next mode"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next mode"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel drives the high-score screen: one board per registered
// mode, a bubbles table for the entries, and aggregate run stats under
// the table.
type ScoreboardModel struct {
	modes    []registry.GameInfo
	cursor   int
	store    *storage.Store
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	allStats map[string]*storage.GameStats
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	sidebar  bool
	quitting bool
	back     bool
}

// NewScoreboardModel builds the scoreboard for every registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:   registry.List(),
		store:   store,
		keys:    DefaultScoreboardKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
		sidebar: width >= sidebarBreakpoint,
	}
	m.table = m.buildTable()
	m.refreshAllStats()
	if len(m.modes) > 0 {
		m.reload(m.modes[0].ID)
	}
	return m
}

// buildTable sizes the score table for the current terminal.
func (m *ScoreboardModel) buildTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	avail := m.width - 4
	if m.sidebar {
		avail -= sidebarWidth + 3
	}
	if avail > 40 {
		columns[1].Width = 12
		w := avail - 22
		if w > 20 {
			w = 20
		}
		columns[2].Width = w
	}

	// Title, tabs, stats line and help all live outside the table
	h := m.height - 9
	if h < 3 {
		h = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(h),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload fetches the board and stats for one mode.
func (m *ScoreboardModel) reload(modeID string) {
	m.scores = nil
	m.stats = nil
	if m.store != nil {
		if scores, err := m.store.TopScores(modeID, scoresPerBoard); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(modeID); err == nil && stats.GamesCount > 0 {
			m.stats = stats
		}
	}
	m.refreshRows()
}

// refreshAllStats pulls the per-mode aggregates shown in the sidebar.
func (m *ScoreboardModel) refreshAllStats() {
	m.allStats = nil
	if m.store == nil {
		return
	}
	if stats, err := m.store.GetAllGamesStats(); err == nil {
		m.allStats = stats
	}
}

func (m *ScoreboardModel) refreshRows() {
	rows := make([]table.Row, len(m.scores))
	for i, e := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selectMode moves the mode cursor by delta, wrapping at both ends.
func (m *ScoreboardModel) selectMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.modes)) % len(m.modes)
	m.reload(m.modes[m.cursor].ID)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles key and resize messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame), key.Matches(msg, m.keys.Right):
			m.selectMode(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevGame), key.Matches(msg, m.keys.Left):
			m.selectMode(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sidebar = m.width >= sidebarBreakpoint
		m.help.Width = msg.Width
		m.table = m.buildTable()
		m.refreshRows()
		return m, nil
	}

	// Everything else, scrolling included, goes to the table
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if len(m.modes) > 0 {
		title += " - " + m.modes[m.cursor].Title
	}
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.sidebar {
		b.WriteString(m.viewWithSidebar())
	} else {
		b.WriteString(m.viewWithTabs())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// viewWithSidebar lays the mode list and the board side by side.
func (m ScoreboardModel) viewWithSidebar() string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Modes\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, mode := range m.modes {
		name := mode.Title
		if len(name) > 16 {
			name = name[:15] + "."
		}

		style := lipgloss.NewStyle()
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sb.WriteString(style.Render(cursor + name))
		sb.WriteString("\n")

		if st, ok := m.allStats[mode.ID]; ok && st.GamesCount > 0 {
			best := fmt.Sprintf("    best %d", st.HighScore)
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(best))
			sb.WriteString("\n")
		}
	}

	board := m.boardFrame().Render(m.viewBoard())
	return lipgloss.JoinHorizontal(lipgloss.Top, frame.Render(sb.String()), "  ", board)
}

// viewWithTabs puts the mode switcher above the board for narrow terminals.
func (m ScoreboardModel) viewWithTabs() string {
	var b strings.Builder

	plain := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.modes))
	lineWidth := 0
	for i, mode := range m.modes {
		if i == m.cursor {
			tabs[i] = active.Render(mode.Title)
		} else {
			tabs[i] = plain.Render(" " + mode.Title + " ")
		}
		lineWidth += len(mode.Title) + 3
	}

	line := strings.Join(tabs, " ")
	if lineWidth > m.width-4 {
		// Not enough room for the full tab row, show the current mode only
		line = fmt.Sprintf("< %s >", m.modes[m.cursor].Title)
	}
	b.WriteString(centerText(line, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.boardFrame().Render(m.viewBoard()), m.width))

	return b.String()
}

func (m ScoreboardModel) boardFrame() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
}

// viewBoard renders the score table with the stats line underneath, or a
// placeholder when the mode has no history yet.
func (m ScoreboardModel) viewBoard() string {
	if len(m.scores) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No scores recorded yet.\nFinish a run to put one here!")
	}

	board := m.table.View()
	if line := m.statsLine(); line != "" {
		board += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(line)
	}
	return board
}

// statsLine summarizes the selected mode's run history.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil {
		return ""
	}
	line := fmt.Sprintf("Runs: %d   Best: %d   Avg: %.0f",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore)
	if !m.stats.LastPlayed.IsZero() {
		line += "   Last: " + m.stats.LastPlayed.Format("Jan 02 15:04")
	}
	return line
}

// IsGoingBack reports whether the user left toward the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the user quit the program entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard until the user leaves. The returned
// bool is true when they want the menu back rather than a full exit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := finalModel.(ScoreboardModel); ok {
		return m.IsGoingBack(), nil
	}
	return false, nil
}
