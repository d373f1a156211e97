package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// PlatformerSelection holds the user's selection from the run menu.
type PlatformerSelection struct {
	Resume bool // Continue the saved run instead of starting fresh
	Level  int  // 0 = start from beginning, 1-N = specific level
}

type platformerOption int

const (
	optionResume platformerOption = iota
	optionNewRun
	optionLevelSelect
)

// PlatformerModeModel lets users resume a saved run, start fresh, or pick
// a starting level for a new campaign run.
type PlatformerModeModel struct {
	title         string
	options       []platformerOption
	labels        []string
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     PlatformerSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewPlatformerModeModel creates a run selection model. hasSave adds a
// resume entry, levelSelect adds the campaign level picker.
func NewPlatformerModeModel(title string, hasSave, levelSelect bool, width, height int) PlatformerModeModel {
	options := make([]platformerOption, 0, 3)
	labels := make([]string, 0, 3)

	if hasSave {
		options = append(options, optionResume)
		labels = append(labels, "Resume saved run")
	}

	options = append(options, optionNewRun)
	if levelSelect {
		labels = append(labels, fmt.Sprintf("New run (%d levels)", levels.LevelCount()))
		options = append(options, optionLevelSelect)
		labels = append(labels, "Start from level...")
	} else {
		labels = append(labels, "New run")
	}

	return PlatformerModeModel{
		title:     title,
		options:   options,
		labels:    labels,
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m PlatformerModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PlatformerModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m PlatformerModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m PlatformerModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		switch m.options[m.cursor] {
		case optionResume:
			m.choosing = false
			m.selection = PlatformerSelection{Resume: true}
			return m, tea.Quit
		case optionNewRun:
			m.choosing = false
			m.selection = PlatformerSelection{}
			return m, tea.Quit
		case optionLevelSelect:
			m.inLevelSelect = true
			m.levelCursor = 0
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m PlatformerModeModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	levelCount := levels.LevelCount()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < levelCount-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = PlatformerSelection{
			Level: m.levelCursor + 1, // 1-indexed
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the run/level selection.
func (m PlatformerModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m PlatformerModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.title, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select an option:", m.width))
	b.WriteString("\n\n")

	for i, label := range m.labels {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m PlatformerModeModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	levelNames := levels.LevelNames()
	for i, name := range levelNames {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%2d. %s", cursor, i+1, name)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m PlatformerModeModel) Selected() *PlatformerSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m PlatformerModeModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m PlatformerModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m PlatformerModeModel) WantsBack() bool {
	return m.back
}

// RunPlatformerSelector runs the run selection menu for one game mode and
// returns the selection, or nil when the user backed out.
func RunPlatformerSelector(title string, hasSave, levelSelect bool, cfg core.RuntimeConfig) (*PlatformerSelection, core.RuntimeConfig, error) {
	model := NewPlatformerModeModel(title, hasSave, levelSelect, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(PlatformerModeModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
