package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rebeccarafeek/ellehacks-eyespy/internal/config"
	"github.com/rebeccarafeek/ellehacks-eyespy/internal/core"
)

// difficultyOption is one row of the difficulty picker.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
	detail string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy", "longer to memorize, more time on the clock"},
	{config.DifficultyNormal, "Normal", "the standard pace"},
	{config.DifficultyHard, "Hard", "a glance and a sprint"},
	{config.DifficultyFixed, "Fixed", "no speed-up between levels"},
}

// DifficultyModel lets users choose a difficulty preset before a game starts.
type DifficultyModel struct {
	title      string
	cursor     int
	width      int
	height     int
	keys       MenuKeyMap
	help       help.Model
	choosing   bool
	quitting   bool
	back       bool
	exitOnDone bool // Quit the program once a choice is made
}

// NewDifficultyModel creates a picker with the cursor on the given preset.
func NewDifficultyModel(title string, current config.DifficultyPreset, width, height int) DifficultyModel {
	cursor := 0
	if current == "" {
		current = config.DifficultyNormal
	}
	for i, opt := range difficultyOptions {
		if opt.preset == current {
			cursor = i
		}
	}

	h := help.New()
	h.Width = width

	return DifficultyModel{
		title:    title,
		cursor:   cursor,
		width:    width,
		height:   height,
		keys:     DefaultMenuKeyMap(),
		help:     h,
		choosing: true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
	case MenuActionBack:
		m.back = true
	}
	if m.exitOnDone && (!m.choosing || m.back) {
		return m, tea.Quit
	}
	return m, nil
}

// View renders the difficulty selection.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(strings.ToUpper(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		line := fmt.Sprintf("  %-7s %s", opt.label, subtleStyle.Render(opt.detail))
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %-7s", opt.label)) + " " + subtleStyle.Render(opt.detail)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Selected returns the chosen preset, or nil if still choosing.
func (m DifficultyModel) Selected() *config.DifficultyPreset {
	if m.choosing {
		return nil
	}
	preset := difficultyOptions[m.cursor].preset
	return &preset
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector runs the difficulty picker and returns the chosen preset.
// A nil preset means the user backed out or quit.
func RunDifficultySelector(title string, current config.DifficultyPreset, cfg core.RuntimeConfig) (*config.DifficultyPreset, error) {
	model := NewDifficultyModel(title, current, cfg.ScreenW, cfg.ScreenH)
	model.exitOnDone = true

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
