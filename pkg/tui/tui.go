// Package tui provides a terminal user interface for exploring music theory
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/odysseia06/Bach/pkg/theory"
)

// Manuscript-inspired color scheme (ivory and ink)
var (
	ivory    = lipgloss.Color("#FFFFF0")
	gold     = lipgloss.Color("#FFD700")
	inkBlue  = lipgloss.Color("#4169E1")
	darkGray = lipgloss.Color("#333333")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(gold).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	menuStyle = lipgloss.NewStyle().
			Foreground(ivory).
			PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(gold).
			Bold(true).
			PaddingLeft(2)

	resultStyle = lipgloss.NewStyle().
			Foreground(ivory)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(inkBlue).
			Padding(1, 2)
)

// State represents the current TUI state
type State int

const (
	StateMenu State = iota
	StateInput
	StateResult
)

// MenuItem represents a menu option
type MenuItem struct {
	Title       string
	Description string
	Placeholder string
	Query       func(input string) (string, error)
}

var menuItems = []MenuItem{
	{
		Title:       "Pitch",
		Description: "Look up a pitch by name, frequency or MIDI number",
		Placeholder: "C#4 | 440hz | midi:69",
		Query:       queryPitch,
	},
	{
		Title:       "Interval",
		Description: "Derive the interval between two pitches",
		Placeholder: "C4 E4",
		Query:       queryInterval,
	},
	{
		Title:       "Chord",
		Description: "Spell a chord from a root pitch and quality",
		Placeholder: "C4 major7",
		Query:       queryChord,
	},
	{
		Title:       "Scale",
		Description: "Spell a scale from a tonic and scale name",
		Placeholder: "A3 minor",
		Query:       queryScale,
	},
	{Title: "Exit", Description: "Exit the application"},
}

// Model represents the TUI model
type Model struct {
	state     State
	menuIndex int
	input     textinput.Model
	selected  MenuItem
	result    string
	err       error
	width     int
	height    int
}

// New creates a new TUI model
func New() Model {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 32

	return Model{
		state:     StateMenu,
		menuIndex: 0,
		input:     ti,
	}
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateInput:
			return m.updateInput(msg)
		case StateResult:
			return m.updateResult(msg)
		}
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case "enter":
		if m.menuIndex == len(menuItems)-1 {
			return m, tea.Quit
		}
		m.selected = menuItems[m.menuIndex]
		m.state = StateInput
		m.input.SetValue("")
		m.input.Placeholder = m.selected.Placeholder
		m.input.Focus()
		return m, textinput.Blink
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateMenu
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.result, m.err = m.selected.Query(m.input.Value())
		m.state = StateResult
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.state = StateMenu
		m.err = nil
		m.result = ""
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(asciiLogo())
	s.WriteString("\n")

	switch m.state {
	case StateMenu:
		s.WriteString(m.viewMenu())
	case StateInput:
		s.WriteString(m.viewInput())
	case StateResult:
		s.WriteString(m.viewResult())
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("↑/↓: navigate • enter: select • q: quit"))

	return s.String()
}

func (m Model) viewMenu() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" SELECT QUERY "))
	s.WriteString("\n\n")

	for i, item := range menuItems {
		if i == m.menuIndex {
			s.WriteString(selectedStyle.Render(fmt.Sprintf("▸ %s", item.Title)))
			s.WriteString("\n")
			s.WriteString(lipgloss.NewStyle().Foreground(gold).PaddingLeft(4).Render(item.Description))
		} else {
			s.WriteString(menuStyle.Render(fmt.Sprintf("  %s", item.Title)))
		}
		s.WriteString("\n")
	}

	return boxStyle.Render(s.String())
}

func (m Model) viewInput() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(fmt.Sprintf(" %s ", strings.ToUpper(m.selected.Title))))
	s.WriteString("\n\n")
	s.WriteString(m.input.View())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("enter: run • esc: back to menu"))

	return boxStyle.Render(s.String())
}

func (m Model) viewResult() string {
	var s strings.Builder

	if m.err != nil {
		s.WriteString(titleStyle.Render(" ERROR "))
		s.WriteString("\n\n")
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s", m.err.Error())))
	} else {
		s.WriteString(titleStyle.Render(fmt.Sprintf(" %s ", strings.ToUpper(m.selected.Title))))
		s.WriteString("\n\n")
		s.WriteString(resultStyle.Render(m.result))
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Press enter to continue"))

	return boxStyle.Render(s.String())
}

func queryPitch(input string) (string, error) {
	input = strings.TrimSpace(input)

	var pitch theory.Pitch
	switch {
	case strings.HasPrefix(strings.ToLower(input), "midi:"):
		n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(input), "midi:"))
		if err != nil {
			return "", fmt.Errorf("invalid midi number: %q", input)
		}
		pitch = theory.NewPitchFromMIDI(n)
	case strings.HasSuffix(strings.ToLower(input), "hz"):
		hz, err := strconv.ParseFloat(strings.TrimSuffix(strings.ToLower(input), "hz"), 64)
		if err != nil || hz <= 0 {
			return "", fmt.Errorf("invalid frequency: %q", input)
		}
		pitch = theory.NewPitchFromFrequency(hz)
	default:
		p, err := theory.ParsePitch(input)
		if err != nil {
			return "", err
		}
		pitch = p
	}

	return fmt.Sprintf("%s\nMIDI:        %d\nPitch class: %d\nFrequency:   %.2f Hz",
		pitch, pitch.MIDINumber(), pitch.PitchClass(), pitch.Frequency()), nil
}

func queryInterval(input string) (string, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return "", fmt.Errorf("expected two pitches, e.g. %q", "C4 E4")
	}
	from, err := theory.ParsePitch(fields[0])
	if err != nil {
		return "", err
	}
	to, err := theory.ParsePitch(fields[1])
	if err != nil {
		return "", err
	}

	iv := theory.IntervalBetweenPitches(from, to)
	return fmt.Sprintf("%s → %s\nInterval:  %s (%s)\nSemitones: %d\nCents:     %.0f\nInversion: %s",
		from, to, iv, iv.Quality().Name(), iv.Semitones(), iv.Cents(), iv.Invert()), nil
}

func queryChord(input string) (string, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return "", fmt.Errorf("expected root and quality, e.g. %q", "C4 major7")
	}
	root, err := theory.ParsePitch(fields[0])
	if err != nil {
		return "", err
	}
	quality, err := theory.ParseChordQuality(fields[1])
	if err != nil {
		return "", err
	}

	chord := theory.NewChord(root, quality)
	var names, intervals []string
	for _, p := range chord.Pitches() {
		names = append(names, p.String())
	}
	for _, iv := range chord.Intervals() {
		intervals = append(intervals, iv.String())
	}
	return fmt.Sprintf("%s\nIntervals: %s\nPitches:   %s",
		chord, strings.Join(intervals, " "), strings.Join(names, " ")), nil
}

func queryScale(input string) (string, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return "", fmt.Errorf("expected tonic and scale name, e.g. %q", "A3 minor")
	}
	tonic, err := theory.ParsePitch(fields[0])
	if err != nil {
		return "", err
	}
	build, err := theory.ScaleFactory(fields[1])
	if err != nil {
		return "", err
	}

	scale := build(tonic)
	var names []string
	for _, p := range scale.Pitches(true) {
		names = append(names, p.String())
	}
	return fmt.Sprintf("%s\nPitches: %s", scale.Name(), strings.Join(names, " ")), nil
}

func asciiLogo() string {
	logo := `
  ____            _
 | __ )  __ _  ___| |__
 |  _ \ / _' |/ __| '_ \
 | |_) | (_| | (__| | | |
 |____/ \__,_|\___|_| |_|
`
	return lipgloss.NewStyle().Foreground(gold).Render(logo)
}

// Run starts the TUI application
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
