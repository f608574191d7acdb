package adapter

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tjx666/abracadabra/internal/editor"
)

// PromptUI asks the user for decisions an algorithm cannot make alone.
// A nil result with a nil error means the user cancelled; algorithms treat
// that as a silent abort, not a failure.
type PromptUI interface {
	Choose(ctx context.Context, choices []editor.Choice) (*editor.Choice, error)
	Input(ctx context.Context, defaultValue string) (*string, error)
}

// StaticPromptUI is the non-interactive fallback used when output is not a
// terminal: choices are cancelled, inputs keep their default.
type StaticPromptUI struct{}

// NewStaticPromptUI creates the non-interactive prompt UI.
func NewStaticPromptUI() *StaticPromptUI {
	return &StaticPromptUI{}
}

// Choose cancels: without a terminal there is nobody to ask.
func (s *StaticPromptUI) Choose(_ context.Context, _ []editor.Choice) (*editor.Choice, error) {
	return nil, nil
}

// Input accepts the default value.
func (s *StaticPromptUI) Input(_ context.Context, defaultValue string) (*string, error) {
	return &defaultValue, nil
}

// TUIPromptUI renders prompts as Bubble Tea programs on stderr so stdout
// stays clean for code output.
type TUIPromptUI struct{}

// NewTUIPromptUI creates the interactive prompt UI.
func NewTUIPromptUI() *TUIPromptUI {
	return &TUIPromptUI{}
}

// Choose presents a selectable list and returns the picked option, or nil
// when the user cancels.
func (t *TUIPromptUI) Choose(ctx context.Context, choices []editor.Choice) (*editor.Choice, error) {
	program := tea.NewProgram(
		newChoiceModel(choices),
		tea.WithOutput(os.Stderr),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("choice prompt failed: %w", err)
	}

	m, ok := final.(choiceModel)
	if !ok || m.cancelled {
		return nil, nil
	}

	return m.selected, nil
}

// Input prompts for free text pre-filled with a default, or nil when the
// user cancels.
func (t *TUIPromptUI) Input(ctx context.Context, defaultValue string) (*string, error) {
	program := tea.NewProgram(
		newInputModel(defaultValue),
		tea.WithOutput(os.Stderr),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("input prompt failed: %w", err)
	}

	m, ok := final.(inputModel)
	if !ok || m.cancelled {
		return nil, nil
	}

	value := m.field.Value()

	return &value, nil
}

//nolint:gochecknoglobals // Styles are cheap, immutable render helpers.
var (
	promptTitleStyle    = lipgloss.NewStyle().Bold(true)
	promptSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
	promptItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

type choiceModel struct {
	choices   []editor.Choice
	index     int
	selected  *editor.Choice
	cancelled bool
}

func newChoiceModel(choices []editor.Choice) choiceModel {
	return choiceModel{choices: choices}
}

func (m choiceModel) Init() tea.Cmd {
	return nil
}

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.index > 0 {
			m.index--
		}
	case "down", "j":
		if m.index < len(m.choices)-1 {
			m.index++
		}
	case "enter":
		if len(m.choices) > 0 {
			m.selected = &m.choices[m.index]
		}

		return m, tea.Quit
	case "esc", "ctrl+c", "q":
		m.cancelled = true
		return m, tea.Quit
	}

	return m, nil
}

func (m choiceModel) View() string {
	view := promptTitleStyle.Render("Pick one:") + "\n"

	for i, choice := range m.choices {
		if i == m.index {
			view += promptSelectedStyle.Render("> "+choice.Label) + "\n"
			continue
		}

		view += promptItemStyle.Render("  "+choice.Label) + "\n"
	}

	return view
}

type inputModel struct {
	field     textinput.Model
	cancelled bool
}

func newInputModel(defaultValue string) inputModel {
	field := textinput.New()
	field.SetValue(defaultValue)
	field.Focus()

	return inputModel{field: field}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)

	return m, cmd
}

func (m inputModel) View() string {
	return promptTitleStyle.Render("New name:") + "\n" + m.field.View() + "\n"
}
