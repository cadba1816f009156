package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/projectdarkstar/darkstar/internal/application"
)

var introLines = []string{
	"The year is 2276.",
	"",
	"Humanity crawled out along the spur lanes a century ago and never",
	"looked back. Out here the registry offices are weeks away by relay",
	"and a small freighter with a clean reactor is worth more than a",
	"government. You have one of those. Mostly clean.",
	"",
	"Sign the manifest, captain.",
}

// startModel is the character screen: two fields, name and ship.
type startModel struct {
	inputs  []textinput.Model
	focused int
	err     error
}

func newStartModel() startModel {
	name := textinput.New()
	name.Placeholder = application.DefaultPlayerName
	name.CharLimit = 40
	name.Width = 30
	name.Focus()

	vessel := textinput.New()
	vessel.Placeholder = application.DefaultShipName
	vessel.CharLimit = 40
	vessel.Width = 30

	return startModel{inputs: []textinput.Model{name, vessel}}
}

func (m startModel) Init() tea.Cmd {
	return textinput.Blink
}

// update returns the new model, a command, and whether the player finished
// the form.
func (m startModel) update(msg tea.Msg) (startModel, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			if m.focused == len(m.inputs)-1 {
				return m, nil, true
			}
			m.focusNext()
		case tea.KeyTab, tea.KeyDown:
			m.focusNext()
		case tea.KeyShiftTab, tea.KeyUp:
			m.focusPrev()
		}
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...), false
}

func (m *startModel) focusNext() {
	m.inputs[m.focused].Blur()
	m.focused = (m.focused + 1) % len(m.inputs)
	m.inputs[m.focused].Focus()
}

func (m *startModel) focusPrev() {
	m.inputs[m.focused].Blur()
	m.focused = (m.focused + len(m.inputs) - 1) % len(m.inputs)
	m.inputs[m.focused].Focus()
}

func (m startModel) playerName() string {
	return strings.TrimSpace(m.inputs[0].Value())
}

func (m startModel) shipName() string {
	return strings.TrimSpace(m.inputs[1].Value())
}

func (m startModel) view(width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("D A R K   S T A R"))
	b.WriteString("\n\n")
	for _, line := range introLines {
		b.WriteString(faintStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s\n%s\n\n", inputStyle.Render("Your name:"), m.inputs[0].View())
	fmt.Fprintf(&b, "%s\n%s\n\n", inputStyle.Render("Your ship:"), m.inputs[1].View())
	b.WriteString(faintStyle.Render("enter to continue, ctrl+c to quit"))

	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(alertStyle.Render("Cannot start: " + m.err.Error()))
	}

	content := b.String()
	if width > 0 {
		return lipgloss.NewStyle().Padding(1, 2).MaxWidth(width).Render(content)
	}
	return content
}
