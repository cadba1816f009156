package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/projectdarkstar/darkstar/internal/application"
)

// inputMode is what the command line currently accepts.
type inputMode int

const (
	modeCommand inputMode = iota
	modePIN               // masked entry for a security panel
	modeBusy              // a timed action is running; input is ignored
)

// shipEvent is what the ship screen asks the root model to do.
type shipEvent int

const (
	shipEventNone shipEvent = iota
	shipEventQuit
	shipEventInventory
)

// shipModel is the main game screen: scene art, room text, response line,
// command input and the environment status bar.
type shipModel struct {
	deps Deps
	sess *application.Session

	input   textinput.Model
	busy    spinner.Model
	mode    inputMode
	attempt *application.AccessAttempt
	job     *application.RepairJob

	response   string
	clockFlash bool

	width  int
	height int
}

func newShipModel(deps Deps, sess *application.Session) shipModel {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 120
	input.Focus()

	busy := spinner.New()
	busy.Spinner = spinner.Dot
	busy.Style = accentStyle

	return shipModel{
		deps:     deps,
		sess:     sess,
		input:    input,
		busy:     busy,
		response: deps.Game.Look(sess),
	}
}

func (m shipModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *shipModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.input.Width = w - 4
}

func (m shipModel) focusInput() tea.Cmd {
	return m.input.Focus()
}

func (m shipModel) update(msg tea.Msg) (shipModel, tea.Cmd, shipEvent) {
	switch msg := msg.(type) {
	case swipeDoneMsg:
		out := m.deps.Doors.CompleteSwipe(m.sess, msg.attempt)
		m.response = out.Text
		if out.AwaitPIN {
			m.enterPINMode(out.Attempt)
		} else {
			m.enterCommandMode()
		}
		return m, nil, shipEventNone

	case repairDoneMsg:
		out := m.deps.Repairs.Complete(m.sess, msg.job)
		m.response = out.Text
		m.enterCommandMode()
		m.clockFlash = true
		return m, clockFlashCmd(), shipEventNone

	case clockFlashMsg:
		m.clockFlash = false
		return m, nil, shipEventNone

	case ContentChangedMsg:
		if err := m.deps.Game.ReloadContent(m.sess); err != nil {
			m.response = alertStyle.Render(fmt.Sprintf("Content reload failed: %v", err))
		} else {
			m.response = "Ship content files changed on disk. World reloaded."
		}
		return m, nil, shipEventNone

	case spinner.TickMsg:
		if m.mode == modeBusy {
			var cmd tea.Cmd
			m.busy, cmd = m.busy.Update(msg)
			return m, cmd, shipEventNone
		}
		return m, nil, shipEventNone

	case tea.KeyMsg:
		if m.mode == modeBusy {
			return m, nil, shipEventNone
		}
		if msg.Type == tea.KeyEnter {
			return m.submit()
		}
		if m.mode == modePIN && msg.Type == tea.KeyEsc {
			m.response = "You step back from the panel."
			m.enterCommandMode()
			return m, nil, shipEventNone
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, shipEventNone
}

func (m shipModel) submit() (shipModel, tea.Cmd, shipEvent) {
	line := m.input.Value()
	m.input.SetValue("")

	if m.mode == modePIN {
		out := m.deps.Doors.SubmitPIN(m.sess, m.attempt, strings.TrimSpace(line))
		m.response = out.Text
		if out.AwaitPIN {
			m.attempt = out.Attempt
		} else {
			m.enterCommandMode()
		}
		return m, nil, shipEventNone
	}

	res := m.deps.Commands.Process(m.sess, line)
	if res.Text != "" {
		m.response = res.Text
	}

	switch res.Effect {
	case application.EffectQuit:
		return m, nil, shipEventQuit

	case application.EffectOpenInventory:
		return m, nil, shipEventInventory

	case application.EffectSwipe:
		m.enterBusyMode()
		return m, tea.Batch(m.busy.Tick, swipeCmd(res.Attempt)), shipEventNone

	case application.EffectRepair:
		m.enterBusyMode()
		return m, tea.Batch(m.busy.Tick, repairCmd(res.Job)), shipEventNone

	case application.EffectClockFlash:
		m.clockFlash = true
		return m, clockFlashCmd(), shipEventNone
	}

	return m, nil, shipEventNone
}

func (m *shipModel) enterCommandMode() {
	m.mode = modeCommand
	m.attempt = nil
	m.job = nil
	m.input.EchoMode = textinput.EchoNormal
	m.input.Prompt = "> "
	m.input.Focus()
}

func (m *shipModel) enterPINMode(attempt *application.AccessAttempt) {
	m.mode = modePIN
	m.attempt = attempt
	m.input.EchoMode = textinput.EchoPassword
	m.input.Prompt = "PIN: "
	m.input.Focus()
}

func (m *shipModel) enterBusyMode() {
	m.mode = modeBusy
	m.input.Blur()
}

func (m shipModel) view() string {
	room := m.sess.CurrentRoom

	sceneW := m.width * 2 / 5
	if sceneW < 30 {
		sceneW = 30
	}
	textW := m.width - sceneW - 6
	if textW < 20 {
		textW = 20
	}

	scene := paneStyle.Width(sceneW).Render(
		titleStyle.Render(room.Name) + "\n\n" + faintStyle.Render(sceneArt(room.Scene)))

	var desc strings.Builder
	for _, line := range room.Description {
		desc.WriteString(renderMarkup(line))
		desc.WriteString("\n")
	}
	if len(room.Objects) > 0 {
		desc.WriteString("\n" + inputStyle.Render("You see:") + "\n")
		for _, obj := range room.Objects {
			desc.WriteString("  " + itemStyle.Render(obj.Name) + "\n")
		}
	}
	if labels := room.ExitLabels(); len(labels) > 0 {
		desc.WriteString("\n" + faintStyle.Render("Exits: "+strings.Join(labels, ", ")) + "\n")
	}
	text := paneStyle.Width(textW).Render(strings.TrimRight(desc.String(), "\n"))

	top := lipgloss.JoinHorizontal(lipgloss.Top, scene, text)

	response := textStyle.Render(m.response)

	var inputLine string
	if m.mode == modeBusy {
		inputLine = m.busy.View() + faintStyle.Render(" working...")
	} else {
		inputLine = m.input.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		"",
		response,
		"",
		inputLine,
		"",
		m.statusBar(),
	)
}

// statusBar renders the chronometer and the local life-support readout.
func (m shipModel) statusBar() string {
	clock := clockStyle
	if m.clockFlash {
		clock = clockFlashStyle
	}

	r := m.sess.LifeSupport.Readout(m.sess.CurrentRoom)
	readout := fmt.Sprintf("%.1f psi  %.1f °C  O2 %.0f  CO2 %.1f  air %.0f%%",
		r.PressurePSI, r.TempC, r.PPO2MMHg, r.PPCO2MMHg, r.AirQualityPC)
	carry := fmt.Sprintf("%.1f/%.1f kg",
		m.sess.Player.CarryMassKg(), m.sess.Player.MaxCarryMassKg)

	return clock.Render(m.sess.Chronometer.Format()) +
		faintStyle.Render("  |  "+readout+"  |  carrying "+carry)
}
