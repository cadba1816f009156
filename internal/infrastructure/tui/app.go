// Package tui renders the game with bubbletea: a start screen for the
// character, the main ship screen with its command line, and a full-screen
// inventory overlay.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/projectdarkstar/darkstar/internal/application"
)

// Deps carries the application services the screens drive.
type Deps struct {
	Game     *application.GameService
	Doors    *application.DoorService
	Repairs  *application.RepairService
	Commands *application.CommandProcessor

	// Session is set when resuming a save; a nil session starts at the
	// character screen.
	Session *application.Session
}

type screen int

const (
	screenStart screen = iota
	screenShip
	screenInventory
)

// Model is the root bubbletea model. It owns the active screen and the
// shared session.
type Model struct {
	deps   Deps
	screen screen

	start startModel
	ship  shipModel
	inv   inventoryModel

	width  int
	height int

	quitting bool
	farewell string
}

// NewModel builds the root model. With a resumed session the start screen
// is skipped.
func NewModel(deps Deps) Model {
	m := Model{
		deps:  deps,
		start: newStartModel(),
	}
	if deps.Session != nil {
		m.screen = screenShip
		m.ship = newShipModel(deps, deps.Session)
	}
	return m
}

// NewProgram wraps the model in a program. The returned program's Send is
// safe for other goroutines, which is how the content watcher reaches the
// running game.
func NewProgram(deps Deps) *tea.Program {
	return tea.NewProgram(NewModel(deps), tea.WithAltScreen())
}

func (m Model) Init() tea.Cmd {
	if m.screen == screenShip {
		return m.ship.Init()
	}
	return m.start.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ship.setSize(msg.Width, msg.Height)
		m.inv.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			m.farewell = application.QuitMessage
			return m, tea.Quit
		}
	}

	switch m.screen {
	case screenStart:
		next, cmd, started := m.start.update(msg)
		m.start = next
		if started {
			sess, err := m.deps.Game.NewGame(m.start.playerName(), m.start.shipName())
			if err != nil {
				m.start.err = err
				return m, nil
			}
			m.deps.Session = sess
			m.ship = newShipModel(m.deps, sess)
			m.ship.setSize(m.width, m.height)
			m.screen = screenShip
			return m, m.ship.Init()
		}
		return m, cmd

	case screenShip:
		next, cmd, ev := m.ship.update(msg)
		m.ship = next
		switch ev {
		case shipEventQuit:
			m.quitting = true
			m.farewell = m.ship.response
			return m, tea.Quit
		case shipEventInventory:
			m.inv = newInventoryModel(m.deps.Session)
			m.inv.setSize(m.width, m.height)
			m.screen = screenInventory
			return m, nil
		}
		return m, cmd

	case screenInventory:
		next, done := m.inv.update(msg)
		m.inv = next
		if done {
			m.ship.response = m.inv.lastAction
			m.screen = screenShip
			return m, m.ship.focusInput()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return textStyle.Render(m.farewell) + "\n"
	}
	switch m.screen {
	case screenStart:
		return m.start.view(m.width)
	case screenInventory:
		return m.inv.view()
	default:
		return m.ship.view()
	}
}

// Run starts the interactive game and blocks until the player quits.
func Run(deps Deps) error {
	_, err := NewProgram(deps).Run()
	return err
}
