package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/projectdarkstar/darkstar/internal/application"
)

func updateRoot(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestRootModelOpensOnCharacterScreen(t *testing.T) {
	m := NewModel(testDeps(t))
	if m.screen != screenStart {
		t.Fatalf("screen = %d, want start", m.screen)
	}
	view := stripANSI(m.View())
	for _, want := range []string{"D A R K   S T A R", "Your name:", "Your ship:"} {
		if !strings.Contains(view, want) {
			t.Fatalf("start view missing %q", want)
		}
	}
}

func TestRootModelSkipsStartWhenResuming(t *testing.T) {
	deps := testDeps(t)
	deps.Session = testSession(t, deps)

	m := NewModel(deps)
	if m.screen != screenShip {
		t.Fatalf("screen = %d, want ship", m.screen)
	}
	if !strings.Contains(stripANSI(m.View()), "Captain's Quarters") {
		t.Fatal("resumed game should open on the ship")
	}
}

func TestRootModelStartFormCreatesGame(t *testing.T) {
	m := NewModel(testDeps(t))
	m = updateRoot(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m = updateRoot(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Vidal Reyes")})
	m = updateRoot(m, tea.KeyMsg{Type: tea.KeyEnter}) // to the ship field
	m = updateRoot(m, tea.KeyMsg{Type: tea.KeyEnter}) // finish with the default name

	if m.screen != screenShip {
		t.Fatalf("screen = %d, want ship", m.screen)
	}
	sess := m.deps.Session
	if sess == nil {
		t.Fatal("no session after the start form")
	}
	if sess.Player.Name != "Vidal Reyes" {
		t.Fatalf("player = %q", sess.Player.Name)
	}
	if sess.Ship.Name != application.DefaultShipName {
		t.Fatalf("ship = %q, want the default", sess.Ship.Name)
	}
}

func TestRootModelCtrlCQuits(t *testing.T) {
	deps := testDeps(t)
	deps.Session = testSession(t, deps)
	m := NewModel(deps)

	m = updateRoot(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting {
		t.Fatal("ctrl+c should quit")
	}
	if !strings.Contains(stripANSI(m.View()), application.QuitMessage) {
		t.Fatal("farewell should be shown")
	}
}

func TestRootModelInventoryRoundTrip(t *testing.T) {
	deps := testDeps(t)
	deps.Session = testSession(t, deps)
	m := NewModel(deps)
	m = updateRoot(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m = updateRoot(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	m = updateRoot(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenInventory {
		t.Fatalf("screen = %d, want inventory", m.screen)
	}

	m = updateRoot(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenShip {
		t.Fatalf("screen = %d, want ship", m.screen)
	}
	if m.ship.response != "You close your pack." {
		t.Fatalf("response = %q", m.ship.response)
	}
}
