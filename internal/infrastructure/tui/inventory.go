package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/projectdarkstar/darkstar/internal/application"
	"github.com/projectdarkstar/darkstar/internal/domain/item"
)

const emptyInventoryText = "The black is quiet. No gear aboard."

// invRow is one selectable line: a worn slot or a carried item.
type invRow struct {
	slot    item.Slot // set for worn rows
	it      *item.Item
	carried bool
}

// inventoryModel is the full-screen gear overlay.
type inventoryModel struct {
	sess   *application.Session
	cursor int

	// lastAction is shown on the ship screen after closing.
	lastAction string

	width  int
	height int
}

func newInventoryModel(sess *application.Session) inventoryModel {
	return inventoryModel{sess: sess, lastAction: "You close your pack."}
}

func (m *inventoryModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// rows lists the selectable lines: occupied worn slots first, then the
// loose inventory.
func (m inventoryModel) rows() []invRow {
	var rows []invRow
	for _, slot := range item.EquipSlots {
		if worn := m.sess.Player.Equipped(slot); worn != nil {
			rows = append(rows, invRow{slot: slot, it: worn})
		}
	}
	for _, it := range m.sess.Player.Inventory() {
		rows = append(rows, invRow{it: it, carried: true})
	}
	return rows
}

// update returns the new model and whether the overlay should close.
func (m inventoryModel) update(msg tea.Msg) (inventoryModel, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}

	rows := m.rows()
	switch key.String() {
	case "esc", "q", "i":
		return m, true

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}

	case "e":
		if m.cursor < len(rows) {
			row := rows[m.cursor]
			if row.carried {
				_, m.lastAction = m.sess.Player.Equip(row.it)
			} else {
				_, m.lastAction = m.sess.Player.Unequip(row.slot)
			}
			m.clampCursor()
		}

	case "d":
		if m.cursor < len(rows) {
			row := rows[m.cursor]
			if row.carried {
				m.sess.Player.Remove(row.it)
				if m.sess.Ship.AddToCargo(row.it, m.sess.CurrentRoom.ID) {
					m.lastAction = fmt.Sprintf("You stow the %s as cargo.", row.it.Name)
				} else {
					m.sess.CurrentRoom.AddObject(row.it)
					m.lastAction = fmt.Sprintf("You drop the %s.", row.it.Name)
				}
				m.clampCursor()
			}
		}
	}
	return m, false
}

func (m *inventoryModel) clampCursor() {
	if n := len(m.rows()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	} else if n == 0 {
		m.cursor = 0
	}
}

func (m inventoryModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("GEAR"))
	b.WriteString("\n\n")

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(faintStyle.Render(emptyInventoryText))
	} else {
		idx := 0

		b.WriteString(inputStyle.Render("WORN"))
		b.WriteString("\n")
		for _, slot := range item.EquipSlots {
			worn := m.sess.Player.Equipped(slot)
			if worn != nil {
				label := fmt.Sprintf("%-6s %s (%.1f kg)", string(slot)+":", worn.Name, worn.MassKg)
				b.WriteString(m.renderRow(label, idx))
				idx++
			} else {
				b.WriteString("   " + faintStyle.Render(fmt.Sprintf("%-6s nothing", string(slot)+":")) + "\n")
			}
		}

		b.WriteString("\n")
		b.WriteString(inputStyle.Render(fmt.Sprintf("CARRIED  %.1f / %.1f kg",
			m.sess.Player.CarryMassKg(), m.sess.Player.MaxCarryMassKg)))
		b.WriteString("\n")
		carried := m.sess.Player.Inventory()
		if len(carried) == 0 {
			b.WriteString("   " + faintStyle.Render("nothing") + "\n")
		}
		for _, it := range carried {
			b.WriteString(m.renderRow(fmt.Sprintf("%s (%.1f kg)", it.Name, it.MassKg), idx))
			idx++
		}
	}

	if m.cursor < len(rows) && len(rows) > 0 {
		b.WriteString("\n")
		b.WriteString(textStyle.Render(rows[m.cursor].it.Examine()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render("e equip/remove   d drop   esc back"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m inventoryModel) renderRow(label string, idx int) string {
	if idx == m.cursor {
		return selectedStyle.Render(" > "+label) + "\n"
	}
	return "   " + itemStyle.Render(label) + "\n"
}
