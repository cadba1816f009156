// Package crew models the player character: identity, skills, the loose
// inventory with its carry-mass limit and the worn equipment slots.
package crew

import (
	"fmt"

	"github.com/projectdarkstar/darkstar/internal/domain/item"
)

// DefaultMaxCarryMassKg limits the mass of loose inventory. Equipped items
// do not count against it.
const DefaultMaxCarryMassKg = 10.0

// Player is the character the commands act on behalf of.
type Player struct {
	Name           string
	Skills         []string
	MaxCarryMassKg float64

	inventory []*item.Item
	equipped  map[item.Slot]*item.Item
}

// NewPlayer creates a player with empty inventory and equipment.
func NewPlayer(name string, skills []string) *Player {
	equipped := make(map[item.Slot]*item.Item, len(item.EquipSlots))
	for _, slot := range item.EquipSlots {
		equipped[slot] = nil
	}
	return &Player{
		Name:           name,
		Skills:         skills,
		MaxCarryMassKg: DefaultMaxCarryMassKg,
		equipped:       equipped,
	}
}

// CarryMassKg is the total mass of loose (unequipped) items.
func (p *Player) CarryMassKg() float64 {
	var total float64
	for _, it := range p.inventory {
		total += it.MassKg
	}
	return total
}

// Inventory returns a copy of the loose inventory.
func (p *Player) Inventory() []*item.Item {
	out := make([]*item.Item, len(p.inventory))
	copy(out, p.inventory)
	return out
}

// Equipped returns the item worn in slot, or nil.
func (p *Player) Equipped(slot item.Slot) *item.Item {
	return p.equipped[slot]
}

// HasItem reports whether the loose inventory or a worn slot holds itemID.
func (p *Player) HasItem(itemID string) bool {
	for _, it := range p.inventory {
		if it.ID == itemID {
			return true
		}
	}
	for _, it := range p.equipped {
		if it != nil && it.ID == itemID {
			return true
		}
	}
	return false
}

// InventoryIDs lists the IDs of loose inventory items, used by security
// panels to check for keycards.
func (p *Player) InventoryIDs() []string {
	ids := make([]string, 0, len(p.inventory))
	for _, it := range p.inventory {
		ids = append(ids, it.ID)
	}
	return ids
}

// FindCarried returns the first loose or worn item matching word, or nil.
func (p *Player) FindCarried(word string) *item.Item {
	for _, it := range p.inventory {
		if it.Matches(word) {
			return it
		}
	}
	for _, slot := range item.EquipSlots {
		if it := p.equipped[slot]; it != nil && it.Matches(word) {
			return it
		}
	}
	return nil
}

// Add places an item in the loose inventory, enforcing the carry limit.
func (p *Player) Add(it *item.Item) (bool, string) {
	if it == nil || !it.Takeable() {
		return false, "You can't carry that."
	}
	newTotal := p.CarryMassKg() + it.MassKg
	if newTotal > p.MaxCarryMassKg {
		remaining := p.MaxCarryMassKg - p.CarryMassKg()
		return false, fmt.Sprintf("Too heavy! You can carry %.1f kg more.", remaining)
	}
	p.inventory = append(p.inventory, it)
	return true, fmt.Sprintf("You take the %s.", it.Name)
}

// Remove drops an item from the loose inventory by identity.
func (p *Player) Remove(it *item.Item) bool {
	for i, held := range p.inventory {
		if held == it {
			p.inventory = append(p.inventory[:i], p.inventory[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveByID drops the first loose item with the given ID and returns it.
func (p *Player) RemoveByID(itemID string) *item.Item {
	for i, held := range p.inventory {
		if held.ID == itemID {
			p.inventory = append(p.inventory[:i], p.inventory[i+1:]...)
			return held
		}
	}
	return nil
}

// Equip wears an item in its declared slot. Anything already worn there is
// swapped back to the loose inventory first; the swap fails if that would
// break the carry limit.
func (p *Player) Equip(it *item.Item) (bool, string) {
	if it == nil || !it.Wearable() {
		name := "that"
		if it != nil {
			name = it.Name
		}
		return false, fmt.Sprintf("Cannot equip %s — invalid slot.", name)
	}
	slot := it.EquipSlot
	if p.equipped[slot] == it {
		return false, fmt.Sprintf("You are already wearing the %s.", it.Name)
	}

	// The candidate leaves the loose inventory before the old item returns,
	// so the mass check sees the true post-swap total.
	wasLoose := p.Remove(it)

	if old := p.equipped[slot]; old != nil {
		if ok, _ := p.Add(old); !ok {
			if wasLoose {
				p.inventory = append(p.inventory, it)
			}
			return false, fmt.Sprintf("Cannot unequip %s — inventory too full/heavy.", old.Name)
		}
	}

	p.equipped[slot] = it
	return true, fmt.Sprintf("You equip the %s.", it.Name)
}

// Unequip removes the item in slot and returns it to the loose inventory.
func (p *Player) Unequip(slot item.Slot) (bool, string) {
	if !item.ValidSlot(slot) {
		return false, fmt.Sprintf("Invalid slot: %s", slot)
	}
	it := p.equipped[slot]
	if it == nil {
		return false, fmt.Sprintf("Nothing equipped in %s.", slot)
	}
	ok, msg := p.Add(it)
	if !ok {
		return false, fmt.Sprintf("Cannot unequip %s: %s", it.Name, msg)
	}
	p.equipped[slot] = nil
	return true, fmt.Sprintf("You remove the %s.", it.Name)
}

// EquippedSummary formats the worn slots for display.
func (p *Player) EquippedSummary() []string {
	lines := make([]string, 0, len(item.EquipSlots))
	for _, slot := range item.EquipSlots {
		name := "nothing"
		if it := p.equipped[slot]; it != nil {
			name = it.Name
		}
		lines = append(lines, fmt.Sprintf("%s: %s", titleCase(string(slot)), name))
	}
	return lines
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
