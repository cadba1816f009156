// Package item defines the objects a player can find, examine, carry and
// equip aboard the ship.
package item

import (
	"fmt"
	"strings"
)

// Kind separates objects that can be picked up from ones bolted to the ship.
type Kind string

const (
	KindPortable Kind = "portable"
	KindFixed    Kind = "fixed"
)

// Slot is an equipment location on the player's body.
type Slot string

const (
	SlotNone  Slot = ""
	SlotHead  Slot = "head"
	SlotBody  Slot = "body"
	SlotTorso Slot = "torso"
	SlotWaist Slot = "waist"
	SlotFeet  Slot = "feet"
)

// EquipSlots lists the wearable slots in display order.
var EquipSlots = []Slot{SlotHead, SlotBody, SlotTorso, SlotWaist, SlotFeet}

// ValidSlot reports whether s names a real equipment slot.
func ValidSlot(s Slot) bool {
	for _, slot := range EquipSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Item is a single interactable object instance. Portable items carry mass
// and may declare an equip slot; fixed objects are part of the room.
type Item struct {
	ID          string
	Name        string
	Description string
	ExamineText string
	Keywords    []string
	Kind        Kind
	MassKg      float64
	EquipSlot   Slot
}

// New normalizes an item definition: the lowercased name is always a
// keyword, and examine text falls back to the description.
func New(it Item) *Item {
	out := it
	if out.ExamineText == "" {
		out.ExamineText = out.Description
	}
	name := strings.ToLower(out.Name)
	found := false
	for _, k := range out.Keywords {
		if strings.EqualFold(k, name) {
			found = true
			break
		}
	}
	if !found {
		out.Keywords = append(out.Keywords, name)
	}
	return &out
}

// Takeable reports whether the item can be picked up.
func (i *Item) Takeable() bool {
	return i.Kind == KindPortable
}

// Wearable reports whether the item occupies an equipment slot.
func (i *Item) Wearable() bool {
	return i.EquipSlot != SlotNone && ValidSlot(i.EquipSlot)
}

// Matches reports whether a player's word refers to this item.
func (i *Item) Matches(word string) bool {
	for _, k := range i.Keywords {
		if strings.EqualFold(k, word) {
			return true
		}
	}
	return false
}

// Examine returns the close-inspection text.
func (i *Item) Examine() string {
	if i.ExamineText != "" {
		return i.ExamineText
	}
	return fmt.Sprintf("You see nothing special about the %s.", i.Name)
}
