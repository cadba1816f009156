// Package ship models the vessel: rooms, the doors and security panels
// joining them, and per-room cargo storage.
package ship

import (
	"fmt"
	"strings"

	"github.com/projectdarkstar/darkstar/internal/domain/item"
)

// BrokenPanel pairs a damaged panel with the exit it guards, for repair
// prompts and disambiguation.
type BrokenPanel struct {
	Panel     *SecurityPanel
	ExitLabel string
	Door      *Door
}

// Ship owns all rooms, doors and cargo.
type Ship struct {
	Name  string
	Rooms map[string]*Room
	Doors []*Door

	cargoByRoom map[string][]*item.Item
}

// New creates an empty ship. Rooms and doors are attached by the content
// loader, which enforces the wiring invariants.
func New(name string) *Ship {
	return &Ship{
		Name:        name,
		Rooms:       make(map[string]*Room),
		cargoByRoom: make(map[string][]*item.Item),
	}
}

// AddRoom registers a room, rejecting duplicate IDs.
func (s *Ship) AddRoom(r *Room) error {
	if _, exists := s.Rooms[r.ID]; exists {
		return fmt.Errorf("duplicate room id %q", r.ID)
	}
	s.Rooms[r.ID] = r
	return nil
}

// Room returns a room by ID.
func (s *Ship) Room(id string) (*Room, error) {
	r, ok := s.Rooms[id]
	if !ok {
		return nil, fmt.Errorf("unknown room %q", id)
	}
	return r, nil
}

// AddDoor registers a door. Both rooms must already exist and declare
// exits toward each other; the matching exits gain the door reference.
func (s *Ship) AddDoor(d *Door) error {
	roomA, ok := s.Rooms[d.RoomIDs[0]]
	if !ok {
		return fmt.Errorf("door %s: unknown room %q", d.ID, d.RoomIDs[0])
	}
	roomB, ok := s.Rooms[d.RoomIDs[1]]
	if !ok {
		return fmt.Errorf("door %s: unknown room %q", d.ID, d.RoomIDs[1])
	}

	keyA, exitA, okA := roomA.ExitTo(roomB.ID)
	keyB, exitB, okB := roomB.ExitTo(roomA.ID)
	if !okA || !okB {
		return fmt.Errorf("door %s: missing bidirectional exit between %s and %s", d.ID, roomA.ID, roomB.ID)
	}

	exitA.Door = d
	roomA.Exits[keyA] = exitA
	exitB.Door = d
	roomB.Exits[keyB] = exitB

	for side, panel := range d.Panels() {
		sideRoom := roomA
		if side == roomB.ID {
			sideRoom = roomB
		}
		sideRoom.Panels[d.ID] = panel
	}

	s.Doors = append(s.Doors, d)
	return nil
}

// FindDoorFromRoom resolves a player's door target from the given room
// only, matching secured exits by key, shortcut or far-room ID.
func (s *Ship) FindDoorFromRoom(room *Room, target string) *Door {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" {
		return nil
	}

	for exitKey, ex := range room.Exits {
		if ex.Door == nil {
			continue // archways have nothing to lock
		}
		if target == strings.ToLower(exitKey) ||
			target == strings.ToLower(ex.Target) ||
			matchesShortcut(ex.Shortcuts, target) {
			return ex.Door
		}
	}
	return nil
}

// ResolveExit matches a normalized movement target against a room's exits:
// by key, label, direction alias, shortcut or far-room ID.
func (s *Ship) ResolveExit(room *Room, target string) (Exit, bool) {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" {
		return Exit{}, false
	}
	for exitKey, ex := range room.Exits {
		if target == strings.ToLower(exitKey) ||
			(ex.Label != "" && target == strings.ToLower(ex.Label)) ||
			(ex.Direction != "" && target == strings.ToLower(ex.Direction)) ||
			matchesShortcut(ex.Shortcuts, target) ||
			target == strings.ToLower(ex.Target) {
			return ex, true
		}
	}
	return Exit{}, false
}

// BrokenPanelsInRoom lists damaged panels reachable from the room, with the
// exit labels a player would use to name them.
func (s *Ship) BrokenPanelsInRoom(room *Room) []BrokenPanel {
	var broken []BrokenPanel
	for _, door := range s.Doors {
		panel := door.PanelForRoom(room.ID)
		if panel == nil || !panel.Damaged {
			continue
		}
		otherID, err := door.OtherRoom(room.ID)
		if err != nil {
			continue
		}
		fallback := otherID
		if other, ok := s.Rooms[otherID]; ok {
			fallback = other.Name
		}
		broken = append(broken, BrokenPanel{
			Panel:     panel,
			ExitLabel: room.ExitLabel(otherID, fallback),
			Door:      door,
		})
	}
	return broken
}

// EnableCargo marks a room as cargo-capable. Dropped portables in other
// rooms simply lie on the deck as room objects.
func (s *Ship) EnableCargo(roomID string) {
	if _, ok := s.cargoByRoom[roomID]; !ok {
		s.cargoByRoom[roomID] = []*item.Item{}
	}
}

// HasCargoHold reports whether the room stores cargo.
func (s *Ship) HasCargoHold(roomID string) bool {
	_, ok := s.cargoByRoom[roomID]
	return ok
}

// AddToCargo stores a portable item in a cargo-capable room.
func (s *Ship) AddToCargo(it *item.Item, roomID string) bool {
	if it == nil || !it.Takeable() {
		return false
	}
	if _, ok := s.cargoByRoom[roomID]; !ok {
		return false
	}
	s.cargoByRoom[roomID] = append(s.cargoByRoom[roomID], it)
	return true
}

// RemoveFromCargo pulls an item out of a room's cargo by ID.
func (s *Ship) RemoveFromCargo(itemID, roomID string) *item.Item {
	cargo, ok := s.cargoByRoom[roomID]
	if !ok {
		return nil
	}
	for i, it := range cargo {
		if it.ID == itemID {
			s.cargoByRoom[roomID] = append(cargo[:i], cargo[i+1:]...)
			return it
		}
	}
	return nil
}

// CargoForRoom lists the cargo stored in a room.
func (s *Ship) CargoForRoom(roomID string) []*item.Item {
	return s.cargoByRoom[roomID]
}

func matchesShortcut(shortcuts []string, target string) bool {
	for _, sc := range shortcuts {
		if target == strings.ToLower(sc) {
			return true
		}
	}
	return false
}
