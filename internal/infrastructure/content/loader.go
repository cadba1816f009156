// Package content loads and validates the game's data files — rooms, doors
// and items — and assembles them into a playable ship. Defaults ship
// embedded in the binary; a data directory overrides them file by file for
// content authoring.
package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/projectdarkstar/darkstar/internal/domain/item"
	"github.com/projectdarkstar/darkstar/internal/domain/ship"
)

const (
	RoomsFile = "rooms.json"
	DoorsFile = "doors.json"
	ItemsFile = "items.json"
)

//go:embed data/*.json
var defaultFS embed.FS

// Loader reads content files, preferring overrideDir when a file exists
// there and falling back to the embedded defaults.
type Loader struct {
	overrideDir string
}

// NewLoader creates a loader. overrideDir may be empty to use only the
// embedded defaults.
func NewLoader(overrideDir string) *Loader {
	return &Loader{overrideDir: overrideDir}
}

func (l *Loader) readFile(name string) ([]byte, error) {
	if l.overrideDir != "" {
		path := filepath.Join(l.overrideDir, name)
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read content file %s: %w", path, err)
		}
	}
	data, err := defaultFS.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("read embedded content %s: %w", name, err)
	}
	return data, nil
}

// Validate checks every content file against its schema and returns all
// failures, not just the first.
func (l *Loader) Validate() []error {
	var errs []error
	for _, name := range []string{RoomsFile, DoorsFile, ItemsFile} {
		data, err := l.readFile(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := validateSchema(name, data); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// LoadItems reads and validates the item catalog, keyed by item ID.
func (l *Loader) LoadItems() (map[string]*item.Item, error) {
	data, err := l.readFile(ItemsFile)
	if err != nil {
		return nil, err
	}
	if err := validateSchema(ItemsFile, data); err != nil {
		return nil, err
	}

	var dtos []itemDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("decode %s: %w", ItemsFile, err)
	}

	catalog := make(map[string]*item.Item, len(dtos))
	for _, dto := range dtos {
		if _, dup := catalog[dto.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate item id %q", ItemsFile, dto.ID)
		}
		catalog[dto.ID] = item.New(item.Item{
			ID:          dto.ID,
			Name:        dto.Name,
			Description: dto.Description,
			ExamineText: dto.ExamineText,
			Keywords:    dto.Keywords,
			Kind:        item.Kind(dto.Type),
			MassKg:      dto.MassKg,
			EquipSlot:   item.Slot(dto.EquipSlot),
		})
	}
	return catalog, nil
}

// LoadShip validates and assembles the full ship: rooms with resolved
// thermal zones and placed items, then doors with per-side panels wired
// into bidirectional exits.
func (l *Loader) LoadShip(shipName string) (*ship.Ship, map[string]*item.Item, error) {
	catalog, err := l.LoadItems()
	if err != nil {
		return nil, nil, err
	}

	roomsData, err := l.readFile(RoomsFile)
	if err != nil {
		return nil, nil, err
	}
	if err := validateSchema(RoomsFile, roomsData); err != nil {
		return nil, nil, err
	}

	var roomDTOs []roomDTO
	if err := json.Unmarshal(roomsData, &roomDTOs); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", RoomsFile, err)
	}

	s := ship.New(shipName)
	for _, dto := range roomDTOs {
		targetTemp, err := ship.ZoneTemp(dto.Zone)
		if err != nil {
			return nil, nil, fmt.Errorf("room %q: %w", dto.ID, err)
		}
		room, err := ship.NewRoom(dto.ID, dto.Name, dto.Description, dto.Scene, ship.Dimensions{
			LengthM: dto.DimensionsM.Length,
			WidthM:  dto.DimensionsM.Width,
			HeightM: dto.DimensionsM.Height,
		}, targetTemp)
		if err != nil {
			return nil, nil, err
		}
		for key, ex := range dto.Exits {
			room.Exits[key] = ship.Exit{
				Target:    ex.Target,
				Label:     ex.Label,
				Direction: ex.Direction,
				Shortcuts: ex.Shortcuts,
			}
		}
		for _, itemID := range dto.Objects {
			def, ok := catalog[itemID]
			if !ok {
				return nil, nil, fmt.Errorf("room %q references unknown item %q", dto.ID, itemID)
			}
			// Each placement is its own instance so runtime state never
			// bleeds between copies of the same definition.
			placed := *def
			room.AddObject(&placed)
		}
		if err := s.AddRoom(room); err != nil {
			return nil, nil, err
		}
		if dto.CargoHold {
			s.EnableCargo(room.ID)
		}
	}

	// Exit targets must name known rooms even before doors are wired.
	for _, room := range s.Rooms {
		for key, ex := range room.Exits {
			if _, ok := s.Rooms[ex.Target]; !ok {
				return nil, nil, fmt.Errorf("room %q exit %q targets unknown room %q", room.ID, key, ex.Target)
			}
		}
	}

	doorsData, err := l.readFile(DoorsFile)
	if err != nil {
		return nil, nil, err
	}
	if err := validateSchema(DoorsFile, doorsData); err != nil {
		return nil, nil, err
	}

	var doorsFile doorsFileDTO
	if err := json.Unmarshal(doorsData, &doorsFile); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", DoorsFile, err)
	}

	for _, dto := range doorsFile.Connections {
		if len(dto.Rooms) != 2 {
			return nil, nil, fmt.Errorf("door %q must connect exactly two rooms", dto.ID)
		}
		door, err := ship.NewDoor(dto.ID, dto.Rooms[0], dto.Rooms[1], dto.Locked,
			ship.SecurityLevel(dto.SecurityLevel), dto.PIN)
		if err != nil {
			return nil, nil, err
		}
		for _, p := range dto.Panels {
			panel := ship.NewSecurityPanel(p.ID, door.ID, p.Side, door.SecurityLevel, door.PIN)
			if p.Damaged {
				panel.Damage()
			}
			panel.RepairProgress = p.RepairProgress
			if err := door.AttachPanel(panel); err != nil {
				return nil, nil, err
			}
		}
		if err := s.AddDoor(door); err != nil {
			return nil, nil, err
		}
	}

	return s, catalog, nil
}
