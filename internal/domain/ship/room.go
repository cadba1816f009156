package ship

import (
	"fmt"
	"sort"

	"github.com/projectdarkstar/darkstar/internal/domain/item"
)

// Temperature presets (°C) by thermal zone. Engineering runs hot, cargo
// spaces run cool, and crew spaces sit at the human comfort baseline.
var TempZones = map[string]float64{
	"cold":   8.0,
	"cool":   14.0,
	"normal": 20.0,
	"warm":   24.0,
	"hot":    28.0,
}

// ZoneTemp resolves a thermal zone name to its target temperature.
func ZoneTemp(zone string) (float64, error) {
	t, ok := TempZones[zone]
	if !ok {
		return 0, fmt.Errorf("unknown thermal zone %q", zone)
	}
	return t, nil
}

// Dimensions are a room's interior measurements in meters.
type Dimensions struct {
	LengthM float64 `json:"length"`
	WidthM  float64 `json:"width"`
	HeightM float64 `json:"height"`
}

// Volume computes the pressurized volume in cubic meters.
func (d Dimensions) Volume() float64 {
	return d.LengthM * d.WidthM * d.HeightM
}

// Validate rejects missing or non-positive measurements.
func (d Dimensions) Validate() error {
	if d.LengthM <= 0 || d.WidthM <= 0 || d.HeightM <= 0 {
		return fmt.Errorf("all dimensions must be positive, got %+v", d)
	}
	return nil
}

// Exit connects a room to a neighbor. An exit without a Door is an open
// archway; a secured exit goes through its Door's lock and panels.
type Exit struct {
	Target    string
	Label     string
	Direction string
	Shortcuts []string
	Door      *Door
}

// Room is one pressurized compartment of the ship.
type Room struct {
	ID          string
	Name        string
	Description []string
	Scene       string
	Exits       map[string]Exit
	Dimensions  Dimensions
	VolumeM3    float64

	TargetTempC  float64
	CurrentTempC float64

	Objects []*item.Item
	Panels  map[string]*SecurityPanel // door ID → panel on this room's side
}

// NewRoom validates dimensions and builds a room at its target temperature.
func NewRoom(id, name string, description []string, scene string, dims Dimensions, targetTempC float64) (*Room, error) {
	if id == "" {
		return nil, fmt.Errorf("room id cannot be empty")
	}
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("room %q: %w", id, err)
	}
	return &Room{
		ID:           id,
		Name:         name,
		Description:  description,
		Scene:        scene,
		Exits:        make(map[string]Exit),
		Dimensions:   dims,
		VolumeM3:     dims.Volume(),
		TargetTempC:  targetTempC,
		CurrentTempC: targetTempC,
		Panels:       make(map[string]*SecurityPanel),
	}, nil
}

// AddObject places an item instance in the room.
func (r *Room) AddObject(it *item.Item) {
	r.Objects = append(r.Objects, it)
}

// RemoveObject pulls an item out of the room by ID, for take/drop.
func (r *Room) RemoveObject(itemID string) bool {
	for i, obj := range r.Objects {
		if obj.ID == itemID {
			r.Objects = append(r.Objects[:i], r.Objects[i+1:]...)
			return true
		}
	}
	return false
}

// FindObject returns the first room object matching the player's word.
func (r *Room) FindObject(word string) *item.Item {
	for _, obj := range r.Objects {
		if obj.Matches(word) {
			return obj
		}
	}
	return nil
}

// ExitTo returns the exit leading to the given room ID.
func (r *Room) ExitTo(roomID string) (string, Exit, bool) {
	for key, ex := range r.Exits {
		if ex.Target == roomID {
			return key, ex, true
		}
	}
	return "", Exit{}, false
}

// ExitLabels lists the player-facing exit labels, sorted, with locked
// doors marked.
func (r *Room) ExitLabels() []string {
	labels := make([]string, 0, len(r.Exits))
	for _, ex := range r.Exits {
		label := ex.Label
		if label == "" {
			label = ex.Target
		}
		if ex.Door != nil && ex.Door.Locked() {
			label += " (locked)"
		}
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// ExitLabel returns the player-facing label for the exit toward roomID,
// falling back to the given name.
func (r *Room) ExitLabel(roomID, fallback string) string {
	if _, ex, ok := r.ExitTo(roomID); ok && ex.Label != "" {
		return ex.Label
	}
	return fallback
}
