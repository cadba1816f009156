// Package application coordinates the game: it owns the running session
// and implements the player-facing operations on top of the domain model.
package application

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/projectdarkstar/darkstar/internal/domain"
	"github.com/projectdarkstar/darkstar/internal/domain/atmosphere"
	"github.com/projectdarkstar/darkstar/internal/domain/chrono"
	"github.com/projectdarkstar/darkstar/internal/domain/crew"
	"github.com/projectdarkstar/darkstar/internal/domain/item"
	"github.com/projectdarkstar/darkstar/internal/domain/ship"
)

// Session is a game in progress: one player, one ship, one clock.
type Session struct {
	ID        string
	CreatedAt time.Time

	Player      *crew.Player
	Ship        *ship.Ship
	Catalog     map[string]*item.Item
	LifeSupport *atmosphere.LifeSupport
	Chronometer *chrono.Chronometer
	CurrentRoom *ship.Room
}

// AdvanceTime moves the chronometer and the life-support simulation
// together; ship time never advances one without the other.
func (s *Session) AdvanceTime(minutes int64) {
	if minutes <= 0 {
		return
	}
	s.Chronometer.Advance(minutes)
	s.LifeSupport.Advance(minutes)
}

// Snapshot serializes everything play has changed. Content definitions
// stay in the data files; only IDs and mutable state are recorded.
func (s *Session) Snapshot() *domain.SaveSnapshot {
	snap := &domain.SaveSnapshot{
		ID:            s.ID,
		CreatedAt:     s.CreatedAt,
		SavedAt:       time.Now().UTC(),
		PlayerName:    s.Player.Name,
		ShipName:      s.Ship.Name,
		CurrentRoomID: s.CurrentRoom.ID,
		Skills:        s.Player.Skills,

		EquippedItemIDs: make(map[string]string),
		RoomObjectIDs:   make(map[string][]string),
		CargoItemIDs:    make(map[string][]string),
		RoomTempsC:      make(map[string]float64),

		ChronometerMinutes: s.Chronometer.TotalMinutes(),
		Atmosphere: domain.AtmosphereState{
			PressurePSI:       s.LifeSupport.PressurePSI,
			PPO2MMHg:          s.LifeSupport.PPO2MMHg,
			PPCO2MMHg:         s.LifeSupport.PPCO2MMHg,
			CO2ScrubberEff:    s.LifeSupport.CO2Scrubber.Efficiency,
			OxygenGenEff:      s.LifeSupport.OxygenGen.Efficiency,
			ThermalControlEff: s.LifeSupport.ThermalControl.Efficiency,
		},
	}

	for _, it := range s.Player.Inventory() {
		snap.InventoryItemIDs = append(snap.InventoryItemIDs, it.ID)
	}
	if snap.InventoryItemIDs == nil {
		snap.InventoryItemIDs = []string{}
	}
	for _, slot := range item.EquipSlots {
		if worn := s.Player.Equipped(slot); worn != nil {
			snap.EquippedItemIDs[string(slot)] = worn.ID
		}
	}

	for _, room := range s.Ship.Rooms {
		ids := make([]string, 0, len(room.Objects))
		for _, obj := range room.Objects {
			ids = append(ids, obj.ID)
		}
		snap.RoomObjectIDs[room.ID] = ids
		snap.RoomTempsC[room.ID] = room.CurrentTempC

		if s.Ship.HasCargoHold(room.ID) {
			cargoIDs := []string{}
			for _, it := range s.Ship.CargoForRoom(room.ID) {
				cargoIDs = append(cargoIDs, it.ID)
			}
			snap.CargoItemIDs[room.ID] = cargoIDs
		}
	}

	for _, door := range s.Ship.Doors {
		snap.Doors = append(snap.Doors, domain.DoorState{DoorID: door.ID, Locked: door.Locked()})
		for _, panel := range door.Panels() {
			snap.Panels = append(snap.Panels, domain.PanelState{
				PanelID:        panel.ID,
				Damaged:        panel.Damaged,
				RepairProgress: panel.RepairProgress,
			})
		}
	}

	return snap
}

// applySnapshot overlays saved mutable state on a freshly loaded ship.
func (s *Session) applySnapshot(snap *domain.SaveSnapshot) error {
	s.ID = snap.ID
	s.CreatedAt = snap.CreatedAt
	s.Player = crew.NewPlayer(snap.PlayerName, snap.Skills)

	instance := func(id string) (*item.Item, error) {
		def, ok := s.Catalog[id]
		if !ok {
			return nil, fmt.Errorf("save references unknown item %q", id)
		}
		copied := *def
		return &copied, nil
	}

	for _, id := range snap.InventoryItemIDs {
		it, err := instance(id)
		if err != nil {
			return err
		}
		if ok, msg := s.Player.Add(it); !ok {
			return fmt.Errorf("restore inventory item %q: %s", id, msg)
		}
	}
	for slot, id := range snap.EquippedItemIDs {
		it, err := instance(id)
		if err != nil {
			return err
		}
		if string(it.EquipSlot) != slot {
			return fmt.Errorf("save equips %q in slot %q, but it belongs on %q", id, slot, it.EquipSlot)
		}
		s.Player.Remove(it)
		if ok, msg := s.Player.Equip(it); !ok {
			return fmt.Errorf("restore equipped item %q: %s", id, msg)
		}
	}

	for roomID, objectIDs := range snap.RoomObjectIDs {
		room, err := s.Ship.Room(roomID)
		if err != nil {
			return err
		}
		room.Objects = nil
		for _, id := range objectIDs {
			it, err := instance(id)
			if err != nil {
				return err
			}
			room.AddObject(it)
		}
	}
	for roomID, cargoIDs := range snap.CargoItemIDs {
		for _, id := range cargoIDs {
			it, err := instance(id)
			if err != nil {
				return err
			}
			if !s.Ship.AddToCargo(it, roomID) {
				return fmt.Errorf("restore cargo: room %q has no cargo hold", roomID)
			}
		}
	}

	doorByID := make(map[string]*ship.Door, len(s.Ship.Doors))
	panelByID := make(map[string]*ship.SecurityPanel)
	for _, door := range s.Ship.Doors {
		doorByID[door.ID] = door
		for _, panel := range door.Panels() {
			panelByID[panel.ID] = panel
		}
	}
	for _, ds := range snap.Doors {
		door, ok := doorByID[ds.DoorID]
		if !ok {
			return fmt.Errorf("save references unknown door %q", ds.DoorID)
		}
		if door.Locked() != ds.Locked {
			var err error
			if ds.Locked {
				err = door.Lock()
			} else {
				err = door.Unlock()
			}
			if err != nil {
				return fmt.Errorf("restore door %q: %w", ds.DoorID, err)
			}
		}
	}
	for _, ps := range snap.Panels {
		panel, ok := panelByID[ps.PanelID]
		if !ok {
			return fmt.Errorf("save references unknown panel %q", ps.PanelID)
		}
		panel.Damaged = ps.Damaged
		panel.RepairProgress = ps.RepairProgress
	}

	s.Chronometer = chrono.FromMinutes(snap.ChronometerMinutes)

	s.LifeSupport.PressurePSI = snap.Atmosphere.PressurePSI
	s.LifeSupport.PPO2MMHg = snap.Atmosphere.PPO2MMHg
	s.LifeSupport.PPCO2MMHg = snap.Atmosphere.PPCO2MMHg
	s.LifeSupport.CO2Scrubber.Efficiency = snap.Atmosphere.CO2ScrubberEff
	s.LifeSupport.OxygenGen.Efficiency = snap.Atmosphere.OxygenGenEff
	s.LifeSupport.ThermalControl.Efficiency = snap.Atmosphere.ThermalControlEff
	for roomID, temp := range snap.RoomTempsC {
		if room, err := s.Ship.Room(roomID); err == nil {
			room.CurrentTempC = temp
		}
	}

	room, err := s.Ship.Room(snap.CurrentRoomID)
	if err != nil {
		return fmt.Errorf("restore location: %w", err)
	}
	s.CurrentRoom = room
	return nil
}

func newSessionID() string {
	return uuid.NewString()
}
