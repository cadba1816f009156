package domain

import "time"

// SaveRepository handles persistence of saved games in the darkstar home
// directory.
type SaveRepository interface {
	Initialize() error
	IsInitialized() bool
	SaveGame(snapshot *SaveSnapshot) error
	LoadGame(id string) (*SaveSnapshot, error)
	ListSaves() ([]SaveInfo, error)
	DeleteSave(id string) error
}

// SaveInfo is the listing entry for a saved game.
type SaveInfo struct {
	ID         string    `json:"id"`
	PlayerName string    `json:"player_name"`
	ShipName   string    `json:"ship_name"`
	ShipTime   string    `json:"ship_time"`
	SavedAt    time.Time `json:"saved_at"`
}

// SaveSnapshot is the full serialized state of a game in progress. Content
// definitions (rooms, items, doors) are not persisted; a snapshot records
// only what play has changed.
type SaveSnapshot struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	SavedAt    time.Time `json:"saved_at"`
	PlayerName string    `json:"player_name"`
	ShipName   string    `json:"ship_name"`

	CurrentRoomID string   `json:"current_room_id"`
	Skills        []string `json:"skills,omitempty"`

	InventoryItemIDs []string          `json:"inventory_item_ids"`
	EquippedItemIDs  map[string]string `json:"equipped_item_ids,omitempty"` // slot → item ID

	RoomObjectIDs map[string][]string `json:"room_object_ids"` // room ID → item IDs on the deck
	CargoItemIDs  map[string][]string `json:"cargo_item_ids,omitempty"`

	Doors  []DoorState  `json:"doors"`
	Panels []PanelState `json:"panels"`

	ChronometerMinutes int64              `json:"chronometer_minutes"`
	Atmosphere         AtmosphereState    `json:"atmosphere"`
	RoomTempsC         map[string]float64 `json:"room_temps_c"`
}

// DoorState records a door's lock state.
type DoorState struct {
	DoorID string `json:"door_id"`
	Locked bool   `json:"locked"`
}

// PanelState records damage to a door access panel.
type PanelState struct {
	PanelID        string  `json:"panel_id"`
	Damaged        bool    `json:"damaged"`
	RepairProgress float64 `json:"repair_progress"`
}

// AtmosphereState records the ship-wide gas state and component health.
type AtmosphereState struct {
	PressurePSI       float64 `json:"pressure_psi"`
	PPO2MMHg          float64 `json:"ppo2_mmhg"`
	PPCO2MMHg         float64 `json:"ppco2_mmhg"`
	CO2ScrubberEff    float64 `json:"co2_scrubber_efficiency"`
	OxygenGenEff      float64 `json:"oxygen_generator_efficiency"`
	ThermalControlEff float64 `json:"thermal_control_efficiency"`
}
