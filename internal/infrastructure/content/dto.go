package content

// Wire representations of the content files. The loader validates these
// against the embedded JSON Schemas before decoding.

type roomDTO struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description []string           `json:"description"`
	Scene       string             `json:"scene"`
	Zone        string             `json:"zone"`
	DimensionsM dimensionsDTO      `json:"dimensions_m"`
	Exits       map[string]exitDTO `json:"exits"`
	Objects     []string           `json:"objects,omitempty"`
	CargoHold   bool               `json:"cargo_hold,omitempty"`
}

type dimensionsDTO struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type exitDTO struct {
	Target    string   `json:"target"`
	Label     string   `json:"label,omitempty"`
	Direction string   `json:"direction,omitempty"`
	Shortcuts []string `json:"shortcuts,omitempty"`
}

type itemDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ExamineText string   `json:"examine_text,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Type        string   `json:"type"`
	MassKg      float64  `json:"mass_kg,omitempty"`
	EquipSlot   string   `json:"equip_slot,omitempty"`
}

type doorsFileDTO struct {
	Connections []doorDTO `json:"connections"`
}

type doorDTO struct {
	ID            string     `json:"id"`
	Rooms         []string   `json:"rooms"`
	Locked        bool       `json:"locked,omitempty"`
	SecurityLevel int        `json:"security_level"`
	PIN           string     `json:"pin,omitempty"`
	Panels        []panelDTO `json:"panels,omitempty"`
}

type panelDTO struct {
	ID             string  `json:"id"`
	Side           string  `json:"side"`
	Damaged        bool    `json:"damaged,omitempty"`
	RepairProgress float64 `json:"repair_progress,omitempty"`
}
