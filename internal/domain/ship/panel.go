package ship

// Keycard item IDs recognized by door access panels.
const (
	KeycardLowID         = "id_card_low_sec"
	KeycardHighID        = "id_card_high_sec"
	KeycardHighDamagedID = "id_card_high_sec_damaged"
)

// SecurityPanel is the card reader on one side of a door. Panels can be
// damaged independently per side, so a door may be operable from the other
// room while this side is dead.
type SecurityPanel struct {
	ID             string
	DoorID         string
	Side           string // room ID this panel faces
	SecurityLevel  SecurityLevel
	PIN            string
	Damaged        bool
	RepairProgress float64
}

// NewSecurityPanel mounts a panel for one side of a door.
func NewSecurityPanel(id, doorID, side string, level SecurityLevel, pin string) *SecurityPanel {
	return &SecurityPanel{
		ID:            id,
		DoorID:        doorID,
		Side:          side,
		SecurityLevel: level,
		PIN:           pin,
	}
}

// CheckKeycard verifies the carried cards against the panel's level. A
// high-security card opens low-security panels too.
func (p *SecurityPanel) CheckKeycard(inventoryIDs []string) (bool, string) {
	hasLow := containsID(inventoryIDs, KeycardLowID)
	hasHigh := containsID(inventoryIDs, KeycardHighID)

	switch p.SecurityLevel {
	case SecurityKeycardLow:
		if hasLow || hasHigh {
			return true, ""
		}
		return false, "Access denied: ID card required."
	case SecurityKeycardHigh, SecurityKeycardHighPIN:
		if hasHigh {
			return true, ""
		}
		return false, "Access denied: high-security clearance required."
	}
	return false, "No valid ID card."
}

// RequiresPIN reports whether a successful swipe must be followed by a PIN.
func (p *SecurityPanel) RequiresPIN() bool {
	return p.SecurityLevel == SecurityKeycardHighPIN
}

// CheckPIN validates PIN entry for high-security panels.
func (p *SecurityPanel) CheckPIN(input string) (bool, string) {
	if !p.RequiresPIN() {
		return true, ""
	}
	if input == "" {
		return false, "PIN required."
	}
	if input != p.PIN {
		return false, "Incorrect PIN."
	}
	return true, ""
}

// AttemptUnlock runs the card check for an unlock swipe.
func (p *SecurityPanel) AttemptUnlock(inventoryIDs []string) (bool, string) {
	return p.attempt(inventoryIDs, "unlocks")
}

// AttemptLock runs the card check for a lock swipe.
func (p *SecurityPanel) AttemptLock(inventoryIDs []string) (bool, string) {
	return p.attempt(inventoryIDs, "locks")
}

func (p *SecurityPanel) attempt(inventoryIDs []string, verb string) (bool, string) {
	if p.Damaged {
		return false, "The panel on this side is damaged."
	}
	if ok, msg := p.CheckKeycard(inventoryIDs); !ok {
		return false, msg
	}
	return true, "Access granted. The door " + verb + "."
}

// Damage breaks the panel and resets repair progress.
func (p *SecurityPanel) Damage() {
	p.Damaged = true
	p.RepairProgress = 0.0
}

// Repair accumulates repair progress; the panel comes back at full progress.
func (p *SecurityPanel) Repair(amount float64) {
	p.RepairProgress += amount
	if p.RepairProgress >= 1.0 {
		p.Damaged = false
		p.RepairProgress = 1.0
	}
}

func containsID(ids []string, want string) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}
