package application

import (
	"fmt"
	"strings"

	"github.com/projectdarkstar/darkstar/internal/domain/ship"
)

// Access flow timing and limits.
const (
	CardSwipeSeconds = 3
	MaxPINAttempts   = 3
)

// AccessAction is what the player asked the panel to do.
type AccessAction string

const (
	ActionLock   AccessAction = "lock"
	ActionUnlock AccessAction = "unlock"
)

// AccessAttempt tracks one in-flight swipe against a door panel, from card
// check through PIN entry. The TUI owns the real-time delays; the attempt
// owns the rules.
type AccessAttempt struct {
	Action    AccessAction
	Door      *ship.Door
	Panel     *ship.SecurityPanel
	ExitLabel string

	PINAttempts int
}

// AccessOutcome is one step of the access flow.
type AccessOutcome struct {
	Text string
	// Swiping is set when a timed card swipe should begin.
	Swiping bool
	// AwaitPIN is set when the panel wants (or still wants) a PIN.
	AwaitPIN bool
	// Attempt carries flow state across swipe and PIN steps.
	Attempt *AccessAttempt
}

// DoorService handles lock/unlock commands and the security panel flow.
type DoorService struct{}

// NewDoorService creates the door access service.
func NewDoorService() *DoorService {
	return &DoorService{}
}

// Begin resolves the player's target and starts the access flow. Outcomes
// that never reach the card reader (archways, missing exits, broken or
// absent panels, no card) return immediately with Swiping unset.
func (d *DoorService) Begin(sess *Session, action AccessAction, rawTarget string) AccessOutcome {
	room := sess.CurrentRoom
	target := strings.TrimSpace(rawTarget)

	door := sess.Ship.FindDoorFromRoom(room, target)
	if door == nil {
		if target != "" {
			// The target may still name a real exit that simply has no
			// door — an open archway.
			if ex, ok := sess.Ship.ResolveExit(room, strings.ToLower(target)); ok {
				if ex.Door == nil {
					other, err := sess.Ship.Room(ex.Target)
					otherName := ex.Target
					if err == nil {
						otherName = other.Name
					}
					if action == ActionUnlock {
						return AccessOutcome{Text: fmt.Sprintf(
							"There is an open archway between %s and %s, there is nothing to unlock.",
							room.Name, otherName)}
					}
					return AccessOutcome{Text: fmt.Sprintf(
						"There is an open archway between %s and %s, it has no lock.",
						room.Name, otherName)}
				}
				door = ex.Door
			} else {
				return AccessOutcome{Text: "There is no such exit."}
			}
		} else {
			return AccessOutcome{Text: "Which door?"}
		}
	}

	if (action == ActionUnlock && !door.Locked()) || (action == ActionLock && door.Locked()) {
		return AccessOutcome{Text: fmt.Sprintf("That door is already %sed.", action)}
	}

	panel := door.PanelForRoom(room.ID)
	if panel == nil {
		return AccessOutcome{Text: "No access panel on this side."}
	}
	if panel.Damaged {
		return AccessOutcome{Text: "The door access panel on this side is damaged and currently unusable. Repairing it may be possible."}
	}

	inventory := sess.Player.InventoryIDs()
	hasAnyCard := false
	for _, id := range inventory {
		if id == ship.KeycardLowID || id == ship.KeycardHighID {
			hasAnyCard = true
			break
		}
	}
	if !hasAnyCard {
		return AccessOutcome{Text: "You need an ID card to swipe the door access panel."}
	}

	otherID, err := door.OtherRoom(room.ID)
	if err != nil {
		return AccessOutcome{Text: "There is no such exit."}
	}
	fallback := otherID
	if other, ok := sess.Ship.Rooms[otherID]; ok {
		fallback = other.Name
	}

	return AccessOutcome{
		Text:    "Swiping door access panel, checking card ID...",
		Swiping: true,
		Attempt: &AccessAttempt{
			Action:    action,
			Door:      door,
			Panel:     panel,
			ExitLabel: room.ExitLabel(otherID, fallback),
		},
	}
}

// CompleteSwipe runs the card check once the swipe delay has elapsed.
func (d *DoorService) CompleteSwipe(sess *Session, attempt *AccessAttempt) AccessOutcome {
	inventory := sess.Player.InventoryIDs()

	var ok bool
	var msg string
	if attempt.Action == ActionUnlock {
		ok, msg = attempt.Panel.AttemptUnlock(inventory)
	} else {
		ok, msg = attempt.Panel.AttemptLock(inventory)
	}
	if !ok {
		return AccessOutcome{Text: msg}
	}

	if attempt.Panel.RequiresPIN() {
		return AccessOutcome{
			Text: fmt.Sprintf("Enter PIN to %s the door to %s (%d/%d attempts)",
				attempt.Action, attempt.ExitLabel, attempt.PINAttempts, MaxPINAttempts),
			AwaitPIN: true,
			Attempt:  attempt,
		}
	}

	return d.finish(attempt, "ID accepted")
}

// SubmitPIN processes one PIN entry. Wrong entries re-prompt until the
// attempts run out; a lockout invalidates one command card.
func (d *DoorService) SubmitPIN(sess *Session, attempt *AccessAttempt, pin string) AccessOutcome {
	attempt.PINAttempts++

	if ok, _ := attempt.Panel.CheckPIN(pin); ok {
		return d.finish(attempt, "PIN accepted")
	}

	attemptsLeft := MaxPINAttempts - attempt.PINAttempts
	if attemptsLeft > 0 {
		return AccessOutcome{
			Text: fmt.Sprintf("Incorrect PIN. Attempts left: %d/%d",
				attemptsLeft, MaxPINAttempts),
			AwaitPIN: true,
			Attempt:  attempt,
		}
	}

	text := "Access denied after 3 incorrect PIN attempts. Process terminated."

	// The reader burns the card's crypto module on lockout.
	if removed := sess.Player.RemoveByID(ship.KeycardHighID); removed != nil {
		if def, ok := sess.Catalog[ship.KeycardHighDamagedID]; ok {
			dead := *def
			if ok, _ := sess.Player.Add(&dead); !ok {
				sess.CurrentRoom.AddObject(&dead)
			}
			text += "\nID card invalidated."
		}
	}

	return AccessOutcome{Text: text}
}

func (d *DoorService) finish(attempt *AccessAttempt, prefix string) AccessOutcome {
	var err error
	state := "open"
	if attempt.Action == ActionLock {
		err = attempt.Door.Lock()
		state = "closed"
	} else {
		err = attempt.Door.Unlock()
	}
	if err != nil {
		return AccessOutcome{Text: fmt.Sprintf("The door mechanism jams: %v", err)}
	}

	return AccessOutcome{Text: fmt.Sprintf("%s, door %sed. Access to %s is now %s.",
		prefix, attempt.Action, attempt.ExitLabel, state)}
}
