package ship

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// SecurityLevel gates who can cycle a door's lock.
type SecurityLevel int

const (
	SecurityNone SecurityLevel = iota
	SecurityKeycardLow
	SecurityKeycardHigh
	SecurityKeycardHighPIN
)

func (l SecurityLevel) String() string {
	switch l {
	case SecurityNone:
		return "none"
	case SecurityKeycardLow:
		return "keycard-low"
	case SecurityKeycardHigh:
		return "keycard-high"
	case SecurityKeycardHighPIN:
		return "keycard-high-pin"
	default:
		return fmt.Sprintf("security(%d)", int(l))
	}
}

// Lock states and events for the door state machine.
const (
	StateLocked   = "locked"
	StateUnlocked = "unlocked"

	EventLock   = "lock"
	EventUnlock = "unlock"
)

// lockContext carries state data for the door machine.
type lockContext struct {
	DoorID string
}

// LockStateMachine enforces valid lock transitions: a locked door only
// accepts unlock, an unlocked door only accepts lock.
type LockStateMachine struct {
	interpreter *statekit.Interpreter[lockContext]
}

// NewLockStateMachine builds the lock machine starting in initialState.
func NewLockStateMachine(doorID, initialState string) (*LockStateMachine, error) {
	builder := statekit.NewMachine[lockContext]("door-lock").
		WithInitial(statekit.StateID(initialState)).
		WithContext(lockContext{DoorID: doorID})

	builder.State(StateLocked).
		On(EventUnlock).Target(StateUnlocked).
		Done()

	builder.State(StateUnlocked).
		On(EventLock).Target(StateLocked).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build lock state machine for door %s: %w", doorID, err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &LockStateMachine{interpreter: interpreter}, nil
}

// Transition attempts a lock/unlock event.
func (sm *LockStateMachine) Transition(event string) error {
	before := sm.Current()
	sm.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := sm.Current()

	if before != after {
		return nil
	}
	return fmt.Errorf("the door cannot %s while %s", event, before)
}

// Current returns the lock state name.
func (sm *LockStateMachine) Current() string {
	return string(sm.interpreter.State().Value)
}

// Door is a powered bulkhead door joining two rooms. The pair is unordered;
// shared lock state lives here, per-side access panels hang off it.
type Door struct {
	ID            string
	RoomIDs       [2]string
	SecurityLevel SecurityLevel
	PIN           string

	lock   *LockStateMachine
	panels map[string]*SecurityPanel // room ID → panel on that side
}

// NewDoor wires a door between two rooms with its initial lock state.
func NewDoor(id, roomA, roomB string, locked bool, level SecurityLevel, pin string) (*Door, error) {
	if roomA == roomB {
		return nil, fmt.Errorf("door %s connects a room to itself", id)
	}
	initial := StateUnlocked
	if locked {
		initial = StateLocked
	}
	lock, err := NewLockStateMachine(id, initial)
	if err != nil {
		return nil, err
	}
	return &Door{
		ID:            id,
		RoomIDs:       [2]string{roomA, roomB},
		SecurityLevel: level,
		PIN:           pin,
		lock:          lock,
		panels:        make(map[string]*SecurityPanel),
	}, nil
}

// Locked reports the current lock state.
func (d *Door) Locked() bool {
	return d.lock.Current() == StateLocked
}

// Lock transitions the door to locked.
func (d *Door) Lock() error {
	return d.lock.Transition(EventLock)
}

// Unlock transitions the door to unlocked.
func (d *Door) Unlock() error {
	return d.lock.Transition(EventUnlock)
}

// Connects reports whether the door touches the given room.
func (d *Door) Connects(roomID string) bool {
	return d.RoomIDs[0] == roomID || d.RoomIDs[1] == roomID
}

// OtherRoom returns the room ID on the far side of the door.
func (d *Door) OtherRoom(roomID string) (string, error) {
	switch roomID {
	case d.RoomIDs[0]:
		return d.RoomIDs[1], nil
	case d.RoomIDs[1]:
		return d.RoomIDs[0], nil
	default:
		return "", fmt.Errorf("room %s is not connected to door %s", roomID, d.ID)
	}
}

// AttachPanel mounts a panel on one side of the door.
func (d *Door) AttachPanel(p *SecurityPanel) error {
	if !d.Connects(p.Side) {
		return fmt.Errorf("panel %s side %s does not touch door %s", p.ID, p.Side, d.ID)
	}
	d.panels[p.Side] = p
	return nil
}

// PanelForRoom returns the panel on the given room's side, or nil.
func (d *Door) PanelForRoom(roomID string) *SecurityPanel {
	return d.panels[roomID]
}

// Panels returns the per-side panel map.
func (d *Door) Panels() map[string]*SecurityPanel {
	return d.panels
}
