package application

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/projectdarkstar/darkstar/internal/domain"
	"github.com/projectdarkstar/darkstar/internal/domain/atmosphere"
	"github.com/projectdarkstar/darkstar/internal/domain/chrono"
	"github.com/projectdarkstar/darkstar/internal/domain/crew"
	"github.com/projectdarkstar/darkstar/internal/domain/item"
	"github.com/projectdarkstar/darkstar/internal/domain/ship"
)

// Defaults for a fresh game.
const (
	DefaultPlayerName  = "Jack Harrow"
	DefaultShipName    = "Tempus Fugit"
	DefaultStartRoomID = "captains_quarters"
	DefaultCrewCount   = 1
	WalkMinutes        = 1
	DefaultWaitMinutes = 30
	PanelRepairMinutes = 30
)

// DefaultSkills is the starting background until character creation grows
// a background picker.
var DefaultSkills = []string{
	"Freighter Pilot License",
	"Space Systems Engineering",
	"EVA Certification",
	"Computer Systems Specialist",
	"Basic Trade Negotiation",
	"Zero-G Repair",
}

// ContentSource assembles a playable ship from content data.
type ContentSource interface {
	LoadShip(shipName string) (*ship.Ship, map[string]*item.Item, error)
}

// GameService creates, resumes, saves and drives game sessions.
type GameService struct {
	source    ContentSource
	saves     domain.SaveRepository
	crewCount int
	rng       *rand.Rand
	startRoom string

	scrubberEff float64
	oxygenEff   float64
	thermalEff  float64
}

// NewGameService wires the game over a content source and save store. rng
// seeds the atmosphere simulation; pass a fixed-seed source in tests.
func NewGameService(source ContentSource, saves domain.SaveRepository, crewCount int, startRoomID string, rng *rand.Rand) *GameService {
	if crewCount <= 0 {
		crewCount = DefaultCrewCount
	}
	if startRoomID == "" {
		startRoomID = DefaultStartRoomID
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GameService{
		source:      source,
		saves:       saves,
		crewCount:   crewCount,
		rng:         rng,
		startRoom:   startRoomID,
		scrubberEff: 1.0,
		oxygenEff:   1.0,
		thermalEff:  1.0,
	}
}

// ConfigureLifeSupport sets the component efficiencies new games start
// with. Resumed games take theirs from the save instead.
func (g *GameService) ConfigureLifeSupport(scrubber, oxygen, thermal float64) {
	g.scrubberEff = scrubber
	g.oxygenEff = oxygen
	g.thermalEff = thermal
}

// NewGame loads the ship and places a fresh player in their quarters.
func (g *GameService) NewGame(playerName, shipName string) (*Session, error) {
	if playerName == "" {
		playerName = DefaultPlayerName
	}
	if shipName == "" {
		shipName = DefaultShipName
	}

	vessel, catalog, err := g.source.LoadShip(shipName)
	if err != nil {
		return nil, fmt.Errorf("load ship content: %w", err)
	}

	start, err := vessel.Room(g.startRoom)
	if err != nil {
		return nil, fmt.Errorf("starting room: %w", err)
	}

	ls := atmosphere.New(vessel, g.crewCount, g.rng)
	ls.CO2Scrubber.Efficiency = g.scrubberEff
	ls.OxygenGen.Efficiency = g.oxygenEff
	ls.ThermalControl.Efficiency = g.thermalEff

	return &Session{
		ID:          newSessionID(),
		CreatedAt:   time.Now().UTC(),
		Player:      crew.NewPlayer(playerName, DefaultSkills),
		Ship:        vessel,
		Catalog:     catalog,
		LifeSupport: ls,
		Chronometer: chrono.New(chrono.LaunchEpoch),
		CurrentRoom: start,
	}, nil
}

// Resume rebuilds a session from a saved snapshot.
func (g *GameService) Resume(saveID string) (*Session, error) {
	snap, err := g.saves.LoadGame(saveID)
	if err != nil {
		return nil, err
	}

	vessel, catalog, err := g.source.LoadShip(snap.ShipName)
	if err != nil {
		return nil, fmt.Errorf("load ship content: %w", err)
	}

	sess := &Session{
		Ship:        vessel,
		Catalog:     catalog,
		LifeSupport: atmosphere.New(vessel, g.crewCount, g.rng),
	}
	if err := sess.applySnapshot(snap); err != nil {
		return nil, fmt.Errorf("apply save %s: %w", saveID, err)
	}
	return sess, nil
}

// ReloadContent rebuilds the ship from the content files and replays the
// session's mutable state onto it. On any error the session is untouched,
// so a half-edited data file never corrupts a running game.
func (g *GameService) ReloadContent(sess *Session) error {
	snap := sess.Snapshot()

	vessel, catalog, err := g.source.LoadShip(sess.Ship.Name)
	if err != nil {
		return fmt.Errorf("reload ship content: %w", err)
	}

	fresh := &Session{
		Ship:        vessel,
		Catalog:     catalog,
		LifeSupport: atmosphere.New(vessel, g.crewCount, g.rng),
	}
	if err := fresh.applySnapshot(snap); err != nil {
		return fmt.Errorf("reapply session state: %w", err)
	}

	*sess = *fresh
	return nil
}

// Save persists the session and returns the save ID.
func (g *GameService) Save(sess *Session) (string, error) {
	if err := g.saves.Initialize(); err != nil {
		return "", err
	}
	snap := sess.Snapshot()
	if err := g.saves.SaveGame(snap); err != nil {
		return "", err
	}
	return snap.ID, nil
}

// movePrefixes are stripped from movement targets so "go to the galley",
// "go to galley" and "enter the galley" all resolve the same way. Only the
// first matching prefix is removed.
var movePrefixes = []string{"to the ", "to ", "the "}

// NormalizeMoveTarget lowers, trims and strips natural-language prefixes.
func NormalizeMoveTarget(raw string) string {
	target := strings.ToLower(strings.TrimSpace(raw))
	for _, prefix := range movePrefixes {
		if strings.HasPrefix(target, prefix) {
			target = strings.TrimSpace(strings.TrimPrefix(target, prefix))
			break
		}
	}
	return target
}

// Move walks the player through an exit. Locked doors block; open archways
// and unlocked doors pass. A successful move costs ship time.
func (g *GameService) Move(sess *Session, rawTarget string) string {
	target := NormalizeMoveTarget(rawTarget)
	if target == "" {
		return "Where do you want to go? Try 'go to [place]'."
	}

	ex, ok := sess.Ship.ResolveExit(sess.CurrentRoom, target)
	if !ok {
		return "You can't go that way."
	}

	next, err := sess.Ship.Room(ex.Target)
	if err != nil {
		return "You can't go that way."
	}

	if ex.Door != nil && ex.Door.Locked() {
		label := sess.CurrentRoom.ExitLabel(next.ID, next.Name)
		return fmt.Sprintf("The door to %s is locked.", label)
	}

	sess.CurrentRoom = next
	sess.AdvanceTime(WalkMinutes)
	return fmt.Sprintf("You enter the %s.", next.Name)
}

// Look rebuilds the full room description: text, visible objects, exits.
func (g *GameService) Look(sess *Session) string {
	room := sess.CurrentRoom
	var b strings.Builder

	b.WriteString(room.Name)
	b.WriteString("\n\n")
	for _, line := range room.Description {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(room.Objects) > 0 {
		b.WriteString("\nYou see:\n")
		for _, obj := range room.Objects {
			fmt.Fprintf(&b, "  - %s\n", obj.Name)
		}
	}

	if cargo := sess.Ship.CargoForRoom(room.ID); len(cargo) > 0 {
		b.WriteString("\nStowed as cargo:\n")
		for _, it := range cargo {
			fmt.Fprintf(&b, "  - %s\n", it.Name)
		}
	}

	if labels := room.ExitLabels(); len(labels) > 0 {
		fmt.Fprintf(&b, "\nExits: %s\n", strings.Join(labels, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

// Examine inspects a room object or something the player carries.
func (g *GameService) Examine(sess *Session, target string) string {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" {
		return "Examine what?"
	}
	if obj := sess.CurrentRoom.FindObject(target); obj != nil {
		return obj.Examine()
	}
	if held := sess.Player.FindCarried(target); held != nil {
		return held.Examine()
	}
	return fmt.Sprintf("You don't see any '%s' here.", target)
}

// Take picks up a portable object from the room.
func (g *GameService) Take(sess *Session, target string) string {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" {
		return "Take what?"
	}

	obj := sess.CurrentRoom.FindObject(target)
	if obj == nil {
		// Cargo holds let you pull stowed freight back out.
		for _, it := range sess.Ship.CargoForRoom(sess.CurrentRoom.ID) {
			if it.Matches(target) {
				obj = it
				break
			}
		}
		if obj == nil {
			return fmt.Sprintf("You don't see any '%s' here.", target)
		}
		ok, msg := sess.Player.Add(obj)
		if ok {
			sess.Ship.RemoveFromCargo(obj.ID, sess.CurrentRoom.ID)
		}
		return msg
	}

	if !obj.Takeable() {
		return fmt.Sprintf("The %s is fixed in place.", obj.Name)
	}
	ok, msg := sess.Player.Add(obj)
	if ok {
		sess.CurrentRoom.RemoveObject(obj.ID)
	}
	return msg
}

// Drop puts a carried item down. In a cargo hold it is stowed as cargo;
// anywhere else it lies on the deck as a room object.
func (g *GameService) Drop(sess *Session, target string) string {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" {
		return "Drop what?"
	}

	var held *item.Item
	for _, it := range sess.Player.Inventory() {
		if it.Matches(target) {
			held = it
			break
		}
	}
	if held == nil {
		return fmt.Sprintf("You aren't carrying any '%s'.", target)
	}

	sess.Player.Remove(held)
	if sess.Ship.AddToCargo(held, sess.CurrentRoom.ID) {
		return fmt.Sprintf("You stow the %s as cargo.", held.Name)
	}
	sess.CurrentRoom.AddObject(held)
	return fmt.Sprintf("You drop the %s.", held.Name)
}

// EquipItem wears a carried item in its slot.
func (g *GameService) EquipItem(sess *Session, target string) string {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" {
		return "Equip what?"
	}
	held := sess.Player.FindCarried(target)
	if held == nil {
		return fmt.Sprintf("You aren't carrying any '%s'.", target)
	}
	_, msg := sess.Player.Equip(held)
	return msg
}

// UnequipTarget removes worn gear, addressed by slot name or item keyword.
func (g *GameService) UnequipTarget(sess *Session, target string) string {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" {
		return "Remove what?"
	}

	if item.ValidSlot(item.Slot(target)) {
		_, msg := sess.Player.Unequip(item.Slot(target))
		return msg
	}

	for _, slot := range item.EquipSlots {
		if worn := sess.Player.Equipped(slot); worn != nil && worn.Matches(target) {
			_, msg := sess.Player.Unequip(slot)
			return msg
		}
	}
	return fmt.Sprintf("You aren't wearing any '%s'.", target)
}

// Wait passes ship time deliberately.
func (g *GameService) Wait(sess *Session, minutes int64) string {
	if minutes <= 0 {
		minutes = DefaultWaitMinutes
	}
	sess.AdvanceTime(minutes)
	return fmt.Sprintf("You wait. The chronometer reads %s.", sess.Chronometer.Format())
}

// Status reports the local environment and carry load.
func (g *GameService) Status(sess *Session) string {
	r := sess.LifeSupport.Readout(sess.CurrentRoom)
	var b strings.Builder
	fmt.Fprintf(&b, "Ship time: %s\n", sess.Chronometer.Format())
	fmt.Fprintf(&b, "Location:  %s\n", sess.CurrentRoom.Name)
	fmt.Fprintf(&b, "Pressure:  %.1f psi   Temp: %.1f °C\n", r.PressurePSI, r.TempC)
	fmt.Fprintf(&b, "ppO2: %.1f mmHg   ppCO2: %.1f mmHg   Air quality: %.0f%%\n",
		r.PPO2MMHg, r.PPCO2MMHg, r.AirQualityPC)
	fmt.Fprintf(&b, "Carrying:  %.1f / %.1f kg", sess.Player.CarryMassKg(), sess.Player.MaxCarryMassKg)
	return b.String()
}
