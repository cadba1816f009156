package application

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/projectdarkstar/darkstar/internal/domain"
	"github.com/projectdarkstar/darkstar/internal/domain/item"
	"github.com/projectdarkstar/darkstar/internal/domain/ship"
)

// testCatalog defines the item set the fixture ship is stocked from.
func testCatalog() map[string]*item.Item {
	defs := []item.Item{
		{ID: ship.KeycardLowID, Name: "Low-Security ID Card", Kind: item.KindPortable, MassKg: 0.01, Keywords: []string{"card", "low card"}},
		{ID: ship.KeycardHighID, Name: "High-Security ID Card", Kind: item.KindPortable, MassKg: 0.01, Keywords: []string{"high card"}},
		{ID: ship.KeycardHighDamagedID, Name: "Damaged ID Card", Kind: item.KindPortable, MassKg: 0.01, Keywords: []string{"damaged card"}},
		{ID: "flight_jacket", Name: "Flight Jacket", Kind: item.KindPortable, MassKg: 1.5, EquipSlot: item.SlotTorso, Keywords: []string{"jacket"}},
		{ID: "toolkit", Name: "Toolkit", Kind: item.KindPortable, MassKg: 2.0},
		{ID: "crate", Name: "Supply Crate", Kind: item.KindPortable, MassKg: 9.0},
		{ID: "bunk", Name: "Bunk", Kind: item.KindFixed, ExamineText: "Your bunk. The blanket is regulation grey."},
	}
	catalog := make(map[string]*item.Item, len(defs))
	for _, def := range defs {
		catalog[def.ID] = item.New(def)
	}
	return catalog
}

// testSource builds a five-room ship on every load, the way the content
// loader instantiates fresh definitions from its files.
type testSource struct {
	// damagedCorridorPanel breaks the corridor-side bridge panel at load.
	damagedCorridorPanel bool
	// failLoad simulates unreadable content.
	failLoad bool
}

func (src *testSource) LoadShip(shipName string) (*ship.Ship, map[string]*item.Item, error) {
	if src.failLoad {
		return nil, nil, fmt.Errorf("content unavailable")
	}

	catalog := testCatalog()
	instance := func(id string) *item.Item {
		copied := *catalog[id]
		return &copied
	}

	s := ship.New(shipName)
	dims := ship.Dimensions{LengthM: 4, WidthM: 3, HeightM: 2.5}

	rooms := []struct {
		id, name string
	}{
		{"captains_quarters", "Captain's Quarters"},
		{"corridor", "Main Corridor"},
		{"bridge", "Bridge"},
		{"galley", "Galley"},
		{"cargo_bay", "Cargo Bay"},
	}
	for _, r := range rooms {
		room, err := ship.NewRoom(r.id, r.name, []string{"A compartment of the ship."}, "", dims, 20)
		if err != nil {
			return nil, nil, err
		}
		if err := s.AddRoom(room); err != nil {
			return nil, nil, err
		}
	}

	exits := []struct {
		room, key, target, label, direction string
		shortcuts                           []string
	}{
		{"captains_quarters", "corridor", "corridor", "corridor", "aft", nil},
		{"corridor", "quarters", "captains_quarters", "captain's quarters", "fore", []string{"quarters"}},
		{"corridor", "bridge", "bridge", "bridge", "fore", nil},
		{"bridge", "corridor", "corridor", "corridor", "aft", nil},
		{"corridor", "galley", "galley", "galley", "port", nil},
		{"galley", "corridor", "corridor", "corridor", "starboard", nil},
		{"corridor", "cargo", "cargo_bay", "cargo bay", "below", []string{"hold"}},
		{"cargo_bay", "corridor", "corridor", "corridor", "above", nil},
	}
	for _, e := range exits {
		room := s.Rooms[e.room]
		room.Exits[e.key] = ship.Exit{
			Target: e.target, Label: e.label, Direction: e.direction, Shortcuts: e.shortcuts,
		}
	}

	quartersDoor, err := ship.NewDoor("door_quarters_corridor", "captains_quarters", "corridor", false, ship.SecurityKeycardLow, "")
	if err != nil {
		return nil, nil, err
	}
	bridgeDoor, err := ship.NewDoor("door_corridor_bridge", "corridor", "bridge", true, ship.SecurityKeycardHighPIN, "1234")
	if err != nil {
		return nil, nil, err
	}
	for _, d := range []*ship.Door{quartersDoor, bridgeDoor} {
		for _, side := range d.RoomIDs {
			panel := ship.NewSecurityPanel("panel_"+d.ID+"_"+side, d.ID, side, d.SecurityLevel, d.PIN)
			if err := d.AttachPanel(panel); err != nil {
				return nil, nil, err
			}
		}
		if err := s.AddDoor(d); err != nil {
			return nil, nil, err
		}
	}
	if src.damagedCorridorPanel {
		bridgeDoor.PanelForRoom("corridor").Damage()
	}

	s.EnableCargo("cargo_bay")

	quarters := s.Rooms["captains_quarters"]
	quarters.AddObject(instance(ship.KeycardLowID))
	quarters.AddObject(instance(ship.KeycardHighID))
	quarters.AddObject(instance("flight_jacket"))
	quarters.AddObject(instance("bunk"))
	s.Rooms["galley"].AddObject(instance("toolkit"))
	s.Rooms["cargo_bay"].AddObject(instance("crate"))

	return s, catalog, nil
}

// memoryRepo is an in-memory SaveRepository for tests.
type memoryRepo struct {
	saves map[string]*domain.SaveSnapshot
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{saves: make(map[string]*domain.SaveSnapshot)}
}

func (r *memoryRepo) Initialize() error   { return nil }
func (r *memoryRepo) IsInitialized() bool { return true }

func (r *memoryRepo) DeleteSave(id string) error {
	delete(r.saves, id)
	return nil
}

func (r *memoryRepo) SaveGame(snap *domain.SaveSnapshot) error {
	r.saves[snap.ID] = snap
	return nil
}

func (r *memoryRepo) LoadGame(id string) (*domain.SaveSnapshot, error) {
	snap, ok := r.saves[id]
	if !ok {
		return nil, fmt.Errorf("save %s not found", id)
	}
	return snap, nil
}

func (r *memoryRepo) ListSaves() ([]domain.SaveInfo, error) {
	var infos []domain.SaveInfo
	for _, snap := range r.saves {
		infos = append(infos, domain.SaveInfo{ID: snap.ID, PlayerName: snap.PlayerName})
	}
	return infos, nil
}

// newTestGame wires a game service over the fixture with a fixed seed.
func newTestGame(t *testing.T, src *testSource) (*GameService, *memoryRepo) {
	t.Helper()
	repo := newMemoryRepo()
	game := NewGameService(src, repo, 1, "", rand.New(rand.NewSource(7)))
	return game, repo
}

// newTestSession starts a fresh default game.
func newTestSession(t *testing.T, src *testSource) (*GameService, *Session) {
	t.Helper()
	game, _ := newTestGame(t, src)
	sess, err := game.NewGame("", "")
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return game, sess
}

// giveItem puts a catalog item straight into the player's inventory.
func giveItem(t *testing.T, sess *Session, id string) *item.Item {
	t.Helper()
	def, ok := sess.Catalog[id]
	if !ok {
		t.Fatalf("no catalog item %q", id)
	}
	copied := *def
	if ok, msg := sess.Player.Add(&copied); !ok {
		t.Fatalf("give %s: %s", id, msg)
	}
	return &copied
}
