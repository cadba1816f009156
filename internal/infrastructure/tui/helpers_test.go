package tui

import (
	"fmt"
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/projectdarkstar/darkstar/internal/application"
	"github.com/projectdarkstar/darkstar/internal/domain"
	"github.com/projectdarkstar/darkstar/internal/domain/item"
	"github.com/projectdarkstar/darkstar/internal/domain/ship"
)

// testSource is a minimal content source: quarters and corridor joined by
// an unlocked low-security door, a jacket and a toolkit in the quarters.
type testSource struct{}

func (testSource) LoadShip(shipName string) (*ship.Ship, map[string]*item.Item, error) {
	catalog := map[string]*item.Item{
		"flight_jacket": item.New(item.Item{ID: "flight_jacket", Name: "Flight Jacket", Kind: item.KindPortable, MassKg: 1.5, EquipSlot: item.SlotTorso, Keywords: []string{"jacket"}, ExamineText: "A worn leather flight jacket."}),
		"toolkit":       item.New(item.Item{ID: "toolkit", Name: "Toolkit", Kind: item.KindPortable, MassKg: 2.0}),
	}

	s := ship.New(shipName)
	dims := ship.Dimensions{LengthM: 4, WidthM: 3, HeightM: 2.5}
	quarters, err := ship.NewRoom("captains_quarters", "Captain's Quarters", []string{"Your *bunk* is here."}, "quarters", dims, 20)
	if err != nil {
		return nil, nil, err
	}
	corridor, err := ship.NewRoom("corridor", "Main Corridor", []string{"A narrow corridor."}, "corridor", dims, 20)
	if err != nil {
		return nil, nil, err
	}
	quarters.Exits["corridor"] = ship.Exit{Target: "corridor", Label: "corridor"}
	corridor.Exits["quarters"] = ship.Exit{Target: "captains_quarters", Label: "captain's quarters"}
	if err := s.AddRoom(quarters); err != nil {
		return nil, nil, err
	}
	if err := s.AddRoom(corridor); err != nil {
		return nil, nil, err
	}

	door, err := ship.NewDoor("door_q_c", "captains_quarters", "corridor", false, ship.SecurityKeycardLow, "")
	if err != nil {
		return nil, nil, err
	}
	for _, side := range door.RoomIDs {
		if err := door.AttachPanel(ship.NewSecurityPanel("panel_"+side, door.ID, side, door.SecurityLevel, "")); err != nil {
			return nil, nil, err
		}
	}
	if err := s.AddDoor(door); err != nil {
		return nil, nil, err
	}

	for _, id := range []string{"flight_jacket", "toolkit"} {
		copied := *catalog[id]
		quarters.AddObject(&copied)
	}
	return s, catalog, nil
}

type memoryRepo struct {
	saves map[string]*domain.SaveSnapshot
}

func (r *memoryRepo) Initialize() error   { return nil }
func (r *memoryRepo) IsInitialized() bool { return true }

func (r *memoryRepo) SaveGame(snap *domain.SaveSnapshot) error {
	if r.saves == nil {
		r.saves = map[string]*domain.SaveSnapshot{}
	}
	r.saves[snap.ID] = snap
	return nil
}

func (r *memoryRepo) LoadGame(id string) (*domain.SaveSnapshot, error) {
	if snap, ok := r.saves[id]; ok {
		return snap, nil
	}
	return nil, fmt.Errorf("save %s not found", id)
}

func (r *memoryRepo) ListSaves() ([]domain.SaveInfo, error) { return nil, nil }
func (r *memoryRepo) DeleteSave(id string) error            { return nil }

func testDeps(t *testing.T) Deps {
	t.Helper()
	game := application.NewGameService(testSource{}, &memoryRepo{}, 1, "", rand.New(rand.NewSource(3)))
	doors := application.NewDoorService()
	repairs := application.NewRepairService()
	return Deps{
		Game:     game,
		Doors:    doors,
		Repairs:  repairs,
		Commands: application.NewCommandProcessor(game, doors, repairs),
	}
}

func testSession(t *testing.T, deps Deps) *application.Session {
	t.Helper()
	sess, err := deps.Game.NewGame("", "")
	if err != nil {
		t.Fatal(err)
	}
	return sess
}

func typeAndEnter(m shipModel, text string) (shipModel, tea.Cmd, shipEvent) {
	next, _, _ := m.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.update(tea.KeyMsg{Type: tea.KeyEnter})
}
