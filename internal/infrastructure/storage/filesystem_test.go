package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/projectdarkstar/darkstar/internal/domain"
)

func testSnapshot(id string, savedAt time.Time) *domain.SaveSnapshot {
	return &domain.SaveSnapshot{
		ID:                 id,
		CreatedAt:          savedAt.Add(-time.Hour),
		SavedAt:            savedAt,
		PlayerName:         "Jack Harrow",
		ShipName:           "Tempus Fugit",
		CurrentRoomID:      "corridor",
		InventoryItemIDs:   []string{"toolkit"},
		EquippedItemIDs:    map[string]string{"torso": "flight_jacket"},
		RoomObjectIDs:      map[string][]string{"galley": {"ration_pack"}},
		Doors:              []domain.DoorState{{DoorID: "door_corridor_bridge", Locked: true}},
		Panels:             []domain.PanelState{{PanelID: "p1", Damaged: true}},
		ChronometerMinutes: 42,
		RoomTempsC:         map[string]float64{"galley": 19.4},
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	repo := NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatal(err)
	}
	if !repo.IsInitialized() {
		t.Fatal("Initialize should create the saves directory")
	}

	snap := testSnapshot("test-save", time.Now().UTC())
	if err := repo.SaveGame(snap); err != nil {
		t.Fatal(err)
	}

	loaded, err := repo.LoadGame("test-save")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.PlayerName != snap.PlayerName || loaded.CurrentRoomID != snap.CurrentRoomID {
		t.Errorf("loaded %+v", loaded)
	}
	if loaded.ChronometerMinutes != 42 {
		t.Errorf("chronometer = %d", loaded.ChronometerMinutes)
	}
	if loaded.EquippedItemIDs["torso"] != "flight_jacket" {
		t.Error("equipped map lost")
	}
	if len(loaded.Doors) != 1 || !loaded.Doors[0].Locked {
		t.Error("door state lost")
	}
	if got := loaded.RoomTempsC["galley"]; got != 19.4 {
		t.Errorf("room temp = %v", got)
	}
}

func TestLoadGameMissing(t *testing.T) {
	repo := NewFilesystemRepository(t.TempDir())
	repo.Initialize()
	if _, err := repo.LoadGame("nope"); err == nil {
		t.Error("missing save should error")
	}
}

func TestSaveIDTraversalRejected(t *testing.T) {
	repo := NewFilesystemRepository(t.TempDir())
	repo.Initialize()

	for _, id := range []string{"", "../escape", "a/b", "saves/../../x"} {
		snap := testSnapshot(id, time.Now())
		if err := repo.SaveGame(snap); err == nil {
			t.Errorf("id %q should be rejected", id)
		}
	}
}

func TestListSavesSortedNewestFirst(t *testing.T) {
	repo := NewFilesystemRepository(t.TempDir())
	repo.Initialize()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		if err := repo.SaveGame(testSnapshot(id, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatal(err)
		}
	}

	infos, err := repo.ListSaves()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 3 {
		t.Fatalf("got %d saves", len(infos))
	}
	if infos[0].ID != "new" || infos[2].ID != "old" {
		t.Errorf("order = %v, %v, %v", infos[0].ID, infos[1].ID, infos[2].ID)
	}
	if infos[0].ShipTime == "" {
		t.Error("listing should render ship time")
	}
}

func TestListSavesSkipsUnreadableFiles(t *testing.T) {
	home := t.TempDir()
	repo := NewFilesystemRepository(home)
	repo.Initialize()
	repo.SaveGame(testSnapshot("good", time.Now().UTC()))

	garbage := filepath.Join(home, SavesDir, "broken.json")
	if err := os.WriteFile(garbage, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	infos, err := repo.ListSaves()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 || infos[0].ID != "good" {
		t.Errorf("got %+v", infos)
	}
}

func TestListSavesWithoutInitialize(t *testing.T) {
	repo := NewFilesystemRepository(t.TempDir())
	infos, err := repo.ListSaves()
	if err != nil || infos != nil {
		t.Errorf("uninitialized home should list nothing, got %v, %v", infos, err)
	}
}

func TestDeleteSave(t *testing.T) {
	repo := NewFilesystemRepository(t.TempDir())
	repo.Initialize()
	repo.SaveGame(testSnapshot("doomed", time.Now().UTC()))

	if err := repo.DeleteSave("doomed"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.LoadGame("doomed"); err == nil {
		t.Error("deleted save should be gone")
	}
	if err := repo.DeleteSave("../etc"); err == nil {
		t.Error("traversal in delete should be rejected")
	}
}
