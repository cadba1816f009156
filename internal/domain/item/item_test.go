package item

import "testing"

func TestNewAddsNameKeyword(t *testing.T) {
	it := New(Item{ID: "flashlight", Name: "Flashlight", Keywords: []string{"light", "torch"}})
	if !it.Matches("flashlight") {
		t.Error("lowercased name should match as a keyword")
	}
	if !it.Matches("TORCH") {
		t.Error("keyword matching should be case-insensitive")
	}
	if it.Matches("wrench") {
		t.Error("unrelated word should not match")
	}
}

func TestNewDoesNotDuplicateNameKeyword(t *testing.T) {
	it := New(Item{ID: "toolkit", Name: "Toolkit", Keywords: []string{"Toolkit"}})
	if len(it.Keywords) != 1 {
		t.Errorf("expected 1 keyword, got %v", it.Keywords)
	}
}

func TestExamineFallsBackToDescription(t *testing.T) {
	it := New(Item{ID: "crate", Name: "Crate", Description: "A battered cargo crate."})
	if got := it.Examine(); got != "A battered cargo crate." {
		t.Errorf("Examine() = %q", got)
	}
}

func TestTakeable(t *testing.T) {
	portable := New(Item{ID: "a", Name: "A", Kind: KindPortable})
	fixed := New(Item{ID: "b", Name: "B", Kind: KindFixed})
	if !portable.Takeable() {
		t.Error("portable item should be takeable")
	}
	if fixed.Takeable() {
		t.Error("fixed item should not be takeable")
	}
}

func TestWearable(t *testing.T) {
	tests := []struct {
		slot Slot
		want bool
	}{
		{SlotNone, false},
		{SlotHead, true},
		{SlotBody, true},
		{SlotTorso, true},
		{SlotWaist, true},
		{SlotFeet, true},
		{Slot("tail"), false},
	}
	for _, tt := range tests {
		it := New(Item{ID: "x", Name: "X", Kind: KindPortable, EquipSlot: tt.slot})
		if got := it.Wearable(); got != tt.want {
			t.Errorf("Wearable() with slot %q = %v, want %v", tt.slot, got, tt.want)
		}
	}
}

func TestValidSlot(t *testing.T) {
	if ValidSlot(Slot("pocket")) {
		t.Error("pocket is not a slot")
	}
	for _, slot := range EquipSlots {
		if !ValidSlot(slot) {
			t.Errorf("slot %q should be valid", slot)
		}
	}
}
