package application

import (
	"strings"
	"testing"

	"github.com/projectdarkstar/darkstar/internal/domain/ship"
)

func atCorridor(t *testing.T, src *testSource) (*GameService, *Session, *DoorService) {
	t.Helper()
	game, sess := newTestSession(t, src)
	if got := game.Move(sess, "corridor"); got != "You enter the Main Corridor." {
		t.Fatalf("setup move failed: %q", got)
	}
	return game, sess, NewDoorService()
}

func TestBeginWithoutTarget(t *testing.T) {
	_, sess, doors := atCorridor(t, &testSource{})
	out := doors.Begin(sess, ActionUnlock, "")
	if out.Text != "Which door?" || out.Swiping {
		t.Errorf("got %+v", out)
	}
}

func TestBeginUnknownExit(t *testing.T) {
	_, sess, doors := atCorridor(t, &testSource{})
	out := doors.Begin(sess, ActionUnlock, "reactor room")
	if out.Text != "There is no such exit." {
		t.Errorf("got %q", out.Text)
	}
}

func TestBeginArchwayHasNothingToLock(t *testing.T) {
	_, sess, doors := atCorridor(t, &testSource{})

	out := doors.Begin(sess, ActionUnlock, "galley")
	if !strings.Contains(out.Text, "open archway") || !strings.Contains(out.Text, "nothing to unlock") {
		t.Errorf("unlock archway: %q", out.Text)
	}
	out = doors.Begin(sess, ActionLock, "galley")
	if !strings.Contains(out.Text, "open archway") || !strings.Contains(out.Text, "it has no lock") {
		t.Errorf("lock archway: %q", out.Text)
	}
}

func TestBeginAlreadyInState(t *testing.T) {
	_, sess, doors := atCorridor(t, &testSource{})

	if out := doors.Begin(sess, ActionLock, "bridge"); out.Text != "That door is already locked." {
		t.Errorf("got %q", out.Text)
	}
	if out := doors.Begin(sess, ActionUnlock, "quarters"); out.Text != "That door is already unlocked." {
		t.Errorf("got %q", out.Text)
	}
}

func TestBeginNeedsACard(t *testing.T) {
	_, sess, doors := atCorridor(t, &testSource{})
	out := doors.Begin(sess, ActionUnlock, "bridge")
	if out.Text != "You need an ID card to swipe the door access panel." || out.Swiping {
		t.Errorf("got %+v", out)
	}
}

func TestBeginDamagedPanel(t *testing.T) {
	_, sess, doors := atCorridor(t, &testSource{damagedCorridorPanel: true})
	giveItem(t, sess, ship.KeycardHighID)

	out := doors.Begin(sess, ActionUnlock, "bridge")
	if !strings.Contains(out.Text, "damaged and currently unusable") {
		t.Errorf("got %q", out.Text)
	}
}

func TestSwipeRejectsLowCardOnHighPanel(t *testing.T) {
	_, sess, doors := atCorridor(t, &testSource{})
	giveItem(t, sess, ship.KeycardLowID)

	out := doors.Begin(sess, ActionUnlock, "bridge")
	if !out.Swiping {
		t.Fatalf("low card should still reach the reader, got %+v", out)
	}
	out = doors.CompleteSwipe(sess, out.Attempt)
	if out.Text != "Access denied: high-security clearance required." {
		t.Errorf("got %q", out.Text)
	}
	if out.AwaitPIN {
		t.Error("denied card must not reach the PIN prompt")
	}
}

func TestUnlockWithPIN(t *testing.T) {
	_, sess, doors := atCorridor(t, &testSource{})
	giveItem(t, sess, ship.KeycardHighID)

	out := doors.Begin(sess, ActionUnlock, "bridge")
	if !out.Swiping || out.Attempt == nil {
		t.Fatalf("Begin: %+v", out)
	}

	out = doors.CompleteSwipe(sess, out.Attempt)
	if !out.AwaitPIN {
		t.Fatalf("level 3 panel should ask for a PIN: %+v", out)
	}
	if out.Text != "Enter PIN to unlock the door to bridge (0/3 attempts)" {
		t.Errorf("PIN prompt = %q", out.Text)
	}

	out = doors.SubmitPIN(sess, out.Attempt, "1234")
	if out.Text != "PIN accepted, door unlocked. Access to bridge is now open." {
		t.Errorf("success text = %q", out.Text)
	}

	door := sess.Ship.FindDoorFromRoom(sess.CurrentRoom, "bridge")
	if door.Locked() {
		t.Error("door should be unlocked")
	}
}

func TestWrongPINRetries(t *testing.T) {
	_, sess, doors := atCorridor(t, &testSource{})
	giveItem(t, sess, ship.KeycardHighID)

	out := doors.Begin(sess, ActionUnlock, "bridge")
	out = doors.CompleteSwipe(sess, out.Attempt)

	out = doors.SubmitPIN(sess, out.Attempt, "0000")
	if !out.AwaitPIN {
		t.Fatal("first wrong PIN should re-prompt")
	}
	if out.Text != "Incorrect PIN. Attempts left: 2/3" {
		t.Errorf("retry text = %q", out.Text)
	}

	// A correct entry on the second try still succeeds.
	out = doors.SubmitPIN(sess, out.Attempt, "1234")
	if strings.HasPrefix(out.Text, "Incorrect") {
		t.Errorf("got %q", out.Text)
	}
}

func TestPINLockoutInvalidatesCard(t *testing.T) {
	_, sess, doors := atCorridor(t, &testSource{})
	giveItem(t, sess, ship.KeycardHighID)

	out := doors.Begin(sess, ActionUnlock, "bridge")
	out = doors.CompleteSwipe(sess, out.Attempt)
	for i := 0; i < 2; i++ {
		out = doors.SubmitPIN(sess, out.Attempt, "9999")
		if !out.AwaitPIN {
			t.Fatalf("attempt %d should re-prompt", i+1)
		}
	}

	out = doors.SubmitPIN(sess, out.Attempt, "9999")
	if out.AwaitPIN {
		t.Fatal("third failure must terminate the flow")
	}
	if !strings.Contains(out.Text, "Access denied after 3 incorrect PIN attempts. Process terminated.") {
		t.Errorf("lockout text = %q", out.Text)
	}
	if !strings.Contains(out.Text, "ID card invalidated.") {
		t.Errorf("lockout should report the burned card: %q", out.Text)
	}

	if sess.Player.HasItem(ship.KeycardHighID) {
		t.Error("high-sec card should be gone")
	}
	if !sess.Player.HasItem(ship.KeycardHighDamagedID) {
		t.Error("damaged replacement missing")
	}
	door := sess.Ship.FindDoorFromRoom(sess.CurrentRoom, "bridge")
	if !door.Locked() {
		t.Error("door must stay locked after a lockout")
	}
}

func TestLockUnlockedDoor(t *testing.T) {
	_, sess, doors := atCorridor(t, &testSource{})
	giveItem(t, sess, ship.KeycardLowID)

	out := doors.Begin(sess, ActionLock, "quarters")
	if !out.Swiping {
		t.Fatalf("Begin lock: %+v", out)
	}
	out = doors.CompleteSwipe(sess, out.Attempt)
	if out.Text != "ID accepted, door locked. Access to captain's quarters is now closed." {
		t.Errorf("lock text = %q", out.Text)
	}

	door := sess.Ship.FindDoorFromRoom(sess.CurrentRoom, "quarters")
	if !door.Locked() {
		t.Error("door should be locked")
	}
}
