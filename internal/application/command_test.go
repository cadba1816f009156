package application

import (
	"strings"
	"testing"
)

func newTestProcessor(t *testing.T, src *testSource) (*CommandProcessor, *Session) {
	t.Helper()
	game, sess := newTestSession(t, src)
	return NewCommandProcessor(game, NewDoorService(), NewRepairService()), sess
}

func TestProcessBlankInput(t *testing.T) {
	p, sess := newTestProcessor(t, &testSource{})
	res := p.Process(sess, "   ")
	if res.Text != "" || res.Effect != EffectNone {
		t.Errorf("blank input should be a no-op, got %+v", res)
	}
}

func TestProcessUnknownVerb(t *testing.T) {
	p, sess := newTestProcessor(t, &testSource{})
	res := p.Process(sess, "dance")
	if res.Text != "I don't understand 'dance'. Try 'help' for available commands." {
		t.Errorf("unknown verb response = %q", res.Text)
	}
}

func TestProcessQuit(t *testing.T) {
	p, sess := newTestProcessor(t, &testSource{})
	for _, verb := range []string{"quit", "exit", "QUIT"} {
		res := p.Process(sess, verb)
		if res.Effect != EffectQuit {
			t.Errorf("%q should quit", verb)
		}
		if res.Text != QuitMessage {
			t.Errorf("quit text = %q", res.Text)
		}
	}
}

func TestProcessAliases(t *testing.T) {
	p, sess := newTestProcessor(t, &testSource{})

	look := p.Process(sess, "look").Text
	if l := p.Process(sess, "l").Text; l != look {
		t.Error("l should alias look")
	}

	take := p.Process(sess, "take jacket")
	if take.Text != "You take the Flight Jacket." {
		t.Errorf("take = %q", take.Text)
	}
	if x := p.Process(sess, "x jacket"); x.Text == "" || strings.HasPrefix(x.Text, "I don't understand") {
		t.Errorf("x should alias examine, got %q", x.Text)
	}
}

func TestProcessLookWithArgsExamines(t *testing.T) {
	p, sess := newTestProcessor(t, &testSource{})
	res := p.Process(sess, "look bunk")
	if res.Text != "Your bunk. The blanket is regulation grey." {
		t.Errorf("look bunk = %q", res.Text)
	}
}

func TestProcessInventoryEffect(t *testing.T) {
	p, sess := newTestProcessor(t, &testSource{})
	for _, verb := range []string{"inventory", "inv", "i"} {
		if res := p.Process(sess, verb); res.Effect != EffectOpenInventory {
			t.Errorf("%q should open the inventory screen", verb)
		}
	}
}

func TestProcessWaitValidation(t *testing.T) {
	p, sess := newTestProcessor(t, &testSource{})

	if res := p.Process(sess, "wait"); res.Effect != EffectClockFlash {
		t.Error("default wait should flash the clock")
	}
	for _, bad := range []string{"wait soon", "wait -5", "wait 0"} {
		res := p.Process(sess, bad)
		if res.Text != "Wait how long? Try 'wait 30' (minutes)." {
			t.Errorf("%q response = %q", bad, res.Text)
		}
	}
}

func TestProcessTime(t *testing.T) {
	p, sess := newTestProcessor(t, &testSource{})
	res := p.Process(sess, "time")
	if res.Text != "The ship chronometer reads 01-01-2276  00:00." {
		t.Errorf("time = %q", res.Text)
	}
}

func TestProcessSave(t *testing.T) {
	p, sess := newTestProcessor(t, &testSource{})
	res := p.Process(sess, "save")
	if res.Effect != EffectSaved || res.SaveID == "" {
		t.Errorf("save result = %+v", res)
	}
	if !strings.HasPrefix(res.Text, "Game saved") {
		t.Errorf("save text = %q", res.Text)
	}
}

func TestProcessUnlockStartsSwipe(t *testing.T) {
	p, sess := newTestProcessor(t, &testSource{})
	game := p.game
	game.Move(sess, "corridor")
	giveItem(t, sess, "id_card_high_sec")

	res := p.Process(sess, "unlock bridge")
	if res.Effect != EffectSwipe || res.Attempt == nil {
		t.Fatalf("unlock should start a swipe, got %+v", res)
	}
	if res.Text != "Swiping door access panel, checking card ID..." {
		t.Errorf("swipe text = %q", res.Text)
	}
}

func TestHandleRepairStripsNoise(t *testing.T) {
	p, sess := newTestProcessor(t, &testSource{damagedCorridorPanel: true})
	p.game.Move(sess, "corridor")

	for _, input := range []string{
		"repair",
		"repair panel",
		"repair door panel",
		"repair door access panel bridge",
	} {
		res := p.Process(sess, input)
		if res.Effect != EffectRepair || res.Job == nil {
			t.Errorf("%q should plan a repair, got %+v", input, res)
		}
	}
}

func TestHelpListsEveryVerb(t *testing.T) {
	p, sess := newTestProcessor(t, &testSource{})
	help := p.Process(sess, "help").Text

	for _, verb := range []string{"go", "look", "examine", "take", "drop", "inventory", "equip", "unequip", "lock", "repair", "wait", "status", "save", "quit"} {
		if !strings.Contains(help, verb) {
			t.Errorf("help missing %q", verb)
		}
	}
}

func TestVerbsSorted(t *testing.T) {
	p, _ := newTestProcessor(t, &testSource{})
	verbs := p.Verbs()
	if len(verbs) == 0 {
		t.Fatal("no verbs registered")
	}
	for i := 1; i < len(verbs); i++ {
		if verbs[i-1] > verbs[i] {
			t.Fatalf("verbs not sorted: %v", verbs)
		}
	}
	for _, want := range []string{"go", "x", "inv", "wear", "remove"} {
		found := false
		for _, v := range verbs {
			if v == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("verb %q missing", want)
		}
	}
}
