package application

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Effect tells the TUI what a command wants beyond printing text.
type Effect int

const (
	EffectNone Effect = iota
	EffectQuit
	EffectOpenInventory
	EffectSwipe      // start a timed card swipe
	EffectAwaitPIN   // switch the input line to PIN entry
	EffectRepair     // start a timed repair job
	EffectClockFlash // ship time jumped; flash the chronometer
	EffectSaved
)

// QuitMessage is shown on quit before the program exits.
const QuitMessage = "Thanks for playing Dark Star. Goodbye!"

// Result is a processed command: response text plus any effect payload.
type Result struct {
	Text    string
	Effect  Effect
	Attempt *AccessAttempt
	Job     *RepairJob
	SaveID  string
}

type handler func(sess *Session, args string) Result

// CommandProcessor routes player input through a verb registry.
type CommandProcessor struct {
	game    *GameService
	doors   *DoorService
	repairs *RepairService

	commands map[string]handler
}

// NewCommandProcessor builds the registry. Aliases share handlers.
func NewCommandProcessor(game *GameService, doors *DoorService, repairs *RepairService) *CommandProcessor {
	p := &CommandProcessor{game: game, doors: doors, repairs: repairs}
	p.commands = map[string]handler{
		"quit": p.handleQuit,
		"exit": p.handleQuit,

		"go":    p.handleMove,
		"enter": p.handleMove,
		"move":  p.handleMove,

		"look": p.handleLook,
		"l":    p.handleLook,

		"examine": p.handleExamine,
		"x":       p.handleExamine,
		"inspect": p.handleExamine,

		"take": p.handleTake,
		"get":  p.handleTake,
		"drop": p.handleDrop,

		"inventory": p.handleInventory,
		"inv":       p.handleInventory,
		"i":         p.handleInventory,

		"equip":   p.handleEquip,
		"wear":    p.handleEquip,
		"unequip": p.handleUnequip,
		"remove":  p.handleUnequip,

		"lock":   p.handleLock,
		"unlock": p.handleUnlock,
		"repair": p.handleRepair,

		"wait":   p.handleWait,
		"time":   p.handleTime,
		"status": p.handleStatus,
		"save":   p.handleSave,
		"help":   p.handleHelp,
	}
	return p
}

// Process handles a single command line. Blank input is a no-op.
func (p *CommandProcessor) Process(sess *Session, input string) Result {
	cmd := strings.ToLower(strings.TrimSpace(input))
	if cmd == "" {
		return Result{}
	}

	verb, args, _ := strings.Cut(cmd, " ")
	args = strings.TrimSpace(args)

	if h, ok := p.commands[verb]; ok {
		return h(sess, args)
	}
	return Result{Text: fmt.Sprintf("I don't understand '%s'. Try 'help' for available commands.", cmd)}
}

func (p *CommandProcessor) handleQuit(sess *Session, args string) Result {
	return Result{Text: QuitMessage, Effect: EffectQuit}
}

func (p *CommandProcessor) handleMove(sess *Session, args string) Result {
	return Result{Text: p.game.Move(sess, args)}
}

func (p *CommandProcessor) handleLook(sess *Session, args string) Result {
	if args != "" {
		return p.handleExamine(sess, args)
	}
	return Result{Text: p.game.Look(sess)}
}

func (p *CommandProcessor) handleExamine(sess *Session, args string) Result {
	return Result{Text: p.game.Examine(sess, args)}
}

func (p *CommandProcessor) handleTake(sess *Session, args string) Result {
	return Result{Text: p.game.Take(sess, args)}
}

func (p *CommandProcessor) handleDrop(sess *Session, args string) Result {
	return Result{Text: p.game.Drop(sess, args)}
}

func (p *CommandProcessor) handleInventory(sess *Session, args string) Result {
	return Result{Effect: EffectOpenInventory}
}

func (p *CommandProcessor) handleEquip(sess *Session, args string) Result {
	return Result{Text: p.game.EquipItem(sess, args)}
}

func (p *CommandProcessor) handleUnequip(sess *Session, args string) Result {
	return Result{Text: p.game.UnequipTarget(sess, args)}
}

func (p *CommandProcessor) handleLock(sess *Session, args string) Result {
	return p.accessResult(p.doors.Begin(sess, ActionLock, args))
}

func (p *CommandProcessor) handleUnlock(sess *Session, args string) Result {
	return p.accessResult(p.doors.Begin(sess, ActionUnlock, args))
}

func (p *CommandProcessor) accessResult(out AccessOutcome) Result {
	res := Result{Text: out.Text, Attempt: out.Attempt}
	switch {
	case out.Swiping:
		res.Effect = EffectSwipe
	case out.AwaitPIN:
		res.Effect = EffectAwaitPIN
	}
	return res
}

// handleRepair accepts "repair door panel [exit]" and the shorter forms
// players actually type.
func (p *CommandProcessor) handleRepair(sess *Session, args string) Result {
	target := args
	for _, prefix := range []string{"door panel", "door access panel", "panel", "door"} {
		if strings.HasPrefix(target, prefix) {
			target = strings.TrimSpace(strings.TrimPrefix(target, prefix))
			break
		}
	}
	out := p.repairs.PlanDoorPanel(sess, target)
	res := Result{Text: out.Text, Job: out.Job}
	if out.Job != nil {
		res.Effect = EffectRepair
	}
	return res
}

func (p *CommandProcessor) handleWait(sess *Session, args string) Result {
	minutes := int64(0)
	if args != "" {
		parsed, err := strconv.ParseInt(strings.Fields(args)[0], 10, 64)
		if err != nil || parsed <= 0 {
			return Result{Text: "Wait how long? Try 'wait 30' (minutes)."}
		}
		minutes = parsed
	}
	return Result{Text: p.game.Wait(sess, minutes), Effect: EffectClockFlash}
}

func (p *CommandProcessor) handleTime(sess *Session, args string) Result {
	return Result{Text: fmt.Sprintf("The ship chronometer reads %s.", sess.Chronometer.Format())}
}

func (p *CommandProcessor) handleStatus(sess *Session, args string) Result {
	return Result{Text: p.game.Status(sess)}
}

func (p *CommandProcessor) handleSave(sess *Session, args string) Result {
	id, err := p.game.Save(sess)
	if err != nil {
		return Result{Text: fmt.Sprintf("Save failed: %v", err)}
	}
	return Result{Text: fmt.Sprintf("Game saved (%s).", id), Effect: EffectSaved, SaveID: id}
}

func (p *CommandProcessor) handleHelp(sess *Session, args string) Result {
	lines := []string{
		"go/enter/move [place]      move through an exit",
		"look                       describe the room again",
		"examine [thing]            inspect an object or your gear",
		"take/get [item]            pick something up",
		"drop [item]                put something down",
		"inventory (i)              open the inventory screen",
		"equip/wear [item]          wear carried gear",
		"unequip/remove [slot|item] take worn gear off",
		"lock/unlock [exit]         work a door access panel",
		"repair door panel [exit]   fix a damaged panel",
		"wait [minutes]             pass ship time",
		"time / status              chronometer and environment",
		"save                       save the game",
		"quit                       leave the ship to drift",
	}
	return Result{Text: "Commands:\n  " + strings.Join(lines, "\n  ")}
}

// Verbs lists the registered command words, for tests and completion.
func (p *CommandProcessor) Verbs() []string {
	verbs := make([]string, 0, len(p.commands))
	for v := range p.commands {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)
	return verbs
}
