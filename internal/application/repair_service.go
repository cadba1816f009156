package application

import (
	"fmt"
	"strings"

	"github.com/projectdarkstar/darkstar/internal/domain/ship"
)

// RepairSeconds is the visible working delay in the TUI.
const RepairSeconds = 8

// RepairJob is a panel repair the TUI should run with its working delay.
type RepairJob struct {
	Panel     *ship.SecurityPanel
	ExitLabel string
	Door      *ship.Door
}

// RepairOutcome is the result of planning or finishing a repair.
type RepairOutcome struct {
	Text string
	Job  *RepairJob
}

// RepairService fixes damaged door access panels. Tools and consumables
// can hang off this later; for now a repair always succeeds.
type RepairService struct{}

// NewRepairService creates the repair service.
func NewRepairService() *RepairService {
	return &RepairService{}
}

// PlanDoorPanel picks the panel to repair. With a single broken panel in
// the room and no target the choice is automatic; with several, the player
// is asked to pick; an explicit target is matched against the broken
// panels' exits.
func (r *RepairService) PlanDoorPanel(sess *Session, rawTarget string) RepairOutcome {
	room := sess.CurrentRoom
	broken := sess.Ship.BrokenPanelsInRoom(room)
	if len(broken) == 0 {
		return RepairOutcome{Text: "There are no damaged door access panels in this room."}
	}

	target := strings.ToLower(strings.TrimSpace(rawTarget))

	if target == "" {
		if len(broken) == 1 {
			return RepairOutcome{
				Text: "Repairing door access panel...",
				Job:  &RepairJob{Panel: broken[0].Panel, ExitLabel: broken[0].ExitLabel, Door: broken[0].Door},
			}
		}
		labels := make([]string, 0, len(broken))
		for _, bp := range broken {
			labels = append(labels, bp.ExitLabel)
		}
		return RepairOutcome{Text: fmt.Sprintf(
			"Which door access panel do you want to repair? (%s)", strings.Join(labels, ", "))}
	}

	for _, bp := range broken {
		if r.matchesExit(sess, room, bp, target) {
			return RepairOutcome{
				Text: "Repairing door access panel...",
				Job:  &RepairJob{Panel: bp.Panel, ExitLabel: bp.ExitLabel, Door: bp.Door},
			}
		}
	}
	return RepairOutcome{Text: fmt.Sprintf("No damaged door access panel to '%s'.", rawTarget)}
}

// Complete applies the repair after the working delay: the panel comes
// back fully and the job costs ship time.
func (r *RepairService) Complete(sess *Session, job *RepairJob) RepairOutcome {
	job.Panel.Repair(1.0)
	sess.AdvanceTime(PanelRepairMinutes)
	return RepairOutcome{Text: fmt.Sprintf(
		"You repair the door access panel to %s. It is now operational.", job.ExitLabel)}
}

func (r *RepairService) matchesExit(sess *Session, room *ship.Room, bp ship.BrokenPanel, target string) bool {
	otherID, err := bp.Door.OtherRoom(room.ID)
	if err != nil {
		return false
	}
	if target == strings.ToLower(otherID) || target == strings.ToLower(bp.ExitLabel) {
		return true
	}
	for exitKey, ex := range room.Exits {
		if ex.Target != otherID {
			continue
		}
		if target == strings.ToLower(exitKey) {
			return true
		}
		for _, sc := range ex.Shortcuts {
			if target == strings.ToLower(sc) {
				return true
			}
		}
	}
	return false
}
