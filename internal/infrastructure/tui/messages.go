package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/projectdarkstar/darkstar/internal/application"
)

// swipeDoneMsg fires when the card reader finishes checking an ID card.
type swipeDoneMsg struct {
	attempt *application.AccessAttempt
}

// repairDoneMsg fires when a panel repair job completes.
type repairDoneMsg struct {
	job *application.RepairJob
}

// clockFlashMsg toggles the chronometer highlight after a time jump.
type clockFlashMsg struct{}

// ContentChangedMsg is sent by the content watcher when a data file on
// disk changes while playing with --watch.
type ContentChangedMsg struct{}

func swipeCmd(attempt *application.AccessAttempt) tea.Cmd {
	return tea.Tick(application.CardSwipeSeconds*time.Second, func(time.Time) tea.Msg {
		return swipeDoneMsg{attempt: attempt}
	})
}

func repairCmd(job *application.RepairJob) tea.Cmd {
	return tea.Tick(application.RepairSeconds*time.Second, func(time.Time) tea.Msg {
		return repairDoneMsg{job: job}
	})
}

func clockFlashCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clockFlashMsg{}
	})
}
