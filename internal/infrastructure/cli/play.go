package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/projectdarkstar/darkstar/internal/infrastructure/tui"
	"github.com/projectdarkstar/darkstar/internal/infrastructure/watch"
)

var (
	playDataDir string
	playSaveID  string
	playWatch   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Launch the game",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadServices(playDataDir)
		if err != nil {
			return err
		}

		deps := tui.Deps{
			Game:     svc.Game,
			Doors:    svc.Doors,
			Repairs:  svc.Repairs,
			Commands: svc.Commands,
		}

		if playSaveID != "" {
			sess, err := svc.Game.Resume(playSaveID)
			if err != nil {
				return fmt.Errorf("failed to resume save %s: %w", playSaveID, err)
			}
			deps.Session = sess
		}

		program := tui.NewProgram(deps)

		if playWatch {
			if svc.Config.DataDir == "" {
				return fmt.Errorf("--watch needs a content directory; pass --data or set data_dir")
			}
			debounce := time.Duration(svc.Config.WatchDebounceMS) * time.Millisecond
			watcher, err := watch.NewContentWatcher(svc.Config.DataDir, debounce, func(string) {
				program.Send(tui.ContentChangedMsg{})
			})
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go func() {
				// The watcher dies with the program; its error is not
				// actionable once the TUI owns the terminal.
				_ = watcher.Run(ctx)
			}()
		}

		_, err = program.Run()
		return err
	},
}

func init() {
	playCmd.Flags().StringVar(&playDataDir, "data", "", "content directory overriding the embedded data files")
	playCmd.Flags().StringVar(&playSaveID, "save", "", "resume the saved game with this ID")
	playCmd.Flags().BoolVar(&playWatch, "watch", false, "reload content files when they change on disk")
	RootCmd.AddCommand(playCmd)
}
