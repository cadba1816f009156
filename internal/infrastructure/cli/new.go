package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	newDataDir string
	newPlayer  string
	newShip    string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new saved game without entering the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadServices(newDataDir)
		if err != nil {
			return err
		}

		player := newPlayer
		if player == "" {
			player = svc.Config.PlayerName
		}
		vessel := newShip
		if vessel == "" {
			vessel = svc.Config.ShipName
		}

		sess, err := svc.Game.NewGame(player, vessel)
		if err != nil {
			return fmt.Errorf("failed to create game: %w", err)
		}
		id, err := svc.Game.Save(sess)
		if err != nil {
			return fmt.Errorf("failed to save game: %w", err)
		}

		fmt.Printf("Created save %s for %s aboard %s.\n", id, sess.Player.Name, sess.Ship.Name)
		fmt.Printf("Resume with: darkstar play --save %s\n", id)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newDataDir, "data", "", "content directory overriding the embedded data files")
	newCmd.Flags().StringVar(&newPlayer, "player", "", "player name")
	newCmd.Flags().StringVar(&newShip, "ship", "", "ship name")
	RootCmd.AddCommand(newCmd)
}
