package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List saved games",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadServices("")
		if err != nil {
			return err
		}

		if !svc.Saves.IsInitialized() {
			fmt.Println("No saved games.")
			return nil
		}
		infos, err := svc.Saves.ListSaves()
		if err != nil {
			return fmt.Errorf("failed to list saves: %w", err)
		}
		if len(infos) == 0 {
			fmt.Println("No saved games.")
			return nil
		}

		fmt.Printf("%-36s  %-20s  %-18s  %s\n", "ID", "PLAYER", "SHIP TIME", "SAVED AT")
		for _, info := range infos {
			fmt.Printf("%-36s  %-20s  %-18s  %s\n",
				info.ID, info.PlayerName, info.ShipTime,
				info.SavedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var deleteSaveCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadServices("")
		if err != nil {
			return err
		}
		if err := svc.Saves.DeleteSave(args[0]); err != nil {
			return fmt.Errorf("failed to delete save: %w", err)
		}
		fmt.Printf("Deleted save %s.\n", args[0])
		return nil
	},
}

func init() {
	savesCmd.AddCommand(deleteSaveCmd)
	RootCmd.AddCommand(savesCmd)
}
