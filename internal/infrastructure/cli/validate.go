package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateDataDir string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate content files against their schemas",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadServices(validateDataDir)
		if err != nil {
			return err
		}

		if errs := svc.Loader.Validate(); len(errs) > 0 {
			for _, e := range errs {
				fmt.Printf("  - %v\n", e)
			}
			return fmt.Errorf("content validation failed with %d issue(s)", len(errs))
		}

		// Schema-valid files can still wire an impossible ship, so build it.
		if _, _, err := svc.Loader.LoadShip(svc.Config.ShipName); err != nil {
			return fmt.Errorf("content loads but does not assemble: %w", err)
		}

		fmt.Println("Content is valid.")
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateDataDir, "data", "", "content directory overriding the embedded data files")
	RootCmd.AddCommand(validateCmd)
}
