package cli

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/projectdarkstar/darkstar/internal/domain/atmosphere"
)

var (
	simDataDir      string
	simCrew         int
	simSeed         int64
	simEfficiencies []float64
	simDayJumps     []int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the life-support baseline sweep and print the table",
	Long: `Simulate sweeps the life-support components across efficiency levels and
cumulative day jumps, printing partial pressures and per-room temperatures
after each jump. Useful for tuning content against the degradation curves.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadServices(simDataDir)
		if err != nil {
			return err
		}

		vessel, _, err := svc.Loader.LoadShip(svc.Config.ShipName)
		if err != nil {
			return fmt.Errorf("failed to load ship content: %w", err)
		}

		rng := rand.New(rand.NewSource(simSeed))
		ls := atmosphere.New(vessel, simCrew, rng)

		fmt.Printf("Ship volume: %.1f m³, crew: %d\n\n", ls.ShipVolumeM3(), simCrew)

		runs := ls.BaselineReport(simEfficiencies, simDayJumps)
		for _, run := range runs {
			fmt.Printf("== efficiency %.1f ==\n", run.Efficiency)
			fmt.Printf("%-6s  %-10s  %-10s  %s\n", "DAYS", "ppO2 mmHg", "ppCO2 mmHg", "ROOM TEMPS °C")
			printBaselineStep(run.Initial)
			for _, step := range run.Steps {
				printBaselineStep(step)
			}
			fmt.Println()
		}
		return nil
	},
}

func printBaselineStep(step atmosphere.BaselineStep) {
	temps := make([]string, 0, len(step.Rooms))
	for _, room := range step.Rooms {
		temps = append(temps, fmt.Sprintf("%s %.1f", room.RoomID, room.TempC))
	}
	fmt.Printf("%-6d  %-10.1f  %-10.2f  %s\n",
		step.CumulativeDays, step.PPO2MMHg, step.PPCO2MMHg, strings.Join(temps, ", "))
}

func init() {
	simulateCmd.Flags().StringVar(&simDataDir, "data", "", "content directory overriding the embedded data files")
	simulateCmd.Flags().IntVar(&simCrew, "crew", 1, "crew count for metabolic load")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 1, "random seed for temperature fluctuation")
	simulateCmd.Flags().Float64SliceVar(&simEfficiencies, "efficiency", nil, "efficiency levels to sweep (default 1.0 down to 0.0)")
	simulateCmd.Flags().IntSliceVar(&simDayJumps, "days", nil, "cumulative day jumps (default 1,7,14,30,60,90,180,360)")
	RootCmd.AddCommand(simulateCmd)
}
