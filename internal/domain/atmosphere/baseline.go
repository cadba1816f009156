package atmosphere

import "sort"

// Default sweep parameters for the baseline report.
var (
	DefaultDayJumps     = []int{1, 7, 14, 30, 60, 90, 180, 360}
	DefaultEfficiencies = []float64{1.0, 0.9, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3, 0.2, 0.1, 0.0}
)

// RoomSample is one room's temperature at a report step.
type RoomSample struct {
	RoomID string
	TempC  float64
}

// BaselineStep captures the ship state after a cumulative time jump.
type BaselineStep struct {
	CumulativeDays int
	PPO2MMHg       float64
	PPCO2MMHg      float64
	PressurePSI    float64
	Rooms          []RoomSample
}

// BaselineRun is the sweep for one efficiency level applied to all three
// components at once.
type BaselineRun struct {
	Efficiency float64
	Initial    BaselineStep
	Steps      []BaselineStep
}

// BaselineReport sweeps efficiency levels over cumulative day jumps. Every
// level restarts from the same captured initial state, and the simulation's
// own component efficiencies and state are restored afterwards.
func (ls *LifeSupport) BaselineReport(efficiencies []float64, dayJumps []int) []BaselineRun {
	if len(efficiencies) == 0 {
		efficiencies = DefaultEfficiencies
	}
	if len(dayJumps) == 0 {
		dayJumps = DefaultDayJumps
	}

	originalThermal := ls.ThermalControl.Efficiency
	originalCO2 := ls.CO2Scrubber.Efficiency
	originalO2 := ls.OxygenGen.Efficiency

	initialTemps := make(map[string]float64, len(ls.ship.Rooms))
	for _, room := range ls.ship.Rooms {
		initialTemps[room.ID] = room.CurrentTempC
	}
	initialPPO2 := ls.PPO2MMHg
	initialPPCO2 := ls.PPCO2MMHg
	initialPressure := ls.PressurePSI

	restore := func() {
		for _, room := range ls.ship.Rooms {
			room.CurrentTempC = initialTemps[room.ID]
		}
		ls.PPO2MMHg = initialPPO2
		ls.PPCO2MMHg = initialPPCO2
		ls.PressurePSI = initialPressure
	}

	runs := make([]BaselineRun, 0, len(efficiencies))
	for _, eff := range efficiencies {
		ls.ThermalControl.Efficiency = eff
		ls.CO2Scrubber.Efficiency = eff
		ls.OxygenGen.Efficiency = eff
		restore()

		run := BaselineRun{
			Efficiency: eff,
			Initial:    ls.snapshotStep(0),
		}

		cumulativeDays := 0
		for _, days := range dayJumps {
			cumulativeDays += days
			ls.Advance(int64(days) * 24 * 60)
			run.Steps = append(run.Steps, ls.snapshotStep(cumulativeDays))
		}
		runs = append(runs, run)
	}

	restore()
	ls.ThermalControl.Efficiency = originalThermal
	ls.CO2Scrubber.Efficiency = originalCO2
	ls.OxygenGen.Efficiency = originalO2

	return runs
}

func (ls *LifeSupport) snapshotStep(cumulativeDays int) BaselineStep {
	step := BaselineStep{
		CumulativeDays: cumulativeDays,
		PPO2MMHg:       ls.PPO2MMHg,
		PPCO2MMHg:      ls.PPCO2MMHg,
		PressurePSI:    ls.PressurePSI,
	}
	for _, room := range ls.ship.Rooms {
		step.Rooms = append(step.Rooms, RoomSample{RoomID: room.ID, TempC: room.CurrentTempC})
	}
	sort.Slice(step.Rooms, func(i, j int) bool {
		return step.Rooms[i].RoomID < step.Rooms[j].RoomID
	})
	return step
}
