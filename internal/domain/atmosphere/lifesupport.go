// Package atmosphere simulates the ship's life support: partial pressures
// of oxygen and carbon dioxide ship-wide, and per-room temperature drift
// when thermal control degrades.
package atmosphere

import (
	"math"
	"math/rand"

	"github.com/projectdarkstar/darkstar/internal/domain/ship"
)

// Human metabolic rates at rest (m³/min per crew member). NASA ECLSS and
// submariner physiology midpoints.
const (
	HumanO2ConsumptionM3PerMin = 0.000275
	HumanCO2ProductionM3PerMin = 0.000225
)

// Nominal ship-wide baselines.
const (
	NominalPressurePSI = 14.7
	NominalPPO2MMHg    = 150.0
	NominalPPCO2MMHg   = 2.5

	atmospherePressureMMHg = 760.0
)

// Component is one life-support subsystem with an efficiency in [0,1]
// where 0 is failed and 1 is perfect.
type Component struct {
	Efficiency float64
}

// Readout is the environment report for a single room.
type Readout struct {
	PressurePSI  float64
	TempC        float64
	PPO2MMHg     float64
	PPCO2MMHg    float64
	AirQualityPC float64
}

// LifeSupport runs the atmosphere simulation over a ship's rooms. Gas
// values are ship-wide; temperature is tracked per room.
type LifeSupport struct {
	ship         *ship.Ship
	shipVolumeM3 float64
	crewCount    int
	rng          *rand.Rand

	ppO2DropPerMin  float64
	ppCO2RisePerMin float64

	PressurePSI float64
	PPO2MMHg    float64
	PPCO2MMHg   float64

	CO2Scrubber    Component
	OxygenGen      Component
	ThermalControl Component
}

// New builds the simulation for a ship. Per-minute gas rates scale crew
// metabolism by the total pressurized volume. Room temperatures start at
// target with a ±0.5 °C variation. rng may not be nil; callers seed it so
// tests stay deterministic.
func New(s *ship.Ship, crewCount int, rng *rand.Rand) *LifeSupport {
	var volume float64
	for _, room := range s.Rooms {
		volume += room.VolumeM3
	}

	o2Consumed := HumanO2ConsumptionM3PerMin * float64(crewCount)
	co2Produced := HumanCO2ProductionM3PerMin * float64(crewCount)

	ls := &LifeSupport{
		ship:            s,
		shipVolumeM3:    volume,
		crewCount:       crewCount,
		rng:             rng,
		ppO2DropPerMin:  o2Consumed / volume * atmospherePressureMMHg,
		ppCO2RisePerMin: co2Produced / volume * atmospherePressureMMHg,
		PressurePSI:     NominalPressurePSI,
		PPO2MMHg:        NominalPPO2MMHg,
		PPCO2MMHg:       NominalPPCO2MMHg,
		CO2Scrubber:     Component{Efficiency: 1.0},
		OxygenGen:       Component{Efficiency: 1.0},
		ThermalControl:  Component{Efficiency: 1.0},
	}

	for _, room := range s.Rooms {
		room.CurrentTempC = room.TargetTempC + (rng.Float64()-0.5)
	}

	return ls
}

// ShipVolumeM3 is the total pressurized volume the gases spread over.
func (ls *LifeSupport) ShipVolumeM3() float64 {
	return ls.shipVolumeM3
}

// AirQualityPercent is a composite habitability score: low oxygen and
// excess carbon dioxide both pull it down.
func (ls *LifeSupport) AirQualityPercent() float64 {
	o2Penalty := math.Max(0, (NominalPPO2MMHg-ls.PPO2MMHg)*0.5)
	co2Penalty := math.Max(0, (ls.PPCO2MMHg-3)*10)
	return math.Max(0, math.Min(100, 100-o2Penalty-co2Penalty))
}

// Readout reports the environment a player would sense in a room: gases
// and pressure are ship-wide, temperature is local.
func (ls *LifeSupport) Readout(room *ship.Room) Readout {
	return Readout{
		PressurePSI:  ls.PressurePSI,
		TempC:        room.CurrentTempC,
		PPO2MMHg:     ls.PPO2MMHg,
		PPCO2MMHg:    ls.PPCO2MMHg,
		AirQualityPC: ls.AirQualityPercent(),
	}
}

// Advance runs the simulation forward.
func (ls *LifeSupport) Advance(minutes int64) {
	if minutes <= 0 {
		return
	}
	ls.advanceThermal(minutes)
	ls.advanceGases(minutes)
}

// advanceThermal drifts room temperatures when thermal control degrades.
// Loss scales quadratically with inefficiency; larger rooms cool slower
// by thermal mass, normalized so the volume-weighted average drop matches
// the uniform case.
func (ls *LifeSupport) advanceThermal(minutes int64) {
	eff := ls.ThermalControl.Efficiency
	if eff >= 1.0 {
		return
	}

	lossPerMinute := 10.0e-5 * (1 - eff) * (1 - eff)
	totalLoss := float64(minutes) * lossPerMinute

	avgVolume := ls.shipVolumeM3 / float64(len(ls.ship.Rooms))

	rawFactors := make(map[string]float64, len(ls.ship.Rooms))
	var weightedSum float64
	for _, room := range ls.ship.Rooms {
		raw := math.Pow(avgVolume/room.VolumeM3, 0.15)
		rawFactors[room.ID] = raw
		weightedSum += raw * room.VolumeM3
	}
	normalization := ls.shipVolumeM3 / weightedSum

	for _, room := range ls.ship.Rooms {
		room.CurrentTempC -= totalLoss * rawFactors[room.ID] * normalization
	}

	// Degraded regulators hunt around the setpoint; the worse the
	// efficiency, the colder the swings skew.
	var fluctuation float64
	switch {
	case eff >= 0.7:
		fluctuation = ls.uniform(-0.5, 0.5)
	case eff >= 0.3 && eff <= 0.6:
		fluctuation = ls.uniform(-0.8, 0.2)
	default:
		fluctuation = ls.uniform(-1.5, 0.0)
	}
	for _, room := range ls.ship.Rooms {
		room.CurrentTempC += fluctuation
	}
}

func (ls *LifeSupport) advanceGases(minutes int64) {
	ls.PPCO2MMHg += float64(minutes) * ls.ppCO2RisePerMin * (1 - ls.CO2Scrubber.Efficiency)
	ls.PPO2MMHg -= float64(minutes) * ls.ppO2DropPerMin * (1 - ls.OxygenGen.Efficiency)

	ls.PPO2MMHg = math.Max(0, ls.PPO2MMHg)
	ls.PPCO2MMHg = math.Max(0, ls.PPCO2MMHg)
}

func (ls *LifeSupport) uniform(lo, hi float64) float64 {
	return lo + ls.rng.Float64()*(hi-lo)
}
