// Package preset loads named aircraft definitions (stations, limits, fuel
// system) from YAML and builds wb.Airplane values from them. All input
// validation the core deliberately skips lives here.
package preset

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/flightprep/loadsheet/configs"
	"github.com/flightprep/loadsheet/internal/wb"
)

// Station is one load position of an aircraft.
type Station struct {
	Name string `yaml:"name"`
	// Arm is the station's distance from the datum in meters.
	Arm float64 `yaml:"arm"`
	// Mass is a fixed mass in kilograms (e.g. the empty aircraft).
	// Stations without a fixed mass are filled per flight.
	Mass *float64 `yaml:"mass,omitempty"`
	// Max caps the per-flight mass in kilograms, when set.
	Max *float64 `yaml:"max,omitempty"`
	// Fuel marks the fuel tank station. Exactly one station carries it,
	// and it must be the last station so trip fuel can be burned from the
	// last moment.
	Fuel bool `yaml:"fuel,omitempty"`
}

// LimitsSpec is the YAML form of the certified envelope.
type LimitsSpec struct {
	MinimumWeight float64 `yaml:"minimum_weight"`
	MTOW          float64 `yaml:"mtow"`
	ForwardCG     float64 `yaml:"forward_cg"`
	RearwardCG    float64 `yaml:"rearward_cg"`
	// CGUnit is "millimeter" (default) or "meter".
	CGUnit string `yaml:"cg_unit,omitempty"`
}

// Aircraft is a named aircraft preset.
type Aircraft struct {
	ID           string     `yaml:"id"`
	Callsign     string     `yaml:"callsign"`
	Fuel         string     `yaml:"fuel"`      // avgas | mogas
	FuelUnit     string     `yaml:"fuel_unit"` // liter | gallon
	TankCapacity float64    `yaml:"tank_capacity"`
	TripFuel     float64    `yaml:"trip_fuel"`
	Stations     []Station  `yaml:"stations"`
	Limits       LimitsSpec `yaml:"limits"`
}

type presetFile struct {
	Aircraft []Aircraft `yaml:"aircraft"`
}

// Registry holds the loaded aircraft presets in file order.
type Registry struct {
	byID  map[string]Aircraft
	order []string
}

// DefaultUserPath returns the path of the optional user preset file.
func DefaultUserPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".loadsheet", "aircraft.yaml")
}

// Load builds a registry from the embedded defaults overlaid by the user
// file at userPath, when it exists. A user aircraft with the same id as an
// embedded one replaces it. An empty userPath skips the overlay.
func Load(userPath string) (*Registry, error) {
	reg := &Registry{byID: make(map[string]Aircraft)}

	if err := reg.merge(configs.DefaultAircraft); err != nil {
		return nil, fmt.Errorf("embedded presets: %w", err)
	}

	if userPath != "" {
		data, err := os.ReadFile(userPath)
		switch {
		case os.IsNotExist(err):
			// No user file is the common case.
		case err != nil:
			return nil, fmt.Errorf("read user presets %s: %w", userPath, err)
		default:
			if err := reg.merge(data); err != nil {
				return nil, fmt.Errorf("user presets %s: %w", userPath, err)
			}
		}
	}

	return reg, nil
}

func (r *Registry) merge(data []byte) error {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse presets: %w", err)
	}
	for _, ac := range file.Aircraft {
		if ac.ID == "" {
			return fmt.Errorf("aircraft %q has no id", ac.Callsign)
		}
		if _, exists := r.byID[ac.ID]; !exists {
			r.order = append(r.order, ac.ID)
		}
		r.byID[ac.ID] = ac
	}
	return nil
}

// Get returns the aircraft with the given id.
func (r *Registry) Get(id string) (Aircraft, bool) {
	ac, ok := r.byID[id]
	return ac, ok
}

// IDs returns the preset ids in load order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// FuelType parses the preset's fuel grade.
func (a Aircraft) FuelType() (wb.FuelType, error) {
	switch a.Fuel {
	case "avgas":
		return wb.Avgas, nil
	case "mogas":
		return wb.Mogas, nil
	default:
		return 0, fmt.Errorf("aircraft %s: unknown fuel grade %q", a.ID, a.Fuel)
	}
}

// VolumeUnit parses the preset's fuel volume unit. An empty unit defaults
// to liters.
func (a Aircraft) VolumeUnit() (wb.VolumeUnit, error) {
	switch a.FuelUnit {
	case "liter", "":
		return wb.UnitLiter, nil
	case "gallon":
		return wb.UnitGallon, nil
	default:
		return 0, fmt.Errorf("aircraft %s: unknown fuel unit %q", a.ID, a.FuelUnit)
	}
}

// TankVolume returns the tank capacity in the preset's unit.
func (a Aircraft) TankVolume() wb.Volume {
	return a.volume(a.TankCapacity)
}

// TripVolume returns the trip fuel consumption in the preset's unit.
func (a Aircraft) TripVolume() wb.Volume {
	return a.volume(a.TripFuel)
}

func (a Aircraft) volume(v float64) wb.Volume {
	if unit, err := a.VolumeUnit(); err == nil && unit == wb.UnitGallon {
		return wb.Gallons(v)
	}
	return wb.Liters(v)
}

// FuelStation returns the station marked as the fuel tank.
func (a Aircraft) FuelStation() (Station, bool) {
	for _, s := range a.Stations {
		if s.Fuel {
			return s, true
		}
	}
	return Station{}, false
}

func (a Aircraft) cg(v float64) wb.CenterOfGravity {
	if a.Limits.CGUnit == "meter" {
		return wb.CGMeters(v)
	}
	return wb.CGMillimeters(v)
}

// WBLimits converts the preset limits to the core representation.
func (a Aircraft) WBLimits() wb.Limits {
	return wb.NewLimits(
		wb.Kilos(a.Limits.MinimumWeight),
		wb.Kilos(a.Limits.MTOW),
		a.cg(a.Limits.ForwardCG),
		a.cg(a.Limits.RearwardCG),
	)
}

// Validate checks the preset for the invariants the core assumes.
func (a Aircraft) Validate() error {
	if a.Callsign == "" {
		return fmt.Errorf("aircraft %s: missing callsign", a.ID)
	}
	if _, err := a.FuelType(); err != nil {
		return err
	}
	if _, err := a.VolumeUnit(); err != nil {
		return err
	}
	if a.TankCapacity < 0 {
		return fmt.Errorf("aircraft %s: negative tank capacity", a.ID)
	}
	if a.TripFuel < 0 || a.TripFuel > a.TankCapacity {
		return fmt.Errorf("aircraft %s: trip fuel %.1f outside tank capacity %.1f", a.ID, a.TripFuel, a.TankCapacity)
	}
	if len(a.Stations) == 0 {
		return fmt.Errorf("aircraft %s: no stations", a.ID)
	}

	seen := make(map[string]bool, len(a.Stations))
	fuelCount := 0
	for i, s := range a.Stations {
		if s.Name == "" {
			return fmt.Errorf("aircraft %s: station %d has no name", a.ID, i)
		}
		if seen[s.Name] {
			return fmt.Errorf("aircraft %s: duplicate station %q", a.ID, s.Name)
		}
		seen[s.Name] = true
		if math.IsNaN(s.Arm) || math.IsInf(s.Arm, 0) {
			return fmt.Errorf("aircraft %s: station %q has a non-finite arm", a.ID, s.Name)
		}
		if s.Fuel {
			fuelCount++
			if s.Mass != nil {
				return fmt.Errorf("aircraft %s: fuel station %q cannot carry a fixed mass", a.ID, s.Name)
			}
			if i != len(a.Stations)-1 {
				return fmt.Errorf("aircraft %s: fuel station %q must be last", a.ID, s.Name)
			}
		}
	}
	if fuelCount != 1 {
		return fmt.Errorf("aircraft %s: expected exactly one fuel station, found %d", a.ID, fuelCount)
	}

	if a.Limits.MTOW < a.Limits.MinimumWeight {
		return fmt.Errorf("aircraft %s: mtow %.1f below minimum weight %.1f", a.ID, a.Limits.MTOW, a.Limits.MinimumWeight)
	}
	if a.WBLimits().ForwardCGLimit().Meter() > a.WBLimits().RearwardCGLimit().Meter() {
		return fmt.Errorf("aircraft %s: forward cg limit aft of rearward limit", a.ID)
	}
	return nil
}

// Build assembles the airplane from the preset plus per-flight masses
// (kilograms, keyed by station name). Every non-fuel station without a
// fixed mass must be supplied; masses above a station's max are rejected.
// The fuel station is left unfilled: the caller appends the fuel moment
// last, either with a fixed volume or through the solver.
func (a Aircraft) Build(masses map[string]float64) (*wb.Airplane, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	used := make(map[string]bool, len(masses))
	var moments []wb.Moment
	for _, s := range a.Stations {
		if s.Fuel {
			continue
		}
		kg, supplied := masses[s.Name]
		switch {
		case s.Mass != nil:
			if supplied {
				return nil, fmt.Errorf("station %q has a fixed mass", s.Name)
			}
			kg = *s.Mass
		case !supplied:
			return nil, fmt.Errorf("station %q: no mass supplied", s.Name)
		}
		if supplied {
			used[s.Name] = true
		}
		if s.Max != nil && kg > *s.Max {
			return nil, fmt.Errorf("station %q: %.1f kg exceeds station limit %.1f kg", s.Name, kg, *s.Max)
		}
		moments = append(moments, wb.NewMoment(s.Name, wb.ArmMeters(s.Arm), wb.Kilos(kg)))
	}

	for name := range masses {
		if !used[name] {
			return nil, fmt.Errorf("unknown station %q", name)
		}
	}

	return wb.NewAirplane(a.Callsign, moments, a.WBLimits(), a.TripVolume()), nil
}

// AddFuel appends the fuel moment: a fixed volume when volume is set, or
// the solver's maximum (capped by tank capacity) when nil. It returns the
// appended moment.
func (a Aircraft) AddFuel(plane *wb.Airplane, volume *float64) (*wb.Moment, error) {
	station, ok := a.FuelStation()
	if !ok {
		return nil, fmt.Errorf("aircraft %s: no fuel station", a.ID)
	}
	ft, err := a.FuelType()
	if err != nil {
		return nil, err
	}
	unit, err := a.VolumeUnit()
	if err != nil {
		return nil, err
	}

	if volume != nil {
		if *volume < 0 || *volume > a.TankCapacity {
			return nil, fmt.Errorf("fuel %.1f outside tank capacity %.1f", *volume, a.TankCapacity)
		}
		m := wb.NewMoment(station.Name, wb.ArmMeters(station.Arm), wb.Fuel(ft, a.volume(*volume)))
		plane.AddMoment(m)
		return &m, nil
	}

	tank := a.TankVolume()
	return plane.AddMaxFuelWithinLimits(station.Name, wb.ArmMeters(station.Arm), ft, unit, &tank)
}
