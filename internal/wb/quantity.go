// Package wb implements the weight-and-balance model for small aircraft:
// unit-tagged quantities, load moments, certified limits, and the Airplane
// aggregate with its maximum-load solver.
//
// Everything in this package is pure arithmetic over value types. There is
// no I/O, no caching, and no input validation beyond the two fatal
// conditions documented on Airplane; callers are expected to validate
// upstream (see internal/preset).
package wb

import "fmt"

// Fuel densities are certification constants, not configuration.
const (
	AvgasDensityKgPerLiter = 0.72
	MogasDensityKgPerLiter = 0.74
)

// LitersPerGallon converts US gallons to liters.
const LitersPerGallon = 3.78541

// VolumeUnit tags a Volume as liters or US gallons.
type VolumeUnit int

const (
	UnitLiter VolumeUnit = iota
	UnitGallon
)

func (u VolumeUnit) String() string {
	if u == UnitGallon {
		return "gal"
	}
	return "L"
}

// Volume is a fuel volume tagged with its unit. Conversions between the
// two units are exact up to floating-point precision.
type Volume struct {
	value float64
	unit  VolumeUnit
}

// Liters returns a Volume tagged in liters.
func Liters(v float64) Volume { return Volume{value: v, unit: UnitLiter} }

// Gallons returns a Volume tagged in US gallons.
func Gallons(v float64) Volume { return Volume{value: v, unit: UnitGallon} }

// Unit reports the unit the volume was constructed with.
func (v Volume) Unit() VolumeUnit { return v.unit }

// ToLiter returns the volume in liters.
func (v Volume) ToLiter() float64 {
	if v.unit == UnitGallon {
		return v.value * LitersPerGallon
	}
	return v.value
}

// ToGallon returns the volume in US gallons.
func (v Volume) ToGallon() float64 {
	if v.unit == UnitGallon {
		return v.value
	}
	return v.value / LitersPerGallon
}

// In re-expresses the volume in the given unit.
func (v Volume) In(unit VolumeUnit) Volume {
	if unit == UnitGallon {
		return Gallons(v.ToGallon())
	}
	return Liters(v.ToLiter())
}

func (v Volume) String() string {
	return fmt.Sprintf("%.2f%s", v.value, v.unit)
}

// FuelType identifies the fuel grade, which fixes the density used to
// convert a fuel volume into a physical mass.
type FuelType int

const (
	Avgas FuelType = iota
	Mogas
)

// DensityKgPerLiter returns the fixed density for the fuel type.
func (f FuelType) DensityKgPerLiter() float64 {
	if f == Mogas {
		return MogasDensityKgPerLiter
	}
	return AvgasDensityKgPerLiter
}

func (f FuelType) String() string {
	if f == Mogas {
		return "mogas"
	}
	return "avgas"
}

type massKind int

const (
	massKilo massKind = iota
	massFuel
)

// Mass is either a plain mass in kilograms or a fuel volume of a given
// grade. Kilo is the single sanctioned way to obtain the physical mass
// regardless of tag.
type Mass struct {
	kind massKind
	kg   float64
	fuel FuelType
	vol  Volume
}

// Kilos returns a plain mass in kilograms.
func Kilos(kg float64) Mass { return Mass{kind: massKilo, kg: kg} }

// Fuel returns a mass expressed as a volume of the given fuel grade.
func Fuel(ft FuelType, v Volume) Mass { return Mass{kind: massFuel, fuel: ft, vol: v} }

// Kilo returns the physical mass in kilograms, applying the fuel density
// when the mass is fuel-tagged.
func (m Mass) Kilo() float64 {
	if m.kind == massFuel {
		return m.vol.ToLiter() * m.fuel.DensityKgPerLiter()
	}
	return m.kg
}

// IsFuel reports whether the mass is fuel-tagged.
func (m Mass) IsFuel() bool { return m.kind == massFuel }

// FuelType returns the fuel grade when the mass is fuel-tagged.
func (m Mass) FuelType() (FuelType, bool) {
	if m.kind != massFuel {
		return 0, false
	}
	return m.fuel, true
}

// Volume returns the tagged fuel volume when the mass is fuel-tagged.
func (m Mass) Volume() (Volume, bool) {
	if m.kind != massFuel {
		return Volume{}, false
	}
	return m.vol, true
}

// ToFuel reinterprets the mass as a liter volume of the given fuel grade:
// "how many liters of that fuel would weigh the same". This is a
// re-interpretation, not a physical conversion, and is what the solver
// uses to turn a solved point mass into a fuel load.
func (m Mass) ToFuel(ft FuelType) Mass {
	return Fuel(ft, Liters(m.Kilo()/ft.DensityKgPerLiter()))
}

// ToAvgas reinterprets the mass as an equivalent Avgas volume.
func (m Mass) ToAvgas() Mass { return m.ToFuel(Avgas) }

// ToMogas reinterprets the mass as an equivalent Mogas volume.
func (m Mass) ToMogas() Mass { return m.ToFuel(Mogas) }

// Unit renders the unit of the mass: "kg" for plain masses, the density
// per tagged volume unit for fuel.
func (m Mass) Unit() string {
	if m.kind != massFuel {
		return "kg"
	}
	if m.vol.unit == UnitGallon {
		return fmt.Sprintf("%.2fkg/gal", m.fuel.DensityKgPerLiter()*LitersPerGallon)
	}
	return fmt.Sprintf("%.2fkg/L", m.fuel.DensityKgPerLiter())
}

func (m Mass) String() string {
	if m.kind == massFuel {
		return m.vol.String()
	}
	return fmt.Sprintf("%.2fkg", m.kg)
}

// LeverArm is the distance from the datum to a load's station, in meters.
// Positive is aft of the datum.
type LeverArm struct {
	m float64
}

// ArmMeters returns a LeverArm at the given distance from the datum.
func ArmMeters(m float64) LeverArm { return LeverArm{m: m} }

// Meter returns the arm in meters.
func (a LeverArm) Meter() float64 { return a.m }

func (a LeverArm) String() string { return fmt.Sprintf("%.4fm", a.m) }

// MassMoment is a mass moment in kg·m. It is always derived from a mass
// and an arm, never stored on its own.
type MassMoment struct {
	kgm float64
}

// KgMeters returns a MassMoment of the given kg·m value.
func KgMeters(v float64) MassMoment { return MassMoment{kgm: v} }

// KgM returns the moment in kg·m.
func (mm MassMoment) KgM() float64 { return mm.kgm }

type cgUnit int

const (
	cgMeter cgUnit = iota
	cgMillimeter
)

// CenterOfGravity is a CG position relative to the datum. Positive is aft
// of the datum.
type CenterOfGravity struct {
	value float64
	unit  cgUnit
}

// CGMeters returns a CG position in meters aft of the datum.
func CGMeters(m float64) CenterOfGravity { return CenterOfGravity{value: m, unit: cgMeter} }

// CGMillimeters returns a CG position in millimeters aft of the datum.
func CGMillimeters(mm float64) CenterOfGravity {
	return CenterOfGravity{value: mm, unit: cgMillimeter}
}

// Meter returns the CG position in meters.
func (c CenterOfGravity) Meter() float64 {
	if c.unit == cgMillimeter {
		return c.value / 1000.0
	}
	return c.value
}
