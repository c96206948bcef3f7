package wb

import "errors"

// Fatal conditions intrinsic to the model. Everything else is accepted
// unvalidated.
var (
	// ErrNoMoments is returned by the landing recomputation when the
	// airplane carries no moments at all.
	ErrNoMoments = errors.New("airplane has no moments")

	// ErrLastMomentNotFuel is returned by the landing recomputation when
	// the last appended moment is not fuel-tagged. The model assumes the
	// fuel load is appended last, normally by the solver.
	ErrLastMomentNotFuel = errors.New("last moment is not fuel")

	// ErrNoSolution is returned by the solver when the candidate lever arm
	// coincides with the binding CG limit, which has no finite solution.
	ErrNoSolution = errors.New("lever arm equals the binding cg limit")

	// ErrOutsideEnvelope is returned by the solver when the aircraft is
	// already past the binding limit before any load is added, i.e. the
	// solved maximum load is negative.
	ErrOutsideEnvelope = errors.New("aircraft outside envelope before adding load")

	// ErrZeroMass is returned when a CG is requested for a zero total mass.
	ErrZeroMass = errors.New("total mass is zero")
)

// aftStationThreshold is the arm, in meters aft of the datum, from which a
// station is assumed to pull the CG toward the rearward limit. Stations
// forward of it bind against the forward limit instead. This is a fixed
// heuristic for the supported aircraft's datum convention, not a value
// derived from the current loading.
const aftStationThreshold = 0.5

// Airplane aggregates an ordered list of load moments against a certified
// envelope. It is the sole owner of its moments: the list only grows, and
// no moment is mutated after insertion. Totals are recomputed from the
// full list on every call so that appends between calls are observed.
//
// An Airplane is not safe for concurrent mutation; each evaluation should
// own a private instance for its lifetime.
type Airplane struct {
	callsign string
	moments  []Moment
	limits   Limits
	tripFuel Volume
}

// NewAirplane constructs an airplane from its initial ordered load
// moments, envelope limits, and the fuel volume consumed during the
// planned trip. The moments slice is copied.
func NewAirplane(callsign string, moments []Moment, limits Limits, tripFuel Volume) *Airplane {
	return &Airplane{
		callsign: callsign,
		moments:  append([]Moment(nil), moments...),
		limits:   limits,
		tripFuel: tripFuel,
	}
}

// Callsign returns the aircraft callsign.
func (a *Airplane) Callsign() string { return a.callsign }

// Limits returns the certified envelope.
func (a *Airplane) Limits() Limits { return a.limits }

// FuelConsumptionTrip returns the fuel volume burned during the trip.
func (a *Airplane) FuelConsumptionTrip() Volume { return a.tripFuel }

// Moments returns a copy of the ordered load moments.
func (a *Airplane) Moments() []Moment {
	return append([]Moment(nil), a.moments...)
}

// AddMoment appends a load unconditionally; no clamping or validation.
func (a *Airplane) AddMoment(m Moment) {
	a.moments = append(a.moments, m)
}

// TotalMass sums the physical mass of all moments, in insertion order.
func (a *Airplane) TotalMass() Mass {
	var kg float64
	for _, m := range a.moments {
		kg += m.Mass().Kilo()
	}
	return Kilos(kg)
}

// TotalMassMoment sums the mass moment of all moments.
func (a *Airplane) TotalMassMoment() MassMoment {
	var kgm float64
	for _, m := range a.moments {
		kgm += m.Total().KgM()
	}
	return KgMeters(kgm)
}

// centerOfGravity derives the CG from the live totals. A zero total mass
// has no CG.
func (a *Airplane) centerOfGravity() (CenterOfGravity, error) {
	kg := a.TotalMass().Kilo()
	if kg == 0 {
		return CenterOfGravity{}, ErrZeroMass
	}
	return CGMeters(a.TotalMassMoment().KgM() / kg), nil
}

// WithinLimits reports whether the loaded aircraft sits inside the
// envelope: total mass at or under MTOW and CG inside the forward and
// rearward bounds, all inclusive. An airplane with zero total mass has no
// CG and is reported outside.
func (a *Airplane) WithinLimits() bool {
	cg, err := a.centerOfGravity()
	if err != nil {
		return false
	}
	m := cg.Meter()
	return a.TotalMass().Kilo() <= a.limits.MTOW().Kilo() &&
		m >= a.limits.ForwardCGLimit().Meter() &&
		m <= a.limits.RearwardCGLimit().Meter()
}

// AddMaxMassWithinLimits solves for the largest load placeable at arm
// without leaving the envelope, appends it as a new moment, and returns a
// reference to it. The reference is valid until the next append.
//
// The kind mass selects the result's representation: a fuel-tagged kind
// makes the solved mass a volume of that fuel grade, expressed in the
// unit the kind's volume carries; a plain kind yields kilograms. maxVolume
// optionally caps a fuel result.
//
// The binding CG bound is the rearward limit for stations at or aft of
// aftStationThreshold and the forward limit otherwise. The solved mass is
// clamped to MTOW. An arm equal to the binding limit returns ErrNoSolution;
// a negative solution (the aircraft is already past the limit) returns
// ErrOutsideEnvelope rather than clamping to zero, so that callers cannot
// mistake an overloaded aircraft for one with no capacity left.
func (a *Airplane) AddMaxMassWithinLimits(name string, arm LeverArm, kind Mass, maxVolume *Volume) (*Moment, error) {
	cgLimit := a.limits.ForwardCGLimit().Meter()
	if arm.Meter() >= aftStationThreshold {
		cgLimit = a.limits.RearwardCGLimit().Meter()
	}

	totalKg := a.TotalMass().Kilo()
	totalKgM := a.TotalMassMoment().KgM()

	// From cgLimit = (totalKgM + m*arm) / (totalKg + m), solved for m.
	denom := arm.Meter() - cgLimit
	if denom == 0 {
		return nil, ErrNoSolution
	}
	maxKg := (cgLimit*totalKg - totalKgM) / denom

	if totalKg+maxKg >= a.limits.MTOW().Kilo() {
		maxKg = a.limits.MTOW().Kilo() - totalKg
	}
	if maxKg < 0 {
		return nil, ErrOutsideEnvelope
	}

	mass := Kilos(maxKg)
	if ft, ok := kind.FuelType(); ok {
		mass = mass.ToFuel(ft)
		if maxVolume != nil {
			if v, _ := mass.Volume(); v.ToLiter() > maxVolume.ToLiter() {
				mass = Fuel(ft, Liters(maxVolume.ToLiter()))
			}
		}
		if kv, _ := kind.Volume(); kv.Unit() != UnitLiter {
			v, _ := mass.Volume()
			mass = Fuel(ft, v.In(kv.Unit()))
		}
	}

	a.moments = append(a.moments, NewMoment(name, arm, mass))
	return &a.moments[len(a.moments)-1], nil
}

// AddMaxFuelWithinLimits solves for the largest fuel load of the given
// grade placeable at arm, expressed in the given volume unit, optionally
// capped by maxVolume (typically the tank capacity). It is the fuel-shaped
// form of AddMaxMassWithinLimits.
func (a *Airplane) AddMaxFuelWithinLimits(name string, arm LeverArm, ft FuelType, unit VolumeUnit, maxVolume *Volume) (*Moment, error) {
	return a.AddMaxMassWithinLimits(name, arm, Fuel(ft, Volume{unit: unit}), maxVolume)
}

// landingMoments returns a copy of the moment list with the trip's fuel
// consumption burned from the last moment. The last moment must be
// fuel-tagged.
func (a *Airplane) landingMoments() ([]Moment, error) {
	if len(a.moments) == 0 {
		return nil, ErrNoMoments
	}
	last := a.moments[len(a.moments)-1]
	ft, ok := last.Mass().FuelType()
	if !ok {
		return nil, ErrLastMomentNotFuel
	}
	vol, _ := last.Mass().Volume()
	remaining := Liters(vol.ToLiter() - a.tripFuel.ToLiter())

	out := append([]Moment(nil), a.moments...)
	out[len(out)-1] = NewMoment(last.Name(), last.LeverArm(), Fuel(ft, remaining))
	return out, nil
}

// TotalMassLanding recomputes the total mass after the trip's fuel
// consumption has been burned from the last moment. It fails with
// ErrNoMoments or ErrLastMomentNotFuel when the fuel-last convention does
// not hold.
func (a *Airplane) TotalMassLanding() (Mass, error) {
	moments, err := a.landingMoments()
	if err != nil {
		return Mass{}, err
	}
	var kg float64
	for _, m := range moments {
		kg += m.Mass().Kilo()
	}
	return Kilos(kg), nil
}

// TotalMassMomentLanding recomputes the total mass moment after the trip's
// fuel consumption has been burned from the last moment.
func (a *Airplane) TotalMassMomentLanding() (MassMoment, error) {
	moments, err := a.landingMoments()
	if err != nil {
		return MassMoment{}, err
	}
	var kgm float64
	for _, m := range moments {
		kgm += m.Total().KgM()
	}
	return KgMeters(kgm), nil
}
