package wb

// Moment binds a named load to its station and mass. It is immutable once
// constructed, and no validation is performed: negative masses or arms are
// accepted, since validation belongs to the caller.
type Moment struct {
	name string
	arm  LeverArm
	mass Mass
}

// NewMoment constructs a load moment.
func NewMoment(name string, arm LeverArm, mass Mass) Moment {
	return Moment{name: name, arm: arm, mass: mass}
}

// Name returns the load's name.
func (m Moment) Name() string { return m.name }

// LeverArm returns the load's station.
func (m Moment) LeverArm() LeverArm { return m.arm }

// Mass returns the load's mass.
func (m Moment) Mass() Mass { return m.mass }

// Total returns the load's contribution to the aggregate mass moment.
func (m Moment) Total() MassMoment {
	return KgMeters(m.mass.Kilo() * m.arm.Meter())
}

// Limits describes the certified operating envelope: weight bounds and the
// forward/rearward CG bounds. Forward must not exceed rearward; this holds
// by construction and is not enforced here.
type Limits struct {
	minimumWeight Mass
	mtow          Mass
	forwardCG     CenterOfGravity
	rearwardCG    CenterOfGravity
}

// NewLimits constructs an envelope descriptor.
func NewLimits(minimumWeight, mtow Mass, forwardCG, rearwardCG CenterOfGravity) Limits {
	return Limits{
		minimumWeight: minimumWeight,
		mtow:          mtow,
		forwardCG:     forwardCG,
		rearwardCG:    rearwardCG,
	}
}

// MinimumWeight returns the minimum operating weight.
func (l Limits) MinimumWeight() Mass { return l.minimumWeight }

// MTOW returns the maximum takeoff weight.
func (l Limits) MTOW() Mass { return l.mtow }

// ForwardCGLimit returns the forward CG bound.
func (l Limits) ForwardCGLimit() CenterOfGravity { return l.forwardCG }

// RearwardCGLimit returns the rearward CG bound.
func (l Limits) RearwardCGLimit() CenterOfGravity { return l.rearwardCG }
