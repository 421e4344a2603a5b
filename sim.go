package aerosim

import (
	"errors"
	"math"
)

// MinAirspeed is the floor applied to the integrated airspeed (m/s): the
// Euler update is not allowed to stall the aircraft to a non-physical speed.
const MinAirspeed = 5.0

var (
	// ErrNonPhysicalMass is returned when constructing a simulator for an
	// aircraft whose mass is not strictly positive.
	ErrNonPhysicalMass = errors.New("aerosim: aircraft mass must be positive")
	// ErrNonPhysicalStep is returned for a non-positive time step.
	ErrNonPhysicalStep = errors.New("aerosim: time step must be positive")
)

// State is a snapshot of the simulated aircraft after a step.
type State struct {
	Altitude      float64 // m
	Airspeed      float64 // m/s
	AngleOfAttack float64 // degrees
	Time          float64 // s, elapsed since construction

	// Forces computed during the last step (N).
	Lift, Drag, Thrust, Weight float64

	// Net axial acceleration from the last step (m/s²).
	Acceleration float64
}

// Simulator owns one mutable flight state and advances it by a fixed time
// increment per Step call. Parameters may be changed between steps (throttle,
// angle of attack, ...) to simulate pilot inputs or configuration changes.
// A Simulator assumes exclusive ownership: callers sharing one instance
// across goroutines must serialize access themselves.
type Simulator struct {
	Params Aircraft
	dt     float64
	state  State
}

// NewSimulator returns a simulator initialized from the aircraft's current
// altitude, airspeed and angle of attack. Time starts at zero and the cached
// forces start at zero.
func NewSimulator(params Aircraft, dt float64) (*Simulator, error) {
	if params.Mass <= 0 {
		return nil, ErrNonPhysicalMass
	}
	if dt <= 0 {
		return nil, ErrNonPhysicalStep
	}
	return &Simulator{
		Params: params,
		dt:     dt,
		state: State{
			Altitude:      params.Altitude,
			Airspeed:      params.Airspeed,
			AngleOfAttack: params.AngleOfAttack,
		},
	}, nil
}

// State returns the latest state snapshot.
func (s *Simulator) State() State {
	return s.state
}

// Dt returns the fixed step duration in seconds.
func (s *Simulator) Dt() float64 {
	return s.dt
}

// applyStateToParams copies the state-owned fields (altitude, airspeed,
// angle of attack) into the parameter record. The force functions read only
// Params, so this must run before every force evaluation, never after.
func (s *Simulator) applyStateToParams() {
	s.Params.Altitude = s.state.Altitude
	s.Params.Airspeed = s.state.Airspeed
	s.Params.AngleOfAttack = s.state.AngleOfAttack
}

// Step advances the state by exactly one time increment and returns the new
// snapshot (also retained internally). Forward Euler along the flight path:
// a = (T − D)/m, neglecting the weight component along the path, so the
// balance is only valid near level flight. Altitude follows an implied climb
// angle sin γ = (T − D)/W clamped to ±0.5; for a degenerate non-positive
// weight the altitude is left unchanged. Angle of attack is never modified
// here: there are no pitch dynamics in this model.
func (s *Simulator) Step() State {
	s.applyStateToParams()
	lift := Lift(s.Params)
	drag := Drag(s.Params)
	thrust := Thrust(s.Params)
	weight := Weight(s.Params)

	axial := (thrust - drag) / s.Params.Mass
	s.state.Lift = lift
	s.state.Drag = drag
	s.state.Thrust = thrust
	s.state.Weight = weight
	s.state.Acceleration = axial

	s.state.Airspeed = math.Max(MinAirspeed, s.state.Airspeed+axial*s.dt)

	if weight > 0 {
		sinγ := clamp((thrust-drag)/weight, -0.5, 0.5)
		climbRate := s.state.Airspeed * sinγ
		s.state.Altitude = math.Max(0, s.state.Altitude+climbRate*s.dt)
	}

	s.state.Time += s.dt
	return s.state
}

// SetThrottle sets the throttle fraction, effective from the next step. The
// value is clamped to [0, 1] at force-computation time.
func (s *Simulator) SetThrottle(ratio float64) {
	s.Params.ThrustRatio = ratio
}

// SetAngleOfAttack sets the angle of attack in degrees, effective from the
// next step.
func (s *Simulator) SetAngleOfAttack(deg float64) {
	s.state.AngleOfAttack = deg
	s.Params.AngleOfAttack = deg
}

// SetMaxThrust sets the maximum available thrust (N).
func (s *Simulator) SetMaxThrust(thrust float64) {
	s.Params.MaxThrust = thrust
}

// SetMass sets the aircraft mass (kg). A non-positive mass is a contract
// violation: Step will then leave the altitude unchanged and the axial
// acceleration becomes meaningless.
func (s *Simulator) SetMass(mass float64) {
	s.Params.Mass = mass
}

// SetParameters applies named field overrides to the parameter record,
// effective from the next step. Unknown names are silently ignored. The
// state-owned fields (altitude, airspeed, angle_of_attack) are mirrored into
// the state as well, since the state is authoritative for them.
func (s *Simulator) SetParameters(overrides map[string]float64) {
	for name, val := range overrides {
		if !s.Params.setField(name, val) {
			continue
		}
		switch name {
		case "altitude":
			s.state.Altitude = val
		case "airspeed":
			s.state.Airspeed = val
		case "angle_of_attack":
			s.state.AngleOfAttack = val
		}
	}
}
