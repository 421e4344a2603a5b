package aerosim

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestNewSimulatorErrors(t *testing.T) {
	a := DefaultAircraft()
	a.Mass = 0
	if _, err := NewSimulator(a, 0.1); err != ErrNonPhysicalMass {
		t.Fatalf("expected ErrNonPhysicalMass, got %v", err)
	}
	a.Mass = -10
	if _, err := NewSimulator(a, 0.1); err != ErrNonPhysicalMass {
		t.Fatalf("expected ErrNonPhysicalMass, got %v", err)
	}
	a = DefaultAircraft()
	if _, err := NewSimulator(a, 0); err != ErrNonPhysicalStep {
		t.Fatalf("expected ErrNonPhysicalStep, got %v", err)
	}
}

func TestNewSimulatorInitialState(t *testing.T) {
	a := DefaultAircraft()
	sim, err := NewSimulator(a, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	st := sim.State()
	if st.Altitude != a.Altitude || st.Airspeed != a.Airspeed || st.AngleOfAttack != a.AngleOfAttack {
		t.Fatal("state not initialized from parameters")
	}
	if st.Time != 0 || st.Lift != 0 || st.Drag != 0 || st.Thrust != 0 || st.Weight != 0 || st.Acceleration != 0 {
		t.Fatal("time and cached forces must start at zero")
	}
}

// TestStepFormulas checks one step against the documented update, applied by
// hand to the initial parameters.
func TestStepFormulas(t *testing.T) {
	a := DefaultAircraft()
	const dt = 0.1
	sim, err := NewSimulator(a, dt)
	if err != nil {
		t.Fatal(err)
	}
	st := sim.Step()

	lift := Lift(a)
	drag := Drag(a)
	thrust := Thrust(a)
	weight := Weight(a)
	axial := (thrust - drag) / a.Mass
	expSpeed := math.Max(MinAirspeed, a.Airspeed+axial*dt)
	sinγ := clamp((thrust-drag)/weight, -0.5, 0.5)
	expAlt := math.Max(0, a.Altitude+expSpeed*sinγ*dt)

	if !floats.EqualWithinAbs(st.Airspeed, expSpeed, 1e-12) {
		t.Fatalf("v = %f, expected %f", st.Airspeed, expSpeed)
	}
	if !floats.EqualWithinAbs(st.Altitude, expAlt, 1e-12) {
		t.Fatalf("h = %f, expected %f", st.Altitude, expAlt)
	}
	if !floats.EqualWithinAbs(st.Time, dt, 1e-12) {
		t.Fatalf("t = %f", st.Time)
	}
	if st.Lift != lift || st.Drag != drag || st.Thrust != thrust || st.Weight != weight {
		t.Fatal("cached forces differ from the force model outputs")
	}
	if !floats.EqualWithinAbs(st.Acceleration, axial, 1e-12) {
		t.Fatalf("a = %f, expected %f", st.Acceleration, axial)
	}
}

func TestStepSyncsParams(t *testing.T) {
	a := DefaultAircraft()
	sim, _ := NewSimulator(a, 0.1)
	// Desync the record on purpose: the step must push state over it before
	// computing forces.
	sim.Params.Airspeed = 9999
	sim.Params.Altitude = 9999
	st := sim.Step()
	// The record must have been overwritten with the state's values before
	// the force evaluation.
	if sim.Params.Airspeed != a.Airspeed || sim.Params.Altitude != a.Altitude {
		t.Fatal("parameter record not synchronized from state")
	}
	// The forces must reflect the state's speed (50 m/s), not 9999 m/s.
	if st.Drag > 10*Drag(a) {
		t.Fatal("forces computed from stale parameters")
	}
}

func TestAirspeedFloor(t *testing.T) {
	a := DefaultAircraft()
	a.MaxThrust = 0
	a.Cd0 = 50 // absurd drag to decelerate hard
	sim, _ := NewSimulator(a, 1)
	var st State
	for i := 0; i < 10; i++ {
		st = sim.Step()
	}
	if st.Airspeed != MinAirspeed {
		t.Fatalf("airspeed %f did not floor at %f", st.Airspeed, MinAirspeed)
	}
}

func TestAltitudeFloor(t *testing.T) {
	a := DefaultAircraft()
	a.MaxThrust = 0
	a.Cd0 = 5
	a.Altitude = 1
	sim, _ := NewSimulator(a, 1)
	var st State
	for i := 0; i < 10; i++ {
		st = sim.Step()
	}
	if st.Altitude != 0 {
		t.Fatalf("altitude %f went underground", st.Altitude)
	}
}

func TestClimbAngleClamped(t *testing.T) {
	a := DefaultAircraft()
	a.MaxThrust = 1e7 // silly thrust: sin γ would exceed 0.5 unclamped
	sim, _ := NewSimulator(a, 0.1)
	st := sim.Step()
	maxClimb := st.Airspeed * 0.5 * 0.1
	if st.Altitude > a.Altitude+maxClimb+1e-9 {
		t.Fatalf("climb rate not clamped: Δh = %f", st.Altitude-a.Altitude)
	}
}

func TestNonPositiveWeightLeavesAltitude(t *testing.T) {
	a := DefaultAircraft()
	a.Altitude = 500
	sim, _ := NewSimulator(a, 0.1)
	sim.SetMass(-1) // degenerate configuration, weight < 0
	st := sim.Step()
	if st.Altitude != 500 {
		t.Fatalf("altitude changed with non-positive weight: %f", st.Altitude)
	}
}

func TestAlphaUnchangedByStep(t *testing.T) {
	a := DefaultAircraft()
	sim, _ := NewSimulator(a, 0.1)
	for i := 0; i < 5; i++ {
		if st := sim.Step(); st.AngleOfAttack != a.AngleOfAttack {
			t.Fatalf("step modified the angle of attack: %f", st.AngleOfAttack)
		}
	}
}

func TestSetParameters(t *testing.T) {
	a := DefaultAircraft()
	sim, _ := NewSimulator(a, 0.1)
	before := sim.Params
	sim.SetParameters(map[string]float64{"no_such_field": 42})
	if sim.Params != before {
		t.Fatal("unknown field name must be ignored")
	}
	sim.SetParameters(map[string]float64{"thrust_ratio": 0.5})
	if st := sim.Step(); st.Thrust != 2500 {
		t.Fatalf("throttle override not applied: T = %f", st.Thrust)
	}
	// State-owned fields must be mirrored into the state, otherwise the next
	// sync would overwrite the input.
	sim.SetParameters(map[string]float64{"angle_of_attack": 5})
	if sim.State().AngleOfAttack != 5 {
		t.Fatal("angle of attack override lost")
	}
	if st := sim.Step(); st.AngleOfAttack != 5 {
		t.Fatal("angle of attack override overwritten by step")
	}
}

func TestExplicitSetters(t *testing.T) {
	a := DefaultAircraft()
	sim, _ := NewSimulator(a, 0.1)
	sim.SetThrottle(0.25)
	if st := sim.Step(); st.Thrust != 1250 {
		t.Fatalf("T = %f", st.Thrust)
	}
	sim.SetAngleOfAttack(1)
	if st := sim.Step(); st.AngleOfAttack != 1 {
		t.Fatalf("α = %f", st.AngleOfAttack)
	}
	sim.SetMaxThrust(100)
	sim.SetThrottle(1)
	if st := sim.Step(); st.Thrust != 100 {
		t.Fatalf("T = %f", st.Thrust)
	}
}
