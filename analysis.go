package aerosim

import (
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

// Summary reports the steady-state force balance for a flight condition.
type Summary struct {
	Density        float64 // kg/m³
	Lift           float64 // N
	Drag           float64 // N
	Thrust         float64 // N, delivered at the current throttle
	Weight         float64 // N
	ThrustRequired float64 // N, for level flight

	// LiftMismatch is set when lift differs from weight by more than 10%:
	// the aircraft would climb or descend.
	LiftMismatch bool
	// ThrustMismatch is set when the delivered thrust differs from the
	// thrust required by more than 10%: speed will change over time.
	ThrustMismatch bool
}

// Summarize computes the steady-state forces for the given aircraft without
// any time stepping.
func Summarize(a Aircraft) Summary {
	s := Summary{
		Density:        AirDensity(a.Altitude),
		Lift:           Lift(a),
		Drag:           Drag(a),
		Thrust:         Thrust(a),
		Weight:         Weight(a),
		ThrustRequired: ThrustRequired(a),
	}
	s.LiftMismatch = math.Abs(s.Lift-s.Weight) > 0.1*s.Weight
	s.ThrustMismatch = math.Abs(s.Thrust-s.ThrustRequired) > 0.1*s.ThrustRequired
	return s
}

// TrimThrottle returns the throttle fraction which balances thrust and drag
// at the aircraft's current flight condition, clamped to [0, 1]. A
// powerless aircraft trims at zero.
func TrimThrottle(a Aircraft) float64 {
	if a.MaxThrust <= 0 || floats.EqualWithinAbs(a.MaxThrust, 0, 1e-12) {
		return 0
	}
	return clamp(ThrustRequired(a)/a.MaxThrust, 0, 1)
}

// Linearize returns the Jacobian of the longitudinal dynamics (v̇, ḣ) with
// respect to (v, h) at the given condition, computed by central differences.
// The mass must be positive.
func Linearize(a Aircraft) *mat64.Dense {
	const (
		δv = 1e-3 // m/s
		δh = 1e-1 // m
	)
	deriv := func(v, h float64) (vDot, hDot float64) {
		p := a
		p.Airspeed = v
		p.Altitude = h
		drag := Drag(p)
		thrust := Thrust(p)
		weight := Weight(p)
		vDot = (thrust - drag) / p.Mass
		if weight > 0 {
			hDot = p.Airspeed * clamp((thrust-drag)/weight, -0.5, 0.5)
		}
		return
	}
	vDotPv, hDotPv := deriv(a.Airspeed+δv, a.Altitude)
	vDotMv, hDotMv := deriv(a.Airspeed-δv, a.Altitude)
	vDotPh, hDotPh := deriv(a.Airspeed, a.Altitude+δh)
	vDotMh, hDotMh := deriv(a.Airspeed, a.Altitude-δh)
	return mat64.NewDense(2, 2, []float64{
		(vDotPv - vDotMv) / (2 * δv), (vDotPh - vDotMh) / (2 * δh),
		(hDotPv - hDotMv) / (2 * δv), (hDotPh - hDotMh) / (2 * δh),
	})
}
