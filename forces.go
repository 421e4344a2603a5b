package aerosim

import "math"

/* Aerodynamic forces: lift, drag, thrust, weight.

   Lift = ½ ρ V² S Cl
   Drag = ½ ρ V² S Cd
   Cd   = Cd0 + Cl² / (π e AR)
   Cl   = ClAlpha · α (linear, small α)
*/

// LiftCoefficient returns Cl from the angle of attack (radians). Linear
// thin-airfoil relation with no stall limit: only meaningful within roughly
// ±15° of angle of attack.
func LiftCoefficient(alphaRad, clAlpha float64) float64 {
	return clAlpha * alphaRad
}

// DragCoefficient returns the total drag coefficient, parasitic plus
// induced. A non-positive aspect ratio or Oswald efficiency degrades the
// induced term to zero rather than dividing by it.
func DragCoefficient(cl, cd0, aspectRatio, oswaldEfficiency float64) float64 {
	if aspectRatio <= 0 || oswaldEfficiency <= 0 {
		return cd0
	}
	return cd0 + cl*cl/(math.Pi*oswaldEfficiency*aspectRatio)
}

// DynamicPressure returns q = ½ ρ V² (Pa).
func DynamicPressure(rho, speed float64) float64 {
	return 0.5 * rho * speed * speed
}

// Lift returns the lift force (N) for the aircraft's current flight
// condition.
func Lift(a Aircraft) float64 {
	rho := AirDensity(a.Altitude)
	cl := LiftCoefficient(a.AngleOfAttack*deg2rad, a.ClAlpha)
	return DynamicPressure(rho, a.Airspeed) * a.WingArea * cl
}

// Drag returns the drag force (N) for the aircraft's current flight
// condition.
func Drag(a Aircraft) float64 {
	rho := AirDensity(a.Altitude)
	cl := LiftCoefficient(a.AngleOfAttack*deg2rad, a.ClAlpha)
	cd := DragCoefficient(cl, a.Cd0, a.AspectRatio, a.OswaldEfficiency)
	return DynamicPressure(rho, a.Airspeed) * a.WingArea * cd
}

// Thrust returns the delivered thrust (N). The throttle setting is clamped
// to [0, 1] even if the stored ratio is out of range.
func Thrust(a Aircraft) float64 {
	return a.MaxThrust * clamp(a.ThrustRatio, 0, 1)
}

// Weight returns the weight force (N).
func Weight(a Aircraft) float64 {
	return a.Mass * Gravity
}

// ThrustRequired returns the thrust needed for steady, level flight (T = D
// at L = W). It does not depend on MaxThrust or ThrustRatio.
func ThrustRequired(a Aircraft) float64 {
	return Drag(a)
}
