package aerosim

import "fmt"

// Aircraft defines the geometry, drag polar, propulsion limits and flight
// condition of a point-mass aircraft. It is a plain value record: copy it
// freely, or use CopyWith for selective field overrides.
type Aircraft struct {
	Name string

	// Mass & geometry
	Mass        float64 // kg
	WingArea    float64 // m², wing reference area
	AspectRatio float64 // span²/area, drives induced drag

	// Simplified drag polar
	ClAlpha          float64 // lift curve slope (per radian)
	Cd0              float64 // zero-lift (parasitic) drag coefficient
	OswaldEfficiency float64 // wing efficiency factor, typically 0.7–0.9

	// Propulsion
	MaxThrust   float64 // N, set to 0 for a glider
	ThrustRatio float64 // throttle: 0 = idle, 1 = full

	// Flight condition
	Altitude      float64 // m
	Airspeed      float64 // m/s, true airspeed
	AngleOfAttack float64 // degrees
}

// DefaultAircraft returns an uncalibrated single-engine general-aviation
// class aircraft, useful as a starting point for exploration.
func DefaultAircraft() Aircraft {
	return Aircraft{
		Name:             "default",
		Mass:             1000,
		WingArea:         20,
		AspectRatio:      8,
		ClAlpha:          5.5,
		Cd0:              0.025,
		OswaldEfficiency: 0.82,
		MaxThrust:        5000,
		ThrustRatio:      1.0,
		Altitude:         0,
		Airspeed:         50,
		AngleOfAttack:    3,
	}
}

// CopyWith returns a copy of this aircraft with only the given named fields
// updated. Unknown field names are silently ignored.
func (a Aircraft) CopyWith(overrides map[string]float64) Aircraft {
	for name, val := range overrides {
		a.setField(name, val)
	}
	return a
}

// setField assigns a named numeric field, returning whether the name matched.
func (a *Aircraft) setField(name string, val float64) bool {
	switch name {
	case "mass":
		a.Mass = val
	case "wing_area":
		a.WingArea = val
	case "aspect_ratio":
		a.AspectRatio = val
	case "cl_alpha":
		a.ClAlpha = val
	case "cd0":
		a.Cd0 = val
	case "oswald_efficiency":
		a.OswaldEfficiency = val
	case "max_thrust":
		a.MaxThrust = val
	case "thrust_ratio":
		a.ThrustRatio = val
	case "altitude":
		a.Altitude = val
	case "airspeed":
		a.Airspeed = val
	case "angle_of_attack":
		a.AngleOfAttack = val
	default:
		return false
	}
	return true
}

func (a Aircraft) String() string {
	return fmt.Sprintf("%s (m=%.0f kg, S=%.1f m², AR=%.1f) h=%.0f m v=%.1f m/s α=%.1f°", a.Name, a.Mass, a.WingArea, a.AspectRatio, a.Altitude, a.Airspeed, a.AngleOfAttack)
}
