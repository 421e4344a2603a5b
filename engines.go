package aerosim

import (
	"fmt"
	"math"
	"strings"
)

// Powerplant defines a powerplant interface.
type Powerplant interface {
	// Name of this powerplant.
	Name() string
	// StaticThrust returns the sea-level static thrust (N).
	StaticThrust() float64
	// ThrustAt returns the maximum thrust available at a given altitude (N).
	ThrustAt(altitude float64) float64
}

// standardDensityRatio returns σ = ρ(h)/ρ0 from the ISA temperature law with
// the g/(R·L) − 1 exponent, isothermal above the tropopause. The powerplant
// model needs a density that decreases with altitude, so it does not share
// the flight model's density relation.
func standardDensityRatio(altitude float64) float64 {
	if altitude <= 0 {
		return 1
	}
	t := TempSeaLevel - LapseRate*math.Min(altitude, Tropopause)
	σ := math.Pow(t/TempSeaLevel, Gravity/(GasConstant*LapseRate)-1)
	if altitude > Tropopause {
		σ *= math.Exp(-Gravity * (altitude - Tropopause) / (GasConstant * t))
	}
	return σ
}

// lapsedThrust applies the density-ratio thrust lapse T = T0·σ^0.7.
func lapsedThrust(static, altitude float64) float64 {
	return static * math.Pow(standardDensityRatio(altitude), 0.7)
}

/* Available powerplants */

// O320 approximates a Lycoming O-320 class piston engine driving a fixed
// pitch propeller, as installed on many light trainers.
type O320 struct{}

// Name implements the Powerplant interface.
func (e O320) Name() string { return "O-320" }

// StaticThrust implements the Powerplant interface.
func (e O320) StaticThrust() float64 { return 2200 }

// ThrustAt implements the Powerplant interface.
func (e O320) ThrustAt(altitude float64) float64 {
	return lapsedThrust(e.StaticThrust(), altitude)
}

// JT15D approximates a Pratt & Whitney JT15D class small turbofan.
type JT15D struct{}

// Name implements the Powerplant interface.
func (e JT15D) Name() string { return "JT15D" }

// StaticThrust implements the Powerplant interface.
func (e JT15D) StaticThrust() float64 { return 9790 }

// ThrustAt implements the Powerplant interface.
func (e JT15D) ThrustAt(altitude float64) float64 {
	return lapsedThrust(e.StaticThrust(), altitude)
}

// GenericPowerplant is a powerplant with an arbitrary static thrust and the
// same density-ratio lapse as the named engines.
type GenericPowerplant struct {
	Label  string
	Static float64
}

// NewGenericPowerplant returns a generic powerplant.
func NewGenericPowerplant(label string, static float64) GenericPowerplant {
	return GenericPowerplant{label, static}
}

// Name implements the Powerplant interface.
func (e GenericPowerplant) Name() string { return e.Label }

// StaticThrust implements the Powerplant interface.
func (e GenericPowerplant) StaticThrust() float64 { return e.Static }

// ThrustAt implements the Powerplant interface.
func (e GenericPowerplant) ThrustAt(altitude float64) float64 {
	return lapsedThrust(e.Static, altitude)
}

// PowerplantFromString returns the named powerplant.
func PowerplantFromString(name string) (Powerplant, error) {
	switch strings.ToLower(name) {
	case "o-320", "o320":
		return O320{}, nil
	case "jt15d":
		return JT15D{}, nil
	}
	return nil, fmt.Errorf("aerosim: unknown powerplant `%s`", name)
}

// WithPowerplant returns a copy of the aircraft with MaxThrust set to the
// powerplant's available thrust at the aircraft's current altitude.
func (a Aircraft) WithPowerplant(p Powerplant) Aircraft {
	a.MaxThrust = p.ThrustAt(a.Altitude)
	return a
}
