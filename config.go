package aerosim

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Scenario holds everything needed to run a flight loaded from a TOML file.
type Scenario struct {
	Aircraft Aircraft
	Dt       float64 // s
	Steps    int
	Export   ExportConfig
}

// LoadScenario reads a scenario TOML file (the .toml suffix is optional).
// Unset aircraft fields default to DefaultAircraft values, the step defaults
// to 0.1 s over 50 steps, and export is off unless a filename is set.
func LoadScenario(path string) (Scenario, error) {
	path = strings.TrimSuffix(path, ".toml")
	v := viper.New()
	v.SetConfigName(filepath.Base(path))
	v.SetConfigType("toml")
	v.AddConfigPath(filepath.Dir(path))

	def := DefaultAircraft()
	v.SetDefault("aircraft.name", filepath.Base(path))
	v.SetDefault("aircraft.mass", def.Mass)
	v.SetDefault("aircraft.wing_area", def.WingArea)
	v.SetDefault("aircraft.aspect_ratio", def.AspectRatio)
	v.SetDefault("aircraft.cl_alpha", def.ClAlpha)
	v.SetDefault("aircraft.cd0", def.Cd0)
	v.SetDefault("aircraft.oswald_efficiency", def.OswaldEfficiency)
	v.SetDefault("aircraft.max_thrust", def.MaxThrust)
	v.SetDefault("aircraft.thrust_ratio", def.ThrustRatio)
	v.SetDefault("aircraft.altitude", def.Altitude)
	v.SetDefault("aircraft.airspeed", def.Airspeed)
	v.SetDefault("aircraft.angle_of_attack", def.AngleOfAttack)
	v.SetDefault("sim.dt", 0.1)
	v.SetDefault("sim.steps", 50)

	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("%s.toml: %s", path, err)
	}

	a := Aircraft{
		Name:             v.GetString("aircraft.name"),
		Mass:             v.GetFloat64("aircraft.mass"),
		WingArea:         v.GetFloat64("aircraft.wing_area"),
		AspectRatio:      v.GetFloat64("aircraft.aspect_ratio"),
		ClAlpha:          v.GetFloat64("aircraft.cl_alpha"),
		Cd0:              v.GetFloat64("aircraft.cd0"),
		OswaldEfficiency: v.GetFloat64("aircraft.oswald_efficiency"),
		MaxThrust:        v.GetFloat64("aircraft.max_thrust"),
		ThrustRatio:      v.GetFloat64("aircraft.thrust_ratio"),
		Altitude:         v.GetFloat64("aircraft.altitude"),
		Airspeed:         v.GetFloat64("aircraft.airspeed"),
		AngleOfAttack:    v.GetFloat64("aircraft.angle_of_attack"),
	}
	if a.Mass <= 0 {
		return Scenario{}, fmt.Errorf("%s.toml: %s", path, ErrNonPhysicalMass)
	}
	sc := Scenario{
		Aircraft: a,
		Dt:       v.GetFloat64("sim.dt"),
		Steps:    v.GetInt("sim.steps"),
		Export: ExportConfig{
			Filename: v.GetString("export.filename"),
			AsCSV:    v.GetBool("export.csv"),
		},
	}
	if sc.Dt <= 0 {
		return Scenario{}, fmt.Errorf("%s.toml: %s", path, ErrNonPhysicalStep)
	}
	return sc, nil
}
