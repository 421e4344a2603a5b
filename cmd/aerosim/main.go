package main

import (
	"flag"
	"fmt"
	"log"

	"aerosim"
)

// This tool reads an optional scenario file, prints the steady-state force
// balance for the requested flight condition, and then runs the time
// evolution, printing one table row per step.

var (
	scenario string
	engine   string
	csvOut   string

	mass      float64
	wingArea  float64
	aspect    float64
	clAlpha   float64
	cd0       float64
	oswald    float64
	maxThrust float64
	throttle  float64
	altitude  float64
	speed     float64
	alpha     float64
	steps     int
	dt        float64
	useRK4    bool
)

func init() {
	flag.StringVar(&scenario, "scenario", "", "scenario TOML file (flags below are ignored when set)")
	flag.StringVar(&engine, "engine", "", "powerplant to derive max thrust from (O-320, JT15D)")
	flag.StringVar(&csvOut, "csv", "", "CSV export filename")
	flag.Float64Var(&mass, "mass", 1000, "aircraft mass (kg)")
	flag.Float64Var(&wingArea, "wing-area", 20, "wing area (m²)")
	flag.Float64Var(&aspect, "aspect-ratio", 8, "wing aspect ratio")
	flag.Float64Var(&clAlpha, "cl-alpha", 5.5, "lift curve slope (per radian)")
	flag.Float64Var(&cd0, "cd0", 0.025, "zero-lift drag coefficient")
	flag.Float64Var(&oswald, "oswald", 0.82, "Oswald efficiency factor")
	flag.Float64Var(&maxThrust, "max-thrust", 5000, "max thrust (N)")
	flag.Float64Var(&throttle, "throttle", 1.0, "throttle 0–1")
	flag.Float64Var(&altitude, "altitude", 0, "altitude (m)")
	flag.Float64Var(&speed, "speed", 50, "true airspeed (m/s)")
	flag.Float64Var(&alpha, "alpha", 3, "angle of attack (degrees)")
	flag.IntVar(&steps, "steps", 50, "number of time steps to run")
	flag.Float64Var(&dt, "dt", 0.1, "time step (s)")
	flag.BoolVar(&useRK4, "rk4", false, "propagate with RK4 instead of per-step Euler (CSV export only)")
}

func main() {
	flag.Parse()

	var sc aerosim.Scenario
	if scenario != "" {
		var err error
		sc, err = aerosim.LoadScenario(scenario)
		if err != nil {
			log.Fatalf("could not load scenario: %s", err)
		}
	} else {
		sc = aerosim.Scenario{
			Aircraft: aerosim.Aircraft{
				Name:             "cli",
				Mass:             mass,
				WingArea:         wingArea,
				AspectRatio:      aspect,
				ClAlpha:          clAlpha,
				Cd0:              cd0,
				OswaldEfficiency: oswald,
				MaxThrust:        maxThrust,
				ThrustRatio:      throttle,
				Altitude:         altitude,
				Airspeed:         speed,
				AngleOfAttack:    alpha,
			},
			Dt:    dt,
			Steps: steps,
		}
	}
	if csvOut != "" {
		sc.Export = aerosim.ExportConfig{Filename: csvOut, AsCSV: true}
	}
	if engine != "" {
		pp, err := aerosim.PowerplantFromString(engine)
		if err != nil {
			log.Fatal(err)
		}
		sc.Aircraft = sc.Aircraft.WithPowerplant(pp)
	}

	a := sc.Aircraft
	sum := aerosim.Summarize(a)
	fmt.Println("=== Steady-state aerodynamics (current parameters) ===")
	fmt.Println()
	fmt.Printf("  Altitude:        %.0f m\n", a.Altitude)
	fmt.Printf("  Air density:     %.4f kg/m³\n", sum.Density)
	fmt.Printf("  Airspeed:        %.1f m/s\n", a.Airspeed)
	fmt.Printf("  Angle of attack: %.1f°\n", a.AngleOfAttack)
	fmt.Printf("  Mass:            %.0f kg\n", a.Mass)
	fmt.Printf("  Wing area:       %.1f m²\n", a.WingArea)
	fmt.Printf("  Aspect ratio:    %.1f\n", a.AspectRatio)
	fmt.Println()
	fmt.Printf("  Lift:            %.1f N\n", sum.Lift)
	fmt.Printf("  Weight:          %.1f N\n", sum.Weight)
	fmt.Printf("  Drag:            %.1f N\n", sum.Drag)
	fmt.Printf("  Thrust required: %.1f N (for level flight)\n", sum.ThrustRequired)
	fmt.Printf("  Thrust (current): %.1f N (trim throttle %.2f)\n", sum.Thrust, aerosim.TrimThrottle(a))
	fmt.Println()
	if sum.LiftMismatch {
		fmt.Println("  → Lift ≠ Weight: aircraft would climb or descend.")
	}
	if sum.ThrustMismatch {
		fmt.Println("  → Thrust ≠ Thrust required: speed will change over time.")
	}
	fmt.Println()

	sim, err := aerosim.NewSimulator(a, sc.Dt)
	if err != nil {
		log.Fatal(err)
	}
	flight := aerosim.NewFlight(a.Name, sim, sc.Export)

	if useRK4 {
		flight.PropagateRK4(float64(sc.Steps) * sc.Dt)
		fmt.Println("Done (RK4 propagation; see CSV export for the trajectory).")
		return
	}

	fmt.Printf("=== Time evolution (%d steps × %g s) ===\n\n", sc.Steps, sc.Dt)
	fmt.Printf("  %8s %8s %10s %10s %10s %8s %8s\n", "Time(s)", "Alt(m)", "Speed(m/s)", "Lift(N)", "Drag(N)", "T(N)", "a(m/s²)")
	fmt.Println("  " + "----------------------------------------------------------------")
	flight.OnStep = func(st aerosim.State) {
		fmt.Printf("  %8.1f %8.1f %10.1f %10.1f %10.1f %8.1f %8.2f\n", st.Time, st.Altitude, st.Airspeed, st.Lift, st.Drag, st.Thrust, st.Acceleration)
	}
	flight.Run(sc.Steps)
	fmt.Println()
	fmt.Println("Done. Change parameters via command-line flags to explore the model.")
}
