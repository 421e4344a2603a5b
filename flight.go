package aerosim

import (
	"math"
	"os"
	"sync"
	"time"

	"github.com/ChristopherRabotin/ode"
	kitlog "github.com/go-kit/kit/log"
)

/* Handles timed simulation runs. */

// Flight drives a Simulator over a number of steps, streaming every state
// snapshot to the export layer and logging progress. A Flight is good for a
// single run: call either Run or PropagateRK4, not both.
type Flight struct {
	Sim      *Simulator
	Name     string
	OnStep   func(State) // Optional per-step observer (e.g. table printing).
	logger   kitlog.Logger
	histChan chan State
	stopChan chan bool
	wg       sync.WaitGroup
	rkStart  float64
	rkFor    float64
	done     bool
}

// NewFlight returns a flight runner for the given simulator. If the export
// config is useless, no state streaming takes place.
func NewFlight(name string, sim *Simulator, conf ExportConfig) *Flight {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "flight", name)
	f := &Flight{Sim: sim, Name: name, logger: klog, stopChan: make(chan bool, 1)}
	if !conf.IsUseless() {
		f.histChan = make(chan State, 1000) // a 1k entry buffer
		hist := f.histChan
		f.wg.Add(1)
		go func() {
			defer f.wg.Done()
			StreamStates(conf, hist)
		}()
		// Write the first data point.
		f.histChan <- sim.State()
	}
	return f
}

// LogStatus logs the current state of the run.
func (f *Flight) LogStatus() {
	st := f.Sim.State()
	f.logger.Log("level", "info", "subsys", "sim", "t(s)", st.Time, "alt(m)", st.Altitude, "speed(m/s)", st.Airspeed, "accel(m/s²)", st.Acceleration)
}

// Run advances the simulation by the given number of Euler steps, streaming
// each state. It returns the number of steps actually performed, which is
// lower than requested only if StopRun was called.
func (f *Flight) Run(steps int) int {
	f.LogStatus()
	ticker := time.NewTicker(10 * time.Second)
	go func() {
		for range ticker.C {
			if f.done {
				break
			}
			f.LogStatus()
		}
	}()
	performed := 0
	for i := 0; i < steps; i++ {
		select {
		case <-f.stopChan:
			f.logger.Log("level", "warning", "subsys", "sim", "status", "stopped", "step", i)
			f.finish(ticker)
			return performed
		default:
		}
		st := f.Sim.Step()
		performed++
		if f.OnStep != nil {
			f.OnStep(st)
		}
		if f.histChan != nil {
			f.histChan <- st
		}
	}
	f.finish(ticker)
	return performed
}

func (f *Flight) finish(ticker *time.Ticker) {
	f.done = true
	ticker.Stop()
	if f.histChan != nil {
		close(f.histChan)
		f.histChan = nil
	}
	f.LogStatus()
	f.wg.Wait() // Don't return until all the states are written out.
}

// StopRun requests the run stop before completing.
func (f *Flight) StopRun() {
	f.stopChan <- true
}

// PropagateRK4 integrates the longitudinal dynamics over the given duration
// (seconds) with a fixed-step RK4 instead of the per-step Euler update. The
// step size is the simulator's Δt. The airspeed and altitude floors still
// apply whenever a state is stored.
func (f *Flight) PropagateRK4(duration float64) {
	f.rkStart = f.Sim.State().Time
	f.rkFor = duration
	f.LogStatus()
	ode.NewRK4(0, f.Sim.Dt(), f).Solve()
	f.done = true
	if f.histChan != nil {
		close(f.histChan)
		f.histChan = nil
	}
	f.LogStatus()
	f.wg.Wait()
}

// GetState implements ode.Integrable over [airspeed, altitude].
func (f *Flight) GetState() []float64 {
	st := f.Sim.State()
	return []float64{st.Airspeed, st.Altitude}
}

// SetState implements ode.Integrable.
func (f *Flight) SetState(t float64, s []float64) {
	f.Sim.state.Airspeed = math.Max(MinAirspeed, s[0])
	f.Sim.state.Altitude = math.Max(0, s[1])
	f.Sim.state.Time = f.rkStart + t + f.Sim.Dt()
	f.Sim.applyStateToParams()
	// Refresh the cached forces for observability.
	f.Sim.state.Lift = Lift(f.Sim.Params)
	f.Sim.state.Drag = Drag(f.Sim.Params)
	f.Sim.state.Thrust = Thrust(f.Sim.Params)
	f.Sim.state.Weight = Weight(f.Sim.Params)
	f.Sim.state.Acceleration = (f.Sim.state.Thrust - f.Sim.state.Drag) / f.Sim.Params.Mass
	if f.histChan != nil {
		f.histChan <- f.Sim.State()
	}
}

// Func implements ode.Integrable: time derivatives of [airspeed, altitude].
func (f *Flight) Func(t float64, s []float64) []float64 {
	p := f.Sim.Params
	p.Airspeed = math.Max(MinAirspeed, s[0])
	p.Altitude = math.Max(0, s[1])
	drag := Drag(p)
	thrust := Thrust(p)
	weight := Weight(p)
	vDot := (thrust - drag) / p.Mass
	var hDot float64
	if weight > 0 {
		hDot = p.Airspeed * clamp((thrust-drag)/weight, -0.5, 0.5)
	}
	return []float64{vDot, hDot}
}

// Stop implements ode.Integrable. To stop a propagation early, call StopRun.
func (f *Flight) Stop(t float64) bool {
	select {
	case <-f.stopChan:
		return true
	default:
		return t >= f.rkFor
	}
}
