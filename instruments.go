package aerosim

import (
	"math"
	"math/rand"
	"time"

	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat/distmv"
)

var (
	σAirspeed = math.Pow(0.5, 2) // (m/s)², pitot noise variance
	σAltitude = math.Pow(4.0, 2) // m², barometric altimeter noise variance
)

// Instruments models the noisy airspeed and altitude readings of a basic
// pitot-static installation.
type Instruments struct {
	Name                         string
	airspeedNoise, altitudeNoise *distmv.Normal
}

// Measurement is a noisy observation of a state snapshot.
type Measurement struct {
	Time              float64 // s
	IndicatedAirspeed float64 // m/s
	IndicatedAltitude float64 // m
}

// NewInstruments returns an instrument panel with the provided airspeed and
// altitude noise variances.
func NewInstruments(name string, airspeedVar, altitudeVar float64) Instruments {
	seed := rand.New(rand.NewSource(time.Now().UnixNano()))
	vNoise, ok := distmv.NewNormal([]float64{0}, mat64.NewSymDense(1, []float64{airspeedVar}), seed)
	if !ok {
		panic("NOK in Gaussian")
	}
	hNoise, ok := distmv.NewNormal([]float64{0}, mat64.NewSymDense(1, []float64{altitudeVar}), seed)
	if !ok {
		panic("NOK in Gaussian")
	}
	return Instruments{name, vNoise, hNoise}
}

// BasicPanel returns a panel with typical light-aircraft noise levels.
func BasicPanel() Instruments {
	return NewInstruments("basic", σAirspeed, σAltitude)
}

// Measure returns a noisy reading of the given state. The indicated airspeed
// is floored at zero.
func (ins Instruments) Measure(st State) Measurement {
	return Measurement{
		Time:              st.Time,
		IndicatedAirspeed: math.Max(0, st.Airspeed+ins.airspeedNoise.Rand(nil)[0]),
		IndicatedAltitude: st.Altitude + ins.altitudeNoise.Rand(nil)[0],
	}
}
