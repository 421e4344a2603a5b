package aerosim

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
)

// ExportConfig configures the exporting of the simulation.
type ExportConfig struct {
	Filename     string
	AsCSV        bool
	CSVAppend    func(st State) []string // Custom extra columns.
	CSVAppendHdr func() []string         // Header for the custom columns.
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV || c.Filename == ""
}

// StreamStates streams the states of the channel to the configured file,
// one CSV row per state, until the channel is closed. Useless configs drain
// the channel without writing anything.
func StreamStates(conf ExportConfig, stateChan <-chan State) {
	if conf.IsUseless() {
		for range stateChan {
		}
		return
	}
	name := conf.Filename
	if !strings.HasSuffix(name, ".csv") {
		name += ".csv"
	}
	f, err := os.Create(name)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	hdr := []string{"time(s)", "altitude(m)", "airspeed(m/s)", "aoa(deg)", "lift(N)", "drag(N)", "thrust(N)", "weight(N)", "accel(m/s2)"}
	if conf.CSVAppendHdr != nil {
		hdr = append(hdr, conf.CSVAppendHdr()...)
	}
	if err := w.Write(hdr); err != nil {
		panic(err)
	}
	for state := range stateChan {
		rec := []string{
			fmtFloat(state.Time),
			fmtFloat(state.Altitude),
			fmtFloat(state.Airspeed),
			fmtFloat(state.AngleOfAttack),
			fmtFloat(state.Lift),
			fmtFloat(state.Drag),
			fmtFloat(state.Thrust),
			fmtFloat(state.Weight),
			fmtFloat(state.Acceleration),
		}
		if conf.CSVAppend != nil {
			rec = append(rec, conf.CSVAppend(state)...)
		}
		if err := w.Write(rec); err != nil {
			panic(err)
		}
	}
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
