package aerosim

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestStreamStatesCSV(t *testing.T) {
	name := filepath.Join(t.TempDir(), "run")
	conf := ExportConfig{
		Filename: name,
		AsCSV:    true,
		CSVAppendHdr: func() []string {
			return []string{"qinf(Pa)"}
		},
		CSVAppend: func(st State) []string {
			q := DynamicPressure(AirDensity(st.Altitude), st.Airspeed)
			return []string{strconv.FormatFloat(q, 'f', 6, 64)}
		},
	}
	ch := make(chan State, 3)
	ch <- State{Time: 0.1, Altitude: 10, Airspeed: 50}
	ch <- State{Time: 0.2, Altitude: 11, Airspeed: 51}
	ch <- State{Time: 0.3, Altitude: 12, Airspeed: 52}
	close(ch)
	StreamStates(conf, ch)

	f, err := os.Open(name + ".csv")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header + 3 rows, got %d records", len(records))
	}
	if len(records[0]) != 10 {
		t.Fatalf("expected 9 standard + 1 custom column, got %d", len(records[0]))
	}
	if v, _ := strconv.ParseFloat(records[1][2], 64); v != 50 {
		t.Fatalf("airspeed column mismatch: %f", v)
	}
}

func TestExportConfigIsUseless(t *testing.T) {
	if !(ExportConfig{}).IsUseless() {
		t.Fatal("empty config should be useless")
	}
	if !(ExportConfig{AsCSV: true}).IsUseless() {
		t.Fatal("config without filename should be useless")
	}
	if (ExportConfig{AsCSV: true, Filename: "x"}).IsUseless() {
		t.Fatal("CSV config with filename should be useful")
	}
}
