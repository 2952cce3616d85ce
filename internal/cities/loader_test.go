package cities

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

const mixedInput = `{"name": "New York", "population": 19500.0, "lat": 40.71, "lon": -74.01}
this is not json
{"name": "Los Angeles", "population": 12800.0, "lat": 34.05, "lon": -118.24}

{"name": "Nowhere", "population": 10, "lat": 95.0, "lon": 0}
{"name": "Overflow", "population": 10, "lat": 0, "lon": -181}
{"name": "", "population": 10, "lat": 0, "lon": 0}
{"name": 42, "population": 10, "lat": 0, "lon": 0}
{"name": "Stringly", "population": "10", "lat": 0, "lon": 0}
{"name": "No Lon", "population": 10, "lat": 0}
{"name": "Chicago", "population": 9400.0, "lat": 41.88, "lon": -87.63}
{"name": "Broken", "population": 10,
`

func TestParseKeepsValidSubsetInOrder(t *testing.T) {
	loader := NewLoader(nil)

	cities, warnings := loader.Parse([]byte(mixedInput))

	wantNames := []string{"New York", "Los Angeles", "Chicago"}
	if len(cities) != len(wantNames) {
		t.Fatalf("Parse() returned %d cities, want %d", len(cities), len(wantNames))
	}
	for i, name := range wantNames {
		if cities[i].Name != name {
			t.Errorf("cities[%d].Name = %q, want %q", i, cities[i].Name, name)
		}
		if cities[i].Damaged() || cities[i].Restored() {
			t.Errorf("%s should start undamaged and unrestored", name)
		}
	}

	if cities[0].Population != 19500 || cities[0].Lat != 40.71 || cities[0].Lon != -74.01 {
		t.Errorf("New York fields not copied: %+v", cities[0])
	}

	wantLines := []int{2, 5, 6, 7, 8, 9, 10, 12}
	if len(warnings) != len(wantLines) {
		t.Fatalf("Parse() returned %d warnings, want %d: %v", len(warnings), len(wantLines), warnings)
	}
	for i, line := range wantLines {
		if warnings[i].Line != line {
			t.Errorf("warnings[%d].Line = %d, want %d", i, warnings[i].Line, line)
		}
	}

	if warnings[0].Reason != ReasonInvalidJSON {
		t.Errorf("line 2 reason = %q, want %q", warnings[0].Reason, ReasonInvalidJSON)
	}
	if warnings[0].Raw != "this is not json" {
		t.Errorf("line 2 raw = %q", warnings[0].Raw)
	}
	if warnings[1].Reason != ReasonMalformedRecord {
		t.Errorf("line 5 reason = %q, want %q", warnings[1].Reason, ReasonMalformedRecord)
	}
	if warnings[len(warnings)-1].Reason != ReasonInvalidJSON {
		t.Errorf("truncated line reason = %q, want %q", warnings[len(warnings)-1].Reason, ReasonInvalidJSON)
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		valid bool
	}{
		{"valid", `{"name":"A","population":1,"lat":0,"lon":0}`, true},
		{"boundary coordinates", `{"name":"Pole","population":0,"lat":90,"lon":-180}`, true},
		{"extra fields ignored", `{"name":"A","population":1,"lat":0,"lon":0,"state":"NY"}`, true},
		{"missing name", `{"population":1,"lat":0,"lon":0}`, false},
		{"blank name", `{"name":"   ","population":1,"lat":0,"lon":0}`, false},
		{"null population", `{"name":"A","population":null,"lat":0,"lon":0}`, false},
		{"negative population", `{"name":"A","population":-1,"lat":0,"lon":0}`, false},
		{"lat below range", `{"name":"A","population":1,"lat":-90.5,"lon":0}`, false},
		{"lon above range", `{"name":"A","population":1,"lat":0,"lon":180.01}`, false},
		{"boolean lat", `{"name":"A","population":1,"lat":true,"lon":0}`, false},
		{"json array", `[1, 2, 3]`, false},
		{"json null", `null`, false},
		{"json number", `12`, false},
		{"upper-case keys", `{"NAME":"Upper","Population":5,"LAT":1,"Lon":2}`, false},
		{"one key in wrong case", `{"name":"A","population":1,"lat":0,"LON":0}`, false},
		{"numeric name", `{"name":7,"population":1,"lat":0,"lon":0}`, false},
	}

	loader := NewLoader(nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cities, warnings := loader.Parse([]byte(tc.line))
			if tc.valid {
				if len(cities) != 1 || len(warnings) != 0 {
					t.Errorf("expected valid record, got %d cities, warnings %v", len(cities), warnings)
				}
				return
			}
			if len(cities) != 0 || len(warnings) != 1 {
				t.Fatalf("expected skipped record, got %d cities, %d warnings", len(cities), len(warnings))
			}
			if warnings[0].Line != 1 || warnings[0].Raw != tc.line {
				t.Errorf("warning = %+v", warnings[0])
			}
		})
	}
}

func TestParseEmptyAndBlankInput(t *testing.T) {
	loader := NewLoader(nil)

	for _, input := range []string{"", "\n\n", "   \n\t\n"} {
		cities, warnings := loader.Parse([]byte(input))
		if len(cities) != 0 || len(warnings) != 0 {
			t.Errorf("Parse(%q) = %d cities, %d warnings; want none", input, len(cities), len(warnings))
		}
	}
}

func TestParseCRLF(t *testing.T) {
	input := "{\"name\":\"A\",\"population\":1,\"lat\":0,\"lon\":0}\r\n{\"name\":\"B\",\"population\":2,\"lat\":1,\"lon\":1}\r\n"

	cities, warnings := NewLoader(nil).Parse([]byte(input))
	if len(cities) != 2 || len(warnings) != 0 {
		t.Errorf("got %d cities and %v warnings", len(cities), warnings)
	}
}

func TestParseLogsWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	NewLoader(logger).Parse([]byte("{\"name\":\"A\",\"population\":1,\"lat\":0,\"lon\":0}\nnot json\n"))

	out := buf.String()
	if !strings.Contains(out, "skipping city record") {
		t.Errorf("expected warning log, got %q", out)
	}
	if !strings.Contains(out, "line=2") {
		t.Errorf("expected line number in log, got %q", out)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cities.jsonl")
	if err := os.WriteFile(path, []byte(mixedInput), 0o600); err != nil {
		t.Fatal(err)
	}

	cities, warnings, err := NewLoader(nil).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if len(cities) != 3 || len(warnings) != 8 {
		t.Errorf("LoadFile() = %d cities, %d warnings", len(cities), len(warnings))
	}

	if _, _, err := NewLoader(nil).LoadFile(filepath.Join(dir, "missing.jsonl")); err == nil {
		t.Error("LoadFile() on a missing file should fail")
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Line: 3, Raw: "{}", Reason: ReasonMalformedRecord, Detail: "missing name"}
	if got := w.String(); got != "line 3: malformed city record (missing name): {}" {
		t.Errorf("String() = %q", got)
	}
}
