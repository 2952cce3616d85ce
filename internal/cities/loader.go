package cities

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Reasons attached to skipped records.
const (
	ReasonInvalidJSON     = "invalid JSON"
	ReasonMalformedRecord = "malformed city record"
)

// Warning describes a line that was skipped while loading.
type Warning struct {
	Line   int    // 1-based line number
	Raw    string // Trimmed line content
	Reason string
	Detail string // Which check failed, empty for invalid JSON
}

func (w Warning) String() string {
	if w.Detail != "" {
		return fmt.Sprintf("line %d: %s (%s): %s", w.Line, w.Reason, w.Detail, w.Raw)
	}
	return fmt.Sprintf("line %d: %s: %s", w.Line, w.Reason, w.Raw)
}

// record mirrors one JSONL line. Pointers distinguish missing fields from
// zero values.
type record struct {
	Name       *string
	Population *float64
	Lat        *float64
	Lon        *float64
}

// Loader parses line-delimited JSON city records.
type Loader struct {
	logger *log.Logger
}

// NewLoader creates a loader that reports skipped lines to logger.
// A nil logger discards them.
func NewLoader(logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{logger: logger}
}

// LoadFile reads and parses a JSONL file.
// Only failing to read the file is an error; bad lines become warnings.
func (l *Loader) LoadFile(path string) ([]*City, []Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cities: cannot read %s: %w", path, err)
	}
	cities, warnings := l.Parse(data)
	return cities, warnings, nil
}

// Parse converts JSONL data into cities, skipping blank lines.
// Lines that are not JSON or fail validation are skipped and reported;
// parsing never stops early. The result keeps input order.
func (l *Loader) Parse(data []byte) ([]*City, []Warning) {
	var (
		cities   []*City
		warnings []Warning
	)

	for i, rawLine := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if !json.Valid([]byte(line)) {
			warnings = append(warnings, l.skip(i+1, line, ReasonInvalidJSON, ""))
			continue
		}

		rec, err := decodeRecord([]byte(line))
		if err != nil {
			warnings = append(warnings, l.skip(i+1, line, ReasonMalformedRecord, "wrong field type"))
			continue
		}

		if problem := rec.validate(); problem != "" {
			warnings = append(warnings, l.skip(i+1, line, ReasonMalformedRecord, problem))
			continue
		}

		cities = append(cities, NewCity(*rec.Name, *rec.Population, *rec.Lat, *rec.Lon))
	}

	return cities, warnings
}

func (l *Loader) skip(line int, raw, reason, detail string) Warning {
	w := Warning{Line: line, Raw: raw, Reason: reason, Detail: detail}
	l.logger.Warn("skipping city record", "line", line, "reason", reason, "detail", detail, "raw", raw)
	return w
}

// decodeRecord reads the exact lowercase field names. Keys that differ only
// in case are ignored, so such records fail validation as missing fields.
func decodeRecord(line []byte) (record, error) {
	var (
		rec    record
		fields map[string]json.RawMessage
	)
	if err := json.Unmarshal(line, &fields); err != nil {
		return rec, err
	}

	targets := map[string]any{
		"name":       &rec.Name,
		"population": &rec.Population,
		"lat":        &rec.Lat,
		"lon":        &rec.Lon,
	}
	for key, target := range targets {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return rec, err
		}
	}
	return rec, nil
}

// validate returns a description of the first failed check, or "".
func (r record) validate() string {
	switch {
	case r.Name == nil || strings.TrimSpace(*r.Name) == "":
		return "missing name"
	case r.Population == nil || !finite(*r.Population):
		return "missing population"
	case *r.Population < 0:
		return "negative population"
	case r.Lat == nil || !finite(*r.Lat):
		return "missing lat"
	case *r.Lat < -90 || *r.Lat > 90:
		return "lat out of range"
	case r.Lon == nil || !finite(*r.Lon):
		return "missing lon"
	case *r.Lon < -180 || *r.Lon > 180:
		return "lon out of range"
	}
	return ""
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
