package report

import (
	"fmt"
	"math"
	"strconv"
)

// AttributeError reports a missing or malformed attribute of a report element.
type AttributeError struct {
	Element   string
	Attribute string
	Value     string
	Missing   bool
}

func (e *AttributeError) Error() string {
	if e.Missing {
		return fmt.Sprintf("attribute '%s' of <%s> is missing", e.Attribute, e.Element)
	}
	return fmt.Sprintf("attribute '%s' of <%s> has invalid value '%s'", e.Attribute, e.Element, e.Value)
}

// CounterValue is the parsed form of a Counter.
type CounterValue struct {
	Covered int
	Missed  int
}

// Total returns covered plus missed.
func (v CounterValue) Total() int {
	return v.Covered + v.Missed
}

// LineRecord is the parsed form of a Line.
type LineRecord struct {
	Number              int
	MissedInstructions  int
	CoveredInstructions int
	MissedBranches      int
	CoveredBranches     int
}

// FindCounter returns the first counter of the given kind. A nil value means the element has no data for the kind.
func FindCounter(counters []Counter, kind string) (*CounterValue, error) {
	for _, c := range counters {
		if c.Type != kind {
			continue
		}
		covered, err := count("counter", "covered", c.Covered)
		if err != nil {
			return nil, err
		}
		missed, err := count("counter", "missed", c.Missed)
		if err != nil {
			return nil, err
		}
		return &CounterValue{Covered: covered, Missed: missed}, nil
	}
	return nil, nil
}

// StartLine returns the first line of the method, 0 if the attribute is missing or cannot be parsed.
func (m *Method) StartLine() int {
	line, err := strconv.Atoi(m.Line)
	if err != nil {
		return 0
	}
	return line
}

// Record parses the line attributes. nr, ci, mb and cb are required, mi defaults to 0.
func (l *Line) Record() (LineRecord, error) {
	var err error
	record := LineRecord{}
	if record.Number, err = count("line", "nr", l.Nr); err != nil {
		return record, err
	}
	if l.Mi != "" {
		if record.MissedInstructions, err = count("line", "mi", l.Mi); err != nil {
			return record, err
		}
	}
	if record.CoveredInstructions, err = count("line", "ci", l.Ci); err != nil {
		return record, err
	}
	if record.MissedBranches, err = count("line", "mb", l.Mb); err != nil {
		return record, err
	}
	if record.CoveredBranches, err = count("line", "cb", l.Cb); err != nil {
		return record, err
	}
	return record, nil
}

// Start returns the session start in epoch milliseconds and whether the report has session information.
func (r *Report) Start() (float64, bool, error) {
	if len(r.SessionInfo) == 0 {
		return 0, false, nil
	}
	raw := r.SessionInfo[0].Start
	if raw == "" {
		return 0, false, &AttributeError{Element: "sessioninfo", Attribute: "start", Missing: true}
	}
	start, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(start) || math.IsInf(start, 0) || start < 0 || start > math.MaxInt64 {
		return 0, false, &AttributeError{Element: "sessioninfo", Attribute: "start", Value: raw}
	}
	return start, true, nil
}

func count(element string, attribute string, raw string) (int, error) {
	if raw == "" {
		return 0, &AttributeError{Element: element, Attribute: attribute, Missing: true}
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &AttributeError{Element: element, Attribute: attribute, Value: raw}
	}
	return n, nil
}
