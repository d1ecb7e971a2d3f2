package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jenkins-x-apps/jacoco-cobertura/internal/report"
	"github.com/pkg/errors"
)

const (
	zeroValue         = "0.0"
	maxFractionDigits = 16
)

// Condition is the branch coverage of a single line.
type Condition struct {
	// Percent is the covered share of branches, e.g. "50.0%".
	Percent string
	// Description is the percentage followed by the covered/total ratio, e.g. "50.0% (2.0/4.0)".
	Description string
}

// FormatNumber renders x the way all derived numbers of a Cobertura report are rendered.
// Integral values get exactly one fractional digit, everything else at most 16 without trailing zeros.
func FormatNumber(x float64) string {
	if x == math.Trunc(x) {
		return strconv.FormatFloat(x, 'f', 1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s)-dot-1 > maxFractionDigits {
		s = strings.TrimRight(strconv.FormatFloat(x, 'f', maxFractionDigits, 64), "0")
		s = strings.TrimSuffix(s, ".")
		if !strings.Contains(s, ".") {
			s += ".0"
		}
	}
	return s
}

// Rate derives the attribute value for a counter of the given kind.
// LINE and BRANCH yield the covered fraction, COMPLEXITY the total. A nil counter yields "0.0".
func Rate(kind string, value *report.CounterValue) string {
	if value == nil {
		return zeroValue
	}
	if kind == report.CounterComplexity {
		return FormatNumber(float64(value.Total()))
	}
	if value.Total() == 0 {
		return zeroValue
	}
	return FormatNumber(float64(value.Covered) / float64(value.Total()))
}

// ConditionCoverage describes the branch coverage of a line. The second return value is false if the line has no branches.
func ConditionCoverage(coveredBranches int, missedBranches int) (Condition, bool) {
	total := coveredBranches + missedBranches
	if total <= 0 {
		return Condition{}, false
	}
	percent := FormatNumber(100*(float64(coveredBranches)/float64(total))) + "%"
	return Condition{
		Percent:     percent,
		Description: fmt.Sprintf("%s (%s/%s)", percent, FormatNumber(float64(coveredBranches)), FormatNumber(float64(total))),
	}, true
}

// TopLevelPercentage returns the instruction coverage of the whole report rounded to a whole percent.
func TopLevelPercentage(r *report.Report) (int, error) {
	value, err := report.FindCounter(r.Counters, report.CounterInstruction)
	if err != nil {
		return 0, &AggregationError{Err: err}
	}
	if value == nil {
		return 0, &AggregationError{Err: errors.Errorf("report has no %s counter", report.CounterInstruction)}
	}
	if value.Total() == 0 {
		return 0, nil
	}
	return int(math.Floor(float64(value.Covered)/float64(value.Total())*100 + 0.5)), nil
}
