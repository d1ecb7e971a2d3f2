package convert

import (
	"github.com/jenkins-x-apps/jacoco-cobertura/internal/report"
)

// AssignLines partitions the lines of a class among its methods. starts holds the start line of each method in
// method order. A method starting at S owns every line n with S <= n < E, where E is the smallest start line of
// the other methods that is greater than S, or unbounded if there is none.
//
// Methods sharing a start line see the same E and therefore receive the same lines.
func AssignLines(starts []int, lines []report.LineRecord) [][]report.LineRecord {
	assigned := make([][]report.LineRecord, len(starts))
	for i, start := range starts {
		end, bounded := upperBound(starts, start)
		for _, line := range lines {
			if line.Number >= start && (!bounded || line.Number < end) {
				assigned[i] = append(assigned[i], line)
			}
		}
	}
	return assigned
}

func upperBound(starts []int, start int) (int, bool) {
	end, bounded := 0, false
	for _, s := range starts {
		if s > start && (!bounded || s < end) {
			end, bounded = s, true
		}
	}
	return end, bounded
}
