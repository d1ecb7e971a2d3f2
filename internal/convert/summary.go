package convert

import (
	"github.com/jenkins-x-apps/jacoco-cobertura/internal/report"
	"github.com/pkg/errors"
)

// PackageSummary holds the converted rates of a single package.
type PackageSummary struct {
	Name       string
	LineRate   string
	BranchRate string
	Complexity string
}

// Summary is the overview of a converted report.
type Summary struct {
	Packages []PackageSummary
	// Total is the instruction coverage in percent, only meaningful if TotalErr is nil.
	Total    int
	TotalErr error
}

// Summarize collects the package rates in output order together with the total coverage.
func Summarize(r *report.Report) (Summary, error) {
	summary := Summary{}
	for _, pkg := range r.AllPackages() {
		s := PackageSummary{Name: dotted(pkg.Name)}
		for _, ra := range rateAttributes {
			value, err := report.FindCounter(pkg.Counters, ra.kind)
			if err != nil {
				return summary, &StructuralError{Err: errors.Wrapf(err, "package '%s'", pkg.Name)}
			}
			switch ra.kind {
			case report.CounterLine:
				s.LineRate = Rate(ra.kind, value)
			case report.CounterBranch:
				s.BranchRate = Rate(ra.kind, value)
			case report.CounterComplexity:
				s.Complexity = Rate(ra.kind, value)
			}
		}
		summary.Packages = append(summary.Packages, s)
	}
	summary.Total, summary.TotalErr = TopLevelPercentage(r)
	return summary, nil
}
