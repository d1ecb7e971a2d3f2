package convert

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/jenkins-x-apps/jacoco-cobertura/internal/cobertura"
	"github.com/jenkins-x-apps/jacoco-cobertura/internal/report"
	"github.com/stretchr/testify/require"
)

// Read model of the generated documents, used to assert on the output.

type coverageDoc struct {
	XMLName    xml.Name     `xml:"coverage"`
	Timestamp  string       `xml:"timestamp,attr"`
	LineRate   string       `xml:"line-rate,attr"`
	BranchRate string       `xml:"branch-rate,attr"`
	Complexity string       `xml:"complexity,attr"`
	Sources    []string     `xml:"sources>source>source"`
	Packages   []packageDoc `xml:"packages>package"`
}

type packageDoc struct {
	Name       string     `xml:"name,attr"`
	LineRate   string     `xml:"line-rate,attr"`
	BranchRate string     `xml:"branch-rate,attr"`
	Complexity string     `xml:"complexity,attr"`
	Classes    []classDoc `xml:"classes>class"`
}

type classDoc struct {
	Name       string      `xml:"name,attr"`
	Filename   string      `xml:"filename,attr"`
	LineRate   string      `xml:"line-rate,attr"`
	BranchRate string      `xml:"branch-rate,attr"`
	Complexity string      `xml:"complexity,attr"`
	Methods    []methodDoc `xml:"methods>method"`
	Lines      []lineDoc   `xml:"lines>line"`
}

type methodDoc struct {
	Name       string    `xml:"name,attr"`
	Signature  string    `xml:"signature,attr"`
	LineRate   string    `xml:"line-rate,attr"`
	BranchRate string    `xml:"branch-rate,attr"`
	Complexity string    `xml:"complexity,attr"`
	Lines      []lineDoc `xml:"lines>line"`
}

type lineDoc struct {
	Number            string         `xml:"number,attr"`
	Hits              string         `xml:"hits,attr"`
	Branch            string         `xml:"branch,attr"`
	ConditionCoverage *string        `xml:"condition-coverage,attr"`
	Conditions        *conditionsDoc `xml:"conditions"`
}

type conditionsDoc struct {
	Conditions []conditionDoc `xml:"condition"`
}

type conditionDoc struct {
	Number   string `xml:"number,attr"`
	Type     string `xml:"type,attr"`
	Coverage string `xml:"coverage,attr"`
}

func lineNumbers(lines []lineDoc) []string {
	numbers := make([]string, 0, len(lines))
	for _, l := range lines {
		numbers = append(numbers, l.Number)
	}
	return numbers
}

func parseReport(t *testing.T, raw string) report.Report {
	doc, err := report.Parse([]byte(raw))
	require.NoError(t, err)
	return doc
}

// assemble converts doc and returns the raw output together with its parsed form.
func assemble(t *testing.T, doc report.Report, options Options) (string, coverageDoc) {
	var buf bytes.Buffer
	err := NewAssembler(cobertura.NewXMLWriter(&buf), options).Assemble(&doc)
	require.NoError(t, err)

	out := coverageDoc{}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &out))
	return buf.String(), out
}
