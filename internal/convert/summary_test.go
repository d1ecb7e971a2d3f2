package convert

import (
	"io/ioutil"
	"testing"

	"github.com/jenkins-x-apps/jacoco-cobertura/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	data, err := ioutil.ReadFile("testdata/grouped.xml")
	require.NoError(t, err)
	doc, err := report.Parse(data)
	require.NoError(t, err)

	summary, err := Summarize(&doc)
	require.NoError(t, err)

	assert.Equal(t, []PackageSummary{
		{Name: "org.acme.core", LineRate: "1.0", BranchRate: "0.0", Complexity: "0.0"},
		{Name: "org.acme.web", LineRate: "0.25", BranchRate: "0.0", Complexity: "0.0"},
	}, summary.Packages)
	assert.NoError(t, summary.TotalErr)
	assert.Equal(t, 75, summary.Total)
}

func TestSummarizeWithoutInstructionCounter(t *testing.T) {
	doc := parseReport(t, `<report><package name="a/b"/></report>`)

	summary, err := Summarize(&doc)
	require.NoError(t, err)

	assert.Len(t, summary.Packages, 1)
	assert.IsType(t, &AggregationError{}, summary.TotalErr)
}
