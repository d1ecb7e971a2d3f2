package cobertura

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXMLWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewXMLWriter(&buf)

	require.NoError(t, w.StartDocument())
	require.NoError(t, w.StartElement(ElementCoverage, Attr{AttrTimestamp, "1.5"}, Attr{AttrLineRate, "1.0"}))
	require.NoError(t, w.StartElement(ElementSources))
	require.NoError(t, w.StartElement(ElementSource))
	require.NoError(t, w.Text("src/main/<java>/"))
	require.NoError(t, w.EndElement())
	require.NoError(t, w.EndElement())
	require.NoError(t, w.EndElement())
	require.NoError(t, w.EndDocument())

	expected := `<?xml version="1.0"?><coverage timestamp="1.5" line-rate="1.0"><sources><source>src/main/&lt;java&gt;/</source></sources></coverage>`
	assert.Equal(t, expected, buf.String())
}

func TestXMLWriterUnbalancedEnd(t *testing.T) {
	var buf bytes.Buffer
	w := NewXMLWriter(&buf)

	assert.EqualError(t, w.EndElement(), "no open element to close")
}

func TestXMLWriterEndDocumentUnclosed(t *testing.T) {
	var buf bytes.Buffer
	w := NewXMLWriter(&buf)

	require.NoError(t, w.StartElement(ElementCoverage))
	assert.Error(t, w.EndDocument())
}
