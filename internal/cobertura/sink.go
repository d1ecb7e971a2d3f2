package cobertura

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
)

// Element and attribute names of the Cobertura schema.
const (
	ElementCoverage   = "coverage"
	ElementSources    = "sources"
	ElementSource     = "source"
	ElementPackages   = "packages"
	ElementPackage    = "package"
	ElementClasses    = "classes"
	ElementClass      = "class"
	ElementMethods    = "methods"
	ElementMethod     = "method"
	ElementLines      = "lines"
	ElementLine       = "line"
	ElementConditions = "conditions"
	ElementCondition  = "condition"

	AttrTimestamp         = "timestamp"
	AttrLineRate          = "line-rate"
	AttrBranchRate        = "branch-rate"
	AttrComplexity        = "complexity"
	AttrName              = "name"
	AttrFilename          = "filename"
	AttrSignature         = "signature"
	AttrNumber            = "number"
	AttrHits              = "hits"
	AttrBranch            = "branch"
	AttrConditionCoverage = "condition-coverage"
	AttrType              = "type"
	AttrCoverage          = "coverage"
)

// Attr is a single attribute of an element.
type Attr struct {
	Name  string
	Value string
}

// Sink receives the structural write events of a Cobertura document.
type Sink interface {
	// StartDocument writes the XML declaration.
	StartDocument() error
	// StartElement opens an element with the given attributes.
	StartElement(name string, attrs ...Attr) error
	// Text writes character data into the current element.
	Text(text string) error
	// EndElement closes the innermost open element.
	EndElement() error
	// EndDocument flushes buffered output. It fails if elements are still open.
	EndDocument() error
}

// XMLWriter is a Sink streaming the document to an io.Writer.
type XMLWriter struct {
	encoder *xml.Encoder
	open    []xml.Name
}

// NewXMLWriter creates a streaming Sink on top of w.
func NewXMLWriter(w io.Writer) *XMLWriter {
	return &XMLWriter{encoder: xml.NewEncoder(w)}
}

// StartDocument writes the XML declaration.
func (x *XMLWriter) StartDocument() error {
	return x.encode(xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0"`)})
}

// StartElement opens an element with the given attributes.
func (x *XMLWriter) StartElement(name string, attrs ...Attr) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	for _, a := range attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := x.encode(start); err != nil {
		return err
	}
	x.open = append(x.open, start.Name)
	return nil
}

// Text writes character data into the current element.
func (x *XMLWriter) Text(text string) error {
	return x.encode(xml.CharData(text))
}

// EndElement closes the innermost open element.
func (x *XMLWriter) EndElement() error {
	if len(x.open) == 0 {
		return errors.New("no open element to close")
	}
	name := x.open[len(x.open)-1]
	x.open = x.open[:len(x.open)-1]
	return x.encode(xml.EndElement{Name: name})
}

// EndDocument flushes buffered output. It fails if elements are still open.
func (x *XMLWriter) EndDocument() error {
	return errors.Wrap(x.encoder.Close(), "unable to finish cobertura document")
}

func (x *XMLWriter) encode(token xml.Token) error {
	return errors.Wrap(x.encoder.EncodeToken(token), "unable to write cobertura document")
}
