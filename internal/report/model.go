package report

import (
	"bytes"
	"encoding/xml"

	"golang.org/x/net/html/charset"
)

// Counter kinds used by the conversion.
const (
	CounterInstruction = "INSTRUCTION"
	CounterLine        = "LINE"
	CounterBranch      = "BRANCH"
	CounterComplexity  = "COMPLEXITY"
)

// Report is the top level struct for the jacoco report.
// Numeric attributes are kept as text and parsed on access, see values.go.
type Report struct {
	XMLName     xml.Name      `xml:"report"`
	Name        string        `xml:"name,attr"`
	SessionInfo []SessionInfo `xml:"sessioninfo"`
	Packages    []Package     `xml:"package"`
	Groups      []Group       `xml:"group"`
	Counters    []Counter     `xml:"counter"`
}

// Counter keeps track over misses and coverage of various the source constructs.
type Counter struct {
	Type    string `xml:"type,attr"`
	Missed  string `xml:"missed,attr"`
	Covered string `xml:"covered,attr"`
}

// SessionInfo identifies when the report was taken.
type SessionInfo struct {
	ID    string `xml:"id,attr"`
	Start string `xml:"start,attr"`
	Dump  string `xml:"dump,attr"`
}

// Line depict a line in a source file.
type Line struct {
	Nr string `xml:"nr,attr"`
	Mi string `xml:"mi,attr"`
	Ci string `xml:"ci,attr"`
	Mb string `xml:"mb,attr"`
	Cb string `xml:"cb,attr"`
}

// SourceFile depict a Java source file.
type SourceFile struct {
	Name     string    `xml:"name,attr"`
	Lines    []Line    `xml:"line"`
	Counters []Counter `xml:"counter"`
}

// Method depict a Java method.
type Method struct {
	Name     string    `xml:"name,attr"`
	Desc     string    `xml:"desc,attr"`
	Line     string    `xml:"line,attr"`
	Counters []Counter `xml:"counter"`
}

// Class depict a Java class.
type Class struct {
	Name           string    `xml:"name,attr"`
	Sourcefilename string    `xml:"sourcefilename,attr"`
	Methods        []Method  `xml:"method"`
	Counters       []Counter `xml:"counter"`
}

// Package depict a Java package.
type Package struct {
	Name        string       `xml:"name,attr"`
	Classes     []Class      `xml:"class"`
	SourceFiles []SourceFile `xml:"sourcefile"`
	Counters    []Counter    `xml:"counter"`
}

// Group allows the grouping of a set of source constucts.
type Group struct {
	Name     string    `xml:"name,attr"`
	Packages []Package `xml:"package"`
	Groups   []Group   `xml:"group"`
	Counters []Counter `xml:"counter"`
}

// Parse unmarshals a raw JaCoCo XML document. Documents declaring a non UTF-8 encoding are decoded to UTF-8.
func Parse(data []byte) (Report, error) {
	report := Report{}
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel
	err := decoder.Decode(&report)
	if err != nil {
		return report, err
	}
	return report, nil
}

// AllPackages returns the packages of the report in document order. If the report groups its packages,
// the groups are flattened depth first and packages placed directly below the root are ignored.
// A group holds either packages or subgroups, when it holds both its packages come first.
func (r *Report) AllPackages() []Package {
	if len(r.Groups) == 0 {
		return r.Packages
	}
	var packages []Package
	for _, g := range r.Groups {
		packages = g.appendPackages(packages)
	}
	return packages
}

func (g *Group) appendPackages(packages []Package) []Package {
	packages = append(packages, g.Packages...)
	for _, sub := range g.Groups {
		packages = sub.appendPackages(packages)
	}
	return packages
}

// Lines returns the lines of all source files of the package with the given name.
func (p *Package) Lines(sourceFileName string) []Line {
	var lines []Line
	for _, sf := range p.SourceFiles {
		if sf.Name == sourceFileName {
			lines = append(lines, sf.Lines...)
		}
	}
	return lines
}
