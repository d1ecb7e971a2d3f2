package convert

import (
	"strconv"
	"strings"

	"github.com/jenkins-x-apps/jacoco-cobertura/internal/cobertura"
	"github.com/jenkins-x-apps/jacoco-cobertura/internal/report"
	"github.com/pkg/errors"
)

var rateAttributes = []struct {
	kind string
	attr string
}{
	{report.CounterLine, cobertura.AttrLineRate},
	{report.CounterBranch, cobertura.AttrBranchRate},
	{report.CounterComplexity, cobertura.AttrComplexity},
}

// treeMapper writes the Cobertura counterpart of JaCoCo packages, classes, methods and lines to a sink.
type treeMapper struct {
	sink      cobertura.Sink
	extension string
}

func (m *treeMapper) mapPackage(pkg *report.Package) error {
	if err := required("package", "name", pkg.Name); err != nil {
		return err
	}
	rates, err := rateAttrs(pkg.Counters)
	if err != nil {
		return errors.Wrapf(err, "package '%s'", pkg.Name)
	}

	attrs := append([]cobertura.Attr{{Name: cobertura.AttrName, Value: dotted(pkg.Name)}}, rates...)
	if err := m.sink.StartElement(cobertura.ElementPackage, attrs...); err != nil {
		return err
	}
	if err := m.sink.StartElement(cobertura.ElementClasses); err != nil {
		return err
	}
	for i := range pkg.Classes {
		if err := m.mapClass(pkg, &pkg.Classes[i]); err != nil {
			return errors.Wrapf(err, "package '%s'", pkg.Name)
		}
	}
	if err := m.sink.EndElement(); err != nil {
		return err
	}
	return m.sink.EndElement()
}

func (m *treeMapper) mapClass(pkg *report.Package, cl *report.Class) error {
	if err := required("class", "name", cl.Name); err != nil {
		return err
	}
	rates, err := rateAttrs(cl.Counters)
	if err != nil {
		return errors.Wrapf(err, "class '%s'", cl.Name)
	}
	lines, err := lineRecords(pkg.Lines(cl.Sourcefilename))
	if err != nil {
		return errors.Wrapf(err, "source file '%s' of class '%s'", cl.Sourcefilename, cl.Name)
	}

	starts := make([]int, len(cl.Methods))
	for i := range cl.Methods {
		starts[i] = cl.Methods[i].StartLine()
	}
	methodLines := AssignLines(starts, lines)

	attrs := append([]cobertura.Attr{
		{Name: cobertura.AttrName, Value: dotted(cl.Name)},
		{Name: cobertura.AttrFilename, Value: cl.Name + m.extension},
	}, rates...)
	if err := m.sink.StartElement(cobertura.ElementClass, attrs...); err != nil {
		return err
	}
	if err := m.sink.StartElement(cobertura.ElementMethods); err != nil {
		return err
	}
	for i := range cl.Methods {
		if err := m.mapMethod(&cl.Methods[i], methodLines[i]); err != nil {
			return errors.Wrapf(err, "class '%s'", cl.Name)
		}
	}
	if err := m.sink.EndElement(); err != nil {
		return err
	}
	if err := m.writeLines(lines); err != nil {
		return err
	}
	return m.sink.EndElement()
}

func (m *treeMapper) mapMethod(method *report.Method, lines []report.LineRecord) error {
	if err := required("method", "name", method.Name); err != nil {
		return err
	}
	if err := required("method", "desc", method.Desc); err != nil {
		return errors.Wrapf(err, "method '%s'", method.Name)
	}
	rates, err := rateAttrs(method.Counters)
	if err != nil {
		return errors.Wrapf(err, "method '%s%s'", method.Name, method.Desc)
	}

	attrs := append([]cobertura.Attr{
		{Name: cobertura.AttrName, Value: method.Name},
		{Name: cobertura.AttrSignature, Value: method.Desc},
	}, rates...)
	if err := m.sink.StartElement(cobertura.ElementMethod, attrs...); err != nil {
		return err
	}
	if err := m.writeLines(lines); err != nil {
		return err
	}
	return m.sink.EndElement()
}

func (m *treeMapper) writeLines(lines []report.LineRecord) error {
	if err := m.sink.StartElement(cobertura.ElementLines); err != nil {
		return err
	}
	for _, line := range lines {
		if err := m.writeLine(line); err != nil {
			return err
		}
	}
	return m.sink.EndElement()
}

func (m *treeMapper) writeLine(line report.LineRecord) error {
	hits := "0"
	if line.CoveredInstructions > 0 {
		hits = "1"
	}
	attrs := []cobertura.Attr{
		{Name: cobertura.AttrNumber, Value: strconv.Itoa(line.Number)},
		{Name: cobertura.AttrHits, Value: hits},
	}

	condition, ok := ConditionCoverage(line.CoveredBranches, line.MissedBranches)
	if !ok {
		attrs = append(attrs, cobertura.Attr{Name: cobertura.AttrBranch, Value: "false"})
		if err := m.sink.StartElement(cobertura.ElementLine, attrs...); err != nil {
			return err
		}
		return m.sink.EndElement()
	}

	attrs = append(attrs,
		cobertura.Attr{Name: cobertura.AttrBranch, Value: "true"},
		cobertura.Attr{Name: cobertura.AttrConditionCoverage, Value: condition.Description})
	if err := m.sink.StartElement(cobertura.ElementLine, attrs...); err != nil {
		return err
	}
	if err := m.sink.StartElement(cobertura.ElementConditions); err != nil {
		return err
	}
	err := m.sink.StartElement(cobertura.ElementCondition,
		cobertura.Attr{Name: cobertura.AttrNumber, Value: "0"},
		cobertura.Attr{Name: cobertura.AttrType, Value: "jump"},
		cobertura.Attr{Name: cobertura.AttrCoverage, Value: condition.Percent})
	if err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		if err := m.sink.EndElement(); err != nil {
			return err
		}
	}
	return nil
}

// rateAttrs derives the line-rate, branch-rate and complexity attributes from the counters of an element.
func rateAttrs(counters []report.Counter) ([]cobertura.Attr, error) {
	attrs := make([]cobertura.Attr, 0, len(rateAttributes))
	for _, ra := range rateAttributes {
		value, err := report.FindCounter(counters, ra.kind)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, cobertura.Attr{Name: ra.attr, Value: Rate(ra.kind, value)})
	}
	return attrs, nil
}

func lineRecords(lines []report.Line) ([]report.LineRecord, error) {
	records := make([]report.LineRecord, 0, len(lines))
	for i := range lines {
		record, err := lines[i].Record()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func required(element string, attribute string, value string) error {
	if value == "" {
		return &report.AttributeError{Element: element, Attribute: attribute, Missing: true}
	}
	return nil
}

func dotted(path string) string {
	return strings.Replace(path, "/", ".", -1)
}
