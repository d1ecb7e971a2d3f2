package convert

import (
	"github.com/jenkins-x-apps/jacoco-cobertura/internal/cobertura"
	"github.com/jenkins-x-apps/jacoco-cobertura/internal/logging"
	"github.com/jenkins-x-apps/jacoco-cobertura/internal/report"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultExtension is appended to the class path to build the filename of a class.
const DefaultExtension = ".java"

var (
	logger = logging.AppLogger().WithFields(log.Fields{"component": "converter"})
)

// Options control the conversion of a single report.
type Options struct {
	// SourcePaths are written verbatim as the source roots of the Cobertura report.
	SourcePaths []string
	// Extension is appended to class paths to derive filenames. Empty means DefaultExtension.
	Extension string
}

// Assembler writes a complete Cobertura document for a JaCoCo report.
type Assembler struct {
	sink    cobertura.Sink
	options Options
}

// NewAssembler creates an Assembler writing to sink.
func NewAssembler(sink cobertura.Sink, options Options) *Assembler {
	if options.Extension == "" {
		options.Extension = DefaultExtension
	}
	return &Assembler{sink: sink, options: options}
}

// Assemble converts r and writes it to the sink in document order.
// Missing or malformed attributes are reported as *StructuralError, sink failures are returned unchanged.
func (a *Assembler) Assemble(r *report.Report) error {
	err := a.assemble(r)
	var attrErr *report.AttributeError
	if errors.As(err, &attrErr) {
		return &StructuralError{Err: err}
	}
	return err
}

func (a *Assembler) assemble(r *report.Report) error {
	timestamp, err := timestamp(r)
	if err != nil {
		return err
	}
	rates, err := rateAttrs(r.Counters)
	if err != nil {
		return errors.Wrap(err, "report")
	}

	if err := a.sink.StartDocument(); err != nil {
		return err
	}
	attrs := append([]cobertura.Attr{{Name: cobertura.AttrTimestamp, Value: timestamp}}, rates...)
	if err := a.sink.StartElement(cobertura.ElementCoverage, attrs...); err != nil {
		return err
	}
	if err := a.writeSources(); err != nil {
		return err
	}

	if err := a.sink.StartElement(cobertura.ElementPackages); err != nil {
		return err
	}
	m := &treeMapper{sink: a.sink, extension: a.options.Extension}
	packages := r.AllPackages()
	for i := range packages {
		if err := m.mapPackage(&packages[i]); err != nil {
			return err
		}
	}
	if err := a.sink.EndElement(); err != nil {
		return err
	}
	if err := a.sink.EndElement(); err != nil {
		return err
	}
	return a.sink.EndDocument()
}

// writeSources writes the source roots nested in a single source element, the layout GitLab reads.
func (a *Assembler) writeSources() error {
	if err := a.sink.StartElement(cobertura.ElementSources); err != nil {
		return err
	}
	if err := a.sink.StartElement(cobertura.ElementSource); err != nil {
		return err
	}
	for _, path := range a.options.SourcePaths {
		if err := a.sink.StartElement(cobertura.ElementSource); err != nil {
			return err
		}
		if err := a.sink.Text(path); err != nil {
			return err
		}
		if err := a.sink.EndElement(); err != nil {
			return err
		}
	}
	if err := a.sink.EndElement(); err != nil {
		return err
	}
	return a.sink.EndElement()
}

func timestamp(r *report.Report) (string, error) {
	start, ok, err := r.Start()
	if err != nil {
		return "", err
	}
	if !ok {
		logger.Warn("report has no session info, using 0 as timestamp")
		return zeroValue, nil
	}
	return FormatNumber(start / 1000), nil
}
