package convert

import (
	"fmt"
)

const structureDiagnostic = "problem with file structure, check XML attributes in the JaCoCo report"

// ParseError is returned when the source document is not well-formed XML.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("incorrect file format of <%s>: %s", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }

// IOError is returned when the source cannot be read or the destination cannot be written.
type IOError struct {
	Source      string
	Destination string
	Err         error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("unable to convert <%s> to <%s>: %s", e.Source, e.Destination, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error { return e.Err }

// StructuralError is returned when an element of the source misses a required attribute or carries an invalid value.
type StructuralError struct {
	Err error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: %s", structureDiagnostic, e.Err)
}

// Unwrap returns the underlying error.
func (e *StructuralError) Unwrap() error { return e.Err }

// AggregationError is returned when the total coverage percentage cannot be computed.
type AggregationError struct {
	Err error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("unable to compute total coverage: %s", e.Err)
}

// Unwrap returns the underlying error.
func (e *AggregationError) Unwrap() error { return e.Err }
