package util

import (
	"strings"
)

// MultiError collects several errors into one.
type MultiError struct {
	Errors []error
}

// Collect appends err if it is not nil.
func (m *MultiError) Collect(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// Empty returns true if no error has been collected.
func (m *MultiError) Empty() bool {
	return len(m.Errors) == 0
}

// Error joins all collected error messages, one per line.
func (m *MultiError) Error() string {
	messages := make([]string, 0, len(m.Errors))
	for _, err := range m.Errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "\n")
}

// ToError returns nil for an empty MultiError, the MultiError itself otherwise.
func (m *MultiError) ToError() error {
	if m.Empty() {
		return nil
	}
	return m
}
