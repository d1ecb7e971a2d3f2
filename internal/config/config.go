package config

// Configuration declares the configuration properties of this app.
type Configuration interface {
	ConvertConfig
	LogConfig

	// String returns a string representation of the configuration.
	String() string
}

// ConvertConfig defines the run parameters of a conversion.
type ConvertConfig interface {
	// Source returns the path or URL of the JaCoCo report.
	Source() string

	// Result returns the path of the Cobertura report to write.
	Result() string

	// SourcePaths returns the source roots written into the Cobertura report.
	SourcePaths() []string

	// Extension returns the file extension appended to class paths.
	Extension() string

	// Summary returns whether a coverage summary table is printed after the conversion.
	Summary() bool
}

// LogConfig defines the logging configuration.
type LogConfig interface {
	// Level returns the logging level.
	Level() string

	// LogFile returns the file log entries are written to in addition to stdout, empty if none.
	LogFile() string
}
