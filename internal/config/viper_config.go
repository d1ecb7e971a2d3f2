package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jenkins-x-apps/jacoco-cobertura/internal/logging"
	"github.com/jenkins-x-apps/jacoco-cobertura/internal/util"
	"github.com/magiconair/properties"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys of the settings, also used as keys in properties and YAML config files.
const (
	SourceKey      = "source"
	ResultKey      = "result"
	SourcePathsKey = "pathsToProject"
	ExtensionKey   = "extension"
	SummaryKey     = "summary"
	LevelKey       = "logLevel"
	LogFileKey     = "logFile"
)

var (
	settings = map[string]Setting{}
)

func init() {
	// Conversion
	settings[SourceKey] = Setting{"JACOCO_SOURCE", "source", "target/site/jacoco/jacoco.xml", "path or http(s) URL of the JaCoCo report", false, []func(interface{}, string) error{util.IsNotEmpty}}
	settings[ResultKey] = Setting{"JACOCO_RESULT", "result", "target/site/cobertura/cobertura.xml", "path of the Cobertura report to write", false, []func(interface{}, string) error{util.IsNotEmpty}}
	settings[SourcePathsKey] = Setting{"JACOCO_PATHS_TO_PROJECT", "path", "src/main/java/", "source root written into the Cobertura report, repeatable", true, []func(interface{}, string) error{util.IsNotEmpty}}
	settings[ExtensionKey] = Setting{"JACOCO_EXTENSION", "extension", ".java", "extension appended to class paths to build file names", false, []func(interface{}, string) error{util.IsExtension}}
	settings[SummaryKey] = Setting{"JACOCO_SUMMARY", "summary", "true", "print a coverage summary table", false, []func(interface{}, string) error{util.IsBool}}

	// Logging
	settings[LevelKey] = Setting{"LOG_LEVEL", "log-level", "info", "log level", false, []func(interface{}, string) error{util.IsLogLevel}}
	settings[LogFileKey] = Setting{"LOG_FILE", "log-file", "", "additionally write JSON log entries to this file", false, nil}
}

// Setting is an element in the configuration. It contains the environment variable and flag from which the
// setting is retrieved, its default value as well as a list of validations which the value of this setting
// needs to pass.
type Setting struct {
	key          string
	flag         string
	defaultValue string
	usage        string
	list         bool
	validations  []func(interface{}, string) error
}

// ViperConfig is a Configuration implementation merging flags, the process environment and an optional
// config file, in this order of precedence.
type ViperConfig struct {
	v *viper.Viper
}

// AddFlags registers a flag for every setting on flags.
func AddFlags(flags *pflag.FlagSet) {
	for _, key := range sortedKeys() {
		setting := settings[key]
		switch {
		case setting.list:
			flags.StringSlice(setting.flag, splitList(setting.defaultValue), setting.usage)
		case setting.defaultValue == "true" || setting.defaultValue == "false":
			flags.Bool(setting.flag, setting.defaultValue == "true", setting.usage)
		default:
			flags.String(setting.flag, setting.defaultValue, setting.usage)
		}
	}
}

// NewConfiguration creates a configuration instance. flags may be nil, configFile may be empty.
// A configFile ending in .properties is read as a Java properties file, anything else is handed to viper.
func NewConfiguration(flags *pflag.FlagSet, configFile string) (Configuration, error) {
	v := viper.New()
	for key, setting := range settings {
		v.SetDefault(key, setting.defaultValue)
		if err := v.BindEnv(key, setting.key); err != nil {
			return nil, err
		}
		if flags == nil {
			continue
		}
		if flag := flags.Lookup(setting.flag); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, err
			}
		}
	}

	if configFile != "" {
		if err := readConfigFile(v, configFile); err != nil {
			return nil, err
		}
	}

	config := &ViperConfig{v: v}

	// Check if we have all we need.
	multiError := config.verify()
	if !multiError.Empty() {
		for _, err := range multiError.Errors {
			logging.AppLogger().Error(err)
		}
		return nil, errors.Wrap(multiError.ToError(), "one or more configuration values are missing or invalid")
	}
	return config, nil
}

// Source returns the path or URL of the JaCoCo report.
func (c *ViperConfig) Source() string {
	return c.v.GetString(SourceKey)
}

// Result returns the path of the Cobertura report to write.
func (c *ViperConfig) Result() string {
	return c.v.GetString(ResultKey)
}

// SourcePaths returns the source roots written into the Cobertura report.
func (c *ViperConfig) SourcePaths() []string {
	return toList(c.v.Get(SourcePathsKey))
}

// Extension returns the file extension appended to class paths.
func (c *ViperConfig) Extension() string {
	return c.v.GetString(ExtensionKey)
}

// Summary returns whether a coverage summary table is printed after the conversion.
func (c *ViperConfig) Summary() bool {
	return c.v.GetBool(SummaryKey)
}

// Level returns the logging level.
func (c *ViperConfig) Level() string {
	return c.v.GetString(LevelKey)
}

// LogFile returns the file log entries are written to in addition to stdout.
func (c *ViperConfig) LogFile() string {
	return c.v.GetString(LogFileKey)
}

// String returns a string representation of the configuration.
func (c *ViperConfig) String() string {
	config := map[string]interface{}{}
	for key, setting := range settings {
		if setting.list {
			config[key] = toList(c.v.Get(key))
		} else {
			config[key] = c.v.GetString(key)
		}
	}
	return fmt.Sprintf("%v", config)
}

// verify checks whether all config options pass their validations.
func (c *ViperConfig) verify() util.MultiError {
	var errors util.MultiError
	for _, key := range sortedKeys() {
		setting := settings[key]
		var value interface{} = c.v.GetString(key)
		if setting.list {
			value = strings.Join(toList(c.v.Get(key)), ",")
		}
		for _, validateFunc := range setting.validations {
			errors.Collect(validateFunc(value, setting.key))
		}
	}
	return errors
}

func readConfigFile(v *viper.Viper, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".properties") {
		p, err := properties.LoadFile(path, properties.UTF8)
		if err != nil {
			return errors.Wrapf(err, "unable to read properties file %s", path)
		}
		values := map[string]interface{}{}
		for key, value := range p.Map() {
			values[key] = value
		}
		return errors.Wrapf(v.MergeConfigMap(values), "unable to merge properties file %s", path)
	}

	v.SetConfigFile(path)
	return errors.Wrapf(v.ReadInConfig(), "unable to read config file %s", path)
}

// toList converts comma separated strings, flag slices and YAML sequences into a list of trimmed, non empty values.
func toList(value interface{}) []string {
	switch typed := value.(type) {
	case string:
		return splitList(typed)
	case []string:
		return splitList(strings.Join(typed, ","))
	case []interface{}:
		var items []string
		for _, item := range typed {
			items = append(items, fmt.Sprint(item))
		}
		return splitList(strings.Join(items, ","))
	default:
		return nil
	}
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func sortedKeys() []string {
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
