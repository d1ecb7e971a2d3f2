package logging

import (
	"os"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

// AppName is the name used in log output.
const AppName = "jacoco-cobertura"

var appLogger = log.New()

func init() {
	appLogger.SetOutput(os.Stdout)
	appLogger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

// AppLogger returns the application wide logger.
func AppLogger() *log.Entry {
	return appLogger.WithFields(log.Fields{"app": AppName})
}

// SetLevel sets the level of the application logger. Unknown levels leave the current level untouched.
func SetLevel(level string) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		AppLogger().Warnf("unable to parse log level '%s', keeping %s", level, appLogger.GetLevel())
		return
	}
	appLogger.SetLevel(parsed)
}

// AddFileHook additionally writes every log entry to the specified file.
func AddFileHook(path string) {
	hook := lfshook.NewHook(lfshook.PathMap{
		log.TraceLevel: path,
		log.DebugLevel: path,
		log.InfoLevel:  path,
		log.WarnLevel:  path,
		log.ErrorLevel: path,
		log.FatalLevel: path,
		log.PanicLevel: path,
	}, &log.JSONFormatter{})
	appLogger.AddHook(hook)
}
