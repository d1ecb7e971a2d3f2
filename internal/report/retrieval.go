package report

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/jenkins-x-apps/jacoco-cobertura/internal/logging"
	"github.com/jenkins-x-apps/jacoco-cobertura/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	timeout           = time.Second * 30
	retryMax          = 4
	r       retriever = &defaultRetriever{}
	logger            = logging.AppLogger().WithFields(log.Fields{"component": "retrieval"})
)

type retriever interface {
	getRawReport(ctx context.Context, location string) ([]byte, error)
}

type defaultRetriever struct {
}

func (r *defaultRetriever) getRawReport(ctx context.Context, location string) ([]byte, error) {
	if !IsRemote(location) {
		return ioutil.ReadFile(location)
	}

	client := retryablehttp.NewClient()
	client.HTTPClient.Timeout = timeout
	client.RetryMax = retryMax
	client.Logger = &leveledLogger{entry: logger}

	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", location, nil)
	if err != nil {
		return nil, err
	}
	response, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode > 299 || response.StatusCode < 200 {
		return nil, errors.Errorf("status code: %d, error: %s", response.StatusCode, response.Status)
	}
	return ioutil.ReadAll(response.Body)
}

// IsRemote returns true if the location is an http or https URL.
func IsRemote(location string) bool {
	u, err := url.Parse(location)
	if err != nil {
		return false
	}
	return util.Contains([]string{"http", "https"}, u.Scheme) && u.Host != ""
}

// RetrieveRawReport reads a JaCoCo report from the specified location which can be a local path or an http(s) URL.
func RetrieveRawReport(ctx context.Context, location string) ([]byte, error) {
	logger.Debugf("retrieving report from %s", location)
	return r.getRawReport(ctx, location)
}

// leveledLogger adapts logrus to retryablehttp.LeveledLogger.
type leveledLogger struct {
	entry *log.Entry
}

func (l *leveledLogger) fields(keysAndValues []interface{}) *log.Entry {
	fields := log.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return l.entry.WithFields(fields)
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).Error(msg)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).Info(msg)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).Debug(msg)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).Warn(msg)
}
