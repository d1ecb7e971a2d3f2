package util

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// IsNotEmpty checks if value stored at given key is empty.
// if it is empty it returns an error.
func IsNotEmpty(value interface{}, key string) error {
	s, ok := value.(string)
	if !ok {
		return errors.New(fmt.Sprintf("Value for %s needs to be a string.", key))
	}

	if len(s) == 0 {
		return errors.New(fmt.Sprintf("Value for %s cannot be empty.", key))
	}
	return nil

}

// IsBool checks if value stored at a given key is a bool.
func IsBool(value interface{}, key string) error {
	s, ok := value.(string)
	if !ok {
		return errors.New(fmt.Sprintf("Value for %s needs to be an bool.", key))
	}
	_, err := strconv.ParseBool(s)
	if err != nil {
		return errors.New(fmt.Sprintf("Value for %s needs to be an bool.", key))
	}
	return nil
}

// IsLogLevel checks if value stored at a given key names a logrus level.
func IsLogLevel(value interface{}, key string) error {
	s, ok := value.(string)
	if !ok {
		return errors.New(fmt.Sprintf("Value for %s needs to be a log level.", key))
	}
	if _, err := log.ParseLevel(s); err != nil {
		return errors.New(fmt.Sprintf("Value for %s needs to be a log level.", key))
	}
	return nil
}

// IsExtension checks if the value stored at a given key is a file extension starting with a dot.
func IsExtension(value interface{}, key string) error {
	s, ok := value.(string)
	if !ok || len(s) < 2 || s[0] != '.' {
		return errors.New(fmt.Sprintf("Value for %s needs to be a file extension like '.java'.", key))
	}
	return nil
}
