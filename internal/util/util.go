package util

import (
	"time"

	"github.com/cenkalti/backoff"
)

// Contains checks whether the specified string is contained in the given string slice.
// Returns true if it does, false otherwise
func Contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ApplyWithBackoffFor tries to apply the specified function using an exponential backoff algorithm,
// giving up once maxElapsed has passed.
// If the function eventually succeed nil is returned, otherwise the error returned by f.
func ApplyWithBackoffFor(maxElapsed time.Duration, f func() error) error {
	exponentialBackOff := backoff.NewExponentialBackOff()
	exponentialBackOff.MaxElapsedTime = maxElapsed
	exponentialBackOff.Reset()
	return backoff.Retry(f, exponentialBackOff)
}
