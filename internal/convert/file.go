package convert

import (
	"bufio"
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/jenkins-x-apps/jacoco-cobertura/internal/cobertura"
	"github.com/jenkins-x-apps/jacoco-cobertura/internal/report"
	"github.com/jenkins-x-apps/jacoco-cobertura/internal/util"
	"github.com/pkg/errors"
)

var renameTimeout = 2 * time.Second

// Result describes a completed conversion.
type Result struct {
	Summary Summary
}

// ConvertFile converts the JaCoCo report at source, a local path or http(s) URL, into a Cobertura report at
// destination. The parent directory of destination is created if needed. The report is written to a temporary
// file next to destination and renamed on success, an existing destination stays untouched on failure.
//
// A missing total instruction counter does not fail the conversion, it is logged and returned in
// Result.Summary.TotalErr.
func ConvertFile(ctx context.Context, source string, destination string, options Options) (Result, error) {
	raw, err := report.RetrieveRawReport(ctx, source)
	if err != nil {
		return Result{}, &IOError{Source: source, Destination: destination, Err: err}
	}
	doc, err := report.Parse(raw)
	if err != nil {
		return Result{}, &ParseError{Source: source, Err: err}
	}

	if err := writeAtomically(destination, func(sink cobertura.Sink) error {
		return NewAssembler(sink, options).Assemble(&doc)
	}); err != nil {
		var structural *StructuralError
		if errors.As(err, &structural) {
			return Result{}, err
		}
		return Result{}, &IOError{Source: source, Destination: destination, Err: err}
	}
	logger.Infof("converted %s to %s", source, destination)

	summary, err := Summarize(&doc)
	if err != nil {
		return Result{}, err
	}
	if summary.TotalErr != nil {
		logger.Errorf("%s", summary.TotalErr)
	} else {
		logger.Infof("Total coverage %d%%", summary.Total)
	}
	return Result{Summary: summary}, nil
}

func writeAtomically(destination string, write func(sink cobertura.Sink) error) (err error) {
	dir := filepath.Dir(destination)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "unable to create directory %s", dir)
	}
	tmp, err := ioutil.TempFile(dir, "."+filepath.Base(destination)+"-*.tmp")
	if err != nil {
		return errors.Wrapf(err, "unable to create file in %s", dir)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	buffered := bufio.NewWriter(tmp)
	if err = write(cobertura.NewXMLWriter(buffered)); err != nil {
		return err
	}
	if err = buffered.Flush(); err != nil {
		return errors.Wrapf(err, "unable to write %s", tmp.Name())
	}
	if err = tmp.Chmod(0644); err != nil {
		return errors.Wrapf(err, "unable to change mode of %s", tmp.Name())
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "unable to close %s", tmp.Name())
	}
	// the target may briefly be locked by a reader on some platforms
	err = util.ApplyWithBackoffFor(renameTimeout, func() error {
		return os.Rename(tmp.Name(), destination)
	})
	return errors.Wrapf(err, "unable to move report to %s", destination)
}
