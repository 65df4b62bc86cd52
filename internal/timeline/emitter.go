package timeline

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"timelinecsv/internal/models"
	"timelinecsv/internal/providers"
	"timelinecsv/internal/structures"
	"timelinecsv/internal/timeline/interfaces"

	"github.com/gocarina/gocsv"
	"github.com/spf13/afero"
)

const compressedSuffix = ".zst"

type Emitter struct {
	fs         afero.Fs
	compressor interfaces.CompressorInterface
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
	conf       structures.ReportConfig
}

func NewEmitter(conf *structures.Config, fs afero.Fs, compressor interfaces.CompressorInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) interfaces.EmitterInterface {
	return &Emitter{
		fs:         fs,
		compressor: compressor,
		logger:     logger,
		metrics:    metrics,
		conf:       conf.Report,
	}
}

// Emit writes the places report and, when enabled, the activities report
// into root. The two writes are independent: a failure on the first does not
// skip the second, and both errors are returned.
func (e *Emitter) Emit(root string, report *models.Report) error {
	var errs []error

	if err := e.writeReport(filepath.Join(root, e.conf.PlacesFile), report.Places, len(report.Places)); err != nil {
		errs = append(errs, err)
	}

	if e.conf.Activities {
		if err := e.writeReport(filepath.Join(root, e.conf.ActivitiesFile), report.Activities, len(report.Activities)); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (e *Emitter) Close() {
	e.compressor.Close()
}

func (e *Emitter) writeReport(fileName string, rows any, count int) error {
	var buf bytes.Buffer
	if err := gocsv.Marshal(rows, &buf); err != nil {
		return fmt.Errorf("unable to encode %s: %w", fileName, err)
	}

	data := buf.Bytes()
	if e.conf.Compress {
		compressed, err := e.compressor.Compress(data)
		if err != nil {
			return fmt.Errorf("unable to compress %s: %w", fileName, err)
		}
		data = compressed
		fileName += compressedSuffix
	}

	if err := e.saveToFile(fileName, data); err != nil {
		return fmt.Errorf("unable to write %s: %w", fileName, err)
	}

	e.metrics.SetRowsWritten(filepath.Base(fileName), count)
	e.logger.Infof(providers.TypeReport, "Wrote %d rows to %s", count, fileName)
	return nil
}

func (e *Emitter) saveToFile(fileName string, data []byte) error {
	tmpFile := fileName + ".tmp"
	file, err := e.fs.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		e.fs.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		e.fs.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		e.fs.Remove(tmpFile)
		return err
	}

	return e.fs.Rename(tmpFile, fileName)
}
