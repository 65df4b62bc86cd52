package timeline

import (
	"fmt"
	"timelinecsv/internal/models"
	"timelinecsv/internal/providers"
	"timelinecsv/internal/timeline/interfaces"

	json "github.com/goccy/go-json"
	"github.com/spf13/afero"
)

// FileManager reads monthly history files.
type FileManager struct {
	fs     afero.Fs
	logger providers.Logger
}

func NewFileManager(fs afero.Fs, logger providers.Logger) interfaces.LoaderInterface {
	return &FileManager{
		fs:     fs,
		logger: logger,
	}
}

// Load returns the file's timeline objects in file order. A file without a
// timelineObjects list yields no objects and no error.
func (f *FileManager) Load(fileName string) ([]models.TimelineObject, error) {
	data, err := afero.ReadFile(f.fs, fileName)
	if err != nil {
		return nil, err
	}

	var file models.TimelineFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", fileName, err)
	}

	if file.TimelineObjects == nil {
		f.logger.Warnf(providers.TypeSource, "No timelineObjects in %s", fileName)
	}
	f.logger.Debugf(providers.TypeSource, "Loaded %d entries from %s", len(file.TimelineObjects), fileName)
	return file.TimelineObjects, nil
}
