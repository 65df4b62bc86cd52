package providers

import "github.com/spf13/afero"

// NewFsProvider returns the filesystem every reader and writer goes through.
// Tests swap it for afero.NewMemMapFs.
func NewFsProvider() afero.Fs {
	return afero.NewOsFs()
}
