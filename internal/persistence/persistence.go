// Package persistence reads and writes the record store file.
//
// Writes go to a temporary file in the target's directory which is then
// renamed over the target, so a failed write leaves the previous store intact.
package persistence

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/agentstation/omm/pkg/constants"
	"github.com/agentstation/omm/pkg/errors"
	"github.com/agentstation/omm/pkg/logging"
	"github.com/agentstation/omm/pkg/records"
)

// Files loads and saves stores on the local filesystem.
type Files struct {
	logger *zerolog.Logger
}

// Option configures Files.
type Option func(*Files)

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(f *Files) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New creates a store file handler.
func New(opts ...Option) *Files {
	f := &Files{logger: &logging.Nop}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Load reads the store at path. A missing file is a NotFoundError; a file
// that is not a list of records is a ParseError.
func (f *Files) Load(path string) (records.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("store", path)
		}
		return nil, errors.WrapIO("read", path, err)
	}

	store, err := Decode(data, path)
	if err != nil {
		return nil, err
	}

	f.logger.Debug().
		Str("store", path).
		Int("records", len(store)).
		Msg("Store loaded")
	return store, nil
}

// LoadOrEmpty is like Load but returns an empty store when path does not
// exist. The second result reports whether the file existed.
func (f *Files) LoadOrEmpty(path string) (records.Store, bool, error) {
	store, err := f.Load(path)
	if errors.IsNotFound(err) {
		f.logger.Debug().Str("store", path).Msg("Store not found, starting empty")
		return records.Store{}, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return store, true, nil
}

// Save writes the store to path, replacing any previous content in one step.
// The store is written as given; callers normalize it first.
func (f *Files) Save(path string, store records.Store) error {
	data, err := Encode(store)
	if err != nil {
		return err
	}

	if err := writeAtomic(path, data); err != nil {
		return err
	}

	f.logger.Debug().
		Str("store", path).
		Int("records", len(store)).
		Int("bytes", len(data)).
		Msg("Store saved")
	return nil
}

// writeAtomic writes data to a temp file next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tempFile, err := os.CreateTemp(dir, constants.TempFilePattern)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tempPath := tempFile.Name()

	cleanup := func() {
		_ = os.Remove(tempPath)
	}

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		cleanup()
		return errors.WrapIO("write", path, err)
	}
	if err := tempFile.Close(); err != nil {
		cleanup()
		return errors.WrapIO("close", path, err)
	}

	mode := os.FileMode(constants.FilePermissions)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		cleanup()
		return errors.WrapIO("write", path, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		cleanup()
		return errors.WrapIO("rename", path, err)
	}
	return nil
}
