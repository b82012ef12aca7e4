// Package filekv implements kvstore.Storage on top of a directory of JSON
// text files, one file per key.
package filekv

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/patric-chuzhbe/todokeeper/internal/logger"
)

// FileKV stores every key as `<dir>/<key>.json`. When the directory cannot be
// prepared the store degrades instead of failing: reads yield absent, writes
// and removes become no-ops. The degraded state is visible via Available().
type FileKV struct {
	dir       string
	available bool
}

// New prepares the storage directory and returns the store. New never returns
// an error; an unusable directory produces a degraded (unavailable) store.
func New(dir string) *FileKV {
	if dir == "" {
		logger.Log.Warnln("no storage directory configured, persistence disabled")
		return &FileKV{}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Log.Warnf("storage directory %q is not usable, persistence disabled: %v", dir, err)
		return &FileKV{}
	}

	return &FileKV{
		dir:       dir,
		available: true,
	}
}

func (s *FileKV) fileName(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Read returns the contents of the key's file, or ok=false when the store is
// degraded or the file is absent/unreadable.
func (s *FileKV) Read(key string) ([]byte, bool) {
	if !s.available {
		return nil, false
	}

	data, err := os.ReadFile(s.fileName(key))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log.Warnf("cannot read storage file for key %q: %v", key, err)
		}
		return nil, false
	}

	return data, true
}

// Write replaces the key's file contents. A degraded store silently drops the
// write.
func (s *FileKV) Write(key string, data []byte) error {
	if !s.available {
		return nil
	}

	file, err := os.OpenFile(s.fileName(key), os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("error writing to file: %w", err)
	}

	return nil
}

// Remove deletes the key's file. Removing an absent key is not an error.
func (s *FileKV) Remove(key string) error {
	if !s.available {
		return nil
	}

	if err := os.Remove(s.fileName(key)); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

// Available reports whether the storage directory was usable at open time.
func (s *FileKV) Available() bool {
	return s.available
}

// Close is a no-op; every write already reaches the filesystem.
func (s *FileKV) Close() error {
	return nil
}
