// Package storage is the local key-value persistence facility backing the board.
package storage

import (
	"fmt"

	"github.com/peterbourgon/diskv/v3"
)

// Backend reads and writes named byte slots. Read reports a missing slot
// with ok == false and a nil error; err is reserved for real I/O failures.
type Backend interface {
	Read(key string) (data []byte, ok bool, err error)
	Write(key string, data []byte) error
}

// DiskStore is a diskv-backed Backend rooted at a base directory.
type DiskStore struct {
	d *diskv.Diskv
}

// NewDisk creates a DiskStore rooted at dir. The directory is created
// lazily on first write.
func NewDisk(dir string) *DiskStore {
	return &DiskStore{d: diskv.New(diskv.Options{
		BasePath:          dir,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}
}

// Read returns the bytes stored under key, or ok == false if the slot has
// never been written.
func (s *DiskStore) Read(key string) ([]byte, bool, error) {
	if !s.d.Has(key) {
		return nil, false, nil
	}
	data, err := s.d.Read(key)
	if err != nil {
		return nil, false, fmt.Errorf("storage: read %q: %w", key, err)
	}
	return data, true, nil
}

// Write stores data under key, replacing any previous contents.
func (s *DiskStore) Write(key string, data []byte) error {
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("storage: write %q: %w", key, err)
	}
	return nil
}

// Slots are flat files directly under the base directory.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{Path: []string{}, FileName: key}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
