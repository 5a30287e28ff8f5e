package storage

import (
	"os"
	"path/filepath"
	"strings"

	"boardkit/internal/domain"
)

// File stores each key as a JSON file under a data directory.
type File struct {
	dir string
}

// NewFile creates a file-backed store rooted at dir. The directory is
// created on first write.
func NewFile(dir string) *File {
	return &File{dir: dir}
}

// path maps a key to a file name. Key separators are not portable as file
// name characters, so they are replaced.
func (f *File) path(key string) string {
	name := strings.ReplaceAll(key, ":", "_") + ".json"
	return filepath.Join(f.dir, name)
}

func (f *File) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set writes to a temp file and renames it into place so a crash mid-write
// never leaves a truncated value behind.
func (f *File) Set(key string, value []byte) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return &domain.StorageError{Op: "set", Key: key, Err: err}
	}
	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return &domain.StorageError{Op: "set", Key: key, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &domain.StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (f *File) Remove(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return &domain.StorageError{Op: "remove", Key: key, Err: err}
	}
	return nil
}

// Available reports whether the data directory exists or can be created.
func (f *File) Available() bool {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return false
	}
	info, err := os.Stat(f.dir)
	return err == nil && info.IsDir()
}
