// Package datafile reads and writes the class document on disk.
package datafile

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/amonks/skid/class"
)

// File is the class document at a fixed path.
type File struct {
	path string
}

// New returns the document at path.
func New(path string) *File {
	return &File{path: filepath.Clean(path)}
}

// Path returns the document path.
func (f *File) Path() string {
	return f.path
}

// Exists reports whether the document exists.
func (f *File) Exists() (bool, error) {
	_, err := os.Stat(f.path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, class.IOFailure("stat", f.path, err)
}

// Create writes an empty document if none exists.
func (f *File) Create() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return class.IOFailure("create directory for", f.path, err)
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return class.IOFailure("create", f.path, err)
	}
	if err := file.Close(); err != nil {
		return class.IOFailure("create", f.path, err)
	}
	return nil
}

// Load reads and decodes the document. A missing document is an empty store.
func (f *File) Load(decoder class.Decoder) (*class.Store, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return class.NewStore(), nil
	}
	if err != nil {
		return nil, class.IOFailure("read", f.path, err)
	}
	return decoder.Document(string(data))
}

// Save encodes store and replaces the document.
func (f *File) Save(store *class.Store) error {
	return WriteFile(f.path, []byte(store.Encode()))
}

// WriteFile replaces path with data via a temp file and rename.
// It does nothing when the file already holds data.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return class.IOFailure("create directory for", path, err)
	}

	if existing, err := os.ReadFile(path); err == nil {
		if bytes.Equal(existing, data) {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return class.IOFailure("read", path, err)
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return class.IOFailure("create temp file for", path, err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return class.IOFailure("write", path, err)
	}

	if err := os.Chmod(name, 0644); err != nil {
		os.Remove(name)
		return class.IOFailure("write", path, err)
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return class.IOFailure("write", path, err)
	}

	return nil
}
