// FILE: lixenwraith/settings/driver.go
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// Driver reads and writes whole Documents on a filesystem using one Codec.
type Driver struct {
	fs    afero.Fs
	codec Codec
}

// NewDriver creates a Driver. A nil fs selects the OS filesystem and a nil
// codec selects JSON.
func NewDriver(fs afero.Fs, codec Codec) *Driver {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if codec == nil {
		codec = jsonCodec{}
	}
	return &Driver{fs: fs, codec: codec}
}

// Codec returns the codec the driver encodes with.
func (d *Driver) Codec() Codec {
	return d.codec
}

// Fs returns the underlying filesystem.
func (d *Driver) Fs() afero.Fs {
	return d.fs
}

// Load reads the Document stored at path. A missing file yields an empty
// Document and no error. A file that cannot be decoded yields ErrCorruptData.
func (d *Driver) Load(path string) (Document, error) {
	data, err := afero.ReadFile(d.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDocument(), nil
		}
		return nil, fmt.Errorf("%w: failed to read '%s': %w", ErrIO, path, err)
	}

	doc, err := d.codec.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s file '%s': %w", d.codec.Format(), path, err)
	}
	return doc, nil
}

// Exists reports whether a regular file exists at path.
func (d *Driver) Exists(path string) (bool, error) {
	info, err := d.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: failed to stat '%s': %w", ErrIO, path, err)
	}
	return info.Mode().IsRegular(), nil
}

// Save encodes doc and atomically replaces the file at path.
func (d *Driver) Save(path string, doc Document) error {
	data, err := d.codec.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s for '%s': %w", d.codec.Format(), path, err)
	}
	return atomicWriteFile(d.fs, path, data)
}

// Remove deletes the file at path. A missing file is reported as os.ErrNotExist.
func (d *Driver) Remove(path string) error {
	if err := d.fs.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return err
		}
		return fmt.Errorf("%w: failed to remove '%s': %w", ErrIO, path, err)
	}
	return nil
}

// List returns the base names, without extension, of the regular files in
// dir carrying the codec's extension, sorted. A missing dir yields no names.
func (d *Driver) List(dir string) ([]string, error) {
	entries, err := afero.ReadDir(d.fs, dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("%w: failed to read directory '%s': %w", ErrIO, dir, err)
	}

	ext := d.codec.Ext()
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ext) || strings.HasPrefix(name, ".") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ext))
	}
	slices.Sort(names)
	return names, nil
}

// atomicWriteFile writes data to a temp file beside path, syncs it and renames
// it over path, so readers only ever see the old or the new content.
func atomicWriteFile(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory '%s': %w", ErrIO, dir, err)
	}

	tempFile, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create temporary file in '%s': %w", ErrIO, dir, err)
	}

	tempPath := tempFile.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = fs.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("%w: failed to write temporary file '%s': %w", ErrIO, tempPath, err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("%w: failed to sync temporary file '%s': %w", ErrIO, tempPath, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("%w: failed to close temporary file '%s': %w", ErrIO, tempPath, err)
	}

	if err := fs.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("%w: failed to set permissions on '%s': %w", ErrIO, tempPath, err)
	}

	if err := fs.Rename(tempPath, path); err != nil {
		return fmt.Errorf("%w: failed to rename '%s' to '%s': %w", ErrIO, tempPath, path, err)
	}
	renamed = true

	return nil
}
