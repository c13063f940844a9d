// FILE: lixenwraith/settings/profile.go
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// MaxProfileNameLength bounds the byte length of a profile name.
const MaxProfileNameLength = 128

// ProfileDir is the on-disk catalog of named Document snapshots, one file per
// profile, encoded with the driver's codec.
type ProfileDir struct {
	dir    string
	driver *Driver
}

// NewProfileDir creates a catalog rooted at dir.
func NewProfileDir(dir string, driver *Driver) *ProfileDir {
	return &ProfileDir{dir: dir, driver: driver}
}

// Dir returns the catalog directory.
func (p *ProfileDir) Dir() string {
	return p.dir
}

// path returns the file backing a validated profile name.
func (p *ProfileDir) path(name string) string {
	return filepath.Join(p.dir, name+p.driver.Codec().Ext())
}

// Write stores doc as profile name, replacing any existing profile.
func (p *ProfileDir) Write(name string, doc Document) error {
	if err := ValidateProfileName(name); err != nil {
		return err
	}
	return p.driver.Save(p.path(name), doc)
}

// Read returns the Document stored as profile name.
func (p *ProfileDir) Read(name string) (Document, error) {
	if err := ValidateProfileName(name); err != nil {
		return nil, err
	}
	path := p.path(name)
	exists, err := p.driver.Exists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	doc, err := p.driver.Load(path)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}
	return doc, nil
}

// Has reports whether profile name exists.
func (p *ProfileDir) Has(name string) bool {
	if ValidateProfileName(name) != nil {
		return false
	}
	exists, err := p.driver.Exists(p.path(name))
	return err == nil && exists
}

// Delete removes profile name.
func (p *ProfileDir) Delete(name string) error {
	if err := ValidateProfileName(name); err != nil {
		return err
	}
	if err := p.driver.Remove(p.path(name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrProfileNotFound, name)
		}
		return err
	}
	return nil
}

// List returns every profile name in lexicographic order. Files whose names
// are not valid profile names are ignored.
func (p *ProfileDir) List() ([]string, error) {
	files, err := p.driver.List(p.dir)
	if err != nil {
		return nil, err
	}
	names := files[:0]
	for _, name := range files {
		if ValidateProfileName(name) == nil {
			names = append(names, name)
		}
	}
	return names, nil
}

// Match returns the profile names matching a doublestar glob pattern, sorted.
func (p *ProfileDir) Match(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid profile pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	all, err := p.List()
	if err != nil {
		return nil, err
	}
	matched := make([]string, 0, len(all))
	for _, name := range all {
		if ok, _ := doublestar.Match(pattern, name); ok {
			matched = append(matched, name)
		}
	}
	return matched, nil
}

// ValidateProfileName checks that name can be used as a file name unchanged:
// non-empty, no surrounding spaces, no leading dot, at most
// MaxProfileNameLength bytes, made of letters, digits, space, '_', '-' and '.'.
func ValidateProfileName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidProfileName)
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("%w: %q has surrounding spaces", ErrInvalidProfileName, name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidProfileName, name)
	case len(name) > MaxProfileNameLength:
		return fmt.Errorf("%w: %q exceeds %d bytes", ErrInvalidProfileName, name, MaxProfileNameLength)
	}
	for _, r := range name {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !(isLetter || isDigit || r == ' ' || r == '_' || r == '-' || r == '.') {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidProfileName, name, r)
		}
	}
	return nil
}
