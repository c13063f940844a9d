// File: lixenwraith/settings/builder.go
package settings

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ValidatorFunc defines the signature for a function that can validate a Store.
// It receives the fully loaded *Store and should return an error if validation fails.
type ValidatorFunc func(s *Store) error

// Builder provides a fluent interface for opening a Store
type Builder struct {
	file       string
	profileDir string
	app        *Paths
	opts       []Option
	prefix     string
	defaults   any
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a new store builder
func NewBuilder() *Builder {
	return &Builder{
		validators: make([]ValidatorFunc, 0),
	}
}

// WithFile sets the store file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithAppName places the store and profiles at the per-user default location
// for appName. An explicit WithFile or WithProfileDir still wins.
func (b *Builder) WithAppName(appName string) *Builder {
	paths := DefaultPaths(appName)
	b.app = &paths
	return b
}

// WithProfileDir sets the profile directory
func (b *Builder) WithProfileDir(dir string) *Builder {
	b.profileDir = dir
	return b
}

// WithFormat forces the file format ("json", "yaml" or "toml")
func (b *Builder) WithFormat(format string) *Builder {
	codec, err := CodecFor(format)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	b.opts = append(b.opts, WithCodec(codec))
	return b
}

// WithFs sets the filesystem
func (b *Builder) WithFs(fs afero.Fs) *Builder {
	b.opts = append(b.opts, WithFs(fs))
	return b
}

// WithLogger sets the logger
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.opts = append(b.opts, WithLogger(logger))
	return b
}

// WithDefaults sets a struct of default values applied with SetIfEmpty under prefix
func (b *Builder) WithDefaults(prefix string, defaults any) *Builder {
	b.prefix = prefix
	b.defaults = defaults
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build opens the Store with all specified options
func (b *Builder) Build() (*Store, error) {
	if b.err != nil {
		return nil, b.err
	}
	file, profileDir := b.file, b.profileDir
	if file == "" && b.app != nil {
		file = b.app.File
		if profileDir == "" {
			profileDir = b.app.ProfileDir
		}
	}
	if file == "" {
		return nil, fmt.Errorf("store file not set: use WithFile or WithAppName")
	}

	opts := b.opts
	if profileDir != "" {
		opts = append(opts[:len(opts):len(opts)], WithProfileDir(profileDir))
	}

	s, err := Open(file, opts...)
	if err != nil {
		return nil, err
	}

	if b.defaults != nil {
		if _, err := s.ApplyDefaults(b.prefix, b.defaults); err != nil {
			return nil, fmt.Errorf("failed to apply defaults: %w", err)
		}
	}

	for _, validator := range b.validators {
		if err := validator(s); err != nil {
			return nil, fmt.Errorf("settings validation failed: %w", err)
		}
	}

	return s, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Store {
	s, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("settings build failed: %v", err))
	}
	return s
}
