// FILE: lixenwraith/settings/store.go
package settings

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// DefaultProfileDirName is the profile directory created beside the store file
// when no explicit directory is configured.
const DefaultProfileDirName = "profiles"

// Store holds the persistent and transient Documents of an application and
// the delegates registered on persistent keys.
//
// A Store is owned by one goroutine; it has no internal locking.
type Store struct {
	path       string
	persistent Document
	transient  Document
	delegates  *Registry
	driver     *Driver
	profiles   *ProfileDir
	logger     zerolog.Logger
}

// Option configures Open.
type Option func(*storeOptions)

type storeOptions struct {
	fs         afero.Fs
	codec      Codec
	profileDir string
	logger     zerolog.Logger
}

// WithFs sets the filesystem the store and its profiles live on.
func WithFs(fs afero.Fs) Option {
	return func(o *storeOptions) { o.fs = fs }
}

// WithCodec forces a codec instead of detecting one from the file extension.
func WithCodec(c Codec) Option {
	return func(o *storeOptions) { o.codec = c }
}

// WithProfileDir sets the directory holding profile files.
func WithProfileDir(dir string) Option {
	return func(o *storeOptions) { o.profileDir = dir }
}

// WithLogger sets the logger for store operations.
func WithLogger(l zerolog.Logger) Option {
	return func(o *storeOptions) { o.logger = l }
}

// Open creates a Store backed by the file at path and loads it. A missing file
// leaves the store empty; an undecodable one fails with ErrCorruptData rather
// than being discarded.
func Open(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path cannot be empty")
	}

	o := storeOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.codec == nil {
		o.codec = codecForPath(path)
	}
	if o.profileDir == "" {
		o.profileDir = filepath.Join(filepath.Dir(path), DefaultProfileDirName)
	}

	driver := NewDriver(o.fs, o.codec)
	s := &Store{
		path:      path,
		transient: NewDocument(),
		delegates: NewRegistry(),
		driver:    driver,
		profiles:  NewProfileDir(o.profileDir, driver),
		logger:    o.logger.With().Str("component", "settings").Logger(),
	}

	doc, err := driver.Load(path)
	if err != nil {
		return nil, err
	}
	s.persistent = doc

	s.logger.Debug().
		Str("path", path).
		Str("format", string(o.codec.Format())).
		Int("keys", len(doc)).
		Msg("store opened")
	return s, nil
}

// Path returns the store file path.
func (s *Store) Path() string { return s.path }

// ProfileDir returns the directory holding profile files.
func (s *Store) ProfileDir() string { return s.profiles.Dir() }

// Codec returns the codec used for the store and its profiles.
func (s *Store) Codec() Codec { return s.driver.Codec() }

// Has reports whether key is present in the persistent document.
func (s *Store) Has(key string) bool {
	return s.persistent.Has(key)
}

// Type returns the Kind stored under key.
func (s *Store) Type(key string) (Kind, error) {
	v, ok := s.persistent[key]
	if !ok {
		return KindNull, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return v.Kind(), nil
}

// Lookup returns a copy of the persistent Value under key.
func (s *Store) Lookup(key string) (Value, bool) {
	return s.persistent.Lookup(key)
}

// SetValue stores v under key, replacing any previous value, then runs the
// key's delegates.
func (s *Store) SetValue(key string, v Value) {
	s.persistent.Put(key, v)
	s.dispatch(key)
}

// Keys returns the persistent keys in lexicographic order.
func (s *Store) Keys() []string {
	return s.persistent.Keys()
}

// Document returns a deep copy of the persistent document.
func (s *Store) Document() Document {
	return s.persistent.Clone()
}

// HasTemp reports whether key is present in the transient document.
func (s *Store) HasTemp(key string) bool {
	return s.transient.Has(key)
}

// TempType returns the Kind stored under key in the transient document.
func (s *Store) TempType(key string) (Kind, error) {
	v, ok := s.transient[key]
	if !ok {
		return KindNull, fmt.Errorf("%w: temp %q", ErrKeyNotFound, key)
	}
	return v.Kind(), nil
}

// LookupTemp returns a copy of the transient Value under key.
func (s *Store) LookupTemp(key string) (Value, bool) {
	return s.transient.Lookup(key)
}

// SetTempValue stores v in the transient document. No delegates run.
func (s *Store) SetTempValue(key string, v Value) {
	s.transient.Put(key, v)
}

// TempKeys returns the transient keys in lexicographic order.
func (s *Store) TempKeys() []string {
	return s.transient.Keys()
}

// AddDelegate registers fn to run after every set of key. Delegates of one key
// run in registration order.
func (s *Store) AddDelegate(key string, fn Delegate) *Subscription {
	return s.delegates.Add(key, fn)
}

// AddDelegateFor registers fn for key without keeping owner reachable. Once
// owner is garbage collected the delegate stops running and is dropped. fn
// receives the owner and must not capture it.
func AddDelegateFor[O any](s *Store, owner *O, key string, fn func(owner *O)) *Subscription {
	return addWeak(s.delegates, owner, key, fn)
}

// Delegates returns the number of delegates registered for key.
func (s *Store) Delegates(key string) int {
	return s.delegates.Count(key)
}

func (s *Store) dispatch(key string) {
	if _, pruned := s.delegates.Dispatch(key); pruned > 0 {
		s.logger.Warn().
			Str("key", key).
			Int("pruned", pruned).
			Msg("dropped delegates whose owner was collected")
	}
}

// Save writes the persistent document to the store file atomically.
func (s *Store) Save() error {
	if err := s.driver.Save(s.path, s.persistent); err != nil {
		return err
	}
	s.logger.Debug().Str("path", s.path).Int("keys", len(s.persistent)).Msg("store saved")
	return nil
}

// Close saves the persistent document. The transient document is discarded.
func (s *Store) Close() error {
	if err := s.Save(); err != nil {
		return err
	}
	s.transient = NewDocument()
	return nil
}

// Reload re-reads the store file and replaces the persistent document with
// its content, as LoadProfile does for a profile.
func (s *Store) Reload() error {
	doc, err := s.driver.Load(s.path)
	if err != nil {
		return err
	}
	s.replace(doc)
	s.logger.Debug().Str("path", s.path).Int("keys", len(doc)).Msg("store reloaded")
	return nil
}

// replace swaps in doc wholesale and runs the delegates of every key present
// before or after, in lexicographic order. Keys that were removed are already
// absent when their delegates run.
func (s *Store) replace(doc Document) {
	old := s.persistent
	s.persistent = doc
	for _, key := range unionKeys(old, doc) {
		s.dispatch(key)
	}
}

// SaveProfile writes the persistent document as profile name, overwriting an
// existing profile of that name.
func (s *Store) SaveProfile(name string) error {
	if err := s.profiles.Write(name, s.persistent); err != nil {
		return err
	}
	s.logger.Debug().Str("profile", name).Int("keys", len(s.persistent)).Msg("profile saved")
	return nil
}

// LoadProfile replaces the persistent document with profile name. On failure
// the store is left untouched.
func (s *Store) LoadProfile(name string) error {
	doc, err := s.profiles.Read(name)
	if err != nil {
		return err
	}
	s.replace(doc)
	s.logger.Debug().Str("profile", name).Int("keys", len(doc)).Msg("profile loaded")
	return nil
}

// DeleteProfile removes profile name.
func (s *Store) DeleteProfile(name string) error {
	if err := s.profiles.Delete(name); err != nil {
		return err
	}
	s.logger.Debug().Str("profile", name).Msg("profile deleted")
	return nil
}

// HasProfile reports whether profile name exists.
func (s *Store) HasProfile(name string) bool {
	return s.profiles.Has(name)
}

// Profiles returns the saved profile names in lexicographic order.
func (s *Store) Profiles() ([]string, error) {
	return s.profiles.List()
}

// MatchProfiles returns the saved profile names matching a glob pattern.
func (s *Store) MatchProfiles(pattern string) ([]string, error) {
	return s.profiles.Match(pattern)
}

// Dump writes the persistent document to w in the store's format.
func (s *Store) Dump(w io.Writer) error {
	data, err := s.driver.Codec().Marshal(s.persistent)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
