// FILE: lixenwraith/settings/watch.go
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventKind says which on-disk state changed.
type EventKind int

const (
	// EventStoreChanged means the store file was written, replaced or removed.
	EventStoreChanged EventKind = iota
	// EventProfilesChanged means a profile file was added, changed or removed.
	EventProfilesChanged
)

func (k EventKind) String() string {
	switch k {
	case EventStoreChanged:
		return "store_changed"
	case EventProfilesChanged:
		return "profiles_changed"
	default:
		return "unknown"
	}
}

// Event reports a debounced change on disk. Path is the last file touched.
type Event struct {
	Kind EventKind
	Path string
}

// WatchOptions configures file watching behavior
type WatchOptions struct {
	// Debounce coalesces bursts of filesystem events (minimum 10ms)
	Debounce time.Duration

	// Buffer is the capacity of the Events channel
	Buffer int
}

// DefaultWatchOptions returns sensible defaults for file watching
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{
		Debounce: DefaultDebounce,
		Buffer:   DefaultEventBuffer,
	}
}

// Watcher reports changes made to the store file and the profile directory,
// including changes made by other processes. It never touches a Store: the
// goroutine owning the Store receives Events and decides whether to call
// Store.Reload. Watching requires the OS filesystem.
type Watcher struct {
	fsw        *fsnotify.Watcher
	file       string
	profileDir string
	ext        string
	opts       WatchOptions

	events chan Event
	errors chan error

	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// Watch starts a Watcher on the store file and profile directory of s.
func (s *Store) Watch(opts WatchOptions) (*Watcher, error) {
	return NewWatcher(s.path, s.ProfileDir(), s.Codec().Ext(), opts)
}

// NewWatcher watches file and the profile files with extension ext in
// profileDir. Missing directories are created.
func NewWatcher(file, profileDir, ext string, opts WatchOptions) (*Watcher, error) {
	if opts.Debounce < MinDebounce {
		opts.Debounce = MinDebounce
	}
	if opts.Buffer <= 0 {
		opts.Buffer = DefaultEventBuffer
	}

	file = filepath.Clean(file)
	profileDir = filepath.Clean(profileDir)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create watcher: %w", ErrIO, err)
	}

	for _, dir := range uniqueDirs(filepath.Dir(file), profileDir) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("%w: failed to create directory '%s': %w", ErrIO, dir, err)
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("%w: failed to watch '%s': %w", ErrIO, dir, err)
		}
	}

	w := &Watcher{
		fsw:        fsw,
		file:       file,
		profileDir: profileDir,
		ext:        ext,
		opts:       opts,
		events:     make(chan Event, opts.Buffer),
		errors:     make(chan error, 1),
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Events returns the channel of debounced change events. It is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns watcher errors. Errors are dropped while one is pending.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		select {
		case <-w.stopped:
		case <-time.After(ShutdownTimeout):
		}
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.stopped)
	defer close(w.events)

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = make(map[EventKind]string)
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			kind, relevant := w.classify(ev)
			if !relevant {
				continue
			}
			pending[kind] = ev.Name
			if timer == nil {
				timer = time.NewTimer(w.opts.Debounce)
			} else {
				timer.Reset(w.opts.Debounce)
			}
			timerC = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}

		case <-timerC:
			timerC = nil
			for _, kind := range []EventKind{EventStoreChanged, EventProfilesChanged} {
				path, ok := pending[kind]
				if !ok {
					continue
				}
				select {
				case w.events <- Event{Kind: kind, Path: path}:
				case <-w.done:
					return
				}
			}
			clear(pending)
		}
	}
}

// classify maps a raw filesystem event to an EventKind. Temp files written
// during atomic saves start with a dot and are ignored.
func (w *Watcher) classify(ev fsnotify.Event) (EventKind, bool) {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) &&
		!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return 0, false
	}
	name := filepath.Clean(ev.Name)
	if name == w.file {
		return EventStoreChanged, true
	}
	base := filepath.Base(name)
	if filepath.Dir(name) == w.profileDir && strings.HasSuffix(base, w.ext) && !strings.HasPrefix(base, ".") {
		return EventProfilesChanged, true
	}
	return 0, false
}

func uniqueDirs(dirs ...string) []string {
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		if !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	return out
}
