// File: lixenwraith/settings/doc.go

// Package settings provides a typed, persistent key-value store for the
// user-tunable settings of an application, with named profiles and
// synchronous change delegates.
//
// Features:
//   - Tagged values: null, bool, int, float, string, array and object
//   - Generic typed accessors with a single conversion routine
//   - Separate transient document that is never written to disk
//   - Per-key delegates run in registration order, with removable handles
//     and weakly held owners
//   - Named profiles: save, load (full replacement), delete, list
//   - Atomic writes in JSON (comments allowed on read), YAML or TOML
//   - Struct defaults and struct scanning with `toml` tags
//   - Optional file watcher for edits made outside the process
//
// Quick Start:
//
//	type Defaults struct {
//	    Bypass struct {
//	        CopyBypass bool `toml:"copybypass"`
//	    } `toml:"bypass"`
//	}
//
//	store, err := settings.Quick("myapp", Defaults{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	store.AddDelegate("bypass.copybypass", func() {
//	    on, _ := settings.GetOr(store, "bypass.copybypass", false)
//	    toggle.SetChecked(on)
//	})
//	settings.Set(store, "bypass.copybypass", true)
//
// Query shapes:
//
// GetOr returns the supplied default only when the key is absent. A key that
// holds a value of another kind fails with ErrTypeMismatch in both GetOr and
// Get; Get additionally fails with ErrKeyNotFound.
//
// Profiles:
//
// LoadProfile replaces the whole persistent document and then runs the
// delegates of every key that existed before or exists after, in key order.
//
// Concurrency:
// A Store is owned by a single goroutine and has no locks. Delegates run
// synchronously on that goroutine and may call back into the store. Other
// goroutines, such as a Watcher, communicate with the owner over channels.
package settings
