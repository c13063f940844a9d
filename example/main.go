// FILE: lixenwraith/settings/example/main.go
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/settings"
)

// Defaults mirrors the settings a small GUI tool would expose.
type Defaults struct {
	Bypass struct {
		CopyBypass bool `toml:"copybypass"`
	} `toml:"bypass"`
	Volume int    `toml:"volume"`
	Theme  string `toml:"theme"`
}

// toggle stands in for a UI control that follows a setting.
type toggle struct {
	name    string
	checked bool
}

func main() {
	dir, err := os.MkdirTemp("", "settings-example-")
	if err != nil {
		log.Fatalf("failed to create temp dir: %v", err)
	}
	defer func() {
		log.Println("---")
		log.Println("Cleaning up...")
		os.RemoveAll(dir)
	}()

	// =========================================================================
	// PART 1: OPEN WITH DEFAULTS
	// =========================================================================
	log.Println("---")
	log.Println("PART 1: Opening store with defaults...")

	defaults := Defaults{Volume: 5, Theme: "light"}
	store, err := settings.NewBuilder().
		WithFile(filepath.Join(dir, "settings.json")).
		WithDefaults("", defaults).
		WithValidator(settings.Require("volume", "theme")).
		Build()
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()
	log.Print(store.Debug())

	// =========================================================================
	// PART 2: DELEGATES
	// A control registered weakly stops receiving updates once collected.
	// =========================================================================
	log.Println("---")
	log.Println("PART 2: Registering delegates...")

	box := &toggle{name: "copy bypass"}
	settings.AddDelegateFor(store, box, "bypass.copybypass", func(t *toggle) {
		t.checked, _ = settings.GetOr(store, "bypass.copybypass", false)
		log.Printf("   %s checked=%v", t.name, t.checked)
	})
	sub := store.AddDelegate("volume", func() {
		v, _ := settings.GetOr(store, "volume", 0)
		log.Printf("   volume is now %d", v)
	})

	settings.Set(store, "bypass.copybypass", true)
	settings.Set(store, "volume", 8)
	sub.Unsubscribe()
	settings.Set(store, "volume", 9)

	// =========================================================================
	// PART 3: PROFILES
	// =========================================================================
	log.Println("---")
	log.Println("PART 3: Saving and loading profiles...")

	if err := store.SaveProfile("loud"); err != nil {
		log.Fatalf("failed to save profile: %v", err)
	}
	settings.Set(store, "volume", 1)
	settings.Set(store, "bypass.copybypass", false)
	if err := store.SaveProfile("quiet"); err != nil {
		log.Fatalf("failed to save profile: %v", err)
	}

	names, err := store.Profiles()
	if err != nil {
		log.Fatalf("failed to list profiles: %v", err)
	}
	log.Printf("   profiles: %v", names)

	if err := store.LoadProfile("loud"); err != nil {
		log.Fatalf("failed to load profile: %v", err)
	}
	volume, _ := settings.GetOr(store, "volume", 0)
	log.Printf("   after loading 'loud': volume=%d, toggle checked=%v", volume, box.checked)

	// =========================================================================
	// PART 4: TRANSIENT VALUES AND SCAN
	// =========================================================================
	log.Println("---")
	log.Println("PART 4: Transient values and struct scanning...")

	settings.SetTemp(store, "session.started", true)
	var current Defaults
	if err := store.Scan("", &current); err != nil {
		log.Fatalf("failed to scan: %v", err)
	}
	log.Printf("   scanned: %+v", current)
	log.Printf("   transient keys (not saved): %v", store.TempKeys())
}
