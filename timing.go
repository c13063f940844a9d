// FILE: lixenwraith/settings/timing.go
package settings

import "time"

// Core timing constants for file watching.
const (
	MinDebounce     = 10 * time.Millisecond  // Hard floor for change coalescence
	DefaultDebounce = 200 * time.Millisecond // File change coalescence period
	ShutdownTimeout = 100 * time.Millisecond // Graceful watcher termination window
)

// DefaultEventBuffer is the capacity of a watcher's event channel.
const DefaultEventBuffer = 16
