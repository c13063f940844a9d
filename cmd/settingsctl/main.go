// FILE: lixenwraith/settings/cmd/settingsctl/main.go

// Command settingsctl inspects and edits a settings store and its profiles.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
