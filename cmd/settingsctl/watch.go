// FILE: lixenwraith/settings/cmd/settingsctl/watch.go
package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/settings"
)

func (c *cli) watchCmd() *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch [key...]",
		Short: "Follow changes to the store and its profiles",
		Long: `Watch the store file and profile directory. On every change the store is
reloaded and the given keys are printed whenever their delegates fire. With
no keys every stored key is followed, including keys that first appear in a
later reload. Stops on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open()
			if err != nil {
				return err
			}

			p := newKeyPrinter(s, cmd.OutOrStdout(), len(args) == 0)
			for _, key := range args {
				p.track(key)
			}
			p.sync()

			opts := settings.DefaultWatchOptions()
			if debounce > 0 {
				opts.Debounce = debounce
			}
			w, err := s.Watch(opts)
			if err != nil {
				return err
			}
			defer w.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return follow(ctx, w, p)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", 0, "coalesce bursts of changes (default 200ms)")
	return cmd
}

// keyPrinter prints keys as their delegates fire. With all set it follows
// every stored key, registering keys that appear after a reload.
type keyPrinter struct {
	s       *settings.Store
	out     io.Writer
	all     bool
	tracked map[string]bool
}

func newKeyPrinter(s *settings.Store, out io.Writer, all bool) *keyPrinter {
	return &keyPrinter{s: s, out: out, all: all, tracked: make(map[string]bool)}
}

// track registers a printing delegate for key once.
func (p *keyPrinter) track(key string) bool {
	if p.tracked[key] {
		return false
	}
	p.tracked[key] = true
	p.s.AddDelegate(key, func() { p.print(key) })
	return true
}

// sync starts following stored keys not yet tracked. Their delegates missed
// the dispatch that introduced them, so their values are printed here.
func (p *keyPrinter) sync() {
	if !p.all {
		return
	}
	for _, key := range p.s.Keys() {
		if p.track(key) {
			p.print(key)
		}
	}
}

func (p *keyPrinter) print(key string) {
	if v, ok := p.s.Lookup(key); ok {
		fmt.Fprintf(p.out, "%s = %s\n", key, v)
	} else {
		fmt.Fprintf(p.out, "%s removed\n", key)
	}
}

// reload re-reads the store and picks up new keys.
func (p *keyPrinter) reload() {
	if err := p.s.Reload(); err != nil {
		fmt.Fprintf(p.out, "reload failed: %v\n", err)
		return
	}
	p.sync()
}

// follow runs the owner loop: watcher events arrive on a channel and the store
// is only touched from this goroutine.
func follow(ctx context.Context, w *settings.Watcher, p *keyPrinter) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			switch ev.Kind {
			case settings.EventStoreChanged:
				p.reload()
			case settings.EventProfilesChanged:
				names, err := p.s.Profiles()
				if err != nil {
					fmt.Fprintf(p.out, "listing profiles failed: %v\n", err)
					continue
				}
				fmt.Fprintf(p.out, "profiles: %v\n", names)
			}

		case err := <-w.Errors():
			fmt.Fprintf(p.out, "watch error: %v\n", err)
		}
	}
}
