// FILE: lixenwraith/settings/registry.go
package settings

import (
	"slices"
	"weak"
)

// Delegate is called after the value of the key it was registered for is set.
type Delegate func()

// Subscription is the handle returned when a delegate is registered.
type Subscription struct {
	id       uint64
	key      string
	call     func() bool // false once the delegate's owner is gone
	registry *Registry
	removed  bool
}

// Key returns the key the subscription listens on.
func (s *Subscription) Key() string {
	return s.key
}

// Active reports whether the subscription is still registered.
func (s *Subscription) Active() bool {
	return s != nil && !s.removed
}

// Unsubscribe removes the delegate. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.removed {
		return
	}
	s.registry.remove(s)
}

// Registry keeps, per key, the delegates to run when that key is set.
// It is not safe for concurrent use.
type Registry struct {
	subs   map[string][]*Subscription
	nextID uint64
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{subs: make(map[string][]*Subscription)}
}

// Add appends fn to the delegates of key.
func (r *Registry) Add(key string, fn Delegate) *Subscription {
	return r.add(key, func() bool {
		fn()
		return true
	})
}

// addWeak registers fn against owner without keeping owner alive.
// fn must not capture owner itself.
func addWeak[O any](r *Registry, owner *O, key string, fn func(*O)) *Subscription {
	wp := weak.Make(owner)
	return r.add(key, func() bool {
		o := wp.Value()
		if o == nil {
			return false
		}
		fn(o)
		return true
	})
}

func (r *Registry) add(key string, call func() bool) *Subscription {
	r.nextID++
	sub := &Subscription{
		id:       r.nextID,
		key:      key,
		call:     call,
		registry: r,
	}
	r.subs[key] = append(r.subs[key], sub)
	return sub
}

func (r *Registry) remove(sub *Subscription) {
	sub.removed = true
	list := slices.DeleteFunc(r.subs[sub.key], func(s *Subscription) bool {
		return s.id == sub.id
	})
	if len(list) == 0 {
		delete(r.subs, sub.key)
		return
	}
	r.subs[sub.key] = list
}

// Count returns the number of delegates registered for key.
func (r *Registry) Count(key string) int {
	return len(r.subs[key])
}

// Dispatch runs the delegates of key in registration order on the calling
// goroutine and returns how many ran. Delegates may re-enter the store; the
// list is snapshotted first, and a delegate unsubscribed during the dispatch
// is skipped. Delegates whose weak owner was collected are pruned.
func (r *Registry) Dispatch(key string) (ran, pruned int) {
	list := r.subs[key]
	if len(list) == 0 {
		return 0, 0
	}
	snapshot := slices.Clone(list)
	for _, sub := range snapshot {
		if sub.removed {
			continue
		}
		if !sub.call() {
			r.remove(sub)
			pruned++
			continue
		}
		ran++
	}
	return ran, pruned
}
