// FILE: lixenwraith/settings/registry_test.go
package settings

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelegateOrder(t *testing.T) {
	s, _ := newMemStore(t)

	var order []string
	s.AddDelegate("k", func() { order = append(order, "first") })
	s.AddDelegate("k", func() { order = append(order, "second") })
	s.AddDelegate("other", func() { order = append(order, "other") })

	Set(s, "k", 1)
	assert.Equal(t, []string{"first", "second"}, order)

	order = nil
	Set(s, "k", 1)
	assert.Equal(t, []string{"first", "second"}, order, "delegates run even when the value is unchanged")
}

func TestDelegateSeesNewValue(t *testing.T) {
	s, _ := newMemStore(t)

	var got bool
	s.AddDelegate("bypass.copybypass", func() {
		got, _ = GetOr(s, "bypass.copybypass", false)
	})

	Set(s, "bypass.copybypass", true)
	assert.True(t, got)
}

func TestUnsubscribe(t *testing.T) {
	s, _ := newMemStore(t)

	calls := 0
	sub := s.AddDelegate("k", func() { calls++ })
	assert.Equal(t, "k", sub.Key())
	assert.True(t, sub.Active())
	assert.Equal(t, 1, s.Delegates("k"))

	sub.Unsubscribe()
	sub.Unsubscribe()
	assert.False(t, sub.Active())
	assert.Equal(t, 0, s.Delegates("k"))

	Set(s, "k", 1)
	assert.Equal(t, 0, calls)
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	s, _ := newMemStore(t)

	var order []string
	var second *Subscription
	s.AddDelegate("k", func() {
		order = append(order, "first")
		second.Unsubscribe()
	})
	second = s.AddDelegate("k", func() { order = append(order, "second") })
	s.AddDelegate("k", func() { order = append(order, "third") })

	Set(s, "k", true)
	assert.Equal(t, []string{"first", "third"}, order)
	assert.Equal(t, 2, s.Delegates("k"))
}

func TestAddDuringDispatch(t *testing.T) {
	s, _ := newMemStore(t)

	calls := 0
	s.AddDelegate("k", func() {
		s.AddDelegate("k", func() { calls++ })
	})

	Set(s, "k", 1)
	assert.Equal(t, 0, calls, "delegates added mid-dispatch wait for the next set")

	Set(s, "k", 2)
	assert.Equal(t, 1, calls)
}

func TestReentrantSet(t *testing.T) {
	s, _ := newMemStore(t)

	s.AddDelegate("celsius", func() {
		c, _ := Get[float64](s, "celsius")
		Set(s, "fahrenheit", c*9/5+32)
	})

	var f float64
	s.AddDelegate("fahrenheit", func() {
		f, _ = Get[float64](s, "fahrenheit")
	})

	Set(s, "celsius", 100.0)
	assert.Equal(t, 212.0, f)
}

type widget struct {
	label *string
	hits  *int
}

func TestWeakOwnerDelegate(t *testing.T) {
	s, _ := newMemStore(t)

	hits := 0
	label := "toggle"
	w := &widget{label: &label, hits: &hits}

	sub := AddDelegateFor(s, w, "k", func(owner *widget) { *owner.hits++ })
	Set(s, "k", 1)
	assert.Equal(t, 1, hits)
	runtime.KeepAlive(w)

	w = nil
	runtime.GC()
	runtime.GC()

	Set(s, "k", 2)
	assert.Equal(t, 1, hits)
	assert.False(t, sub.Active(), "collected owner's delegate is pruned")
	assert.Equal(t, 0, s.Delegates("k"))
}

func TestRegistryDispatchCounts(t *testing.T) {
	r := NewRegistry()
	r.Add("a", func() {})
	r.Add("a", func() {})

	ran, pruned := r.Dispatch("a")
	assert.Equal(t, 2, ran)
	assert.Equal(t, 0, pruned)

	ran, pruned = r.Dispatch("missing")
	require.Zero(t, ran)
	require.Zero(t, pruned)
}
