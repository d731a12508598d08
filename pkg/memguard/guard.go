//go:build !noguards

package memguard

import "golang.org/x/exp/constraints"

// Enabled reports whether guards are compiled in.
const Enabled = true

// Guard is a canary field. Embed it in the guarded object and Arm it in the
// object's constructor; the zero value reports not constructed.
type Guard[T constraints.Unsigned, C Canary[T]] struct {
	value T
}

// Arm stores the canary value.
func (g *Guard[T, C]) Arm() {
	var c C
	g.value = c.Value()
}

// Destroy shifts the canary, marking the owner as destroyed. It panics with
// ErrNotConstructed if the guard did not hold its canary.
func (g *Guard[T, C]) Destroy() {
	if !g.IsConstructed() {
		panic(ErrNotConstructed)
	}
	var c C
	g.value >>= shiftOf[T](c)
}

// IsConstructed reports whether the guard holds its canary.
func (g *Guard[T, C]) IsConstructed() bool {
	var c C
	return g.value == c.Value()
}

// IsDestructed reports whether the guard holds the shifted canary left by
// Destroy, as opposed to a value written by something else.
func (g *Guard[T, C]) IsDestructed() bool {
	var c C
	return g.value == c.Value()>>shiftOf[T](c)
}

// Valid reports whether g is non-nil and constructed. It is safe to call on
// a guard reached through a nil owner.
func (g *Guard[T, C]) Valid() bool {
	return g != nil && g.IsConstructed()
}
