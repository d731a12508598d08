//go:build noguards

package memguard

import "golang.org/x/exp/constraints"

const Enabled = false

// Guard is compiled out: it occupies no space and always reports constructed.
type Guard[T constraints.Unsigned, C Canary[T]] struct{}

func (g *Guard[T, C]) Arm()                {}
func (g *Guard[T, C]) Destroy()            {}
func (g *Guard[T, C]) IsConstructed() bool { return true }
func (g *Guard[T, C]) IsDestructed() bool  { return false }

// Valid only checks for nil, like the guard-less owner would.
func (g *Guard[T, C]) Valid() bool { return g != nil }
