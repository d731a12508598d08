//go:build !noguards

package memguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type bodyCanary struct{}

func (bodyCanary) Value() uint32 { return 0x5EED1234 }

type body struct {
	guard Guard[uint32, bodyCanary]
	mass  float32
}

func newBody(mass float32) *body {
	b := &body{mass: mass}
	b.guard.Arm()
	return b
}

type wideCanary struct{}

func (wideCanary) Value() uint64 { return Derive[uint64]("memguard.wide") }
func (wideCanary) Shift() uint   { return 8 }

func TestGuard_Lifecycle(t *testing.T) {
	var zero body
	assert.False(t, zero.guard.IsConstructed())

	b := newBody(5.5)
	assert.True(t, b.guard.IsConstructed())
	assert.False(t, b.guard.IsDestructed())
	assert.True(t, b.guard.Valid())

	b.guard.Destroy()
	assert.False(t, b.guard.IsConstructed())
	assert.True(t, b.guard.IsDestructed())
	assert.Equal(t, uint32(0x5EED1234>>DefaultShift), b.guard.value)
}

func TestGuard_Overwritten(t *testing.T) {
	b := newBody(1)
	b.guard.value = 0x12345678

	assert.False(t, b.guard.IsConstructed())
	assert.False(t, b.guard.IsDestructed())
	assert.PanicsWithValue(t, ErrNotConstructed, func() { b.guard.Destroy() })
}

func TestGuard_DoubleDestroyPanics(t *testing.T) {
	b := newBody(1)
	b.guard.Destroy()
	assert.Panics(t, func() { b.guard.Destroy() })
}

func TestGuard_NilOwner(t *testing.T) {
	var g *Guard[uint32, bodyCanary]
	assert.False(t, g.Valid())
}

func TestGuard_CustomShift(t *testing.T) {
	var g Guard[uint64, wideCanary]
	g.Arm()
	g.Destroy()
	assert.Equal(t, wideCanary{}.Value()>>8, g.value)
	assert.True(t, g.IsDestructed())
}

func TestDerive(t *testing.T) {
	a := Derive[uint32]("phys.Ledger")
	assert.Equal(t, a, Derive[uint32]("phys.Ledger"))
	assert.NotEqual(t, a, Derive[uint32]("phys.Other"))
	assert.False(t, common(uint64(a)))

	for _, label := range []string{"", "a", "b", "c"} {
		assert.NotZero(t, Derive[uint8](label))
	}
	assert.True(t, Enabled)
}
