// Package memguard provides a control field that lets an object report
// whether it is still validly constructed, or has been destroyed or
// overwritten.
//
// The field holds a canary value while its owner is alive and a shifted copy
// of it after Destroy. Reading anything else means the memory was clobbered.
// Building with the noguards tag turns every Guard into a zero-size no-op.
package memguard

import (
	"errors"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// DefaultShift is the number of bits the canary is shifted by on Destroy.
const DefaultShift = 4

// ErrNotConstructed is the panic value of Destroy on a guard that does not
// hold its canary.
var ErrNotConstructed = errors.New("memguard: guard is not constructed")

// Canary supplies the value a guard holds. Implementations are zero-size
// marker types, so the value costs no space in the guarded object.
type Canary[T constraints.Unsigned] interface {
	Value() T
}

// Shifter may be implemented by a Canary to override DefaultShift.
type Shifter interface {
	Shift() uint
}

// Derive computes a canary value from a label such as the guarded type's name.
// It avoids zero and the patterns commonly written by debuggers and allocators.
func Derive[T constraints.Unsigned](label string) T {
	for {
		v := T(xxhash.Sum64String(label))
		if !common(uint64(v)) {
			return v
		}
		label += "!"
	}
}

func common(v uint64) bool {
	switch v {
	case 0, 0xDEADBEEF, 0xBAADF00D, 0xFEEEFEEE, 0xCDCDCDCD, 0xCCCCCCCC, 0xABABABAB,
		0xFF, 0xFFFF, 0xFFFFFFFF, 0xFFFFFFFFFFFFFFFF:
		return true
	}
	return false
}

func shiftOf[T constraints.Unsigned, C Canary[T]](c C) uint {
	if s, ok := any(c).(Shifter); ok {
		return s.Shift()
	}
	return DefaultShift
}
