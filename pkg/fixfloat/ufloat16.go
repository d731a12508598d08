// Package fixfloat provides reduced-precision floating point storage types.
package fixfloat

import (
	"errors"
	"fmt"
	"math"
)

const (
	toInt   float32 = 2.0
	toFloat float32 = 1 / toInt
	maxRaw          = math.MaxUint16 - 1
)

// ErrOutOfRange is returned when a value cannot be represented by UFloat16.
var ErrOutOfRange = errors.New("value out of UFloat16 range")

// MaxUFloat16 is the largest value accepted by FromFloat.
const MaxUFloat16 = float32(maxRaw-1) * toFloat

// UFloat16 is a 2-byte non-negative float with a resolution of 0.5,
// covering [0, ~32767]. Values are truncated toward zero on assignment.
//
// The raw bits are stored inverted so that the zero value is unassigned.
type UFloat16 struct {
	inv uint16
}

// Unassigned returns the explicit unassigned value.
func Unassigned() UFloat16 {
	return UFloat16{}
}

// FromFloat converts v, rejecting negative, NaN and too large values.
func FromFloat(v float32) (UFloat16, error) {
	raw, err := discrete(v)
	if err != nil {
		return UFloat16{}, err
	}
	return UFloat16{inv: ^raw}, nil
}

// MustFromFloat is FromFloat that panics on out of range values.
func MustFromFloat(v float32) UFloat16 {
	f, err := FromFloat(v)
	if err != nil {
		panic(err)
	}
	return f
}

func discrete(v float32) (uint16, error) {
	scaled := v * toInt
	if math.IsNaN(float64(v)) || v < 0 || scaled >= maxRaw {
		return 0, fmt.Errorf("%w: %g", ErrOutOfRange, v)
	}
	return uint16(scaled), nil
}

// Set assigns v, leaving f untouched on error.
func (f *UFloat16) Set(v float32) error {
	raw, err := discrete(v)
	if err != nil {
		return err
	}
	f.inv = ^raw
	return nil
}

// AddFloat adds v to the current value. An unassigned value counts as its
// raw maximum, as the representation does not distinguish it from a number.
func (f *UFloat16) AddFloat(v float32) error {
	return f.Set(f.Float32() + v)
}

// Float32 widens the stored value.
func (f UFloat16) Float32() float32 {
	return toFloat * float32(^f.inv)
}

// Raw returns the discrete representation (value * 2).
func (f UFloat16) Raw() uint16 {
	return ^f.inv
}

// IsAssigned reports whether a value has been stored.
func (f UFloat16) IsAssigned() bool {
	return ^f.inv != math.MaxUint16
}

func (UFloat16) IsFloatingPoint() bool {
	return true
}

func (f UFloat16) String() string {
	if !f.IsAssigned() {
		return "unassigned"
	}
	return fmt.Sprintf("%g", f.Float32())
}
