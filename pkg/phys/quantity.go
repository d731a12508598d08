package phys

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Base is the floating point representation shared by every physical value.
type Base = float32

// Number is any numeric source a quantity can be created from.
type Number interface {
	constraints.Integer | constraints.Float
}

// Quantity is a real value measured in unit U. The unit lives only in the
// type, so quantities of different units cannot be mixed.
type Quantity[U Unit] struct {
	value Base
}

// New creates a quantity of unit U from any integer or floating point value.
// TODO: range-check float64 and 64-bit integer sources that do not fit in Base.
func New[U Unit, N Number](v N) Quantity[U] {
	return Quantity[U]{value: Base(v)}
}

// Value returns the raw value without its unit.
func (q Quantity[U]) Value() Base {
	return q.value
}

// Float64 returns the raw value widened to float64.
func (q Quantity[U]) Float64() float64 {
	return float64(q.value)
}

// Abbreviation returns the unit abbreviation, e.g. "[m/s]".
func (q Quantity[U]) Abbreviation() string {
	return unitOf[U]().Abbreviation()
}

func (q Quantity[U]) Pos() Quantity[U] {
	return q
}

func (q Quantity[U]) Neg() Quantity[U] {
	return Quantity[U]{value: -q.value}
}

func (q Quantity[U]) Add(o Quantity[U]) Quantity[U] {
	return Quantity[U]{value: q.value + o.value}
}

func (q Quantity[U]) Sub(o Quantity[U]) Quantity[U] {
	return q.Add(o.Neg())
}

// Mul scales the quantity by a dimensionless factor.
func (q Quantity[U]) Mul(m float64) Quantity[U] {
	return Quantity[U]{value: Base(float64(q.value) * m)}
}

// Div divides the quantity by a dimensionless divisor.
func (q Quantity[U]) Div(d float64) Quantity[U] {
	return Quantity[U]{value: Base(float64(q.value) / d)}
}

func (q Quantity[U]) Equal(o Quantity[U]) bool {
	return q.value == o.value
}

// ApproxEqual reports whether both values differ by at most eps.
func (q Quantity[U]) ApproxEqual(o Quantity[U], eps float64) bool {
	return math.Abs(float64(q.value)-float64(o.value)) <= eps
}

// String formats the value followed by its unit, e.g. "12.5[m]".
func (q Quantity[U]) String() string {
	return strconv.FormatFloat(float64(q.value), 'g', -1, 32) + q.Abbreviation()
}
