package phys

import "math"

// Scalar is a quantity pinned to axis A, e.g. "this length is the X length".
type Scalar[A Axis, U Unit] struct {
	Val Quantity[U]
}

// On attaches the axis of the given tag to a bare quantity. It is the
// sanctioned way to produce a Scalar; the tag value itself carries no state.
func On[A Axis, U Unit](q Quantity[U], _ A) Scalar[A, U] {
	return Scalar[A, U]{Val: q}
}

// Quantity returns the underlying quantity without its axis.
func (s Scalar[A, U]) Quantity() Quantity[U] {
	return s.Val
}

// Value returns the raw value without unit and axis.
func (s Scalar[A, U]) Value() Base {
	return s.Val.value
}

// UnitAbbreviation returns the unit abbreviation of the scalar.
func (s Scalar[A, U]) UnitAbbreviation() string {
	return s.Val.Abbreviation()
}

// AxisName returns the name of the scalar's axis.
func (s Scalar[A, U]) AxisName() string {
	return axisOf[A]().Name()
}

func (s Scalar[A, U]) Pos() Scalar[A, U] {
	return s
}

func (s Scalar[A, U]) Neg() Scalar[A, U] {
	return Scalar[A, U]{Val: s.Val.Neg()}
}

func (s Scalar[A, U]) Add(o Scalar[A, U]) Scalar[A, U] {
	return Scalar[A, U]{Val: s.Val.Add(o.Val)}
}

func (s Scalar[A, U]) Sub(o Scalar[A, U]) Scalar[A, U] {
	return s.Add(o.Neg())
}

func (s Scalar[A, U]) Mul(m float64) Scalar[A, U] {
	return Scalar[A, U]{Val: s.Val.Mul(m)}
}

func (s Scalar[A, U]) Div(d float64) Scalar[A, U] {
	return Scalar[A, U]{Val: s.Val.Div(d)}
}

// Abs returns the scalar with a non-negative value.
func (s Scalar[A, U]) Abs() Scalar[A, U] {
	return Scalar[A, U]{Val: Quantity[U]{value: Base(math.Abs(float64(s.Val.value)))}}
}

func (s Scalar[A, U]) Equal(o Scalar[A, U]) bool {
	return s.Val.Equal(o.Val)
}

func (s Scalar[A, U]) ApproxEqual(o Scalar[A, U], eps float64) bool {
	return s.Val.ApproxEqual(o.Val, eps)
}

// String formats the scalar as "<axis>=<value><unit>", e.g. "X=1[m]".
func (s Scalar[A, U]) String() string {
	return s.AxisName() + "=" + s.Val.String()
}
