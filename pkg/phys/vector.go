package phys

import (
	"math"
	"strings"
)

// Vec2D combines two scalars of the same unit lying on different axes.
//
// A composite literal bypasses the axis check performed by Plane; use
// Validate, or run cmd/axischeck, when building vectors that way.
type Vec2D[A1, A2 Axis, U Unit] struct {
	X Scalar[A1, U]
	Y Scalar[A2, U]
}

// UnitAbbreviation returns the unit shared by both components.
func (v Vec2D[A1, A2, U]) UnitAbbreviation() string {
	return unitOf[U]().Abbreviation()
}

// AxisNames returns the axis names in component order.
func (v Vec2D[A1, A2, U]) AxisNames() [2]string {
	return [2]string{v.X.AxisName(), v.Y.AxisName()}
}

// Validate reports an *AxisCollisionError when both axes share a name, and an
// error wrapping ErrSystemMismatch when they belong to different coordinate
// systems.
func (v Vec2D[A1, A2, U]) Validate() error {
	return checkAxes(axisOf[A1](), axisOf[A2]())
}

func (v Vec2D[A1, A2, U]) Pos() Vec2D[A1, A2, U] {
	return v
}

func (v Vec2D[A1, A2, U]) Neg() Vec2D[A1, A2, U] {
	return Vec2D[A1, A2, U]{X: v.X.Neg(), Y: v.Y.Neg()}
}

func (v Vec2D[A1, A2, U]) Add(o Vec2D[A1, A2, U]) Vec2D[A1, A2, U] {
	return Vec2D[A1, A2, U]{X: v.X.Add(o.X), Y: v.Y.Add(o.Y)}
}

func (v Vec2D[A1, A2, U]) Sub(o Vec2D[A1, A2, U]) Vec2D[A1, A2, U] {
	return v.Add(o.Neg())
}

// Scale multiplies every component by a dimensionless factor.
func (v Vec2D[A1, A2, U]) Scale(m float64) Vec2D[A1, A2, U] {
	return Vec2D[A1, A2, U]{X: v.X.Mul(m), Y: v.Y.Mul(m)}
}

// Swap returns the same components in reversed axis order. The result is a
// different type: PlanePosition swapped is not a PlanePosition.
func (v Vec2D[A1, A2, U]) Swap() Vec2D[A2, A1, U] {
	return Vec2D[A2, A1, U]{X: v.Y, Y: v.X}
}

// Norm returns the Euclidean length of the vector in its own unit.
func (v Vec2D[A1, A2, U]) Norm() Quantity[U] {
	return Quantity[U]{value: Base(math.Hypot(v.X.Val.Float64(), v.Y.Val.Float64()))}
}

func (v Vec2D[A1, A2, U]) Equal(o Vec2D[A1, A2, U]) bool {
	return v.X.Equal(o.X) && v.Y.Equal(o.Y)
}

func (v Vec2D[A1, A2, U]) ApproxEqual(o Vec2D[A1, A2, U], eps float64) bool {
	return v.X.ApproxEqual(o.X, eps) && v.Y.ApproxEqual(o.Y, eps)
}

func (v Vec2D[A1, A2, U]) String() string {
	return "(" + v.X.String() + ", " + v.Y.String() + ")"
}

// Vec3D combines three scalars of the same unit lying on pairwise different axes.
//
// As with Vec2D, a composite literal bypasses the check performed by Volume.
type Vec3D[A1, A2, A3 Axis, U Unit] struct {
	X Scalar[A1, U]
	Y Scalar[A2, U]
	Z Scalar[A3, U]
}

func (v Vec3D[A1, A2, A3, U]) UnitAbbreviation() string {
	return unitOf[U]().Abbreviation()
}

func (v Vec3D[A1, A2, A3, U]) AxisNames() [3]string {
	return [3]string{v.X.AxisName(), v.Y.AxisName(), v.Z.AxisName()}
}

func (v Vec3D[A1, A2, A3, U]) Validate() error {
	return checkAxes(axisOf[A1](), axisOf[A2](), axisOf[A3]())
}

// Plane drops the third component.
func (v Vec3D[A1, A2, A3, U]) Plane() Vec2D[A1, A2, U] {
	return Vec2D[A1, A2, U]{X: v.X, Y: v.Y}
}

func (v Vec3D[A1, A2, A3, U]) Pos() Vec3D[A1, A2, A3, U] {
	return v
}

func (v Vec3D[A1, A2, A3, U]) Neg() Vec3D[A1, A2, A3, U] {
	return Vec3D[A1, A2, A3, U]{X: v.X.Neg(), Y: v.Y.Neg(), Z: v.Z.Neg()}
}

func (v Vec3D[A1, A2, A3, U]) Add(o Vec3D[A1, A2, A3, U]) Vec3D[A1, A2, A3, U] {
	return Vec3D[A1, A2, A3, U]{X: v.X.Add(o.X), Y: v.Y.Add(o.Y), Z: v.Z.Add(o.Z)}
}

func (v Vec3D[A1, A2, A3, U]) Sub(o Vec3D[A1, A2, A3, U]) Vec3D[A1, A2, A3, U] {
	return v.Add(o.Neg())
}

func (v Vec3D[A1, A2, A3, U]) Scale(m float64) Vec3D[A1, A2, A3, U] {
	return Vec3D[A1, A2, A3, U]{X: v.X.Mul(m), Y: v.Y.Mul(m), Z: v.Z.Mul(m)}
}

// Norm returns the Euclidean length of the vector in its own unit.
func (v Vec3D[A1, A2, A3, U]) Norm() Quantity[U] {
	x, y, z := v.X.Val.Float64(), v.Y.Val.Float64(), v.Z.Val.Float64()
	return Quantity[U]{value: Base(math.Sqrt(x*x + y*y + z*z))}
}

func (v Vec3D[A1, A2, A3, U]) Equal(o Vec3D[A1, A2, A3, U]) bool {
	return v.X.Equal(o.X) && v.Y.Equal(o.Y) && v.Z.Equal(o.Z)
}

func (v Vec3D[A1, A2, A3, U]) ApproxEqual(o Vec3D[A1, A2, A3, U], eps float64) bool {
	return v.X.ApproxEqual(o.X, eps) && v.Y.ApproxEqual(o.Y, eps) && v.Z.ApproxEqual(o.Z, eps)
}

func (v Vec3D[A1, A2, A3, U]) String() string {
	return "(" + strings.Join([]string{v.X.String(), v.Y.String(), v.Z.String()}, ", ") + ")"
}
