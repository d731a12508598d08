package phys

import (
	"errors"
	"fmt"
)

var (
	// ErrAxisCollision is matched by every *AxisCollisionError.
	ErrAxisCollision = errors.New("axes need to be different")
	// ErrSystemMismatch is returned when a vector mixes axes of different coordinate systems.
	ErrSystemMismatch = errors.New("axes belong to different coordinate systems")
)

// AxisCollisionError describes two vector components lying on the same axis.
type AxisCollisionError struct {
	Axis   string
	First  int
	Second int
}

func (e *AxisCollisionError) Error() string {
	return fmt.Sprintf("components %d and %d both lie on axis %q: %s", e.First, e.Second, e.Axis, ErrAxisCollision)
}

func (e *AxisCollisionError) Unwrap() error {
	return ErrAxisCollision
}

func checkAxes(axes ...Axis) error {
	for i := 0; i < len(axes); i++ {
		for j := i + 1; j < len(axes); j++ {
			if axes[i].Name() == axes[j].Name() {
				return &AxisCollisionError{Axis: axes[i].Name(), First: i, Second: j}
			}
			if si, sj := axes[i].System().Name(), axes[j].System().Name(); si != sj {
				return fmt.Errorf("%w: %q and %q", ErrSystemMismatch, si, sj)
			}
		}
	}
	return nil
}

// TryPlane builds a Vec2D from two scalars on different axes.
func TryPlane[A1, A2 Axis, U Unit](x Scalar[A1, U], y Scalar[A2, U]) (Vec2D[A1, A2, U], error) {
	v := Vec2D[A1, A2, U]{X: x, Y: y}
	return v, v.Validate()
}

// Plane builds a Vec2D from two scalars on different axes. Axes are kept in
// argument order, so Plane(lat, lon) is not a PlanePosition.
//
// Go cannot compare axis names during type checking: a collision panics here
// and is reported before runtime only by cmd/axischeck.
func Plane[A1, A2 Axis, U Unit](x Scalar[A1, U], y Scalar[A2, U]) Vec2D[A1, A2, U] {
	v, err := TryPlane(x, y)
	if err != nil {
		panic(err)
	}
	return v
}

// TryVolume builds a Vec3D from three scalars on pairwise different axes.
func TryVolume[A1, A2, A3 Axis, U Unit](x Scalar[A1, U], y Scalar[A2, U], z Scalar[A3, U]) (Vec3D[A1, A2, A3, U], error) {
	v := Vec3D[A1, A2, A3, U]{X: x, Y: y, Z: z}
	return v, v.Validate()
}

// Volume is TryVolume that panics on an axis collision.
func Volume[A1, A2, A3 Axis, U Unit](x Scalar[A1, U], y Scalar[A2, U], z Scalar[A3, U]) Vec3D[A1, A2, A3, U] {
	v, err := TryVolume(x, y, z)
	if err != nil {
		panic(err)
	}
	return v
}

// TryExtend builds a Vec3D from a planar vector and a scalar on a third axis.
func TryExtend[A1, A2, A3 Axis, U Unit](p Vec2D[A1, A2, U], z Scalar[A3, U]) (Vec3D[A1, A2, A3, U], error) {
	return TryVolume(p.X, p.Y, z)
}

// Extend is TryExtend that panics on an axis collision.
func Extend[A1, A2, A3 Axis, U Unit](p Vec2D[A1, A2, U], z Scalar[A3, U]) Vec3D[A1, A2, A3, U] {
	v, err := TryExtend(p, z)
	if err != nil {
		panic(err)
	}
	return v
}

// Additive is satisfied by every Quantity, Scalar, Vec2D and Vec3D instantiation.
type Additive[T any] interface {
	Add(T) T
	Neg() T
}

// Add sums two values of the same kind, unit and axes. Operands of different
// units or axes do not satisfy the type parameter and fail to compile.
func Add[T Additive[T]](a, b T) T {
	return a.Add(b)
}

// Sub is Add with the second operand negated.
func Sub[T Additive[T]](a, b T) T {
	return a.Add(b.Neg())
}

func Neg[T Additive[T]](a T) T {
	return a.Neg()
}

// Sum adds all terms, returning the zero value for no terms.
func Sum[T Additive[T]](terms ...T) T {
	var acc T
	for _, t := range terms {
		acc = acc.Add(t)
	}
	return acc
}
