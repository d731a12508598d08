package phys

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Quantities and scalars are encoded as plain numbers; the unit and axis are
// implied by the Go type. Vectors are mappings keyed by axis name.

func (q Quantity[U]) MarshalYAML() (any, error) {
	return float64(q.value), nil
}

func (q *Quantity[U]) UnmarshalYAML(node *yaml.Node) error {
	var v float64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("decode %s quantity: %w", q.Abbreviation(), err)
	}
	q.value = Base(v)
	return nil
}

func (s Scalar[A, U]) MarshalYAML() (any, error) {
	return s.Val.MarshalYAML()
}

func (s *Scalar[A, U]) UnmarshalYAML(node *yaml.Node) error {
	return s.Val.UnmarshalYAML(node)
}

func (v Vec2D[A1, A2, U]) MarshalYAML() (any, error) {
	return map[string]float64{
		v.X.AxisName(): v.X.Val.Float64(),
		v.Y.AxisName(): v.Y.Val.Float64(),
	}, nil
}

func (v *Vec2D[A1, A2, U]) UnmarshalYAML(node *yaml.Node) error {
	names := v.AxisNames()
	values, err := decodeAxes(node, names[:])
	if err != nil {
		return err
	}
	v.X.Val.value, v.Y.Val.value = values[0], values[1]
	return nil
}

func (v Vec3D[A1, A2, A3, U]) MarshalYAML() (any, error) {
	return map[string]float64{
		v.X.AxisName(): v.X.Val.Float64(),
		v.Y.AxisName(): v.Y.Val.Float64(),
		v.Z.AxisName(): v.Z.Val.Float64(),
	}, nil
}

func (v *Vec3D[A1, A2, A3, U]) UnmarshalYAML(node *yaml.Node) error {
	names := v.AxisNames()
	values, err := decodeAxes(node, names[:])
	if err != nil {
		return err
	}
	v.X.Val.value, v.Y.Val.value, v.Z.Val.value = values[0], values[1], values[2]
	return nil
}

// decodeAxes reads a mapping of axis name to number. Missing axes default to
// zero; unknown keys are rejected.
func decodeAxes(node *yaml.Node, axes []string) ([]Base, error) {
	raw := make(map[string]float64, len(axes))
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode vector: %w", err)
	}
	out := make([]Base, len(axes))
	for i, name := range axes {
		out[i] = Base(raw[name])
		delete(raw, name)
	}
	for key := range raw {
		return nil, fmt.Errorf("decode vector: unknown axis %q at line %d, expected one of %v", key, node.Line, axes)
	}
	return out, nil
}
