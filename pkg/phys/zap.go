package phys

import "go.uber.org/zap/zapcore"

var (
	_ zapcore.ObjectMarshaler = Quantity[SILength]{}
	_ zapcore.ObjectMarshaler = Scalar[Along, SILength]{}
	_ zapcore.ObjectMarshaler = Vec2D[Along, Across, SILength]{}
	_ zapcore.ObjectMarshaler = Vec3D[Along, Across, Upward, SILength]{}
)

func (q Quantity[U]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat32("value", q.value)
	enc.AddString("unit", q.Abbreviation())
	return nil
}

func (s Scalar[A, U]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("axis", s.AxisName())
	return s.Val.MarshalLogObject(enc)
}

func (v Vec2D[A1, A2, U]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat32(v.X.AxisName(), v.X.Val.value)
	enc.AddFloat32(v.Y.AxisName(), v.Y.Val.value)
	enc.AddString("unit", v.UnitAbbreviation())
	return nil
}

func (v Vec3D[A1, A2, A3, U]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat32(v.X.AxisName(), v.X.Val.value)
	enc.AddFloat32(v.Y.AxisName(), v.Y.Val.value)
	enc.AddFloat32(v.Z.AxisName(), v.Z.Val.value)
	enc.AddString("unit", v.UnitAbbreviation())
	return nil
}
