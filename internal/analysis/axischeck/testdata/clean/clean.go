package clean

import "github.com/zeusync/physunits/pkg/phys"

func Lift[A1, A2 phys.Axis](p phys.Vec2D[A1, A2, phys.SILength], z phys.Altitude) phys.Vec3D[A1, A2, phys.Upward, phys.SILength] {
	return phys.Extend(p, z)
}

func Position() phys.VolumePosition {
	lon := phys.On(phys.Meters(1), phys.IsAlong)
	lat := phys.On(phys.Meters(2), phys.IsAcross)
	alt := phys.On(phys.Meters(3), phys.IsUpward)

	flat := phys.Plane(lon, lat)
	_ = phys.Plane(lat, alt)
	return phys.Add(Lift(flat, alt), phys.Volume(lon, lat, alt))
}
