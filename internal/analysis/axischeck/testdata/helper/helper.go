package helper

import "github.com/zeusync/physunits/pkg/phys"

func Lift[A1, A2 phys.Axis](p phys.Vec2D[A1, A2, phys.SILength], z phys.Altitude) phys.Vec3D[A1, A2, phys.Upward, phys.SILength] {
	return phys.Extend(p, z)
}

func Raise[A1, A2 phys.Axis](p phys.Vec2D[A1, A2, phys.SILength], z phys.Altitude) phys.Vec3D[A1, A2, phys.Upward, phys.SILength] {
	return Lift(p, z)
}

func Stand() phys.VolumePosition {
	lon := phys.Longitude{Val: phys.Meters(1)}
	lat := phys.Latitude{Val: phys.Meters(2)}
	return Lift(phys.Plane(lon, lat), phys.Altitude{})
}

func Topple() {
	lat := phys.Latitude{Val: phys.Meters(2)}
	alt := phys.Altitude{Val: phys.Meters(3)}
	_ = Lift(phys.Plane(lat, alt), alt)
}

func ToppleTwice() {
	lat := phys.Latitude{Val: phys.Meters(2)}
	alt := phys.Altitude{Val: phys.Meters(3)}
	_ = Raise(phys.Plane(lat, alt), alt)
}
