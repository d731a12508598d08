package collide

import "github.com/zeusync/physunits/pkg/phys"

func Stacked() phys.Vec2D[phys.Upward, phys.Upward, phys.SILength] {
	alt := phys.Altitude{Val: phys.Meters(1)}
	return phys.Plane(alt, alt)
}
