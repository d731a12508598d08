// Package physics places and moves objects in the flat simulation frame.
package physics

import "github.com/zeusync/physunits/pkg/phys"

// Transform is a placement in the flat simulation frame.
type Transform struct {
	Pos phys.VolumePosition
}

func At(pos phys.VolumePosition) Transform {
	return Transform{Pos: pos}
}

// Ground projects the position onto the ground plane.
func (t Transform) Ground() phys.PlanePosition {
	return t.Pos.Plane()
}

// Moved returns t displaced by d.
func (t Transform) Moved(d phys.VolumePosition) Transform {
	return Transform{Pos: phys.Add(t.Pos, d)}
}

// Distance is the straight-line distance between two transforms.
func Distance(a, b Transform) phys.DistSI {
	return phys.Sub(b.Pos, a.Pos).Norm()
}

// GroundDistance is Distance with altitude ignored.
func GroundDistance(a, b Transform) phys.DistSI {
	return phys.Sub(b.Ground(), a.Ground()).Norm()
}

// Path follows an object leg by leg from its start.
type Path struct {
	start  Transform
	end    Transform
	length phys.DistSI
}

func NewPath(start Transform) *Path {
	return &Path{start: start, end: start}
}

// Walk moves the end of the path by leg.
func (p *Path) Walk(leg phys.VolumePosition) {
	p.end = p.end.Moved(leg)
	p.length = phys.Add(p.length, leg.Norm())
}

// WalkGround walks a leg that keeps the altitude.
func (p *Path) WalkGround(leg phys.PlanePosition) {
	p.Walk(phys.Extend(leg, phys.Altitude{}))
}

// Climb walks straight up, or down for a negative altitude.
func (p *Path) Climb(alt phys.Altitude) {
	p.Walk(phys.Volume(phys.Longitude{}, phys.Latitude{}, alt))
}

func (p *Path) Start() Transform { return p.start }
func (p *Path) End() Transform   { return p.end }

// Length is the distance travelled along the legs, not between the ends.
func (p *Path) Length() phys.DistSI { return p.length }
