// Package phys provides typed containers for physical quantities.
//
// A value is first tagged with a unit (Quantity), then pinned to an axis
// (Scalar), and finally combined with values on other axes into planar or
// volume vectors (Vec2D, Vec3D). Unit mismatches are compile errors because
// every unit and axis is a distinct type parameter. Axis collisions inside a
// vector are reported statically by cmd/axischeck and asserted at runtime by
// the combinators.
package phys

// CoordinateSystem names a reference frame. Implementations are zero-size markers.
type CoordinateSystem interface {
	Name() string
}

// Axis names one coordinate direction (or pseudo-dimension) of a coordinate system.
type Axis interface {
	Name() string
	System() CoordinateSystem
}

// Unit names one physical unit by its display abbreviation.
type Unit interface {
	Abbreviation() string
}

// FlatSimulation is the typical simulation frame, with gravity acting along Z.
type FlatSimulation struct{}

func (FlatSimulation) Name() string { return "flat-Earth" }

// Geographical is the frame where gravity acts toward the Earth's center and
// zero on Z is sea level.
type Geographical struct{}

func (Geographical) Name() string { return "geographical" }

// EarthCentered has the Earth at its origin and the equatorial plane as XY.
type EarthCentered struct{}

func (EarthCentered) Name() string { return "geo-centered" }

// Solar has its origin at the Solar System's center of mass and the ecliptic as XY.
type Solar struct{}

func (Solar) Name() string { return "solar-system" }

// Time is the time pseudo-axis.
type Time struct{}

func (Time) Name() string             { return "t" }
func (Time) System() CoordinateSystem { return FlatSimulation{} }

// Mass is the mass pseudo-axis.
type Mass struct{}

func (Mass) Name() string             { return "m" }
func (Mass) System() CoordinateSystem { return FlatSimulation{} }

// Temperature is the thermodynamic temperature pseudo-axis.
type Temperature struct{}

func (Temperature) Name() string             { return "T" }
func (Temperature) System() CoordinateSystem { return FlatSimulation{} }

// Along is the longitudinal X axis.
type Along struct{}

func (Along) Name() string             { return "X" }
func (Along) System() CoordinateSystem { return FlatSimulation{} }

// Across is the lateral Y axis.
type Across struct{}

func (Across) Name() string             { return "Y" }
func (Across) System() CoordinateSystem { return FlatSimulation{} }

// Upward is the vertical Z axis.
type Upward struct{}

func (Upward) Name() string             { return "Z" }
func (Upward) System() CoordinateSystem { return FlatSimulation{} }

// Axis tag values passed to On.
var (
	OnTime        Time
	OnMass        Mass
	OnTemperature Temperature
	IsAlong       Along
	IsAcross      Across
	IsUpward      Upward
)

// SITime is the SI base unit of time.
type SITime struct{}

func (SITime) Abbreviation() string { return "[s]" }

// SIMass is the SI base unit of mass.
type SIMass struct{}

func (SIMass) Abbreviation() string { return "[kg]" }

// SITemperature is the SI base unit of temperature.
type SITemperature struct{}

func (SITemperature) Abbreviation() string { return "[K]" }

// SILength is the SI base unit of length.
type SILength struct{}

func (SILength) Abbreviation() string { return "[m]" }

// SIVelocity is the SI derived unit of speed.
type SIVelocity struct{}

func (SIVelocity) Abbreviation() string { return "[m/s]" }

// SIAcceleration is the SI derived unit of acceleration.
type SIAcceleration struct{}

func (SIAcceleration) Abbreviation() string { return "[m/s^2]" }

func axisOf[A Axis]() A {
	var a A
	return a
}

func unitOf[U Unit]() U {
	var u U
	return u
}
