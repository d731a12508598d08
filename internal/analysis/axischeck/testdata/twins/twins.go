package twins

import "github.com/zeusync/physunits/pkg/phys"

// East is a second axis named like phys.Along.
type East struct{}

func (East) Name() string                  { return "X" }
func (East) System() phys.CoordinateSystem { return phys.FlatSimulation{} }

func Mixed() error {
	x := phys.Longitude{Val: phys.Meters(1)}
	e := phys.On(phys.Meters(2), East{})
	_, err := phys.TryPlane(x, e)
	return err
}
