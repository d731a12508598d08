package phys

import (
	"fmt"

	"github.com/zeusync/physunits/pkg/fixfloat"
)

// Packed stores a non-negative quantity in two bytes with a resolution of
// half a unit. The zero value is unassigned.
type Packed[U Unit] struct {
	raw fixfloat.UFloat16
}

// Pack narrows q into a Packed value. Negative or too large values are rejected.
func Pack[U Unit](q Quantity[U]) (Packed[U], error) {
	raw, err := fixfloat.FromFloat(q.value)
	if err != nil {
		return Packed[U]{}, fmt.Errorf("pack %s: %w", q, err)
	}
	return Packed[U]{raw: raw}, nil
}

// Unpack widens the stored value back into a quantity.
func (p Packed[U]) Unpack() Quantity[U] {
	return Quantity[U]{value: p.raw.Float32()}
}

func (p Packed[U]) IsAssigned() bool {
	return p.raw.IsAssigned()
}
