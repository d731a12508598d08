// Package ledger reads YAML files of typed physical records and sums them.
package ledger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/physunits/internal/core/systems/physics"
	"github.com/zeusync/physunits/pkg/memguard"
	"github.com/zeusync/physunits/pkg/phys"
)

// ErrNotLoaded is returned when a ledger is used before Load or after Release.
var ErrNotLoaded = errors.New("ledger: not loaded or already released")

var canaryValue = memguard.Derive[uint32]("ledger.Ledger")

type canary struct{}

func (canary) Value() uint32 { return canaryValue }

// Ledger is the content of one ledger file. Legs are walked from Origin in
// order: volume legs, then planar legs, then climbs.
type Ledger struct {
	Name            string                `yaml:"name"`
	Origin          phys.VolumePosition   `yaml:"origin"`
	Legs            []phys.VolumePosition `yaml:"legs"`
	Planar          []phys.PlanePosition  `yaml:"planar"`
	Climbs          []phys.Altitude       `yaml:"climbs"`
	VelocityChanges []phys.VolumeVelocity `yaml:"velocity_changes"`
	Durations       []phys.TimeSpan       `yaml:"durations"`
	Masses          []phys.MassQuan       `yaml:"masses"`

	guard memguard.Guard[uint32, canary]
}

// Load decodes a ledger. Unknown sections and unknown axis keys are errors.
func Load(r io.Reader) (*Ledger, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	l := &Ledger{}
	if err := dec.Decode(l); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode ledger: %w", err)
	}
	l.guard.Arm()
	return l, nil
}

// LoadFile loads the ledger at path. A ledger without a name is named after
// the file.
func LoadFile(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if l.Name == "" {
		l.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return l, nil
}

// Release marks the ledger as no longer usable.
func (l *Ledger) Release() error {
	if l == nil || !l.guard.Valid() {
		return ErrNotLoaded
	}
	l.guard.Destroy()
	return nil
}

// Totals sums every section of the ledger.
func (l *Ledger) Totals() (Totals, error) {
	if l == nil || !l.guard.Valid() {
		return Totals{}, ErrNotLoaded
	}

	t := Totals{
		Name:     l.Name,
		Velocity: phys.Sum(l.VelocityChanges...),
		Duration: phys.Sum(l.Durations...),
		Mass:     phys.Sum(l.Masses...),
		Records:  len(l.Legs) + len(l.Planar) + len(l.Climbs) + len(l.VelocityChanges) + len(l.Durations) + len(l.Masses),
	}
	t.Displacement = phys.Add(
		phys.Sum(l.Legs...),
		phys.Extend(phys.Sum(l.Planar...), phys.Sum(l.Climbs...)),
	)

	path := physics.NewPath(physics.At(l.Origin))
	for _, leg := range l.Legs {
		path.Walk(leg)
	}
	for _, leg := range l.Planar {
		path.WalkGround(leg)
	}
	for _, alt := range l.Climbs {
		path.Climb(alt)
	}
	t.setEnds(path.Start(), path.End())
	t.PathLength = path.Length()
	t.packDuration()
	return t, nil
}
