package ledger

import (
	"go.uber.org/zap/zapcore"

	"github.com/zeusync/physunits/internal/core/systems/physics"
	"github.com/zeusync/physunits/pkg/iobend"
	"github.com/zeusync/physunits/pkg/phys"
)

// Totals holds the sums of one ledger.
type Totals struct {
	Name           string
	Records        int
	Origin         phys.VolumePosition
	End            phys.VolumePosition
	Displacement   phys.VolumePosition
	Distance       phys.DistSI
	GroundDistance phys.DistSI
	PathLength     phys.DistSI
	Velocity       phys.VolumeVelocity
	Duration       phys.TimeSpan
	PackedDuration phys.Packed[phys.SITime]
	Mass           phys.MassQuan
}

// setEnds records where the walk started and ended, and the distances
// between the two.
func (t *Totals) setEnds(start, end physics.Transform) {
	t.Origin, t.End = start.Pos, end.Pos
	t.Distance = physics.Distance(start, end)
	t.GroundDistance = physics.GroundDistance(start, end)
}

// packDuration fills PackedDuration. Durations beyond the packed range stay
// unassigned.
func (t *Totals) packDuration() {
	if packed, err := phys.Pack(t.Duration.Val); err == nil {
		t.PackedDuration = packed
	}
}

func (t Totals) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("ledger", t.Name)
	enc.AddInt("records", t.Records)
	for _, o := range []struct {
		key string
		val zapcore.ObjectMarshaler
	}{
		{"displacement", t.Displacement},
		{"end", t.End},
		{"distance", t.Distance},
		{"ground_distance", t.GroundDistance},
		{"path_length", t.PathLength},
		{"velocity", t.Velocity},
		{"duration", t.Duration},
		{"mass", t.Mass},
	} {
		if err := enc.AddObject(o.key, o.val); err != nil {
			return err
		}
	}
	return nil
}

// WriteOptions control how totals are printed.
type WriteOptions struct {
	Precision int
	Color     bool
}

// Write prints the totals to s in fixed notation. The flags of s are restored
// afterwards.
func (t Totals) Write(s *iobend.Stream, opts WriteOptions) error {
	defer iobend.NewKeepFlags(s).Close()
	s.SetFloatField(iobend.Fixed)
	s.SetPrecision(opts.Precision)

	line(s, func() {
		s.Text(iobend.Colored(opts.Color, iobend.ColBri, t.Name)).Print(" (", t.Records, " records)")
	})
	line(s, func() {
		label(s, opts, "displacement")
		vector(s, t.Displacement)
	})
	line(s, func() {
		label(s, opts, "end")
		vector(s, t.End)
	})
	line(s, func() {
		label(s, opts, "distance")
		quantity(s, t.Distance)
		s.Text(" (ground")
		quantity(s, t.GroundDistance)
		s.Text(")")
	})
	line(s, func() {
		label(s, opts, "path")
		quantity(s, t.PathLength)
	})
	line(s, func() {
		label(s, opts, "velocity")
		vector(s, t.Velocity)
	})
	line(s, func() {
		label(s, opts, "duration")
		quantity(s, t.Duration.Val)
		if t.PackedDuration.IsAssigned() {
			s.Text(" ~")
			quantity(s, t.PackedDuration.Unpack())
		}
	})
	line(s, func() {
		label(s, opts, "mass")
		quantity(s, t.Mass.Val)
	})
	return s.Err()
}

// Merge adds up the totals of several ledgers under a new name. The merged
// walk starts at the origin of the first ledger.
func Merge(name string, all ...Totals) Totals {
	m := Totals{Name: name}
	if len(all) > 0 {
		m.Origin = all[0].Origin
	}
	for _, t := range all {
		m.Records += t.Records
		m.Displacement = phys.Add(m.Displacement, t.Displacement)
		m.PathLength = phys.Add(m.PathLength, t.PathLength)
		m.Velocity = phys.Add(m.Velocity, t.Velocity)
		m.Duration = phys.Add(m.Duration, t.Duration)
		m.Mass = phys.Add(m.Mass, t.Mass)
	}
	start := physics.At(m.Origin)
	m.setEnds(start, start.Moved(m.Displacement))
	m.packDuration()
	return m
}

func line(s *iobend.Stream, body func()) {
	end := iobend.NewTextAtEnd("")
	defer end.Close()
	s.Apply(end)
	body()
}

func label(s *iobend.Stream, opts WriteOptions, name string) {
	s.Text(iobend.Colored(opts.Color, iobend.ColFil, "  "+name+":"))
}

func vector[A1, A2, A3 phys.Axis, U phys.Unit](s *iobend.Stream, v phys.Vec3D[A1, A2, A3, U]) {
	component(s, v.X)
	component(s, v.Y)
	component(s, v.Z)
}

func component[A phys.Axis, U phys.Unit](s *iobend.Stream, c phys.Scalar[A, U]) {
	s.Text(" " + c.AxisName() + "=").Float(c.Val.Float64()).Text(c.UnitAbbreviation())
}

func quantity[U phys.Unit](s *iobend.Stream, q phys.Quantity[U]) {
	s.Text(" ").Float(q.Float64()).Text(q.Abbreviation())
}
