package ledger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zeusync/physunits/pkg/iobend"
	"github.com/zeusync/physunits/pkg/memguard"
	"github.com/zeusync/physunits/pkg/phys"
)

const morning = `
name: morning
legs:
  - {X: 1, Y: 2, Z: 0}
  - {X: 2, Y: 0, Z: 1}
planar:
  - {X: 0.5, Y: 0.5}
climbs: [1.5]
velocity_changes:
  - {X: 1, Z: -2}
durations: [60, 30.25]
masses: [70, 5.5]
`

func loadMorning(t *testing.T) *Ledger {
	t.Helper()
	l, err := Load(strings.NewReader(morning))
	require.NoError(t, err)
	return l
}

func TestLoad(t *testing.T) {
	l := loadMorning(t)

	assert.Equal(t, "morning", l.Name)
	require.Len(t, l.Legs, 2)
	assert.Equal(t, phys.Meters(2), l.Legs[0].Y.Val)
	assert.Equal(t, []phys.Altitude{{Val: phys.Meters(1.5)}}, l.Climbs)
	assert.Equal(t, phys.MetersPerSecond(0), l.VelocityChanges[0].Y.Val)
	assert.Equal(t, phys.Span(phys.Seconds(30.25)), l.Durations[1])
}

func TestLoad_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown section": "speeds: [1]",
		"unknown axis":    "legs:\n  - {X: 1, W: 2}",
		"not a number":    "masses: [heavy]",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_Empty(t *testing.T) {
	l, err := Load(strings.NewReader(""))
	require.NoError(t, err)

	totals, err := l.Totals()
	require.NoError(t, err)
	assert.Zero(t, totals.Records)
	assert.Equal(t, phys.VolumePosition{}, totals.Displacement)
}

func TestLoadFile_NamesAfterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commute.yaml")
	require.NoError(t, os.WriteFile(path, []byte("masses: [1]\n"), 0o600))

	l, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "commute", l.Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTotals(t *testing.T) {
	totals, err := loadMorning(t).Totals()
	require.NoError(t, err)

	assert.Equal(t, 9, totals.Records)
	assert.True(t, totals.Displacement.ApproxEqual(phys.Volume(
		phys.On(phys.Meters(3.5), phys.IsAlong),
		phys.On(phys.Meters(2.5), phys.IsAcross),
		phys.On(phys.Meters(2.5), phys.IsUpward),
	), 1e-6))
	assert.True(t, totals.Distance.ApproxEqual(phys.Meters(4.974937), 1e-5))
	assert.True(t, totals.GroundDistance.ApproxEqual(phys.Meters(4.301163), 1e-5))
	assert.True(t, totals.PathLength.ApproxEqual(phys.Meters(6.679245), 1e-5))
	assert.Equal(t, totals.Displacement, totals.End)
	assert.Equal(t, phys.MetersPerSecond(-2), totals.Velocity.Z.Val)
	assert.Equal(t, phys.Seconds(90.25), totals.Duration.Val)
	assert.Equal(t, phys.Kilograms(75.5), totals.Mass.Val)

	require.True(t, totals.PackedDuration.IsAssigned())
	assert.Equal(t, phys.Seconds(90), totals.PackedDuration.Unpack())
}

func TestTotals_WalksFromOrigin(t *testing.T) {
	l, err := Load(strings.NewReader("origin: {X: 10, Z: 100}\nlegs:\n  - {X: 3, Y: 4}\nclimbs: [-20]\n"))
	require.NoError(t, err)

	totals, err := l.Totals()
	require.NoError(t, err)

	assert.Equal(t, l.Origin, totals.Origin)
	assert.Equal(t, phys.Volume(
		phys.On(phys.Meters(13), phys.IsAlong),
		phys.On(phys.Meters(4), phys.IsAcross),
		phys.On(phys.Meters(80), phys.IsUpward),
	), totals.End)
	assert.True(t, totals.Distance.ApproxEqual(phys.Meters(20.615528), 1e-5))
	assert.Equal(t, phys.Meters(5), totals.GroundDistance)
	assert.Equal(t, phys.Meters(25), totals.PathLength)
}

func TestTotals_NegativeDurationIsNotPacked(t *testing.T) {
	l, err := Load(strings.NewReader("durations: [-5]"))
	require.NoError(t, err)

	totals, err := l.Totals()
	require.NoError(t, err)
	assert.False(t, totals.PackedDuration.IsAssigned())
}

func TestRelease(t *testing.T) {
	if !memguard.Enabled {
		t.Skip("guards are compiled out")
	}

	l := loadMorning(t)
	require.NoError(t, l.Release())

	_, err := l.Totals()
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.ErrorIs(t, l.Release(), ErrNotLoaded)

	var zero Ledger
	_, err = zero.Totals()
	assert.ErrorIs(t, err, ErrNotLoaded)

	var none *Ledger
	_, err = none.Totals()
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestTotals_Write(t *testing.T) {
	totals, err := loadMorning(t).Totals()
	require.NoError(t, err)

	var buf bytes.Buffer
	s := iobend.NewStream(&buf)
	s.SetFlags(iobend.Scientific)

	require.NoError(t, totals.Write(s, WriteOptions{Precision: 2}))

	want := "morning (9 records)\n" +
		"  displacement: X=3.50[m] Y=2.50[m] Z=2.50[m]\n" +
		"  end: X=3.50[m] Y=2.50[m] Z=2.50[m]\n" +
		"  distance: 4.97[m] (ground 4.30[m])\n" +
		"  path: 6.68[m]\n" +
		"  velocity: X=1.00[m/s] Y=0.00[m/s] Z=-2.00[m/s]\n" +
		"  duration: 90.25[s] ~ 90.00[s]\n" +
		"  mass: 75.50[kg]\n"
	assert.Equal(t, want, buf.String())

	assert.Equal(t, iobend.Scientific, s.Flags())
	assert.Equal(t, iobend.DefaultPrecision, s.Precision())
}

func TestTotals_WriteColored(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Totals{Name: "n"}.Write(iobend.NewStream(&buf), WriteOptions{Color: true}))

	assert.True(t, strings.HasPrefix(buf.String(), iobend.ColBri+"n"+iobend.NoColor))
	assert.Contains(t, buf.String(), iobend.ColFil+"  mass:"+iobend.NoColor)
}

func TestTotals_MarshalLogObject(t *testing.T) {
	totals, err := loadMorning(t).Totals()
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	zap.New(core).Info("totals", zap.Object("totals", totals))

	fields := logs.All()[0].ContextMap()["totals"].(map[string]any)
	assert.Equal(t, "morning", fields["ledger"])
	assert.EqualValues(t, 9, fields["records"])
	assert.Contains(t, fields, "displacement")
	assert.Contains(t, fields, "path_length")
	assert.Contains(t, fields, "mass")
}

func TestMerge(t *testing.T) {
	a, err := loadMorning(t).Totals()
	require.NoError(t, err)

	m := Merge("all", a, a)
	assert.Equal(t, "all", m.Name)
	assert.Equal(t, 18, m.Records)
	assert.Equal(t, phys.Kilograms(151), m.Mass.Val)
	assert.Equal(t, phys.Meters(7), m.Displacement.X.Val)
	assert.True(t, m.Distance.ApproxEqual(a.Distance.Mul(2), 1e-5))
	assert.True(t, m.PathLength.ApproxEqual(a.PathLength.Mul(2), 1e-5))
	assert.Equal(t, m.Displacement, m.End)
	assert.Equal(t, phys.Seconds(180.5), m.PackedDuration.Unpack())

	empty := Merge("none")
	assert.Zero(t, empty.Records)
	assert.True(t, empty.PackedDuration.IsAssigned())
	assert.Zero(t, empty.PackedDuration.Unpack().Float64())
}
