package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zeusync/physunits/internal/config"
	"github.com/zeusync/physunits/internal/core/observability/log"
)

func writeLedger(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newApp(t *testing.T) (*App, *observer.ObservedLogs) {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Precision = 1

	core, logs := observer.New(zapcore.DebugLevel)
	return New(cfg, log.NewFromZap(zap.New(core), log.LevelDebug)), logs
}

// execute runs the root command with args and returns what it printed.
func execute(ctx context.Context, a *App, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := NewCommand(a)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestCommand_Help(t *testing.T) {
	a, _ := newApp(t)

	out, err := execute(context.Background(), a)
	require.NoError(t, err)
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "PHYSUNITS_WORKERS")
}

func TestCommand_UsageErrors(t *testing.T) {
	a, _ := newApp(t)

	out, err := execute(context.Background(), a, "total")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
	assert.Contains(t, out, "Usage:")

	_, err = execute(context.Background(), a, "integrate", "x.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "integrate"`)
}

func TestCommand_Total(t *testing.T) {
	dir := t.TempDir()
	first := writeLedger(t, dir, "first.yaml", "masses: [1, 2]\nlegs:\n  - {X: 3, Y: 4}\n")
	second := writeLedger(t, dir, "second.yaml", "name: extra\nmasses: [4]\n")

	a, logs := newApp(t)
	printed, err := execute(context.Background(), a, "total", first, second)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(printed, "first (3 records)\n"))
	assert.Contains(t, printed, "extra (1 records)\n")
	assert.Contains(t, printed, "total (4 records)\n")
	assert.Contains(t, printed, "  mass: 7.0[kg]\n")
	assert.Contains(t, printed, "  distance: 5.0[m] (ground 5.0[m])\n")

	summed := logs.FilterMessage("ledger summed").All()
	require.Len(t, summed, 2)
	for _, entry := range summed {
		runID, ok := entry.ContextMap()["run_id"].(string)
		require.True(t, ok)
		_, err := uuid.Parse(runID)
		assert.NoError(t, err)
	}
	assert.Equal(t, 1, logs.FilterMessage("tracer destroyed").Len())
}

func TestCommand_TotalFailsOnBadLedger(t *testing.T) {
	dir := t.TempDir()
	good := writeLedger(t, dir, "good.yaml", "masses: [1]\n")
	bad := writeLedger(t, dir, "bad.yaml", "legs:\n  - {W: 1}\n")

	a, logs := newApp(t)
	out, err := execute(context.Background(), a, "total", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")

	assert.Empty(t, out)
	assert.Equal(t, 1, logs.FilterMessage("summing ledgers failed").Len())
}

func TestTotal_Canceled(t *testing.T) {
	path := writeLedger(t, t.TempDir(), "one.yaml", "masses: [1]\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a, _ := newApp(t)
	var out bytes.Buffer
	assert.ErrorIs(t, a.Total(ctx, &out, []string{path}), context.Canceled)
	assert.Empty(t, out.String())
}
