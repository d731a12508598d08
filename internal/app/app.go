package app

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/zeusync/physunits/internal/config"
	"github.com/zeusync/physunits/internal/core/observability/log"
	"github.com/zeusync/physunits/internal/ledger"
	"github.com/zeusync/physunits/pkg/concurrent"
	"github.com/zeusync/physunits/pkg/iobend"
)

type App struct {
	cfg config.Config
	log *log.Logger
}

func New(cfg config.Config, logger *log.Logger) *App {
	return &App{cfg: cfg, log: logger}
}

// Total sums the ledger files concurrently and prints their totals to w, in
// argument order, followed by a grand total when there are several.
func (a *App) Total(ctx context.Context, w io.Writer, files []string) error {
	ctx = log.ContextWith(ctx, log.String("run_id", uuid.NewString()))
	logger := a.log.WithContext(ctx)
	logger.Debug("summing ledgers", log.Int("files", len(files)), log.Int("workers", a.cfg.Workers))

	totals, err := concurrent.Map(ctx, files, a.cfg.Workers, func(ctx context.Context, path string) (ledger.Totals, error) {
		l, err := ledger.LoadFile(path)
		if err != nil {
			return ledger.Totals{}, err
		}
		defer l.Release()

		t, err := l.Totals()
		if err != nil {
			return ledger.Totals{}, fmt.Errorf("%s: %w", path, err)
		}
		logger.Info("ledger summed", log.String("file", path), log.Object("totals", t))
		return t, nil
	})
	if err != nil {
		logger.Error("summing ledgers failed", log.Error(err))
		return err
	}

	s := iobend.NewStream(w)
	tracer := iobend.NewTracer(logger, "totals")
	s.Apply(tracer)
	defer tracer.Close()

	opts := ledger.WriteOptions{Precision: a.cfg.Precision, Color: a.cfg.Color}
	for _, t := range totals {
		if err := t.Write(s, opts); err != nil {
			return fmt.Errorf("write totals: %w", err)
		}
	}
	if len(totals) > 1 {
		if err := ledger.Merge("total", totals...).Write(s, opts); err != nil {
			return fmt.Errorf("write totals: %w", err)
		}
	}
	return nil
}

// Close flushes the logger.
func (a *App) Close() error {
	return a.log.Sync()
}
