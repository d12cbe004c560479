// Package sweep 极化曲线扫描：在一组电流密度上对模型逐点求值。
package sweep

import (
	"context"
	"log/slog"

	"fuelcell/logger"
	"fuelcell/model"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

type options struct {
	workers int
	log     *slog.Logger
}

// Option 扫描选项。
type Option func(*options)

// WithWorkers 并发分块数，n < 1 按 1 处理。
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithLogger 设置日志。
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// Run 在电流密度序列 i 上计算极化曲线。
// 超出物理范围的电流密度照常求值（由模型截断），仅记录警告。
func Run(ctx context.Context, m *model.Model, i []float64, opts ...Option) (*Curve, error) {
	o := options{workers: 1, log: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := m.Config()
	checkRange(o.log, cfg, i)

	c := newCurve(i)
	n := c.Len()
	workers := min(o.workers, max(n, 1))
	size := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error {
			for k := lo; k < hi; k++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				x := c.CurrentDensity[k]
				c.CellVoltage[k] = m.CellVoltage(x)
				c.StackVoltage[k] = m.StackVoltage(x)
				c.PowerDensity[k] = m.PowerDensity(x)
				c.Efficiency[k] = m.Efficiency(x)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	floats.ScaleTo(c.StackPowerW, cfg.ActiveAreaCm2*float64(cfg.NumCells), c.PowerDensity)

	o.log.Debug("polarization sweep evaluated",
		"points", n,
		"workers", workers)
	return c, nil
}

// Polarization 按 r 生成电流密度序列并扫描。
func Polarization(ctx context.Context, m *model.Model, r Range, opts ...Option) (*Curve, error) {
	i, err := Linspace(r)
	if err != nil {
		return nil, err
	}
	return Run(ctx, m, i, opts...)
}

func checkRange(log *slog.Logger, cfg model.Config, i []float64) {
	if len(i) == 0 {
		return
	}
	if lo := floats.Min(i); lo < 0 {
		log.Warn("negative current density in sweep",
			"min_a_cm2", lo)
	}
	if hi := floats.Max(i); hi >= cfg.LimitingCurrentDensityACm2 {
		log.Warn("sweep reaches limiting current density",
			"max_a_cm2", hi,
			"limiting_a_cm2", cfg.LimitingCurrentDensityACm2)
	}
}
