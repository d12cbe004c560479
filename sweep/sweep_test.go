package sweep

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"fuelcell/logger"
	"fuelcell/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) *model.Model {
	t.Helper()
	m, err := model.New(model.DefaultConfig())
	require.NoError(t, err)
	return m
}

func TestLinspace(t *testing.T) {
	i, err := Linspace(DefaultRange())
	require.NoError(t, err)
	require.Len(t, i, 200)
	assert.Equal(t, 0.01, i[0])
	assert.InDelta(t, 1.8, i[199], 1e-12)
	for k := 1; k < len(i); k++ {
		assert.InDelta(t, (1.8-0.01)/199, i[k]-i[k-1], 1e-12)
	}
}

func TestLinspaceInvalid(t *testing.T) {
	tests := []struct {
		name string
		r    Range
	}{
		{"one point", Range{Start: 0.1, Stop: 1, Points: 1}},
		{"reversed", Range{Start: 1, Stop: 0.5, Points: 10}},
		{"empty span", Range{Start: 1, Stop: 1, Points: 10}},
		{"negative start", Range{Start: -0.1, Stop: 1, Points: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, err := Linspace(tt.r)
			assert.Nil(t, i)
			assert.True(t, errors.Is(err, ErrInvalidRange))
		})
	}
}

func TestRunMatchesModel(t *testing.T) {
	m := newModel(t)
	i, err := Linspace(DefaultRange())
	require.NoError(t, err)

	c, err := Run(context.Background(), m, i)
	require.NoError(t, err)
	require.Equal(t, len(i), c.Len())

	for k, x := range i {
		p := c.At(k)
		assert.Equal(t, x, p.CurrentDensity)
		assert.Equal(t, m.CellVoltage(x), p.CellVoltage)
		assert.Equal(t, m.StackVoltage(x), p.StackVoltage)
		assert.Equal(t, m.PowerDensity(x), p.PowerDensity)
		assert.Equal(t, m.Efficiency(x), p.Efficiency)
		assert.InDelta(t, p.PowerDensity*50*50, p.StackPowerW, 1e-9)
	}
}

func TestRunCopiesInput(t *testing.T) {
	m := newModel(t)
	i := []float64{0.1, 0.2}
	c, err := Run(context.Background(), m, i)
	require.NoError(t, err)

	i[0] = 9
	assert.Equal(t, 0.1, c.CurrentDensity[0])
}

func TestRunWorkers(t *testing.T) {
	m := newModel(t)
	i, err := Linspace(Range{Start: 0, Stop: 2.5, Points: 1001})
	require.NoError(t, err)

	serial, err := Run(context.Background(), m, i)
	require.NoError(t, err)

	for _, w := range []int{-1, 2, 7, 64, 5000} {
		parallel, err := Run(context.Background(), m, i, WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, serial, parallel, "workers=%d", w)
	}
}

func TestRunEmpty(t *testing.T) {
	c, err := Run(context.Background(), newModel(t), nil, WithWorkers(4))
	require.NoError(t, err)
	assert.Zero(t, c.Len())

	_, ok := c.MaxPower()
	assert.False(t, ok)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := Run(ctx, newModel(t), []float64{0.1, 0.2})
	assert.Nil(t, c)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunWarnsOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("warn", &buf)

	c, err := Run(context.Background(), newModel(t), []float64{-0.5, 1.0, 2.0, 3.0}, WithLogger(log))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "negative current density in sweep")
	assert.Contains(t, buf.String(), "sweep reaches limiting current density")
	assert.Zero(t, c.CellVoltage[2])
	assert.Zero(t, c.CellVoltage[3])
	assert.Greater(t, c.CellVoltage[0], 0.0)
}

func TestRunNoWarningInRange(t *testing.T) {
	var buf bytes.Buffer
	_, err := Polarization(context.Background(), newModel(t), DefaultRange(),
		WithLogger(logger.New("warn", &buf)))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

// TestMaxPower 默认参数扫描的峰值功率点
func TestMaxPower(t *testing.T) {
	c, err := Polarization(context.Background(), newModel(t), DefaultRange(), WithWorkers(4))
	require.NoError(t, err)

	p, ok := c.MaxPower()
	require.True(t, ok)
	assert.InDelta(t, 1.413216, p.CurrentDensity, 1e-6)
	assert.InDelta(t, 0.591542, p.PowerDensity, 1e-6)
	assert.InDelta(t, 0.418578, p.CellVoltage, 1e-6)
	assert.InDelta(t, 0.591542*2500, p.StackPowerW, 1e-2)

	for k := 0; k < c.Len(); k++ {
		assert.LessOrEqual(t, c.PowerDensity[k], p.PowerDensity)
	}
}

func TestPolarizationInvalidRange(t *testing.T) {
	c, err := Polarization(context.Background(), newModel(t), Range{Points: 5})
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrInvalidRange)
}
