package model

import (
	"math"

	"fuelcell/types"
)

// Model PEM 燃料电池稳态模型。
// 所有计算都是配置与电流密度的纯函数，可在多个 goroutine 间共享。
type Model struct {
	cfg Config

	tafel   float64 // 活化斜率 R·T/(alpha·F) (V)
	thermal float64 // 浓差斜率 R·T/F (V)
}

// New 校验配置并创建模型。
func New(cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rt := cfg.GasConstant * cfg.TemperatureK
	return &Model{
		cfg:     cfg,
		tafel:   rt / (cfg.Alpha * cfg.Faraday),
		thermal: rt / cfg.Faraday,
	}, nil
}

// Config 返回模型配置副本。
func (m *Model) Config() Config { return m.cfg }

// ActivationOverpotential 活化过电位 (V)。
// 电流密度先下限截断到 MinCurrentDensity；i < i0 时结果为负，由 CellVoltage 的零下限兜底。
func (m *Model) ActivationOverpotential(i float64) float64 {
	i = math.Max(i, types.MinCurrentDensity)
	return m.tafel * math.Log(i/m.cfg.ExchangeCurrentDensityACm2)
}

// OhmicOverpotential 欧姆过电位 (V)。
func (m *Model) OhmicOverpotential(i float64) float64 {
	return i * m.cfg.MembraneResistanceOhmCm2
}

// ConcentrationOverpotential 浓差过电位 (V)。
// i/i_lim 截断到 [0, MaxLimitingRatio]，在极限电流处及以上保持有限。
func (m *Model) ConcentrationOverpotential(i float64) float64 {
	ratio := i / m.cfg.LimitingCurrentDensityACm2
	if ratio < 0 {
		ratio = 0
	}
	if ratio > types.MaxLimitingRatio {
		ratio = types.MaxLimitingRatio
	}
	return -m.thermal * math.Log(1-ratio)
}

// CellVoltage 单电池电压 (V)，下限为 0。
func (m *Model) CellVoltage(i float64) float64 {
	v := m.cfg.NernstVoltageV -
		m.ActivationOverpotential(i) -
		m.OhmicOverpotential(i) -
		m.ConcentrationOverpotential(i)
	return math.Max(v, 0)
}

// StackVoltage 电堆电压 (V)。
func (m *Model) StackVoltage(i float64) float64 {
	return m.CellVoltage(i) * float64(m.cfg.NumCells)
}

// PowerDensity 单电池功率密度 (W/cm²)。
func (m *Model) PowerDensity(i float64) float64 {
	return i * m.CellVoltage(i)
}

// Efficiency 电压效率 V/E；可逆电压非正时返回 0。
func (m *Model) Efficiency(i float64) float64 {
	if m.cfg.NernstVoltageV > 0 {
		return m.CellVoltage(i) / m.cfg.NernstVoltageV
	}
	return 0
}

// Eval 按输出量类型计算单点值，未知类型返回 NaN。
func (m *Model) Eval(q types.Quantity, i float64) float64 {
	switch q {
	case types.ActivationOverpotential:
		return m.ActivationOverpotential(i)
	case types.OhmicOverpotential:
		return m.OhmicOverpotential(i)
	case types.ConcentrationOverpotential:
		return m.ConcentrationOverpotential(i)
	case types.CellVoltage:
		return m.CellVoltage(i)
	case types.StackVoltage:
		return m.StackVoltage(i)
	case types.PowerDensity:
		return m.PowerDensity(i)
	case types.Efficiency:
		return m.Efficiency(i)
	}
	return math.NaN()
}
