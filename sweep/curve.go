package sweep

import "gonum.org/v1/gonum/floats"

// Point 单个工作点。
type Point struct {
	CurrentDensity float64 // 电流密度 (A/cm²)
	CellVoltage    float64 // 单电池电压 (V)
	StackVoltage   float64 // 电堆电压 (V)
	PowerDensity   float64 // 功率密度 (W/cm²)
	Efficiency     float64 // 电压效率
	StackPowerW    float64 // 电堆功率 (W)
}

// Curve 极化曲线，各列等长且与 CurrentDensity 一一对应。
type Curve struct {
	CurrentDensity []float64
	CellVoltage    []float64
	StackVoltage   []float64
	PowerDensity   []float64
	Efficiency     []float64
	StackPowerW    []float64
}

func newCurve(i []float64) *Curve {
	n := len(i)
	return &Curve{
		CurrentDensity: append([]float64(nil), i...),
		CellVoltage:    make([]float64, n),
		StackVoltage:   make([]float64, n),
		PowerDensity:   make([]float64, n),
		Efficiency:     make([]float64, n),
		StackPowerW:    make([]float64, n),
	}
}

// Len 工作点数量。
func (c *Curve) Len() int { return len(c.CurrentDensity) }

// At 第 k 个工作点。
func (c *Curve) At(k int) Point {
	return Point{
		CurrentDensity: c.CurrentDensity[k],
		CellVoltage:    c.CellVoltage[k],
		StackVoltage:   c.StackVoltage[k],
		PowerDensity:   c.PowerDensity[k],
		Efficiency:     c.Efficiency[k],
		StackPowerW:    c.StackPowerW[k],
	}
}

// MaxPower 功率密度最大的工作点；空曲线返回 false。
func (c *Curve) MaxPower() (Point, bool) {
	if c.Len() == 0 {
		return Point{}, false
	}
	return c.At(floats.MaxIdx(c.PowerDensity)), true
}
