package sweep

import (
	"errors"
	"fmt"

	"fuelcell/types"

	"github.com/go-playground/validator/v10"
	"gonum.org/v1/gonum/floats"
)

// ErrInvalidRange 扫描范围不合法。
var ErrInvalidRange = errors.New("sweep: invalid range")

var validate = validator.New()

// Range 线性扫描范围（含两端点）。
type Range struct {
	Start  float64 `mapstructure:"start" validate:"gte=0"`              // 起始电流密度 (A/cm²)
	Stop   float64 `mapstructure:"stop" validate:"gtfield=Start"`       // 终止电流密度 (A/cm²)
	Points int     `mapstructure:"points" validate:"gte=2,lte=1000000"` // 采样点数
}

// DefaultRange 默认极化曲线扫描范围 [0.01, 1.8] A/cm²，200 点。
func DefaultRange() Range {
	return Range{
		Start:  types.DefaultSweepStart,
		Stop:   types.DefaultSweepStop,
		Points: types.DefaultSweepPoints,
	}
}

// Validate 校验扫描范围。
func (r Range) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	return nil
}

// Linspace 生成等间距电流密度序列。
func Linspace(r Range) ([]float64, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return floats.Span(make([]float64, r.Points), r.Start, r.Stop), nil
}
