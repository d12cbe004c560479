package model

import (
	"fmt"

	"fuelcell/types"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config 电堆模型配置，创建后只读。
// 温度、电流密度、面积和 alpha 会作为除数或对数参数参与计算，因此必须严格为正。
type Config struct {
	TemperatureK               float64 `mapstructure:"temperature_k" validate:"gt=0"`                  // 工作温度 (K)
	NernstVoltageV             float64 `mapstructure:"nernst_voltage_v" validate:"gte=0"`              // 可逆开路电压 (V)
	MembraneResistanceOhmCm2   float64 `mapstructure:"membrane_resistance_ohm_cm2" validate:"gte=0"`   // 膜面电阻 (Ω·cm²)
	ExchangeCurrentDensityACm2 float64 `mapstructure:"exchange_current_density_a_cm2" validate:"gt=0"` // 交换电流密度 i0 (A/cm²)
	LimitingCurrentDensityACm2 float64 `mapstructure:"limiting_current_density_a_cm2" validate:"gt=0"` // 极限电流密度 i_lim (A/cm²)
	Alpha                      float64 `mapstructure:"alpha" validate:"gt=0,lte=1"`                    // 电荷转移系数
	GasConstant                float64 `mapstructure:"gas_constant" validate:"gt=0"`                   // 气体常数 R (J/(mol·K))
	Faraday                    float64 `mapstructure:"faraday" validate:"gt=0"`                        // 法拉第常数 F (C/mol)
	NumCells                   int     `mapstructure:"num_cells" validate:"gte=1"`                     // 串联单电池数量
	ActiveAreaCm2              float64 `mapstructure:"active_area_cm2" validate:"gt=0"`                // 单电池有效面积 (cm²)
}

// DefaultConfig 默认配置（80°C 下的典型 PEM 电堆）。
func DefaultConfig() Config {
	return Config{
		TemperatureK:               types.DefaultTemperatureK,
		NernstVoltageV:             types.DefaultNernstVoltageV,
		MembraneResistanceOhmCm2:   types.DefaultMembraneResistanceOhmCm2,
		ExchangeCurrentDensityACm2: types.DefaultExchangeCurrentDensityACm2,
		LimitingCurrentDensityACm2: types.DefaultLimitingCurrentDensityACm2,
		Alpha:                      types.DefaultAlpha,
		GasConstant:                types.GasConstant,
		Faraday:                    types.Faraday,
		NumCells:                   types.DefaultNumCells,
		ActiveAreaCm2:              types.DefaultActiveAreaCm2,
	}
}

// Validate 校验配置参数。
func (cfg Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
