package types

// 物理常数默认值
const (
	GasConstant = 8.314   // 通用气体常数 R (J/(mol·K))
	Faraday     = 96485.0 // 法拉第常数 F (C/mol)
)

// 默认电堆参数
const (
	DefaultTemperatureK               = 353.15 // 工作温度 (K)
	DefaultNernstVoltageV             = 1.18   // 可逆开路电压 (V)
	DefaultMembraneResistanceOhmCm2   = 0.2    // 膜面电阻 (Ω·cm²)
	DefaultExchangeCurrentDensityACm2 = 1e-3   // 交换电流密度 i0 (A/cm²)
	DefaultLimitingCurrentDensityACm2 = 2.0    // 极限电流密度 i_lim (A/cm²)
	DefaultAlpha                      = 0.5    // 电荷转移系数
	DefaultNumCells                   = 50     // 串联单电池数量
	DefaultActiveAreaCm2              = 50.0   // 单电池有效面积 (cm²)
)

// 数值保护常量
const (
	MinCurrentDensity = 1e-8     // 活化过电位计算的电流密度下限，防止 log(0)
	MaxLimitingRatio  = 0.999999 // 浓差过电位 i/i_lim 上限，防止 log(0) 发散
)

// 默认扫描范围
const (
	DefaultSweepStart  = 0.01 // 起始电流密度 (A/cm²)
	DefaultSweepStop   = 1.8  // 终止电流密度 (A/cm²)
	DefaultSweepPoints = 200  // 采样点数
)
