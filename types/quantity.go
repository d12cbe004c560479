package types

// Quantity 模型输出量类型
type Quantity int

// 模型输出量常量定义
const (
	QuantityUnknown Quantity = iota // 未知类型

	ActivationOverpotential    // 活化过电位 (V)
	OhmicOverpotential         // 欧姆过电位 (V)
	ConcentrationOverpotential // 浓差过电位 (V)
	CellVoltage                // 单电池电压 (V)
	StackVoltage               // 电堆电压 (V)
	PowerDensity               // 功率密度 (W/cm²)
	Efficiency                 // 电压效率
)

// quantityString 输出量映射
var quantityString = map[Quantity]struct {
	Name string
	Unit string
}{
	QuantityUnknown:            {Name: "Unknown"},
	ActivationOverpotential:    {Name: "ActivationOverpotential", Unit: "V"},
	OhmicOverpotential:         {Name: "OhmicOverpotential", Unit: "V"},
	ConcentrationOverpotential: {Name: "ConcentrationOverpotential", Unit: "V"},
	CellVoltage:                {Name: "CellVoltage", Unit: "V"},
	StackVoltage:               {Name: "StackVoltage", Unit: "V"},
	PowerDensity:               {Name: "PowerDensity", Unit: "W/cm²"},
	Efficiency:                 {Name: "Efficiency", Unit: "-"},
}

// String 返回输出量的字符串表示
func (q Quantity) String() string {
	if qs, ok := quantityString[q]; ok {
		return qs.Name
	}
	return "Unknown"
}

// Unit 物理单位
func (q Quantity) Unit() string { return quantityString[q].Unit }

var mapName = map[string]Quantity{}

func init() {
	for q, qs := range quantityString {
		mapName[qs.Name] = q
	}
}

// GetNameQuantity 通过名称获取类型，未知名称返回 QuantityUnknown
func GetNameQuantity(name string) Quantity {
	return mapName[name]
}

// Quantities 全部有效输出量（按声明顺序）
func Quantities() []Quantity {
	return []Quantity{
		ActivationOverpotential,
		OhmicOverpotential,
		ConcentrationOverpotential,
		CellVoltage,
		StackVoltage,
		PowerDensity,
		Efficiency,
	}
}
