package model

import (
	"fuelcell/types"

	"gonum.org/v1/gonum/mat"
)

// Map 对电流密度序列逐点计算，返回等长结果。
func (m *Model) Map(q types.Quantity, i []float64) []float64 {
	out := make([]float64, len(i))
	for k, v := range i {
		out[k] = m.Eval(q, v)
	}
	return out
}

// MapVec 对向量逐元素计算。空向量返回零值 VecDense。
func (m *Model) MapVec(q types.Quantity, i mat.Vector) *mat.VecDense {
	n := i.Len()
	if n == 0 {
		return &mat.VecDense{}
	}
	out := mat.NewVecDense(n, nil)
	for k := 0; k < n; k++ {
		out.SetVec(k, m.Eval(q, i.AtVec(k)))
	}
	return out
}
