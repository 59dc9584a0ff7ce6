package vec

import "math"

// Length возвращает длину вектора, округлённую до Precision
func (v *V2D) Length() float64 {
	return v.Precise(math.Sqrt(v.X*v.X + v.Y*v.Y))
}

// Resize меняет длину вектора на size, сохраняя направление.
// Вектор нулевой длины сбрасывается в (0,0).
func (v *V2D) Resize(size float64) *V2D {
	length := v.Length()
	if length == 0 || math.IsNaN(length) {
		return v.Reset(0, 0)
	}
	return v.Multiply(Scalar(size / length))
}

// Normalize приводит длину к единице
func (v *V2D) Normalize() *V2D {
	return v.Resize(1)
}

// Normalized возвращает нормализованную копию, исходный вектор не меняется
func (v *V2D) Normalized() *V2D {
	return v.Clone().Normalize()
}

// Limit ограничивает длину диапазоном [min, max]
func (v *V2D) Limit(min, max float64) *V2D {
	length := v.Length()
	if length > max {
		v.Resize(max)
	} else if length < min {
		v.Resize(min)
	}
	return v
}

// AddSize увеличивает длину на size
func (v *V2D) AddSize(size float64) *V2D {
	return v.Resize(v.Length() + size)
}

// SubtractSize уменьшает длину на size
func (v *V2D) SubtractSize(size float64) *V2D {
	return v.Resize(v.Length() - size)
}

// MultiplySize умножает длину на size
func (v *V2D) MultiplySize(size float64) *V2D {
	return v.Resize(v.Length() * size)
}

// DivideSize делит длину на size
func (v *V2D) DivideSize(size float64) *V2D {
	return v.Resize(v.Length() / size)
}

// DistanceTo вычисляет расстояние до другой точки. Операнды не меняются.
func (v *V2D) DistanceTo(o VectorLike) float64 {
	return v.Clone().Subtract(o).Length()
}
