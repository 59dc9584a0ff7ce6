package vec

import "math"

// Reverse разворачивает вектор на 180 градусов
func (v *V2D) Reverse() *V2D {
	v.X *= -1
	v.Y *= -1
	return v
}

// Angle возвращает угол вектора в градусах (-180..180]
func (v *V2D) Angle() float64 {
	return v.Precise(math.Atan2(v.Y, v.X) * 180 / math.Pi)
}

// AngleRD возвращает угол вектора в радианах
func (v *V2D) AngleRD() float64 {
	return v.Precise(math.Atan2(v.Y, v.X))
}

// Incline возвращает наклон y/x без округления
func (v *V2D) Incline() float64 {
	return v.Y / v.X
}

// RotateTo строит вектор заново из текущей длины и угла degrees.
// Прежнее направление отбрасывается.
func (v *V2D) RotateTo(degrees float64) *V2D {
	return v.RotateToRD(degrees / 180 * math.Pi)
}

// Rotate поворачивает вектор на degrees относительно текущего угла
func (v *V2D) Rotate(degrees float64) *V2D {
	return v.RotateTo(v.Angle() + degrees)
}

// RotateToRD то же, что RotateTo, но угол задан в радианах
func (v *V2D) RotateToRD(radians float64) *V2D {
	length := v.Length()
	v.X = v.Precise(math.Cos(radians) * length)
	v.Y = v.Precise(math.Sin(radians) * length)
	return v
}

// RotateRD поворачивает вектор на radians относительно текущего угла:
// radians прибавляется к AngleRD(), и вектор строится заново через RotateToRD.
func (v *V2D) RotateRD(radians float64) *V2D {
	return v.RotateToRD(v.AngleRD() + radians)
}
