// Package vec содержит изменяемый 2D вектор V2D с цепочечными методами.
//
// Мутаторы меняют вектор на месте и возвращают его же, поэтому вызовы
// можно объединять: vec.New(3, 4).Normalize().Rotate(90).
// Экземпляр не защищён от одновременной записи из нескольких горутин.
package vec

import (
	"fmt"
	"math"
	"math/big"
)

const (
	// DefaultPrecision - точность округления для новых векторов
	DefaultPrecision = 20
	// MaxPrecision - максимальное количество знаков после запятой
	MaxPrecision = 20
)

// V2D представляет точку или направление в декартовой плоскости
type V2D struct {
	X, Y float64

	precision    int
	precisionSet bool
}

// New создаёт вектор из двух координат
func New(x, y float64) *V2D {
	return &V2D{X: x, Y: y}
}

// FromPair создаёт вектор из упорядоченной пары
func FromPair(pair [2]float64) *V2D {
	return New(pair[0], pair[1])
}

// FromSlice создаёт вектор из среза ровно из двух элементов
func FromSlice(s []float64) (*V2D, error) {
	if len(s) != 2 {
		return nil, fmt.Errorf("ожидалось 2 координаты, получено %d: %w", len(s), ErrInvalidArgument)
	}
	return New(s[0], s[1]), nil
}

// From создаёт вектор из любого объекта с координатами x и y.
// Точность исходного V2D не копируется, для этого есть Clone.
func From(o VectorLike) *V2D {
	x, y := o.Coords()
	return New(x, y)
}

// Precision возвращает текущую точность округления
func (v *V2D) Precision() int {
	if !v.precisionSet {
		return DefaultPrecision
	}
	return v.precision
}

// SetPrecision задаёт количество знаков после запятой (0..MaxPrecision)
func (v *V2D) SetPrecision(p int) error {
	if p < 0 || p > MaxPrecision {
		return fmt.Errorf("точность %d вне диапазона 0..%d: %w", p, MaxPrecision, ErrInvalidArgument)
	}
	v.precision = p
	v.precisionSet = true
	return nil
}

// Reset перезаписывает координаты
func (v *V2D) Reset(x, y float64) *V2D {
	v.X = x
	v.Y = y
	return v
}

// ResetTo копирует координаты из другого объекта
func (v *V2D) ResetTo(o VectorLike) *V2D {
	return v.Reset(o.Coords())
}

// Clone возвращает независимую копию вместе с точностью
func (v *V2D) Clone() *V2D {
	c := *v
	return &c
}

// Precise округляет value до Precision знаков после запятой.
// Половина округляется от нуля по точному двоичному значению value,
// поэтому 2.5 даёт 3, а 1.005 (на деле 1.00499...) при двух знаках даёт 1.
// NaN и бесконечности возвращаются без изменений.
func (v *V2D) Precise(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	abs := math.Abs(value)
	if abs >= 1e21 {
		// дробной части у таких чисел нет
		return value
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(v.Precision())), nil)
	scaled := new(big.Rat).SetFloat64(abs)
	scaled.Mul(scaled, new(big.Rat).SetInt(scale))

	q, rem := new(big.Int).QuoRem(scaled.Num(), scaled.Denom(), new(big.Int))
	if rem.Lsh(rem, 1).Cmp(scaled.Denom()) >= 0 {
		q.Add(q, big.NewInt(1))
	}

	rounded, _ := new(big.Rat).SetFrac(q, scale).Float64()
	if value < 0 {
		return -rounded
	}
	return rounded
}

// Add прибавляет операнд покомпонентно
func (v *V2D) Add(o VectorLike) *V2D {
	x, y := o.Coords()
	v.X += x
	v.Y += y
	return v
}

// Subtract вычитает операнд покомпонентно
func (v *V2D) Subtract(o VectorLike) *V2D {
	x, y := o.Coords()
	v.X -= x
	v.Y -= y
	return v
}

// Multiply умножает покомпонентно
func (v *V2D) Multiply(o VectorLike) *V2D {
	x, y := o.Coords()
	v.X *= x
	v.Y *= y
	return v
}

// Divide делит покомпонентно. Деление на ноль даёт ±Inf или NaN.
func (v *V2D) Divide(o VectorLike) *V2D {
	x, y := o.Coords()
	v.X /= x
	v.Y /= y
	return v
}

// Point возвращает снимок координат
func (v *V2D) Point() Point {
	return Point{X: v.X, Y: v.Y}
}

// Equals сравнивает координаты без учёта точности
func (v *V2D) Equals(o VectorLike) bool {
	x, y := o.Coords()
	return v.X == x && v.Y == y
}

func (v *V2D) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
