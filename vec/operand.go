package vec

// VectorLike - любой операнд, у которого есть координаты x и y.
// Через него методы V2D принимают как векторы, так и скаляры.
type VectorLike interface {
	Coords() (x, y float64)
}

// Scalar - число, применяемое одинаково к обеим осям
type Scalar float64

// Coords возвращает скаляр для обеих осей
func (s Scalar) Coords() (float64, float64) {
	return float64(s), float64(s)
}

// Point - простая пара координат без точности и методов-мутаторов
type Point struct {
	X, Y float64
}

// Coords возвращает координаты точки
func (p Point) Coords() (float64, float64) {
	return p.X, p.Y
}

// Coords возвращает текущие координаты вектора
func (v V2D) Coords() (float64, float64) {
	return v.X, v.Y
}
