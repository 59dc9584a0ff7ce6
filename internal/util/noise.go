package util

import (
	"math"

	"github.com/annel0/vectors-2d/vec"
	"github.com/aquilax/go-perlin"
)

// Heading выдаёт плавные изменения направления на основе шума Перлина
type Heading struct {
	noise   *perlin.Perlin
	scale   float64
	maxTurn float64
	t       float64
}

// NewHeading создаёт генератор поворотов.
// scale - шаг по оси шума за тик, maxTurn - максимальный поворот в градусах.
func NewHeading(seed int64, scale, maxTurn float64) *Heading {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	return &Heading{
		noise:   perlin.NewPerlin(alpha, beta, n, seed),
		scale:   scale,
		maxTurn: maxTurn,
	}
}

// Next возвращает следующий поворот в градусах в диапазоне [-maxTurn, maxTurn]
func (h *Heading) Next() float64 {
	h.t += h.scale
	// Шум примерно в диапазоне от -1 до 1
	n := math.Max(-1, math.Min(1, h.noise.Noise1D(h.t)))
	return n * h.maxTurn
}

// Steer поворачивает скорость на следующий шаг шума и держит её длину в [minSpeed, maxSpeed]
func (h *Heading) Steer(velocity *vec.V2D, minSpeed, maxSpeed float64) *vec.V2D {
	return velocity.Rotate(h.Next()).Limit(minSpeed, maxSpeed)
}

// PerlinNoise2D возвращает значение шума Перлина для указанных координат (от 0 до 1)
func PerlinNoise2D(p vec.VectorLike, seed int64) float64 {
	x, y := p.Coords()
	noise := perlin.NewPerlin(2, 2, 3, seed).Noise2D(x, y)

	// Преобразуем в диапазон от 0 до 1
	return (math.Max(-1, math.Min(1, noise)) + 1.0) / 2.0
}
