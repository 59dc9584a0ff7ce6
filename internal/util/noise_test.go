package util

import (
	"testing"

	"github.com/annel0/vectors-2d/vec"
	"github.com/stretchr/testify/assert"
)

func TestHeadingIsDeterministic(t *testing.T) {
	a := NewHeading(7, 0.13, 30)
	b := NewHeading(7, 0.13, 30)
	for i := 0; i < 50; i++ {
		turnA := a.Next()
		assert.Equal(t, turnA, b.Next())
		assert.LessOrEqual(t, turnA, 30.0)
		assert.GreaterOrEqual(t, turnA, -30.0)
	}
}

func TestSteerKeepsSpeedInRange(t *testing.T) {
	h := NewHeading(1, 0.21, 45)
	velocity := vec.New(10, 0)

	for i := 0; i < 20; i++ {
		h.Steer(velocity, 1, 3)
		assert.GreaterOrEqual(t, velocity.Length(), 1.0-1e-9)
		assert.LessOrEqual(t, velocity.Length(), 3.0+1e-9)
	}
}

func TestPerlinNoise2DRange(t *testing.T) {
	for _, p := range []vec.Point{{X: 0.5, Y: 0.5}, {X: 12.3, Y: -4.1}, {X: 100, Y: 0.01}} {
		n := PerlinNoise2D(p, 99)
		assert.GreaterOrEqual(t, n, 0.0)
		assert.LessOrEqual(t, n, 1.0)
	}
}
