package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	v := New(1.5, -2.25)
	assert.Same(t, v, v.Reverse())
	assert.Equal(t, Point{X: -1.5, Y: 2.25}, v.Point())
	v.Reverse()
	assert.Equal(t, Point{X: 1.5, Y: -2.25}, v.Point())
}

func TestAngle(t *testing.T) {
	assert.Equal(t, 0.0, New(1, 0).Angle())
	assert.InDelta(t, 90.0, New(0, 3).Angle(), tolerance)
	assert.InDelta(t, 180.0, New(-1, 0).Angle(), tolerance)
	assert.InDelta(t, -45.0, New(1, -1).Angle(), tolerance)
	assert.InDelta(t, math.Pi/2, New(0, 1).AngleRD(), tolerance)

	v := New(1, 2)
	_ = v.SetPrecision(2)
	assert.Equal(t, 63.43, v.Angle())
	assert.Equal(t, 1.11, v.AngleRD())
}

func TestRotate(t *testing.T) {
	v := New(1, 0).Rotate(90)
	assert.InDelta(t, 0.0, v.X, tolerance)
	assert.InDelta(t, 1.0, v.Y, tolerance)

	v.Rotate(90)
	assert.InDelta(t, -1.0, v.X, tolerance)
	assert.InDelta(t, 0.0, v.Y, tolerance)
}

func TestRotateTo(t *testing.T) {
	for _, deg := range []float64{0, 30, 90, 135, 179, -60, -170, 270, 400} {
		v := New(3, 4).RotateTo(deg)
		assert.InDelta(t, 5.0, v.Length(), tolerance, "угол %v", deg)

		want := math.Mod(deg, 360)
		if want > 180 {
			want -= 360
		}
		assert.InDelta(t, want, v.Angle(), 1e-6, "угол %v", deg)
	}
}

func TestRotateToDiscardsDirection(t *testing.T) {
	a := New(0, -2).RotateTo(45)
	b := New(-2, 0).RotateTo(45)
	assert.InDelta(t, a.X, b.X, tolerance)
	assert.InDelta(t, a.Y, b.Y, tolerance)
}

func TestRotateToRoundsResult(t *testing.T) {
	v := New(1, 0)
	_ = v.SetPrecision(3)
	v.RotateTo(90)
	assert.Equal(t, 0.0, v.X)
	assert.Equal(t, 1.0, v.Y)
}

func TestRotateRD(t *testing.T) {
	v := New(2, 0).RotateToRD(math.Pi)
	assert.InDelta(t, -2.0, v.X, tolerance)
	assert.InDelta(t, 0.0, v.Y, tolerance)

	// поворот в радианах прибавляется к текущему углу в радианах
	w := New(0, 1).RotateRD(math.Pi / 2)
	assert.InDelta(t, -1.0, w.X, tolerance)
	assert.InDelta(t, 0.0, w.Y, tolerance)

	u := New(1, 1).RotateRD(-math.Pi / 4)
	assert.InDelta(t, math.Sqrt2, u.X, tolerance)
	assert.InDelta(t, 0.0, u.Y, tolerance)
}

func TestZeroVectorRotation(t *testing.T) {
	v := New(0, 0).Rotate(45)
	assert.Equal(t, 0.0, v.Length())
}
