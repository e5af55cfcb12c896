package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagnitudeCmp(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		r    float32
		want int
	}{
		{"longer", New(3, 4), 4.9, 1},
		{"equal", New(3, 4), 5, 0},
		{"shorter", New(3, 4), 5.1, -1},
		{"zero", Vector{}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.MagnitudeCmp(tt.r))
		})
	}
}

func TestFromPolarTheta(t *testing.T) {
	v := FromPolar(2, math.Pi/2)
	assert.InDelta(t, 0, v.X, 1e-6)
	assert.InDelta(t, 2, v.Y, 1e-6)
	assert.InDelta(t, math.Pi/2, v.Theta(), 1e-6)
}

func TestWithMagnitude(t *testing.T) {
	v := New(30, 40).WithMagnitude(10)
	assert.InDelta(t, 6, v.X, 1e-5)
	assert.InDelta(t, 8, v.Y, 1e-5)
	assert.True(t, Vector{}.WithMagnitude(3).IsZero())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0), Clamp(-2, 0, 9))
	assert.Equal(t, float32(9), Clamp(12, 0, 9))
	assert.Equal(t, float32(4.5), Clamp(4.5, 0, 9))
}
