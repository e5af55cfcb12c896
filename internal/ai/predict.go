package ai

import "github.com/arenasim/server/internal/vmath"

// Predict leads offset by where a target moving at velocity will be once
// something travelling at speed covers the distance. Zero speed means no lead.
func Predict(offset, velocity vmath.Vector, speed float32) vmath.Vector {
	if speed == 0 {
		return offset
	}
	return offset.Add(velocity.Scale(offset.Magnitude() / speed))
}
