package periscope

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// V is a shorthand constructor for r2.Vec
func V(X, Y float64) r2.Vec {
	return r2.Vec{X: X, Y: Y}
}

// UnitVectorFromAngle returns the unit vector for an angle in degrees,
// measured counter-clockwise from the +x axis.
func UnitVectorFromAngle(deg float64) r2.Vec {
	rad := deg / 180 * math.Pi
	return r2.Vec{X: math.Cos(rad), Y: math.Sin(rad)}
}

// AngleOf is the inverse of UnitVectorFromAngle, in degrees in (-180, 180].
func AngleOf(v r2.Vec) float64 {
	return math.Atan2(v.Y, v.X) / math.Pi * 180
}

// normal returns m rotated by 90 degrees. Reflection does not care which of
// the two normals is used.
func normal(m r2.Vec) r2.Vec {
	return r2.Vec{X: -m.Y, Y: m.X}
}

// Reflect reflects direction v across a mirror whose direction is the unit
// vector m.
//
// The result is normalized. A zero-length result (only possible when v is the
// zero vector) is returned as the zero vector.
func Reflect(v, m r2.Vec) r2.Vec {
	n := normal(m)
	dot := r2.Dot(v, n)
	r := r2.Sub(v, r2.Scale(2*dot, n))

	length := r2.Norm(r)
	if length == 0 {
		return r2.Vec{}
	}
	return r2.Scale(1/length, r)
}
