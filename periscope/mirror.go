package periscope

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Mirror is a finite, flat, fully reflective segment.
type Mirror struct {
	Name string
	// Midpoint of the segment
	Center r2.Vec
	// Unit vector along the segment
	Direction r2.Vec
	// Total length of the segment
	Length float64
}

// NewMirror builds a mirror centred on center and rotated angleDeg degrees
// counter-clockwise from the +x axis.
func NewMirror(name string, center r2.Vec, angleDeg, length float64) Mirror {
	return Mirror{
		Name:      name,
		Center:    center,
		Direction: UnitVectorFromAngle(angleDeg),
		Length:    length,
	}
}

// Endpoints returns both ends of the mirror segment.
func (m Mirror) Endpoints() (r2.Vec, r2.Vec) {
	half := r2.Scale(m.Length/2, m.Direction)
	return r2.Sub(m.Center, half), r2.Add(m.Center, half)
}

// Normal returns a unit normal of the mirror surface.
func (m Mirror) Normal() r2.Vec {
	return normal(m.Direction)
}
