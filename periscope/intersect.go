package periscope

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ParallelEpsilon is the smallest determinant magnitude for which a ray and a
// mirror are not treated as parallel.
const ParallelEpsilon = 1e-6

// Ray is a half-line. Direction is expected to be a unit vector; the zero
// vector denotes a dead ray that hits nothing.
type Ray struct {
	Origin    r2.Vec
	Direction r2.Vec
}

// At returns the point at distance s along the ray
func (r Ray) At(s float64) r2.Vec {
	return r2.Add(r.Origin, r2.Scale(s, r.Direction))
}

// Hit describes where a ray meets a mirror
type Hit struct {
	Point r2.Vec
	// Distance along the ray
	S float64
	// Signed offset along the mirror from its center
	T float64
}

// Intersect solves ray.Origin + s*ray.Direction = m.Center + t*m.Direction.
//
// It reports false when the two are (nearly) parallel, when the intersection
// lies behind the ray origin, or when it lies off the ends of the mirror.
func Intersect(ray Ray, m Mirror) (Hit, bool) {
	d := ray.Direction
	md := m.Direction
	b := r2.Sub(m.Center, ray.Origin)

	det := -d.X*md.Y + md.X*d.Y
	if math.Abs(det) < ParallelEpsilon {
		return Hit{}, false
	}

	s := (-b.X*md.Y + md.X*b.Y) / det
	t := (d.X*b.Y - d.Y*b.X) / det

	if s < 0 || math.Abs(t) > m.Length/2 {
		return Hit{}, false
	}
	return Hit{Point: ray.At(s), S: s, T: t}, true
}
