//go:build verify_reflections
// +build verify_reflections

package periscope

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Constants for verification
const (
	lengthEpsilon = 1e-7
	angleEpsilon  = 1e-7
)

func init() {
	fmt.Println("Reflection verification enabled.")
}

func verifyReflectionLaw(incident Ray, mirror Mirror, reflected Ray) {
	if incident.Direction == (r2.Vec{}) {
		return
	}
	// Reflected direction should maintain unit length
	if math.Abs(r2.Norm(reflected.Direction)-1.0) > lengthEpsilon {
		panic(fmt.Sprintf("reflected direction %v is not a unit vector", reflected.Direction))
	}

	// Angle of incidence should equal angle of reflection, measured from the
	// normal on the side each ray is on
	n := mirror.Normal()
	incidentAngle := math.Acos(math.Min(1, math.Abs(r2.Dot(incident.Direction, n))))
	reflectedAngle := math.Acos(math.Min(1, math.Abs(r2.Dot(reflected.Direction, n))))
	if math.Abs(incidentAngle-reflectedAngle) > angleEpsilon {
		panic("angle of incidence should equal angle of reflection")
	}

	// And the reflected ray must leave on the side it arrived from
	if r2.Dot(incident.Direction, n)*r2.Dot(reflected.Direction, n) > 0 {
		panic("reflected ray passes through the mirror")
	}
}
