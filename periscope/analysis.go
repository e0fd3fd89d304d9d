package periscope

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Summary describes a traced path in a few numbers
type Summary struct {
	State TraceState
	// Number of mirrors hit before the ray left the system
	Hits int
	// Length traveled between the entry point and the last hit. Escape
	// segments are not counted.
	TraveledLength float64
	// Direction of the outgoing ray, in degrees from +x
	ExitAngle float64
	// Angle between the incoming and outgoing directions, in degrees
	Deviation float64
	// Perpendicular distance between the incoming ray's line and the
	// outgoing ray's line. Only meaningful when they are parallel.
	LateralOffset float64
}

// Summarize computes the Summary of a traced path
func Summarize(path Path) Summary {
	traveled := 0.0
	for _, segment := range path.Segments {
		if segment.Kind == Traveled {
			traveled += segment.Length()
		}
	}

	in := path.Incoming.Direction
	out := path.Outgoing.Direction

	var deviation, offset float64
	if out != (r2.Vec{}) && in != (r2.Vec{}) {
		cos := math.Max(-1, math.Min(1, r2.Dot(in, out)/(r2.Norm(in)*r2.Norm(out))))
		deviation = math.Acos(cos) / math.Pi * 180
		// distance from the outgoing origin to the incoming line
		offset = math.Abs(r2.Cross(r2.Unit(in), r2.Sub(path.Outgoing.Origin, path.Incoming.Origin)))
	}

	return Summary{
		State:          path.State,
		Hits:           len(path.Hits),
		TraveledLength: traveled,
		ExitAngle:      AngleOf(out),
		Deviation:      deviation,
		LateralOffset:  offset,
	}
}
