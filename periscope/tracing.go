package periscope

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultEscapeDistance is how far a ray that leaves the periscope is drawn
const DefaultEscapeDistance = 1000.0

// TraceParams contains parameters to guide tracing
type TraceParams struct {
	// Length of the segment drawn for a ray that leaves the system, either
	// because it missed a mirror or because it has bounced off every mirror.
	//
	// This is a rendering convenience; the ray itself is unbounded.
	EscapeDistance float64
}

// DefaultTraceParams returns the parameters used by the periscope demonstrator
func DefaultTraceParams() TraceParams {
	return TraceParams{EscapeDistance: DefaultEscapeDistance}
}

// TraceState is the state of the single ray in flight
type TraceState int

const (
	// Traveling: the ray has a current origin and more mirrors to visit
	Traveling TraceState = iota
	// Escaped: the ray missed the next mirror and left the system
	Escaped
	// Done: the ray reflected off every mirror in sequence
	Done
)

func (s TraceState) String() string {
	switch s {
	case Traveling:
		return "traveling"
	case Escaped:
		return "escaped"
	case Done:
		return "done"
	}
	return "unknown"
}

// SegmentKind tags a drawable segment of a path
type SegmentKind int

const (
	// Traveled segments end where the ray hit a mirror
	Traveled SegmentKind = iota
	// Escape segments are extended by TraceParams.EscapeDistance
	Escape
)

func (k SegmentKind) String() string {
	if k == Escape {
		return "escape"
	}
	return "traveled"
}

// PathSegment is a straight piece of a ray path
type PathSegment struct {
	From r2.Vec
	To   r2.Vec
	Kind SegmentKind
}

// Length of the drawn segment
func (p PathSegment) Length() float64 {
	return r2.Norm(r2.Sub(p.To, p.From))
}

// Path is the result of tracing a ray through a sequence of mirrors
type Path struct {
	// The ray as it entered the system
	Incoming Ray
	// The ray as it left the system, from the last hit (or the entry point)
	Outgoing Ray
	Segments []PathSegment
	// One entry per mirror hit, in sequence order
	Hits  []Hit
	State TraceState
}

// Trace follows ray through mirrors in order. Each mirror gets exactly one
// chance: the ray either hits it and reflects toward the next one, or misses
// it and escapes.
func Trace(ray Ray, mirrors []Mirror, params TraceParams) Path {
	path := Path{
		Incoming: ray,
		Segments: make([]PathSegment, 0, len(mirrors)+1),
		State:    Traveling,
	}

	current := ray
	for _, mirror := range mirrors {
		hit, ok := Intersect(current, mirror)
		if !ok {
			path.Segments = append(path.Segments, escapeSegment(current, params))
			path.Outgoing = current
			path.State = Escaped
			return path
		}
		path.Segments = append(path.Segments, PathSegment{
			From: current.Origin,
			To:   hit.Point,
			Kind: Traveled,
		})
		path.Hits = append(path.Hits, hit)

		reflected := Ray{Origin: hit.Point, Direction: Reflect(current.Direction, mirror.Direction)}
		verifyReflectionLaw(current, mirror, reflected)
		current = reflected
	}

	path.Segments = append(path.Segments, escapeSegment(current, params))
	path.Outgoing = current
	path.State = Done
	return path
}

func escapeSegment(ray Ray, params TraceParams) PathSegment {
	return PathSegment{
		From: ray.Origin,
		To:   ray.At(params.EscapeDistance),
		Kind: Escape,
	}
}

// ComputeRayPath traces the demonstrator's horizontal incoming ray through a
// top and a bottom mirror, both of length mirrorLength.
func ComputeRayPath(topAngleDeg, bottomAngleDeg, entryHeightY, mirrorLength float64, topMirrorCenter, bottomMirrorCenter r2.Vec) []PathSegment {
	mirrors := []Mirror{
		NewMirror("top", topMirrorCenter, topAngleDeg, mirrorLength),
		NewMirror("bottom", bottomMirrorCenter, bottomAngleDeg, mirrorLength),
	}
	ray := Ray{Origin: V(DefaultEntryX, entryHeightY), Direction: V(1, 0)}
	return Trace(ray, mirrors, DefaultTraceParams()).Segments
}
