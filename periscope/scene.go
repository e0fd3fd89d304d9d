package periscope

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Layout of the periscope demonstrator, in scene units
const (
	DefaultEntryX       = 100.0
	DefaultMirrorLength = 150.0

	DefaultTopAngle    = 135.0
	DefaultBottomAngle = -45.0
	DefaultEntryHeight = 450.0
)

// Ranges of the demonstrator's controls. These describe a physically sensible
// periscope; the geometry engine accepts any value.
var (
	TopAngleRange    = Range{Min: 90, Max: 170}
	BottomAngleRange = Range{Min: -80, Max: 10}
	EntryHeightRange = Range{Min: 350, Max: 520}
)

// Range is a closed interval
type Range struct {
	Min, Max float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Tube is the axis-aligned outline of the periscope body
type Tube struct {
	Left, Right, Bottom, Top float64
}

func (t Tube) Width() float64 {
	return t.Right - t.Left
}

func (t Tube) Height() float64 {
	return t.Top - t.Bottom
}

// Viewport is the region of the scene that is drawn
type Viewport struct {
	XMin, XMax, YMin, YMax float64
}

// Label is a piece of text anchored at a scene position
type Label struct {
	Text     string
	Position r2.Vec
	// Horizontal anchor: 0 is left aligned, 0.5 centered
	AnchorX float64
}

// Scene is a fully parameterized periscope: the tube, the mirrors the ray
// visits in order, and the incoming ray.
type Scene struct {
	Tube     Tube
	Viewport Viewport

	TopCenter    r2.Vec
	BottomCenter r2.Vec
	MirrorLength float64
	TopAngle     float64
	BottomAngle  float64
	// Further mirrors visited after the bottom mirror, in order
	Extra []Mirror

	EntryX      float64
	EntryHeight float64

	Params TraceParams
}

// DefaultScene is the periscope the demonstrator starts with
func DefaultScene() Scene {
	return Scene{
		Tube:         Tube{Left: 350, Right: 450, Bottom: 80, Top: 520},
		Viewport:     Viewport{XMin: 0, XMax: 800, YMin: 0, YMax: 600},
		TopCenter:    V(400, 450),
		BottomCenter: V(400, 150),
		MirrorLength: DefaultMirrorLength,
		TopAngle:     DefaultTopAngle,
		BottomAngle:  DefaultBottomAngle,
		EntryX:       DefaultEntryX,
		EntryHeight:  DefaultEntryHeight,
		Params:       DefaultTraceParams(),
	}
}

// WithControls returns a copy of the scene with the three demonstrator
// controls replaced.
func (s Scene) WithControls(topAngle, bottomAngle, entryHeight float64) Scene {
	s.TopAngle = topAngle
	s.BottomAngle = bottomAngle
	s.EntryHeight = entryHeight
	return s
}

func (s Scene) TopMirror() Mirror {
	return NewMirror("top", s.TopCenter, s.TopAngle, s.MirrorLength)
}

func (s Scene) BottomMirror() Mirror {
	return NewMirror("bottom", s.BottomCenter, s.BottomAngle, s.MirrorLength)
}

// Mirrors returns every mirror in the order the ray visits them
func (s Scene) Mirrors() []Mirror {
	mirrors := make([]Mirror, 0, 2+len(s.Extra))
	mirrors = append(mirrors, s.TopMirror(), s.BottomMirror())
	return append(mirrors, s.Extra...)
}

// IncomingRay is the horizontal ray entering from the left
func (s Scene) IncomingRay() Ray {
	return Ray{Origin: V(s.EntryX, s.EntryHeight), Direction: V(1, 0)}
}

// Trace traces the scene's incoming ray through its mirrors
func (s Scene) Trace() Path {
	return Trace(s.IncomingRay(), s.Mirrors(), s.Params)
}

// Labels returns the captions drawn alongside a traced path
func (s Scene) Labels(path Path) []Label {
	labels := []Label{
		{Text: "Periscope (side view)", Position: V((s.Tube.Left+s.Tube.Right)/2, s.Tube.Top+25), AnchorX: 0.5},
		{Text: "Incoming light", Position: V(s.EntryX+120, s.EntryHeight+10)},
	}
	if path.State == Done {
		labels = append(labels, Label{
			Text:     "Outgoing light",
			Position: r2.Add(path.Outgoing.Origin, V(160, 0)),
		})
	}
	return labels
}
