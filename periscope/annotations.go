package periscope

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
)

// JSON schema types
type PointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type MirrorJSON struct {
	Name      string    `json:"name,omitempty"`
	Center    PointJSON `json:"center"`
	Direction PointJSON `json:"direction"`
	Length    float64   `json:"length"`
	Color     string    `json:"color,omitempty"`
}

type SegmentJSON struct {
	From  PointJSON `json:"from"`
	To    PointJSON `json:"to"`
	Kind  string    `json:"kind"`
	Color string    `json:"color,omitempty"`
}

type HitJSON struct {
	Point  PointJSON `json:"point"`
	S      float64   `json:"s"`
	T      float64   `json:"t"`
	Mirror string    `json:"mirror,omitempty"`
}

type AnnotationsJSON struct {
	Mirrors  []MirrorJSON  `json:"mirrors"`
	Segments []SegmentJSON `json:"segments"`
	Hits     []HitJSON     `json:"hits,omitempty"`
	State    string        `json:"state"`
}

// Conversion functions
func VectorToJSON(v r2.Vec) PointJSON {
	return PointJSON{X: v.X, Y: v.Y}
}

func MirrorToJSON(m Mirror) MirrorJSON {
	return MirrorJSON{
		Name:      m.Name,
		Center:    VectorToJSON(m.Center),
		Direction: VectorToJSON(m.Direction),
		Length:    m.Length,
		Color:     MirrorColor,
	}
}

func SegmentToJSON(s PathSegment) SegmentJSON {
	return SegmentJSON{
		From:  VectorToJSON(s.From),
		To:    VectorToJSON(s.To),
		Kind:  s.Kind.String(),
		Color: RayColor,
	}
}

// Annotations collects the mirrors and the traced path of a scene for export
func Annotations(mirrors []Mirror, path Path) AnnotationsJSON {
	container := AnnotationsJSON{
		Mirrors:  make([]MirrorJSON, 0, len(mirrors)),
		Segments: make([]SegmentJSON, 0, len(path.Segments)),
		Hits:     make([]HitJSON, 0, len(path.Hits)),
		State:    path.State.String(),
	}
	for _, m := range mirrors {
		container.Mirrors = append(container.Mirrors, MirrorToJSON(m))
	}
	for _, s := range path.Segments {
		container.Segments = append(container.Segments, SegmentToJSON(s))
	}
	// Hits are recorded in mirror order, so the i'th hit belongs to the i'th
	// mirror. Hits beyond the given mirrors are exported without a name.
	for i, h := range path.Hits {
		hit := HitJSON{
			Point: VectorToJSON(h.Point),
			S:     h.S,
			T:     h.T,
		}
		if i < len(mirrors) {
			hit.Mirror = mirrors[i].Name
		}
		container.Hits = append(container.Hits, hit)
	}
	return container
}

// SaveAnnotationsToJSON saves mirrors and the traced path to a JSON file
func SaveAnnotationsToJSON(filename string, mirrors []Mirror, path Path) error {
	data, err := json.MarshalIndent(Annotations(mirrors, path), "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling mirrors and path: %w", err)
	}

	return os.WriteFile(filename, data, 0644)
}
