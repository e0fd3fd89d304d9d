package config

import (
	"github.com/jdginn/go-periscope/periscope"
)

// Default returns the configuration of the demonstrator's initial scene
func Default() *PeriscopeConfig {
	s := periscope.DefaultScene()
	return &PeriscopeConfig{
		Tube: Tube{Left: s.Tube.Left, Right: s.Tube.Right, Bottom: s.Tube.Bottom, Top: s.Tube.Top},
		Mirrors: Mirrors{
			Length: s.MirrorLength,
			Top:    Mirror{Center: [2]float64{s.TopCenter.X, s.TopCenter.Y}, AngleDeg: s.TopAngle},
			Bottom: Mirror{Center: [2]float64{s.BottomCenter.X, s.BottomCenter.Y}, AngleDeg: s.BottomAngle},
		},
		Ray: Ray{
			EntryX:         s.EntryX,
			EntryHeight:    s.EntryHeight,
			EscapeDistance: s.Params.EscapeDistance,
		},
		Render: Render{
			Width:    800,
			Height:   600,
			Viewport: [4]float64{s.Viewport.XMin, s.Viewport.XMax, s.Viewport.YMin, s.Viewport.YMax},
		},
	}
}

func (m Mirror) length(fallback float64) float64 {
	if m.Length > 0 {
		return m.Length
	}
	return fallback
}

// Create builds the scene described by the configuration
func (c *PeriscopeConfig) Create() periscope.Scene {
	scene := periscope.Scene{
		Tube: periscope.Tube{Left: c.Tube.Left, Right: c.Tube.Right, Bottom: c.Tube.Bottom, Top: c.Tube.Top},
		Viewport: periscope.Viewport{
			XMin: c.Render.Viewport[0],
			XMax: c.Render.Viewport[1],
			YMin: c.Render.Viewport[2],
			YMax: c.Render.Viewport[3],
		},
		TopCenter:    periscope.V(c.Mirrors.Top.Center[0], c.Mirrors.Top.Center[1]),
		BottomCenter: periscope.V(c.Mirrors.Bottom.Center[0], c.Mirrors.Bottom.Center[1]),
		MirrorLength: c.Mirrors.Length,
		TopAngle:     c.Mirrors.Top.AngleDeg,
		BottomAngle:  c.Mirrors.Bottom.AngleDeg,
		EntryX:       c.Ray.EntryX,
		EntryHeight:  c.Ray.EntryHeight,
		Params:       periscope.TraceParams{EscapeDistance: c.Ray.EscapeDistance},
	}
	for _, m := range c.Mirrors.Extra.Inline {
		scene.Extra = append(scene.Extra, periscope.NewMirror(
			m.Name,
			periscope.V(m.Center[0], m.Center[1]),
			m.AngleDeg,
			m.length(c.Mirrors.Length),
		))
	}
	return scene
}
