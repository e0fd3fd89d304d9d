package periscope

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/spatial/r2"
)

// Colors used when plotting a scene
const (
	TubeColor   = "#000000"
	MirrorColor = "#0000FF"
	RayColor    = "#FF0000"
	TextColor   = "#000000"
	Background  = "#FFFFFF"
)

// View renders a scene into an image of XSize x YSize pixels. The scene's
// viewport is scaled to fit and the y axis is flipped so that +y points up.
type View struct {
	Scene Scene
	XSize int
	YSize int
	// These cache the values needed to scale and translate from the scene to the requested image size
	scale      float64
	xTranslate float64
	yTranslate float64
}

func (view *View) computeScaleAndTranslation() {
	vp := view.Scene.Viewport
	view.xTranslate = -vp.XMin
	view.yTranslate = -vp.YMin
	XScale := float64(view.XSize) / (vp.XMax - vp.XMin)
	YScale := float64(view.YSize) / (vp.YMax - vp.YMin)
	view.scale = math.Min(XScale, YScale)
}

func (view *View) getScale() float64 {
	if view.scale == 0 {
		view.computeScaleAndTranslation()
	}
	return view.scale
}

// toImage maps a scene position to image coordinates
func (view *View) toImage(p r2.Vec) (float64, float64) {
	s := view.getScale()
	x := (p.X + view.xTranslate) * s
	y := float64(view.YSize) - (p.Y+view.yTranslate)*s
	return x, y
}

func (view *View) drawLine(c *gg.Context, a, b r2.Vec, width float64) {
	x1, y1 := view.toImage(a)
	x2, y2 := view.toImage(b)
	c.SetLineWidth(width)
	c.DrawLine(x1, y1, x2, y2)
	c.Stroke()
}

// Plot draws the tube, the mirrors, the traced path and its labels
func (view *View) Plot(path Path) (image.Image, error) {
	c := gg.NewContext(view.XSize, view.YSize)
	c.SetHexColor(Background)
	c.Clear()

	tube := view.Scene.Tube
	c.SetHexColor(TubeColor)
	x, y := view.toImage(V(tube.Left, tube.Top))
	s := view.getScale()
	c.SetLineWidth(2)
	c.DrawRectangle(x, y, tube.Width()*s, tube.Height()*s)
	c.Stroke()

	c.SetHexColor(MirrorColor)
	for _, mirror := range view.Scene.Mirrors() {
		a, b := mirror.Endpoints()
		view.drawLine(c, a, b, 4)
	}

	c.SetHexColor(RayColor)
	for _, segment := range path.Segments {
		view.drawLine(c, segment.From, segment.To, 2)
	}

	c.SetHexColor(TextColor)
	for _, label := range view.Scene.Labels(path) {
		lx, ly := view.toImage(label.Position)
		c.DrawStringAnchored(label.Text, lx, ly, label.AnchorX, 0)
	}

	return c.Image(), nil
}

// Save writes an image to filename as PNG
func Save(filename string, i image.Image) error {
	return gg.SavePNG(filename, i)
}
