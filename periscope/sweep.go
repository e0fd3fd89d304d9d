package periscope

import (
	"fmt"
	"io"

	lin "github.com/sgreben/piecewiselinear"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SweepTarget selects which mirror's angle a sweep varies
type SweepTarget string

const (
	SweepTop    SweepTarget = "top"
	SweepBottom SweepTarget = "bottom"
)

// SweepSample is one traced configuration of a sweep
type SweepSample struct {
	Angle   float64
	Summary Summary
}

// Sweep is the exit behavior of a scene as one mirror angle varies
type Sweep struct {
	Target  SweepTarget
	Samples []SweepSample
}

// NewSweep traces the scene once per step across r, varying the target
// mirror's angle and leaving everything else fixed.
func NewSweep(scene Scene, target SweepTarget, r Range, step float64) (Sweep, error) {
	if step <= 0 {
		return Sweep{}, fmt.Errorf("sweep step must be positive, got %v", step)
	}
	if r.Max < r.Min {
		return Sweep{}, fmt.Errorf("empty sweep range [%v, %v]", r.Min, r.Max)
	}
	if target != SweepTop && target != SweepBottom {
		return Sweep{}, fmt.Errorf("unknown sweep target %q", target)
	}

	sweep := Sweep{Target: target}
	n := int((r.Max-r.Min)/step) + 1
	for i := 0; i < n; i++ {
		angle := r.Min + float64(i)*step
		s := scene
		if target == SweepTop {
			s.TopAngle = angle
		} else {
			s.BottomAngle = angle
		}
		sweep.Samples = append(sweep.Samples, SweepSample{
			Angle:   angle,
			Summary: Summarize(s.Trace()),
		})
	}
	return sweep, nil
}

// Completed returns only the samples where the ray made it through every mirror
func (s Sweep) Completed() []SweepSample {
	var done []SweepSample
	for _, sample := range s.Samples {
		if sample.Summary.State == Done {
			done = append(done, sample)
		}
	}
	return done
}

// ExitAngleCurve interpolates the exit angle between completed samples.
// Callers should check the range with Completed first; the curve knows
// nothing about angles where the ray escaped.
func (s Sweep) ExitAngleCurve() lin.Function {
	done := s.Completed()
	f := lin.Function{
		X: make([]float64, len(done)),
		Y: make([]float64, len(done)),
	}
	for i, sample := range done {
		f.X[i] = sample.Angle
		f.Y[i] = sample.Summary.ExitAngle
	}
	return f
}

// Plot draws exit angle against mirror angle for completed samples and
// writes it as a PNG of X by Y points.
func (s Sweep) Plot(w io.Writer, X, Y int) error {
	p := plot.New()
	p.Title.Text = "Exit angle"
	p.X.Label.Text = fmt.Sprintf("%s mirror angle (deg)", s.Target)
	p.Y.Label.Text = "Outgoing ray angle (deg)"

	done := s.Completed()
	if len(done) == 0 {
		return fmt.Errorf("no %s mirror angle lets the ray through", s.Target)
	}
	xys := make(plotter.XYs, len(done))
	for i, sample := range done {
		xys[i].X = sample.Angle
		xys[i].Y = sample.Summary.ExitAngle
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	p.Add(line)

	wt, err := p.WriterTo(vg.Points(float64(X)), vg.Points(float64(Y)), "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
