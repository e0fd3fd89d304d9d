package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/jdginn/go-periscope/interact"
	"github.com/jdginn/go-periscope/internal/settings"
	"github.com/jdginn/go-periscope/logger"
	"github.com/jdginn/go-periscope/periscope"
	periscopeConfig "github.com/jdginn/go-periscope/periscope/config"
	periscopeRun "github.com/jdginn/go-periscope/periscope/run"
)

// Context is handed to every command's Run method
type Context struct {
	Settings *settings.Settings
	Log      logger.Logger
}

type cli struct {
	Settings string `name:"settings" help:"optional settings file (yaml)" type:"path"`

	Render   RenderCmd   `cmd:"" help:"Render a periscope scene to PNG and JSON"`
	Trace    TraceCmd    `cmd:"" help:"Print the path of the ray through a scene"`
	Sweep    SweepCmd    `cmd:"" help:"Sweep one mirror angle and plot the exit angle"`
	Validate ValidateCmd `cmd:"" help:"Check a scene config for errors"`
	Interact InteractCmd `cmd:"" help:"Adjust a scene interactively in the terminal"`
}

var CLI cli

func loadConfig(path string) (*periscopeConfig.PeriscopeConfig, error) {
	return periscopeConfig.LoadFromFile(path, periscopeConfig.LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
}

type RenderCmd struct {
	Config string `arg:"" name:"config" help:"scene config to render" type:"existingfile"`
}

func (c RenderCmd) Run(ctx *Context) error {
	config, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	runDir, err := periscopeRun.CreateDirectory(ctx.Settings.OutputDir(), ctx.Log)
	if err != nil {
		return fmt.Errorf("creating run directory: %w", err)
	}
	if err := runDir.CopyFile(c.Config); err != nil {
		return fmt.Errorf("copying config file: %w", err)
	}
	if err := periscopeConfig.SaveToFile(config, runDir.GetFilePath("resolved.yaml")); err != nil {
		return fmt.Errorf("saving resolved config: %w", err)
	}

	scene := config.Create()
	path := scene.Trace()
	summary := periscope.Summarize(path)
	ctx.Log.Info("traced scene", "run", runDir.ID, "state", summary.State.String(), "hits", summary.Hits)

	view := periscope.View{Scene: scene, XSize: config.Render.Width, YSize: config.Render.Height}
	img, err := view.Plot(path)
	if err != nil {
		return fmt.Errorf("plotting scene: %w", err)
	}
	if err := periscope.Save(runDir.GetFilePath("periscope.png"), img); err != nil {
		return fmt.Errorf("saving image: %w", err)
	}
	if err := periscope.SaveAnnotationsToJSON(runDir.GetFilePath("annotations.json"), scene.Mirrors(), path); err != nil {
		return fmt.Errorf("saving annotations: %w", err)
	}

	ctx.Log.Info("wrote run", "dir", runDir.Path)
	fmt.Println(runDir.Path)
	return nil
}

type TraceCmd struct {
	Config string `arg:"" name:"config" help:"scene config to trace" type:"existingfile"`
}

func (c TraceCmd) Run(ctx *Context) error {
	config, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	path := config.Create().Trace()
	for i, segment := range path.Segments {
		fmt.Printf("%d %-8s (%.3f, %.3f) -> (%.3f, %.3f)\n",
			i, segment.Kind, segment.From.X, segment.From.Y, segment.To.X, segment.To.Y)
	}

	summary := periscope.Summarize(path)
	fmt.Printf("state:          %s\n", summary.State)
	fmt.Printf("hits:           %d\n", summary.Hits)
	fmt.Printf("traveled:       %.3f\n", summary.TraveledLength)
	fmt.Printf("exit angle:     %.3f deg\n", summary.ExitAngle)
	fmt.Printf("deviation:      %.3f deg\n", summary.Deviation)
	fmt.Printf("lateral offset: %.3f\n", summary.LateralOffset)
	return nil
}

type SweepCmd struct {
	Config string  `arg:"" name:"config" help:"scene config to sweep" type:"existingfile"`
	Mirror string  `name:"mirror" enum:"top,bottom" default:"top" help:"mirror whose angle is swept"`
	Step   float64 `name:"step" default:"1" help:"angle step in degrees"`
	Out    string  `name:"out" default:"sweep.png" help:"where to write the plot" type:"path"`
}

func (c SweepCmd) Run(ctx *Context) error {
	config, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	target := periscope.SweepTarget(c.Mirror)
	r := periscope.TopAngleRange
	if target == periscope.SweepBottom {
		r = periscope.BottomAngleRange
	}

	sweep, err := periscope.NewSweep(config.Create(), target, r, c.Step)
	if err != nil {
		return err
	}
	for _, sample := range sweep.Samples {
		fmt.Printf("%8.2f %-8s %8.3f\n", sample.Angle, sample.Summary.State, sample.Summary.ExitAngle)
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := sweep.Plot(f, 600, 400); err != nil {
		return fmt.Errorf("plotting sweep: %w", err)
	}
	ctx.Log.Info("wrote sweep", "file", c.Out, "samples", len(sweep.Samples), "completed", len(sweep.Completed()))
	return nil
}

type ValidateCmd struct {
	Config string `arg:"" name:"config" help:"scene config to check" type:"existingfile"`
}

func (c ValidateCmd) Run(ctx *Context) error {
	config, err := periscopeConfig.LoadFromFile(c.Config, periscopeConfig.LoadOptions{
		ResolvePaths: true,
		MergeFiles:   true,
	})
	if err != nil {
		return err
	}

	if errs := config.Validate(); len(errs) > 0 {
		fmt.Print(periscopeConfig.FormatValidationErrors(errs))
		return fmt.Errorf("%s: %d validation errors", c.Config, len(errs))
	}
	fmt.Printf("%s: ok (%d mirrors)\n", c.Config, len(config.Create().Mirrors()))
	return nil
}

type InteractCmd struct {
	Config string `arg:"" optional:"" name:"config" help:"scene config to start from" type:"existingfile"`
	Image  string `name:"image" default:"periscope.png" help:"where the save key writes the image" type:"path"`
}

func (c InteractCmd) Run(ctx *Context) error {
	scene := periscope.DefaultScene()
	if c.Config != "" {
		config, err := loadConfig(c.Config)
		if err != nil {
			return err
		}
		scene = config.Create()
	}

	width, height := ctx.Settings.InteractSize()
	return interact.Interact(scene, interact.Options{
		AngleStep:  ctx.Settings.AngleStep(),
		HeightStep: ctx.Settings.HeightStep(),
		ImagePath:  filepath.Clean(c.Image),
		XSize:      width,
		YSize:      height,
	})
}

func main() {
	ctx := kong.Parse(&CLI)

	s, err := settings.Load(CLI.Settings)
	if err != nil {
		log.Fatal(err)
	}

	err = ctx.Run(&Context{Settings: s, Log: logger.New(s.LogLevel())})
	if err != nil {
		log.Fatal(err)
	}
}
