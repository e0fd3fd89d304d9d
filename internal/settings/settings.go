package settings

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "PERISCOPE"

// Settings are process-wide options that do not belong to a scene: where run
// output goes, how large the terminal UI renders, how much to log.
//
// Every key can be overridden by an environment variable, e.g.
// PERISCOPE_OUTPUT_DIR or PERISCOPE_LOG_LEVEL.
type Settings struct {
	config *viper.Viper
}

// Load reads settings from the optional file at path, falling back to
// defaults and the environment.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("output.dir", "runs")
	v.SetDefault("log.level", "info")
	v.SetDefault("interact.width", 800)
	v.SetDefault("interact.height", 600)
	v.SetDefault("interact.angle_step", 1.0)
	v.SetDefault("interact.height_step", 5.0)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading settings file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	s := &Settings{config: v}
	slog.Debug("settings loaded", "file", v.ConfigFileUsed(), "output_dir", s.OutputDir())
	return s, nil
}

// OutputDir is the directory run directories are created in
func (s *Settings) OutputDir() string {
	return s.config.GetString("output.dir")
}

func (s *Settings) LogLevel() string {
	return s.config.GetString("log.level")
}

// InteractSize is the image size the terminal UI renders to
func (s *Settings) InteractSize() (int, int) {
	return s.config.GetInt("interact.width"), s.config.GetInt("interact.height")
}

// AngleStep is how many degrees one key press turns a mirror
func (s *Settings) AngleStep() float64 {
	return s.config.GetFloat64("interact.angle_step")
}

// HeightStep is how far one key press moves the entry point
func (s *Settings) HeightStep() float64 {
	return s.config.GetFloat64("interact.height_step")
}
