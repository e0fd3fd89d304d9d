package config

// PeriscopeConfig represents the complete configuration for a periscope scene
type PeriscopeConfig struct {
	Metadata Metadata `yaml:"metadata"`
	Tube     Tube     `yaml:"tube"`
	Mirrors  Mirrors  `yaml:"mirrors"`
	Ray      Ray      `yaml:"ray"`
	Render   Render   `yaml:"render"`
	Flags    Flags    `yaml:"flags"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit"`
}

type Tube struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`
}

type Mirrors struct {
	Length float64 `yaml:"length"`
	Top    Mirror  `yaml:"top"`
	Bottom Mirror  `yaml:"bottom"`
	// Mirrors the ray visits after the bottom mirror
	Extra Extra `yaml:"extra,omitempty"`
}

type Mirror struct {
	Name     string     `yaml:"name,omitempty" json:"name"`
	Center   [2]float64 `yaml:"center" json:"center"`
	AngleDeg float64    `yaml:"angle_deg" json:"angle_deg"`
	Length   float64    `yaml:"length,omitempty" json:"length,omitempty"` // defaults to mirrors.length
}

type Extra struct {
	Inline   []Mirror `yaml:"inline,omitempty"`
	FromFile string   `yaml:"from_file,omitempty"`
}

type Ray struct {
	EntryX         float64 `yaml:"entry_x"`
	EntryHeight    float64 `yaml:"entry_height"`
	EscapeDistance float64 `yaml:"escape_distance"`
}

type Render struct {
	Width    int        `yaml:"width"`    // pixels
	Height   int        `yaml:"height"`   // pixels
	Viewport [4]float64 `yaml:"viewport"` // xmin, xmax, ymin, ymax
}

type Flags struct {
	// Accept control values outside the demonstrator's slider ranges
	SkipRangeCheck bool `yaml:"skip_range_check"`
}
