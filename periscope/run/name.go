package run

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"amber", "angled", "bright", "clear", "crimson", "dim", "distant",
		"faint", "glancing", "golden", "hazy", "hidden", "keen", "level",
		"lucid", "mirrored", "narrow", "oblique", "pale", "polished",
		"quiet", "silver", "slanted", "sharp", "steady", "still", "swift",
		"tilted", "true", "twin", "upright", "vivid", "watchful", "wide",
	}

	nouns = []string{
		"beam", "bounce", "dawn", "eye", "flare", "flash", "glance", "gleam",
		"glint", "horizon", "lantern", "lens", "light", "lookout", "mast",
		"mirror", "outlook", "photon", "prism", "ray", "shaft", "sight",
		"signal", "spark", "sun", "tube", "view", "vista", "watch", "window",
	}
)

// GenerateName creates a memorable run identifier in the format "adjective-noun"
func GenerateName() string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	adj := adjectives[r.Intn(len(adjectives))]
	noun := nouns[r.Intn(len(nouns))]

	return adj + "-" + noun
}

// GenerateID creates a unique run identifier by combining the memorable
// name with a timestamp
func GenerateID() string {
	timestamp := time.Now().UTC().Format("20060102-150405.000")
	return GenerateName() + "-" + timestamp
}
