package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdginn/go-periscope/periscope"
)

func TestDefaultIsValid(t *testing.T) {
	assert.Empty(t, Default().Validate())
}

func TestDefaultMatchesScene(t *testing.T) {
	assert.Equal(t, periscope.DefaultScene(), Default().Create())
}

func TestLoadFromFile(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	config, err := LoadFromFile("testdata/periscope.yaml", LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
	require.NoError(err)

	assert.Equal(400, config.Render.Width)
	assert.True(filepath.IsAbs(config.Mirrors.Extra.FromFile))

	// the inline deflector wins over the file's, the catcher is appended
	require.Len(config.Mirrors.Extra.Inline, 2)
	assert.Equal("deflector", config.Mirrors.Extra.Inline[0].Name)
	assert.Equal([2]float64{700, 150}, config.Mirrors.Extra.Inline[0].Center)
	assert.Equal("catcher", config.Mirrors.Extra.Inline[1].Name)

	scene := config.Create()
	mirrors := scene.Mirrors()
	require.Len(mirrors, 4)
	assert.Equal(100.0, mirrors[2].Length)
	// unset length falls back to mirrors.length
	assert.Equal(150.0, mirrors[3].Length)

	// deflector sends the ray down into the catcher, which sends it right
	path := scene.Trace()
	assert.Equal(periscope.Done, path.State)
	assert.Len(path.Hits, 4)
}

func TestLoadFromFileKeepsDefaults(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(os.WriteFile(path, []byte("ray:\n  entry_height: 400\n"), 0644))

	config, err := LoadFromFile(path, LoadOptions{ValidateImmediately: true})
	require.NoError(err)
	assert.Equal(t, 400.0, config.Ray.EntryHeight)
	assert.Equal(t, periscope.DefaultTopAngle, config.Mirrors.Top.AngleDeg)
	assert.Equal(t, periscope.DefaultEscapeDistance, config.Ray.EscapeDistance)
}

func TestLoadFromFileErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := LoadFromFile("testdata/missing.yaml", LoadOptions{})
	assert.ErrorContains(err, "reading config file")

	_, err = LoadFromFile("testdata/invalid.yaml", LoadOptions{ValidateImmediately: true})
	assert.ErrorContains(err, "validation errors")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	assert.NoError(os.WriteFile(bad, []byte("mirrors: [1, 2"), 0644))
	_, err = LoadFromFile(bad, LoadOptions{})
	assert.ErrorContains(err, "parsing config file")

	missingRef := filepath.Join(t.TempDir(), "ref.yaml")
	assert.NoError(os.WriteFile(missingRef, []byte("mirrors:\n  extra:\n    from_file: nope.json\n"), 0644))
	_, err = LoadFromFile(missingRef, LoadOptions{ResolvePaths: true})
	assert.ErrorContains(err, "resolving paths")
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	config, err := LoadFromFile("testdata/invalid.yaml", LoadOptions{})
	require.NoError(t, err)

	fields := map[string]bool{}
	for _, e := range config.Validate() {
		fields[e.Field] = true
	}
	assert.True(fields["tube.left"])
	assert.True(fields["mirrors.length"])
	assert.True(fields["mirrors.top.angle_deg"])
	assert.True(fields["ray.entry_height"])
	assert.True(fields["render.width"])
	assert.False(fields["mirrors.bottom.angle_deg"])

	config.Flags.SkipRangeCheck = true
	fields = map[string]bool{}
	for _, e := range config.Validate() {
		fields[e.Field] = true
	}
	assert.False(fields["mirrors.top.angle_deg"])
	assert.False(fields["ray.entry_height"])
}

func TestValidateDuplicateMirrorNames(t *testing.T) {
	config := Default()
	config.Mirrors.Extra.Inline = []Mirror{{Name: "top"}, {Name: "a"}, {Name: "a", Length: -1}}

	errs := config.Validate()
	require.Len(t, errs, 3)
	assert.Equal(t, "mirrors.extra.inline.0.name", errs[0].Field)
	assert.Equal(t, "mirrors.extra.inline.2.name", errs[1].Field)
	assert.Equal(t, "mirrors.extra.inline.2.length", errs[2].Field)
}

func TestValidateFixedMirrorFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	data := "mirrors:\n  top:\n    name: upper\n    length: 80\n  bottom:\n    length: 90\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	config, err := LoadFromFile(path, LoadOptions{})
	require.NoError(t, err)
	errs := config.Validate()
	require.Len(t, errs, 3)
	assert.Equal(t, "mirrors.top.name", errs[0].Field)
	assert.Equal(t, "mirrors.top.length", errs[1].Field)
	assert.Equal(t, "mirrors.bottom.length", errs[2].Field)

	_, err = LoadFromFile(path, LoadOptions{ValidateImmediately: true})
	assert.ErrorContains(t, err, "mirrors.top.length")
}

func TestFormatValidationErrors(t *testing.T) {
	assert := assert.New(t)
	assert.Empty(FormatValidationErrors(nil))

	out := FormatValidationErrors([]ValidationError{
		{Field: "ray.entry_height", Message: "must be between 350 and 520"},
		{Field: "mirrors.length", Message: "must be positive"},
		{Field: "ray", Message: "broken"},
	})
	assert.True(strings.HasPrefix(out, "Validation Errors:\n"))
	assert.Less(strings.Index(out, "RAY:"), strings.Index(out, "MIRRORS:"))
	assert.Contains(out, "  - entry_height: must be between 350 and 520\n")
	assert.Contains(out, "  - general: broken\n")
}

func TestSaveToFile(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "saved.yaml")

	config := Default()
	config.Ray.EntryHeight = 480
	require.NoError(SaveToFile(config, path))
	require.NotEmpty(config.Metadata.Timestamp)
	require.NotEmpty(config.Metadata.GitCommit)

	loaded, err := LoadFromFile(path, LoadOptions{ValidateImmediately: true})
	require.NoError(err)
	assert.Equal(t, 480.0, loaded.Ray.EntryHeight)
	assert.Equal(t, config.Metadata, loaded.Metadata)
}

func TestResolvePaths(t *testing.T) {
	assert := assert.New(t)
	baseDir, err := filepath.Abs("testdata")
	require.NoError(t, err)

	config := Default()
	assert.NoError(config.ResolvePaths(baseDir))
	assert.Empty(config.Mirrors.Extra.FromFile)

	config.Mirrors.Extra.FromFile = "mirrors.json"
	require.NoError(t, config.ResolvePaths(baseDir))
	assert.Equal(filepath.Join(baseDir, "mirrors.json"), config.Mirrors.Extra.FromFile)

	// already absolute paths are kept
	require.NoError(t, config.ResolvePaths("/elsewhere"))
	assert.Equal(filepath.Join(baseDir, "mirrors.json"), config.Mirrors.Extra.FromFile)

	config.Mirrors.Extra.FromFile = "nope.json"
	assert.ErrorContains(config.ResolvePaths(baseDir), "mirrors.extra.from_file")

	config.Mirrors.Extra.FromFile = "."
	assert.ErrorContains(config.ResolvePaths(baseDir), "is a directory")
}
