package interact

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdginn/go-periscope/periscope"
)

func press(m tea.Model, keys ...tea.KeyMsg) model {
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m.(model)
}

var (
	up    = tea.KeyMsg{Type: tea.KeyUp}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	right = tea.KeyMsg{Type: tea.KeyRight}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testModel(t *testing.T) model {
	return newModel(periscope.DefaultScene(), Options{
		AngleStep:  1,
		HeightStep: 5,
		ImagePath:  filepath.Join(t.TempDir(), "periscope.png"),
		XSize:      200,
		YSize:      150,
	})
}

func TestNudgeControls(t *testing.T) {
	assert := assert.New(t)
	m := testModel(t)
	assert.Equal(periscope.Done, m.path.State)

	m = press(m, right, right)
	assert.Equal(137.0, m.scene.TopAngle)

	m = press(m, down, left)
	assert.Equal(-46.0, m.scene.BottomAngle)

	m = press(m, down, runes("h"))
	assert.Equal(445.0, m.scene.EntryHeight)

	// wraps around to the top mirror
	m = press(m, down, runes("l"))
	assert.Equal(138.0, m.scene.TopAngle)

	m = press(m, up, up, runes("+"))
	assert.Equal(-45.0, m.scene.BottomAngle)

	m = press(m, runes("r"))
	assert.Equal(periscope.DefaultScene(), m.scene)
}

func TestNudgeClampsToRange(t *testing.T) {
	m := testModel(t)
	for i := 0; i < 100; i++ {
		m = press(m, right)
	}
	assert.Equal(t, periscope.TopAngleRange.Max, m.scene.TopAngle)
}

func TestRetraceOnChange(t *testing.T) {
	m := testModel(t)
	m = press(m, down, down)
	for i := 0; i < 30; i++ {
		m = press(m, left)
	}
	// 450 - 30*5 clamps at 350, below the top mirror's reach
	assert.Equal(t, 350.0, m.scene.EntryHeight)
	assert.Equal(t, periscope.Escaped, m.path.State)
	assert.Contains(t, m.View(), "Ray escaped after 0 of 2 mirrors")
}

func TestSave(t *testing.T) {
	m := testModel(t)
	m = press(m, runes("s"))
	require.FileExists(t, m.opts.ImagePath)
	assert.Contains(t, m.status, "saved")
}

func TestQuit(t *testing.T) {
	_, cmd := testModel(t).Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView(t *testing.T) {
	view := testModel(t).View()
	assert.Contains(t, view, "Periscope Light Ray Demonstrator")
	assert.Contains(t, view, "Ray done after 2 of 2 mirrors")
	assert.Contains(t, view, "lateral offset 300.0")
}

func TestViewOutOfRangeScene(t *testing.T) {
	assert := assert.New(t)
	scene := periscope.DefaultScene().WithControls(20, -45, 600)
	m := newModel(scene, Options{AngleStep: 1, HeightStep: 5})

	var view string
	assert.NotPanics(func() { view = m.View() })
	// the handle pins to the ends but the real value is still printed
	assert.Contains(view, "[|"+strings.Repeat("-", sliderWidth)+"]    20.0")
	assert.Contains(view, "["+strings.Repeat("=", sliderWidth)+"|]   600.0")
}

func TestSlider(t *testing.T) {
	r := periscope.Range{Min: 0, Max: 40}
	assert.Equal(t, "[====|"+strings.Repeat("-", 36)+"]", slider(r, 4))
	assert.Equal(t, slider(r, 0), slider(r, -10))
	assert.Equal(t, slider(r, 40), slider(r, 1e9))
}
