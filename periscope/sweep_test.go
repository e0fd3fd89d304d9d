package periscope

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepTopMirror(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	sweep, err := NewSweep(DefaultScene(), SweepTop, TopAngleRange, 1)
	require.NoError(err)
	assert.Len(sweep.Samples, 81)
	assert.Equal(90.0, sweep.Samples[0].Angle)
	assert.Equal(170.0, sweep.Samples[80].Angle)

	completed := map[float64]bool{}
	for _, sample := range sweep.Completed() {
		completed[sample.Angle] = true
	}
	assert.True(completed[135])
	assert.True(completed[130])
	assert.True(completed[139])
	assert.False(completed[140])
	assert.False(completed[90])

	// with the bottom mirror at -45 the exit angle is 270 - 2*top
	curve := sweep.ExitAngleCurve()
	assert.InDelta(5, curve.At(132.5), 1e-6)
	assert.InDelta(0, curve.At(135), 1e-6)
	assert.InDelta(-8, curve.At(139), 1e-6)

	var buf bytes.Buffer
	require.NoError(sweep.Plot(&buf, 300, 200))
	assert.Equal([]byte("\x89PNG"), buf.Bytes()[:4])
}

func TestSweepBottomMirror(t *testing.T) {
	sweep, err := NewSweep(DefaultScene(), SweepBottom, Range{Min: -50, Max: -40}, 2.5)
	require.NoError(t, err)
	assert.Len(t, sweep.Samples, 5)
	for _, sample := range sweep.Samples {
		assert.Equal(t, Done, sample.Summary.State)
		// 2*bottom + 90
		assert.InDelta(t, 2*sample.Angle+90, sample.Summary.ExitAngle, 1e-6)
	}
}

func TestSweepErrors(t *testing.T) {
	assert := assert.New(t)
	_, err := NewSweep(DefaultScene(), SweepTop, TopAngleRange, 0)
	assert.Error(err)
	_, err = NewSweep(DefaultScene(), SweepTop, Range{Min: 10, Max: 0}, 1)
	assert.Error(err)
	_, err = NewSweep(DefaultScene(), "middle", TopAngleRange, 1)
	assert.Error(err)

	// nothing gets through when the top mirror sends the ray back up
	sweep, err := NewSweep(DefaultScene(), SweepTop, Range{Min: 30, Max: 60}, 5)
	assert.NoError(err)
	assert.Empty(sweep.Completed())
	assert.Error(sweep.Plot(&bytes.Buffer{}, 100, 100))
}
